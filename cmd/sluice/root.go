package main

import (
	"fmt"
	"os"

	"github.com/aretw0/sluice/internal/config"
	"github.com/aretw0/sluice/pkg/domain"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "sluice",
	Short: "Sluice schedules resource releases to maximize total yield",
	Long: `Sluice searches a network of nodes for the order in which one or two agents
should move and activate nodes so that the most yield is released before a deadline.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", config.DefaultPath, "Path to the sluice config file (YAML or JSON)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error (overrides config)")
	rootCmd.PersistentFlags().String("log-format", "", "Log format: text or json (overrides config)")
}

// loadConfig reads the config file and applies the persistent flag overrides.
// The default config path may be missing; an explicit one may not.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path, cmd.Flags().Changed("config"))
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level, _ = cmd.Flags().GetString("log-level")
	}
	if cmd.Flags().Changed("log-format") {
		cfg.Log.Format, _ = cmd.Flags().GetString("log-format")
	}
	if cmd.Flags().Changed("redis") {
		cfg.Redis.Addr, _ = cmd.Flags().GetString("redis")
	}
	if cmd.Flags().Changed("cache-dir") {
		cfg.Cache.Dir, _ = cmd.Flags().GetString("cache-dir")
	}
	return cfg, cfg.Validate()
}

// addSearchFlags registers the request flags shared by solve and graph.
func addSearchFlags(cmd *cobra.Command) {
	cmd.Flags().String("start", "", "Start node ID")
	cmd.Flags().Int("horizon", 0, "Number of time units")
	cmd.Flags().Int("agents", 0, "Number of agents (1 or 2)")
	cmd.Flags().Int("beam", 0, "Frontier cap for two agents, 0 for unbounded (unset keeps the configured width)")
	cmd.Flags().String("scorer", "", "Beam ranking: accumulated, projected or optimistic")
	cmd.Flags().String("redis", "", "Redis address for the shared result cache")
	cmd.Flags().String("cache-dir", "", "Directory for the on-disk result cache")
}

// requestFromFlags collects the request fields set on the command line.
// Unset flags stay zero so file and config defaults apply.
func requestFromFlags(cmd *cobra.Command) domain.Request {
	var req domain.Request
	req.Start, _ = cmd.Flags().GetString("start")
	req.Horizon, _ = cmd.Flags().GetInt("horizon")
	req.Agents, _ = cmd.Flags().GetInt("agents")
	if cmd.Flags().Changed("beam") {
		width, _ := cmd.Flags().GetInt("beam")
		req.BeamWidth = domain.ExplicitBeamWidth(width)
	}
	req.Scorer, _ = cmd.Flags().GetString("scorer")
	if f := cmd.Flags().Lookup("trace"); f != nil {
		req.Trace, _ = cmd.Flags().GetBool("trace")
	}
	return req
}
