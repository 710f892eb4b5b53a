package main

import (
	"github.com/aretw0/sluice/internal/cli"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve <network-file>",
	Short: "Start the HTTP server",
	Long: `Serves the optimizer over HTTP:

  POST /solve             solve the network (or an inline one)
  GET  /network           nodes and yield rates
  GET  /network/mermaid   Mermaid diagram
  GET  /events?stream=ID  layer progress of solves posted with ?stream=ID (SSE)
  GET  /healthz, /info, /metrics`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("addr") {
			cfg.HTTP.Addr, _ = cmd.Flags().GetString("addr")
		}

		ctx := cli.NewSignalContext(cmd.Context())
		defer ctx.Cancel()

		return cli.RunServe(ctx, cli.ServeOptions{
			NetworkPath: args[0],
			Config:      cfg,
		})
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("addr", "a", ":8080", "Address to listen on")
	serveCmd.Flags().String("redis", "", "Redis address for the shared result cache")
	serveCmd.Flags().String("cache-dir", "", "Directory for the on-disk result cache")
}
