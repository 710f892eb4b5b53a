package main

import (
	"fmt"

	"github.com/aretw0/sluice/internal/cli"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <network-file>",
	Short: "Check the network for consistency",
	Long:  `Parses the network and crawls it from the start node, reporting nodes with yield that can never release anything.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		start, _ := cmd.Flags().GetString("start")
		horizon, _ := cmd.Flags().GetInt("horizon")
		asJSON, _ := cmd.Flags().GetBool("json")

		err = cli.RunValidate(cli.ValidateOptions{
			NetworkPath: args[0],
			Config:      cfg,
			Start:       start,
			Horizon:     horizon,
			JSON:        asJSON,
			Out:         cmd.OutOrStdout(),
		})
		if err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}
		if !asJSON {
			fmt.Fprintln(cmd.OutOrStdout(), "Network is valid!")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
	validateCmd.Flags().String("start", "", "Start node ID")
	validateCmd.Flags().Int("horizon", 0, "Horizon used to flag nodes too far to yield")
	validateCmd.Flags().Bool("json", false, "Print the reachability report as JSON")
}
