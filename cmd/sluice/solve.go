package main

import (
	"github.com/aretw0/sluice/internal/cli"
	"github.com/spf13/cobra"
)

var solveCmd = &cobra.Command{
	Use:   "solve <network-file>",
	Short: "Find the best yield for a network",
	Long: `Loads a network file (.txt in the line format, or .yaml/.yml/.json documents)
and prints the best total yield as JSON, or as a report on a terminal.

With two agents the search caps each layer to --beam states; the result then
reports "exact": false when any state was trimmed.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		pretty, _ := cmd.Flags().GetString("pretty")

		ctx := cli.NewSignalContext(cmd.Context())
		defer ctx.Cancel()

		return cli.RunSolve(ctx, cli.SolveOptions{
			NetworkPath: args[0],
			Config:      cfg,
			Request:     requestFromFlags(cmd),
			Pretty:      pretty,
			Out:         cmd.OutOrStdout(),
		})
	},
}

func init() {
	rootCmd.AddCommand(solveCmd)
	addSearchFlags(solveCmd)
	solveCmd.Flags().Bool("trace", false, "Include the plan that reaches the best yield")
	solveCmd.Flags().String("pretty", cli.PrettyAuto, "Render a report instead of JSON: auto, always or never")
}
