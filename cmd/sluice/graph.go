package main

import (
	"github.com/aretw0/sluice/internal/cli"
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph <network-file>",
	Short: "Export the network visualization",
	Long:  `Outputs a Mermaid diagram (graph LR) of the network. With --plan, the best plan is solved and overlaid.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		plan, _ := cmd.Flags().GetBool("plan")

		return cli.RunGraph(cmd.Context(), cli.GraphOptions{
			NetworkPath: args[0],
			Config:      cfg,
			Plan:        plan,
			Request:     requestFromFlags(cmd),
			Out:         cmd.OutOrStdout(),
		})
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
	addSearchFlags(graphCmd)
	graphCmd.Flags().Bool("plan", false, "Overlay the activations of the best plan")
}
