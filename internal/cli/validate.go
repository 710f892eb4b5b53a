package cli

import (
	"fmt"
	"io"

	"github.com/aretw0/sluice/internal/config"
	"github.com/aretw0/sluice/internal/validator"
	"github.com/aretw0/sluice/pkg/adapters/file"
)

// ValidateOptions contains the configuration for the validate command.
type ValidateOptions struct {
	NetworkPath string
	Config      *config.Config
	Start       string
	Horizon     int
	JSON        bool
	Out         io.Writer
}

// RunValidate parses the network and crawls it from the start node.
// It fails when positive-yield nodes can never release anything.
func RunValidate(opts ValidateOptions) error {
	problem, err := file.NewLoader("").Load(opts.NetworkPath)
	if err != nil {
		return err
	}

	defaults := mergeDefaults(opts.Config.Search, problem.Defaults)
	start := opts.Start
	if start == "" {
		start = defaults.Start
	}
	horizon := opts.Horizon
	if horizon == 0 {
		horizon = defaults.Horizon
	}

	report, err := validator.ValidateNetwork(problem.Network, start, horizon)
	if err != nil {
		return err
	}

	if opts.JSON {
		if err := writeJSON(opts.Out, report); err != nil {
			return err
		}
		return report.Err()
	}

	n := problem.Network
	fmt.Fprintf(opts.Out, "%d nodes, %d with yield (total %d/unit), %d reachable from %s\n",
		n.Len(), n.PositiveCount(), n.TotalYield(), len(report.Distance), start)
	for _, t := range report.OneWay {
		fmt.Fprintf(opts.Out, "warning: one-way tunnel %s\n", t)
	}
	for _, id := range report.DeadEnds {
		fmt.Fprintf(opts.Out, "warning: dead end %s\n", id)
	}
	return report.Err()
}
