package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/aretw0/sluice/internal/config"
	"github.com/aretw0/sluice/internal/presentation/graph"
	"github.com/aretw0/sluice/pkg/domain"
)

// GraphOptions contains the configuration for the graph command.
type GraphOptions struct {
	NetworkPath string
	Config      *config.Config
	// Plan overlays the best plan found for Request.
	Plan    bool
	Request domain.Request
	Out     io.Writer
}

// RunGraph writes the network as a Mermaid flowchart.
func RunGraph(ctx context.Context, opts GraphOptions) error {
	logger, err := createLogger(opts.Config.Log)
	if err != nil {
		return err
	}

	opt, cleanup, err := createOptimizer(opts.Config, opts.NetworkPath, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	var overlay *graph.Overlay
	if opts.Plan {
		req := opt.Resolve(opts.Request)
		req.Trace = true
		res, err := opt.Solve(ctx, req)
		if err != nil {
			return fmt.Errorf("solve failed: %w", err)
		}
		overlay = graph.OverlayFromPlan(req.Start, res.Plan)
	}

	_, err = io.WriteString(opts.Out, graph.GenerateMermaid(opt.Network(), overlay))
	return err
}
