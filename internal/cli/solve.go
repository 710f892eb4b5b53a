package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/aretw0/sluice/internal/config"
	"github.com/aretw0/sluice/pkg/domain"
)

// SolveOptions contains the configuration for the solve command.
type SolveOptions struct {
	NetworkPath string
	Config      *config.Config
	// Request holds the flag overrides; zero fields fall back to the file and config defaults.
	Request domain.Request
	Pretty  string
	Out     io.Writer
}

// RunSolve loads the network, solves it and writes the result.
func RunSolve(ctx context.Context, opts SolveOptions) error {
	logger, err := createLogger(opts.Config.Log)
	if err != nil {
		return err
	}

	opt, cleanup, err := createOptimizer(opts.Config, opts.NetworkPath, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := cleanup(); err != nil {
			logger.Warn("failed to close result cache", "error", err)
		}
	}()

	req := opt.Resolve(opts.Request)
	res, err := opt.Solve(ctx, req)
	if err != nil {
		return fmt.Errorf("solve failed: %w", err)
	}

	if !res.Exact {
		logger.Info("beam trimmed the search, best is a lower bound",
			"trimmed", res.Trimmed,
			"beam_width", req.BeamWidth,
		)
	}

	return writeResult(opts.Out, wantPretty(opts.Pretty, opts.Out), opts.NetworkPath, req, res)
}
