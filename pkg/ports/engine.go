package ports

import (
	"context"

	"github.com/aretw0/sluice/pkg/domain"
)

// Solver is the driving port used by the transport adapters (HTTP, MCP).
type Solver interface {
	// Solve runs a search over the solver's network.
	Solve(ctx context.Context, req domain.Request) (*domain.Result, error)

	// Network returns the network the solver searches over.
	Network() *domain.Network
}
