package ports

import "github.com/aretw0/sluice/pkg/domain"

// NetworkLoader defines how networks are retrieved.
// This allows the source (file, memory) to be decoupled from the optimizer.
type NetworkLoader interface {
	// Load builds the network identified by name.
	// Structural problems are reported as domain.ErrMalformedInput.
	Load(name string) (*domain.Problem, error)
}
