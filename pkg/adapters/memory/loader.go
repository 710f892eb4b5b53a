package memory

import (
	"fmt"
	"sort"

	"github.com/aretw0/sluice/pkg/domain"
)

// Loader implements ports.NetworkLoader over problems held in memory.
type Loader struct {
	problems map[string]*domain.Problem
}

// NewLoader creates a loader from already built problems.
func NewLoader(problems map[string]*domain.Problem) *Loader {
	copied := make(map[string]*domain.Problem, len(problems))
	for name, p := range problems {
		copied[name] = p
	}
	return &Loader{problems: copied}
}

// NewFromSpecs builds a single-network loader from node specs.
// This improves DX for tests that declare networks inline.
func NewFromSpecs(name string, defaults domain.Request, specs ...domain.NodeSpec) (*Loader, error) {
	network, err := domain.Build(specs)
	if err != nil {
		return nil, fmt.Errorf("failed to build network %s: %w", name, err)
	}
	return NewLoader(map[string]*domain.Problem{
		name: {Network: network, Defaults: defaults},
	}), nil
}

// Load returns the named problem.
func (l *Loader) Load(name string) (*domain.Problem, error) {
	p, ok := l.problems[name]
	if !ok {
		return nil, fmt.Errorf("network not found: %s", name)
	}
	ret := *p
	return &ret, nil
}

// Names returns all available network names.
func (l *Loader) Names() []string {
	names := make([]string, 0, len(l.problems))
	for name := range l.problems {
		names = append(names, name)
	}
	sort.Strings(names) // Deterministic order
	return names
}
