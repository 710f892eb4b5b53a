package tests

import (
	"testing"

	"github.com/aretw0/sluice/pkg/domain"
	"github.com/aretw0/sluice/pkg/ports"
)

// NetworkLoaderContractTest is a reusable test suite that verifies if an adapter complies with ports.NetworkLoader.
// wantIDs lists the node IDs the named network is expected to contain.
func NetworkLoaderContractTest(t *testing.T, loader ports.NetworkLoader, name string, wantIDs []string) {
	t.Helper()

	t.Run("Load_Success", func(t *testing.T) {
		problem, err := loader.Load(name)
		if err != nil {
			t.Fatalf("unexpected error loading %s: %v", name, err)
		}
		if problem.Network == nil {
			t.Fatal("loaded problem has no network")
		}

		got := problem.Network.IDs()
		if len(got) != len(wantIDs) {
			t.Fatalf("expected %d nodes, got %d (%v)", len(wantIDs), len(got), got)
		}
		lookup := make(map[string]bool)
		for _, id := range got {
			lookup[id] = true
		}
		for _, id := range wantIDs {
			if !lookup[id] {
				t.Errorf("node %s missing from network", id)
			}
		}
	})

	t.Run("Load_NotFound", func(t *testing.T) {
		_, err := loader.Load("non-existent-network")
		if err == nil {
			t.Error("expected error for non-existent network, got nil")
		}
	})

	t.Run("Load_Defaults", func(t *testing.T) {
		problem, err := loader.Load(name)
		if err != nil {
			t.Fatalf("unexpected error loading %s: %v", name, err)
		}
		if problem.Defaults.Start != "" && !problem.Network.Has(problem.Defaults.Start) {
			t.Errorf("default start %q is not a node of the network", problem.Defaults.Start)
		}
		if _, err := domain.Build(problem.Network.Specs()); err != nil {
			t.Errorf("network specs do not rebuild: %v", err)
		}
	})
}
