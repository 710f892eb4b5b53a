package runtime_test

import (
	"testing"

	"github.com/aretw0/sluice/pkg/domain"
	"github.com/stretchr/testify/require"
)

// exampleNetwork is the ten-node network of the original puzzle description.
func exampleNetwork(t *testing.T) *domain.Network {
	t.Helper()
	return mustBuild(t, []domain.NodeSpec{
		{ID: "AA", Yield: 0, Neighbors: []string{"DD", "II", "BB"}},
		{ID: "BB", Yield: 13, Neighbors: []string{"CC", "AA"}},
		{ID: "CC", Yield: 2, Neighbors: []string{"DD", "BB"}},
		{ID: "DD", Yield: 20, Neighbors: []string{"CC", "AA", "EE"}},
		{ID: "EE", Yield: 3, Neighbors: []string{"FF", "DD"}},
		{ID: "FF", Yield: 0, Neighbors: []string{"EE", "GG"}},
		{ID: "GG", Yield: 0, Neighbors: []string{"FF", "HH"}},
		{ID: "HH", Yield: 22, Neighbors: []string{"GG"}},
		{ID: "II", Yield: 0, Neighbors: []string{"AA", "JJ"}},
		{ID: "JJ", Yield: 21, Neighbors: []string{"II"}},
	})
}

func mustBuild(t *testing.T, specs []domain.NodeSpec) *domain.Network {
	t.Helper()
	net, err := domain.Build(specs)
	require.NoError(t, err)
	return net
}

func index(t *testing.T, net *domain.Network, id string) int {
	t.Helper()
	i, ok := net.Index(id)
	require.True(t, ok, "node %s", id)
	return i
}
