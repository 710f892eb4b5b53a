package domain_test

import (
	"errors"
	"testing"

	"github.com/aretw0/sluice/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	net, err := domain.Build([]domain.NodeSpec{
		{ID: "BB", Yield: 13, Neighbors: []string{"CC", "AA"}},
		{ID: "AA", Yield: 0, Neighbors: []string{"BB"}},
		{ID: "CC", Yield: 2, Neighbors: []string{"BB"}},
	})
	require.NoError(t, err)

	assert.Equal(t, 3, net.Len())
	assert.Equal(t, []string{"AA", "BB", "CC"}, net.IDs())
	assert.Equal(t, []string{"CC", "AA"}, net.Neighbors("BB"), "neighbor order is preserved")
	assert.Equal(t, 13, net.YieldRate("BB"))
	assert.Equal(t, 0, net.YieldRate("AA"))
	assert.Equal(t, 2, net.PositiveCount())
	assert.Equal(t, 15, net.TotalYield())
	assert.True(t, net.Has("CC"))
	assert.False(t, net.Has("ZZ"))
	assert.Nil(t, net.Neighbors("ZZ"))

	i, ok := net.Index("BB")
	require.True(t, ok)
	assert.Equal(t, "BB", net.ID(i))
	assert.Equal(t, 13, net.YieldAt(i))
	assert.Len(t, net.Adjacent(i), 2)
}

func TestBuild_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		specs []domain.NodeSpec
		node  string
	}{
		{
			name:  "Unknown Neighbor",
			specs: []domain.NodeSpec{{ID: "AA", Neighbors: []string{"BB"}}},
			node:  "AA",
		},
		{
			name:  "Negative Yield",
			specs: []domain.NodeSpec{{ID: "AA", Yield: -1}},
			node:  "AA",
		},
		{
			name:  "Self Loop",
			specs: []domain.NodeSpec{{ID: "AA", Neighbors: []string{"AA"}}},
			node:  "AA",
		},
		{
			name: "Duplicate Neighbor",
			specs: []domain.NodeSpec{
				{ID: "AA", Neighbors: []string{"BB", "BB"}},
				{ID: "BB"},
			},
			node: "AA",
		},
		{
			name:  "Duplicate Node",
			specs: []domain.NodeSpec{{ID: "AA"}, {ID: "AA"}},
			node:  "AA",
		},
		{
			name:  "Missing ID",
			specs: []domain.NodeSpec{{Yield: 3}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := domain.Build(tt.specs)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrMalformedInput)

			var inputErr *domain.InputError
			require.True(t, errors.As(err, &inputErr))
			assert.Equal(t, tt.node, inputErr.Node)
		})
	}
}

func TestBuild_Empty(t *testing.T) {
	net, err := domain.Build(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, net.Len())
}

func TestParseYield(t *testing.T) {
	v, err := domain.ParseYield(" 22 ")
	require.NoError(t, err)
	assert.Equal(t, 22, v)

	_, err = domain.ParseYield("-4")
	assert.ErrorIs(t, err, domain.ErrMalformedInput)

	_, err = domain.ParseYield("lots")
	assert.ErrorIs(t, err, domain.ErrMalformedInput)
}

func TestNetwork_SpecsRoundTrip(t *testing.T) {
	specs := []domain.NodeSpec{
		{ID: "AA", Yield: 0, Neighbors: []string{"BB"}},
		{ID: "BB", Yield: 7, Neighbors: []string{"AA"}},
	}
	net, err := domain.Build(specs)
	require.NoError(t, err)

	again, err := domain.Build(net.Specs())
	require.NoError(t, err)
	assert.Equal(t, net.Nodes(), again.Nodes())
}
