package runtime

import (
	"testing"

	"github.com/aretw0/sluice/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func state(pos, yield int) domain.State {
	return domain.State{
		Agents:    1,
		Positions: [2]int{pos, pos},
		Activated: domain.NewActivatedSet(8),
		Yield:     yield,
	}
}

func TestLayerTable_Offer(t *testing.T) {
	table := newLayerTable(4)

	slot, kept := table.offer(entry{state: state(1, 10)})
	require.True(t, kept)
	assert.Equal(t, 0, slot)

	_, kept = table.offer(entry{state: state(1, 10)})
	assert.False(t, kept, "equal yield is dominated")

	_, kept = table.offer(entry{state: state(1, 3)})
	assert.False(t, kept)

	slot, kept = table.offer(entry{state: state(2, 1)})
	require.True(t, kept)
	assert.Equal(t, 1, slot)

	slot, kept = table.offer(entry{state: state(1, 12), step: 7})
	require.True(t, kept)
	assert.Equal(t, 0, slot, "a better state takes over the slot in place")

	require.Len(t, table.entries, 2)
	assert.Equal(t, 12, table.entries[0].state.Yield)
	assert.Equal(t, 7, table.entries[0].step)
	assert.Equal(t, 3, table.dominated)
	assert.Equal(t, 5, len(table.entries)+table.dominated, "every offer is either kept or counted once")
}

func TestLayerTable_SwappedAgentsCollide(t *testing.T) {
	table := newLayerTable(2)
	set := domain.NewActivatedSet(8)

	_, kept := table.offer(entry{state: domain.State{Agents: 2, Positions: [2]int{1, 4}, Activated: set, Yield: 5}})
	require.True(t, kept)
	_, kept = table.offer(entry{state: domain.State{Agents: 2, Positions: [2]int{4, 1}, Activated: set, Yield: 5}})
	assert.False(t, kept)
}

func TestBeam_Trim(t *testing.T) {
	entries := []entry{
		{state: state(0, 4), step: 0},
		{state: state(1, 9), step: 1},
		{state: state(2, 4), step: 2},
		{state: state(3, 7), step: 3},
	}

	b := Beam{Width: 3, Score: ScoreAccumulated, Horizon: 10}
	kept, trimmed := b.Trim(entries)
	assert.Equal(t, 1, trimmed)
	require.Len(t, kept, 3)
	assert.Equal(t, 1, kept[0].step)
	assert.Equal(t, 3, kept[1].step)
	assert.Equal(t, 0, kept[2].step, "ties keep generation order")

	unbounded := Beam{Width: 0, Score: ScoreAccumulated}
	all, trimmed := unbounded.Trim(entries)
	assert.Len(t, all, 4)
	assert.Zero(t, trimmed)
}

func TestScorers(t *testing.T) {
	net, err := domain.Build([]domain.NodeSpec{
		{ID: "A", Yield: 3, Neighbors: []string{"B"}},
		{ID: "B", Yield: 5, Neighbors: []string{"A"}},
	})
	require.NoError(t, err)

	s := domain.State{Elapsed: 4, Agents: 1, Activated: domain.NewActivatedSet(2).With(0), Flow: 3, Yield: 6}

	assert.Equal(t, 6, ScoreAccumulated(net, s, 10))
	assert.Equal(t, 6+6*3, ScoreProjected(net, s, 10))
	assert.Equal(t, 6+6*3+5*5, ScoreOptimistic(net, s, 10))
	assert.Equal(t, 6, ScoreOptimistic(net, s, 4))

	for _, name := range []string{"", domain.ScorerAccumulated, domain.ScorerProjected, domain.ScorerOptimistic} {
		_, err := ScorerFor(name)
		assert.NoError(t, err)
	}
	_, err = ScorerFor("coin-flip")
	assert.ErrorIs(t, err, domain.ErrInvalidRequest)
}
