package runtime

import (
	"fmt"
	"sort"

	"github.com/aretw0/sluice/pkg/domain"
)

// Scorer ranks a state for beam retention. Higher is better.
type Scorer func(network *domain.Network, s domain.State, horizon int) int

// ScoreAccumulated ranks by the yield accumulated so far.
func ScoreAccumulated(_ *domain.Network, s domain.State, _ int) int {
	return s.Yield
}

// ScoreProjected ranks by the yield the state reaches if it coasts to the horizon.
func ScoreProjected(_ *domain.Network, s domain.State, horizon int) int {
	return s.Projected(horizon)
}

// ScoreOptimistic adds to the projected yield the flow of every node not yet
// activated, as if all of them were switched on during the next unit.
func ScoreOptimistic(network *domain.Network, s domain.State, horizon int) int {
	rest := s.Remaining(horizon) - 1
	if rest < 0 {
		rest = 0
	}
	return s.Projected(horizon) + rest*(network.TotalYield()-s.Flow)
}

// ScorerFor resolves a scorer by name.
func ScorerFor(name string) (Scorer, error) {
	switch name {
	case "", domain.ScorerAccumulated:
		return ScoreAccumulated, nil
	case domain.ScorerProjected:
		return ScoreProjected, nil
	case domain.ScorerOptimistic:
		return ScoreOptimistic, nil
	}
	return nil, fmt.Errorf("%w: unknown scorer %q", domain.ErrInvalidRequest, name)
}

// Beam caps a frontier to the best Width states.
// A zero Width keeps every state.
type Beam struct {
	Width   int
	Score   Scorer
	Network *domain.Network
	Horizon int
}

// Trim returns the retained entries and how many were discarded.
// Ties keep generation order so the outcome is deterministic.
func (b Beam) Trim(entries []entry) ([]entry, int) {
	if b.Width <= 0 || len(entries) <= b.Width {
		return entries, 0
	}

	scores := make([]int, len(entries))
	order := make([]int, len(entries))
	for i, e := range entries {
		scores[i] = b.Score(b.Network, e.state, b.Horizon)
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return scores[order[i]] > scores[order[j]]
	})

	kept := make([]entry, b.Width)
	for i := range kept {
		kept[i] = entries[order[i]]
	}
	return kept, len(entries) - b.Width
}
