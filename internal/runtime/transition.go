package runtime

import (
	"fmt"

	"github.com/aretw0/sluice/pkg/domain"
)

// Transitions enumerates the legal moves out of a state.
//
// The credit of a unit is the flow of the state before the action is taken:
// a node activated during the unit only starts yielding on the next one.
type Transitions struct {
	network *domain.Network
}

// NewTransitions creates the transition engine for a network.
func NewTransitions(network *domain.Network) *Transitions {
	return &Transitions{network: network}
}

// CanActivate reports whether an agent standing on node may activate it.
func (t *Transitions) CanActivate(s domain.State, node int) bool {
	return !s.Activated.Has(node) && t.network.YieldAt(node) > 0
}

// Expand calls emit once for every state reachable from s in one time unit.
// Successors are produced in a deterministic order and emit returns the
// number of successors.
func (t *Transitions) Expand(s domain.State, emit func(domain.State, domain.Action)) int {
	if s.Agents == 2 {
		return t.expandPair(s, emit)
	}

	n := 0
	pos := s.Positions[0]
	if t.CanActivate(s, pos) {
		a := domain.Action{Kind: domain.ActionActivate, To: [2]int{pos, pos}}
		emit(t.apply(s, a), a)
		n++
	}
	for _, to := range t.network.Adjacent(pos) {
		a := domain.Action{Kind: domain.ActionMove, To: [2]int{to, to}}
		emit(t.apply(s, a), a)
		n++
	}
	return n
}

func (t *Transitions) expandPair(s domain.State, emit func(domain.State, domain.Action)) int {
	n := 0
	a, b := s.Positions[0], s.Positions[1]
	canA, canB := t.CanActivate(s, a), t.CanActivate(s, b)

	if canA {
		for _, to := range t.network.Adjacent(b) {
			act := domain.Action{Kind: domain.ActionActivateMove, To: [2]int{a, to}}
			emit(t.apply(s, act), act)
			n++
		}
	}
	if canB {
		for _, to := range t.network.Adjacent(a) {
			act := domain.Action{Kind: domain.ActionMoveActivate, To: [2]int{to, b}}
			emit(t.apply(s, act), act)
			n++
		}
	}
	if a != b && canA && canB {
		act := domain.Action{Kind: domain.ActionActivateBoth, To: [2]int{a, b}}
		emit(t.apply(s, act), act)
		n++
	}
	for _, toA := range t.network.Adjacent(a) {
		for _, toB := range t.network.Adjacent(b) {
			if toA == toB {
				continue
			}
			act := domain.Action{Kind: domain.ActionMoveBoth, To: [2]int{toA, toB}}
			emit(t.apply(s, act), act)
			n++
		}
	}
	return n
}

// apply advances s by one unit without checking legality.
func (t *Transitions) apply(s domain.State, a domain.Action) domain.State {
	next := s
	next.Elapsed++
	next.Yield += s.Flow
	next.Positions = a.To

	if a.Kind.Activates() {
		next.Activated = next.Activated.With(a.To[0])
		next.Flow += t.network.YieldAt(a.To[0])
	}
	if a.Kind.PartnerActivates() {
		next.Activated = next.Activated.With(a.To[1])
		next.Flow += t.network.YieldAt(a.To[1])
	}
	if s.Agents < 2 {
		next.Positions[1] = next.Positions[0]
	}
	return next
}

// Apply advances s by one unit after checking that a is legal from s.
func (t *Transitions) Apply(s domain.State, a domain.Action) (domain.State, error) {
	var (
		found domain.State
		ok    bool
	)
	t.Expand(s, func(next domain.State, cand domain.Action) {
		if !ok && cand.Kind == a.Kind && sameTargets(s.Agents, cand.To, a.To) {
			found, ok = next, true
		}
	})
	if !ok {
		return s, fmt.Errorf("illegal action %s at elapsed %d", a.Kind, s.Elapsed)
	}
	return found, nil
}

// Replay applies a sequence of actions from s, stopping at the first illegal one.
func (t *Transitions) Replay(s domain.State, actions []domain.Action) (domain.State, error) {
	for i, a := range actions {
		next, err := t.Apply(s, a)
		if err != nil {
			return s, fmt.Errorf("step %d: %w", i, err)
		}
		s = next
	}
	return s, nil
}

func sameTargets(agents int, a, b [2]int) bool {
	if agents < 2 {
		return a[0] == b[0]
	}
	return a == b
}
