package runtime

import "github.com/aretw0/sluice/pkg/domain"

type traceStep struct {
	parent  int
	action  domain.Action
	elapsed int
	yield   int
}

// arena stores the (parent, action) record of every admitted state so the
// winning plan can be rebuilt after the search without keeping whole paths
// in the frontier.
type arena struct {
	steps []traceStep
}

func (a *arena) record(parent int, act domain.Action, s domain.State) int {
	a.steps = append(a.steps, traceStep{
		parent:  parent,
		action:  act,
		elapsed: s.Elapsed,
		yield:   s.Yield,
	})
	return len(a.steps) - 1
}

// plan walks back from step to the root and returns the steps in time order.
func (a *arena) plan(network *domain.Network, step, agents int) []domain.PlanStep {
	var out []domain.PlanStep
	for step >= 0 {
		ts := a.steps[step]
		out = append(out, planStep(network, ts, agents))
		step = ts.parent
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

func planStep(network *domain.Network, ts traceStep, agents int) domain.PlanStep {
	ps := domain.PlanStep{
		Elapsed:   ts.elapsed,
		Action:    ts.action.Kind,
		Positions: positionIDs(network, ts.action.To, agents),
		Yield:     ts.yield,
	}
	if ts.action.Kind.Activates() {
		ps.Activated = append(ps.Activated, network.ID(ts.action.To[0]))
	}
	if ts.action.Kind.PartnerActivates() {
		ps.Activated = append(ps.Activated, network.ID(ts.action.To[1]))
	}
	return ps
}

func positionIDs(network *domain.Network, pos [2]int, agents int) []string {
	if agents < 2 {
		return []string{network.ID(pos[0])}
	}
	return []string{network.ID(pos[0]), network.ID(pos[1])}
}
