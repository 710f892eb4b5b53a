package runtime_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/aretw0/sluice/internal/runtime"
	"github.com/aretw0/sluice/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type successor struct {
	state  domain.State
	action domain.Action
}

func successors(tr *runtime.Transitions, s domain.State) []successor {
	var out []successor
	tr.Expand(s, func(next domain.State, a domain.Action) {
		out = append(out, successor{state: next, action: a})
	})
	return out
}

func TestTransitions_SingleAgent(t *testing.T) {
	net := exampleNetwork(t)
	tr := runtime.NewTransitions(net)
	dd := index(t, net, "DD")

	root := domain.NewRootState(net, dd, 1)
	next := successors(tr, root)

	// activate DD + three moves
	require.Len(t, next, 4)
	assert.Equal(t, domain.ActionActivate, next[0].action.Kind)
	assert.True(t, next[0].state.Activated.Has(dd))
	assert.Equal(t, 20, next[0].state.Flow)
	assert.Zero(t, next[0].state.Yield, "activation credits the flow from before the action")

	for _, s := range next[1:] {
		assert.Equal(t, domain.ActionMove, s.action.Kind)
		assert.Equal(t, 1, s.state.Elapsed)
		assert.Zero(t, s.state.Activated.Len())
	}
	assert.Equal(t, "CC", net.ID(next[1].state.Positions[0]))
	assert.Equal(t, "AA", net.ID(next[2].state.Positions[0]))
	assert.Equal(t, "EE", net.ID(next[3].state.Positions[0]))

	// no second activation of the same node, credit from the activated set
	after := successors(tr, next[0].state)
	require.Len(t, after, 3)
	for _, s := range after {
		assert.Equal(t, domain.ActionMove, s.action.Kind)
		assert.Equal(t, 20, s.state.Yield)
	}
}

func TestTransitions_ZeroYieldIsNeverActivated(t *testing.T) {
	net := exampleNetwork(t)
	tr := runtime.NewTransitions(net)
	root := domain.NewRootState(net, index(t, net, "AA"), 1)

	for _, s := range successors(tr, root) {
		assert.Equal(t, domain.ActionMove, s.action.Kind)
	}
}

func TestTransitions_DualAgentCategories(t *testing.T) {
	net := exampleNetwork(t)
	tr := runtime.NewTransitions(net)
	bb, dd := index(t, net, "BB"), index(t, net, "DD")

	s := domain.State{Agents: 2, Positions: [2]int{bb, dd}, Activated: domain.NewActivatedSet(net.Len())}
	counts := map[domain.ActionKind]int{}
	for _, n := range successors(tr, s) {
		counts[n.action.Kind]++
		assert.Equal(t, 1, n.state.Elapsed)
		if n.action.Kind == domain.ActionMoveBoth {
			assert.NotEqual(t, n.state.Positions[0], n.state.Positions[1])
		}
	}

	assert.Equal(t, 3, counts[domain.ActionActivateMove], "A opens BB, B walks to each of DD's 3 neighbors")
	assert.Equal(t, 2, counts[domain.ActionMoveActivate], "B opens DD, A walks to each of BB's 2 neighbors")
	assert.Equal(t, 1, counts[domain.ActionActivateBoth])
	// BB -> {CC, AA} x DD -> {CC, AA, EE} minus (CC,CC) and (AA,AA)
	assert.Equal(t, 4, counts[domain.ActionMoveBoth])
}

func TestTransitions_DualAgentSameNodeCannotActivateTwice(t *testing.T) {
	net := exampleNetwork(t)
	tr := runtime.NewTransitions(net)
	bb := index(t, net, "BB")

	s := domain.State{Agents: 2, Positions: [2]int{bb, bb}, Activated: domain.NewActivatedSet(net.Len())}
	for _, n := range successors(tr, s) {
		assert.NotEqual(t, domain.ActionActivateBoth, n.action.Kind)
		if n.action.Kind == domain.ActionMoveBoth {
			assert.NotEqual(t, n.state.Positions[0], n.state.Positions[1])
		}
	}
}

func TestTransitions_DeadEnd(t *testing.T) {
	net := mustBuild(t, []domain.NodeSpec{{ID: "N", Yield: 5}})
	tr := runtime.NewTransitions(net)

	s := domain.NewRootState(net, 0, 1)
	next := successors(tr, s)
	require.Len(t, next, 1)

	assert.Empty(t, successors(tr, next[0].state), "activated isolated node has nowhere to go")
}

func TestTransitions_ApplyRejectsIllegalActions(t *testing.T) {
	net := exampleNetwork(t)
	tr := runtime.NewTransitions(net)
	aa, hh := index(t, net, "AA"), index(t, net, "HH")
	root := domain.NewRootState(net, aa, 1)

	_, err := tr.Apply(root, domain.Action{Kind: domain.ActionActivate, To: [2]int{aa, aa}})
	assert.Error(t, err, "AA has no yield")

	_, err = tr.Apply(root, domain.Action{Kind: domain.ActionMove, To: [2]int{hh, hh}})
	assert.Error(t, err, "HH is not adjacent to AA")
}

func TestTransitions_ReplayIsDeterministic(t *testing.T) {
	net := exampleNetwork(t)
	tr := runtime.NewTransitions(net)
	rng := rand.New(rand.NewSource(16))
	root := domain.NewRootState(net, index(t, net, "AA"), 2)

	// walk a random legal path and record its actions
	var actions []domain.Action
	s := root
	for i := 0; i < 20; i++ {
		next := successors(tr, s)
		if len(next) == 0 {
			break
		}
		pick := next[rng.Intn(len(next))]
		actions = append(actions, pick.action)
		s = pick.state
	}

	for i := 0; i < 3; i++ {
		again, err := tr.Replay(root, actions)
		require.NoError(t, err)
		assert.Equal(t, s.Yield, again.Yield)
		assert.Equal(t, s.Key(), again.Key())
	}
}

func TestEngine_PlanReplaysToBest(t *testing.T) {
	net := exampleNetwork(t)
	engine := runtime.NewEngine(net)

	for _, req := range []domain.Request{
		{Start: "AA", Horizon: 30, Agents: 1, Trace: true},
		{Start: "AA", Horizon: 26, Agents: 2, Trace: true},
	} {
		res, err := engine.Run(context.Background(), req)
		require.NoError(t, err)
		require.NotEmpty(t, res.Plan)

		last := res.Plan[len(res.Plan)-1]
		assert.Equal(t, res.Best, last.Yield)
		assert.Equal(t, req.Horizon, last.Elapsed)

		var actions []domain.Action
		for _, step := range res.Plan {
			if step.Action == domain.ActionSettle {
				continue
			}
			a := domain.Action{Kind: step.Action}
			for k, id := range step.Positions {
				a.To[k] = index(t, net, id)
			}
			if req.Agents == 1 {
				a.To[1] = a.To[0]
			}
			actions = append(actions, a)
		}

		end, err := engine.Transitions().Replay(domain.NewRootState(net, index(t, net, "AA"), req.Agents), actions)
		require.NoError(t, err)
		assert.Equal(t, res.Best, end.Projected(req.Horizon))
	}
}
