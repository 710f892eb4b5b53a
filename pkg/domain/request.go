package domain

import (
	"fmt"
	"time"
)

// Scorer names accepted in Request.Scorer.
const (
	ScorerAccumulated = "accumulated"
	ScorerProjected   = "projected"
	ScorerOptimistic  = "optimistic"
)

// DefaultBeamWidth is the frontier cap used for two agents when none is configured.
const DefaultBeamWidth = 1000

// BeamUnbounded is the BeamWidth that disables the frontier cap.
// A zero BeamWidth is "not set" and is filled from the defaults.
const BeamUnbounded = -1

// ExplicitBeamWidth maps a width a caller set on purpose (a flag, a tool
// argument) to a Request width: 0 asks for no cap at all.
func ExplicitBeamWidth(width int) int {
	if width == 0 {
		return BeamUnbounded
	}
	return width
}

// Request holds the parameters of one search.
type Request struct {
	Start   string `json:"start" yaml:"start" mapstructure:"start"`
	Horizon int    `json:"horizon" yaml:"horizon" mapstructure:"horizon"`
	Agents  int    `json:"agents" yaml:"agents" mapstructure:"agents"`

	// BeamWidth caps the frontier of two-agent searches. 0 takes the default
	// width and BeamUnbounded keeps every state.
	// Single-agent searches always run unbounded.
	BeamWidth int `json:"beam_width" yaml:"beam_width" mapstructure:"beam_width"`

	// Scorer ranks states when the beam trims a layer.
	Scorer string `json:"scorer,omitempty" yaml:"scorer,omitempty" mapstructure:"scorer"`

	// Trace asks the driver to reconstruct the plan that reached the best yield.
	Trace bool `json:"trace,omitempty" yaml:"trace,omitempty" mapstructure:"trace"`
}

// Normalize fills defaults: one agent and the accumulated scorer.
func (r Request) Normalize() Request {
	if r.Agents == 0 {
		r.Agents = 1
	}
	if r.Scorer == "" {
		r.Scorer = ScorerAccumulated
	}
	return r
}

// Validate checks the request ranges. Start node existence is checked by the driver.
func (r Request) Validate() error {
	if r.Horizon < 0 {
		return fmt.Errorf("%w: horizon %d is negative", ErrInvalidRequest, r.Horizon)
	}
	if r.Agents != 1 && r.Agents != 2 {
		return fmt.Errorf("%w: agents must be 1 or 2, got %d", ErrInvalidRequest, r.Agents)
	}
	if r.BeamWidth < BeamUnbounded {
		return fmt.Errorf("%w: beam width %d is negative", ErrInvalidRequest, r.BeamWidth)
	}
	switch r.Scorer {
	case ScorerAccumulated, ScorerProjected, ScorerOptimistic:
	default:
		return fmt.Errorf("%w: unknown scorer %q", ErrInvalidRequest, r.Scorer)
	}
	return nil
}

// PlanStep is one time unit of the best plan found.
type PlanStep struct {
	Elapsed   int        `json:"elapsed"`
	Action    ActionKind `json:"action"`
	Positions []string   `json:"positions"`
	Activated []string   `json:"activated,omitempty"`
	Yield     int        `json:"yield"`
}

// Result is the outcome of a search.
//
// Best is exact only when Exact is true. A two-agent search whose beam trimmed
// at least one layer reports Exact == false: Best is then a lower bound on the
// true optimum.
type Result struct {
	Best      int           `json:"best"`
	Exact     bool          `json:"exact"`
	Layers    int           `json:"layers"`
	Expanded  int           `json:"expanded"`
	Dominated int           `json:"dominated"`
	Trimmed   int           `json:"trimmed"`
	Settled   int           `json:"settled"`
	Peak      int           `json:"peak"`
	Plan      []PlanStep    `json:"plan,omitempty"`
	Duration  time.Duration `json:"duration"`
	Cached    bool          `json:"cached,omitempty"`
}
