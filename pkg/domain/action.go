package domain

import "fmt"

// ActionKind tags what the agents did during one time unit.
type ActionKind uint8

const (
	// ActionActivate: the single agent activates its node.
	ActionActivate ActionKind = iota + 1
	// ActionMove: the single agent moves to a neighbor.
	ActionMove
	// ActionActivateMove: agent A activates, agent B moves.
	ActionActivateMove
	// ActionMoveActivate: agent A moves, agent B activates.
	ActionMoveActivate
	// ActionActivateBoth: both agents activate their (distinct) nodes.
	ActionActivateBoth
	// ActionMoveBoth: both agents move to distinct destinations.
	ActionMoveBoth
	// ActionSettle: nothing left to change, the state coasts to the horizon.
	ActionSettle
)

var actionNames = map[ActionKind]string{
	ActionActivate:     "activate",
	ActionMove:         "move",
	ActionActivateMove: "activate+move",
	ActionMoveActivate: "move+activate",
	ActionActivateBoth: "activate+activate",
	ActionMoveBoth:     "move+move",
	ActionSettle:       "settle",
}

func (k ActionKind) String() string {
	if name, ok := actionNames[k]; ok {
		return name
	}
	return fmt.Sprintf("action(%d)", uint8(k))
}

// MarshalText encodes the kind by name.
func (k ActionKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText decodes a kind by name.
func (k *ActionKind) UnmarshalText(text []byte) error {
	for kind, name := range actionNames {
		if name == string(text) {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("unknown action %q", text)
}

// Activates reports whether the action activates agent A's node.
func (k ActionKind) Activates() bool {
	return k == ActionActivate || k == ActionActivateMove || k == ActionActivateBoth
}

// PartnerActivates reports whether the action activates agent B's node.
func (k ActionKind) PartnerActivates() bool {
	return k == ActionMoveActivate || k == ActionActivateBoth
}

// Action is a transition taken by the agents.
// To holds the node index each agent stands on after the action; for an
// activating agent it equals its current position.
type Action struct {
	Kind ActionKind
	To   [2]int
}
