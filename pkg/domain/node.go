package domain

import (
	"strconv"
	"strings"
)

// NodeSpec is the raw description of a node handed to Build.
// Loaders (text, YAML, JSON) produce NodeSpecs; the Network is the validated form.
type NodeSpec struct {
	ID        string   `json:"id" yaml:"id" mapstructure:"id"`
	Yield     int      `json:"yield" yaml:"yield" mapstructure:"yield"`
	Neighbors []string `json:"neighbors" yaml:"neighbors" mapstructure:"neighbors"`
}

// Node is a controllable point of the network.
// A Yield of 0 means the node is never worth activating.
type Node struct {
	ID        string   `json:"id"`
	Yield     int      `json:"yield"`
	Neighbors []string `json:"neighbors"`
}

// ParseYield parses a textual yield rate.
// It fails with ErrMalformedInput unless the value is a non-negative integer.
func ParseYield(raw string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, malformed("", "yield %q is not an integer", raw)
	}
	if v < 0 {
		return 0, malformed("", "yield %d is negative", v)
	}
	return v, nil
}
