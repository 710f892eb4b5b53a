package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// Problem bundles a network with the request defaults declared next to it
// (e.g. the start node and horizon written in a network file).
type Problem struct {
	Network  *Network
	Defaults Request
}

// Apply fills the zero fields of req from the problem defaults.
// An explicit BeamUnbounded is not zero and is kept.
func (p *Problem) Apply(req Request) Request {
	if req.Start == "" {
		req.Start = p.Defaults.Start
	}
	if req.Horizon == 0 {
		req.Horizon = p.Defaults.Horizon
	}
	if req.Agents == 0 {
		req.Agents = p.Defaults.Agents
	}
	if req.BeamWidth == 0 {
		req.BeamWidth = p.Defaults.BeamWidth
	}
	if req.Scorer == "" {
		req.Scorer = p.Defaults.Scorer
	}
	return req
}

// Fingerprint returns a stable key for a (network, request) pair.
// Two networks with the same nodes produce the same fingerprint regardless of
// declaration order, and the request is normalized first.
func Fingerprint(network *Network, req Request) string {
	payload := struct {
		Nodes   []NodeSpec `json:"nodes"`
		Request Request    `json:"request"`
	}{
		Nodes:   network.Specs(),
		Request: req.Normalize(),
	}
	// NodeSpec and Request only hold plain values, Marshal cannot fail.
	data, _ := json.Marshal(payload)
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
