package domain

import (
	"encoding/binary"
	"math/bits"
)

// ActivatedSet is the monotonic set of activated nodes, stored as a bitset over
// node indices. Values are immutable: With returns a new set.
type ActivatedSet struct {
	words []uint64
}

// NewActivatedSet returns an empty set able to hold indices in [0, size).
func NewActivatedSet(size int) ActivatedSet {
	return ActivatedSet{words: make([]uint64, (size+63)/64)}
}

// Has reports whether node index i is activated.
func (s ActivatedSet) Has(i int) bool {
	w := i / 64
	if w >= len(s.words) {
		return false
	}
	return s.words[w]&(1<<(uint(i)%64)) != 0
}

// With returns a copy of the set with node index i added.
func (s ActivatedSet) With(i int) ActivatedSet {
	out := ActivatedSet{words: make([]uint64, len(s.words))}
	copy(out.words, s.words)
	out.words[i/64] |= 1 << (uint(i) % 64)
	return out
}

// Len returns the number of activated nodes.
func (s ActivatedSet) Len() int {
	n := 0
	for _, w := range s.words {
		n += bits.OnesCount64(w)
	}
	return n
}

// Members returns the activated indices in ascending order.
func (s ActivatedSet) Members() []int {
	out := make([]int, 0, s.Len())
	for wi, w := range s.words {
		for w != 0 {
			b := bits.TrailingZeros64(w)
			out = append(out, wi*64+b)
			w &^= 1 << uint(b)
		}
	}
	return out
}

// appendKey appends the canonical encoding of the set.
// Two sets with the same members always produce the same bytes.
func (s ActivatedSet) appendKey(b []byte) []byte {
	for _, w := range s.words {
		b = binary.LittleEndian.AppendUint64(b, w)
	}
	return b
}

// ReducedKey is the projection of a State used for dominance comparison.
// It omits the accumulated yield and, for two agents, does not depend on
// which agent stands where.
type ReducedKey string

// State is one snapshot of the search.
//
// Positions[1] is only meaningful when Agents == 2. Flow caches the summed
// yield rate of the activated nodes, i.e. the credit of the next time unit.
type State struct {
	Elapsed   int
	Agents    int
	Positions [2]int
	Activated ActivatedSet
	Flow      int
	Yield     int
}

// NewRootState returns the state at elapsed time 0: every agent on start,
// nothing activated and nothing accumulated.
func NewRootState(network *Network, start, agents int) State {
	return State{
		Agents:    agents,
		Positions: [2]int{start, start},
		Activated: NewActivatedSet(network.Len()),
	}
}

// Key returns the ReducedKey of the state.
func (s State) Key() ReducedKey {
	a, b := s.Positions[0], s.Positions[1]
	if s.Agents < 2 {
		b = -1
	} else if b < a {
		a, b = b, a
	}

	buf := make([]byte, 0, 2*binary.MaxVarintLen64+8*len(s.Activated.words))
	buf = binary.AppendVarint(buf, int64(a))
	buf = binary.AppendVarint(buf, int64(b))
	buf = s.Activated.appendKey(buf)
	return ReducedKey(buf)
}

// Remaining returns how many time units are left until horizon.
func (s State) Remaining(horizon int) int {
	if s.Elapsed >= horizon {
		return 0
	}
	return horizon - s.Elapsed
}

// Projected returns the yield the state ends with if it coasts to horizon,
// crediting its current flow for every remaining unit.
func (s State) Projected(horizon int) int {
	return s.Yield + s.Remaining(horizon)*s.Flow
}
