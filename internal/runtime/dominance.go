package runtime

import "github.com/aretw0/sluice/pkg/domain"

// entry is a frontier slot: the state plus its record in the trace arena
// (-1 when tracing is off).
type entry struct {
	state domain.State
	step  int
}

// layerTable is the dominance table of one time layer.
//
// It maps the ReducedKey of every admitted state to its slot in the next
// frontier. All states of a layer share the same elapsed time, so the key does
// not carry it; a fresh table is created for every layer.
type layerTable struct {
	index   map[domain.ReducedKey]int
	entries []entry
	// dominated counts key collisions. Each one drops exactly one state,
	// the newcomer or the one it replaces, so offers == len(entries) + dominated.
	dominated int
}

func newLayerTable(capacity int) *layerTable {
	return &layerTable{
		index:   make(map[domain.ReducedKey]int, capacity),
		entries: make([]entry, 0, capacity),
	}
}

// offer keeps e unless a state with the same key and at least the same yield
// was already admitted. A better state replaces the retained one in place.
// It returns the slot the entry occupies when kept.
func (l *layerTable) offer(e entry) (int, bool) {
	key := e.state.Key()
	if i, ok := l.index[key]; ok {
		l.dominated++
		if l.entries[i].state.Yield >= e.state.Yield {
			return -1, false
		}
		l.entries[i] = e
		return i, true
	}
	l.index[key] = len(l.entries)
	l.entries = append(l.entries, e)
	return len(l.entries) - 1, true
}
