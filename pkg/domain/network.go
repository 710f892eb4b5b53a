package domain

import "sort"

// Network is the static graph the optimizer searches over.
// It is built once by Build and is read-only afterwards.
//
// Nodes are addressed by their string ID in the public API. Internally each
// node is assigned a dense index (sorted ID order) so that search states hold
// small integers and the activated set can be a bitset.
type Network struct {
	ids      []string
	index    map[string]int
	yields   []int
	adj      [][]int
	positive []int
	total    int
}

// Build validates the node specs and compiles them into a Network.
// It fails with ErrMalformedInput when an ID is empty or duplicated, a yield
// rate is negative, or a neighbor list references an unknown node, repeats a
// node or loops back to its owner.
func Build(specs []NodeSpec) (*Network, error) {
	n := &Network{
		ids:   make([]string, 0, len(specs)),
		index: make(map[string]int, len(specs)),
	}

	byID := make(map[string]NodeSpec, len(specs))
	for _, s := range specs {
		if s.ID == "" {
			return nil, malformed("", "node missing ID")
		}
		if _, dup := byID[s.ID]; dup {
			return nil, malformed(s.ID, "duplicate node")
		}
		if s.Yield < 0 {
			return nil, malformed(s.ID, "yield %d is negative", s.Yield)
		}
		byID[s.ID] = s
		n.ids = append(n.ids, s.ID)
	}
	sort.Strings(n.ids)

	for i, id := range n.ids {
		n.index[id] = i
	}

	n.yields = make([]int, len(n.ids))
	n.adj = make([][]int, len(n.ids))
	for i, id := range n.ids {
		s := byID[id]
		n.yields[i] = s.Yield
		if s.Yield > 0 {
			n.positive = append(n.positive, i)
			n.total += s.Yield
		}

		seen := make(map[string]bool, len(s.Neighbors))
		adj := make([]int, 0, len(s.Neighbors))
		for _, to := range s.Neighbors {
			if to == id {
				return nil, malformed(id, "self-loop")
			}
			if seen[to] {
				return nil, malformed(id, "duplicate neighbor %q", to)
			}
			j, ok := n.index[to]
			if !ok {
				return nil, malformed(id, "unknown neighbor %q", to)
			}
			seen[to] = true
			adj = append(adj, j)
		}
		n.adj[i] = adj
	}

	return n, nil
}

// Len returns the number of nodes.
func (n *Network) Len() int { return len(n.ids) }

// Has reports whether id is a node of the network.
func (n *Network) Has(id string) bool {
	_, ok := n.index[id]
	return ok
}

// Index returns the dense index of a node.
func (n *Network) Index(id string) (int, bool) {
	i, ok := n.index[id]
	return i, ok
}

// ID returns the node ID at a dense index.
func (n *Network) ID(i int) string { return n.ids[i] }

// IDs returns all node IDs in sorted order.
func (n *Network) IDs() []string {
	out := make([]string, len(n.ids))
	copy(out, n.ids)
	return out
}

// Neighbors returns the ordered neighbor IDs of a node, or nil for an unknown node.
func (n *Network) Neighbors(id string) []string {
	i, ok := n.index[id]
	if !ok {
		return nil
	}
	out := make([]string, len(n.adj[i]))
	for k, j := range n.adj[i] {
		out[k] = n.ids[j]
	}
	return out
}

// YieldRate returns the per-unit yield of a node once activated (0 for unknown nodes).
func (n *Network) YieldRate(id string) int {
	i, ok := n.index[id]
	if !ok {
		return 0
	}
	return n.yields[i]
}

// Node returns the public view of a node.
func (n *Network) Node(id string) (Node, bool) {
	if !n.Has(id) {
		return Node{}, false
	}
	return Node{ID: id, Yield: n.YieldRate(id), Neighbors: n.Neighbors(id)}, true
}

// Nodes returns every node in sorted ID order.
func (n *Network) Nodes() []Node {
	out := make([]Node, 0, len(n.ids))
	for _, id := range n.ids {
		node, _ := n.Node(id)
		out = append(out, node)
	}
	return out
}

// Specs returns the node specs the network was built from, in sorted ID order.
func (n *Network) Specs() []NodeSpec {
	out := make([]NodeSpec, 0, len(n.ids))
	for _, node := range n.Nodes() {
		out = append(out, NodeSpec(node))
	}
	return out
}

// YieldAt returns the yield rate of the node at index i.
func (n *Network) YieldAt(i int) int { return n.yields[i] }

// Adjacent returns the neighbor indices of the node at index i.
// The returned slice must not be modified.
func (n *Network) Adjacent(i int) []int { return n.adj[i] }

// PositiveCount returns how many nodes have a positive yield rate.
func (n *Network) PositiveCount() int { return len(n.positive) }

// TotalYield returns the sum of all yield rates.
func (n *Network) TotalYield() int { return n.total }
