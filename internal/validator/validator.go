package validator

import (
	"fmt"
	"strings"

	"github.com/aretw0/sluice/pkg/domain"
)

// Report describes what a search from Start can reach.
type Report struct {
	Start string `json:"start"`

	// Distance is the hop count from Start for every reachable node.
	Distance map[string]int `json:"distance"`

	// Unreachable lists positive-yield nodes no path from Start leads to.
	Unreachable []string `json:"unreachable,omitempty"`

	// TooFar lists reachable positive-yield nodes that cannot be activated
	// early enough to release anything before the horizon.
	TooFar []string `json:"too_far,omitempty"`

	// OneWay lists tunnels without a reverse tunnel, as "FROM->TO".
	OneWay []string `json:"one_way,omitempty"`

	// DeadEnds lists reachable nodes without neighbors.
	DeadEnds []string `json:"dead_ends,omitempty"`
}

// Issues returns the findings that waste yield: unreachable and too far nodes.
func (r *Report) Issues() []string {
	var issues []string
	for _, id := range r.Unreachable {
		issues = append(issues, fmt.Sprintf("node '%s' has yield but is unreachable from '%s'", id, r.Start))
	}
	for _, id := range r.TooFar {
		issues = append(issues, fmt.Sprintf("node '%s' is %d hops away and cannot yield before the horizon", id, r.Distance[id]))
	}
	return issues
}

// Err folds the issues into a single error, nil when there are none.
func (r *Report) Err() error {
	issues := r.Issues()
	if len(issues) == 0 {
		return nil
	}
	return fmt.Errorf("found %d errors:\n- %s", len(issues), strings.Join(issues, "\n- "))
}

// ValidateNetwork crawls the network breadth-first from start.
// A horizon of 0 skips the TooFar check.
func ValidateNetwork(network *domain.Network, start string, horizon int) (*Report, error) {
	if !network.Has(start) {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownStartNode, start)
	}

	report := &Report{
		Start:    start,
		Distance: map[string]int{start: 0},
	}

	queue := []string{start}
	for len(queue) > 0 {
		currentID := queue[0]
		queue = queue[1:]

		neighbors := network.Neighbors(currentID)
		if len(neighbors) == 0 {
			report.DeadEnds = append(report.DeadEnds, currentID)
		}
		for _, target := range neighbors {
			if _, seen := report.Distance[target]; !seen {
				report.Distance[target] = report.Distance[currentID] + 1
				queue = append(queue, target)
			}
		}
	}

	for _, node := range network.Nodes() {
		for _, to := range node.Neighbors {
			if !contains(network.Neighbors(to), node.ID) {
				report.OneWay = append(report.OneWay, node.ID+"->"+to)
			}
		}
		if node.Yield == 0 {
			continue
		}
		d, ok := report.Distance[node.ID]
		switch {
		case !ok:
			report.Unreachable = append(report.Unreachable, node.ID)
		case horizon > 0 && d+1 >= horizon:
			// Activation lands at unit d+1 and credits only later units.
			report.TooFar = append(report.TooFar, node.ID)
		}
	}

	return report, nil
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
