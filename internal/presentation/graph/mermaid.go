package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/sluice/pkg/domain"
)

// Overlay contains solve data to visualize on the network.
type Overlay struct {
	Start     string
	Visited   []string
	Activated []string
}

// OverlayFromPlan collects the nodes a plan walks through and activates.
func OverlayFromPlan(start string, plan []domain.PlanStep) *Overlay {
	o := &Overlay{Start: start}
	for _, step := range plan {
		o.Visited = append(o.Visited, step.Positions...)
		o.Activated = append(o.Activated, step.Activated...)
	}
	return o
}

// GenerateMermaid produces a Mermaid flowchart of the network.
// It applies semantic styling:
// - Start: ((Circle))
// - Positive yield: {{Hexagon}} labelled with the rate
// - Default: [Rectangle]
// Symmetric tunnels are drawn once as an undirected link. Activated nodes are
// numbered in plan order when an overlay is provided.
func GenerateMermaid(network *domain.Network, overlay *Overlay) string {
	var sb strings.Builder
	sb.WriteString("graph LR\n")

	start := ""
	order := map[string]int{}
	if overlay != nil {
		start = overlay.Start
		for _, id := range overlay.Activated {
			if _, seen := order[id]; !seen {
				order[id] = len(order) + 1
			}
		}
	}

	for _, node := range network.Nodes() {
		safeID := sanitizeMermaidID(node.ID)

		opener, closer := "[", "]"
		switch {
		case node.ID == start:
			opener, closer = "((", "))"
		case node.Yield > 0:
			opener, closer = "{{", "}}"
		}

		text := node.ID
		if node.Yield > 0 {
			text = fmt.Sprintf("%s <br/> %d/unit", node.ID, node.Yield)
		}
		if n, ok := order[node.ID]; ok {
			text = fmt.Sprintf("%s <br/> #%d", text, n)
		}
		fmt.Fprintf(&sb, "    %s%s\"%s\"%s\n", safeID, opener, text, closer)
	}

	for _, node := range network.Nodes() {
		for _, to := range node.Neighbors {
			back := contains(network.Neighbors(to), node.ID)
			switch {
			case back && node.ID < to:
				fmt.Fprintf(&sb, "    %s --- %s\n", sanitizeMermaidID(node.ID), sanitizeMermaidID(to))
			case !back:
				fmt.Fprintf(&sb, "    %s --> %s\n", sanitizeMermaidID(node.ID), sanitizeMermaidID(to))
			}
		}
	}

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for high-contrast on light backgrounds, regardless of theme (Light/Dark)
		sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef activated fill:#c8e6c9,stroke:#2e7d32,stroke-width:4px,color:#000;\n")

		styled := make(map[string]bool)
		for _, id := range overlay.Activated {
			safeID := sanitizeMermaidID(id)
			if !styled[safeID] && network.Has(id) {
				styled[safeID] = true
				fmt.Fprintf(&sb, "    class %s activated;\n", safeID)
			}
		}
		for _, id := range overlay.Visited {
			safeID := sanitizeMermaidID(id)
			if !styled[safeID] && network.Has(id) {
				styled[safeID] = true
				fmt.Fprintf(&sb, "    class %s visited;\n", safeID)
			}
		}
	}

	return sb.String()
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	s = strings.ReplaceAll(s, " ", "_")
	return s
}
