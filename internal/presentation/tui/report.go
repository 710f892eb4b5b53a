package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/sluice/pkg/domain"
)

// Report formats a solve result as Markdown.
func Report(name string, req domain.Request, res *domain.Result) string {
	var sb strings.Builder

	title := "Solve report"
	if name != "" {
		title += ": " + name
	}
	fmt.Fprintf(&sb, "# %s\n\n", title)

	quality := "exact"
	if !res.Exact {
		quality = "lower bound (beam trimmed)"
	}
	fmt.Fprintf(&sb, "**Best yield: %d** (%s)\n\n", res.Best, quality)

	sb.WriteString("| Parameter | Value |\n|---|---|\n")
	fmt.Fprintf(&sb, "| Start | %s |\n", req.Start)
	fmt.Fprintf(&sb, "| Horizon | %d |\n", req.Horizon)
	fmt.Fprintf(&sb, "| Agents | %d |\n", req.Agents)
	if req.Agents == 2 {
		width := "unbounded"
		if req.BeamWidth > 0 {
			width = fmt.Sprint(req.BeamWidth)
		}
		fmt.Fprintf(&sb, "| Beam | %s (%s) |\n", width, req.Scorer)
	}
	sb.WriteString("\n")

	sb.WriteString("| Search | Count |\n|---|---|\n")
	fmt.Fprintf(&sb, "| Layers | %d |\n", res.Layers)
	fmt.Fprintf(&sb, "| Expanded | %d |\n", res.Expanded)
	fmt.Fprintf(&sb, "| Dominated | %d |\n", res.Dominated)
	fmt.Fprintf(&sb, "| Trimmed | %d |\n", res.Trimmed)
	fmt.Fprintf(&sb, "| Settled | %d |\n", res.Settled)
	fmt.Fprintf(&sb, "| Peak frontier | %d |\n", res.Peak)
	fmt.Fprintf(&sb, "| Duration | %s |\n", res.Duration)
	if res.Cached {
		sb.WriteString("| Cached | yes |\n")
	}

	if len(res.Plan) > 0 {
		sb.WriteString("\n## Plan\n\n")
		sb.WriteString("| Unit | Action | Positions | Activated | Yield |\n|---|---|---|---|---|\n")
		for _, step := range res.Plan {
			fmt.Fprintf(&sb, "| %d | %s | %s | %s | %d |\n",
				step.Elapsed,
				step.Action,
				strings.Join(step.Positions, ", "),
				strings.Join(step.Activated, ", "),
				step.Yield,
			)
		}
	}

	return sb.String()
}
