package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
)

// PrintBanner writes the Sluice ASCII banner and version to w.
// Colors degrade to plain text when w is not a terminal.
func PrintBanner(w io.Writer, version string) {
	out := termenv.NewOutput(w)

	lines := []struct {
		text  string
		color string
	}{
		{"       _       _          ", "#38bdf8"},
		{"   ___| |_   _(_) ___ ___ ", "#22d3ee"},
		{"  / __| | | | | |/ __/ _ \\", "#2dd4bf"},
		{"  \\__ \\ | |_| | | (_|  __/", "#34d399"},
		{"  |___/_|\\__,_|_|\\___\\___|", "#4ade80"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, out.String(l.text).Foreground(out.Color(l.color)))
	}
	if v := strings.TrimSpace(version); v != "" {
		fmt.Fprintln(w, out.String("  v"+v).Faint())
	}
	fmt.Fprintln(w)
}
