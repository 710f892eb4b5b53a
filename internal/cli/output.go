package cli

import (
	"encoding/json"
	"io"
	"os"

	"github.com/aretw0/sluice/internal/presentation/tui"
	"github.com/aretw0/sluice/pkg/domain"
	"golang.org/x/term"
)

// Pretty output modes.
const (
	PrettyAuto   = "auto"
	PrettyAlways = "always"
	PrettyNever  = "never"
)

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// wantPretty resolves a pretty mode against the output writer.
func wantPretty(mode string, w io.Writer) bool {
	switch mode {
	case PrettyAlways:
		return true
	case PrettyNever:
		return false
	default:
		return isTerminal(w)
	}
}

// terminalWidth returns the width of w when it is a terminal, 0 otherwise.
func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return width
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// writeResult prints the result as indented JSON, or as a rendered Markdown
// report when pretty is set.
func writeResult(w io.Writer, pretty bool, name string, req domain.Request, res *domain.Result) error {
	if !pretty {
		return writeJSON(w, res)
	}

	style := ""
	if !isTerminal(w) {
		style = "notty"
	}
	render, err := tui.NewRenderer(style, terminalWidth(w))
	if err != nil {
		return err
	}
	out, err := render(tui.Report(name, req, res))
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	return err
}
