// diag.go: the diagnostic sink for scanner and parser reports.
//
// Invalid bytes and malformed statements are not fatal; they are handed to a
// Reporter and the pipeline keeps going. The console reporter renders them
// with pterm; the collecting reporter records them for inspection.
package simpil

import (
	"fmt"
	"io"
	"os"

	"github.com/pterm/pterm"
)

// Reporter receives non-fatal diagnostics. Line is 1-based, col 0-based;
// col is approximate for scanner reports.
type Reporter interface {
	Report(line, col int, msg string)
}

var (
	errorStyleBG = pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
	errorColorFG = pterm.NewStyle(pterm.FgRed)
)

// ConsoleReporter writes diagnostics to a terminal, one per line, with a
// styled tag followed by the location and message.
type ConsoleReporter struct {
	Out io.Writer
	// Color disables the pterm styling when false (piped output, tests).
	Color bool
}

// NewConsoleReporter returns a colored reporter on stderr.
func NewConsoleReporter() *ConsoleReporter {
	return &ConsoleReporter{Out: os.Stderr, Color: true}
}

func (r *ConsoleReporter) Report(line, col int, msg string) {
	body := fmt.Sprintf(" [line %d, column %d] %s\n", line, col+1, msg)
	if !r.Color {
		fmt.Fprintf(r.Out, "Error%s", body)
		return
	}
	fmt.Fprint(r.Out, errorStyleBG.Sprint("Error"), errorColorFG.Sprint(body))
}

// Diagnostic is one collected report.
type Diagnostic struct {
	Line int
	Col  int
	Msg  string
}

// CollectReporter accumulates diagnostics in order. Used by tests and by
// hosts that forward reports elsewhere.
type CollectReporter struct {
	Diags []Diagnostic
}

func (r *CollectReporter) Report(line, col int, msg string) {
	r.Diags = append(r.Diags, Diagnostic{Line: line, Col: col, Msg: msg})
}
