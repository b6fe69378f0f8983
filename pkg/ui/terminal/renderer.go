// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"

	"github.com/arthur-debert/dot/pkg/errors"
	"github.com/arthur-debert/dot/pkg/types"
	"github.com/arthur-debert/dot/pkg/ui/styles"
	"github.com/pterm/pterm"
)

// Renderer provides styled terminal output
type Renderer struct {
	output io.Writer
	styles *styles.Registry
}

// New creates a new terminal renderer
func New(output io.Writer) *Renderer {
	return &Renderer{output: output, styles: styles.Load()}
}

var markers = map[types.OutcomeKind]struct{ glyph, style string }{
	types.OutcomeSuccess:  {"✓", "Success"},
	types.OutcomeInfo:     {"•", "Info"},
	types.OutcomeWarning:  {"!", "Warning"},
	types.OutcomeConflict: {"!", "Warning"},
	types.OutcomeError:    {"✗", "Error"},
}

// Report writes one outcome line
func (r *Renderer) Report(outcome types.Outcome) {
	m, ok := markers[outcome.Kind]
	if !ok {
		m = markers[types.OutcomeInfo]
	}

	line := r.styles.Render(m.style, m.glyph) + " " + outcome.Message
	if outcome.Path != "" {
		line += "  " + r.styles.Render("Path", outcome.Path)
	}
	_, _ = fmt.Fprintln(r.output, line)
}

var stateStyles = map[types.EntryState]*pterm.Style{
	types.StateLinked:       pterm.NewStyle(pterm.FgGreen),
	types.StateMissingLink:  pterm.NewStyle(pterm.FgYellow),
	types.StateConflict:     pterm.NewStyle(pterm.FgRed, pterm.Bold),
	types.StateLocalMissing: pterm.NewStyle(pterm.FgRed),
}

// RenderStatus renders the entries as a table
func (r *Renderer) RenderStatus(result types.StatusResult) error {
	if len(result.Entries) == 0 {
		_, err := fmt.Fprintln(r.output, r.styles.Render("Info", "No files are tracked yet."))
		return err
	}

	data := pterm.TableData{{"File", "State", "Location"}}
	for _, e := range result.Entries {
		state := string(e.State)
		if style, ok := stateStyles[e.State]; ok {
			state = style.Sprint(state)
		}
		data = append(data, []string{e.LocalKey, state, e.Portable})
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(r.output, table); err != nil {
		return err
	}

	summary := fmt.Sprintf("%d tracked, %d linked", len(result.Entries), result.Count(types.StateLinked))
	if result.UpToDate() {
		summary = r.styles.Render("Success", "Up to date") + "  " + summary
	} else {
		summary = r.styles.Render("Warning", "Conflicts found") + "  " + summary
	}
	_, err = fmt.Fprintln(r.output, summary)
	return err
}

// RenderError renders an error with its code
func (r *Renderer) RenderError(err error) error {
	line := r.styles.Render("Error", "✗ Error:") + " " + errors.Message(err)
	if code := errors.GetErrorCode(err); code != errors.ErrUnknown {
		line += "  " + r.styles.Render("Code", string(code))
	}
	_, werr := fmt.Fprintln(r.output, line)
	return werr
}
