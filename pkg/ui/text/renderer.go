// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/arthur-debert/dot/pkg/errors"
	"github.com/arthur-debert/dot/pkg/types"
)

// Renderer provides plain text output without colors or styling
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer
func New(output io.Writer) *Renderer {
	return &Renderer{output: output}
}

var labels = map[types.OutcomeKind]string{
	types.OutcomeSuccess:  "ok",
	types.OutcomeInfo:     "info",
	types.OutcomeWarning:  "WARNING",
	types.OutcomeConflict: "WARNING",
	types.OutcomeError:    "ERROR",
}

// Report writes one outcome line
func (r *Renderer) Report(outcome types.Outcome) {
	label, ok := labels[outcome.Kind]
	if !ok {
		label = string(outcome.Kind)
	}

	// conflict messages already name the path
	if outcome.Path == "" || outcome.Kind == types.OutcomeConflict {
		_, _ = fmt.Fprintf(r.output, "%s: %s\n", label, outcome.Message)
		return
	}
	_, _ = fmt.Fprintf(r.output, "%s: %s (%s)\n", label, outcome.Message, outcome.Path)
}

// RenderStatus renders the entries as aligned columns
func (r *Renderer) RenderStatus(result types.StatusResult) error {
	if len(result.Entries) == 0 {
		_, err := fmt.Fprintln(r.output, "No files are tracked yet.")
		return err
	}

	w := tabwriter.NewWriter(r.output, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "FILE\tSTATE\tLOCATION")
	for _, e := range result.Entries {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n", e.LocalKey, e.State, e.Portable)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	state := "up to date"
	if !result.UpToDate() {
		state = "conflicts found"
	}
	_, err := fmt.Fprintf(r.output, "%d tracked, %d linked, %s\n",
		len(result.Entries), result.Count(types.StateLinked), state)
	return err
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	_, werr := fmt.Fprintf(r.output, "Error: %s\n", errors.Message(err))
	return werr
}
