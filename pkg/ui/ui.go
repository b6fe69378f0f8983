// Package ui renders engine outcomes and command results in the terminal
// (styled), text (plain) and json (one object per line) formats.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/dot/pkg/types"
	"github.com/arthur-debert/dot/pkg/ui/json"
	"github.com/arthur-debert/dot/pkg/ui/terminal"
	"github.com/arthur-debert/dot/pkg/ui/text"
)

// Renderer is the common interface for all output renderers. It is the
// engine's Reporter and also renders whole results and errors.
type Renderer interface {
	types.Reporter

	// RenderStatus renders the per-entry status report
	RenderStatus(result types.StatusResult) error

	// RenderError renders an error with appropriate formatting
	RenderError(err error) error
}

// NewRenderer creates a new renderer based on the specified format.
// It automatically detects terminal capabilities when format is Auto.
// A quiet renderer only reports warnings, conflicts and errors.
func NewRenderer(format Format, output io.Writer, quiet bool) (Renderer, error) {
	r, err := newRenderer(format, output)
	if err != nil {
		return nil, err
	}
	if quiet {
		return &quietRenderer{Renderer: r}, nil
	}
	return r, nil
}

func newRenderer(format Format, output io.Writer) (Renderer, error) {
	switch format {
	case FormatAuto:
		if file, ok := output.(*os.File); ok {
			return newRenderer(DetectFormat(file), output)
		}
		return newRenderer(FormatText, output)
	case FormatTerminal:
		return terminal.New(output), nil
	case FormatText:
		return text.New(output), nil
	case FormatJSON:
		return json.New(output), nil
	default:
		return nil, fmt.Errorf("unknown format: %v", format)
	}
}

// quietRenderer drops outcomes that are not problems
type quietRenderer struct {
	Renderer
}

func (q *quietRenderer) Report(outcome types.Outcome) {
	if outcome.IsProblem() {
		q.Renderer.Report(outcome)
	}
}
