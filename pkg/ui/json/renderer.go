// Package json provides machine-readable output, one JSON object per line
package json

import (
	"encoding/json"
	"io"
	"sync"

	"github.com/arthur-debert/dot/pkg/errors"
	"github.com/arthur-debert/dot/pkg/types"
)

// Renderer provides JSON output for machine consumption
type Renderer struct {
	mu      sync.Mutex
	encoder *json.Encoder
}

// New creates a new JSON renderer
func New(output io.Writer) *Renderer {
	return &Renderer{encoder: json.NewEncoder(output)}
}

// Report encodes one outcome
func (r *Renderer) Report(outcome types.Outcome) {
	_ = r.encode(outcome)
}

// RenderStatus encodes the status report with its up-to-date flag
func (r *Renderer) RenderStatus(result types.StatusResult) error {
	return r.encode(struct {
		types.StatusResult
		UpToDate bool `json:"up_to_date"`
	}{result, result.UpToDate()})
}

// errorObject is the JSON form of an error
type errorObject struct {
	Error string `json:"error"`
	Code  string `json:"code"`
	Path  string `json:"path,omitempty"`
}

// RenderError renders an error as JSON
func (r *Renderer) RenderError(err error) error {
	return r.encode(errorObject{
		Error: errors.Message(err),
		Code:  string(errors.GetErrorCode(err)),
		Path:  errors.PathOf(err),
	})
}

func (r *Renderer) encode(v interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.encoder.Encode(v)
}
