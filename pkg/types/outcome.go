package types

// OutcomeKind classifies a reported outcome
type OutcomeKind string

const (
	OutcomeInfo     OutcomeKind = "info"
	OutcomeSuccess  OutcomeKind = "success"
	OutcomeWarning  OutcomeKind = "warning"
	OutcomeConflict OutcomeKind = "conflict"
	OutcomeError    OutcomeKind = "error"
)

// Outcome is one user-visible event of an operation
type Outcome struct {
	Kind    OutcomeKind `json:"kind"`
	Op      string      `json:"op,omitempty"`
	Message string      `json:"message"`
	Path    string      `json:"path,omitempty"`
}

// IsProblem reports whether the outcome should survive quiet output
func (o Outcome) IsProblem() bool {
	switch o.Kind {
	case OutcomeWarning, OutcomeConflict, OutcomeError:
		return true
	}
	return false
}
