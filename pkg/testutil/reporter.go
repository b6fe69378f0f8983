package testutil

import (
	"sync"

	"github.com/arthur-debert/dot/pkg/types"
	"github.com/stretchr/testify/mock"
)

// RecordingReporter keeps every reported outcome
type RecordingReporter struct {
	mu       sync.Mutex
	Outcomes []types.Outcome
}

// Report records outcome
func (r *RecordingReporter) Report(outcome types.Outcome) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Outcomes = append(r.Outcomes, outcome)
}

// OfKind returns the recorded outcomes of one kind
func (r *RecordingReporter) OfKind(kind types.OutcomeKind) []types.Outcome {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []types.Outcome
	for _, o := range r.Outcomes {
		if o.Kind == kind {
			out = append(out, o)
		}
	}
	return out
}

// Reset drops every recorded outcome
func (r *RecordingReporter) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Outcomes = nil
}

// MockReporter is a testify mock of types.Reporter
type MockReporter struct {
	mock.Mock
}

// Report records the call
func (m *MockReporter) Report(outcome types.Outcome) {
	m.Called(outcome)
}
