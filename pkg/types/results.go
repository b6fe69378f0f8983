package types

// EntryState is the reconciliation state of one tracked entry
type EntryState string

const (
	// StateLinked means the original location is a symlink. This is the converged state.
	StateLinked EntryState = "linked"
	// StateMissingLink means nothing occupies the original location yet
	StateMissingLink EntryState = "missing"
	// StateConflict means a non-symlink occupies the original location
	StateConflict EntryState = "conflict"
	// StateLocalMissing means the local copy inside the repository is gone
	StateLocalMissing EntryState = "local-missing"
)

// AddResult describes a file that was moved into the repository
type AddResult struct {
	LocalKey string  `json:"local_key"`
	Portable string  `json:"original"`
	Link     SymLink `json:"link"`
}

// RemoveResult describes a file that was restored to its original location
type RemoveResult struct {
	LocalKey string `json:"local_key"`
	Restored string `json:"restored"`
}

// SyncResult lists what one sync pass did, each slice in manifest order
type SyncResult struct {
	Created   []SymLink `json:"created"`
	Unchanged []string  `json:"unchanged"`
	Conflicts []string  `json:"conflicts"`
}

// Changed reports whether the pass touched the filesystem
func (r SyncResult) Changed() bool {
	return len(r.Created) > 0
}

// EntryStatus is the read-only view of one tracked entry
type EntryStatus struct {
	LocalKey   string     `json:"local_key"`
	Portable   string     `json:"original"`
	Resolved   string     `json:"resolved"`
	LocalPath  string     `json:"local_path"`
	State      EntryState `json:"state"`
	LinkTarget string     `json:"link_target,omitempty"`
}

// StatusResult is the per-entry report of a status check
type StatusResult struct {
	Entries []EntryStatus `json:"entries"`
}

// UpToDate reports whether no entry is blocked by a conflict
func (r StatusResult) UpToDate() bool {
	for _, e := range r.Entries {
		if e.State == StateConflict {
			return false
		}
	}
	return true
}

// Count returns how many entries are in the given state
func (r StatusResult) Count(state EntryState) int {
	n := 0
	for _, e := range r.Entries {
		if e.State == state {
			n++
		}
	}
	return n
}
