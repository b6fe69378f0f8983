package types

// SymLink is a link that was just created. From is the local copy inside
// the repository and To is the original location the link occupies.
type SymLink struct {
	From string `json:"from"`
	To   string `json:"to"`
}
