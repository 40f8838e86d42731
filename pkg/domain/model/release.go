package model

// Release represents one remote release record as returned by the store.
// The ID is store-assigned and immutable; name and tag are snapshots taken
// at fetch time.
type Release struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Tag  string `json:"tag"`
}

// MatchMode selects how a target is compared against a release
type MatchMode string

const (
	// MatchAny keeps a release when its name or tag matches the target.
	// This mirrors the historical cleanup behavior and is the default.
	MatchAny MatchMode = "any"

	// MatchAll keeps a release only when both name and tag match
	MatchAll MatchMode = "all"
)

// Target identifies the single release that must survive a cleanup run
type Target struct {
	Name string    `json:"name"`
	Tag  string    `json:"tag"`
	Mode MatchMode `json:"mode"`
}

// Matches reports whether the release is the one to keep
func (t *Target) Matches(r *Release) bool {
	if t.Mode == MatchAll {
		return r.Name == t.Name && r.Tag == t.Tag
	}
	return r.Name == t.Name || r.Tag == t.Tag
}
