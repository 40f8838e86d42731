package model

// ReconcileResult is the partition of a fetched release list against a
// target. Kept and ToDelete are disjoint and together cover every input
// release; ToDelete preserves the listing order of the fetch.
type ReconcileResult struct {
	Kept     *Release  `json:"kept,omitempty"`
	ToDelete []Release `json:"to_delete"`
}

// TargetFound reports whether any release matched the target
func (r *ReconcileResult) TargetFound() bool {
	return r.Kept != nil
}
