package model

// DeletionOutcome records the result of one deletion attempt. Exactly one
// outcome exists per deletion candidate, in candidate order. Error carries
// the message for JSON output; Err keeps the original error for callers.
type DeletionOutcome struct {
	Release Release `json:"release"`
	Error   string  `json:"error,omitempty"`
	Err     error   `json:"-"`
}

// Succeeded reports whether the deletion went through
func (o *DeletionOutcome) Succeeded() bool {
	return o.Err == nil
}

// RunStatus is the overall status of a cleanup run
type RunStatus string

const (
	// StatusOK means every deletion succeeded, or nothing needed deletion
	StatusOK RunStatus = "ok"

	// StatusPartialFailure means at least one deletion failed
	StatusPartialFailure RunStatus = "partial_failure"

	// StatusTargetNotFound means no release matched the target. The run
	// itself may still have completed; this flags it distinctly from
	// ordinary success.
	StatusTargetNotFound RunStatus = "target_not_found"
)

// RunSummary aggregates one cleanup run for reporting
type RunSummary struct {
	Status       RunStatus         `json:"status"`
	Kept         *Release          `json:"kept,omitempty"`
	TargetFound  bool              `json:"target_found"`
	DryRun       bool              `json:"dry_run"`
	Planned      []Release         `json:"planned"`
	Outcomes     []DeletionOutcome `json:"outcomes"`
	SuccessCount int               `json:"success_count"`
	FailureCount int               `json:"failure_count"`
}

// Failures returns the outcomes whose deletion failed, in candidate order
func (s *RunSummary) Failures() []DeletionOutcome {
	var failed []DeletionOutcome
	for _, o := range s.Outcomes {
		if !o.Succeeded() {
			failed = append(failed, o)
		}
	}
	return failed
}
