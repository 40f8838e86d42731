package types

import "github.com/m-mizutani/goerr/v2"

// Error tags classify failures by phase. Auth and fetch errors are fatal
// for a run; deletion errors are captured per record and never abort the
// batch.
var (
	ErrTagAuth     = goerr.NewTag("auth")
	ErrTagFetch    = goerr.NewTag("fetch")
	ErrTagDeletion = goerr.NewTag("deletion")
	ErrTagConfig   = goerr.NewTag("config")
)
