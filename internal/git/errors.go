package git

import "errors"

var (
	ErrNotARepository     = errors.New("not a repository")
	ErrInvalidRepository  = errors.New("invalid repository")
	ErrBranchNotFound     = errors.New("branch not found")
	ErrRemoteNotFound     = errors.New("remote not found")
	ErrRemoteUnreachable  = errors.New("remote not accessible")
	ErrStatusFailed       = errors.New("failed to query status")
	ErrPullFailed         = errors.New("failed to pull repository")
	ErrOperationCancelled = errors.New("operation cancelled")
)
