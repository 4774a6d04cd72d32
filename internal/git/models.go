package git

// PullRequest describes a pull from a configured remote into the current worktree.
type PullRequest struct {
	Branch   string       // Remote branch to merge; empty uses the remote's HEAD
	Progress ProgressFunc // Receives transfer units, may be nil
}

// ProgressFunc receives raw transfer progress. Maximum is zero when the
// remote did not report a total for the current phase.
type ProgressFunc func(current, maximum int)
