package repos

import (
	"fmt"
	"path/filepath"
)

// Mode selects how deep the traversal descends before it expects repositories.
type Mode string

const (
	ModeSingle          Mode = "repo"                // The target itself is the repository
	ModeFlatContainer   Mode = "dir_of_repos"        // Subdirectories are repositories
	ModeNestedContainer Mode = "dir_of_dir_of_repos" // Subdirectories hold repositories
	ModeTreeSearch      Mode = "tree_search"         // Arbitrary depth, not implemented
)

// Depth returns the number of container levels above the repositories.
func (m Mode) Depth() (int, error) {
	switch m {
	case ModeSingle:
		return 0, nil
	case ModeFlatContainer:
		return 1, nil
	case ModeNestedContainer:
		return 2, nil //nolint:mnd // container of containers
	case ModeTreeSearch:
		return 0, fmt.Errorf("%w: %q is not implemented", ErrUnsupportedMode, m)
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedMode, m)
	}
}

// Target is the root of a scan.
type Target struct {
	Path    string // Directory the scan starts from
	Depth   int    // Container levels above the repositories
	Pattern string // Glob matched against directory names at each container level
}

// NewTarget builds a Target from a traversal mode.
func NewTarget(path string, mode Mode, pattern string) (Target, error) {
	depth, err := mode.Depth()
	if err != nil {
		return Target{}, err
	}

	if path == "" {
		return Target{}, fmt.Errorf("%w: empty path", ErrInvalidTarget)
	}

	if pattern == "" {
		pattern = "*"
	}
	if _, err := filepath.Match(pattern, ""); err != nil {
		return Target{}, fmt.Errorf("%w: %w", ErrInvalidPattern, err)
	}

	return Target{
		Path:    path,
		Depth:   depth,
		Pattern: pattern,
	}, nil
}

// Candidate is a directory handed to the inspector. The process working
// directory is the candidate itself while it is being processed.
type Candidate struct {
	Dir   string // Name as matched, relative to its container
	Path  string // Absolute path
	Index int    // 1-based position within its container, 0 for a single target
	Level int    // Number of containers above the candidate
	Err   error  // Set when the directory could not be entered
}

type SyncState string

const (
	StateInspected   SyncState = "inspected"
	StateEligible    SyncState = "eligible"
	StateNotEligible SyncState = "not_eligible"
)

type PullOutcome string

const (
	PullNotAttempted PullOutcome = "not_attempted"
	PullNotEligible  PullOutcome = "not_eligible"
	PullPulled       PullOutcome = "pulled"
	PullFailed       PullOutcome = "failed"
)

// DiagnosticRemoteUnreachable is recorded when the primary remote does not
// answer the reachability probe.
const DiagnosticRemoteUnreachable = "Remote not accessible"

// Record is the state of one discovered working copy.
type Record struct {
	// Identity
	Path  string // Absolute path, unique per run
	Name  string // Base name of Path
	Dir   string // Directory as discovered
	Index int
	Level int

	// Inspection
	CurrentBranch  string
	PrimaryBranch  string // Empty when no candidate branch exists
	PrimaryRemote  string // Empty when no candidate remote is configured
	UpstreamBranch string // Branch on PrimaryRemote the current branch tracks, if configured
	Ahead          int
	Behind         int
	UntrackedFiles []string

	// Sync
	State        SyncState
	PullOutcome  PullOutcome
	Diagnostics  []string
	ErrorMessage string

	// Presentation
	Note    string
	Details []string
}

// OnPrimaryBranch reports whether a primary branch was resolved and is checked out.
func (r *Record) OnPrimaryBranch() bool {
	return r.PrimaryBranch != "" && r.CurrentBranch == r.PrimaryBranch
}

// Errored reports whether inspection or the pull failed.
func (r *Record) Errored() bool {
	return r.ErrorMessage != ""
}

// Printed reports whether any detail line was emitted.
func (r *Record) Printed() bool {
	return len(r.Details) > 0
}

// PullBranch returns the branch the executor pulls: the tracked upstream
// branch when one is configured on the primary remote, else the primary
// branch when it is checked out, otherwise the current branch.
func (r *Record) PullBranch() string {
	if r.UpstreamBranch != "" {
		return r.UpstreamBranch
	}
	if r.OnPrimaryBranch() {
		return r.PrimaryBranch
	}

	return r.CurrentBranch
}

func (r *Record) addDiagnostic(diagnostic string) {
	r.Diagnostics = append(r.Diagnostics, diagnostic)
}
