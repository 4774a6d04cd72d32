package repos

import "context"

// Accessor opens filesystem paths as version-control working copies.
type Accessor interface {
	// Open opens path as a working copy. It returns ErrNotARepository when
	// path is not the root of one.
	Open(path string) (Repository, error)
}

// Repository is an opened working copy.
type Repository interface {
	// CurrentBranch returns the name of the active reference.
	CurrentBranch() (string, error)

	// HasLocalBranch reports whether a local branch with the given name exists.
	HasLocalBranch(name string) bool

	// TrackedBranch returns the remote and remote branch the local branch
	// name is configured to merge from.
	TrackedBranch(name string) (remote, branch string, ok bool)

	// Remote returns the configured remote with the given name.
	Remote(name string) (Remote, bool)

	// StatusPorcelain returns porcelain v2 status output with the branch header.
	StatusPorcelain(ctx context.Context) (string, error)

	// UntrackedFiles returns the relative paths of untracked files.
	UntrackedFiles() ([]string, error)
}

// Remote is a configured remote of a Repository.
type Remote interface {
	Name() string

	// Reachable reports whether the remote answers an existence probe.
	Reachable(ctx context.Context) bool

	// Pull fetches branch from the remote and merges it into the current
	// branch, reporting transfer units to progress.
	Pull(ctx context.Context, branch string, progress ProgressUnits) error
}

// ProgressUnits receives raw transfer progress. Maximum is zero when unknown.
type ProgressUnits func(current, maximum int)

// ProgressSink receives fractional completion updates in [0, 1].
type ProgressSink interface {
	OnProgress(fraction float64)
}

// Observer is notified as the scan proceeds so that a presentation layer can
// render it.
type Observer interface {
	// DirectoriesFound reports the number of pattern matches at a container level.
	DirectoriesFound(level, count int, containers bool)

	// ContainerEntered reports descent into a container directory.
	ContainerEntered(level int, name string)

	// RepositoryInspected is called once per repository after the sync decision.
	RepositoryInspected(record *Record)

	// PullStarted is called before an eligible repository is pulled.
	PullStarted(record *Record) ProgressSink

	// PullFinished is called after the pull with the outcome set.
	PullFinished(record *Record)
}

// Notes looks up free-form notes for a repository.
type Notes interface {
	Lookup(path, name string) (string, bool)
}
