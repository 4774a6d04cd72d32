package repos

import (
	"context"
	"errors"
	"fmt"

	"github.com/apiarycd/gitwip/internal/git"
)

// gitAdapter adapts the git.Service to implement the Accessor interface.
type gitAdapter struct {
	gitSvc *git.Service
}

// NewGitAdapter creates a new Git adapter.
func NewGitAdapter(gitSvc *git.Service) Accessor {
	return &gitAdapter{gitSvc: gitSvc}
}

// Open opens path as a working copy.
func (a *gitAdapter) Open(path string) (Repository, error) {
	repo, err := a.gitSvc.Open(path)
	if errors.Is(err, git.ErrNotARepository) {
		return nil, fmt.Errorf("%w: %w", ErrNotARepository, err)
	}
	if err != nil {
		return nil, err
	}

	return &gitRepository{repo: repo}, nil
}

type gitRepository struct {
	repo *git.Repository
}

func (r *gitRepository) CurrentBranch() (string, error) {
	return r.repo.CurrentBranch()
}

func (r *gitRepository) HasLocalBranch(name string) bool {
	return r.repo.HasLocalBranch(name)
}

func (r *gitRepository) TrackedBranch(name string) (string, string, bool) {
	return r.repo.TrackedBranch(name)
}

func (r *gitRepository) Remote(name string) (Remote, bool) {
	remote, err := r.repo.Remote(name)
	if err != nil {
		return nil, false
	}

	return &gitRemote{remote: remote}, true
}

func (r *gitRepository) StatusPorcelain(ctx context.Context) (string, error) {
	return r.repo.StatusPorcelain(ctx)
}

func (r *gitRepository) UntrackedFiles() ([]string, error) {
	return r.repo.UntrackedFiles()
}

type gitRemote struct {
	remote *git.Remote
}

func (r *gitRemote) Name() string {
	return r.remote.Name()
}

func (r *gitRemote) Reachable(ctx context.Context) bool {
	return r.remote.Probe(ctx) == nil
}

func (r *gitRemote) Pull(ctx context.Context, branch string, progress ProgressUnits) error {
	return r.remote.Pull(ctx, git.PullRequest{
		Branch:   branch,
		Progress: git.ProgressFunc(progress),
	})
}
