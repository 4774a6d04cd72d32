package git

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-git/go-git/v6"
	"github.com/go-git/go-git/v6/plumbing"
	"go.uber.org/zap"
)

// Remote is a remote configured on an opened Repository.
type Remote struct {
	remote *git.Remote
	repo   *Repository
}

func (r *Remote) Name() string {
	return r.remote.Config().Name
}

// Probe lists the remote's references to check that it answers.
func (r *Remote) Probe(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, r.repo.config.ProbeTimeout)
	defer cancel()

	if _, err := r.remote.ListContext(ctx, &git.ListOptions{}); err != nil {
		r.repo.logger.Debug("remote probe failed", zap.String("remote", r.Name()), zap.Error(err))
		return fmt.Errorf("%w: %w", ErrRemoteUnreachable, err)
	}

	return nil
}

// Pull fetches from the remote and fast-forwards the current branch.
// An already up to date worktree is not an error.
func (r *Remote) Pull(ctx context.Context, req PullRequest) error {
	logger := r.repo.logger.With(zap.String("remote", r.Name()), zap.String("branch", req.Branch))
	logger.Debug("pulling repository")

	worktree, err := r.repo.repo.Worktree()
	if err != nil {
		logger.Error("failed to get worktree", zap.Error(err))
		return fmt.Errorf("%w: %w", ErrInvalidRepository, err)
	}

	pullOptions := &git.PullOptions{
		RemoteName: r.Name(),
	}
	if req.Branch != "" {
		pullOptions.ReferenceName = plumbing.NewBranchReferenceName(req.Branch)
	}
	if req.Progress != nil {
		pullOptions.Progress = newSidebandProgress(req.Progress)
	}

	err = worktree.PullContext(ctx, pullOptions)
	if errors.Is(err, git.NoErrAlreadyUpToDate) {
		logger.Debug("repository already up to date")
		return nil
	}
	if errors.Is(err, context.Canceled) {
		return fmt.Errorf("%w: %w", ErrOperationCancelled, err)
	}
	if err != nil {
		logger.Error("failed to pull repository", zap.Error(err))
		return fmt.Errorf("%w: %w", ErrPullFailed, err)
	}

	logger.Debug("repository pulled successfully")

	return nil
}
