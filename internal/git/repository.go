package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"slices"
	"strings"

	"github.com/go-git/go-git/v6"
	"github.com/go-git/go-git/v6/plumbing"
	"go.uber.org/zap"
)

// Repository is an opened working copy.
type Repository struct {
	path   string
	repo   *git.Repository
	config Config
	logger *zap.Logger
}

// Path returns the absolute path of the working copy.
func (r *Repository) Path() string {
	return r.path
}

// CurrentBranch returns the short name of the reference HEAD points to. The
// branch does not need a commit yet. A detached HEAD reports "HEAD".
func (r *Repository) CurrentBranch() (string, error) {
	head, err := r.repo.Reference(plumbing.HEAD, false)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidRepository, err)
	}

	if head.Type() == plumbing.SymbolicReference {
		return head.Target().Short(), nil
	}

	return head.Name().Short(), nil
}

// TrackedBranch returns the remote and remote branch configured as the
// upstream of the local branch name.
func (r *Repository) TrackedBranch(name string) (string, string, bool) {
	branch, err := r.repo.Branch(name)
	if err != nil || branch.Remote == "" || branch.Merge == "" {
		return "", "", false
	}

	return branch.Remote, branch.Merge.Short(), true
}

// HasLocalBranch reports whether refs/heads/<name> exists.
func (r *Repository) HasLocalBranch(name string) bool {
	_, err := r.repo.Reference(plumbing.NewBranchReferenceName(name), false)
	return err == nil
}

// Remote returns the configured remote with the given name. Reachability is
// not checked.
func (r *Repository) Remote(name string) (*Remote, error) {
	remote, err := r.repo.Remote(name)
	if errors.Is(err, git.ErrRemoteNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrRemoteNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRepository, err)
	}

	return &Remote{
		remote: remote,
		repo:   r,
	}, nil
}

// StatusPorcelain returns `git status --porcelain=v2 --branch` output.
func (r *Repository) StatusPorcelain(ctx context.Context) (string, error) {
	args := []string{"status", "--porcelain=v2", "--branch"}
	r.logger.Debug("exec", zap.String("cmd", r.config.Binary+" "+strings.Join(args, " ")))

	cmd := exec.CommandContext(ctx, r.config.Binary, args...)
	cmd.Dir = r.path

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return "", fmt.Errorf("%w: %w: %s", ErrStatusFailed, err, msg)
		}
		return "", fmt.Errorf("%w: %w", ErrStatusFailed, err)
	}

	return stdout.String(), nil
}

// UntrackedFiles returns the sorted worktree-relative paths of files that are
// neither tracked nor ignored.
func (r *Repository) UntrackedFiles() ([]string, error) {
	worktree, err := r.repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRepository, err)
	}

	status, err := worktree.Status()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStatusFailed, err)
	}

	files := make([]string, 0)
	for path, fs := range status {
		if fs.Worktree == git.Untracked {
			files = append(files, path)
		}
	}
	slices.Sort(files)

	return files, nil
}
