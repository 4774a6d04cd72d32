package repos

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/samber/lo"
	"go.uber.org/zap"
)

// Inspector builds a Record from a candidate directory.
type Inspector struct {
	accessor Accessor
	config   Config
	logger   *zap.Logger
}

func NewInspector(accessor Accessor, config Config, logger *zap.Logger) *Inspector {
	return &Inspector{
		accessor: accessor,
		config:   config,
		logger:   logger,
	}
}

// Inspect opens the current working directory, which the walker has set to
// the candidate. It returns ErrNotARepository for anything that cannot be
// opened. Failures after opening are recorded on the returned Record.
func (i *Inspector) Inspect(ctx context.Context, candidate Candidate) (*Record, Repository, error) {
	repo, err := i.accessor.Open(".")
	if err != nil {
		if !errors.Is(err, ErrNotARepository) {
			i.logger.Warn("failed to open candidate", zap.String("path", candidate.Path), zap.Error(err))
		}
		return nil, nil, fmt.Errorf("%w: %s", ErrNotARepository, candidate.Dir)
	}

	record := &Record{
		Path:           candidate.Path,
		Name:           filepath.Base(candidate.Path),
		Dir:            candidate.Dir,
		Index:          candidate.Index,
		Level:          candidate.Level,
		UntrackedFiles: []string{},
		State:          StateInspected,
		PullOutcome:    PullNotAttempted,
	}

	if err := i.populate(ctx, record, repo); err != nil {
		i.logger.Warn("failed to inspect repository", zap.String("path", record.Path), zap.Error(err))
		record.ErrorMessage = err.Error()
	}

	return record, repo, nil
}

func (i *Inspector) populate(ctx context.Context, record *Record, repo Repository) error {
	current, err := repo.CurrentBranch()
	if err != nil {
		return fmt.Errorf("failed to resolve current branch: %w", err)
	}
	record.CurrentBranch = current

	record.PrimaryBranch, _ = lo.Find(i.config.PrimaryBranches, repo.HasLocalBranch)

	record.PrimaryRemote, _ = lo.Find(i.config.Remotes, func(name string) bool {
		_, ok := repo.Remote(name)
		return ok
	})

	if remote, branch, ok := repo.TrackedBranch(current); ok && remote == record.PrimaryRemote {
		record.UpstreamBranch = branch
	}

	status, err := repo.StatusPorcelain(ctx)
	if err != nil {
		return err
	}
	record.Ahead, record.Behind = ParseAheadBehind(status)

	untracked, err := repo.UntrackedFiles()
	if err != nil {
		return fmt.Errorf("failed to list untracked files: %w", err)
	}
	if untracked != nil {
		record.UntrackedFiles = untracked
	}

	i.logger.Debug("repository inspected",
		zap.String("path", record.Path),
		zap.String("branch", record.CurrentBranch),
		zap.String("primary_branch", record.PrimaryBranch),
		zap.String("primary_remote", record.PrimaryRemote),
		zap.String("upstream_branch", record.UpstreamBranch),
		zap.Int("ahead", record.Ahead),
		zap.Int("behind", record.Behind),
		zap.Int("untracked", len(record.UntrackedFiles)))

	return nil
}
