package repos

import (
	"context"
	"errors"

	"go.uber.org/zap"
)

// Service runs the scan pipeline: traversal, inspection, sync decision,
// optional pull and aggregation, one repository at a time.
type Service struct {
	walker    *Walker
	inspector *Inspector
	executor  *Executor
	notes     Notes
	observer  Observer

	config Config
	logger *zap.Logger
}

func NewService(
	walker *Walker,
	inspector *Inspector,
	executor *Executor,
	notes Notes,
	observer Observer,
	config Config,
	logger *zap.Logger,
) *Service {
	return &Service{
		walker:    walker,
		inspector: inspector,
		executor:  executor,
		notes:     notes,
		observer:  observer,

		config: config,
		logger: logger,
	}
}

// Run scans target and returns a fresh report. Per-repository failures are
// recorded in the report; only traversal errors and cancellation of ctx are
// returned.
func (s *Service) Run(ctx context.Context, target Target) (*RunReport, error) {
	report := NewRunReport(target)

	s.logger.Info("scan started",
		zap.Stringer("run_id", report.ID),
		zap.String("path", target.Path),
		zap.Int("depth", target.Depth),
		zap.String("pattern", target.Pattern))

	for candidate, err := range s.walker.Walk(target) {
		if err == nil {
			err = ctx.Err()
		}
		if err != nil {
			s.logger.Error("scan aborted", zap.Error(err))
			report.finish()
			return report, err
		}

		s.process(ctx, candidate, report)
	}

	report.finish()

	s.logger.Info("scan finished",
		zap.Stringer("run_id", report.ID),
		zap.Int("repositories", len(report.Records)),
		zap.Int("errored", report.Count(BucketErrored)),
		zap.Int("pulled", report.Count(BucketPulled)),
		zap.Duration("duration", report.Duration()))

	return report, nil
}

func (s *Service) process(ctx context.Context, candidate Candidate, report *RunReport) {
	if candidate.Err != nil {
		report.AddNonRepository(candidate.Dir)
		return
	}

	record, repo, err := s.inspector.Inspect(ctx, candidate)
	if errors.Is(err, ErrNotARepository) {
		s.logger.Debug("skipping non-repository", zap.String("dir", candidate.Dir))
		report.AddNonRepository(candidate.Dir)
		return
	}

	Decide(record, s.config.Sync, func() bool {
		remote, ok := repo.Remote(record.PrimaryRemote)
		return ok && remote.Reachable(ctx)
	})

	if note, ok := s.notes.Lookup(record.Path, record.Name); ok && showNote(record, s.config.Display.ShowNotes) {
		record.Note = note
	}

	record.Details = BuildDetails(record, s.config.Display)
	s.observer.RepositoryInspected(record)

	if record.State == StateEligible {
		sink := s.observer.PullStarted(record)
		s.executor.Execute(ctx, record, repo, sink)
		if record.PullOutcome == PullFailed {
			record.Details = append(record.Details, "ERROR: "+record.ErrorMessage)
		}
		s.observer.PullFinished(record)
	}

	report.Add(record)
}
