package repos

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// defaultProgressUnits stands in for a maximum the remote did not report.
const defaultProgressUnits = 100

// Executor pulls eligible repositories.
type Executor struct {
	logger *zap.Logger
}

func NewExecutor(logger *zap.Logger) *Executor {
	return &Executor{
		logger: logger,
	}
}

// Execute pulls record's primary remote. Failures are captured on the record
// and never returned.
func (e *Executor) Execute(ctx context.Context, record *Record, repo Repository, sink ProgressSink) {
	logger := e.logger.With(
		zap.String("path", record.Path),
		zap.String("remote", record.PrimaryRemote),
		zap.String("branch", record.PullBranch()))

	if record.State != StateEligible {
		logger.Debug("skipping pull, repository not eligible")
		return
	}

	remote, ok := repo.Remote(record.PrimaryRemote)
	if !ok {
		e.fail(record, fmt.Errorf("%w: %s", ErrRemoteNotFound, record.PrimaryRemote))
		return
	}

	progress := newFractionProgress(sink)

	logger.Debug("pulling repository")
	if err := remote.Pull(ctx, record.PullBranch(), progress.update); err != nil {
		logger.Warn("pull failed", zap.Error(err))
		e.fail(record, err)
		return
	}

	progress.complete()
	record.PullOutcome = PullPulled
	logger.Debug("repository pulled")
}

func (e *Executor) fail(record *Record, err error) {
	record.PullOutcome = PullFailed
	record.ErrorMessage = err.Error()
}

// fractionProgress converts transfer units into non-decreasing fractions.
type fractionProgress struct {
	sink ProgressSink
	last float64
}

func newFractionProgress(sink ProgressSink) *fractionProgress {
	return &fractionProgress{sink: sink}
}

func (p *fractionProgress) update(current, maximum int) {
	if maximum <= 0 {
		maximum = defaultProgressUnits
	}

	p.report(float64(current) / float64(maximum))
}

func (p *fractionProgress) complete() {
	p.report(1)
}

func (p *fractionProgress) report(fraction float64) {
	fraction = min(max(fraction, 0), 1)
	if fraction < p.last {
		return
	}
	p.last = fraction

	if p.sink != nil {
		p.sink.OnProgress(fraction)
	}
}
