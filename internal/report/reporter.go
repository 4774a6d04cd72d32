package report

import (
	"io"

	"github.com/apiarycd/gitwip/internal/console"
	"github.com/apiarycd/gitwip/internal/repos"
	"go.uber.org/zap"
)

// Reporter publishes a finished run: the summary to the console and,
// optionally, a metrics textfile.
type Reporter struct {
	out io.Writer

	config Config
	logger *zap.Logger
}

func NewReporter(streams console.Streams, config Config, logger *zap.Logger) *Reporter {
	return &Reporter{
		out: streams.Out,

		config: config,
		logger: logger,
	}
}

// Publish never fails the run; output errors are logged.
func (r *Reporter) Publish(rr *repos.RunReport) {
	if r.config.Summary {
		if err := WriteSummary(r.out, rr); err != nil {
			r.logger.Warn("failed to write summary", zap.Error(err))
		}
	}

	if r.config.MetricsFile == "" {
		return
	}

	if err := WriteMetrics(r.config.MetricsFile, rr); err != nil {
		r.logger.Error("failed to export metrics", zap.String("file", r.config.MetricsFile), zap.Error(err))
		return
	}

	r.logger.Debug("metrics exported", zap.String("file", r.config.MetricsFile))
}
