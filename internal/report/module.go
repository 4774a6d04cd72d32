package report

import (
	"github.com/go-core-fx/logger"
	"go.uber.org/fx"
)

func Module() fx.Option {
	return fx.Module(
		"report",
		logger.WithNamedLogger("report"),
		fx.Provide(NewReporter),
	)
}
