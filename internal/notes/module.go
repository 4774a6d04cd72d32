package notes

import (
	"github.com/apiarycd/gitwip/internal/repos"
	"github.com/go-core-fx/logger"
	"go.uber.org/fx"
)

func Module() fx.Option {
	return fx.Module(
		"notes",
		logger.WithNamedLogger("notes"),
		fx.Provide(
			fx.Annotate(New, fx.As(new(repos.Notes))),
		),
	)
}
