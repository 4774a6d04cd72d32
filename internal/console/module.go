package console

import (
	"github.com/apiarycd/gitwip/internal/repos"
	"github.com/go-core-fx/logger"
	"go.uber.org/fx"
)

func Module() fx.Option {
	return fx.Module(
		"console",
		logger.WithNamedLogger("console"),
		fx.Provide(
			fx.Annotate(NewPrinter, fx.As(new(repos.Observer))),
		),
	)
}
