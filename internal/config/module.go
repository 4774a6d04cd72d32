package config

import (
	"github.com/apiarycd/gitwip/internal/console"
	"github.com/apiarycd/gitwip/internal/git"
	"github.com/apiarycd/gitwip/internal/notes"
	"github.com/apiarycd/gitwip/internal/report"
	"github.com/apiarycd/gitwip/internal/repos"
	"go.uber.org/fx"
)

// Module fans a supplied Config out into the per-module configs.
func Module() fx.Option {
	return fx.Module(
		"config",
		fx.Provide(func(cfg Config) git.Config {
			return git.Config{
				Binary:       cfg.Git.Binary,
				ProbeTimeout: cfg.Git.ProbeTimeout,
			}
		}),
		fx.Provide(func(cfg Config) repos.Config {
			return repos.Config{
				PrimaryBranches: cfg.Branches.Primary,
				Remotes:         cfg.Remotes.Candidates,
				Sync: repos.SyncPolicy{
					PullOnPrimary:    cfg.Sync.PullOnPrimary,
					PullOnNonPrimary: cfg.Sync.PullOnNonPrimary,
				},
				Display: repos.DisplayOptions{
					ShowOnPrimary:        cfg.Display.ShowOnPrimary,
					ShowOnNonPrimary:     cfg.Display.ShowOnNonPrimary,
					ShowOutOfDate:        cfg.Display.ShowOutOfDate,
					ShowUncommittedFiles: cfg.Display.ShowUncommittedFiles,
					ShowNotes:            repos.NotesMode(cfg.Display.ShowNotes),
				},
			}
		}),
		fx.Provide(func(cfg Config) console.Config {
			return console.Config{
				ShowRepoIndex: cfg.Display.ShowRepoIndex,
			}
		}),
		fx.Provide(func(cfg Config) notes.Config {
			return notes.Config{
				File: cfg.Notes.File,
			}
		}),
		fx.Provide(func(cfg Config) report.Config {
			return report.Config{
				Summary:     cfg.Display.Summary,
				MetricsFile: cfg.Metrics.File,
			}
		}),
	)
}
