package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/apiarycd/gitwip/internal/config"
	"github.com/apiarycd/gitwip/internal/console"
	"github.com/apiarycd/gitwip/internal/notes"
	"github.com/spf13/cobra"
)

const (
	ExitOK       = 0
	ExitFatal    = 1
	ExitArgument = 2
)

const version = "1.0"

// Runner performs a scan with a validated configuration.
type Runner func(ctx context.Context, cfg config.Config, streams console.Streams) error

// Execute parses args, runs the scan and returns the process exit code.
// Failures of individual repositories do not change the exit code.
func Execute(ctx context.Context, args []string, streams console.Streams, run Runner) int {
	cmd := newRootCommand(streams, run)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return ExitOK
	}

	var argErr *ArgumentError
	if errors.As(err, &argErr) || errors.Is(err, notes.ErrInvalidNotes) {
		_ = cmd.Usage()
		fmt.Fprintf(streams.Err, "\nERROR: %s\n\n", err)
		return ExitArgument
	}

	fmt.Fprintf(streams.Err, "ERROR: %s\n", err)
	return ExitFatal
}

func newRootCommand(streams console.Streams, run Runner) *cobra.Command {
	f := &flags{}

	cmd := &cobra.Command{
		Use:     "gitwip",
		Short:   "Report and refresh the state of git working copies",
		Long:    `gitwip inspects one git working copy or a directory tree of them, reports branch, ahead/behind and untracked state and optionally pulls repositories that are behind their remote.`,
		Version: version,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.NoArgs(cmd, args); err != nil {
				return &ArgumentError{Err: err}
			}
			return nil
		},

		SilenceErrors: true,
		SilenceUsage:  true,

		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.New(f.configFile, f.overrides(cmd.Flags()))
			if err != nil {
				return &ArgumentError{Err: err}
			}

			return run(cmd.Context(), cfg, streams)
		},
	}

	cmd.SetOut(streams.Out)
	cmd.SetErr(streams.Err)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &ArgumentError{Err: err}
	})

	f.register(cmd.Flags())

	return cmd
}
