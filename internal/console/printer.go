package console

import (
	"fmt"
	"io"

	"github.com/apiarycd/gitwip/internal/repos"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

// Printer renders scan progress as indented text. It implements
// repos.Observer.
type Printer struct {
	out    io.Writer
	err    io.Writer
	styles styles
	label  lipgloss.Style
	bar    *progressBar

	config Config
	logger *zap.Logger
}

func NewPrinter(streams Streams, config Config, logger *zap.Logger) *Printer {
	return &Printer{
		out:    streams.Out,
		err:    streams.Err,
		styles: newStyles(streams.Out),
		label:  newStyles(streams.Err).progress,

		config: config,
		logger: logger,
	}
}

func (p *Printer) DirectoriesFound(level, count int, containers bool) {
	noun := "directories"
	if containers {
		noun = "container directories"
	}

	p.println(indent(level, fmt.Sprintf("Found %d %s", count, noun)))
}

func (p *Printer) ContainerEntered(level int, name string) {
	p.println(indent(level, "Container: "+p.styles.container.Render(name)))
}

// RepositoryInspected prints the heading and detail lines of record. Nothing
// is printed for a record without details.
func (p *Printer) RepositoryInspected(record *repos.Record) {
	if !record.Printed() {
		return
	}

	level := headingLevel(record)

	heading := record.Dir
	if p.config.ShowRepoIndex && record.Index > 0 {
		heading = fmt.Sprintf("%d: %s", record.Index, record.Dir)
	}
	p.println(indent(level, p.styles.heading.Render(heading)))

	for _, line := range record.Details {
		p.println(indent(level+1, p.styles.detail(line)))
	}
}

func (p *Printer) PullStarted(record *repos.Record) repos.ProgressSink {
	p.bar = newProgressBar(p.err, indent(headingLevel(record)+1, p.label.Render("Pulling...")))
	return p.bar
}

// PullFinished closes the progress line and prints the pull error, if any.
func (p *Printer) PullFinished(record *repos.Record) {
	if p.bar != nil {
		p.bar.finish()
		p.bar = nil
	}

	if record.PullOutcome != repos.PullFailed {
		return
	}

	p.println(indent(headingLevel(record)+1, p.styles.errorLine.Render(errorPrefix+record.ErrorMessage)))
}

func (p *Printer) println(line string) {
	if _, err := fmt.Fprintln(p.out, line); err != nil {
		p.logger.Warn("failed to write output", zap.Error(err))
	}
}

// headingLevel keeps a single target indented like a repository inside a
// container.
func headingLevel(record *repos.Record) int {
	return max(record.Level, 1)
}
