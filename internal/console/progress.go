package console

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/mattn/go-isatty"
)

// progressBar redraws a single percentage line. It stays silent unless its
// writer is a terminal.
type progressBar struct {
	w       io.Writer
	label   string
	enabled bool

	percent int
	drawn   bool
}

func newProgressBar(w io.Writer, label string) *progressBar {
	return &progressBar{
		w:       w,
		label:   label,
		enabled: isTerminal(w),
		percent: -1,
	}
}

func (b *progressBar) OnProgress(fraction float64) {
	if !b.enabled {
		return
	}

	percent := int(math.Round(fraction * 100)) //nolint:mnd // percent
	if percent == b.percent {
		return
	}
	b.percent = percent

	_, _ = fmt.Fprintf(b.w, "\r%s %3d%%", b.label, percent)
	b.drawn = true
}

// finish terminates the progress line so that later output starts on a
// fresh line.
func (b *progressBar) finish() {
	if !b.drawn {
		return
	}

	_, _ = fmt.Fprintln(b.w)
	b.drawn = false
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
