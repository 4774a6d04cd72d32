package repos

import (
	"fmt"
	"iter"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// Walker enumerates candidate repository directories.
type Walker struct {
	observer Observer
	logger   *zap.Logger
}

func NewWalker(observer Observer, logger *zap.Logger) *Walker {
	return &Walker{
		observer: observer,
		logger:   logger,
	}
}

// Walk returns a lazy sequence of candidates under target. The working
// directory is the candidate while the consumer handles it and is restored
// once the sequence ends, whether by exhaustion or by the consumer stopping.
// A non-nil error ends the sequence and is fatal to the run.
func (w *Walker) Walk(target Target) iter.Seq2[Candidate, error] {
	return func(yield func(Candidate, error) bool) {
		if _, err := filepath.Match(target.Pattern, ""); err != nil {
			yield(Candidate{}, fmt.Errorf("%w: %w", ErrInvalidPattern, err))
			return
		}

		_, err := w.visit(target.Path, target, target.Depth, 0, 0, yield)
		if err != nil {
			yield(Candidate{}, err)
		}
	}
}

// visit enters dir and either yields it as a candidate (depth 0) or recurses
// into its matching subdirectories. It returns false once the consumer stops.
func (w *Walker) visit(
	dir string,
	target Target,
	depth, level, index int,
	yield func(Candidate, error) bool,
) (bool, error) {
	restore, err := pushd(dir)
	if err != nil {
		return true, err
	}
	defer func() {
		if rErr := restore(); rErr != nil {
			w.logger.Error("failed to restore working directory", zap.Error(rErr))
		}
	}()

	if depth == 0 {
		path, wdErr := os.Getwd()
		if wdErr != nil {
			return true, wdErr
		}

		return yield(Candidate{
			Dir:   dir,
			Path:  path,
			Index: index,
			Level: level,
		}, nil), nil
	}

	matches, err := w.match(target.Pattern)
	if err != nil {
		return true, err
	}

	w.observer.DirectoriesFound(level, len(matches), depth > 1)
	w.logger.Debug("directories found",
		zap.String("dir", dir),
		zap.Int("level", level),
		zap.Int("count", len(matches)))

	position := 0
	for _, match := range matches {
		if !isDir(match) {
			continue
		}
		position++

		if depth > 1 {
			w.observer.ContainerEntered(level, match)
		}

		cont, visitErr := w.visit(match, target, depth-1, level+1, position, yield)
		if visitErr != nil {
			w.logger.Warn("failed to visit directory", zap.String("dir", match), zap.Error(visitErr))
			cont = yield(Candidate{
				Dir:   match,
				Index: position,
				Level: level + 1,
				Err:   visitErr,
			}, nil)
		}
		if !cont {
			return false, nil
		}
	}

	return true, nil
}

// match globs the current directory. Hidden entries only match a pattern
// that itself starts with a dot.
func (w *Walker) match(pattern string) ([]string, error) {
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, err
	}

	if strings.HasPrefix(pattern, ".") {
		return matches, nil
	}

	visible := matches[:0]
	for _, m := range matches {
		if !strings.HasPrefix(m, ".") {
			visible = append(visible, m)
		}
	}

	return visible, nil
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
