package notes

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Store holds notes keyed by repository path or directory name.
type Store struct {
	notes map[string]string
}

// New loads the notes file named in config. Without a file the store is
// empty.
func New(config Config, logger *zap.Logger) (*Store, error) {
	if config.File == "" {
		return &Store{notes: map[string]string{}}, nil
	}

	data, err := os.ReadFile(config.File)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidNotes, err)
	}

	store, err := Parse(data)
	if err != nil {
		return nil, err
	}

	logger.Debug("notes loaded", zap.String("file", config.File), zap.Int("count", len(store.notes)))

	return store, nil
}

// Parse decodes a YAML mapping of notes. Keys that look like paths are
// cleaned so that lookups match regardless of trailing separators.
func Parse(data []byte) (*Store, error) {
	raw := map[string]string{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidNotes, err)
	}

	notes := make(map[string]string, len(raw))
	for key, note := range raw {
		note = strings.TrimSpace(note)
		if note == "" {
			continue
		}
		notes[filepath.Clean(key)] = note
	}

	return &Store{notes: notes}, nil
}

// Lookup returns the note for path, falling back to name.
func (s *Store) Lookup(path, name string) (string, bool) {
	if note, ok := s.notes[filepath.Clean(path)]; ok {
		return note, true
	}

	note, ok := s.notes[name]
	return note, ok
}
