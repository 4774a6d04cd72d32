package git

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/go-git/go-git/v6"
	"go.uber.org/zap"
)

type Service struct {
	config Config
	logger *zap.Logger
}

// NewService creates a new git Service.
func NewService(config Config, logger *zap.Logger) *Service {
	if config.Binary == "" {
		config.Binary = DefaultConfig().Binary
	}
	if config.ProbeTimeout <= 0 {
		config.ProbeTimeout = DefaultConfig().ProbeTimeout
	}

	return &Service{
		config: config,
		logger: logger,
	}
}

// Open opens the working copy rooted at path. Parent directories are not
// searched, so a plain subdirectory of a repository is not a repository.
func (s *Service) Open(path string) (*Repository, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRepository, err)
	}

	repo, err := git.PlainOpen(abs)
	if errors.Is(err, git.ErrRepositoryNotExists) {
		s.logger.Debug("not a repository", zap.String("path", abs))
		return nil, fmt.Errorf("%w: %s", ErrNotARepository, abs)
	}
	if err != nil {
		s.logger.Warn("failed to open repository", zap.String("path", abs), zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrInvalidRepository, err)
	}

	s.logger.Debug("repository opened", zap.String("path", abs))

	return &Repository{
		path:   abs,
		repo:   repo,
		config: s.config,
		logger: s.logger.With(zap.String("path", abs)),
	}, nil
}
