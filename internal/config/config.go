package config

import (
	"fmt"
	"os"
	"time"

	"github.com/apiarycd/gitwip/internal/repos"
	"github.com/go-core-fx/config"
)

type scanConfig struct {
	Directory string `koanf:"directory" validate:"required"`
	Mode      string `koanf:"mode"      validate:"oneof=repo dir_of_repos dir_of_dir_of_repos tree_search"`
	Wildcard  string `koanf:"wildcard"`
}

type branchesConfig struct {
	Primary []string `koanf:"primary" validate:"min=1,dive,required"`
}

type remotesConfig struct {
	Candidates []string `koanf:"candidates" validate:"min=1,dive,required"`
}

type displayConfig struct {
	ShowRepoIndex        bool   `koanf:"show_repo_index"`
	ShowOnPrimary        bool   `koanf:"show_on_primary_branch"`
	ShowOnNonPrimary     bool   `koanf:"show_on_non_primary_branch"`
	ShowOutOfDate        bool   `koanf:"show_out_of_date"`
	ShowUncommittedFiles bool   `koanf:"show_uncommitted_files"`
	ShowNotes            string `koanf:"show_notes"             validate:"oneof=no primary always"`
	Summary              bool   `koanf:"summary"`
}

type syncConfig struct {
	PullOnPrimary    bool `koanf:"pull_on_primary_branch"`
	PullOnNonPrimary bool `koanf:"pull_on_non_primary_branch"`
}

type gitConfig struct {
	Binary       string        `koanf:"binary"        validate:"required"`
	ProbeTimeout time.Duration `koanf:"probe_timeout" validate:"gt=0"`
}

type notesConfig struct {
	File string `koanf:"file"`
}

type metricsConfig struct {
	File string `koanf:"file"`
}

type Config struct {
	Scan     scanConfig     `koanf:"scan"`
	Branches branchesConfig `koanf:"branches"`
	Remotes  remotesConfig  `koanf:"remotes"`
	Display  displayConfig  `koanf:"display"`
	Sync     syncConfig     `koanf:"sync"`

	Git     gitConfig     `koanf:"git"`
	Notes   notesConfig   `koanf:"notes"`
	Metrics metricsConfig `koanf:"metrics"`
}

// Override adjusts a loaded Config before validation.
type Override func(*Config)

func Default() Config {
	//nolint:exhaustruct,mnd //default values
	return Config{
		Scan: scanConfig{
			Directory: "",
			Mode:      string(repos.ModeSingle),
			Wildcard:  "*",
		},

		Branches: branchesConfig{
			Primary: []string{"main", "master", "wikiMaster", "primary"},
		},
		Remotes: remotesConfig{
			Candidates: []string{"origin", "azure", "devops"},
		},

		Display: displayConfig{
			ShowNotes: string(repos.NotesAlways),
			Summary:   true,
		},

		Git: gitConfig{
			Binary:       "git",
			ProbeTimeout: 15 * time.Second,
		},
	}
}

// New loads the configuration from defaults, the YAML file at path (or
// CONFIG_PATH when path is empty) and the environment, applies overrides and
// validates the result.
func New(path string, overrides ...Override) (Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}

	options := []config.Option{}
	if path != "" {
		options = append(options, config.WithLocalYAML(path))
	}

	if err := config.Load(&cfg, options...); err != nil {
		return Config{}, fmt.Errorf("%w: failed to load config: %w", ErrInvalidConfig, err)
	}

	for _, override := range overrides {
		override(&cfg)
	}

	if err := Validate(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Target resolves the scan root. Unsupported modes are reported here.
func (c Config) Target() (repos.Target, error) {
	return repos.NewTarget(c.Scan.Directory, repos.Mode(c.Scan.Mode), c.Scan.Wildcard)
}
