package cli

import (
	"github.com/apiarycd/gitwip/internal/config"
	"github.com/spf13/pflag"
)

type flags struct {
	configFile string

	directory string
	mode      string
	wildcard  string

	primaryBranches []string
	remotes         []string
	notesFile       string
	metricsFile     string

	showRepoIndex        bool
	showOnPrimary        bool
	showOnNonPrimary     bool
	showOutOfDate        bool
	pullOnPrimary        bool
	pullOnNonPrimary     bool
	showUncommittedFiles bool
	showNotes            string
	noSummary            bool
}

func (f *flags) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.configFile, "config", "", "YAML configuration file (defaults to $CONFIG_PATH)")

	fs.StringVarP(&f.directory, "directory", "d", "", "The directory to analyze")
	fs.StringVarP(&f.mode, "mode", "m", "repo", "The processing mode: repo, dir_of_repos, dir_of_dir_of_repos or tree_search")
	fs.StringVarP(&f.wildcard, "directory-wildcard", "w", "*", "The wildcard pattern used to select repository directories")

	fs.StringSliceVarP(&f.primaryBranches, "primary-branches", "b", nil, "Comma separated branch names to use as primary")
	fs.StringSliceVarP(&f.remotes, "default-origins", "o", nil, "Comma separated remote names to use by default")
	fs.StringVarP(&f.notesFile, "notes-file", "n", "", "YAML file containing notes for each repository")
	fs.StringVar(&f.metricsFile, "metrics-file", "", "Write Prometheus metrics for the run to this file")

	fs.BoolVar(&f.showRepoIndex, "show-repo-index", false, "Show the index number of each repository")
	fs.BoolVar(&f.showOnPrimary, "show-on-primary-branch", false, "Show the branch when on the primary branch")
	fs.BoolVar(&f.showOnNonPrimary, "show-on-non-primary-branch", false, "Show the branch when not on the primary branch")
	fs.BoolVar(&f.showOutOfDate, "show-out-of-date", false, "Show commits ahead of and behind the remote")
	fs.BoolVar(&f.pullOnPrimary, "pull-on-primary-branch", false, "Pull when on the primary branch")
	fs.BoolVar(&f.pullOnNonPrimary, "pull-on-non-primary-branch", false, "Pull when not on the primary branch")
	fs.BoolVar(&f.showUncommittedFiles, "show-uncommitted-files", false, "Show untracked files")
	fs.StringVar(&f.showNotes, "show-notes", "always", "When to show notes: no, primary or always")
	fs.BoolVar(&f.noSummary, "no-summary", false, "Do not print the summary")
}

// overrides returns config overrides for the flags set on the command line,
// so that unset flags keep file and environment values.
func (f *flags) overrides(fs *pflag.FlagSet) config.Override {
	set := map[string]func(*config.Config){
		"directory":                  func(c *config.Config) { c.Scan.Directory = f.directory },
		"mode":                       func(c *config.Config) { c.Scan.Mode = f.mode },
		"directory-wildcard":         func(c *config.Config) { c.Scan.Wildcard = f.wildcard },
		"primary-branches":           func(c *config.Config) { c.Branches.Primary = f.primaryBranches },
		"default-origins":            func(c *config.Config) { c.Remotes.Candidates = f.remotes },
		"notes-file":                 func(c *config.Config) { c.Notes.File = f.notesFile },
		"metrics-file":               func(c *config.Config) { c.Metrics.File = f.metricsFile },
		"show-repo-index":            func(c *config.Config) { c.Display.ShowRepoIndex = f.showRepoIndex },
		"show-on-primary-branch":     func(c *config.Config) { c.Display.ShowOnPrimary = f.showOnPrimary },
		"show-on-non-primary-branch": func(c *config.Config) { c.Display.ShowOnNonPrimary = f.showOnNonPrimary },
		"show-out-of-date":           func(c *config.Config) { c.Display.ShowOutOfDate = f.showOutOfDate },
		"show-uncommitted-files":     func(c *config.Config) { c.Display.ShowUncommittedFiles = f.showUncommittedFiles },
		"show-notes":                 func(c *config.Config) { c.Display.ShowNotes = f.showNotes },
		"no-summary":                 func(c *config.Config) { c.Display.Summary = !f.noSummary },
		"pull-on-primary-branch":     func(c *config.Config) { c.Sync.PullOnPrimary = f.pullOnPrimary },
		"pull-on-non-primary-branch": func(c *config.Config) { c.Sync.PullOnNonPrimary = f.pullOnNonPrimary },
	}

	return func(c *config.Config) {
		fs.Visit(func(flag *pflag.Flag) {
			if apply, ok := set[flag.Name]; ok {
				apply(c)
			}
		})
	}
}
