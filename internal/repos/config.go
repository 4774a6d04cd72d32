package repos

// Config holds the candidate lists and policies applied to every repository.
type Config struct {
	PrimaryBranches []string // Candidate primary branch names in priority order
	Remotes         []string // Candidate remote names in priority order

	Sync    SyncPolicy
	Display DisplayOptions
}

// SyncPolicy selects which repositories may be pulled.
type SyncPolicy struct {
	PullOnPrimary    bool
	PullOnNonPrimary bool
}

// Enabled reports whether any pull flag is set.
func (p SyncPolicy) Enabled() bool {
	return p.PullOnPrimary || p.PullOnNonPrimary
}

type NotesMode string

const (
	NotesNever   NotesMode = "no"
	NotesPrimary NotesMode = "primary"
	NotesAlways  NotesMode = "always"
)

// DisplayOptions select the detail lines produced for a repository.
type DisplayOptions struct {
	ShowOnPrimary        bool
	ShowOnNonPrimary     bool
	ShowOutOfDate        bool
	ShowUncommittedFiles bool
	ShowNotes            NotesMode
}

func DefaultConfig() Config {
	return Config{
		PrimaryBranches: []string{"main", "master", "wikiMaster", "primary"},
		Remotes:         []string{"origin", "azure", "devops"},
		Sync:            SyncPolicy{},
		Display: DisplayOptions{
			ShowNotes: NotesAlways,
		},
	}
}
