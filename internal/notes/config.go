package notes

type Config struct {
	// File is a YAML mapping of repository path or directory name to note.
	// Empty disables notes.
	File string
}
