package repos

import "fmt"

// BuildDetails returns the detail lines describing record before any pull.
func BuildDetails(record *Record, options DisplayOptions) []string {
	lines := make([]string, 0)

	onPrimary := record.OnPrimaryBranch()
	if (options.ShowOnPrimary && onPrimary) || (options.ShowOnNonPrimary && !onPrimary) {
		lines = append(lines, "Branch: "+record.CurrentBranch)
	}

	if options.ShowOutOfDate {
		if record.Ahead > 0 {
			lines = append(lines, fmt.Sprintf("Ahead by %d commits", record.Ahead))
		}
		if record.Behind > 0 {
			lines = append(lines, fmt.Sprintf("Behind by %d commits", record.Behind))
		}
	}

	if options.ShowUncommittedFiles {
		for _, file := range record.UntrackedFiles {
			lines = append(lines, "Untracked: "+file)
		}
	}

	if record.Note != "" {
		lines = append(lines, "Note: "+record.Note)
	}

	if record.Errored() {
		lines = append(lines, "ERROR: "+record.ErrorMessage)
	}

	for _, diagnostic := range record.Diagnostics {
		lines = append(lines, "ERROR: "+diagnostic)
	}

	if record.State == StateEligible {
		lines = append(lines, "Pulling...")
	}

	return lines
}

// showNote reports whether a note is shown for record under mode.
func showNote(record *Record, mode NotesMode) bool {
	switch mode {
	case NotesAlways:
		return true
	case NotesPrimary:
		return record.OnPrimaryBranch()
	default:
		return false
	}
}
