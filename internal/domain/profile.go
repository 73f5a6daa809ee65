package domain

// ProfileEdit summarizes one read-modify-write of a shell startup file.
type ProfileEdit struct {
	Path string
	// BlockAdded is true when a new managed block was appended.
	BlockAdded bool
	// EntriesAdded lists path entries whose append invocation was written.
	EntriesAdded []string
	// BlockRemoved is true when the managed block was removed.
	BlockRemoved bool
	// LinesRemoved counts removed lines, loose managed lines included.
	LinesRemoved int
	// Changed is false for no-op edits (already installed, or nothing to
	// uninstall); the file is left untouched in that case.
	Changed bool
}
