// Package host defines the capability interfaces the destination core
// consumes. Implementations live elsewhere (hostbridge, tmuxterm,
// execrunner, sysclip); the core never reaches for an editor, terminal,
// command, or clipboard except through these.
package host

import "context"

// EditorRef identifies one visible editor: a document URI plus the view
// column it currently occupies. Column is 1-based; 0 means the host could
// not resolve a column.
type EditorRef struct {
	DocURI string
	Column int
}

// EditorDirectory exposes the editor host's window state. Every call
// reflects the state at call time — refs returned earlier must not be
// trusted across calls.
type EditorDirectory interface {
	// VisibleEditors lists all editors currently visible, one per view
	// column a document occupies.
	VisibleEditors(ctx context.Context) ([]EditorRef, error)

	// ShowDocument brings the document to the front in the given column and
	// returns the freshly resolved editor ref. The returned ref, not the one
	// found by scanning, is the authoritative handle for a following insert.
	ShowDocument(ctx context.Context, uri string, column int) (EditorRef, error)

	// InsertAtCursor edits the editor's buffer at its current cursor
	// position. The bool reports whether the host applied the edit; err is
	// reserved for transport-level failures.
	InsertAtCursor(ctx context.Context, ed EditorRef, text string) (bool, error)

	// ActiveDocument returns the URI of the document the user is editing
	// right now, or "" if no editor has focus.
	ActiveDocument(ctx context.Context) (string, error)
}

// Terminal is a handle on one bound terminal pane.
type Terminal interface {
	// ID returns a stable identity for the pane, used for equality.
	ID() string

	// Reveal brings the pane to the foreground and gives it input focus.
	Reveal(ctx context.Context) error

	// PasteFromClipboard delivers the current clipboard text into the pane
	// as a single logical paste.
	PasteFromClipboard(ctx context.Context) error

	// Alive reports whether the pane still exists.
	Alive(ctx context.Context) bool
}

// CommandRunner executes named host commands. Names come from the panel
// registry; the runner resolves them to whatever the platform needs.
type CommandRunner interface {
	// Run executes the named command, returning an error on any failure
	// including an unknown name.
	Run(ctx context.Context, name string) error

	// Exists reports whether the named command can be resolved on this host.
	Exists(name string) bool
}

// Clipboard replaces the system clipboard text.
type Clipboard interface {
	WriteText(ctx context.Context, text string) error
}
