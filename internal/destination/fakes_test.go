package destination

import (
	"context"
	"fmt"

	"go.klb.dev/sluice/internal/host"
)

func hostRef(uri string, column int) host.EditorRef {
	return host.EditorRef{DocURI: uri, Column: column}
}

// fakeDirectory scripts the editor host's window state and records the calls
// made against it.
type fakeDirectory struct {
	visible    []host.EditorRef
	visibleErr error
	showErr    error
	applied    bool
	insertErr  error
	activeDoc  string

	showCalls   []host.EditorRef // uri+column requested
	insertCalls []string         // text inserted
}

func (d *fakeDirectory) VisibleEditors(context.Context) ([]host.EditorRef, error) {
	return d.visible, d.visibleErr
}

func (d *fakeDirectory) ShowDocument(_ context.Context, uri string, column int) (host.EditorRef, error) {
	d.showCalls = append(d.showCalls, host.EditorRef{DocURI: uri, Column: column})
	if d.showErr != nil {
		return host.EditorRef{}, d.showErr
	}
	return host.EditorRef{DocURI: uri, Column: column}, nil
}

func (d *fakeDirectory) InsertAtCursor(_ context.Context, _ host.EditorRef, text string) (bool, error) {
	d.insertCalls = append(d.insertCalls, text)
	return d.applied, d.insertErr
}

func (d *fakeDirectory) ActiveDocument(context.Context) (string, error) {
	return d.activeDoc, nil
}

// fakeTerminal scripts a terminal pane.
type fakeTerminal struct {
	id        string
	alive     bool
	revealErr error
	pasteErr  error

	reveals int
	pastes  int
}

func (t *fakeTerminal) ID() string { return t.id }

func (t *fakeTerminal) Reveal(context.Context) error {
	t.reveals++
	return t.revealErr
}

func (t *fakeTerminal) PasteFromClipboard(context.Context) error {
	t.pastes++
	return t.pasteErr
}

func (t *fakeTerminal) Alive(context.Context) bool { return t.alive }

// fakeRunner scripts command execution: names in fail error out, everything
// else succeeds. Calls are recorded in order.
type fakeRunner struct {
	fail   map[string]bool
	exists map[string]bool

	calls []string
}

func (r *fakeRunner) Run(_ context.Context, name string) error {
	r.calls = append(r.calls, name)
	if r.fail[name] {
		return fmt.Errorf("command %q failed", name)
	}
	return nil
}

func (r *fakeRunner) Exists(name string) bool { return r.exists[name] }

// fakeClipboard records writes.
type fakeClipboard struct {
	writeErr error
	writes   []string
}

func (c *fakeClipboard) WriteText(_ context.Context, text string) error {
	if c.writeErr != nil {
		return c.writeErr
	}
	c.writes = append(c.writes, text)
	return nil
}
