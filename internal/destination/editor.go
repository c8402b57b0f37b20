package destination

import (
	"context"
	"fmt"
	"log/slog"

	"go.klb.dev/sluice/internal/host"
)

// EditorFocus resolves the bound document to a live editor at call time.
// The snapshot taken at bind time is never consulted: the document may have
// been dragged to another column or closed since.
type EditorFocus struct {
	Dir    host.EditorDirectory
	DocURI string
}

// Focus scans the currently visible editors for the bound document and
// applies the resolution table: zero matches means the document is closed or
// hidden, one match is the target, two or more means the same document sits
// in multiple split panes and no unambiguous target exists.
func (f EditorFocus) Focus(ctx context.Context) (Focused, *FocusError) {
	visible, err := f.Dir.VisibleEditors(ctx)
	if err != nil {
		return Focused{}, NewFocusError(ReasonEditorNotVisible, err)
	}

	var matches []host.EditorRef
	for _, ed := range visible {
		if ed.DocURI == f.DocURI {
			matches = append(matches, ed)
		}
	}

	switch len(matches) {
	case 0:
		slog.Info("editor focus: document not visible", "doc", f.DocURI)
		return Focused{}, NewFocusError(ReasonEditorNotVisible, nil)
	case 1:
		// fall through to show
	default:
		slog.Info("editor focus: document open in multiple columns",
			"doc", f.DocURI, "columns", len(matches))
		return Focused{}, NewFocusError(ReasonEditorAmbiguous, nil)
	}

	column := matches[0].Column
	if column == 0 {
		return Focused{}, NewFocusError(ReasonEditorColumnUndefined,
			fmt.Errorf("editor for %s has no view column", f.DocURI))
	}

	// The ref returned by ShowDocument, not the one found by the scan, is
	// the authoritative fresh handle for the insert.
	fresh, err := f.Dir.ShowDocument(ctx, f.DocURI, column)
	if err != nil {
		return Focused{}, NewFocusError(ReasonShowDocumentFailed, err)
	}

	return Focused{Insert: editorInserter(f.Dir, fresh)}, nil
}

// editorInserter returns an Inserter bound to the freshly shown editor. It
// logs the three outcomes distinctly so transient edit races (host reports
// the edit was not applied) are distinguishable from code defects (the call
// itself failed).
func editorInserter(dir host.EditorDirectory, ed host.EditorRef) Inserter {
	return func(ctx context.Context, text string) bool {
		applied, err := dir.InsertAtCursor(ctx, ed, text)
		switch {
		case err != nil:
			slog.Warn("editor insert raised", "doc", ed.DocURI, "err", err)
			return false
		case !applied:
			slog.Info("editor insert not applied", "doc", ed.DocURI)
			return false
		default:
			slog.Info("editor insert applied", "doc", ed.DocURI, "column", ed.Column)
			return true
		}
	}
}
