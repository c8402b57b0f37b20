package destination

import (
	"context"
	"log/slog"
	"strings"
)

// PasteContext carries the state of the paste action's origin: where the
// text was produced. The router assembles it fresh per paste.
type PasteContext struct {
	// SourceDocURI is the document the user is actively editing, or "" when
	// no editor has focus.
	SourceDocURI string
}

// Checker decides whether text is worth delivering. Implementations never
// panic and log the reason when rejecting.
type Checker interface {
	Eligible(ctx context.Context, text string, pc PasteContext) bool
}

// ContentChecker rejects empty and all-whitespace text. Applied to every
// destination kind, and always before padding — padding would otherwise turn
// whitespace into deliverable text.
type ContentChecker struct{}

func (ContentChecker) Eligible(_ context.Context, text string, _ PasteContext) bool {
	if strings.TrimSpace(text) == "" {
		slog.Info("paste rejected: empty content")
		return false
	}
	return true
}

// SelfPasteChecker refuses to paste into the document the text came from —
// a link created inside the bound editor would otherwise land straight back
// in the file the user is editing. No active source means eligible; a
// destination without a bound document means ineligible, there is nothing to
// compare against safely.
type SelfPasteChecker struct {
	Resource *Resource
}

func (c SelfPasteChecker) Eligible(_ context.Context, _ string, pc PasteContext) bool {
	if c.Resource == nil || c.Resource.Kind != ResourceEditor || c.Resource.Editor.DocURI == "" {
		slog.Info("paste rejected: destination has no bound document")
		return false
	}
	if pc.SourceDocURI == "" {
		return true
	}
	if pc.SourceDocURI == c.Resource.Editor.DocURI {
		slog.Info("paste rejected: source and destination are the same document",
			"doc", pc.SourceDocURI,
		)
		return false
	}
	return true
}
