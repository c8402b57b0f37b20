package destination

import (
	"context"
	"log/slog"

	"go.klb.dev/sluice/internal/host"
)

// TerminalFocus reveals the bound terminal pane. Terminals do not migrate
// between ambiguous containers the way editors do, so there is no
// resolution table — the bound handle is revealed directly.
type TerminalFocus struct {
	Terminal  host.Terminal
	Clipboard host.Clipboard
}

// Focus reveals the pane and hands back an Inserter bound to it.
func (f TerminalFocus) Focus(ctx context.Context) (Focused, *FocusError) {
	if err := f.Terminal.Reveal(ctx); err != nil {
		return Focused{}, NewFocusError(ReasonTerminalFocusFailed, err)
	}
	return Focused{Insert: terminalInserter(f.Terminal, f.Clipboard)}, nil
}

// terminalInserter writes the text to the clipboard and invokes the pane's
// paste. Clipboard paste, not keystroke injection: injected text longer than
// one visual line wraps in the terminal's rendering and breaks link
// detection that scans a line's visual extent, while a paste preserves the
// logical line.
func terminalInserter(term host.Terminal, clip host.Clipboard) Inserter {
	return func(ctx context.Context, text string) bool {
		if err := clip.WriteText(ctx, text); err != nil {
			slog.Warn("terminal insert: clipboard write failed", "pane", term.ID(), "err", err)
			return false
		}
		if err := term.PasteFromClipboard(ctx); err != nil {
			slog.Warn("terminal insert: paste failed", "pane", term.ID(), "err", err)
			return false
		}
		slog.Info("terminal insert applied", "pane", term.ID(), "len", len(text))
		return true
	}
}
