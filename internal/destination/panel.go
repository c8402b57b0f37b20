package destination

import (
	"context"
	"log/slog"
	"time"

	"go.klb.dev/sluice/internal/host"
)

// DefaultSettleDelay is the wait between triggering panel focus and
// attempting the paste: the minimum observed time for a panel's focus
// transition to finish before it accepts input.
const DefaultSettleDelay = 150 * time.Millisecond

// PanelFocus reaches a singleton AI panel through host commands. There is no
// resource to resolve; the ranked focus commands are tried strictly in
// order, first success wins. Later entries are deliberately less desirable
// fallbacks (more side effects, less precise focus), which is why the chain
// is sequential and never raced.
type PanelFocus struct {
	Panel         string
	Runner        host.CommandRunner
	Clipboard     host.Clipboard
	FocusCommands []string
	PasteCommands []string
	SettleDelay   time.Duration
}

// Focus walks the focus command chain. Exhausting the list is a typed
// failure; the Inserter handed back on success is target-free — panel
// delivery goes through the clipboard.
func (f PanelFocus) Focus(ctx context.Context) (Focused, *FocusError) {
	var lastErr error
	for _, cmd := range f.FocusCommands {
		if err := f.Runner.Run(ctx, cmd); err != nil {
			slog.Info("panel focus command failed, trying next",
				"panel", f.Panel, "command", cmd, "err", err)
			lastErr = err
			continue
		}
		slog.Info("panel focused", "panel", f.Panel, "command", cmd)
		return Focused{Insert: f.insert}, nil
	}
	return Focused{}, NewFocusError(ReasonCommandFocusFailed, lastErr)
}

// insert writes the text to the clipboard, waits the settle delay, then
// walks the paste command chain. Returns false only after every command has
// failed — not starvation-safe by design: a host that exposes none of the
// listed commands always exhausts the chain, and the caller surfaces a
// manual-paste instruction.
func (f PanelFocus) insert(ctx context.Context, text string) bool {
	if err := f.Clipboard.WriteText(ctx, text); err != nil {
		slog.Warn("panel insert: clipboard write failed", "panel", f.Panel, "err", err)
		return false
	}

	delay := f.SettleDelay
	if delay <= 0 {
		delay = DefaultSettleDelay
	}
	time.Sleep(delay)

	for _, cmd := range f.PasteCommands {
		if err := f.Runner.Run(ctx, cmd); err != nil {
			slog.Info("panel paste command failed, trying next",
				"panel", f.Panel, "command", cmd, "err", err)
			continue
		}
		slog.Info("panel insert applied", "panel", f.Panel, "command", cmd, "len", len(text))
		return true
	}
	slog.Warn("panel insert: all paste commands failed", "panel", f.Panel)
	return false
}
