// Package tmuxterm implements host.Terminal over tmux panes. A pane is
// identified by its tmux pane id (e.g. "%3"); reveal selects the pane's
// window and the pane itself, and paste goes through a tmux buffer so that
// multi-line text arrives as one logical paste instead of per-line
// keystrokes.
package tmuxterm

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"go.klb.dev/sluice/internal/sysclip"
)

const bufferName = "sluice"

type runFunc func(ctx context.Context, args ...string) error

// Pane is a handle on one tmux pane.
type Pane struct {
	target string
	clip   sysclip.Backend
	run    runFunc
}

// Option configures a Pane.
type Option func(*Pane)

// WithRun overrides tmux invocation, for tests.
func WithRun(fn func(ctx context.Context, args ...string) error) Option {
	return func(p *Pane) { p.run = fn }
}

// New returns a handle on the tmux pane with the given target (pane id or
// session:window.pane spec). The clipboard backend supplies the text for
// PasteFromClipboard.
func New(target string, clip sysclip.Backend, opts ...Option) *Pane {
	p := &Pane{
		target: target,
		clip:   clip,
		run: func(ctx context.Context, args ...string) error {
			return exec.CommandContext(ctx, "tmux", args...).Run()
		},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ID returns the pane target, used for binding equality.
func (p *Pane) ID() string { return p.target }

// Reveal selects the pane's window, then the pane, so the pane ends up
// visible with input focus.
func (p *Pane) Reveal(ctx context.Context) error {
	if err := p.run(ctx, "select-window", "-t", p.target); err != nil {
		return fmt.Errorf("select-window %s: %w", p.target, err)
	}
	if err := p.run(ctx, "select-pane", "-t", p.target); err != nil {
		return fmt.Errorf("select-pane %s: %w", p.target, err)
	}
	return nil
}

// PasteFromClipboard loads the current clipboard text into a named tmux
// buffer and pastes it into the pane. -p uses bracketed paste when the
// application in the pane supports it.
func (p *Pane) PasteFromClipboard(ctx context.Context) error {
	text, err := p.clip.ReadText(ctx)
	if err != nil {
		return fmt.Errorf("clipboard read: %w", err)
	}
	if err := p.run(ctx, "set-buffer", "-b", bufferName, "--", text); err != nil {
		return fmt.Errorf("set-buffer: %w", err)
	}
	if err := p.run(ctx, "paste-buffer", "-p", "-d", "-b", bufferName, "-t", p.target); err != nil {
		return fmt.Errorf("paste-buffer %s: %w", p.target, err)
	}
	return nil
}

// Alive reports whether the pane still exists.
func (p *Pane) Alive(ctx context.Context) bool {
	return p.run(ctx, "display-message", "-p", "-t", p.target, "#{pane_id}") == nil
}

// Available reports whether tmux itself is usable on this host.
func Available() bool {
	return exec.Command("tmux", "-V").Run() == nil
}

// ValidTarget reports whether target looks like a pane reference. Accepts
// pane ids ("%3") and session:window.pane specs.
func ValidTarget(target string) bool {
	target = strings.TrimSpace(target)
	return target != "" && !strings.ContainsAny(target, " \t\n")
}
