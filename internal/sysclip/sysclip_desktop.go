//go:build linux || darwin || windows

package sysclip

import (
	"context"
	"log/slog"

	"golang.design/x/clipboard"
)

type desktopBackend struct{}

// New returns the desktop clipboard backend, or a headless no-op backend if
// the display environment is unavailable (e.g. a headless server without X11
// or Wayland). clipboard.Init is called here rather than in init() so that
// CLI sub-commands don't trigger the warning.
func New() Backend {
	if err := clipboard.Init(); err != nil {
		slog.Warn("clipboard unavailable, running headless", "err", err)
		return &headlessBackend{}
	}
	return &desktopBackend{}
}

func (*desktopBackend) Name() string { return "system clipboard" }

func (*desktopBackend) WriteText(_ context.Context, text string) error {
	clipboard.Write(clipboard.FmtText, []byte(text))
	return nil
}

func (*desktopBackend) ReadText(_ context.Context) (string, error) {
	return string(clipboard.Read(clipboard.FmtText)), nil
}

func (*desktopBackend) Close() {}
