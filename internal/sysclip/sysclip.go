// Package sysclip provides access to the system clipboard. Build constraints
// select the implementation:
//
//	sysclip_desktop.go — Linux / macOS / Windows via golang.design/x/clipboard
//	sysclip_other.go   — headless / container stub
package sysclip

import "context"

// Backend is the interface both implementations satisfy. It also satisfies
// host.Clipboard.
type Backend interface {
	// Name returns a human-readable name for the backend.
	Name() string

	// WriteText replaces the clipboard text.
	WriteText(ctx context.Context, text string) error

	// ReadText returns the current clipboard text, or "" if the clipboard
	// holds no text.
	ReadText(ctx context.Context) (string, error)

	// Close releases any resources held by the backend.
	Close()
}
