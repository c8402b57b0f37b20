package sysclip

import (
	"context"
	"sync"
)

// headlessBackend keeps clipboard text in memory. Used when no display
// environment is available and on platforms golang.design/x/clipboard does
// not support; it keeps the paste pipeline functional for tmux destinations,
// which read the text back through ReadText.
type headlessBackend struct {
	mu   sync.Mutex
	text string
}

func (*headlessBackend) Name() string { return "headless (in-memory)" }

func (b *headlessBackend) WriteText(_ context.Context, text string) error {
	b.mu.Lock()
	b.text = text
	b.mu.Unlock()
	return nil
}

func (b *headlessBackend) ReadText(_ context.Context) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.text, nil
}

func (*headlessBackend) Close() {}
