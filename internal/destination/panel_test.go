package destination

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPanelFocus(runner *fakeRunner, clip *fakeClipboard) PanelFocus {
	return PanelFocus{
		Panel:         "claude-code",
		Runner:        runner,
		Clipboard:     clip,
		FocusCommands: []string{"focus.a", "focus.b", "focus.c"},
		PasteCommands: []string{"paste.a", "paste.b"},
		SettleDelay:   time.Millisecond,
	}
}

// The focus chain stops at the first success: with A and B failing and C
// succeeding, exactly three commands run and the walk ends there.
func TestPanelFocusChainFirstSuccessWins(t *testing.T) {
	runner := &fakeRunner{fail: map[string]bool{"focus.a": true, "focus.b": true}}
	f := newPanelFocus(runner, &fakeClipboard{})

	_, ferr := f.Focus(context.Background())

	assert.Nil(t, ferr)
	assert.Equal(t, []string{"focus.a", "focus.b", "focus.c"}, runner.calls)
}

func TestPanelFocusChainExhausted(t *testing.T) {
	runner := &fakeRunner{fail: map[string]bool{
		"focus.a": true, "focus.b": true, "focus.c": true,
	}}
	f := newPanelFocus(runner, &fakeClipboard{})

	_, ferr := f.Focus(context.Background())

	require.NotNil(t, ferr)
	assert.Equal(t, ReasonCommandFocusFailed, ferr.Reason)
	assert.ErrorContains(t, ferr, "focus.c")
	assert.Len(t, runner.calls, 3)
}

func TestPanelInsertPasteChain(t *testing.T) {
	runner := &fakeRunner{fail: map[string]bool{"paste.a": true}}
	clip := &fakeClipboard{}
	f := newPanelFocus(runner, clip)

	focused, ferr := f.Focus(context.Background())
	require.Nil(t, ferr)
	runner.calls = nil

	ok := focused.Insert(context.Background(), " hi ")

	assert.True(t, ok)
	assert.Equal(t, []string{"paste.a", "paste.b"}, runner.calls,
		"paste.a must be attempted before paste.b")
	assert.Equal(t, []string{" hi "}, clip.writes,
		"clipboard is written exactly once, before any paste command")
}

func TestPanelInsertAllPasteCommandsFail(t *testing.T) {
	runner := &fakeRunner{fail: map[string]bool{"paste.a": true, "paste.b": true}}
	f := newPanelFocus(runner, &fakeClipboard{})

	focused, ferr := f.Focus(context.Background())
	require.Nil(t, ferr)

	assert.False(t, focused.Insert(context.Background(), " hi "))
}

// Full pipeline for a panel: the text is padded once, the clipboard is
// written exactly once with the padded text, and the paste chain is walked
// in ranking order.
func TestPanelPasteContentEndToEnd(t *testing.T) {
	runner := &fakeRunner{fail: map[string]bool{"paste.a": true}}
	clip := &fakeClipboard{}
	dest := New(KindClaudeCode, SingletonResource(), newPanelFocus(runner, clip),
		[]Checker{ContentChecker{}}, nil, nil)

	out := dest.PasteContent(context.Background(), "hi", PasteContext{})

	assert.True(t, out.Delivered)
	assert.Equal(t, []string{" hi "}, clip.writes)
	assert.Equal(t, []string{"focus.a", "paste.a", "paste.b"}, runner.calls)
}

func TestPanelInsertClipboardFailureSkipsPaste(t *testing.T) {
	runner := &fakeRunner{}
	clip := &fakeClipboard{writeErr: context.DeadlineExceeded}
	f := newPanelFocus(runner, clip)

	focused, ferr := f.Focus(context.Background())
	require.Nil(t, ferr)
	runner.calls = nil

	assert.False(t, focused.Insert(context.Background(), " hi "))
	assert.Empty(t, runner.calls, "no paste command runs when the clipboard write failed")
}
