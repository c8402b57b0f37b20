package main

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.klb.dev/sluice/internal/destination"
	"go.klb.dev/sluice/internal/host"
	"go.klb.dev/sluice/internal/message"
	"go.klb.dev/sluice/internal/panels"
	"go.klb.dev/sluice/internal/router"
	"go.klb.dev/sluice/internal/sysclip"
)

type noRunner struct{}

func (noRunner) Run(context.Context, string) error { return nil }
func (noRunner) Exists(string) bool                { return false }

type noEditors struct{}

func (noEditors) VisibleEditors(context.Context) ([]host.EditorRef, error) { return nil, nil }
func (noEditors) ShowDocument(_ context.Context, uri string, column int) (host.EditorRef, error) {
	return host.EditorRef{DocURI: uri, Column: column}, nil
}
func (noEditors) InsertAtCursor(context.Context, host.EditorRef, string) (bool, error) {
	return true, nil
}
func (noEditors) ActiveDocument(context.Context) (string, error) { return "", nil }

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestServer() *controlServer {
	clip := sysclip.New()
	reg := &destination.Registry{
		Editors:     noEditors{},
		Clipboard:   clip,
		Runner:      noRunner{},
		Panels:      panels.DefaultRegistry(),
		SettleDelay: time.Millisecond,
	}
	return &controlServer{router: router.New(reg, reg.Editors), clip: clip}
}

func TestDispatchPing(t *testing.T) {
	s := newTestServer()
	resp := s.dispatch(&message.Message{Type: message.TypePing}, testLogger())
	require.NotNil(t, resp)
	assert.Equal(t, message.TypePong, resp.Type)
}

func TestDispatchUnknownType(t *testing.T) {
	s := newTestServer()
	resp := s.dispatch(&message.Message{Type: "NOPE"}, testLogger())
	require.NotNil(t, resp)
	assert.Equal(t, message.TypeError, resp.Type)
}

func TestDispatchBindValidation(t *testing.T) {
	s := newTestServer()

	resp := s.dispatch(&message.Message{Type: message.TypeBind, Kind: "terminal"}, testLogger())
	assert.False(t, resp.OK)
	assert.Contains(t, resp.Detail, "--pane")

	resp = s.dispatch(&message.Message{Type: message.TypeBind, Kind: "text-editor"}, testLogger())
	assert.False(t, resp.OK)
	assert.Contains(t, resp.Detail, "--doc")

	resp = s.dispatch(&message.Message{Type: message.TypeBind, Kind: ""}, testLogger())
	assert.False(t, resp.OK)
	assert.Contains(t, resp.Detail, "unknown destination kind")
}

func TestDispatchBindEditorAndStatus(t *testing.T) {
	s := newTestServer()

	resp := s.dispatch(&message.Message{
		Type: message.TypeBind, Kind: "text-editor", DocURI: "file:///ws/a.ts",
	}, testLogger())
	require.True(t, resp.OK, resp.Detail)

	resp = s.dispatch(&message.Message{Type: message.TypeStatus}, testLogger())
	assert.Equal(t, message.TypeStatusResponse, resp.Type)
	require.Len(t, resp.Bindings, 1)
	assert.Equal(t, "text-editor", resp.Bindings[0].Kind)
	assert.True(t, resp.Bindings[0].Active)
	assert.NotEmpty(t, resp.Panels)
}

func TestDispatchUnbindWithoutBinding(t *testing.T) {
	s := newTestServer()
	resp := s.dispatch(&message.Message{Type: message.TypeUnbind}, testLogger())
	assert.False(t, resp.OK)
}

func TestLoadPanelRegistryOverlaysDefaults(t *testing.T) {
	v := viper.New()
	v.Set("panels", map[string]any{
		"zed-assistant": map[string]any{
			"focus_commands": []string{"zed.focus"},
			"paste_commands": []string{"zed.paste"},
		},
	})
	v.Set("commands", map[string]any{
		"zed.focus": []string{"zed", "--focus-assistant"},
	})

	reg, err := loadPanelRegistry(v)
	require.NoError(t, err)

	p, err := reg.Lookup("zed-assistant")
	require.NoError(t, err)
	assert.Equal(t, []string{"zed.focus"}, p.FocusCommands)
	assert.Equal(t, []string{"zed", "--focus-assistant"}, reg.Commands["zed.focus"])

	// Built-ins survive the overlay.
	_, err = reg.Lookup("claude-code")
	assert.NoError(t, err)
}
