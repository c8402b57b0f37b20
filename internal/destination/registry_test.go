package destination

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.klb.dev/sluice/internal/panels"
)

func testRegistry(runner *fakeRunner) *Registry {
	return &Registry{
		Editors:     &fakeDirectory{},
		Clipboard:   &fakeClipboard{},
		Runner:      runner,
		Panels:      panels.DefaultRegistry(),
		SettleDelay: time.Millisecond,
	}
}

func TestBuildTerminal(t *testing.T) {
	reg := testRegistry(&fakeRunner{})
	term := &fakeTerminal{id: "%3", alive: true}

	dest, err := reg.Build(BindRequest{Kind: KindTerminal, Terminal: term})
	require.NoError(t, err)

	assert.Equal(t, KindTerminal, dest.Kind)
	assert.True(t, dest.Available(context.Background()))

	term.alive = false
	assert.False(t, dest.Available(context.Background()))
}

func TestBuildTerminalEqualityIsPaneIdentity(t *testing.T) {
	reg := testRegistry(&fakeRunner{})

	a, err := reg.Build(BindRequest{Kind: KindTerminal, Terminal: &fakeTerminal{id: "%3"}})
	require.NoError(t, err)
	same, err := reg.Build(BindRequest{Kind: KindTerminal, Terminal: &fakeTerminal{id: "%3"}})
	require.NoError(t, err)
	other, err := reg.Build(BindRequest{Kind: KindTerminal, Terminal: &fakeTerminal{id: "%4"}})
	require.NoError(t, err)

	assert.True(t, a.Equals(same))
	assert.False(t, a.Equals(other))
}

func TestBuildTerminalRequiresPane(t *testing.T) {
	_, err := testRegistry(&fakeRunner{}).Build(BindRequest{Kind: KindTerminal})
	assert.Error(t, err)
}

func TestBuildEditorEqualityIsDocumentIdentity(t *testing.T) {
	reg := testRegistry(&fakeRunner{})

	a, err := reg.Build(BindRequest{Kind: KindEditor, DocURI: docA})
	require.NoError(t, err)
	same, err := reg.Build(BindRequest{Kind: KindEditor, DocURI: docA})
	require.NoError(t, err)
	other, err := reg.Build(BindRequest{Kind: KindEditor, DocURI: "file:///ws/b.ts"})
	require.NoError(t, err)

	assert.True(t, a.Equals(same))
	assert.False(t, a.Equals(other))
}

func TestBuildEditorRequiresHostAndURI(t *testing.T) {
	reg := testRegistry(&fakeRunner{})
	_, err := reg.Build(BindRequest{Kind: KindEditor})
	assert.Error(t, err)

	reg.Editors = nil
	_, err = reg.Build(BindRequest{Kind: KindEditor, DocURI: docA})
	assert.Error(t, err)
}

func TestBuildPanelAvailability(t *testing.T) {
	runner := &fakeRunner{exists: map[string]bool{"claude-code.focus-input": true}}
	reg := testRegistry(runner)

	dest, err := reg.Build(BindRequest{Kind: KindClaudeCode})
	require.NoError(t, err)

	assert.Equal(t, ResourceSingleton, dest.Resource.Kind)
	assert.True(t, dest.Available(context.Background()),
		"one resolvable focus command is enough")

	runner.exists = nil
	assert.False(t, dest.Available(context.Background()))
}

func TestBuildUnknownKind(t *testing.T) {
	_, err := testRegistry(&fakeRunner{}).Build(BindRequest{Kind: "zed-assistant"})
	assert.ErrorContains(t, err, "unknown panel")

	_, err = testRegistry(&fakeRunner{}).Build(BindRequest{Kind: ""})
	assert.ErrorContains(t, err, "unknown destination kind")
}
