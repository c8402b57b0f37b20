package panels

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	reg := DefaultRegistry()

	p, err := reg.Lookup("claude-code")
	require.NoError(t, err)
	assert.Equal(t, "claude-code", p.Name)
	assert.NotEmpty(t, p.FocusCommands)
	assert.NotEmpty(t, p.PasteCommands)

	// Case and whitespace are forgiven.
	p, err = reg.Lookup("  Claude-Code ")
	require.NoError(t, err)
	assert.Equal(t, "claude-code", p.Name)

	_, err = reg.Lookup("zed-assistant")
	assert.ErrorContains(t, err, "unknown panel")

	_, err = reg.Lookup("")
	assert.Error(t, err)
}

func TestDefaultCommandsResolve(t *testing.T) {
	reg := DefaultRegistry()
	for name, p := range reg.Panels {
		for _, cmd := range append(p.FocusCommands, p.PasteCommands...) {
			argv, ok := reg.Commands[cmd]
			assert.True(t, ok, "panel %s references undefined command %s", name, cmd)
			assert.NotEmpty(t, argv)
		}
	}
}

func TestMerge(t *testing.T) {
	base := DefaultRegistry()
	override := Registry{
		Panels: map[string]Panel{
			// Replaces the built-in ranking wholesale.
			"claude-code": {FocusCommands: []string{"my.focus"}, PasteCommands: []string{"my.paste"}},
			// New panel, name derived from the key.
			"zed-assistant": {FocusCommands: []string{"zed.focus"}, PasteCommands: []string{"zed.paste"}},
		},
		Commands: map[string][]string{
			"my.focus": {"mytool", "focus"},
		},
	}

	merged := Merge(base, override)

	p, err := merged.Lookup("claude-code")
	require.NoError(t, err)
	assert.Equal(t, "claude-code", p.Name)
	assert.Equal(t, []string{"my.focus"}, p.FocusCommands)

	p, err = merged.Lookup("zed-assistant")
	require.NoError(t, err)
	assert.Equal(t, "zed-assistant", p.Name)

	// Untouched entries survive.
	_, err = merged.Lookup("cursor-ai")
	assert.NoError(t, err)
	assert.Equal(t, []string{"mytool", "focus"}, merged.Commands["my.focus"])
	assert.Equal(t, base.Commands["cursor-ai.focus"], merged.Commands["cursor-ai.focus"])
}

func TestDetectAvailable(t *testing.T) {
	reg := DefaultRegistry()
	onPath := map[string]bool{"claude": true}
	lookPath := func(bin string) (string, error) {
		if onPath[bin] {
			return "/usr/bin/" + bin, nil
		}
		return "", fmt.Errorf("%s: not found", bin)
	}

	avail := reg.DetectAvailable(lookPath)

	assert.True(t, avail["claude-code"])
	assert.False(t, avail["cursor-ai"])
	assert.False(t, avail["github-copilot-chat"])
}
