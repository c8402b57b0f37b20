// Package panels holds the AI-panel registry: which chat panels sluice knows
// how to reach, and the ranked command lists used to focus them and to paste
// into them. The rankings are configuration data, not code — hosts rename
// and re-register these commands across versions, so users can retune the
// lists without a rebuild.
package panels

import (
	"fmt"
	"strings"
)

// Panel describes one AI chat panel. The command lists are ordered: the
// first entry is the preferred command, later entries are fallbacks for
// alternate host builds. Chains are walked strictly in order, first success
// wins.
type Panel struct {
	Name          string   `mapstructure:"name" toml:"name"`
	FocusCommands []string `mapstructure:"focus_commands" toml:"focus_commands"`
	PasteCommands []string `mapstructure:"paste_commands" toml:"paste_commands"`
}

// Registry maps panel names to their command rankings and command names to
// the argv used to execute them.
type Registry struct {
	Panels   map[string]Panel    `mapstructure:"panels" toml:"panels"`
	Commands map[string][]string `mapstructure:"commands" toml:"commands"`
}

// DefaultRegistry returns the built-in panels and command table.
func DefaultRegistry() Registry {
	return Registry{
		Panels: map[string]Panel{
			"claude-code": {
				Name:          "claude-code",
				FocusCommands: []string{"claude-code.focus", "claude-code.focus-input"},
				PasteCommands: []string{"claude-code.paste", "claude-code.paste-clipboard"},
			},
			"cursor-ai": {
				Name:          "cursor-ai",
				FocusCommands: []string{"cursor-ai.focus"},
				PasteCommands: []string{"cursor-ai.paste"},
			},
			"github-copilot-chat": {
				Name:          "github-copilot-chat",
				FocusCommands: []string{"copilot-chat.focus", "copilot-chat.open"},
				PasteCommands: []string{"copilot-chat.paste"},
			},
		},
		Commands: map[string][]string{
			"claude-code.focus":           {"claude", "panel", "focus"},
			"claude-code.focus-input":     {"claude", "panel", "focus", "--input"},
			"claude-code.paste":           {"claude", "panel", "paste"},
			"claude-code.paste-clipboard": {"claude", "panel", "paste", "--from-clipboard"},
			"cursor-ai.focus":             {"cursor", "chat", "focus"},
			"cursor-ai.paste":             {"cursor", "chat", "paste"},
			"copilot-chat.focus":          {"gh", "copilot", "chat", "focus"},
			"copilot-chat.open":           {"gh", "copilot", "chat"},
			"copilot-chat.paste":          {"gh", "copilot", "chat", "paste"},
		},
	}
}

// Merge overlays override onto base. Panels and commands present in override
// replace the base entries wholesale; entries absent from override are kept.
func Merge(base, override Registry) Registry {
	out := Registry{
		Panels:   make(map[string]Panel, len(base.Panels)),
		Commands: make(map[string][]string, len(base.Commands)),
	}
	for k, p := range base.Panels {
		out.Panels[k] = p
	}
	for k, p := range override.Panels {
		if p.Name == "" {
			p.Name = k
		}
		out.Panels[k] = p
	}
	for k, argv := range base.Commands {
		out.Commands[k] = argv
	}
	for k, argv := range override.Commands {
		out.Commands[k] = argv
	}
	return out
}

// Lookup returns the panel for name (case-insensitive).
func (r Registry) Lookup(name string) (Panel, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return Panel{}, fmt.Errorf("panel name required")
	}
	p, ok := r.Panels[key]
	if !ok {
		return Panel{}, fmt.Errorf("unknown panel %q", name)
	}
	return p, nil
}

// Names returns the registered panel names in no particular order.
func (r Registry) Names() []string {
	out := make([]string, 0, len(r.Panels))
	for k := range r.Panels {
		out = append(out, k)
	}
	return out
}

// DetectAvailable reports which panels have at least one focus command whose
// binary resolves in the current environment.
func (r Registry) DetectAvailable(lookPath func(string) (string, error)) map[string]bool {
	out := make(map[string]bool, len(r.Panels))
	for name, p := range r.Panels {
		out[name] = false
		for _, cmd := range p.FocusCommands {
			argv, ok := r.Commands[cmd]
			if !ok || len(argv) == 0 {
				continue
			}
			if _, err := lookPath(argv[0]); err == nil {
				out[name] = true
				break
			}
		}
	}
	return out
}
