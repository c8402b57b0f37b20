// Package destination implements the paste-destination core: binding a
// logical destination kind to a concrete runtime resource, re-resolving that
// resource to a currently valid focus target at every paste, and driving the
// uniform availability → eligibility → padding → focus → insert pipeline
// across the heterogeneous delivery mechanisms.
package destination

// Kind identifies a logical paste destination. Terminal and editor kinds
// bind to a concrete resource; every other kind names a singleton AI panel
// from the panel registry.
type Kind string

const (
	KindTerminal Kind = "terminal"
	KindEditor   Kind = "text-editor"

	// Built-in AI panel kinds. The panel registry may define more.
	KindClaudeCode  Kind = "claude-code"
	KindCursorAI    Kind = "cursor-ai"
	KindCopilotChat Kind = "github-copilot-chat"
)

// IsPanel reports whether k names an AI panel rather than a bound resource.
func (k Kind) IsPanel() bool {
	return k != KindTerminal && k != KindEditor && k != ""
}

func (k Kind) String() string { return string(k) }
