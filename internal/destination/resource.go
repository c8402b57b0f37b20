package destination

import (
	"fmt"

	"go.klb.dev/sluice/internal/host"
)

// ResourceKind discriminates the Resource union.
type ResourceKind string

const (
	ResourceTerminal  ResourceKind = "terminal"
	ResourceEditor    ResourceKind = "editor"
	ResourceSingleton ResourceKind = "singleton"
)

// EditorResource is what an editor destination is bound to. DocURI is the
// authoritative identity — the live editor moves between view columns and
// must be re-resolved at every paste. Snapshot is the editor ref observed at
// bind time; it is used only for logging and equality, never for focus.
type EditorResource struct {
	DocURI   string
	Snapshot host.EditorRef
}

// Resource is the tagged union of everything a destination can be bound to.
// Exactly one branch is populated, selected by Kind; singletons carry
// nothing.
type Resource struct {
	Kind     ResourceKind
	Terminal host.Terminal
	Editor   EditorResource
}

// TerminalResource wraps a terminal handle.
func TerminalResource(t host.Terminal) Resource {
	return Resource{Kind: ResourceTerminal, Terminal: t}
}

// EditorResourceFor wraps a document identity.
func EditorResourceFor(docURI string, snapshot host.EditorRef) Resource {
	return Resource{Kind: ResourceEditor, Editor: EditorResource{DocURI: docURI, Snapshot: snapshot}}
}

// SingletonResource is the resource of an AI panel destination.
func SingletonResource() Resource {
	return Resource{Kind: ResourceSingleton}
}

// Describe returns a short human-readable identity for status output and
// logging.
func (r Resource) Describe() string {
	switch r.Kind {
	case ResourceTerminal:
		if r.Terminal == nil {
			return "terminal (unbound)"
		}
		return fmt.Sprintf("pane %s", r.Terminal.ID())
	case ResourceEditor:
		return r.Editor.DocURI
	case ResourceSingleton:
		return "singleton"
	default:
		return string(r.Kind)
	}
}
