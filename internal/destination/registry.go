package destination

import (
	"context"
	"fmt"
	"time"

	"go.klb.dev/sluice/internal/host"
	"go.klb.dev/sluice/internal/panels"
)

// BindRequest selects what a destination kind should be bound to. Terminal
// binds carry a handle, editor binds a document URI (plus the editor ref
// observed at bind time), panel binds carry nothing.
type BindRequest struct {
	Kind     Kind
	Terminal host.Terminal
	DocURI   string
	Snapshot host.EditorRef
}

// Registry builds destinations, wiring the capability implementation that
// matches each kind.
type Registry struct {
	Editors     host.EditorDirectory
	Clipboard   host.Clipboard
	Runner      host.CommandRunner
	Panels      panels.Registry
	SettleDelay time.Duration
}

// Build constructs the destination for req.
func (r *Registry) Build(req BindRequest) (*Destination, error) {
	switch {
	case req.Kind == KindTerminal:
		return r.buildTerminal(req)
	case req.Kind == KindEditor:
		return r.buildEditor(req)
	case req.Kind.IsPanel():
		return r.buildPanel(req)
	default:
		return nil, fmt.Errorf("unknown destination kind %q", req.Kind)
	}
}

func (r *Registry) buildTerminal(req BindRequest) (*Destination, error) {
	term := req.Terminal
	if term == nil {
		return nil, fmt.Errorf("terminal bind requires a pane")
	}
	res := TerminalResource(term)
	return New(
		KindTerminal,
		res,
		TerminalFocus{Terminal: term, Clipboard: r.Clipboard},
		[]Checker{ContentChecker{}},
		func(ctx context.Context) bool { return term.Alive(ctx) },
		func(other *Destination) bool {
			return other.Resource.Kind == ResourceTerminal &&
				other.Resource.Terminal != nil &&
				other.Resource.Terminal.ID() == term.ID()
		},
	), nil
}

func (r *Registry) buildEditor(req BindRequest) (*Destination, error) {
	if req.DocURI == "" {
		return nil, fmt.Errorf("editor bind requires a document URI")
	}
	if r.Editors == nil {
		return nil, fmt.Errorf("no editor host configured")
	}
	res := EditorResourceFor(req.DocURI, req.Snapshot)
	dest := New(
		KindEditor,
		res,
		EditorFocus{Dir: r.Editors, DocURI: req.DocURI},
		nil, // checkers set below, they reference the destination's resource
		nil,
		func(other *Destination) bool {
			return other.Resource.Kind == ResourceEditor &&
				other.Resource.Editor.DocURI == req.DocURI
		},
	)
	dest.checkers = []Checker{ContentChecker{}, SelfPasteChecker{Resource: &dest.Resource}}
	return dest, nil
}

func (r *Registry) buildPanel(req BindRequest) (*Destination, error) {
	panel, err := r.Panels.Lookup(string(req.Kind))
	if err != nil {
		return nil, err
	}
	if r.Runner == nil {
		return nil, fmt.Errorf("no command runner configured")
	}
	focus := PanelFocus{
		Panel:         panel.Name,
		Runner:        r.Runner,
		Clipboard:     r.Clipboard,
		FocusCommands: panel.FocusCommands,
		PasteCommands: panel.PasteCommands,
		SettleDelay:   r.SettleDelay,
	}
	return New(
		Kind(panel.Name),
		SingletonResource(),
		focus,
		[]Checker{ContentChecker{}},
		func(context.Context) bool {
			for _, cmd := range panel.FocusCommands {
				if r.Runner.Exists(cmd) {
					return true
				}
			}
			return false
		},
		nil, // singleton identity: same kind is the same destination
	), nil
}
