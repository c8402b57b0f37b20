// Package router owns the daemon's binding state: at most one destination
// per kind plus the notion of an "active" binding that untargeted pastes go
// to. Bind and unbind are the only writers; paste calls only read the table
// and re-resolve everything else through the destination core.
package router

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"go.klb.dev/sluice/internal/destination"
	"go.klb.dev/sluice/internal/host"
	"go.klb.dev/sluice/internal/message"
)

// Result is the user-facing outcome of a paste or unbind.
type Result struct {
	OK     bool
	Detail string
}

type binding struct {
	id      string
	dest    *destination.Destination
	boundAt time.Time
}

// Router routes control requests onto destinations.
type Router struct {
	reg     *destination.Registry
	editors host.EditorDirectory // may be nil; supplies the paste source document

	mu       sync.Mutex
	bindings map[destination.Kind]*binding
	active   destination.Kind
}

// New returns an empty Router over the given destination registry.
func New(reg *destination.Registry, editors host.EditorDirectory) *Router {
	return &Router{
		reg:      reg,
		editors:  editors,
		bindings: make(map[destination.Kind]*binding),
	}
}

// Bind constructs a destination for req and makes it the active binding.
// Re-binding the exact same resource keeps the existing binding.
func (r *Router) Bind(ctx context.Context, req destination.BindRequest) (message.Binding, error) {
	dest, err := r.reg.Build(req)
	if err != nil {
		return message.Binding{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.bindings[dest.Kind]; ok && existing.dest.Equals(dest) {
		r.active = dest.Kind
		slog.Info("already bound to this resource",
			"kind", dest.Kind, "resource", dest.Resource.Describe())
		return r.infoLocked(existing), nil
	}

	b := &binding{id: uuid.NewString(), dest: dest, boundAt: time.Now()}
	r.bindings[dest.Kind] = b
	r.active = dest.Kind
	slog.Info("destination bound",
		"kind", dest.Kind, "resource", dest.Resource.Describe(), "binding", b.id)
	return r.infoLocked(b), nil
}

// Unbind drops the binding for kind ("" means the active binding).
func (r *Router) Unbind(kind destination.Kind) Result {
	r.mu.Lock()
	defer r.mu.Unlock()

	if kind == "" {
		kind = r.active
	}
	b, ok := r.bindings[kind]
	if !ok {
		return Result{OK: false, Detail: "nothing bound for " + kind.String()}
	}
	delete(r.bindings, kind)
	if r.active == kind {
		r.active = ""
	}
	slog.Info("destination unbound", "kind", kind, "binding", b.id)
	return Result{OK: true, Detail: "unbound " + kind.String()}
}

// Paste delivers text to the binding for kind ("" means the active
// binding). A binding whose concrete resource has disappeared is dropped,
// mirroring the unbind a host close-event would have triggered.
func (r *Router) Paste(ctx context.Context, kind destination.Kind, text string, link bool) Result {
	r.mu.Lock()
	if kind == "" {
		kind = r.active
	}
	b, ok := r.bindings[kind]
	r.mu.Unlock()
	if !ok {
		return Result{OK: false, Detail: "no destination bound — run \"sluice bind\" first"}
	}

	pc := r.pasteContext(ctx)

	var out destination.Outcome
	if link {
		out = b.dest.PasteLink(ctx, text, pc)
	} else {
		out = b.dest.PasteContent(ctx, text, pc)
	}

	switch out.Stage {
	case destination.StageDelivered:
		return Result{OK: true, Detail: "delivered to " + kind.String()}
	case destination.StageUnavailable:
		if b.dest.Resource.Kind != destination.ResourceSingleton {
			r.dropGone(kind, b)
			return Result{OK: false, Detail: "bound " + kind.String() + " is gone — binding removed"}
		}
		return Result{OK: false, Detail: kind.String() + " is not available on this host"}
	case destination.StageIneligible:
		return Result{OK: false, Detail: "nothing to paste"}
	case destination.StageFocus:
		if msg := out.Focus.UserMessage(); msg != "" {
			return Result{OK: false, Detail: msg}
		}
		return Result{OK: false, Detail: "could not focus " + kind.String()}
	default:
		return Result{OK: false, Detail: "could not insert into " + kind.String() + " — paste manually from the clipboard"}
	}
}

// Status returns the current bindings and which configured panels resolve on
// this host.
func (r *Router) Status() ([]message.Binding, []message.Panel) {
	r.mu.Lock()
	bindings := make([]message.Binding, 0, len(r.bindings))
	for _, b := range r.bindings {
		bindings = append(bindings, r.infoLocked(b))
	}
	r.mu.Unlock()

	sort.Slice(bindings, func(i, j int) bool { return bindings[i].Kind < bindings[j].Kind })

	names := r.reg.Panels.Names()
	sort.Strings(names)
	panelsOut := make([]message.Panel, 0, len(names))
	for _, name := range names {
		p := r.reg.Panels.Panels[name]
		available := false
		if r.reg.Runner != nil {
			for _, cmd := range p.FocusCommands {
				if r.reg.Runner.Exists(cmd) {
					available = true
					break
				}
			}
		}
		panelsOut = append(panelsOut, message.Panel{Name: name, Available: available})
	}
	return bindings, panelsOut
}

// pasteContext captures the paste origin. Errors degrade to "no source",
// which the self-paste checker treats as eligible.
func (r *Router) pasteContext(ctx context.Context) destination.PasteContext {
	if r.editors == nil {
		return destination.PasteContext{}
	}
	doc, err := r.editors.ActiveDocument(ctx)
	if err != nil {
		slog.Debug("active document unavailable", "err", err)
		return destination.PasteContext{}
	}
	return destination.PasteContext{SourceDocURI: doc}
}

func (r *Router) dropGone(kind destination.Kind, b *binding) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if cur, ok := r.bindings[kind]; ok && cur == b {
		delete(r.bindings, kind)
		if r.active == kind {
			r.active = ""
		}
		slog.Info("binding dropped: resource gone", "kind", kind, "binding", b.id)
	}
}

func (r *Router) infoLocked(b *binding) message.Binding {
	return message.Binding{
		ID:       b.id,
		Kind:     b.dest.Kind.String(),
		Resource: b.dest.Resource.Describe(),
		BoundAt:  b.boundAt,
		Active:   r.active == b.dest.Kind,
	}
}
