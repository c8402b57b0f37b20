package destination

import (
	"context"
	"log/slog"
)

// Stage names the pipeline step a paste ended on.
type Stage string

const (
	StageUnavailable Stage = "unavailable"
	StageIneligible  Stage = "ineligible"
	StageFocus       Stage = "focus"
	StageInsert      Stage = "insert"
	StageDelivered   Stage = "delivered"
)

// Outcome is the result of one paste. Delivered is the contract's boolean;
// Stage and Focus let the caller surface an actionable message for the focus
// failures the user can fix. Unavailability and ineligibility are normal
// negative outcomes, not errors.
type Outcome struct {
	Delivered bool
	Stage     Stage
	Focus     *FocusError
}

// Destination is the orchestrator: one implementation for every destination
// kind, with the kind-specific behavior injected as capabilities. It is
// stateless between pastes except for the bound resource descriptor — focus
// is re-resolved from scratch on every call.
type Destination struct {
	Kind     Kind
	Resource Resource

	focus     FocusCapability
	checkers  []Checker
	available func(ctx context.Context) bool
	sameAs    func(other *Destination) bool
}

// New assembles a destination from its capabilities. sameAs may be nil; the
// default comparator matches destinations of the same kind, which is the
// right identity for singleton panels.
func New(kind Kind, res Resource, focus FocusCapability, checkers []Checker,
	available func(ctx context.Context) bool, sameAs func(other *Destination) bool) *Destination {
	return &Destination{
		Kind:      kind,
		Resource:  res,
		focus:     focus,
		checkers:  checkers,
		available: available,
		sameAs:    sameAs,
	}
}

// Available reports whether the bound resource is currently usable. The
// router also uses this to drop bindings whose resource has disappeared.
func (d *Destination) Available(ctx context.Context) bool {
	if d.available == nil {
		return true
	}
	return d.available(ctx)
}

// Equals reports whether other is bound to the same resource. Resource
// comparison rules (document URI, pane identity) are injected at
// construction; the orchestrator knows none of them.
func (d *Destination) Equals(other *Destination) bool {
	if other == nil {
		return false
	}
	if d.sameAs != nil {
		return d.sameAs(other)
	}
	return d.Kind == other.Kind
}

// PasteLink delivers a locator link through the pipeline.
func (d *Destination) PasteLink(ctx context.Context, link string, pc PasteContext) Outcome {
	return d.paste(ctx, link, pc)
}

// PasteContent delivers arbitrary text through the pipeline.
func (d *Destination) PasteContent(ctx context.Context, text string, pc PasteContext) Outcome {
	return d.paste(ctx, text, pc)
}

// paste runs availability → eligibility → padding → focus → insert, short-
// circuiting on the first negative step. Padding happens after eligibility
// so it cannot turn an all-whitespace paste eligible, and before focus so
// the inserter receives the final text.
func (d *Destination) paste(ctx context.Context, text string, pc PasteContext) Outcome {
	log := slog.With("destination", d.Kind, "resource", d.Resource.Describe(), "len", len(text))

	if !d.Available(ctx) {
		log.Info("paste skipped: destination unavailable")
		return Outcome{Stage: StageUnavailable}
	}

	for _, c := range d.checkers {
		if !c.Eligible(ctx, text, pc) {
			return Outcome{Stage: StageIneligible}
		}
	}

	padded := Pad(text)

	focused, ferr := d.focus.Focus(ctx)
	if ferr != nil {
		log.Warn("paste failed: focus", "reason", ferr.Reason, "err", ferr)
		return Outcome{Stage: StageFocus, Focus: ferr}
	}

	if !focused.Insert(ctx, padded) {
		log.Info("paste not delivered: insert reported failure")
		return Outcome{Stage: StageInsert}
	}

	log.Info("paste delivered")
	return Outcome{Delivered: true, Stage: StageDelivered}
}
