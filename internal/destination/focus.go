package destination

import "context"

// Inserter delivers text into the exact target resolved by the preceding
// focus call. The closure captures the fresh handle; it is used once and
// discarded — never stored across pastes. The bool is the delivery outcome:
// a false is an expected negative result, not an error.
type Inserter func(ctx context.Context, text string) bool

// Focused is a successfully focused destination, ready to insert.
type Focused struct {
	Insert Inserter
}

// FocusCapability resolves the destination's current runtime target, brings
// it to the foreground, and hands back an Inserter bound to the freshly
// resolved target. Implementations never panic and never let a host error
// escape — every failure maps to a typed FocusError.
type FocusCapability interface {
	Focus(ctx context.Context) (Focused, *FocusError)
}
