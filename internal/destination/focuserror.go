package destination

import "fmt"

// FocusReason classifies every way focus resolution can fail. The set is
// closed; callers switch on it, never on error strings.
type FocusReason string

const (
	// ReasonEditorNotVisible — the bound document is closed or hidden.
	ReasonEditorNotVisible FocusReason = "editor_not_visible"
	// ReasonEditorAmbiguous — the document is open in two or more view
	// columns; there is no unambiguous target.
	ReasonEditorAmbiguous FocusReason = "editor_ambiguous_columns"
	// ReasonEditorColumnUndefined — the resolved editor reported no view
	// column. Should not occur under normal host behavior.
	ReasonEditorColumnUndefined FocusReason = "editor_viewcolumn_undefined"
	// ReasonShowDocumentFailed — the host's show-document call failed.
	ReasonShowDocumentFailed FocusReason = "show_document_failed"
	// ReasonTerminalFocusFailed — revealing the bound terminal failed.
	ReasonTerminalFocusFailed FocusReason = "terminal_focus_failed"
	// ReasonCommandFocusFailed — every command in a panel's focus chain failed.
	ReasonCommandFocusFailed FocusReason = "command_focus_failed"
)

// FocusError is a typed, recoverable focus failure. Host-level errors are
// caught where they occur and wrapped here; none propagate past the core.
type FocusError struct {
	Reason FocusReason
	Cause  error
}

// NewFocusError constructs a classified focus failure.
func NewFocusError(reason FocusReason, cause error) *FocusError {
	return &FocusError{Reason: reason, Cause: cause}
}

func (e *FocusError) Error() string {
	if e == nil {
		return "focus error"
	}
	if e.Cause != nil {
		return fmt.Sprintf("focus failed (%s): %v", e.Reason, e.Cause)
	}
	return fmt.Sprintf("focus failed (%s)", e.Reason)
}

func (e *FocusError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// UserMessage returns an actionable instruction for failures the user caused
// and can fix, or "" when a log line is all that is warranted.
func (e *FocusError) UserMessage() string {
	switch e.Reason {
	case ReasonEditorNotVisible:
		return "the bound editor is not visible — re-open the document and try again"
	case ReasonEditorAmbiguous:
		return "the bound document is open in multiple columns — close the duplicate tab and try again"
	default:
		return ""
	}
}
