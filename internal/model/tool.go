package model

import "fmt"

// Tool names accepted from the intent oracle. Anything else is rejected.
const (
	ToolSearchProperties = "search_properties"
	ToolListSchools      = "list_schools"
	ToolAskClarification = "ask_clarification"
	ToolGeocodeLocation  = "geocode_location"
)

// ToolCall is the oracle's proposal for one turn: a tool name plus a
// draft argument set. The draft may be partial or malformed relative to
// the accumulated criteria; the router validates it, never trusts it.
type ToolCall struct {
	Tool      string        `json:"tool" binding:"required"`
	Arguments ToolArguments `json:"arguments"`
}

// ToolArguments carries the criteria draft plus the clarification fields
// the oracle may fill in for ask_clarification.
type ToolArguments struct {
	CriteriaDraft
	Question     *string `json:"question,omitempty"`
	MissingField *string `json:"missing_field,omitempty"`
}

// OutcomeKind discriminates the four turn outcomes.
type OutcomeKind string

const (
	OutcomeExecuted OutcomeKind = "EXECUTED"
	OutcomeClarify  OutcomeKind = "CLARIFY"
	OutcomeRejected OutcomeKind = "REJECTED"
	OutcomeError    OutcomeKind = "ERROR"
)

// Rejection reasons and error kinds.
const (
	ReasonUnknownTool = "UNKNOWN_TOOL"

	ErrKindValidation     = "VALIDATION_ERROR"
	ErrKindAnchorNotFound = "ANCHOR_NOT_FOUND"
	ErrKindStorage        = "STORAGE_UNAVAILABLE"
)

// ToolOutcome is the fully resolved result of one turn. Exactly the
// fields relevant to Kind are populated, carrying enough structured data
// for the response layer to format without re-querying.
type ToolOutcome struct {
	Kind OutcomeKind `json:"kind"`

	// EXECUTED payloads
	Rows    []ParcelHit     `json:"rows,omitempty"`
	Anchor  *ResolvedAnchor `json:"anchor,omitempty"`
	Schools []string        `json:"schools,omitempty"`

	// CLARIFY payload
	MissingSlot string `json:"missing_slot,omitempty"`
	Prompt      string `json:"prompt,omitempty"`

	// REJECTED payload
	Reason string `json:"reason,omitempty"`

	// ERROR payload
	ErrorKind string `json:"error_kind,omitempty"`

	// Detail is shared by REJECTED and ERROR: the unrecognized tool
	// name, a validation message, or the storage failure text.
	Detail string `json:"detail,omitempty"`
}

// ValidationError reports a malformed or out-of-range criteria value.
// Values are never silently coerced or clamped.
type ValidationError struct {
	Detail string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s", e.Detail)
}
