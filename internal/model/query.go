package model

// QuerySpec is the fully parameterized, unit-normalized spatial query
// produced by the query builder. Filter values travel only in Args;
// they are never interpolated into SQL.
type QuerySpec struct {
	SQL  string        `json:"sql"`
	Args []interface{} `json:"args"`
}

// TurnRequest is one conversation turn delivered over HTTP: an optional
// session id plus the oracle's tool call. A missing session id starts a
// new conversation.
type TurnRequest struct {
	SessionID string   `json:"session_id"`
	ToolCall  ToolCall `json:"tool_call" binding:"required"`
}

// TurnResponse carries the turn outcome together with the session id so
// the caller can continue the conversation.
type TurnResponse struct {
	SessionID string          `json:"session_id"`
	Outcome   *ToolOutcome    `json:"outcome"`
	Criteria  *SearchCriteria `json:"criteria,omitempty"`
}

// ResetRequest clears the accumulated criteria of one session.
type ResetRequest struct {
	SessionID string `json:"session_id" binding:"required"`
}
