package service

import (
	"context"

	"propertyagent/internal/model"
)

// TurnService drives one conversation turn end to end: it locates the
// session, serializes against other turns of the same session, and
// hands the tool call to the router.
type TurnService struct {
	sessions *SessionManager
	router   *Router
}

// NewTurnService creates a turn service.
func NewTurnService(sessions *SessionManager, router *Router) *TurnService {
	return &TurnService{
		sessions: sessions,
		router:   router,
	}
}

// HandleTurn resolves one tool call into an outcome. It returns the
// session id (freshly minted when the request carried none) and the
// criteria accumulated so far alongside the outcome.
func (s *TurnService) HandleTurn(ctx context.Context, sessionID string, call *model.ToolCall) (string, *model.ToolOutcome, model.SearchCriteria) {
	session := s.sessions.Get(sessionID)

	session.mu.Lock()
	defer session.mu.Unlock()

	outcome := s.router.Dispatch(ctx, session.acc, call)
	return session.ID, outcome, session.acc.Criteria()
}

// ResetSession clears the accumulated criteria of a conversation.
func (s *TurnService) ResetSession(sessionID string) {
	s.sessions.Reset(sessionID)
}
