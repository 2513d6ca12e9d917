package handler

import (
	"net/http"

	"propertyagent/internal/model"
	"propertyagent/internal/service"

	"github.com/gin-gonic/gin"
)

// TurnHandler handles conversation turn HTTP requests
type TurnHandler struct {
	turnService *service.TurnService
}

// NewTurnHandler creates a new turn handler
func NewTurnHandler(turnService *service.TurnService) *TurnHandler {
	return &TurnHandler{
		turnService: turnService,
	}
}

// Turn handles POST /api/v1/turn
func (h *TurnHandler) Turn(c *gin.Context) {
	var req model.TurnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	sessionID, outcome, criteria := h.turnService.HandleTurn(c.Request.Context(), req.SessionID, &req.ToolCall)

	c.JSON(http.StatusOK, model.TurnResponse{
		SessionID: sessionID,
		Outcome:   outcome,
		Criteria:  &criteria,
	})
}

// Reset handles POST /api/v1/session/reset
func (h *TurnHandler) Reset(c *gin.Context) {
	var req model.ResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	h.turnService.ResetSession(req.SessionID)
	c.JSON(http.StatusOK, gin.H{"session_id": req.SessionID, "reset": true})
}
