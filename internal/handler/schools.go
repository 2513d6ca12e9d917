package handler

import (
	"net/http"

	"propertyagent/internal/repository"

	"github.com/gin-gonic/gin"
)

// SchoolsHandler serves the school catalog
type SchoolsHandler struct {
	repo *repository.PostgresRepository
}

// NewSchoolsHandler creates a new schools handler
func NewSchoolsHandler(repo *repository.PostgresRepository) *SchoolsHandler {
	return &SchoolsHandler{repo: repo}
}

// List handles GET /api/v1/schools
func (h *SchoolsHandler) List(c *gin.Context) {
	names, err := h.repo.ListSchoolNames(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list schools: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"schools": names})
}
