package api

import (
	"net/http"

	"github.com/abr-content-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// TeamHandler handles team roster endpoints
type TeamHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewTeamHandler creates a new TeamHandler
func NewTeamHandler(services *service.Services, log zerolog.Logger) *TeamHandler {
	return &TeamHandler{
		services: services,
		log:      log.With().Str("handler", "team").Logger(),
	}
}

// GetDepartments handles GET /v1/team
func (h *TeamHandler) GetDepartments(c *gin.Context) {
	departments, err := h.services.Team.Departments(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"departments": departments})
}
