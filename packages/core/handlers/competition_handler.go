package handlers

import (
	"net/http"

	"core/services"

	"github.com/gin-gonic/gin"
)

type CompetitionHandler struct {
	competitionService *services.CompetitionService
}

func NewCompetitionHandler(competitionService *services.CompetitionService) *CompetitionHandler {
	return &CompetitionHandler{
		competitionService: competitionService,
	}
}

// GetAllCompetitions lists every competition
// @Summary Get all competitions
// @Description List competitions ordered by league reputation
// @Tags competitions
// @Produce json
// @Success 200 {array} models.Competition
// @Failure 500 {object} map[string]string
// @Router /competitions [get]
func (h *CompetitionHandler) GetAllCompetitions(c *gin.Context) {
	competitions, err := h.competitionService.GetAllCompetitions()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve competitions"})
		return
	}

	c.JSON(http.StatusOK, competitions)
}
