package handlers

import (
	"net/http"
	"strconv"

	"core/models"
	"core/services"

	authMiddleware "auth/middleware"
	"github.com/gin-gonic/gin"
)

type SeasonHandler struct {
	seasonService *services.SeasonService
}

func NewSeasonHandler(seasonService *services.SeasonService) *SeasonHandler {
	return &SeasonHandler{
		seasonService: seasonService,
	}
}

// AddSeason creates a season on a story
// @Summary Add a season to a story
// @Description Add a season to the authenticated user's story. Season names are unique per story.
// @Tags seasons
// @Accept json
// @Produce json
// @Param slug path string true "Story slug"
// @Param season body models.AddSeasonRequest true "Season to add"
// @Success 201 {object} models.Season
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /stories/{slug}/seasons [post]
// @Security BearerAuth
func (h *SeasonHandler) AddSeason(c *gin.Context) {
	userID, exists := authMiddleware.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req models.AddSeasonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	season, err := h.seasonService.AddSeason(userID, c.Param("slug"), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, season)
}

// SetCurrentSeason marks a season as the story's current one
// @Summary Set the current season
// @Description Mark a season as the story's current season. Any other current season is cleared.
// @Tags seasons
// @Produce json
// @Param slug path string true "Story slug"
// @Param id path int true "Season ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /stories/{slug}/seasons/{id}/current [put]
// @Security BearerAuth
func (h *SeasonHandler) SetCurrentSeason(c *gin.Context) {
	userID, exists := authMiddleware.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	seasonID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid season ID"})
		return
	}

	if err := h.seasonService.SetCurrentSeason(userID, c.Param("slug"), uint(seasonID)); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Current season updated"})
}

// GetSeasonData retrieves the full season bundle
// @Summary Get season data
// @Description Get a season with its player stats, transfers, competition winners and awards
// @Tags seasons
// @Produce json
// @Param id path int true "Season ID"
// @Success 200 {object} models.SeasonData
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /seasons/{id} [get]
// @Security BearerAuth
func (h *SeasonHandler) GetSeasonData(c *gin.Context) {
	userID, _ := authMiddleware.GetUserID(c)

	seasonID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid season ID"})
		return
	}

	data, err := h.seasonService.GetSeasonData(userID, uint(seasonID))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, data)
}
