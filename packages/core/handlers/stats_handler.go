package handlers

import (
	"net/http"
	"strconv"

	"core/models"
	"core/services"

	authMiddleware "auth/middleware"
	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	statsService *services.StatsService
}

func NewStatsHandler(statsService *services.StatsService) *StatsHandler {
	return &StatsHandler{
		statsService: statsService,
	}
}

// UpsertPlayerStats creates or updates a player's season stat line
// @Summary Upsert player season stats
// @Description Create or update the stat line of a player for a season. One line per player per season.
// @Tags stats
// @Accept json
// @Produce json
// @Param slug path string true "Story slug"
// @Param stats body models.UpsertPlayerStatsRequest true "Stat line"
// @Success 200 {object} models.PlayerStats
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /stories/{slug}/stats [put]
// @Security BearerAuth
func (h *StatsHandler) UpsertPlayerStats(c *gin.Context) {
	userID, exists := authMiddleware.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req models.UpsertPlayerStatsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	stats, err := h.statsService.UpsertPlayerStats(userID, c.Param("slug"), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// UpdateStatField updates a single field of an existing stat line
// @Summary Update one stat field
// @Description Update a single named field of a stat line. Used by inline table edits.
// @Tags stats
// @Accept json
// @Produce json
// @Param id path int true "Stat line ID"
// @Param update body models.UpdateStatFieldRequest true "Field and value"
// @Success 200 {object} models.PlayerStats
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /stats/{id} [patch]
// @Security BearerAuth
func (h *StatsHandler) UpdateStatField(c *gin.Context) {
	userID, exists := authMiddleware.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	statID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid stat ID"})
		return
	}

	var req models.UpdateStatFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	stats, err := h.statsService.UpdateStatField(userID, uint(statID), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// DeletePlayerStat removes a stat line
// @Summary Delete a stat line
// @Description Remove a player's stat line from a season
// @Tags stats
// @Produce json
// @Param id path int true "Stat line ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /stats/{id} [delete]
// @Security BearerAuth
func (h *StatsHandler) DeletePlayerStat(c *gin.Context) {
	userID, exists := authMiddleware.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	statID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid stat ID"})
		return
	}

	if err := h.statsService.DeletePlayerStat(userID, uint(statID)); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Stat line deleted"})
}

// GetSeasonPlayerStats lists the stat lines of a season
// @Summary Get season player stats
// @Description List every stat line of a season with the players preloaded
// @Tags stats
// @Produce json
// @Param id path int true "Season ID"
// @Success 200 {array} models.PlayerStats
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /seasons/{id}/stats [get]
// @Security BearerAuth
func (h *StatsHandler) GetSeasonPlayerStats(c *gin.Context) {
	userID, _ := authMiddleware.GetUserID(c)

	seasonID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid season ID"})
		return
	}

	stats, err := h.statsService.GetSeasonPlayerStats(userID, uint(seasonID))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// GetOverview returns site-wide record counts
// @Summary Get site overview counts
// @Description Totals for competitions, clubs, players and stories
// @Tags stats
// @Produce json
// @Success 200 {object} models.Stats
// @Failure 500 {object} map[string]string
// @Router /stats/overview [get]
func (h *StatsHandler) GetOverview(c *gin.Context) {
	overview, err := h.statsService.GetOverview()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve overview"})
		return
	}

	c.JSON(http.StatusOK, overview)
}
