package handlers

import (
	"net/http"
	"strconv"

	"core/models"
	"core/services"

	authMiddleware "auth/middleware"
	"github.com/gin-gonic/gin"
)

type AwardHandler struct {
	awardService *services.AwardService
}

func NewAwardHandler(awardService *services.AwardService) *AwardHandler {
	return &AwardHandler{
		awardService: awardService,
	}
}

// RecordSeasonAwards saves the honours of a season
// @Summary Record season awards
// @Description Save competition winners and individual awards for a season. Re-submitting a winner overwrites the previous one.
// @Tags awards
// @Accept json
// @Produce json
// @Param slug path string true "Story slug"
// @Param awards body models.RecordSeasonAwardsRequest true "Season honours"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /stories/{slug}/awards [put]
// @Security BearerAuth
func (h *AwardHandler) RecordSeasonAwards(c *gin.Context) {
	userID, exists := authMiddleware.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req models.RecordSeasonAwardsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := h.awardService.RecordSeasonAwards(userID, c.Param("slug"), req); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Season awards saved"})
}

// GetSeasonAwards lists the honours of a season
// @Summary Get season awards
// @Description List the competition winners and individual awards of a season
// @Tags awards
// @Produce json
// @Param id path int true "Season ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /seasons/{id}/awards [get]
// @Security BearerAuth
func (h *AwardHandler) GetSeasonAwards(c *gin.Context) {
	userID, _ := authMiddleware.GetUserID(c)

	seasonID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid season ID"})
		return
	}

	competitions, awards, err := h.awardService.GetSeasonAwards(userID, uint(seasonID))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"competitions": competitions,
		"awards":       awards,
	})
}
