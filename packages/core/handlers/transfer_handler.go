package handlers

import (
	"net/http"
	"strconv"

	"core/models"
	"core/services"

	authMiddleware "auth/middleware"
	"github.com/gin-gonic/gin"
)

type TransferHandler struct {
	transferService *services.TransferService
}

func NewTransferHandler(transferService *services.TransferService) *TransferHandler {
	return &TransferHandler{
		transferService: transferService,
	}
}

// RecordTransfer records an incoming or outgoing transfer
// @Summary Record a transfer
// @Description Record a transfer for a season. Unknown counterparty clubs and players are registered on the fly.
// @Tags transfers
// @Accept json
// @Produce json
// @Param slug path string true "Story slug"
// @Param transfer body models.RecordTransferRequest true "Transfer to record"
// @Success 201 {object} models.Transfer
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /stories/{slug}/transfers [post]
// @Security BearerAuth
func (h *TransferHandler) RecordTransfer(c *gin.Context) {
	userID, exists := authMiddleware.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req models.RecordTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	transfer, err := h.transferService.RecordTransfer(userID, c.Param("slug"), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, transfer)
}

// DeleteTransfer removes a transfer record
// @Summary Delete a transfer
// @Description Remove a transfer from a season
// @Tags transfers
// @Produce json
// @Param id path int true "Transfer ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /transfers/{id} [delete]
// @Security BearerAuth
func (h *TransferHandler) DeleteTransfer(c *gin.Context) {
	userID, exists := authMiddleware.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	transferID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid transfer ID"})
		return
	}

	if err := h.transferService.DeleteTransfer(userID, uint(transferID)); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Transfer deleted"})
}

// GetSeasonTransfers lists the transfers of a season
// @Summary Get season transfers
// @Description List every transfer of a season with player and clubs preloaded
// @Tags transfers
// @Produce json
// @Param id path int true "Season ID"
// @Success 200 {array} models.Transfer
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /seasons/{id}/transfers [get]
// @Security BearerAuth
func (h *TransferHandler) GetSeasonTransfers(c *gin.Context) {
	userID, _ := authMiddleware.GetUserID(c)

	seasonID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid season ID"})
		return
	}

	transfers, err := h.transferService.GetSeasonTransfers(userID, uint(seasonID))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, transfers)
}
