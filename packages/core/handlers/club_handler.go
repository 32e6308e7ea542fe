package handlers

import (
	"net/http"
	"strconv"

	"core/services"

	"github.com/gin-gonic/gin"
)

type ClubHandler struct {
	clubService *services.ClubService
}

func NewClubHandler(clubService *services.ClubService) *ClubHandler {
	return &ClubHandler{
		clubService: clubService,
	}
}

// GetAllClubs lists clubs with pagination
// @Summary Get all clubs
// @Description List clubs ordered by overall rating with pagination
// @Tags clubs
// @Produce json
// @Param page query int false "Page number (default: 1)"
// @Param pageSize query int false "Number of clubs per page (default: 20, max: 100)"
// @Success 200 {object} models.PaginatedClubsResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /clubs [get]
func (h *ClubHandler) GetAllClubs(c *gin.Context) {
	pageStr := c.DefaultQuery("page", "1")
	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid page parameter"})
		return
	}

	pageSizeStr := c.DefaultQuery("pageSize", "20")
	pageSize, err := strconv.Atoi(pageSizeStr)
	if err != nil || pageSize < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pageSize parameter"})
		return
	}

	// Cap the pageSize to prevent excessive queries
	if pageSize > 100 {
		pageSize = 100
	}

	paginatedResponse, err := h.clubService.GetAllClubs(page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve clubs"})
		return
	}

	c.JSON(http.StatusOK, paginatedResponse)
}

// GetClub retrieves a club by ID
// @Summary Get club by ID
// @Description Get a club with its league preloaded
// @Tags clubs
// @Produce json
// @Param id path int true "Club ID"
// @Success 200 {object} models.Club
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /clubs/{id} [get]
func (h *ClubHandler) GetClub(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid club ID"})
		return
	}

	club, err := h.clubService.GetClubByID(uint(id))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, club)
}

// GetClubPlayers lists the squad of a club
// @Summary Get club players
// @Description List the players of a club ordered by overall rating
// @Tags clubs
// @Produce json
// @Param id path int true "Club ID"
// @Success 200 {array} models.Player
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /clubs/{id}/players [get]
func (h *ClubHandler) GetClubPlayers(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid club ID"})
		return
	}

	// Check if club exists
	if _, err := h.clubService.GetClubByID(uint(id)); err != nil {
		respondServiceError(c, err)
		return
	}

	players, err := h.clubService.GetClubPlayers(uint(id))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve club players"})
		return
	}

	c.JSON(http.StatusOK, players)
}
