package handlers

import (
	"net/http"

	"core/models"
	"core/services"

	authMiddleware "auth/middleware"
	"github.com/gin-gonic/gin"
)

type StoryHandler struct {
	storyService     *services.StoryService
	generatorService *services.GeneratorService
}

func NewStoryHandler(storyService *services.StoryService, generatorService *services.GeneratorService) *StoryHandler {
	return &StoryHandler{
		storyService:     storyService,
		generatorService: generatorService,
	}
}

// GenerateStory produces a random story preview
// @Summary Generate a random career story
// @Description Roll a random club, formation, challenge and background. Nothing is saved.
// @Tags stories
// @Produce json
// @Success 200 {object} models.GeneratedStory
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /stories/generate [get]
func (h *StoryHandler) GenerateStory(c *gin.Context) {
	generated, err := h.generatorService.GenerateAll()
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, generated)
}

// CreateStory saves a new career story for the authenticated user
// @Summary Create a career story
// @Description Save a career story with its starting club. An initial current season is created automatically.
// @Tags stories
// @Accept json
// @Produce json
// @Param story body models.CreateStoryRequest true "Story to create"
// @Success 201 {object} models.Story
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /stories [post]
// @Security BearerAuth
func (h *StoryHandler) CreateStory(c *gin.Context) {
	userID, exists := authMiddleware.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	username, _ := authMiddleware.GetUsername(c)

	var req models.CreateStoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	story, err := h.storyService.CreateStory(userID, username, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, story)
}

// GetMyStories lists the authenticated user's stories
// @Summary List my career stories
// @Description List the authenticated user's stories with their current season and season count
// @Tags stories
// @Produce json
// @Success 200 {array} models.StorySummary
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /stories/mine [get]
// @Security BearerAuth
func (h *StoryHandler) GetMyStories(c *gin.Context) {
	userID, exists := authMiddleware.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	stories, err := h.storyService.GetMyStories(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve stories"})
		return
	}

	c.JSON(http.StatusOK, stories)
}

// GetStory retrieves a story by slug
// @Summary Get a career story
// @Description Get a story by slug. Private stories are only visible to their owner.
// @Tags stories
// @Produce json
// @Param slug path string true "Story slug"
// @Success 200 {object} models.Story
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /stories/{slug} [get]
// @Security BearerAuth
func (h *StoryHandler) GetStory(c *gin.Context) {
	// L'utilisateur peut être anonyme, les stories publiques restent lisibles
	userID, _ := authMiddleware.GetUserID(c)

	story, err := h.storyService.GetStoryBySlug(userID, c.Param("slug"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, story)
}
