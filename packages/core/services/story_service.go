package services

import (
	"errors"
	"fmt"

	"core/models"
	"core/utils"

	"gorm.io/gorm"
)

// Initial season naming convention for a brand-new story.
const (
	InitialSeasonNumber = 1
	InitialSeasonName   = "24/25"
)

type StoryService struct {
	db *gorm.DB
}

func NewStoryService(db *gorm.DB) *StoryService {
	return &StoryService{
		db: db,
	}
}

// CreateStory persists a story the user explicitly saved, together with its
// initial season (number 1, flagged current). Generated previews never reach
// this point unless the user hits save.
func (s *StoryService) CreateStory(userID uint, username string, req models.CreateStoryRequest) (*models.Story, error) {
	club, err := s.resolveClub(req.ClubID, req.Club)
	if err != nil {
		return nil, err
	}

	if req.Formation == "" || req.Challenge == "" || req.Background == "" {
		return nil, fmt.Errorf("formation, challenge and background are required: %w", ErrValidation)
	}

	name := fmt.Sprintf("%s's %s Career", username, club.Name)
	slug := s.generateUniqueSlug(name)

	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	story := models.Story{
		UserID:     userID,
		ClubID:     club.ID,
		Name:       name,
		Formation:  req.Formation,
		Challenge:  req.Challenge,
		Background: req.Background,
		Slug:       slug,
		IsPublic:   req.IsPublic,
	}

	if err := tx.Create(&story).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	initialSeason := models.Season{
		StoryID:      story.ID,
		SeasonNumber: InitialSeasonNumber,
		Name:         InitialSeasonName,
		IsCurrent:    true,
	}

	if err := tx.Create(&initialSeason).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	if err := s.db.Preload("Club").Preload("Seasons").First(&story, story.ID).Error; err != nil {
		return nil, err
	}

	return &story, nil
}

// GetStoryBySlug returns the story when the caller owns it or it is public.
func (s *StoryService) GetStoryBySlug(userID uint, slug string) (*models.Story, error) {
	var story models.Story

	result := s.db.Where("slug = ?", slug).
		Preload("Club").
		Preload("Seasons", func(db *gorm.DB) *gorm.DB {
			return db.Order("season_number ASC")
		}).
		First(&story)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("story %q: %w", slug, ErrNotFound)
		}
		return nil, result.Error
	}

	if story.UserID != userID && !story.IsPublic {
		return nil, fmt.Errorf("story %q: %w", slug, ErrPermissionDenied)
	}

	return &story, nil
}

// GetMyStories lists the user's stories, most recently updated first, with
// the current season and season count attached for each.
func (s *StoryService) GetMyStories(userID uint) ([]models.StorySummary, error) {
	var stories []models.Story

	result := s.db.Where("user_id = ?", userID).
		Order("updated_at DESC").
		Preload("Club").
		Find(&stories)

	if result.Error != nil {
		return nil, result.Error
	}

	summaries := make([]models.StorySummary, 0, len(stories))
	for _, story := range stories {
		var current models.Season
		var currentPtr *models.Season
		if err := s.db.Where("story_id = ? AND is_current = ?", story.ID, true).First(&current).Error; err == nil {
			currentPtr = &current
		}

		var totalSeasons int64
		if err := s.db.Model(&models.Season{}).Where("story_id = ?", story.ID).Count(&totalSeasons).Error; err != nil {
			return nil, err
		}

		summaries = append(summaries, models.StorySummary{
			Story:         story,
			CurrentSeason: currentPtr,
			TotalSeasons:  totalSeasons,
			ClubLogo:      story.Club.LogoSmallURL,
		})
	}

	return summaries, nil
}

// GetCurrentSeason returns the story's current season, falling back to the
// latest season when none carries the flag.
func (s *StoryService) GetCurrentSeason(storyID uint) (*models.Season, error) {
	var season models.Season

	err := s.db.Where("story_id = ? AND is_current = ?", storyID, true).First(&season).Error
	if err == nil {
		return &season, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	err = s.db.Where("story_id = ?", storyID).Order("season_number DESC").First(&season).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("story has no seasons: %w", ErrNotFound)
		}
		return nil, err
	}

	return &season, nil
}

func (s *StoryService) resolveClub(clubID uint, clubName string) (*models.Club, error) {
	var club models.Club

	// ID takes precedence over name when both are supplied.
	if clubID != 0 {
		if err := s.db.First(&club, clubID).Error; err == nil {
			return &club, nil
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	if clubName != "" {
		if err := s.db.Where("name = ?", clubName).First(&club).Error; err == nil {
			return &club, nil
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	return nil, fmt.Errorf("club: %w", ErrNotFound)
}

func (s *StoryService) generateUniqueSlug(name string) string {
	baseSlug := utils.Slugify(name)
	slug := baseSlug
	counter := 1

	for {
		var existing models.Story
		result := s.db.Where("slug = ?", slug).First(&existing)

		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			break
		}

		slug = fmt.Sprintf("%s-%d", baseSlug, counter)
		counter++
	}

	return slug
}

// storyForOwner loads a story by slug and enforces that the acting user owns
// it. Every mutating season-scoped operation goes through this check.
func storyForOwner(db *gorm.DB, userID uint, slug string) (*models.Story, error) {
	var story models.Story

	if err := db.Where("slug = ?", slug).First(&story).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("story %q: %w", slug, ErrNotFound)
		}
		return nil, err
	}

	if story.UserID != userID {
		return nil, fmt.Errorf("story %q: %w", slug, ErrPermissionDenied)
	}

	return &story, nil
}

// seasonForRead loads a season with its story and enforces read access
// (owner or public story).
func seasonForRead(db *gorm.DB, userID uint, seasonID uint) (*models.Season, *models.Story, error) {
	var season models.Season

	if err := db.First(&season, seasonID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, fmt.Errorf("season %d: %w", seasonID, ErrNotFound)
		}
		return nil, nil, err
	}

	var story models.Story
	if err := db.First(&story, season.StoryID).Error; err != nil {
		return nil, nil, err
	}

	if story.UserID != userID && !story.IsPublic {
		return nil, nil, fmt.Errorf("season %d: %w", seasonID, ErrPermissionDenied)
	}

	return &season, &story, nil
}
