package services

import (
	"errors"
	"fmt"
	"strconv"

	"core/models"

	"gorm.io/gorm"
)

type StatsService struct {
	db *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{
		db: db,
	}
}

// UpsertPlayerStats creates or updates the stat line keyed by
// (story, season, player). On create, unspecified counters default to zero;
// on update only the supplied fields change.
func (s *StatsService) UpsertPlayerStats(userID uint, storySlug string, req models.UpsertPlayerStatsRequest) (*models.PlayerStats, error) {
	story, err := storyForOwner(s.db, userID, storySlug)
	if err != nil {
		return nil, err
	}

	var season models.Season
	if err := s.db.Where("id = ? AND story_id = ?", req.SeasonID, story.ID).First(&season).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("season %d: %w", req.SeasonID, ErrNotFound)
		}
		return nil, err
	}

	var player models.Player
	if err := s.db.First(&player, req.PlayerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("player %d: %w", req.PlayerID, ErrNotFound)
		}
		return nil, err
	}

	var stats models.PlayerStats
	err = s.db.Where("story_id = ? AND season_id = ? AND player_id = ?",
		story.ID, season.ID, player.ID).First(&stats).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		stats = models.PlayerStats{
			StoryID:  story.ID,
			SeasonID: season.ID,
			PlayerID: player.ID,
		}
		applyStatFields(&stats, req)
		if err := s.db.Create(&stats).Error; err != nil {
			return nil, err
		}
		return &stats, nil
	}
	if err != nil {
		return nil, err
	}

	applyStatFields(&stats, req)
	if err := s.db.Save(&stats).Error; err != nil {
		return nil, err
	}

	return &stats, nil
}

// UpdateStatField updates a single field on an existing stat row. The field
// set is enumerated; anything else is rejected as a validation error.
func (s *StatsService) UpdateStatField(userID uint, statID uint, req models.UpdateStatFieldRequest) (*models.PlayerStats, error) {
	stats, err := s.statForOwner(userID, statID)
	if err != nil {
		return nil, err
	}

	switch req.Field {
	case "overall_rating", "appearances", "goals", "assists", "clean_sheets", "yellow_cards", "red_cards":
		value, err := strconv.Atoi(req.Value)
		if err != nil {
			return nil, fmt.Errorf("field %s needs an integer value: %w", req.Field, ErrValidation)
		}
		if err := s.db.Model(stats).Update(req.Field, value).Error; err != nil {
			return nil, err
		}
	case "average_rating":
		value, err := strconv.ParseFloat(req.Value, 64)
		if err != nil {
			return nil, fmt.Errorf("field %s needs a numeric value: %w", req.Field, ErrValidation)
		}
		if err := s.db.Model(stats).Update(req.Field, value).Error; err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("field %q is not updatable: %w", req.Field, ErrValidation)
	}

	if err := s.db.First(stats, stats.ID).Error; err != nil {
		return nil, err
	}

	return stats, nil
}

// DeletePlayerStat removes a stat row from the caller's story.
func (s *StatsService) DeletePlayerStat(userID uint, statID uint) error {
	stats, err := s.statForOwner(userID, statID)
	if err != nil {
		return err
	}

	return s.db.Delete(stats).Error
}

// GetSeasonPlayerStats lists the stat lines of a season for the story detail
// page, owner or public access.
func (s *StatsService) GetSeasonPlayerStats(userID uint, seasonID uint) ([]models.PlayerStats, error) {
	season, _, err := seasonForRead(s.db, userID, seasonID)
	if err != nil {
		return nil, err
	}

	var stats []models.PlayerStats
	if err := s.db.Where("season_id = ?", season.ID).
		Preload("Player").
		Find(&stats).Error; err != nil {
		return nil, err
	}

	return stats, nil
}

// GetOverview returns the site-wide record counts for the landing page.
func (s *StatsService) GetOverview() (*models.Stats, error) {
	var stats models.Stats

	if err := s.db.Model(&models.Competition{}).Count(&stats.TotalCompetitions).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Club{}).Count(&stats.TotalClubs).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Player{}).Count(&stats.TotalPlayers).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Story{}).Count(&stats.TotalStories).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Story{}).Where("is_public = ?", true).Count(&stats.PublicStories).Error; err != nil {
		return nil, err
	}

	return &stats, nil
}

func (s *StatsService) statForOwner(userID uint, statID uint) (*models.PlayerStats, error) {
	var stats models.PlayerStats

	if err := s.db.First(&stats, statID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("player stat %d: %w", statID, ErrNotFound)
		}
		return nil, err
	}

	var story models.Story
	if err := s.db.First(&story, stats.StoryID).Error; err != nil {
		return nil, err
	}

	if story.UserID != userID {
		return nil, fmt.Errorf("player stat %d: %w", statID, ErrPermissionDenied)
	}

	return &stats, nil
}

func applyStatFields(stats *models.PlayerStats, req models.UpsertPlayerStatsRequest) {
	if req.OverallRating != nil {
		stats.OverallRating = *req.OverallRating
	}
	if req.Appearances != nil {
		stats.Appearances = *req.Appearances
	}
	if req.Goals != nil {
		stats.Goals = *req.Goals
	}
	if req.Assists != nil {
		stats.Assists = *req.Assists
	}
	if req.CleanSheets != nil {
		stats.CleanSheets = *req.CleanSheets
	}
	if req.YellowCards != nil {
		stats.YellowCards = *req.YellowCards
	}
	if req.RedCards != nil {
		stats.RedCards = *req.RedCards
	}
	if req.AverageRating != nil {
		stats.AverageRating = *req.AverageRating
	}
}
