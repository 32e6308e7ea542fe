package services

import (
	"errors"
	"fmt"

	"core/models"

	"gorm.io/gorm"
)

type SeasonService struct {
	db *gorm.DB
}

func NewSeasonService(db *gorm.DB) *SeasonService {
	return &SeasonService{
		db: db,
	}
}

// AddSeason appends a season to the story. New seasons start not-current
// unless the request promotes them, in which case the promotion runs through
// the same atomic path as SetCurrentSeason.
func (s *SeasonService) AddSeason(userID uint, storySlug string, req models.AddSeasonRequest) (*models.Season, error) {
	story, err := storyForOwner(s.db, userID, storySlug)
	if err != nil {
		return nil, err
	}

	var existing models.Season
	err = s.db.Where("story_id = ? AND name = ?", story.ID, req.Name).First(&existing).Error
	if err == nil {
		return nil, fmt.Errorf("season %q already exists in story: %w", req.Name, ErrConflict)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	season := models.Season{
		StoryID:      story.ID,
		SeasonNumber: req.SeasonNumber,
		Name:         req.Name,
		IsCurrent:    false,
	}

	if err := s.db.Create(&season).Error; err != nil {
		return nil, err
	}

	if req.MakeCurrent {
		if err := s.SetCurrentSeason(userID, storySlug, season.ID); err != nil {
			return nil, err
		}
		season.IsCurrent = true
	}

	return &season, nil
}

// SetCurrentSeason moves the is_current flag to the target season. Clearing
// the other seasons and setting the target happen in one transaction so a
// concurrent reader never sees zero or more than one current season.
func (s *SeasonService) SetCurrentSeason(userID uint, storySlug string, seasonID uint) error {
	story, err := storyForOwner(s.db, userID, storySlug)
	if err != nil {
		return err
	}

	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var season models.Season
	if err := tx.Where("id = ? AND story_id = ?", seasonID, story.ID).First(&season).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("season %d: %w", seasonID, ErrNotFound)
		}
		return err
	}

	if err := tx.Model(&models.Season{}).
		Where("story_id = ? AND id != ?", story.ID, season.ID).
		Update("is_current", false).Error; err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Model(&models.Season{}).
		Where("id = ?", season.ID).
		Update("is_current", true).Error; err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}

// GetSeasonData returns the full season bundle (stats, transfers, winners)
// for the story detail page.
func (s *SeasonService) GetSeasonData(userID uint, seasonID uint) (*models.SeasonData, error) {
	season, story, err := seasonForRead(s.db, userID, seasonID)
	if err != nil {
		return nil, err
	}

	var stats []models.PlayerStats
	if err := s.db.Where("season_id = ?", season.ID).
		Preload("Player").
		Find(&stats).Error; err != nil {
		return nil, err
	}

	var transfers []models.Transfer
	if err := s.db.Where("season_id = ? AND story_id = ?", season.ID, story.ID).
		Order("date DESC").
		Preload("Player").
		Preload("FromClub").
		Preload("ToClub").
		Find(&transfers).Error; err != nil {
		return nil, err
	}

	var competitionWinners []models.CompetitionWinner
	if err := s.db.Where("season_id = ? AND story_id = ?", season.ID, story.ID).
		Preload("Competition").
		Preload("Club").
		Find(&competitionWinners).Error; err != nil {
		return nil, err
	}

	var awardWinners []models.AwardWinner
	if err := s.db.Where("season_id = ? AND story_id = ?", season.ID, story.ID).
		Preload("Player").
		Find(&awardWinners).Error; err != nil {
		return nil, err
	}

	return &models.SeasonData{
		Season:       *season,
		PlayerStats:  stats,
		Transfers:    transfers,
		Competitions: competitionWinners,
		Awards:       awardWinners,
	}, nil
}
