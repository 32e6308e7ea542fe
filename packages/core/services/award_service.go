package services

import (
	"errors"
	"fmt"

	"core/models"

	"gorm.io/gorm"
)

type AwardService struct {
	db                 *gorm.DB
	competitionService *CompetitionService
	clubService        *ClubService
	playerService      *PlayerService
}

func NewAwardService(db *gorm.DB, competitionService *CompetitionService, clubService *ClubService, playerService *PlayerService) *AwardService {
	return &AwardService{
		db:                 db,
		competitionService: competitionService,
		clubService:        clubService,
		playerService:      playerService,
	}
}

// RecordSeasonAwards upserts the season's competition and award winners in
// one transaction. Each entry is keyed by its composite; resubmitting the
// same key overwrites the winner, no history is kept.
func (s *AwardService) RecordSeasonAwards(userID uint, storySlug string, req models.RecordSeasonAwardsRequest) error {
	story, err := storyForOwner(s.db, userID, storySlug)
	if err != nil {
		return err
	}

	var season models.Season
	if err := s.db.Where("id = ? AND story_id = ?", req.SeasonID, story.ID).First(&season).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("season %d: %w", req.SeasonID, ErrNotFound)
		}
		return err
	}

	// Resolve references before opening the transaction so lazy creation of
	// competitions, clubs and players does not sit inside it.
	type resolvedCompetitionWinner struct {
		competitionID uint
		clubID        uint
	}
	resolvedCompetitions := make([]resolvedCompetitionWinner, 0, len(req.CompetitionWinners))
	for _, entry := range req.CompetitionWinners {
		competition, err := s.competitionService.GetOrCreateByName(entry.Competition)
		if err != nil {
			return err
		}
		club, err := s.clubService.ResolveOrRegister(entry.ClubName)
		if err != nil {
			return err
		}
		resolvedCompetitions = append(resolvedCompetitions, resolvedCompetitionWinner{
			competitionID: competition.ID,
			clubID:        club.ID,
		})
	}

	type resolvedAwardWinner struct {
		awardName string
		playerID  uint
	}
	resolvedAwards := make([]resolvedAwardWinner, 0, len(req.AwardWinners))
	for _, entry := range req.AwardWinners {
		playerID := entry.PlayerID
		if playerID == 0 {
			player, err := s.playerService.ResolveOrRegisterByName(entry.PlayerName)
			if err != nil {
				return err
			}
			playerID = player.ID
		}
		resolvedAwards = append(resolvedAwards, resolvedAwardWinner{
			awardName: entry.AwardName,
			playerID:  playerID,
		})
	}

	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	for _, entry := range resolvedCompetitions {
		var winner models.CompetitionWinner
		err := tx.Where("story_id = ? AND season_id = ? AND competition_id = ?",
			story.ID, season.ID, entry.competitionID).First(&winner).Error

		if errors.Is(err, gorm.ErrRecordNotFound) {
			winner = models.CompetitionWinner{
				StoryID:       story.ID,
				SeasonID:      season.ID,
				CompetitionID: entry.competitionID,
				ClubID:        entry.clubID,
			}
			if err := tx.Create(&winner).Error; err != nil {
				tx.Rollback()
				return err
			}
			continue
		}
		if err != nil {
			tx.Rollback()
			return err
		}

		winner.ClubID = entry.clubID
		if err := tx.Save(&winner).Error; err != nil {
			tx.Rollback()
			return err
		}
	}

	for _, entry := range resolvedAwards {
		var winner models.AwardWinner
		err := tx.Where("story_id = ? AND season_id = ? AND award_name = ?",
			story.ID, season.ID, entry.awardName).First(&winner).Error

		if errors.Is(err, gorm.ErrRecordNotFound) {
			winner = models.AwardWinner{
				StoryID:   story.ID,
				SeasonID:  season.ID,
				AwardName: entry.awardName,
				PlayerID:  entry.playerID,
			}
			if err := tx.Create(&winner).Error; err != nil {
				tx.Rollback()
				return err
			}
			continue
		}
		if err != nil {
			tx.Rollback()
			return err
		}

		winner.PlayerID = entry.playerID
		if err := tx.Save(&winner).Error; err != nil {
			tx.Rollback()
			return err
		}
	}

	return tx.Commit().Error
}

// GetSeasonAwards returns the season's winners, owner or public access.
func (s *AwardService) GetSeasonAwards(userID uint, seasonID uint) ([]models.CompetitionWinner, []models.AwardWinner, error) {
	season, story, err := seasonForRead(s.db, userID, seasonID)
	if err != nil {
		return nil, nil, err
	}

	var competitionWinners []models.CompetitionWinner
	if err := s.db.Where("season_id = ? AND story_id = ?", season.ID, story.ID).
		Preload("Competition").
		Preload("Club").
		Find(&competitionWinners).Error; err != nil {
		return nil, nil, err
	}

	var awardWinners []models.AwardWinner
	if err := s.db.Where("season_id = ? AND story_id = ?", season.ID, story.ID).
		Preload("Player").
		Find(&awardWinners).Error; err != nil {
		return nil, nil, err
	}

	return competitionWinners, awardWinners, nil
}
