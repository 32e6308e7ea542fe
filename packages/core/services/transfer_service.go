package services

import (
	"errors"
	"fmt"
	"time"

	"core/models"

	"gorm.io/gorm"
)

type TransferService struct {
	db            *gorm.DB
	clubService   *ClubService
	playerService *PlayerService
}

func NewTransferService(db *gorm.DB, clubService *ClubService, playerService *PlayerService) *TransferService {
	return &TransferService{
		db:            db,
		clubService:   clubService,
		playerService: playerService,
	}
}

// RecordTransfer registers a season transfer. The counterparty club and the
// player both resolve-or-register by free-text name, and the direction fixes
// which side of the move is the story's club.
func (s *TransferService) RecordTransfer(userID uint, storySlug string, req models.RecordTransferRequest) (*models.Transfer, error) {
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

	player, err := s.resolvePlayer(req)
	if err != nil {
		return nil, err
	}

	counterparty, err := s.clubService.ResolveOrRegister(req.CounterpartyClub)
	if err != nil {
		return nil, err
	}

	date := time.Now()
	if req.Date != "" {
		parsed, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			return nil, fmt.Errorf("date must be YYYY-MM-DD: %w", ErrValidation)
		}
		date = parsed
	}

	transfer := models.Transfer{
		StoryID:  story.ID,
		SeasonID: season.ID,
		PlayerID: player.ID,
		Fee:      req.Fee,
		Date:     date,
	}

	switch req.Direction {
	case models.TransferIn:
		transfer.ToClubID = story.ClubID
		transfer.FromClubID = counterparty.ID
	case models.TransferOut:
		transfer.FromClubID = story.ClubID
		transfer.ToClubID = counterparty.ID
	default:
		return nil, fmt.Errorf("direction must be %q or %q: %w", models.TransferIn, models.TransferOut, ErrValidation)
	}

	if err := s.db.Create(&transfer).Error; err != nil {
		return nil, err
	}

	if err := s.db.Preload("Player").Preload("FromClub").Preload("ToClub").First(&transfer, transfer.ID).Error; err != nil {
		return nil, err
	}

	return &transfer, nil
}

// DeleteTransfer removes a transfer from the caller's story.
func (s *TransferService) DeleteTransfer(userID uint, transferID uint) error {
	var transfer models.Transfer

	if err := s.db.First(&transfer, transferID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("transfer %d: %w", transferID, ErrNotFound)
		}
		return err
	}

	var story models.Story
	if err := s.db.First(&story, transfer.StoryID).Error; err != nil {
		return err
	}

	if story.UserID != userID {
		return fmt.Errorf("transfer %d: %w", transferID, ErrPermissionDenied)
	}

	return s.db.Delete(&transfer).Error
}

// GetSeasonTransfers lists a season's transfers, owner or public access.
func (s *TransferService) GetSeasonTransfers(userID uint, seasonID uint) ([]models.Transfer, error) {
	season, story, err := seasonForRead(s.db, userID, seasonID)
	if err != nil {
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

	return transfers, nil
}

func (s *TransferService) resolvePlayer(req models.RecordTransferRequest) (*models.Player, error) {
	if req.PlayerID != 0 {
		var player models.Player
		if err := s.db.First(&player, req.PlayerID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("player %d: %w", req.PlayerID, ErrNotFound)
			}
			return nil, err
		}
		return &player, nil
	}

	return s.playerService.ResolveOrRegisterByName(req.PlayerName)
}
