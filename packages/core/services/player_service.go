package services

import (
	"errors"
	"fmt"

	"core/models"
	"core/utils"

	"gorm.io/gorm"
)

type PlayerService struct {
	db *gorm.DB
}

func NewPlayerService(db *gorm.DB) *PlayerService {
	return &PlayerService{
		db: db,
	}
}

func (s *PlayerService) GetPlayerByID(id uint) (*models.Player, error) {
	var player models.Player

	result := s.db.Preload("Club").First(&player, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("player %d: %w", id, ErrNotFound)
		}
		return nil, result.Error
	}

	return &player, nil
}

// ResolveOrRegisterByName returns the first player matching the exact name,
// creating an untracked record (no natural player_id) when none exists.
// Used when transfer entry references a player the import never covered.
func (s *PlayerService) ResolveOrRegisterByName(name string) (*models.Player, error) {
	if name == "" {
		return nil, fmt.Errorf("player name is required: %w", ErrValidation)
	}

	var player models.Player
	err := s.db.Where("name = ?", name).First(&player).Error
	if err == nil {
		return &player, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	created := models.Player{
		Name: name,
		Slug: utils.Slugify(name),
	}

	if err := s.db.Create(&created).Error; err != nil {
		return nil, err
	}

	return &created, nil
}

func (s *PlayerService) GetAllPlayers(page int, pageSize int) (*models.PaginatedPlayersResponse, error) {
	var players []models.Player
	var total int64

	if err := s.db.Model(&models.Player{}).Count(&total).Error; err != nil {
		return nil, err
	}

	offset := (page - 1) * pageSize

	if err := s.db.Order("overall DESC").
		Offset(offset).
		Limit(pageSize).
		Find(&players).Error; err != nil {
		return nil, err
	}

	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))

	return &models.PaginatedPlayersResponse{
		Data:       players,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}, nil
}
