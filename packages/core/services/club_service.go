package services

import (
	"errors"
	"fmt"

	"core/models"
	"core/utils"

	"gorm.io/gorm"
)

type ClubService struct {
	db *gorm.DB
}

func NewClubService(db *gorm.DB) *ClubService {
	return &ClubService{
		db: db,
	}
}

func (s *ClubService) GetClubByID(id uint) (*models.Club, error) {
	var club models.Club

	result := s.db.Preload("League").First(&club, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("club %d: %w", id, ErrNotFound)
		}
		return nil, result.Error
	}

	return &club, nil
}

func (s *ClubService) GetClubByName(name string) (*models.Club, error) {
	var club models.Club

	result := s.db.Where("name = ?", name).First(&club)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("club %q: %w", name, ErrNotFound)
		}
		return nil, result.Error
	}

	return &club, nil
}

// ResolveOrRegister returns the club matching the exact name, creating a
// minimal record when none exists. Manual transfer entry feeds free-text
// names through here; near-identical names stay distinct clubs, there is no
// fuzzy matching.
func (s *ClubService) ResolveOrRegister(name string) (*models.Club, error) {
	if name == "" {
		return nil, fmt.Errorf("club name is required: %w", ErrValidation)
	}

	club, err := s.GetClubByName(name)
	if err == nil {
		return club, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	created := models.Club{
		Name: name,
		Slug: utils.Slugify(name),
	}

	if err := s.db.Create(&created).Error; err != nil {
		return nil, err
	}

	return &created, nil
}

// GetClubPlayers lists a club's players, best rated first.
func (s *ClubService) GetClubPlayers(clubID uint) ([]models.Player, error) {
	if _, err := s.GetClubByID(clubID); err != nil {
		return nil, err
	}

	var players []models.Player
	result := s.db.Where("club_id = ?", clubID).
		Order("overall DESC").
		Find(&players)

	if result.Error != nil {
		return nil, result.Error
	}

	return players, nil
}

func (s *ClubService) GetAllClubs(page int, pageSize int) (*models.PaginatedClubsResponse, error) {
	var clubs []models.Club
	var total int64

	if err := s.db.Model(&models.Club{}).Count(&total).Error; err != nil {
		return nil, err
	}

	offset := (page - 1) * pageSize

	if err := s.db.Order("name ASC").
		Preload("League").
		Offset(offset).
		Limit(pageSize).
		Find(&clubs).Error; err != nil {
		return nil, err
	}

	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))

	return &models.PaginatedClubsResponse{
		Data:       clubs,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}, nil
}
