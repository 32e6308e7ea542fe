package services

import (
	"errors"
	"fmt"

	"core/models"
	"core/utils"

	"gorm.io/gorm"
)

type CompetitionService struct {
	db *gorm.DB
}

func NewCompetitionService(db *gorm.DB) *CompetitionService {
	return &CompetitionService{
		db: db,
	}
}

func (s *CompetitionService) GetCompetitionByName(name string) (*models.Competition, error) {
	var competition models.Competition

	result := s.db.Where("name = ?", name).First(&competition)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("competition %q: %w", name, ErrNotFound)
		}
		return nil, result.Error
	}

	return &competition, nil
}

// GetOrCreateByName resolves a competition by name, creating a CUP-typed
// record when absent. Season award entry references cup competitions that
// the league import never carries, so they are created lazily here.
func (s *CompetitionService) GetOrCreateByName(name string) (*models.Competition, error) {
	competition, err := s.GetCompetitionByName(name)
	if err == nil {
		return competition, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	created := models.Competition{
		Name:            name,
		Slug:            utils.Slugify(name),
		CompetitionType: models.CompetitionTypeCup,
	}

	if err := s.db.Create(&created).Error; err != nil {
		return nil, err
	}

	return &created, nil
}

func (s *CompetitionService) GetAllCompetitions() ([]models.Competition, error) {
	var competitions []models.Competition

	result := s.db.Order("league_rep DESC").Find(&competitions)
	if result.Error != nil {
		return nil, result.Error
	}

	return competitions, nil
}
