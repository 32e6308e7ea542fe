package services

import (
	"fmt"
	"math/rand"

	"core/models"

	"gorm.io/gorm"
)

var formations = []string{
	"4-4-2", "4-3-3", "4-2-3-1", "3-5-2", "5-3-2", "4-1-2-1-2", "3-4-3",
}

var challenges = []string{
	"Win the league within three seasons",
	"Reach a continental final with a squad average age under 24",
	"Survive relegation with the lowest wage budget in the division",
	"Win a domestic cup fielding only academy graduates",
	"Go an entire season unbeaten at home",
	"Sell your best player every summer and still finish top four",
	"Win the title without signing anyone over 28",
}

var backgrounds = []string{
	"A former club legend returns to the dugout with the board's patience running thin.",
	"An unknown tactician from the lower leagues gets one shot at the big time.",
	"After a takeover fell through, the club must rebuild around its academy.",
	"A data-driven outsider takes charge of a squad of fading stars.",
	"The youngest manager in the league inherits a dressing room in open revolt.",
	"A caretaker appointment nobody expected to last past Christmas.",
}

type GeneratorService struct {
	db *gorm.DB
}

func NewGeneratorService(db *gorm.DB) *GeneratorService {
	return &GeneratorService{
		db: db,
	}
}

// GenerateAll produces a random story preview: a club drawn from the record
// store plus a formation, challenge and background. The result is ephemeral;
// nothing is persisted until the user saves the story.
func (s *GeneratorService) GenerateAll() (*models.GeneratedStory, error) {
	var count int64
	if err := s.db.Model(&models.Club{}).Count(&count).Error; err != nil {
		return nil, err
	}

	if count == 0 {
		return nil, fmt.Errorf("no clubs imported yet: %w", ErrNotFound)
	}

	var club models.Club
	offset := rand.Intn(int(count))
	if err := s.db.Preload("League").Offset(offset).Limit(1).Find(&club).Error; err != nil {
		return nil, err
	}

	return &models.GeneratedStory{
		Club:       club,
		Formation:  formations[rand.Intn(len(formations))],
		Challenge:  challenges[rand.Intn(len(challenges))],
		Background: backgrounds[rand.Intn(len(backgrounds))],
	}, nil
}
