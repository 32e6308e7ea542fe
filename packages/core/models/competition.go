package models

import (
	"time"

	"gorm.io/gorm"
)

// Competition types as they appear in the reference CSV exports.
const (
	CompetitionTypeLeague        = "LEAGUE"
	CompetitionTypeCup           = "CUP"
	CompetitionTypeSuperCup      = "SUPER_CUP"
	CompetitionTypeInternational = "INTERNATIONAL"
)

type Competition struct {
	ID              uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name            string         `gorm:"size:255;uniqueIndex;not null" json:"name"`
	Slug            string         `gorm:"size:255;index" json:"slug"`
	Country         string         `gorm:"size:255" json:"country"`
	Tier            int            `gorm:"default:1" json:"tier"`
	CompetitionType string         `gorm:"size:32;default:LEAGUE" json:"competition_type"`
	LeagueRep       int            `gorm:"default:0" json:"league_rep"`
	MinWageBudget   float64        `gorm:"default:0" json:"min_wage_budget"`
	LogoURL         string         `gorm:"size:512" json:"logo_url"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Clubs []Club `gorm:"foreignKey:LeagueID" json:"clubs,omitempty"`
}

func (Competition) TableName() string {
	return "competitions"
}
