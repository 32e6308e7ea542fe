package models

import (
	"time"

	"gorm.io/gorm"
)

// Season is one cycle within a story. At most one season per story carries
// is_current = true; the flag only moves through StoryService.SetCurrentSeason.
type Season struct {
	ID           uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	StoryID      uint           `gorm:"not null;index;uniqueIndex:idx_seasons_story_name" json:"story_id"`
	SeasonNumber int            `gorm:"not null" json:"season_number"`
	Name         string         `gorm:"size:32;not null;uniqueIndex:idx_seasons_story_name" json:"name"`
	IsCurrent    bool           `gorm:"default:false;index" json:"is_current"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Story *Story `gorm:"foreignKey:StoryID;references:ID" json:"-"`
}

func (Season) TableName() string {
	return "seasons"
}

type AddSeasonRequest struct {
	SeasonNumber int    `json:"season_number" binding:"required"`
	Name         string `json:"name" binding:"required"`
	MakeCurrent  bool   `json:"make_current"`
}

// SeasonData bundles everything the story detail page needs for one season.
type SeasonData struct {
	Season       Season              `json:"season"`
	PlayerStats  []PlayerStats       `json:"player_stats"`
	Transfers    []Transfer          `json:"transfers"`
	Competitions []CompetitionWinner `json:"competition_winners"`
	Awards       []AwardWinner       `json:"award_winners"`
}
