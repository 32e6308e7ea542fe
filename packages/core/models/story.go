package models

import (
	"time"

	"gorm.io/gorm"
)

type Story struct {
	ID         uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID     uint           `gorm:"not null;index" json:"user_id"`
	ClubID     uint           `gorm:"not null" json:"club_id"`
	Name       string         `gorm:"size:255;not null" json:"name"`
	Formation  string         `gorm:"size:32" json:"formation"`
	Challenge  string         `gorm:"size:512" json:"challenge"`
	Background string         `gorm:"type:text" json:"background"`
	Slug       string         `gorm:"size:255;uniqueIndex;not null" json:"slug"`
	IsPublic   bool           `gorm:"default:false" json:"is_public"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Club    Club     `gorm:"foreignKey:ClubID;references:ID" json:"club,omitempty"`
	Seasons []Season `gorm:"foreignKey:StoryID" json:"seasons,omitempty"`
}

func (Story) TableName() string {
	return "stories"
}

type CreateStoryRequest struct {
	Club       string `json:"club,omitempty"`
	ClubID     uint   `json:"club_id,omitempty"`
	Formation  string `json:"formation" binding:"required"`
	Challenge  string `json:"challenge" binding:"required"`
	Background string `json:"background" binding:"required"`
	IsPublic   bool   `json:"is_public"`
}

// GeneratedStory is the ephemeral preview produced by the generator.
// Nothing is persisted until the user explicitly saves the story.
type GeneratedStory struct {
	Club       Club   `json:"club"`
	Formation  string `json:"formation"`
	Challenge  string `json:"challenge"`
	Background string `json:"background"`
}

// StorySummary is the my-stories listing entry with per-story season counts.
type StorySummary struct {
	Story         Story   `json:"story"`
	CurrentSeason *Season `json:"current_season,omitempty"`
	TotalSeasons  int64   `json:"total_seasons"`
	ClubLogo      string  `json:"club_logo,omitempty"`
}
