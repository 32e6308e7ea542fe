package models

import (
	"time"

	"gorm.io/gorm"
)

// CompetitionWinner records which club won a competition in a given story
// season. Upserts are keyed by (story, season, competition); no history is
// kept, the last write wins.
type CompetitionWinner struct {
	ID            uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	StoryID       uint           `gorm:"not null;uniqueIndex:idx_competition_winners_key" json:"story_id"`
	SeasonID      uint           `gorm:"not null;uniqueIndex:idx_competition_winners_key" json:"season_id"`
	CompetitionID uint           `gorm:"not null;uniqueIndex:idx_competition_winners_key" json:"competition_id"`
	ClubID        uint           `gorm:"not null" json:"club_id"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Competition Competition `gorm:"foreignKey:CompetitionID;references:ID" json:"competition,omitempty"`
	Club        Club        `gorm:"foreignKey:ClubID;references:ID" json:"club,omitempty"`
}

func (CompetitionWinner) TableName() string {
	return "competition_winners"
}

// AwardWinner records an individual award (top scorer, player of the season)
// for a story season, keyed by (story, season, award name).
type AwardWinner struct {
	ID        uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	StoryID   uint           `gorm:"not null;uniqueIndex:idx_award_winners_key" json:"story_id"`
	SeasonID  uint           `gorm:"not null;uniqueIndex:idx_award_winners_key" json:"season_id"`
	AwardName string         `gorm:"size:255;not null;uniqueIndex:idx_award_winners_key" json:"award_name"`
	PlayerID  uint           `gorm:"not null" json:"player_id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Player Player `gorm:"foreignKey:PlayerID;references:ID" json:"player,omitempty"`
}

func (AwardWinner) TableName() string {
	return "award_winners"
}

// RecordSeasonAwardsRequest carries the bulk award update from the season
// detail page. Competition winners reference competitions by name so that
// cup competitions absent from the imported set are created lazily.
type RecordSeasonAwardsRequest struct {
	SeasonID           uint                       `json:"season_id" binding:"required"`
	CompetitionWinners []CompetitionWinnerRequest `json:"competition_winners,omitempty"`
	AwardWinners       []AwardWinnerRequest       `json:"award_winners,omitempty"`
}

type CompetitionWinnerRequest struct {
	Competition string `json:"competition" binding:"required"`
	ClubName    string `json:"club_name" binding:"required"`
}

type AwardWinnerRequest struct {
	AwardName  string `json:"award_name" binding:"required"`
	PlayerID   uint   `json:"player_id,omitempty"`
	PlayerName string `json:"player_name,omitempty"`
}
