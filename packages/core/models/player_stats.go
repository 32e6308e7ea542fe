package models

import (
	"time"

	"gorm.io/gorm"
)

// PlayerStats is keyed by (story, season, player). Writes go through the
// stats service which upserts on the composite key, so re-submitting the same
// player for the same season updates in place instead of inserting a row.
type PlayerStats struct {
	ID            uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	StoryID       uint           `gorm:"not null;uniqueIndex:idx_player_stats_key" json:"story_id"`
	SeasonID      uint           `gorm:"not null;uniqueIndex:idx_player_stats_key" json:"season_id"`
	PlayerID      uint           `gorm:"not null;uniqueIndex:idx_player_stats_key" json:"player_id"`
	OverallRating int            `gorm:"default:0" json:"overall_rating"`
	Appearances   int            `gorm:"default:0" json:"appearances"`
	Goals         int            `gorm:"default:0" json:"goals"`
	Assists       int            `gorm:"default:0" json:"assists"`
	CleanSheets   int            `gorm:"default:0" json:"clean_sheets"`
	YellowCards   int            `gorm:"default:0" json:"yellow_cards"`
	RedCards      int            `gorm:"default:0" json:"red_cards"`
	AverageRating float64        `gorm:"default:0" json:"average_rating"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Player Player  `gorm:"foreignKey:PlayerID;references:ID" json:"player,omitempty"`
	Season *Season `gorm:"foreignKey:SeasonID;references:ID" json:"-"`
	Story  *Story  `gorm:"foreignKey:StoryID;references:ID" json:"-"`
}

func (PlayerStats) TableName() string {
	return "player_stats"
}

// UpsertPlayerStatsRequest carries the season-scoped stat line. Pointer fields
// distinguish "not provided" from zero so updates only touch supplied values.
type UpsertPlayerStatsRequest struct {
	SeasonID      uint     `json:"season_id" binding:"required"`
	PlayerID      uint     `json:"player_id" binding:"required"`
	OverallRating *int     `json:"overall_rating,omitempty"`
	Appearances   *int     `json:"appearances,omitempty"`
	Goals         *int     `json:"goals,omitempty"`
	Assists       *int     `json:"assists,omitempty"`
	CleanSheets   *int     `json:"clean_sheets,omitempty"`
	YellowCards   *int     `json:"yellow_cards,omitempty"`
	RedCards      *int     `json:"red_cards,omitempty"`
	AverageRating *float64 `json:"average_rating,omitempty"`
}

// UpdateStatFieldRequest updates a single enumerated field on an existing row.
type UpdateStatFieldRequest struct {
	Field string `json:"field" binding:"required"`
	Value string `json:"value" binding:"required"`
}
