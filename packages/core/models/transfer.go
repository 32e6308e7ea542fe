package models

import (
	"time"

	"gorm.io/gorm"
)

// Transfer directions. "in" fixes the destination to the story's club,
// "out" fixes the origin.
const (
	TransferIn  = "in"
	TransferOut = "out"
)

type Transfer struct {
	ID         uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	StoryID    uint           `gorm:"not null;index" json:"story_id"`
	SeasonID   uint           `gorm:"not null;index" json:"season_id"`
	PlayerID   uint           `gorm:"not null" json:"player_id"`
	FromClubID uint           `gorm:"not null" json:"from_club_id"`
	ToClubID   uint           `gorm:"not null" json:"to_club_id"`
	Fee        float64        `gorm:"default:0" json:"fee"`
	Date       time.Time      `json:"date"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Player   Player `gorm:"foreignKey:PlayerID;references:ID" json:"player,omitempty"`
	FromClub Club   `gorm:"foreignKey:FromClubID;references:ID" json:"from_club,omitempty"`
	ToClub   Club   `gorm:"foreignKey:ToClubID;references:ID" json:"to_club,omitempty"`
}

func (Transfer) TableName() string {
	return "transfers"
}

// RecordTransferRequest accepts either a tracked player id or a free-text
// player name; the service registers unknown names as new players.
type RecordTransferRequest struct {
	SeasonID         uint    `json:"season_id" binding:"required"`
	PlayerID         uint    `json:"player_id,omitempty"`
	PlayerName       string  `json:"player_name,omitempty"`
	Direction        string  `json:"direction" binding:"required,oneof=in out"`
	CounterpartyClub string  `json:"counterparty_club" binding:"required"`
	Fee              float64 `json:"fee"`
	Date             string  `json:"date,omitempty"`
}
