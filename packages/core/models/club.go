package models

import (
	"time"

	"gorm.io/gorm"
)

type Club struct {
	ID                       uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name                     string         `gorm:"size:255;uniqueIndex;not null" json:"name"`
	Slug                     string         `gorm:"size:255;index" json:"slug"`
	Country                  string         `gorm:"size:255" json:"country"`
	LeagueID                 *uint          `json:"league_id"`
	LogoSmallURL             string         `gorm:"size:512" json:"logo_small_url"`
	LogoBigURL               string         `gorm:"size:512" json:"logo_big_url"`
	Overall                  int            `gorm:"default:0" json:"overall"`
	AttRating                int            `gorm:"default:0" json:"att_rating"`
	MidRating                int            `gorm:"default:0" json:"mid_rating"`
	DefRating                int            `gorm:"default:0" json:"def_rating"`
	DomPrestige              int            `gorm:"default:0" json:"dom_prestige"`
	IntlPrestige             int            `gorm:"default:0" json:"intl_prestige"`
	LeagueRep                int            `gorm:"default:0" json:"league_rep"`
	ScoutRegion              string         `gorm:"size:255" json:"scout_region"`
	YouthScoutingRegion      string         `gorm:"size:255" json:"youth_scouting_region"`
	InternationalCompetition string         `gorm:"size:255" json:"international_competition,omitempty"`
	CreatedAt                time.Time      `json:"created_at"`
	UpdatedAt                time.Time      `json:"updated_at"`
	DeletedAt                gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	League  *Competition `gorm:"foreignKey:LeagueID;references:ID" json:"league,omitempty"`
	Players []Player     `gorm:"foreignKey:ClubID" json:"players,omitempty"`
}

func (Club) TableName() string {
	return "clubs"
}

type PaginatedClubsResponse struct {
	Data       []Club `json:"data"`
	Total      int64  `json:"total"`
	Page       int    `json:"page"`
	PageSize   int    `json:"pageSize"`
	TotalPages int    `json:"totalPages"`
}
