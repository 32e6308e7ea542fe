package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"
)

// Positions is the ordered list of playing positions (primary first, up to three).
type Positions []string

func (p Positions) Value() (driver.Value, error) {
	if len(p) == 0 {
		return json.Marshal([]string{})
	}
	return json.Marshal(p)
}

func (p *Positions) Scan(value interface{}) error {
	if value == nil {
		*p = Positions{}
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, p)
	case string:
		return json.Unmarshal([]byte(v), p)
	default:
		return errors.New("unsupported type for Positions")
	}
}

type Player struct {
	ID            uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	ExternalID    *int64         `gorm:"column:player_id;uniqueIndex" json:"player_id,omitempty"`
	Name          string         `gorm:"size:255;not null;index" json:"name"`
	Slug          string         `gorm:"size:255;index" json:"slug"`
	Positions     Positions      `gorm:"type:jsonb" json:"positions"`
	Nationality   string         `gorm:"size:255" json:"nationality"`
	BirthDate     *time.Time     `json:"birth_date,omitempty"`
	BirthYear     int            `gorm:"default:0" json:"birth_year"`
	Age           int            `gorm:"default:0" json:"age"`
	FacePicURL    string         `gorm:"size:512" json:"face_pic_url"`
	ClubID        *uint          `json:"club_id"`
	WageEUR       float64        `gorm:"default:100" json:"wage_eur"`
	WageUSD       float64        `gorm:"default:100" json:"wage_usd"`
	WageGBP       float64        `gorm:"default:100" json:"wage_gbp"`
	ContractStart *time.Time     `json:"contract_start,omitempty"`
	ContractEnd   *time.Time     `json:"contract_end,omitempty"`
	ContractLoan  bool           `gorm:"default:false" json:"contract_loan"`
	Overall       int            `gorm:"default:0" json:"overall"`
	Potential     int            `gorm:"default:0" json:"potential"`
	ImportSource  string         `gorm:"size:64" json:"import_source,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Club *Club `gorm:"foreignKey:ClubID;references:ID" json:"club,omitempty"`
}

func (Player) TableName() string {
	return "players"
}

type PaginatedPlayersResponse struct {
	Data       []Player `json:"data"`
	Total      int64    `json:"total"`
	Page       int      `json:"page"`
	PageSize   int      `json:"pageSize"`
	TotalPages int      `json:"totalPages"`
}
