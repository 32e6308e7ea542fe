package models

type Stats struct {
	TotalCompetitions int64 `json:"total_competitions"`
	TotalClubs        int64 `json:"total_clubs"`
	TotalPlayers      int64 `json:"total_players"`
	TotalStories      int64 `json:"total_stories"`
	PublicStories     int64 `json:"public_stories"`
}
