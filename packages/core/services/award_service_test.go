package services

import (
	"errors"
	"testing"

	"core/models"

	"gorm.io/gorm"
)

func newAwardService(db *gorm.DB) *AwardService {
	return NewAwardService(db, NewCompetitionService(db), NewClubService(db), NewPlayerService(db))
}

func TestRecordSeasonAwards(t *testing.T) {
	db := setupTestDB(t)
	story := seedStory(t, db, 1, "Arsenal")
	seasonID := currentSeasonID(t, db, story.ID)
	player := seedPlayer(t, db, "Declan Rice")
	service := newAwardService(db)

	db.Create(&models.Competition{Name: "Premier League", Slug: "premier-league", CompetitionType: models.CompetitionTypeLeague})

	err := service.RecordSeasonAwards(1, story.Slug, models.RecordSeasonAwardsRequest{
		SeasonID: seasonID,
		CompetitionWinners: []models.CompetitionWinnerRequest{
			{Competition: "Premier League", ClubName: "Arsenal"},
			{Competition: "FA Cup", ClubName: "Manchester City"},
		},
		AwardWinners: []models.AwardWinnerRequest{
			{AwardName: "Player of the Season", PlayerID: player.ID},
			{AwardName: "Golden Boot", PlayerName: "Erling Haaland"},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The cup is created lazily with the CUP type.
	var cup models.Competition
	if err := db.Where("name = ?", "FA Cup").First(&cup).Error; err != nil {
		t.Fatalf("FA Cup not created: %v", err)
	}
	if cup.CompetitionType != models.CompetitionTypeCup {
		t.Errorf("expected lazily created competition to be a cup, got %q", cup.CompetitionType)
	}

	// Free-text club and player names are registered.
	var city models.Club
	if err := db.Where("name = ?", "Manchester City").First(&city).Error; err != nil {
		t.Fatalf("winning club not registered: %v", err)
	}
	var haaland models.Player
	if err := db.Where("name = ?", "Erling Haaland").First(&haaland).Error; err != nil {
		t.Fatalf("award winner not registered: %v", err)
	}

	var competitionCount, awardCount int64
	db.Model(&models.CompetitionWinner{}).Where("season_id = ?", seasonID).Count(&competitionCount)
	db.Model(&models.AwardWinner{}).Where("season_id = ?", seasonID).Count(&awardCount)
	if competitionCount != 2 {
		t.Errorf("expected 2 competition winners, got %d", competitionCount)
	}
	if awardCount != 2 {
		t.Errorf("expected 2 award winners, got %d", awardCount)
	}
}

func TestRecordSeasonAwardsOverwrites(t *testing.T) {
	db := setupTestDB(t)
	story := seedStory(t, db, 1, "Arsenal")
	seasonID := currentSeasonID(t, db, story.ID)
	rice := seedPlayer(t, db, "Declan Rice")
	saka := seedPlayer(t, db, "Bukayo Saka")
	service := newAwardService(db)

	first := models.RecordSeasonAwardsRequest{
		SeasonID: seasonID,
		CompetitionWinners: []models.CompetitionWinnerRequest{
			{Competition: "Premier League", ClubName: "Arsenal"},
		},
		AwardWinners: []models.AwardWinnerRequest{
			{AwardName: "Player of the Season", PlayerID: rice.ID},
		},
	}
	if err := service.RecordSeasonAwards(1, story.Slug, first); err != nil {
		t.Fatalf("first submission: %v", err)
	}

	// Resubmitting the same keys replaces the winners without duplicating rows.
	second := models.RecordSeasonAwardsRequest{
		SeasonID: seasonID,
		CompetitionWinners: []models.CompetitionWinnerRequest{
			{Competition: "Premier League", ClubName: "Liverpool"},
		},
		AwardWinners: []models.AwardWinnerRequest{
			{AwardName: "Player of the Season", PlayerID: saka.ID},
		},
	}
	if err := service.RecordSeasonAwards(1, story.Slug, second); err != nil {
		t.Fatalf("second submission: %v", err)
	}

	var competitionWinners []models.CompetitionWinner
	db.Where("season_id = ?", seasonID).Find(&competitionWinners)
	if len(competitionWinners) != 1 {
		t.Fatalf("expected a single competition winner row, got %d", len(competitionWinners))
	}
	var liverpool models.Club
	db.Where("name = ?", "Liverpool").First(&liverpool)
	if competitionWinners[0].ClubID != liverpool.ID {
		t.Errorf("expected the winner to be overwritten to Liverpool, got club %d", competitionWinners[0].ClubID)
	}

	var awardWinners []models.AwardWinner
	db.Where("season_id = ?", seasonID).Find(&awardWinners)
	if len(awardWinners) != 1 {
		t.Fatalf("expected a single award winner row, got %d", len(awardWinners))
	}
	if awardWinners[0].PlayerID != saka.ID {
		t.Errorf("expected the award to be overwritten to player %d, got %d", saka.ID, awardWinners[0].PlayerID)
	}
}

func TestRecordSeasonAwardsChecks(t *testing.T) {
	db := setupTestDB(t)
	story := seedStory(t, db, 1, "Arsenal")
	seasonID := currentSeasonID(t, db, story.ID)
	service := newAwardService(db)

	if err := service.RecordSeasonAwards(2, story.Slug, models.RecordSeasonAwardsRequest{
		SeasonID: seasonID,
	}); !errors.Is(err, ErrPermissionDenied) {
		t.Errorf("expected ErrPermissionDenied for a stranger, got %v", err)
	}

	if err := service.RecordSeasonAwards(1, story.Slug, models.RecordSeasonAwardsRequest{
		SeasonID: 999,
	}); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for an unknown season, got %v", err)
	}
}

func TestGetSeasonAwards(t *testing.T) {
	db := setupTestDB(t)
	story := seedStory(t, db, 1, "Arsenal")
	seasonID := currentSeasonID(t, db, story.ID)
	player := seedPlayer(t, db, "Declan Rice")
	service := newAwardService(db)

	if err := service.RecordSeasonAwards(1, story.Slug, models.RecordSeasonAwardsRequest{
		SeasonID: seasonID,
		CompetitionWinners: []models.CompetitionWinnerRequest{
			{Competition: "Premier League", ClubName: "Arsenal"},
		},
		AwardWinners: []models.AwardWinnerRequest{
			{AwardName: "Player of the Season", PlayerID: player.ID},
		},
	}); err != nil {
		t.Fatalf("seeding awards: %v", err)
	}

	competitionWinners, awardWinners, err := service.GetSeasonAwards(1, seasonID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(competitionWinners) != 1 {
		t.Fatalf("expected 1 competition winner, got %d", len(competitionWinners))
	}
	if competitionWinners[0].Competition.Name != "Premier League" {
		t.Errorf("expected competition preloaded, got %q", competitionWinners[0].Competition.Name)
	}
	if competitionWinners[0].Club.Name != "Arsenal" {
		t.Errorf("expected club preloaded, got %q", competitionWinners[0].Club.Name)
	}
	if len(awardWinners) != 1 {
		t.Fatalf("expected 1 award winner, got %d", len(awardWinners))
	}
	if awardWinners[0].Player.Name != "Declan Rice" {
		t.Errorf("expected player preloaded, got %q", awardWinners[0].Player.Name)
	}

	// Private story data stays private.
	if _, _, err := service.GetSeasonAwards(9, seasonID); !errors.Is(err, ErrPermissionDenied) {
		t.Errorf("expected ErrPermissionDenied, got %v", err)
	}
}
