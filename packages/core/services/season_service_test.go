package services

import (
	"errors"
	"testing"

	"core/models"
)

func TestAddSeason(t *testing.T) {
	db := setupTestDB(t)
	story := seedStory(t, db, 1, "Arsenal")
	service := NewSeasonService(db)

	season, err := service.AddSeason(1, story.Slug, models.AddSeasonRequest{
		SeasonNumber: 2,
		Name:         "25/26",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if season.IsCurrent {
		t.Error("new season must not be current unless promoted")
	}

	// Duplicate name within the same story is a conflict.
	_, err = service.AddSeason(1, story.Slug, models.AddSeasonRequest{
		SeasonNumber: 3,
		Name:         "25/26",
	})
	if !errors.Is(err, ErrConflict) {
		t.Errorf("expected ErrConflict for duplicate season name, got %v", err)
	}

	// A stranger cannot add seasons.
	_, err = service.AddSeason(2, story.Slug, models.AddSeasonRequest{
		SeasonNumber: 4,
		Name:         "26/27",
	})
	if !errors.Is(err, ErrPermissionDenied) {
		t.Errorf("expected ErrPermissionDenied, got %v", err)
	}
}

func TestAddSeasonMakeCurrent(t *testing.T) {
	db := setupTestDB(t)
	story := seedStory(t, db, 1, "Arsenal")
	service := NewSeasonService(db)

	season, err := service.AddSeason(1, story.Slug, models.AddSeasonRequest{
		SeasonNumber: 2,
		Name:         "25/26",
		MakeCurrent:  true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !season.IsCurrent {
		t.Error("promoted season must be current")
	}

	var count int64
	db.Model(&models.Season{}).Where("story_id = ? AND is_current = ?", story.ID, true).Count(&count)
	if count != 1 {
		t.Errorf("expected exactly one current season, got %d", count)
	}
}

func TestSetCurrentSeasonInvariant(t *testing.T) {
	db := setupTestDB(t)
	story := seedStory(t, db, 1, "Arsenal")
	service := NewSeasonService(db)

	second, err := service.AddSeason(1, story.Slug, models.AddSeasonRequest{SeasonNumber: 2, Name: "25/26"})
	if err != nil {
		t.Fatalf("adding season: %v", err)
	}
	third, err := service.AddSeason(1, story.Slug, models.AddSeasonRequest{SeasonNumber: 3, Name: "26/27"})
	if err != nil {
		t.Fatalf("adding season: %v", err)
	}

	// Repeated promotions must always leave exactly one current season.
	for _, target := range []uint{second.ID, third.ID, second.ID} {
		if err := service.SetCurrentSeason(1, story.Slug, target); err != nil {
			t.Fatalf("promoting season %d: %v", target, err)
		}

		var count int64
		db.Model(&models.Season{}).Where("story_id = ? AND is_current = ?", story.ID, true).Count(&count)
		if count != 1 {
			t.Fatalf("expected exactly one current season after promotion, got %d", count)
		}
		if got := currentSeasonID(t, db, story.ID); got != target {
			t.Errorf("expected season %d to be current, got %d", target, got)
		}
	}
}

func TestSetCurrentSeasonWrongStory(t *testing.T) {
	db := setupTestDB(t)
	first := seedStory(t, db, 1, "Arsenal")
	second := seedStory(t, db, 1, "Ajax")
	service := NewSeasonService(db)

	foreignSeason := currentSeasonID(t, db, second.ID)

	err := service.SetCurrentSeason(1, first.Slug, foreignSeason)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for a season of another story, got %v", err)
	}
}

func TestGetSeasonData(t *testing.T) {
	db := setupTestDB(t)
	story := seedStory(t, db, 1, "Arsenal")
	seasonID := currentSeasonID(t, db, story.ID)
	player := seedPlayer(t, db, "Bukayo Saka")

	goals := 15
	statsService := NewStatsService(db)
	if _, err := statsService.UpsertPlayerStats(1, story.Slug, models.UpsertPlayerStatsRequest{
		SeasonID: seasonID,
		PlayerID: player.ID,
		Goals:    &goals,
	}); err != nil {
		t.Fatalf("seeding stats: %v", err)
	}

	service := NewSeasonService(db)
	data, err := service.GetSeasonData(1, seasonID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if data.Season.ID != seasonID {
		t.Errorf("expected season %d, got %d", seasonID, data.Season.ID)
	}
	if len(data.PlayerStats) != 1 {
		t.Fatalf("expected 1 stat line, got %d", len(data.PlayerStats))
	}
	if data.PlayerStats[0].Goals != 15 {
		t.Errorf("expected 15 goals, got %d", data.PlayerStats[0].Goals)
	}
	if data.PlayerStats[0].Player.Name != "Bukayo Saka" {
		t.Errorf("expected player preloaded, got %q", data.PlayerStats[0].Player.Name)
	}

	// Private story data stays private.
	if _, err := service.GetSeasonData(9, seasonID); !errors.Is(err, ErrPermissionDenied) {
		t.Errorf("expected ErrPermissionDenied, got %v", err)
	}
}
