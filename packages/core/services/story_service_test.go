package services

import (
	"errors"
	"testing"

	"core/models"
)

func TestCreateStoryCreatesInitialSeason(t *testing.T) {
	db := setupTestDB(t)
	club := seedClub(t, db, "Arsenal")
	service := NewStoryService(db)

	story, err := service.CreateStory(7, "alex", models.CreateStoryRequest{
		ClubID:     club.ID,
		Formation:  "4-2-3-1",
		Challenge:  "Unbeaten domestic season",
		Background: "Club legend returns as manager",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if story.Name != "alex's Arsenal Career" {
		t.Errorf("expected story name %q, got %q", "alex's Arsenal Career", story.Name)
	}
	if story.Slug != "alex-s-arsenal-career" {
		t.Errorf("expected slug alex-s-arsenal-career, got %q", story.Slug)
	}

	if len(story.Seasons) != 1 {
		t.Fatalf("expected exactly 1 season, got %d", len(story.Seasons))
	}
	season := story.Seasons[0]
	if season.SeasonNumber != InitialSeasonNumber {
		t.Errorf("expected season number %d, got %d", InitialSeasonNumber, season.SeasonNumber)
	}
	if season.Name != InitialSeasonName {
		t.Errorf("expected season name %q, got %q", InitialSeasonName, season.Name)
	}
	if !season.IsCurrent {
		t.Error("initial season must be current")
	}
}

func TestCreateStorySlugCollision(t *testing.T) {
	db := setupTestDB(t)
	club := seedClub(t, db, "Arsenal")
	service := NewStoryService(db)

	req := models.CreateStoryRequest{
		ClubID:     club.ID,
		Formation:  "4-3-3",
		Challenge:  "Back to back titles",
		Background: "Fresh start",
	}

	first, err := service.CreateStory(1, "alex", req)
	if err != nil {
		t.Fatalf("first story: %v", err)
	}
	second, err := service.CreateStory(2, "alex", req)
	if err != nil {
		t.Fatalf("second story: %v", err)
	}

	if first.Slug == second.Slug {
		t.Errorf("slugs must be unique, both are %q", first.Slug)
	}
	if second.Slug != first.Slug+"-1" {
		t.Errorf("expected counter suffix, got %q", second.Slug)
	}
}

func TestCreateStoryValidation(t *testing.T) {
	db := setupTestDB(t)
	club := seedClub(t, db, "Arsenal")
	service := NewStoryService(db)

	_, err := service.CreateStory(1, "alex", models.CreateStoryRequest{
		ClubID:    club.ID,
		Formation: "4-3-3",
	})
	if !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation for missing fields, got %v", err)
	}

	_, err = service.CreateStory(1, "alex", models.CreateStoryRequest{
		Club:       "Phantom FC",
		Formation:  "4-3-3",
		Challenge:  "x",
		Background: "y",
	})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for unknown club, got %v", err)
	}
}

func TestGetStoryBySlugVisibility(t *testing.T) {
	db := setupTestDB(t)
	story := seedStory(t, db, 1, "Arsenal")

	service := NewStoryService(db)

	if _, err := service.GetStoryBySlug(1, story.Slug); err != nil {
		t.Errorf("owner must read their private story: %v", err)
	}

	if _, err := service.GetStoryBySlug(2, story.Slug); !errors.Is(err, ErrPermissionDenied) {
		t.Errorf("expected ErrPermissionDenied for a stranger, got %v", err)
	}

	db.Model(&models.Story{}).Where("id = ?", story.ID).Update("is_public", true)

	if _, err := service.GetStoryBySlug(2, story.Slug); err != nil {
		t.Errorf("public story must be readable by anyone: %v", err)
	}

	if _, err := service.GetStoryBySlug(1, "no-such-story"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestGetMyStories(t *testing.T) {
	db := setupTestDB(t)
	seedStory(t, db, 1, "Arsenal")
	seedStory(t, db, 1, "Ajax")
	seedStory(t, db, 2, "Chelsea")

	service := NewStoryService(db)

	summaries, err := service.GetMyStories(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(summaries) != 2 {
		t.Fatalf("expected 2 stories for user 1, got %d", len(summaries))
	}
	for _, summary := range summaries {
		if summary.CurrentSeason == nil {
			t.Errorf("story %q has no current season in summary", summary.Story.Name)
		}
		if summary.TotalSeasons != 1 {
			t.Errorf("expected 1 season, got %d", summary.TotalSeasons)
		}
	}
}

func TestGetCurrentSeasonFallback(t *testing.T) {
	db := setupTestDB(t)
	story := seedStory(t, db, 1, "Arsenal")
	service := NewStoryService(db)

	season, err := service.GetCurrentSeason(story.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !season.IsCurrent {
		t.Error("expected the flagged season")
	}

	// Clear the flag entirely, the latest season becomes the fallback.
	db.Model(&models.Season{}).Where("story_id = ?", story.ID).Update("is_current", false)
	db.Create(&models.Season{StoryID: story.ID, SeasonNumber: 2, Name: "25/26"})

	season, err = service.GetCurrentSeason(story.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if season.SeasonNumber != 2 {
		t.Errorf("expected fallback to the latest season, got number %d", season.SeasonNumber)
	}
}
