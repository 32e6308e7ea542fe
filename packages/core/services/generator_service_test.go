package services

import (
	"errors"
	"testing"

	"core/models"
)

func TestGenerateAll(t *testing.T) {
	db := setupTestDB(t)
	seedClub(t, db, "Arsenal")
	service := NewGeneratorService(db)

	generated, err := service.GenerateAll()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if generated.Club.Name != "Arsenal" {
		t.Errorf("expected the single seeded club, got %q", generated.Club.Name)
	}
	if generated.Formation == "" {
		t.Error("expected a formation to be picked")
	}
	if generated.Challenge == "" {
		t.Error("expected a challenge to be picked")
	}
	if generated.Background == "" {
		t.Error("expected a background to be picked")
	}

	// Nothing is persisted by a preview.
	var count int64
	db.Model(&models.Story{}).Count(&count)
	if count != 0 {
		t.Errorf("generation must not persist stories, found %d", count)
	}
}

func TestGenerateAllWithoutClubs(t *testing.T) {
	db := setupTestDB(t)
	service := NewGeneratorService(db)

	if _, err := service.GenerateAll(); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound with an empty club table, got %v", err)
	}
}
