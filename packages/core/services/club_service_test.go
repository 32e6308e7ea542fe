package services

import (
	"errors"
	"testing"
)

func TestResolveOrRegister(t *testing.T) {
	db := setupTestDB(t)
	existing := seedClub(t, db, "Arsenal")
	service := NewClubService(db)

	resolved, err := service.ResolveOrRegister("Arsenal")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resolved.ID != existing.ID {
		t.Errorf("expected the existing club %d, got %d", existing.ID, resolved.ID)
	}

	created, err := service.ResolveOrRegister("Unknown FC")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID == 0 {
		t.Error("expected a new club to be registered")
	}
	if created.Slug != "unknown-fc" {
		t.Errorf("expected slug unknown-fc, got %q", created.Slug)
	}
}

func TestResolveOrRegisterEmptyName(t *testing.T) {
	db := setupTestDB(t)
	service := NewClubService(db)

	if _, err := service.ResolveOrRegister(""); !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation for an empty name, got %v", err)
	}
}
