package services

import (
	"errors"
	"testing"

	"core/models"

	"gorm.io/gorm"
)

func newTransferService(db *gorm.DB) *TransferService {
	return NewTransferService(db, NewClubService(db), NewPlayerService(db))
}

func TestRecordTransferDirections(t *testing.T) {
	db := setupTestDB(t)
	story := seedStory(t, db, 1, "Arsenal")
	seasonID := currentSeasonID(t, db, story.ID)
	player := seedPlayer(t, db, "Viktor Gyokeres")
	counterparty := seedClub(t, db, "Sporting CP")
	service := newTransferService(db)

	incoming, err := service.RecordTransfer(1, story.Slug, models.RecordTransferRequest{
		SeasonID:         seasonID,
		PlayerID:         player.ID,
		Direction:        models.TransferIn,
		CounterpartyClub: "Sporting CP",
		Fee:              65000000,
		Date:             "2025-07-01",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if incoming.ToClubID != story.ClubID {
		t.Errorf("incoming transfer must arrive at the story club, got club %d", incoming.ToClubID)
	}
	if incoming.FromClubID != counterparty.ID {
		t.Errorf("incoming transfer must leave the counterparty, got club %d", incoming.FromClubID)
	}
	if incoming.Date.Format("2006-01-02") != "2025-07-01" {
		t.Errorf("expected date 2025-07-01, got %s", incoming.Date.Format("2006-01-02"))
	}
	if incoming.Player.Name != "Viktor Gyokeres" {
		t.Errorf("expected player preloaded, got %q", incoming.Player.Name)
	}

	outgoing, err := service.RecordTransfer(1, story.Slug, models.RecordTransferRequest{
		SeasonID:         seasonID,
		PlayerID:         player.ID,
		Direction:        models.TransferOut,
		CounterpartyClub: "Sporting CP",
		Fee:              80000000,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outgoing.FromClubID != story.ClubID {
		t.Errorf("outgoing transfer must leave the story club, got club %d", outgoing.FromClubID)
	}
	if outgoing.ToClubID != counterparty.ID {
		t.Errorf("outgoing transfer must arrive at the counterparty, got club %d", outgoing.ToClubID)
	}
}

func TestRecordTransferRegistersUnknownNames(t *testing.T) {
	db := setupTestDB(t)
	story := seedStory(t, db, 1, "Arsenal")
	seasonID := currentSeasonID(t, db, story.ID)
	service := newTransferService(db)

	transfer, err := service.RecordTransfer(1, story.Slug, models.RecordTransferRequest{
		SeasonID:         seasonID,
		PlayerName:       "Wonderkid Nobody Scouted",
		Direction:        models.TransferIn,
		CounterpartyClub: "Unknown FC",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var club models.Club
	if err := db.Where("name = ?", "Unknown FC").First(&club).Error; err != nil {
		t.Fatalf("counterparty club not registered: %v", err)
	}
	if transfer.FromClubID != club.ID {
		t.Errorf("expected transfer to reference the registered club %d, got %d", club.ID, transfer.FromClubID)
	}

	var registered models.Player
	if err := db.Where("name = ?", "Wonderkid Nobody Scouted").First(&registered).Error; err != nil {
		t.Fatalf("player not registered: %v", err)
	}
	if registered.ExternalID != nil {
		t.Errorf("registered player must stay untracked, got player id %v", registered.ExternalID)
	}
}

func TestRecordTransferChecks(t *testing.T) {
	db := setupTestDB(t)
	story := seedStory(t, db, 1, "Arsenal")
	seasonID := currentSeasonID(t, db, story.ID)
	player := seedPlayer(t, db, "Viktor Gyokeres")
	other := seedStory(t, db, 2, "Ajax")
	foreignSeason := currentSeasonID(t, db, other.ID)
	service := newTransferService(db)

	if _, err := service.RecordTransfer(2, story.Slug, models.RecordTransferRequest{
		SeasonID:         seasonID,
		PlayerID:         player.ID,
		Direction:        models.TransferIn,
		CounterpartyClub: "Sporting CP",
	}); !errors.Is(err, ErrPermissionDenied) {
		t.Errorf("expected ErrPermissionDenied for a stranger, got %v", err)
	}

	if _, err := service.RecordTransfer(1, story.Slug, models.RecordTransferRequest{
		SeasonID:         foreignSeason,
		PlayerID:         player.ID,
		Direction:        models.TransferIn,
		CounterpartyClub: "Sporting CP",
	}); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for a season of another story, got %v", err)
	}

	if _, err := service.RecordTransfer(1, story.Slug, models.RecordTransferRequest{
		SeasonID:         seasonID,
		PlayerID:         999,
		Direction:        models.TransferIn,
		CounterpartyClub: "Sporting CP",
	}); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for an unknown player id, got %v", err)
	}

	if _, err := service.RecordTransfer(1, story.Slug, models.RecordTransferRequest{
		SeasonID:         seasonID,
		PlayerID:         player.ID,
		Direction:        models.TransferIn,
		CounterpartyClub: "Sporting CP",
		Date:             "01/07/2025",
	}); !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation for a malformed date, got %v", err)
	}
}

func TestDeleteTransfer(t *testing.T) {
	db := setupTestDB(t)
	story := seedStory(t, db, 1, "Arsenal")
	seasonID := currentSeasonID(t, db, story.ID)
	player := seedPlayer(t, db, "Viktor Gyokeres")
	service := newTransferService(db)

	transfer, err := service.RecordTransfer(1, story.Slug, models.RecordTransferRequest{
		SeasonID:         seasonID,
		PlayerID:         player.ID,
		Direction:        models.TransferIn,
		CounterpartyClub: "Sporting CP",
	})
	if err != nil {
		t.Fatalf("seeding transfer: %v", err)
	}

	if err := service.DeleteTransfer(2, transfer.ID); !errors.Is(err, ErrPermissionDenied) {
		t.Errorf("expected ErrPermissionDenied for a stranger, got %v", err)
	}

	if err := service.DeleteTransfer(1, transfer.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := service.DeleteTransfer(1, transfer.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after deletion, got %v", err)
	}
}

func TestGetSeasonTransfers(t *testing.T) {
	db := setupTestDB(t)
	story := seedStory(t, db, 1, "Arsenal")
	seasonID := currentSeasonID(t, db, story.ID)
	player := seedPlayer(t, db, "Viktor Gyokeres")
	service := newTransferService(db)

	for _, date := range []string{"2025-07-01", "2025-08-15"} {
		if _, err := service.RecordTransfer(1, story.Slug, models.RecordTransferRequest{
			SeasonID:         seasonID,
			PlayerID:         player.ID,
			Direction:        models.TransferIn,
			CounterpartyClub: "Sporting CP",
			Date:             date,
		}); err != nil {
			t.Fatalf("seeding transfer: %v", err)
		}
	}

	transfers, err := service.GetSeasonTransfers(1, seasonID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(transfers) != 2 {
		t.Fatalf("expected 2 transfers, got %d", len(transfers))
	}
	if transfers[0].Date.Before(transfers[1].Date) {
		t.Error("transfers must be ordered most recent first")
	}
	if transfers[0].Player.Name != "Viktor Gyokeres" {
		t.Errorf("expected player preloaded, got %q", transfers[0].Player.Name)
	}

	// Private story data stays private.
	if _, err := service.GetSeasonTransfers(9, seasonID); !errors.Is(err, ErrPermissionDenied) {
		t.Errorf("expected ErrPermissionDenied, got %v", err)
	}
}
