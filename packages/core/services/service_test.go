package services

import (
	"fmt"
	"strings"
	"testing"

	"core/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// Named shared-memory database so every pooled connection sees the same
	// store, isolated per test.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.Competition{},
		&models.Club{},
		&models.Player{},
		&models.Story{},
		&models.Season{},
		&models.PlayerStats{},
		&models.Transfer{},
		&models.CompetitionWinner{},
		&models.AwardWinner{},
	); err != nil {
		t.Fatalf("migrating test database: %v", err)
	}

	return db
}

func seedClub(t *testing.T, db *gorm.DB, name string) *models.Club {
	t.Helper()

	club := models.Club{Name: name, Slug: name}
	if err := db.Create(&club).Error; err != nil {
		t.Fatalf("seeding club %s: %v", name, err)
	}
	return &club
}

func seedPlayer(t *testing.T, db *gorm.DB, name string) *models.Player {
	t.Helper()

	player := models.Player{Name: name, Slug: name}
	if err := db.Create(&player).Error; err != nil {
		t.Fatalf("seeding player %s: %v", name, err)
	}
	return &player
}

func seedStory(t *testing.T, db *gorm.DB, userID uint, clubName string) *models.Story {
	t.Helper()

	club := seedClub(t, db, clubName)
	storyService := NewStoryService(db)
	story, err := storyService.CreateStory(userID, "tester", models.CreateStoryRequest{
		ClubID:     club.ID,
		Formation:  "4-3-3",
		Challenge:  "Win the league within three seasons",
		Background: "A fallen giant looking for redemption",
	})
	if err != nil {
		t.Fatalf("seeding story: %v", err)
	}
	return story
}

func currentSeasonID(t *testing.T, db *gorm.DB, storyID uint) uint {
	t.Helper()

	var season models.Season
	if err := db.Where("story_id = ? AND is_current = ?", storyID, true).First(&season).Error; err != nil {
		t.Fatalf("loading current season: %v", err)
	}
	return season.ID
}
