package importer

import (
	"fmt"
	"os"
	"path/filepath"
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
	); err != nil {
		t.Fatalf("migrating test database: %v", err)
	}

	return db
}

func writeCSV(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing fixture %s: %v", name, err)
	}
	return path
}

func TestImportCompetitions(t *testing.T) {
	db := setupTestDB(t)
	importer := NewImporter(db)

	path := writeCSV(t, "competitions.csv", `League,competition_type,Country,Image Link,League Rep,Tier,Minimum Wage Budgets
Premier League,league,England,https://img.test/pl.png,95,1,120000
,league,Nowhere,,10,4,
Serie A,League,Italy,https://img.test/sa.png,88,1,90000
`)

	result, err := importer.ImportCompetitions(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Created != 2 {
		t.Errorf("expected 2 created, got %d", result.Created)
	}
	if result.Errors != 1 {
		t.Errorf("expected 1 error for the nameless row, got %d", result.Errors)
	}

	var competition models.Competition
	if err := db.Where("name = ?", "Serie A").First(&competition).Error; err != nil {
		t.Fatalf("Serie A not imported: %v", err)
	}
	if competition.CompetitionType != "LEAGUE" {
		t.Errorf("expected competition type to be uppercased to LEAGUE, got %q", competition.CompetitionType)
	}
	if competition.Slug != "serie-a" {
		t.Errorf("expected slug serie-a, got %q", competition.Slug)
	}
}

func TestImportCompetitionsFileMissing(t *testing.T) {
	db := setupTestDB(t)
	importer := NewImporter(db)

	if _, err := importer.ImportCompetitions(filepath.Join(t.TempDir(), "absent.csv")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestImportClubsSkipsUnknownLeague(t *testing.T) {
	db := setupTestDB(t)
	importer := NewImporter(db)

	db.Create(&models.Competition{Name: "Premier League", Slug: "premier-league", CompetitionType: models.CompetitionTypeLeague})

	path := writeCSV(t, "clubs.csv", `Club,League,League ID,Club Logo Small,Club Logo Big,Overall,ATT,MID,DEF,Dom. Prestige,Int'l Prestige,Scout Region,Youth Scouting Region,Int'l Comp,Country
Arsenal,Premier League,13,small.png,big.png,84,85,84,83,9,8,,,UEFA Champions League,England
Gotham FC,Phantom League,99,,,70,70,70,70,5,3,,,,Nowhere
`)

	result, err := importer.ImportClubs(path, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Created != 1 {
		t.Errorf("expected 1 created, got %d", result.Created)
	}
	if result.Skipped != 1 {
		t.Errorf("expected 1 skipped for the unknown league, got %d", result.Skipped)
	}

	var club models.Club
	if err := db.Where("name = ?", "Arsenal").First(&club).Error; err != nil {
		t.Fatalf("Arsenal not imported: %v", err)
	}
	if club.ScoutRegion != "England" {
		t.Errorf("expected blank scout region to fall back to country, got %q", club.ScoutRegion)
	}
	if club.YouthScoutingRegion != "England" {
		t.Errorf("expected blank youth region to fall back to country, got %q", club.YouthScoutingRegion)
	}
	if club.InternationalCompetition != "UEFA Champions League" {
		t.Errorf("expected international competition to be kept, got %q", club.InternationalCompetition)
	}
}

func TestImportClubsCreatesMissingCompetitions(t *testing.T) {
	db := setupTestDB(t)
	importer := NewImporter(db)

	path := writeCSV(t, "clubs.csv", `Club,League,League ID,Overall,ATT,MID,DEF,Dom. Prestige,Int'l Prestige,League Rep,Country
Ajax,Eredivisie,10,78,79,78,77,8,6,75,Netherlands
PSV,Eredivisie,10,77,78,77,76,8,6,75,Netherlands
`)

	result, err := importer.ImportClubs(path, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Created != 2 {
		t.Errorf("expected 2 clubs created, got %d", result.Created)
	}

	var count int64
	db.Model(&models.Competition{}).Where("name = ?", "Eredivisie").Count(&count)
	if count != 1 {
		t.Errorf("expected exactly one Eredivisie competition, got %d", count)
	}

	var competition models.Competition
	db.Where("name = ?", "Eredivisie").First(&competition)
	if competition.CompetitionType != models.CompetitionTypeLeague {
		t.Errorf("expected auto created competition to be a league, got %q", competition.CompetitionType)
	}
}

func TestImportClubsSkipsExisting(t *testing.T) {
	db := setupTestDB(t)
	importer := NewImporter(db)

	var competition models.Competition
	db.Create(&models.Competition{Name: "La Liga", Slug: "la-liga", CompetitionType: models.CompetitionTypeLeague})
	db.Where("name = ?", "La Liga").First(&competition)
	db.Create(&models.Club{Name: "Real Madrid", Slug: "real-madrid", LeagueID: &competition.ID, Overall: 90})

	path := writeCSV(t, "clubs.csv", `Club,League,Overall,Country
Real Madrid,La Liga,10,Spain
`)

	result, err := importer.ImportClubs(path, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Skipped != 1 {
		t.Errorf("expected the existing club to be skipped, got %d skipped", result.Skipped)
	}

	var club models.Club
	db.Where("name = ?", "Real Madrid").First(&club)
	if club.Overall != 90 {
		t.Errorf("existing club must not be updated, overall became %d", club.Overall)
	}
}

const playerHeader = "Player ID,Authentic Player Name Search,Primary,Secondary,Tertiary,Nationality,Birth Date,Age,Face Pic,Club,Wage EUR,Wage USD,Wage GBP,Overall"

func TestImportPlayers(t *testing.T) {
	db := setupTestDB(t)
	importer := NewImporter(db)

	db.Create(&models.Club{Name: "Arsenal", Slug: "arsenal"})

	path := writeCSV(t, "players.csv", playerHeader+`
158023,Bukayo Saka,RW,RM,LW,England,9/5/01,23,saka.png,Arsenal,195000,210000,165000,87
239085,Ghost Player,ST,,,Nowhere,1/1/00,25,,Phantom FC,50000,50000,50000,70
231747,Martin Odegaard,CAM,CM,,Norway,12/17/98,26,odegaard.png,Arsenal,0,abc,240000,88
190001,Bad Date,ST,,,England,17-12-1998,30,,Arsenal,1000,1000,1000,60
`)

	result, err := importer.ImportPlayers(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Created != 2 {
		t.Errorf("expected 2 created, got %d", result.Created)
	}
	if result.Errors != 2 {
		t.Errorf("expected 2 errors (unknown club, bad date), got %d", result.Errors)
	}

	var saka models.Player
	if err := db.Where("name = ?", "Bukayo Saka").First(&saka).Error; err != nil {
		t.Fatalf("Saka not imported: %v", err)
	}
	if saka.ExternalID == nil || *saka.ExternalID != 158023 {
		t.Errorf("expected player id 158023, got %v", saka.ExternalID)
	}
	if len(saka.Positions) != 3 || saka.Positions[0] != "RW" {
		t.Errorf("expected positions [RW RM LW], got %v", saka.Positions)
	}
	if saka.BirthYear != 2001 {
		t.Errorf("expected birth year 2001, got %d", saka.BirthYear)
	}
	if saka.Potential != saka.Overall {
		t.Errorf("expected potential to mirror overall, got %d vs %d", saka.Potential, saka.Overall)
	}
	if saka.ImportSource != ImportSource {
		t.Errorf("expected import source %q, got %q", ImportSource, saka.ImportSource)
	}

	var odegaard models.Player
	db.Where("name = ?", "Martin Odegaard").First(&odegaard)
	if odegaard.WageEUR != 100 {
		t.Errorf("zero wage must default to 100, got %v", odegaard.WageEUR)
	}
	if odegaard.WageUSD != 100 {
		t.Errorf("unparsable wage must default to 100, got %v", odegaard.WageUSD)
	}
	if odegaard.WageGBP != 240000 {
		t.Errorf("valid wage must be kept, got %v", odegaard.WageGBP)
	}
}

func TestImportPlayersUpsertsOnPlayerID(t *testing.T) {
	db := setupTestDB(t)
	importer := NewImporter(db)

	db.Create(&models.Club{Name: "Arsenal", Slug: "arsenal"})

	first := writeCSV(t, "first.csv", playerHeader+`
158023,Bukayo Saka,RW,,,England,9/5/01,22,,Arsenal,150000,160000,130000,86
`)
	second := writeCSV(t, "second.csv", playerHeader+`
158023,Bukayo Saka,RW,RM,LW,England,9/5/01,23,saka.png,Arsenal,195000,210000,165000,87
`)

	if _, err := importer.ImportPlayers(first); err != nil {
		t.Fatalf("first run: %v", err)
	}
	result, err := importer.ImportPlayers(second)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if result.Updated != 1 {
		t.Errorf("expected 1 updated on re-import, got %d", result.Updated)
	}
	if result.Created != 0 {
		t.Errorf("expected 0 created on re-import, got %d", result.Created)
	}

	var count int64
	db.Model(&models.Player{}).Where("name = ?", "Bukayo Saka").Count(&count)
	if count != 1 {
		t.Errorf("expected a single record after re-import, got %d", count)
	}

	var saka models.Player
	db.Where("name = ?", "Bukayo Saka").First(&saka)
	if saka.Overall != 87 {
		t.Errorf("expected overall replaced to 87, got %d", saka.Overall)
	}
	if saka.Age != 23 {
		t.Errorf("expected age replaced to 23, got %d", saka.Age)
	}
}
