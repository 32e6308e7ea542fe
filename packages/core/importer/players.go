package importer

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"core/models"
	"core/utils"

	"gorm.io/gorm"
)

// ImportSource tag stamped on every player row written by this importer.
const ImportSource = "FC25_CSV_IMPORT"

// contractLength is the synthetic contract window applied on import; the
// source export carries no real contract data.
const contractLength = 365 * 24 * time.Hour

// ImportPlayers loads the players export. Players upsert on their numeric
// Player ID with full field replacement, so the last import wins. Rows whose
// club is unknown or whose birth date fails both layouts are skipped and
// counted as errors.
func (i *Importer) ImportPlayers(path string) (Result, error) {
	rows, err := readRows(path)
	if err != nil {
		return Result{}, err
	}

	var result Result

	for _, row := range rows {
		name := row.Get("Authentic Player Name Search")
		clubName := row.Get("Club")

		playerID, err := strconv.ParseInt(row.Get("Player ID"), 10, 64)
		if err != nil {
			log.Printf("Error processing player %s: invalid player id %q", name, row.Get("Player ID"))
			result.Errors++
			continue
		}

		var club models.Club
		if err := i.db.Where("name = ?", clubName).First(&club).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				log.Printf("Club '%s' does not exist. Skipping player %s", clubName, name)
				result.Errors++
				continue
			}
			log.Printf("Error processing player %s: %v", name, err)
			result.Errors++
			continue
		}

		birthDate, err := parseBirthDate(row.Get("Birth Date"))
		if err != nil {
			log.Printf("Invalid birth date format for %s: %s", name, row.Get("Birth Date"))
			result.Errors++
			continue
		}

		contractStart := time.Now()
		contractEnd := contractStart.Add(contractLength)
		overall := parseIntOrZero(row.Get("Overall"))

		player := models.Player{
			ExternalID:    &playerID,
			Name:          name,
			Slug:          utils.Slugify(fmt.Sprintf("%s-%d", name, playerID)),
			Positions:     buildPositions(row.Get("Primary"), row.Get("Secondary"), row.Get("Tertiary")),
			Nationality:   row.Get("Nationality"),
			BirthDate:     &birthDate,
			BirthYear:     birthDate.Year(),
			Age:           parseIntOrZero(row.Get("Age")),
			FacePicURL:    row.Get("Face Pic"),
			ClubID:        &club.ID,
			WageEUR:       parseWage(row.Get("Wage EUR")),
			WageUSD:       parseWage(row.Get("Wage USD")),
			WageGBP:       parseWage(row.Get("Wage GBP")),
			ContractStart: &contractStart,
			ContractEnd:   &contractEnd,
			ContractLoan:  false,
			Overall:       overall,
			// The export carries no separate potential column.
			Potential:    overall,
			ImportSource: ImportSource,
		}

		var existing models.Player
		err = i.db.Where("player_id = ?", playerID).First(&existing).Error

		if errors.Is(err, gorm.ErrRecordNotFound) {
			if err := i.db.Create(&player).Error; err != nil {
				log.Printf("Error processing player %s: %v", name, err)
				result.Errors++
				continue
			}
			result.Created++
			log.Printf("Created player: %s (%d)", player.Name, playerID)
			continue
		}
		if err != nil {
			log.Printf("Error processing player %s: %v", name, err)
			result.Errors++
			continue
		}

		player.ID = existing.ID
		player.CreatedAt = existing.CreatedAt
		if err := i.db.Save(&player).Error; err != nil {
			log.Printf("Error processing player %s: %v", name, err)
			result.Errors++
			continue
		}
		result.Updated++
		log.Printf("Updated player: %s (%d)", player.Name, playerID)
	}

	fmt.Printf("\nImport complete. Successfully imported %d players (%d updated). Errors: %d\n",
		result.Created, result.Updated, result.Errors)
	return result, nil
}
