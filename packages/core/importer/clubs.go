package importer

import (
	"errors"
	"fmt"
	"log"

	"core/models"
	"core/utils"

	"gorm.io/gorm"
)

// ImportClubs loads the clubs export. When createCompetitions is set, a
// pre-pass creates any league referenced by the file that is not yet in the
// store. A club row whose league cannot be resolved is skipped; a club is
// never created without its competition. Existing club names are skipped
// without update.
func (i *Importer) ImportClubs(path string, createCompetitions bool) (Result, error) {
	rows, err := readRows(path)
	if err != nil {
		return Result{}, err
	}

	var result Result
	competitionsCreated := 0

	if createCompetitions {
		competitionsCreated = i.createMissingCompetitions(rows)
	}

	for _, row := range rows {
		clubName := row.Get("Club")
		leagueName := row.Get("League")

		if clubName == "" {
			log.Printf("Error importing club: missing club name")
			result.Errors++
			continue
		}

		var competition models.Competition
		if err := i.db.Where("name = ?", leagueName).First(&competition).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				log.Printf("Competition '%s' not found, skipping club '%s'", leagueName, clubName)
				result.Skipped++
				continue
			}
			log.Printf("Error importing club '%s': %v", clubName, err)
			result.Errors++
			continue
		}

		var existing models.Club
		if err := i.db.Where("name = ?", clubName).First(&existing).Error; err == nil {
			log.Printf("Club '%s' already exists, skipping", clubName)
			result.Skipped++
			continue
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("Error importing club '%s': %v", clubName, err)
			result.Errors++
			continue
		}

		country := row.Get("Country")

		// Scouting regions fall back to the club's country when the export
		// leaves them blank.
		scoutRegion := row.Get("Scout Region")
		if scoutRegion == "" {
			scoutRegion = country
		}
		youthRegion := row.Get("Youth Scouting Region")
		if youthRegion == "" {
			youthRegion = country
		}

		club := models.Club{
			Name:                clubName,
			Slug:                utils.Slugify(clubName),
			Country:             country,
			LeagueID:            &competition.ID,
			LogoSmallURL:        row.Get("Club Logo Small"),
			LogoBigURL:          row.Get("Club Logo Big"),
			Overall:             parseIntOrZero(row.Get("Overall")),
			AttRating:           parseIntOrZero(row.Get("ATT")),
			MidRating:           parseIntOrZero(row.Get("MID")),
			DefRating:           parseIntOrZero(row.Get("DEF")),
			DomPrestige:         parseIntOrZero(row.Get("Dom. Prestige")),
			IntlPrestige:        parseIntOrZero(row.Get("Int'l Prestige")),
			LeagueRep:           parseIntOrZero(row.Get("League Rep")),
			ScoutRegion:         scoutRegion,
			YouthScoutingRegion: youthRegion,
		}

		if intlComp := row.Get("Int'l Comp"); intlComp != "" {
			club.InternationalCompetition = intlComp
		}

		if err := i.db.Create(&club).Error; err != nil {
			log.Printf("Error importing club '%s': %v", clubName, err)
			result.Errors++
			continue
		}

		result.Created++
		log.Printf("Imported club: %s (%s)", club.Name, competition.Name)
	}

	fmt.Printf("\nClubs import summary: %d created, %d skipped, %d errors\n",
		result.Created, result.Skipped, result.Errors)
	if createCompetitions {
		fmt.Printf("Competitions created: %d\n", competitionsCreated)
	}

	return result, nil
}

// createMissingCompetitions walks the distinct league tuples of the file and
// creates the ones the store does not know yet, typed LEAGUE.
func (i *Importer) createMissingCompetitions(rows []Row) int {
	created := 0
	seen := make(map[string]bool)

	for _, row := range rows {
		leagueName := row.Get("League")
		if leagueName == "" || seen[leagueName] {
			continue
		}
		seen[leagueName] = true

		var existing models.Competition
		err := i.db.Where("name = ?", leagueName).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("Error creating competition '%s': %v", leagueName, err)
			continue
		}

		competition := models.Competition{
			Name:            leagueName,
			Slug:            utils.Slugify(leagueName),
			Country:         row.Get("Country"),
			Tier:            parseIntOrZero(row.Get("League ID")),
			LeagueRep:       parseIntOrZero(row.Get("League Rep")),
			CompetitionType: models.CompetitionTypeLeague,
		}

		if err := i.db.Create(&competition).Error; err != nil {
			log.Printf("Error creating competition '%s': %v", leagueName, err)
			continue
		}

		created++
		log.Printf("Created competition: %s", competition.Name)
	}

	return created
}
