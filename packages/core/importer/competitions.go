package importer

import (
	"fmt"
	"log"
	"strings"

	"core/models"
	"core/utils"

	"gorm.io/gorm"
)

type Importer struct {
	db *gorm.DB
}

func NewImporter(db *gorm.DB) *Importer {
	return &Importer{db: db}
}

// ImportCompetitions loads the competitions export. Rows are processed in
// file order; a malformed row is logged and counted, never aborts the batch.
// The importer does not deduplicate by name, re-running the same file twice
// fails the second pass on the unique constraint row by row.
func (i *Importer) ImportCompetitions(path string) (Result, error) {
	rows, err := readRows(path)
	if err != nil {
		return Result{}, err
	}

	var result Result

	for _, row := range rows {
		name := row.Get("League")
		if name == "" {
			log.Printf("Error importing competition: missing league name")
			result.Errors++
			continue
		}

		competition := models.Competition{
			Name:            name,
			Slug:            utils.Slugify(name),
			CompetitionType: strings.ToUpper(row.Get("competition_type")),
			Country:         row.Get("Country"),
			LogoURL:         row.Get("Image Link"),
			LeagueRep:       parseIntOrZero(row.Get("League Rep")),
			Tier:            parseIntOrZero(row.Get("Tier")),
			MinWageBudget:   parseFloatOrZero(row.Get("Minimum Wage Budgets")),
		}

		if err := i.db.Create(&competition).Error; err != nil {
			log.Printf("Error importing competition %s: %v", name, err)
			result.Errors++
			continue
		}

		result.Created++
		log.Printf("Imported: %s (%s)", competition.Name, competition.Country)
	}

	fmt.Printf("\nSuccessfully imported %d competitions (%d errors)\n", result.Created, result.Errors)
	return result, nil
}
