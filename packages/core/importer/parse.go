package importer

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

// Reported wages default to 100 when missing, unparsable or exactly zero;
// negative values are treated as sign errors in the export and flipped.
const defaultWage = 100

// Birth dates come in two layouts, tried in order.
var birthDateLayouts = []string{
	"1/2/06",
	"1/2/2006",
}

func parseWage(value string) float64 {
	wage, err := strconv.ParseFloat(value, 64)
	if err != nil || wage == 0 {
		return defaultWage
	}
	return math.Abs(wage)
}

func parseBirthDate(value string) (time.Time, error) {
	for _, layout := range birthDateLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized birth date %q", value)
}

// buildPositions assembles the ordered position list from the primary,
// secondary and tertiary columns, dropping blanks.
func buildPositions(primary, secondary, tertiary string) []string {
	positions := make([]string, 0, 3)
	for _, position := range []string{primary, secondary, tertiary} {
		if position != "" {
			positions = append(positions, position)
		}
	}
	return positions
}

// parseFloatOrZero coerces a numeric cell, treating missing or non-numeric
// values as zero (wage budgets in the competition export are often blank).
func parseFloatOrZero(value string) float64 {
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0
	}
	return parsed
}

func parseIntOrZero(value string) int {
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return parsed
}
