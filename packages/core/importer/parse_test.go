package importer

import (
	"testing"
	"time"
)

func TestParseWage(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
	}{
		{"regular wage", "15000", 15000},
		{"decimal wage", "2500.50", 2500.50},
		{"missing", "", 100},
		{"non numeric", "abc", 100},
		{"exactly zero", "0", 100},
		{"negative flipped", "-5000", 5000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseWage(tt.input)
			if got != tt.want {
				t.Errorf("parseWage(%q): expected %v, got %v", tt.input, tt.want, got)
			}
		})
	}
}

func TestParseBirthDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{"two digit year", "7/24/91", time.Date(1991, 7, 24, 0, 0, 0, 0, time.UTC), false},
		{"four digit year", "7/24/1991", time.Date(1991, 7, 24, 0, 0, 0, 0, time.UTC), false},
		{"single digit month and day", "1/2/05", time.Date(2005, 1, 2, 0, 0, 0, 0, time.UTC), false},
		{"iso format rejected", "1991-07-24", time.Time{}, true},
		{"empty", "", time.Time{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseBirthDate(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("parseBirthDate(%q): expected error, got %v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseBirthDate(%q): unexpected error: %v", tt.input, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("parseBirthDate(%q): expected %v, got %v", tt.input, tt.want, got)
			}
		})
	}
}

func TestBuildPositions(t *testing.T) {
	tests := []struct {
		name      string
		primary   string
		secondary string
		tertiary  string
		want      []string
	}{
		{"all three", "ST", "CF", "LW", []string{"ST", "CF", "LW"}},
		{"primary only", "GK", "", "", []string{"GK"}},
		{"gap in the middle", "CB", "", "RB", []string{"CB", "RB"}},
		{"none", "", "", "", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := buildPositions(tt.primary, tt.secondary, tt.tertiary)
			if len(got) != len(tt.want) {
				t.Fatalf("expected %d positions, got %d (%v)", len(tt.want), len(got), got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("position %d: expected %q, got %q", i, tt.want[i], got[i])
				}
			}
		})
	}
}

func TestParseIntOrZero(t *testing.T) {
	if got := parseIntOrZero("84"); got != 84 {
		t.Errorf("expected 84, got %d", got)
	}
	if got := parseIntOrZero(""); got != 0 {
		t.Errorf("expected 0 for empty input, got %d", got)
	}
	if got := parseIntOrZero("n/a"); got != 0 {
		t.Errorf("expected 0 for non numeric input, got %d", got)
	}
}
