package utils

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"simple", "Arsenal", "arsenal"},
		{"spaces", "Premier League", "premier-league"},
		{"accents and apostrophes", "Borussia M'gladbach", "borussia-m-gladbach"},
		{"numeric suffix", "Bukayo Saka-158023", "bukayo-saka-158023"},
		{"leading and trailing junk", "  AC Milan!  ", "ac-milan"},
		{"collapses runs", "Club -- de -- Foot", "club-de-foot"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Slugify(tt.in); got != tt.want {
				t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
