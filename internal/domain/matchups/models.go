package matchups

import (
	"strconv"
	"strings"
)

// PlaceholderLogo is served in place of a missing team logo.
const PlaceholderLogo = "https://via.placeholder.com/60x60.png?text=No+Logo"

// Canonical column names after header normalization.
const (
	ColAwayTeam         = "Away Team"
	ColHomeTeam         = "Home Team"
	ColAwayLogo         = "Away Logo"
	ColHomeLogo         = "Home Logo"
	ColAwaySpread       = "Away Spread"
	ColHomeSpread       = "Home Spread"
	ColPredictedOutcome = "Predicted Outcome"
)

// Row is a single predicted matchup as published in the sheet.
type Row struct {
	AwayTeam         string `json:"awayTeam"`
	HomeTeam         string `json:"homeTeam"`
	AwayLogo         string `json:"awayLogo"`
	HomeLogo         string `json:"homeLogo"`
	AwaySpread       string `json:"awaySpread,omitempty"`
	HomeSpread       string `json:"homeSpread,omitempty"`
	PredictedOutcome string `json:"predictedOutcome"`
}

// HasAwaySpread reports whether an away spread should be displayed.
func (r Row) HasAwaySpread() bool {
	return shownSpread(r.AwaySpread)
}

// HasHomeSpread reports whether a home spread should be displayed.
func (r Row) HasHomeSpread() bool {
	return shownSpread(r.HomeSpread)
}

// Dataset is one refresh cycle's worth of rows, in sheet order.
type Dataset []Row

// Empty reports whether the dataset has no rows.
func (d Dataset) Empty() bool {
	return len(d) == 0
}

// Clone returns a copy that does not share backing storage with d.
func (d Dataset) Clone() Dataset {
	if d == nil {
		return nil
	}
	out := make(Dataset, len(d))
	copy(out, d)
	return out
}

// shownSpread treats blank values and a numeric zero (a pick'em line) as absent.
func shownSpread(v string) bool {
	v = strings.TrimSpace(v)
	if v == "" {
		return false
	}
	if f, err := strconv.ParseFloat(v, 64); err == nil && f == 0 {
		return false
	}
	return true
}
