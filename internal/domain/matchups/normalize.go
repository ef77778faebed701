package matchups

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrMissingColumn is returned when the header lacks a required column.
var ErrMissingColumn = errors.New("missing required column")

var requiredColumns = []string{ColAwayTeam, ColHomeTeam, ColPredictedOutcome}

// NormalizeHeader trims a header cell, collapses internal whitespace and
// title-cases each word, so " away   team " becomes "Away Team".
func NormalizeHeader(raw string) string {
	words := strings.Fields(raw)
	if len(words) == 0 {
		return ""
	}
	return cases.Title(language.Und).String(strings.Join(words, " "))
}

// FromRecords maps parsed CSV records to a Dataset. The first record is the
// header row. Blank logo values are replaced with PlaceholderLogo.
func FromRecords(records [][]string) (Dataset, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: no header row", ErrMissingColumn)
	}

	index := make(map[string]int, len(records[0]))
	for i, cell := range records[0] {
		name := NormalizeHeader(strings.TrimPrefix(cell, "\ufeff"))
		if name == "" {
			continue
		}
		// First occurrence wins for duplicated headers.
		if _, seen := index[name]; !seen {
			index[name] = i
		}
	}
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingColumn, col)
		}
	}

	ds := make(Dataset, 0, len(records)-1)
	for _, rec := range records[1:] {
		if blankRecord(rec) {
			continue
		}
		get := func(col string) string {
			i, ok := index[col]
			if !ok || i >= len(rec) {
				return ""
			}
			return rec[i]
		}
		ds = append(ds, Row{
			AwayTeam:         get(ColAwayTeam),
			HomeTeam:         get(ColHomeTeam),
			AwayLogo:         defaultLogo(get(ColAwayLogo)),
			HomeLogo:         defaultLogo(get(ColHomeLogo)),
			AwaySpread:       get(ColAwaySpread),
			HomeSpread:       get(ColHomeSpread),
			PredictedOutcome: get(ColPredictedOutcome),
		})
	}
	return ds, nil
}

func defaultLogo(v string) string {
	if strings.TrimSpace(v) == "" {
		return PlaceholderLogo
	}
	return v
}

func blankRecord(rec []string) bool {
	for _, cell := range rec {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
