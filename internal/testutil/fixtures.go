package testutil

import (
	"cfb-matchups-service/internal/domain/matchups"
)

// SampleCSV is the published-sheet body used across tests.
const SampleCSV = "Away Team,Home Team,Away Logo,Home Logo,Away Spread,Home Spread,Predicted Outcome\n" +
	"Ohio State,Michigan,,http://x/h.png,-3.5,,Ohio State wins\n"

// SampleRow returns a minimal matchup row with the provided outcome.
func SampleRow(outcome string) matchups.Row {
	return matchups.Row{
		AwayTeam:         "Away",
		HomeTeam:         "Home",
		AwayLogo:         matchups.PlaceholderLogo,
		HomeLogo:         matchups.PlaceholderLogo,
		PredictedOutcome: outcome,
	}
}

// SampleDataset builds a dataset with one row per outcome.
func SampleDataset(outcomes ...string) matchups.Dataset {
	ds := make(matchups.Dataset, 0, len(outcomes))
	for _, o := range outcomes {
		ds = append(ds, SampleRow(o))
	}
	return ds
}
