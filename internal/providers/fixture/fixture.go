package fixture

import (
	"context"

	"cfb-matchups-service/internal/domain/matchups"
)

// Provider returns a static set of matchups useful for local testing and bootstrapping.
type Provider struct{}

// New creates a fixture provider.
func New() *Provider {
	return &Provider{}
}

// FetchMatchups returns a deterministic set of example matchups.
func (p *Provider) FetchMatchups(ctx context.Context) (matchups.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return matchups.Dataset{
		{
			AwayTeam:         "Ohio State",
			HomeTeam:         "Michigan",
			AwayLogo:         "https://a.espncdn.com/i/teamlogos/ncaa/500/194.png",
			HomeLogo:         "https://a.espncdn.com/i/teamlogos/ncaa/500/130.png",
			AwaySpread:       "-3.5",
			HomeSpread:       "+3.5",
			PredictedOutcome: "Ohio State wins by 7",
		},
		{
			AwayTeam:         "Army",
			HomeTeam:         "Navy",
			AwayLogo:         matchups.PlaceholderLogo,
			HomeLogo:         matchups.PlaceholderLogo,
			PredictedOutcome: "Navy wins by 3",
		},
	}, nil
}
