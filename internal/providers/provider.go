package providers

import (
	"context"

	"cfb-matchups-service/internal/domain/matchups"
)

// MatchupProvider fetches the current matchup sheet and normalizes it.
// Implementations return an error for any failure and never a partial dataset.
type MatchupProvider interface {
	FetchMatchups(ctx context.Context) (matchups.Dataset, error)
}
