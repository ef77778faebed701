package matchups

import (
	"context"
	"log/slog"

	"cfb-matchups-service/internal/logging"
)

func loggingContext(logger *slog.Logger) context.Context {
	return logging.WithLogger(context.Background(), logger)
}
