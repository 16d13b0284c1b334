// Package report turns engine output into something a person can read:
// progress log lines, a console summary and a cost-history chart.
// Engines never import it; they only emit opt.Progress and opt.Result.
package report

import (
	"context"
	"log/slog"

	"permSearch/internal/opt"
)

// LogObserver logs every n-th progress event (n <= 0 logs none) at info
// level and every event at debug level.
func LogObserver(logger *slog.Logger, engine string, every int) opt.Observer {
	if logger == nil {
		return nil
	}
	return func(p opt.Progress) {
		level := slog.LevelDebug
		if every > 0 && (p.Iteration+1)%every == 0 {
			level = slog.LevelInfo
		}
		attrs := []any{
			slog.String("engine", engine),
			slog.Int("iteration", p.Iteration+1),
			slog.Float64("best_cost", p.BestCost),
		}
		if p.Temperature > 0 {
			attrs = append(attrs,
				slog.Float64("temperature", p.Temperature),
				slog.Float64("current_cost", p.CurrentCost),
			)
		}
		if p.PopulationSize > 0 {
			attrs = append(attrs,
				slog.Float64("mean_cost", p.MeanCost),
				slog.Int("population", p.PopulationSize),
			)
		}
		logger.Log(context.Background(), level, "progress", attrs...)
	}
}
