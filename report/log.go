// SPDX-License-Identifier: EPL-2.0

package report

import (
	"context"
	"log/slog"

	"github.com/ik5/gensound/evolve"
)

// Log writes generation statistics as structured log records.
type Log struct {
	logger *slog.Logger
	level  slog.Level
}

func NewLog(logger *slog.Logger, level slog.Level) *Log {
	return &Log{logger: loggerOrDefault(logger), level: level}
}

func (l *Log) Report(g evolve.Generation) {
	s := g.Summary
	l.logger.Log(context.Background(), l.level, "generation",
		"run_id", g.RunID,
		"generation", s.Generation,
		"best", s.Best,
		"worst", s.Worst,
		"mean", s.Mean,
		"sd", s.StdDev,
		"cv", s.CV,
		"mutation_probability", g.Probability,
		"elites", g.Elites,
		"elapsed", g.Elapsed,
	)
}
