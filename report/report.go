// SPDX-License-Identifier: EPL-2.0

package report

import (
	"log/slog"

	"github.com/ik5/gensound/evolve"
)

// Multi reports to each reporter in order. Nil entries are skipped.
type Multi []evolve.Reporter

func (m Multi) Report(g evolve.Generation) {
	for _, r := range m {
		if r != nil {
			r.Report(g)
		}
	}
}

func loggerOrDefault(l *slog.Logger) *slog.Logger {
	if l == nil {
		return slog.Default()
	}

	return l
}
