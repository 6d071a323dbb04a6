// SPDX-License-Identifier: EPL-2.0

package report

import (
	"context"
	"log/slog"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api/write"

	"github.com/ik5/gensound/evolve"
)

// DefaultMeasurement is the measurement Influx writes to when none is set.
const DefaultMeasurement = "gensound_generation"

// PointWriter is the part of api.WriteAPIBlocking used by Influx.
type PointWriter interface {
	WritePoint(ctx context.Context, point ...*write.Point) error
}

// Influx writes one point per generation, tagged with the run id.
type Influx struct {
	w           PointWriter
	measurement string
	timeout     time.Duration
	logger      *slog.Logger
	now         func() time.Time
}

func NewInflux(w PointWriter, measurement string, timeout time.Duration, logger *slog.Logger) *Influx {
	if measurement == "" {
		measurement = DefaultMeasurement
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	return &Influx{
		w:           w,
		measurement: measurement,
		timeout:     timeout,
		logger:      loggerOrDefault(logger),
		now:         time.Now,
	}
}

// Point converts g to an InfluxDB point.
func (i *Influx) Point(g evolve.Generation) *write.Point {
	s := g.Summary

	return influxdb2.NewPoint(
		i.measurement,
		map[string]string{"run_id": g.RunID},
		map[string]interface{}{
			"generation":           s.Generation,
			"best":                 s.Best,
			"worst":                s.Worst,
			"mean":                 s.Mean,
			"sd":                   s.StdDev,
			"cv":                   s.CV,
			"mutation_probability": g.Probability,
			"elites":               g.Elites,
			"elapsed_seconds":      g.Elapsed.Seconds(),
		},
		i.now(),
	)
}

func (i *Influx) Report(g evolve.Generation) {
	ctx, cancel := context.WithTimeout(context.Background(), i.timeout)
	defer cancel()

	if err := i.w.WritePoint(ctx, i.Point(g)); err != nil {
		i.logger.Warn("influx write failed",
			"generation", g.Summary.Generation,
			"error", err,
		)
	}
}
