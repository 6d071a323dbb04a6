// SPDX-License-Identifier: EPL-2.0

// Package report observes a run without influencing it.
//
// Every type here implements evolve.Reporter:
//   - Log writes one structured slog record per generation
//   - Console prints a styled progress line
//   - Prometheus keeps gauges with the latest statistics
//   - Influx writes one point per generation to InfluxDB
//   - WAVSink renders the fittest and the least fit individual to WAV files
//   - Multi fans out to several reporters
//
// Failures (a full disk, an unreachable InfluxDB) are logged and never
// reach the engine.
package report
