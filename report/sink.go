// SPDX-License-Identifier: EPL-2.0

package report

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/ik5/gensound/evolve"
	"github.com/ik5/gensound/formats/wav"
	"github.com/ik5/gensound/genetics"
)

var ErrInvalidInterval = errors.New("sink interval must be at least one generation")

// IndividualRenderer renders an individual to a signal the length of the
// target.
type IndividualRenderer interface {
	Render(ind *genetics.Individual) ([]int16, error)
}

// WAVSink writes the fittest and the least fit individual of every n-th
// generation to <base>-evolved-fittest.wav and <base>-evolved-least.wav,
// replacing the previous files.
type WAVSink struct {
	fittest    string
	least      string
	sampleRate int
	every      int
	renderer   IndividualRenderer
	logger     *slog.Logger
}

func NewWAVSink(base string, sampleRate, every int, r IndividualRenderer, logger *slog.Logger) (*WAVSink, error) {
	if every < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidInterval, every)
	}

	return &WAVSink{
		fittest:    base + "-evolved-fittest.wav",
		least:      base + "-evolved-least.wav",
		sampleRate: sampleRate,
		every:      every,
		renderer:   r,
		logger:     loggerOrDefault(logger),
	}, nil
}

// Paths returns the files written for the fittest and the least fit
// individual.
func (s *WAVSink) Paths() (fittest, least string) {
	return s.fittest, s.least
}

func (s *WAVSink) Report(g evolve.Generation) {
	if g.Summary.Generation%s.every != 0 || len(g.Ranked) == 0 {
		return
	}

	s.write(s.fittest, g.Best(), g.Summary.Generation)
	s.write(s.least, g.Worst(), g.Summary.Generation)
}

func (s *WAVSink) write(path string, ind *genetics.Individual, generation int) {
	samples, err := s.renderer.Render(ind)
	if err == nil {
		err = wav.WriteFile(path, s.sampleRate, samples)
	}

	if err != nil {
		s.logger.Warn("writing render failed",
			"path", path,
			"generation", generation,
			"error", err,
		)
		return
	}

	s.logger.Debug("render written", "path", path, "generation", generation, "fitness", ind.Fitness)
}
