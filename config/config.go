// SPDX-License-Identifier: EPL-2.0

// Package config loads and validates the configuration of a run and turns
// it into an evolve.Config.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type Config struct {
	Population int      `yaml:"population" validate:"gte=2"`
	Genes      int      `yaml:"genes" validate:"gte=1"`
	Waveforms  []string `yaml:"waveforms" validate:"min=1,dive,oneof=sinusoid square saw triangle dc"`
	Workers    int      `yaml:"workers" validate:"gte=0"`
	Seed       int64    `yaml:"seed"`

	Selection Selection `yaml:"selection"`
	CrossOver string    `yaml:"crossover" validate:"oneof=uniform"`
	Mutation  Mutation  `yaml:"mutation"`
	Stop      Stop      `yaml:"stop"`
	Sink      Sink      `yaml:"sink"`
	Report    Report    `yaml:"report"`
	Log       Log       `yaml:"log"`
}

type Selection struct {
	Strategy string  `yaml:"strategy" validate:"oneof=rank cutoff"`
	Bias     float64 `yaml:"bias" validate:"gte=0,lte=1"`
	Cutoff   float64 `yaml:"cutoff" validate:"gte=0,lte=1"`
}

type Mutation struct {
	Schedule    string  `yaml:"schedule" validate:"oneof=variance constant"`
	Probability float64 `yaml:"probability" validate:"gte=0,lte=1"`
	Min         float64 `yaml:"min" validate:"gte=0,lte=1,ltefield=Max"`
	Max         float64 `yaml:"max" validate:"gte=0,lte=1"`
}

// Stop holds the optional stopping rules. Zero values disable a rule; with
// all of them disabled the run goes on until interrupted.
type Stop struct {
	MaxGenerations int    `yaml:"max_generations" validate:"gte=0"`
	FitnessAtMost  *int64 `yaml:"fitness_at_most" validate:"omitnil,gte=0"`
	Stagnation     int    `yaml:"stagnation" validate:"gte=0"`
}

type Sink struct {
	Every int `yaml:"every" validate:"gte=1"`
	// Dir is where the renders go, the directory of the target when empty.
	Dir string `yaml:"dir"`
	// Disabled turns the WAV sink off.
	Disabled bool `yaml:"disabled"`
}

type Report struct {
	Console    bool       `yaml:"console"`
	Prometheus Prometheus `yaml:"prometheus"`
	Influx     Influx     `yaml:"influx"`
}

type Prometheus struct {
	// Listen is the address serving /metrics, disabled when empty.
	Listen string `yaml:"listen" validate:"omitempty,hostname_port"`
}

type Influx struct {
	// URL enables the InfluxDB reporter when set.
	URL         string `yaml:"url" validate:"omitempty,url"`
	Token       string `yaml:"token"`
	Org         string `yaml:"org" validate:"required_with=URL"`
	Bucket      string `yaml:"bucket" validate:"required_with=URL"`
	Measurement string `yaml:"measurement"`
}

type Log struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Population: 100,
		Genes:      10,
		Waveforms:  []string{"sinusoid", "square", "saw"},
		Workers:    0,
		Selection: Selection{
			Strategy: "rank",
			Bias:     0.4,
			Cutoff:   0.5,
		},
		CrossOver: "uniform",
		Mutation: Mutation{
			Schedule:    "variance",
			Probability: 0.05,
			Min:         0.01,
			Max:         0.1,
		},
		Sink: Sink{Every: 1},
		Report: Report{
			Console: true,
		},
		Log: Log{
			Level:  "info",
			Format: "text",
		},
	}
}

// Validate checks every field constraint.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s failed on %q", fe.Namespace(), fe.Tag()))
			}
			return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, ", "))
		}
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

// Decode reads YAML from r on top of Default and validates the result.
// Unknown keys are rejected.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Load reads the YAML file at path. See Decode.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}

	cfg, err := Decode(bytes.NewReader(data))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}
