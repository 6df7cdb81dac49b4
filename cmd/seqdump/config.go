package main

import (
	"github.com/go-playground/validator/v10"

	"github.com/katalvlaran/lvseq/oscillate"
)

// Params carries every generator parameter. Each generator reads the subset
// it understands; the rest keep their defaults.
type Params struct {
	// range, steps
	Start     float64 `mapstructure:"start"`
	End       float64 `mapstructure:"end"`
	Step      float64 `mapstructure:"step"`
	Exclusive bool    `mapstructure:"exclusive"`

	// cycle
	Min       float64             `mapstructure:"min"`
	Max       float64             `mapstructure:"max" validate:"gtfield=Min"`
	Inc       float64             `mapstructure:"inc" validate:"gt=0"`
	Dec       float64             `mapstructure:"dec" validate:"gt=0"`
	Direction oscillate.Direction `mapstructure:"direction"`

	// noise
	Seed       float64 `mapstructure:"seed"`
	Incr       float64 `mapstructure:"incr"`
	PerlinSeed int64   `mapstructure:"perlin-seed"`
	Octaves    int     `mapstructure:"octaves" validate:"min=1,max=16"`

	// pulse, chirp
	Amplitude  float64 `mapstructure:"amplitude" validate:"gt=0"`
	Frequency  float64 `mapstructure:"frequency" validate:"gt=0"`
	Duty       float64 `mapstructure:"duty" validate:"gte=0,lte=1"`
	Triangular bool    `mapstructure:"triangular"`
	Trend      float64 `mapstructure:"trend"`
	SweepTo    float64 `mapstructure:"sweep-to" validate:"gt=0"`
	SweepLen   int     `mapstructure:"sweep-len" validate:"min=1"`
}

// Config is the resolved seqdump configuration: defaults, then the YAML
// config file, then SEQDUMP_* environment variables, then flags.
type Config struct {
	Generator string  `mapstructure:"generator"`
	Count     int     `mapstructure:"count" validate:"min=1,max=1000000"`
	Format    string  `mapstructure:"format" validate:"oneof=table json yaml cbor plain"`
	Tap       string  `mapstructure:"tap"`
	Verbose   bool    `mapstructure:"verbose"`
	Segments  bool    `mapstructure:"segments"`
	Tally     bool    `mapstructure:"tally"`
	Mul       float64 `mapstructure:"mul"`
	Add       float64 `mapstructure:"add"`
	WrapMin   float64 `mapstructure:"wrap-min"`
	WrapMax   float64 `mapstructure:"wrap-max"`

	Params `mapstructure:",squash"`
}

// Validate checks field constraints. Generator names are resolved
// separately so an unknown name reports ErrUnknownGenerator.
func (c *Config) Validate() error {
	return validator.New(validator.WithRequiredStructEnabled()).Struct(c)
}
