// Package config loads e57time settings from defaults, the .e57time.toml
// config file, E57TIME_* environment variables, and command-line flags.
package config

import (
	"errors"
	"fmt"
	"reflect"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/opene57/e57time/timeconv"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"
)

// ErrConfig wraps errors for configuration values that fail validation.
var ErrConfig = errors.New("config")

// Output formats.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputTOML = "toml"
)

// maxPrecision is the largest number of decimal places accepted for seconds.
const maxPrecision = 9

// LeapSecond is a leap-second breakpoint added to the built-in table. Start
// is the first UTC instant at which Offset applies, normally 00:00:00 on
// January 1 or July 1.
type LeapSecond struct {
	Start  timeconv.Civil `mapstructure:"start"`
	Offset int            `mapstructure:"offset"`
}

// Config holds runtime configuration for the e57time command.
type Config struct {
	Output      string       `mapstructure:"output"`
	Precision   int          `mapstructure:"precision"`
	LeapSeconds []LeapSecond `mapstructure:"leap_seconds"`
}

// SetDefaults registers the built-in defaults with v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("output", OutputText)
	v.SetDefault("precision", 3)
}

// Load reads configuration from v, applying built-in defaults for any
// values not set by config file, environment, or flags. Returns an error
// wrapping [ErrConfig] if a value is out of range.
func Load(v *viper.Viper) (Config, error) {
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg, viper.DecodeHook(decodeHook())); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate returns an error wrapping [ErrConfig] if the output format is
// unknown or the precision is out of range.
func (c Config) Validate() error {
	if !slices.Contains([]string{OutputText, OutputJSON, OutputTOML}, c.Output) {
		return fmt.Errorf("%w: output %q is not one of text, json, toml", ErrConfig, c.Output)
	}
	if c.Precision < 0 || c.Precision > maxPrecision {
		return fmt.Errorf("%w: precision %d is not in 0..%d", ErrConfig, c.Precision, maxPrecision)
	}
	return nil
}

// LeapTable returns the built-in leap-second table extended with
// c.LeapSeconds, which must follow the last built-in breakpoint in order.
// Returns [timeconv.DefaultLeapTable] when there is nothing to add.
func (c Config) LeapTable() (*timeconv.LeapTable, error) {
	if len(c.LeapSeconds) == 0 {
		return timeconv.DefaultLeapTable(), nil
	}

	bps := timeconv.DefaultLeapTable().Breakpoints()
	for i, ls := range c.LeapSeconds {
		jd, err := timeconv.UTCToJulian(ls.Start)
		if err != nil {
			return nil, fmt.Errorf("%w: leap_seconds[%d]: %w", ErrConfig, i, err)
		}
		bps = append(bps, timeconv.LeapSecond{Start: jd, Offset: timeconv.UTCOffset(ls.Offset)})
	}

	table, err := timeconv.NewLeapTable(bps...)
	if err != nil {
		return nil, fmt.Errorf("%w: leap_seconds: %w", ErrConfig, err)
	}
	return table, nil
}

// decodeHook converts config values into timeconv.Civil: strings through
// its text unmarshaler, and TOML date-times through [timeconv.CivilFromTime].
// Local TOML dates and date-times are read as UTC.
func decodeHook() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		civilFromTimeHook,
		mapstructure.TextUnmarshallerHookFunc(),
	)
}

func civilFromTimeHook(_, to reflect.Type, data any) (any, error) {
	if to != reflect.TypeFor[timeconv.Civil]() {
		return data, nil
	}
	switch t := data.(type) {
	case time.Time:
		return timeconv.CivilFromTime(t), nil
	case toml.LocalDateTime:
		return timeconv.CivilFromTime(t.AsTime(time.UTC)), nil
	case toml.LocalDate:
		return timeconv.CivilFromTime(t.AsTime(time.UTC)), nil
	}
	return data, nil
}
