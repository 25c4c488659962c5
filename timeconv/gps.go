package timeconv

import (
	"fmt"
	"math"
)

// GPSTime represents GPS time as a week number counted from [GPSEpoch] and
// the seconds elapsed within that week. Week does not roll over at 1024.
type GPSTime struct {
	Week int     `json:"week" toml:"week"`
	TOW  float64 `json:"tow"  toml:"tow"`
}

// validate returns an error if the week is negative or the time of week is
// outside [0, 604800).
func (g GPSTime) validate() error {
	if g.Week < 0 {
		return fmt.Errorf("%w: gps week %d is negative", ErrInvalidInput, g.Week)
	}
	if !(g.TOW >= 0 && g.TOW < SecondsPerWeek) {
		return fmt.Errorf("%w: gps time of week %v is not in [0, 604800)", ErrInvalidInput, g.TOW)
	}
	return nil
}

// Value returns g as a single seconds count, Week * 604800 + TOW: the GPS
// date-time encoding of E57 timestamp fields. Returns an error wrapping
// [ErrInvalidInput] if the week is negative or TOW is out of range.
func (g GPSTime) Value() (float64, error) {
	if err := g.validate(); err != nil {
		return 0, err
	}
	return float64(g.Week)*SecondsPerWeek + g.TOW, nil
}

// String returns g in the form "week:seconds", e.g., "2191:15.000".
func (g GPSTime) String() string {
	return fmt.Sprintf("%d:%.3f", g.Week, g.TOW)
}

// GPSToEpoch returns g as a single seconds count. See [GPSTime.Value].
func GPSToEpoch(g GPSTime) (float64, error) {
	return g.Value()
}

// EpochToGPS splits a GPS seconds count into week and time of week. Returns
// an error wrapping [ErrInvalidInput] if value is not positive or the week
// does not fit in an int32.
func EpochToGPS(value float64) (GPSTime, error) {
	if !(value > 0) || math.IsInf(value, 1) {
		return GPSTime{}, fmt.Errorf("%w: gps time value %v is not positive", ErrInvalidInput, value)
	}
	week := math.Floor(value / SecondsPerWeek)
	if week > math.MaxInt32 {
		return GPSTime{}, fmt.Errorf("%w: gps time value %v is out of range", ErrInvalidInput, value)
	}
	return GPSTime{Week: int(week), TOW: value - week*SecondsPerWeek}, nil
}

// JulianToGPS converts the UTC-referenced jd to GPS time, adding offset
// leap seconds. Returns an error wrapping [ErrInvalidInput] if jd is
// negative or before [GPSEpoch], or if offset is negative.
func JulianToGPS(jd JulianDate, offset UTCOffset) (GPSTime, error) {
	if err := jd.validate(); err != nil {
		return GPSTime{}, err
	}
	if jd < GPSEpoch {
		return GPSTime{}, fmt.Errorf("%w: julian date %v precedes the GPS epoch", ErrInvalidInput, jd)
	}
	if offset < 0 {
		return GPSTime{}, fmt.Errorf("%w: utc offset %d is negative", ErrInvalidInput, offset)
	}

	days := float64(jd - GPSEpoch)
	week := int(math.Floor(days / 7))
	tow := days*SecondsPerDay - float64(week)*SecondsPerWeek + float64(offset)
	if tow >= SecondsPerWeek {
		tow -= SecondsPerWeek
		week++
	}
	return GPSTime{Week: week, TOW: tow}, nil
}

// GPSToJulian converts g to a UTC-referenced Julian Date, removing offset
// leap seconds. Returns an error wrapping [ErrInvalidInput] if g is out of
// range.
func GPSToJulian(g GPSTime, offset UTCOffset) (JulianDate, error) {
	if err := g.validate(); err != nil {
		return 0, err
	}
	weeks := float64(g.Week) + (g.TOW-float64(offset))/SecondsPerWeek
	return GPSEpoch + JulianDate(weeks*7), nil
}
