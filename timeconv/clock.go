package timeconv

import (
	"fmt"
	"time"
)

// Snapshot holds the current time in every supported representation, all
// derived from a single clock reading.
type Snapshot struct {
	UTC        Civil      `json:"utc"         toml:"utc"`
	Offset     UTCOffset  `json:"utc_offset"  toml:"utc_offset"`
	JulianDate JulianDate `json:"julian_date" toml:"julian_date"`
	GPS        GPSTime    `json:"gps"         toml:"gps"`
}

// unixEpochTime is the earliest clock reading accepted as valid.
//
//nolint:gochecknoglobals
var unixEpochTime = time.Unix(0, 0).UTC()

// readClock returns the Julian Date of the current clock reading. A zero
// reading or one before 1970 means the clock is not set.
func (c *Converter) readClock() (JulianDate, error) {
	now := c.clock.Now()
	if now.IsZero() || now.Before(unixEpochTime) {
		return 0, fmt.Errorf("%w: clock reads %v", ErrClockUnavailable, now)
	}
	return julianDateFromTime(now), nil
}

// Now reads the clock once and returns the result as UTC, Julian Date, and
// GPS time, along with the offset in effect. Returns an error wrapping
// [ErrClockUnavailable] if the clock cannot be read.
func (c *Converter) Now() (Snapshot, error) {
	jd, err := c.readClock()
	if err != nil {
		return Snapshot{}, err
	}
	offset, err := c.leaps.OffsetFor(jd)
	if err != nil {
		return Snapshot{}, fmt.Errorf("current time: %w", err)
	}
	g, err := JulianToGPS(jd, offset)
	if err != nil {
		return Snapshot{}, err
	}
	utc, err := JulianToUTC(jd)
	if err != nil {
		return Snapshot{}, err
	}
	return Snapshot{UTC: utc, Offset: offset, JulianDate: jd, GPS: g}, nil
}

// CurrentJulianDate returns the Julian Date of the current clock reading.
func (c *Converter) CurrentJulianDate() (JulianDate, error) {
	return c.readClock()
}

// CurrentUTC returns the current UTC date and time.
func (c *Converter) CurrentUTC() (Civil, error) {
	jd, err := c.readClock()
	if err != nil {
		return Civil{}, err
	}
	return JulianToUTC(jd)
}

// CurrentGPS returns the current GPS time.
func (c *Converter) CurrentGPS() (GPSTime, error) {
	snap, err := c.Now()
	if err != nil {
		return GPSTime{}, err
	}
	return snap.GPS, nil
}

// Now returns a [Snapshot] of the host clock.
func Now() (Snapshot, error) {
	return defaultConverter.Now()
}

// CurrentJulianDate returns the Julian Date of the host clock.
func CurrentJulianDate() (JulianDate, error) {
	return defaultConverter.CurrentJulianDate()
}

// CurrentUTC returns the UTC date and time of the host clock.
func CurrentUTC() (Civil, error) {
	return defaultConverter.CurrentUTC()
}

// CurrentGPS returns the GPS time of the host clock.
func CurrentGPS() (GPSTime, error) {
	return defaultConverter.CurrentGPS()
}
