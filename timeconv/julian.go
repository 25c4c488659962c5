package timeconv

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

// JulianDate is a continuous count of days since noon UTC on January 1,
// 4713 BC (proleptic Julian calendar). The fraction is the time of day;
// midnight falls on .5.
type JulianDate float64

// UTCToJulian converts c to a Julian Date. Returns an error wrapping
// [ErrInvalidInput] if c is not valid. A leap second is counted as the
// first second of the following day, so 2022-01-01T23:59:60Z converts to
// 2459581.5.
func UTCToJulian(c Civil) (JulianDate, error) {
	if err := c.Validate(); err != nil {
		return 0, err
	}
	return gregorianToJulian(c), nil
}

// JulianToUTC converts jd to a UTC calendar date and time. Returns an error
// wrapping [ErrInvalidInput] if jd is negative or the date falls outside
// years 1 through 65535.
//
// Seconds within half a millisecond of 60 carry into the next minute, so
// 12:00:59.9996 comes back as 12:01:00.
func JulianToUTC(jd JulianDate) (Civil, error) {
	if err := jd.validate(); err != nil {
		return Civil{}, err
	}
	c := julianToGregorian(jd)
	switch {
	case c.Year < 1:
		return Civil{}, fmt.Errorf("%w: julian date %v precedes year 1", ErrInvalidInput, jd)
	case c.Year > maxYear:
		return Civil{}, fmt.Errorf("%w: julian date %v follows year %d", ErrInvalidInput, jd, maxYear)
	}
	return c, nil
}

// julianDateFromTime converts t to a Julian Date with millisecond
// resolution.
func julianDateFromTime(t time.Time) JulianDate {
	return UnixEpoch + JulianDate(float64(t.UnixMilli())/1000/SecondsPerDay)
}

// maxJulianDate bounds Julian Dates so that day numbers fit in an int.
const maxJulianDate JulianDate = math.MaxInt32 - 1

// validate returns an error if jd is negative, NaN, or past maxJulianDate.
func (jd JulianDate) validate() error {
	if !(jd >= 0 && jd <= maxJulianDate) {
		return fmt.Errorf("%w: julian date %v is out of range", ErrInvalidInput, float64(jd))
	}
	return nil
}

// Civil converts jd to a UTC calendar date and time. Returns an error if jd
// is negative.
func (jd JulianDate) Civil() (Civil, error) {
	return JulianToUTC(jd)
}

// Weekday returns the day of the week on which jd falls. Returns an error if
// jd is negative.
func (jd JulianDate) Weekday() (time.Weekday, error) {
	if err := jd.validate(); err != nil {
		return 0, err
	}
	// Julian Day Number 0 was a Monday.
	n := int64(math.Floor(float64(jd) + 0.5))
	return time.Weekday((n + 1) % 7), nil
}

// String returns jd with six decimal places, a resolution of less than
// 0.1 seconds.
func (jd JulianDate) String() string {
	return strconv.FormatFloat(float64(jd), 'f', 6, 64)
}
