// Package timeconv converts between the time representations found in
// geospatial and sensor-timestamp metadata: UTC calendar date and time
// ([Civil]), Julian Date ([JulianDate]), and GPS week and time of week
// ([GPSTime]).
//
// Julian Date is the common intermediate. Crossing between UTC and GPS time
// consults a leap-second table ([LeapTable]) because GPS time has no leap
// seconds and UTC does. The table in effect by default is returned by
// [DefaultLeapTable].
//
// All conversions are pure functions and safe for concurrent use. The only
// operations that touch the host clock are the Current* methods of
// [Converter] and their package-level counterparts.
package timeconv

import "errors"

var (
	// ErrInvalidInput wraps errors for out-of-range calendar fields,
	// negative Julian Dates, out-of-range GPS times of week, and other
	// failed preconditions.
	ErrInvalidInput = errors.New("invalid")

	// ErrClockUnavailable wraps errors returned when the clock cannot supply
	// a usable reading.
	ErrClockUnavailable = errors.New("clock unavailable")
)

const (
	// SecondsPerMinute contains the number of seconds in a minute (excluding
	// leap seconds).
	SecondsPerMinute = 60

	// SecondsPerDay contains the number of seconds in a day (excluding leap
	// seconds).
	SecondsPerDay = 86400

	// SecondsPerWeek contains the number of seconds in a GPS week.
	SecondsPerWeek = 7 * SecondsPerDay
)

const (
	// GPSEpoch is the Julian Date of the start of GPS time, 1980-01-06
	// 00:00:00 UTC.
	GPSEpoch JulianDate = 2444244.5

	// UnixEpoch is the Julian Date of 1970-01-01 00:00:00 UTC.
	UnixEpoch JulianDate = 2440587.5
)

// UTCOffset is the whole number of leap seconds by which GPS time leads UTC
// at a given date.
type UTCOffset int
