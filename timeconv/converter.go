package timeconv

import (
	"fmt"

	"github.com/jonboulle/clockwork"
)

// offsetPasses is the number of passes GPSToUTC makes to resolve the leap
// second offset. The offset depends on the UTC date being solved for, and
// four passes settle it for any table whose steps are a few seconds apart.
const offsetPasses = 4

// Converter performs the conversions that depend on a leap-second table or
// on the clock. Create one with [New]. A Converter is safe for concurrent
// use.
type Converter struct {
	leaps *LeapTable
	clock clockwork.Clock
}

// Option specifies a Converter option.
type Option func(*Converter)

// WithLeapTable sets the leap-second table. The default is
// [DefaultLeapTable].
func WithLeapTable(table *LeapTable) Option {
	return func(c *Converter) {
		if table != nil {
			c.leaps = table
		}
	}
}

// WithClock sets the clock read by the Current* methods and [Converter.Now].
// The default is the host clock.
func WithClock(clock clockwork.Clock) Option {
	return func(c *Converter) {
		if clock != nil {
			c.clock = clock
		}
	}
}

// New creates a Converter configured by opt.
func New(opt ...Option) *Converter {
	c := &Converter{
		leaps: defaultLeapTable,
		clock: clockwork.NewRealClock(),
	}
	for _, o := range opt {
		o(c)
	}
	return c
}

// defaultConverter backs the package-level functions.
//
//nolint:gochecknoglobals
var defaultConverter = New()

// LeapTable returns the leap-second table used by c.
func (c *Converter) LeapTable() *LeapTable {
	return c.leaps
}

// OffsetFor returns the offset in effect at jd.
func (c *Converter) OffsetFor(jd JulianDate) (UTCOffset, error) {
	//nolint:wrapcheck // Okay to return unwrapped error
	return c.leaps.OffsetFor(jd)
}

// UTCToGPS converts utc to GPS time: Julian Date first, then the offset in
// effect at that date.
func (c *Converter) UTCToGPS(utc Civil) (GPSTime, error) {
	jd, err := UTCToJulian(utc)
	if err != nil {
		return GPSTime{}, err
	}
	offset, err := c.leaps.OffsetFor(jd)
	if err != nil {
		return GPSTime{}, fmt.Errorf("utc %v: %w", utc, err)
	}
	return JulianToGPS(jd, offset)
}

// GPSToUTC converts g to UTC. Because the offset depends on the UTC date
// being solved for, it starts from offset zero and alternates between
// computing the Julian Date and looking up its offset, always exactly four
// times, before decomposing the final Julian Date.
func (c *Converter) GPSToUTC(g GPSTime) (Civil, error) {
	var (
		offset UTCOffset
		jd     JulianDate
		err    error
	)
	for range offsetPasses {
		if jd, err = GPSToJulian(g, offset); err != nil {
			return Civil{}, err
		}
		if offset, err = c.leaps.OffsetFor(jd); err != nil {
			return Civil{}, fmt.Errorf("gps %v: %w", g, err)
		}
	}
	return JulianToUTC(jd)
}

// GPSFromYearDay returns the GPS time at 00:00:00 UTC on the ordinal day
// dayOfYear (1–366) of year. The offset is the one in effect on January 1
// of year.
func (c *Converter) GPSFromYearDay(year, dayOfYear int) (GPSTime, error) {
	if dayOfYear < 1 || dayOfYear > 366 {
		return GPSTime{}, fmt.Errorf("%w: day of year %d is not in 1..366", ErrInvalidInput, dayOfYear)
	}

	jd, err := UTCToJulian(Civil{Year: year, Month: 1, Day: 1})
	if err != nil {
		return GPSTime{}, err
	}
	offset, err := c.leaps.OffsetFor(jd)
	if err != nil {
		return GPSTime{}, fmt.Errorf("year %d: %w", year, err)
	}
	return JulianToGPS(jd+JulianDate(dayOfYear-1), offset)
}

// DateTimeValue converts utc to the single GPS seconds count stored in E57
// date-time fields.
func (c *Converter) DateTimeValue(utc Civil) (float64, error) {
	g, err := c.UTCToGPS(utc)
	if err != nil {
		return 0, err
	}
	return g.Value()
}

// CivilFromDateTimeValue converts a GPS seconds count as stored in E57
// date-time fields to UTC.
func (c *Converter) CivilFromDateTimeValue(value float64) (Civil, error) {
	g, err := EpochToGPS(value)
	if err != nil {
		return Civil{}, err
	}
	return c.GPSToUTC(g)
}

// RINEXToGPS converts a RINEX epoch to GPS time. RINEX epochs are already
// in the GPS time scale, so no leap-second offset applies; the fields are
// only validated and rearranged.
func RINEXToGPS(epoch Civil) (GPSTime, error) {
	jd, err := UTCToJulian(epoch)
	if err != nil {
		return GPSTime{}, err
	}
	return JulianToGPS(jd, 0)
}

// UTCToGPS converts utc to GPS time using [DefaultLeapTable].
func UTCToGPS(utc Civil) (GPSTime, error) {
	return defaultConverter.UTCToGPS(utc)
}

// GPSToUTC converts g to UTC using [DefaultLeapTable].
func GPSToUTC(g GPSTime) (Civil, error) {
	return defaultConverter.GPSToUTC(g)
}

// GPSFromYearDay returns the GPS time at the start of the ordinal day
// dayOfYear of year using [DefaultLeapTable].
func GPSFromYearDay(year, dayOfYear int) (GPSTime, error) {
	return defaultConverter.GPSFromYearDay(year, dayOfYear)
}

// DateTimeValue converts utc to an E57 date-time value using
// [DefaultLeapTable].
func DateTimeValue(utc Civil) (float64, error) {
	return defaultConverter.DateTimeValue(utc)
}

// CivilFromDateTimeValue converts an E57 date-time value to UTC using
// [DefaultLeapTable].
func CivilFromDateTimeValue(value float64) (Civil, error) {
	return defaultConverter.CivilFromDateTimeValue(value)
}
