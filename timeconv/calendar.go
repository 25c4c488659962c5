package timeconv

import (
	"fmt"
	"math"
	"time"
)

//nolint:gochecknoglobals
var (
	// daysInMonth holds the length of each month in a common year.
	daysInMonth = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

	// daysBeforeMonth holds the number of days preceding each month in a
	// common year.
	daysBeforeMonth = [12]int{0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334}
)

// secondsPerHour contains the number of seconds in an hour (excluding leap
// seconds).
const secondsPerHour = 60 * 60

// rolloverEpsilon is how close to a full minute decomposed seconds must be
// to carry into the minute. A Julian Date near the present resolves to
// about 40µs, so decomposition can land just short of a boundary.
const rolloverEpsilon = 0.5e-3

// IsLeapYear returns true if year is a leap year in the Gregorian calendar:
// divisible by 4, except for centuries not divisible by 400.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days in month of year. Returns an error
// if month is not in 1–12.
func DaysInMonth(year int, month time.Month) (int, error) {
	if month < time.January || month > time.December {
		return 0, fmt.Errorf("%w: month %d is not in 1..12", ErrInvalidInput, int(month))
	}
	if month == time.February && IsLeapYear(year) {
		return 29, nil
	}
	return daysInMonth[month-1], nil
}

// DayOfYear returns the ordinal day of the date within its year, 1–366.
// Returns an error if the month or day is out of range.
func DayOfYear(year int, month time.Month, day int) (int, error) {
	dim, err := DaysInMonth(year, month)
	if err != nil {
		return 0, err
	}
	if day < 1 || day > dim {
		return 0, fmt.Errorf(
			"%w: day %d is not in 1..%d for %04d-%02d",
			ErrInvalidInput, day, dim, year, int(month),
		)
	}

	doy := daysBeforeMonth[month-1] + day
	if month > time.February && IsLeapYear(year) {
		doy++
	}
	return doy, nil
}

// gregorianToJulian computes the Julian Date of c, which must be valid.
// January and February count as months 13 and 14 of the preceding year.
// The day number and the time of day are summed separately so that whole
// days stay exact.
//
// Meeus, Astronomical Algorithms, 2nd ed. (1998), ch. 7.
func gregorianToJulian(c Civil) JulianDate {
	y, m := c.Year, int(c.Month)
	if m <= 2 {
		y--
		m += 12
	}
	a := y / 100
	b := 2 - a + a/4

	// Julian Day Number, which starts at noon.
	day := int(365.25*float64(y+4716)) + int(30.6001*float64(m+1)) + c.Day + b - 1524
	secs := float64(c.Hour*secondsPerHour+c.Minute*SecondsPerMinute) + c.Seconds
	return JulianDate(float64(day) - 0.5 + secs/SecondsPerDay)
}

// julianToGregorian decomposes jd, which must be valid, into a calendar
// date and time of day in the proleptic Gregorian calendar. The year is
// zero or negative for dates before January 1, 1 AD.
func julianToGregorian(jd JulianDate) Civil {
	z := int(jd + 0.5)
	f := math.Mod(float64(jd)+0.5, 1)

	alpha := int(math.Floor((float64(z) - 1867216.25) / 36524.25))
	a := z + 1 + alpha - floorDiv(alpha, 4)
	b := a + 1524
	c := int((float64(b) - 122.1) / 365.25)
	d := int(365.25 * float64(c))
	e := int(float64(b-d) / 30.6001)

	day := b - d - int(30.6001*float64(e))
	month := time.Month(e - 1)
	if e >= 14 {
		month = time.Month(e - 13)
	}
	year := c - 4716
	if month <= time.February {
		year = c - 4715
	}

	td := f * 24
	hour := int(td)
	td = (td - float64(hour)) * 60
	minute := int(td)
	seconds := (td - float64(minute)) * 60

	return Civil{
		Year:    year,
		Month:   month,
		Day:     day,
		Hour:    hour,
		Minute:  minute,
		Seconds: seconds,
	}.carry()
}

// floorDiv returns a/b rounded toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// carry propagates seconds at (or within rolloverEpsilon of) 60 into the
// minute, and from there into the hour, day, month, and year as needed.
// Seconds in [59.9995, 60) therefore become 0 of the next minute.
func (c Civil) carry() Civil {
	if c.Seconds < SecondsPerMinute-rolloverEpsilon {
		return c
	}
	c.Seconds = math.Max(c.Seconds-SecondsPerMinute, 0)

	c.Minute++
	if c.Minute < 60 {
		return c
	}
	c.Minute -= 60

	c.Hour++
	if c.Hour < 24 {
		return c
	}
	c.Hour -= 24

	c.Day++
	if dim, err := DaysInMonth(c.Year, c.Month); err == nil && c.Day <= dim {
		return c
	}
	c.Day = 1

	c.Month++
	if c.Month > time.December {
		c.Month = time.January
		c.Year++
	}
	return c
}
