package timeconv

import (
	"database/sql/driver"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Civil represents a UTC calendar date and time of day. Seconds may equal
// 60 to express an inserted leap second (23:59:60).
type Civil struct {
	Year    int
	Month   time.Month
	Day     int
	Hour    int
	Minute  int
	Seconds float64
}

const (
	// maxYear is the largest year Validate accepts.
	maxYear = math.MaxUint16

	// maxSeconds is the largest seconds value Validate accepts.
	maxSeconds = 60.0
)

// CivilFromTime converts t to Civil in UTC. Go times carry no leap seconds,
// so Seconds is always below 60.
func CivilFromTime(t time.Time) Civil {
	t = t.UTC()
	return Civil{
		Year:    t.Year(),
		Month:   t.Month(),
		Day:     t.Day(),
		Hour:    t.Hour(),
		Minute:  t.Minute(),
		Seconds: float64(t.Second()) + float64(t.Nanosecond())/1e9,
	}
}

// GoTime returns c as a time.Time in UTC. A leap second normalizes to the
// first instant of the following minute.
func (c Civil) GoTime() time.Time {
	sec, frac := math.Modf(c.Seconds)
	return time.Date(
		c.Year, c.Month, c.Day,
		c.Hour, c.Minute, int(sec), int(math.Round(frac*1e9)),
		time.UTC,
	)
}

// Valid returns true if every field of c is within range. See [Civil.Validate]
// for the rules.
func (c Civil) Valid() bool {
	return c.Validate() == nil
}

// Validate returns an error wrapping [ErrInvalidInput] if the year is not in
// 1–65535, the month is outside 1–12, the day is 0 or past the end of the month
// (February 29 only in leap years), the hour is past 23, the minute is past
// 59, or the seconds are negative or past 60.
func (c Civil) Validate() error {
	switch {
	case c.Year < 1 || c.Year > maxYear:
		return fmt.Errorf("%w: year %d is not in 1..%d", ErrInvalidInput, c.Year, maxYear)
	case c.Month < time.January || c.Month > time.December:
		return fmt.Errorf("%w: month %d is not in 1..12", ErrInvalidInput, int(c.Month))
	case c.Hour < 0 || c.Hour > 23:
		return fmt.Errorf("%w: hour %d is not in 0..23", ErrInvalidInput, c.Hour)
	case c.Minute < 0 || c.Minute > 59:
		return fmt.Errorf("%w: minute %d is not in 0..59", ErrInvalidInput, c.Minute)
	case !(c.Seconds >= 0 && c.Seconds <= maxSeconds):
		return fmt.Errorf("%w: seconds %v is not in [0, 60]", ErrInvalidInput, c.Seconds)
	}

	// Month is known good.
	dim, _ := DaysInMonth(c.Year, c.Month)
	if c.Day < 1 || c.Day > dim {
		return fmt.Errorf(
			"%w: day %d is not in 1..%d for %04d-%02d",
			ErrInvalidInput, c.Day, dim, c.Year, int(c.Month),
		)
	}
	return nil
}

// JulianDate converts c to a Julian Date. Returns an error if c is not
// valid.
func (c Civil) JulianDate() (JulianDate, error) {
	return UTCToJulian(c)
}

// Format returns c in the form "2006-01-02T15:04:05Z" with the seconds
// written to precision decimal places. A negative precision writes the
// smallest number of digits that represents the seconds exactly.
func (c Civil) Format(precision int) string {
	return fmt.Sprintf(
		"%04d-%02d-%02dT%02d:%02d:%sZ",
		c.Year, int(c.Month), c.Day, c.Hour, c.Minute,
		formatSeconds(c.Seconds, precision),
	)
}

// String returns c formatted with millisecond precision, e.g.,
// "2022-01-01T23:59:60.000Z".
func (c Civil) String() string {
	return c.Format(3)
}

// formatSeconds formats s with at least two integer digits.
func formatSeconds(s float64, precision int) string {
	str := strconv.FormatFloat(s, 'f', precision, 64)
	if dot := strings.IndexByte(str, '.'); dot == 1 || (dot < 0 && len(str) == 1) {
		str = "0" + str
	}
	return str
}

// civilPattern matches the text forms accepted by ParseCivil.
//
//nolint:gochecknoglobals
var civilPattern = regexp.MustCompile(
	`^(\d{4,})-(\d{2})-(\d{2})[T ](\d{2}):(\d{2}):(\d{2}(?:\.\d+)?)Z?$`,
)

// ParseCivil parses src in the form "2006-01-02T15:04:05.999Z". The "T" may
// be a space, the fraction and the trailing "Z" are optional, and the
// seconds may be 60. Returns an error wrapping [ErrInvalidInput] if src
// cannot be parsed or the result is not valid.
func ParseCivil(src string) (Civil, error) {
	m := civilPattern.FindStringSubmatch(strings.TrimSpace(src))
	if m == nil {
		return Civil{}, fmt.Errorf("%w: cannot parse %q as UTC date and time", ErrInvalidInput, src)
	}

	var fields [5]int
	for i := range fields {
		n, err := strconv.Atoi(m[i+1])
		if err != nil {
			return Civil{}, fmt.Errorf("%w: cannot parse %q as UTC date and time", ErrInvalidInput, src)
		}
		fields[i] = n
	}
	seconds, err := strconv.ParseFloat(m[6], 64)
	if err != nil {
		return Civil{}, fmt.Errorf("%w: cannot parse %q as UTC date and time", ErrInvalidInput, src)
	}

	c := Civil{
		Year:    fields[0],
		Month:   time.Month(fields[1]),
		Day:     fields[2],
		Hour:    fields[3],
		Minute:  fields[4],
		Seconds: seconds,
	}
	if err := c.Validate(); err != nil {
		return Civil{}, err
	}
	return c, nil
}

// MustParseCivil is like [ParseCivil] but panics on parse failure.
func MustParseCivil(src string) Civil {
	c, err := ParseCivil(src)
	if err != nil {
		panic(err)
	}
	return c
}

// MarshalText implements encoding.TextMarshaler. Seconds are written with
// full precision.
func (c Civil) MarshalText() ([]byte, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return []byte(c.Format(-1)), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Civil) UnmarshalText(data []byte) error {
	civ, err := ParseCivil(string(data))
	if err != nil {
		return err
	}
	*c = civ
	return nil
}

// Scan implements sql.Scanner so Civil values can be read from databases
// transparently. Database types that map to string, []byte, and time.Time
// are supported. A NULL leaves c unchanged.
func (c *Civil) Scan(src any) error {
	switch src := src.(type) {
	case nil:
		return nil
	case string:
		return c.UnmarshalText([]byte(src))
	case []byte:
		return c.UnmarshalText(src)
	case time.Time:
		*c = CivilFromTime(src)
		return nil
	default:
		return fmt.Errorf("%w: unable to scan type %T into Civil", ErrInvalidInput, src)
	}
}

// Value implements driver.Valuer so that Civil values can be written to
// databases transparently. Civil values map to strings.
func (c Civil) Value() (driver.Value, error) {
	text, err := c.MarshalText()
	if err != nil {
		return nil, err
	}
	return string(text), nil
}
