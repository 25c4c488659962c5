package timeconv

import (
	"cmp"
	"fmt"

	"golang.org/x/exp/slices"
)

// LeapSecond is a breakpoint in a [LeapTable]: from the Julian Date Start
// onward, GPS time leads UTC by Offset seconds.
type LeapSecond struct {
	Start  JulianDate
	Offset UTCOffset
}

// LeapTable maps Julian Dates to the [UTCOffset] in effect. A LeapTable is
// immutable and safe for concurrent use.
type LeapTable struct {
	breakpoints []LeapSecond
}

// NewLeapTable creates a LeapTable from breakpoints, which must be in
// strictly ascending order of Start with non-decreasing offsets. Julian
// Dates before the first breakpoint have no offset. Returns an error
// wrapping [ErrInvalidInput] if breakpoints is empty or out of order.
func NewLeapTable(breakpoints ...LeapSecond) (*LeapTable, error) {
	if len(breakpoints) == 0 {
		return nil, fmt.Errorf("%w: leap-second table has no breakpoints", ErrInvalidInput)
	}

	for i, bp := range breakpoints {
		if err := bp.Start.validate(); err != nil {
			return nil, fmt.Errorf("leap-second breakpoint %d: %w", i, err)
		}
		if bp.Offset < 0 {
			return nil, fmt.Errorf(
				"%w: leap-second breakpoint %d has negative offset %d",
				ErrInvalidInput, i, bp.Offset,
			)
		}
		if i > 0 {
			prev := breakpoints[i-1]
			if bp.Start <= prev.Start || bp.Offset < prev.Offset {
				return nil, fmt.Errorf(
					"%w: leap-second breakpoint %d (%v, %d) does not follow (%v, %d)",
					ErrInvalidInput, i, bp.Start, bp.Offset, prev.Start, prev.Offset,
				)
			}
		}
	}

	return &LeapTable{breakpoints: slices.Clone(breakpoints)}, nil
}

// OffsetFor returns the offset in effect at jd: that of the last breakpoint
// whose Start is at or before jd. Returns an error wrapping
// [ErrInvalidInput] if jd is negative or precedes the first breakpoint.
func (t *LeapTable) OffsetFor(jd JulianDate) (UTCOffset, error) {
	if err := jd.validate(); err != nil {
		return 0, err
	}

	i, found := slices.BinarySearchFunc(
		t.breakpoints, jd,
		func(bp LeapSecond, target JulianDate) int { return cmp.Compare(bp.Start, target) },
	)
	switch {
	case found:
		return t.breakpoints[i].Offset, nil
	case i == 0:
		return 0, fmt.Errorf(
			"%w: julian date %v precedes the leap-second table starting at %v",
			ErrInvalidInput, jd, t.breakpoints[0].Start,
		)
	default:
		return t.breakpoints[i-1].Offset, nil
	}
}

// Breakpoints returns a copy of the breakpoints in t.
func (t *LeapTable) Breakpoints() []LeapSecond {
	return slices.Clone(t.breakpoints)
}

// DefaultLeapTable returns the leap-second table used by the package-level
// functions and by Converters created without [WithLeapTable]. It starts at
// the GPS epoch with offset zero.
func DefaultLeapTable() *LeapTable {
	return defaultLeapTable
}

// OffsetFor returns the offset in effect at jd according to
// [DefaultLeapTable].
func OffsetFor(jd JulianDate) (UTCOffset, error) {
	return defaultLeapTable.OffsetFor(jd)
}

// defaultLeapTable holds the Julian Date at 00:00:00 UTC of each day that
// began with a new leap-second offset. New leap seconds are appended here.
//
// TODO: append 2012-07-01 (16), 2015-07-01 (17) and 2017-01-01 (18) once
// stored E57 timestamps written against this table have been migrated.
//
//nolint:gochecknoglobals
var defaultLeapTable = &LeapTable{breakpoints: []LeapSecond{
	{2444244.5, 0},  // 1980-01-06
	{2444786.5, 1},  // 1981-07-01
	{2445151.5, 2},  // 1982-07-01
	{2445516.5, 3},  // 1983-07-01
	{2446247.5, 4},  // 1985-07-01
	{2447161.5, 5},  // 1988-01-01
	{2447892.5, 6},  // 1990-01-01
	{2448257.5, 7},  // 1991-01-01
	{2448804.5, 8},  // 1992-07-01
	{2449169.5, 9},  // 1993-07-01
	{2449534.5, 10}, // 1994-07-01
	{2450083.5, 11}, // 1996-01-01
	{2450630.5, 12}, // 1997-07-01
	{2451179.5, 13}, // 1999-01-01
	{2453736.5, 14}, // 2006-01-01
	{2454832.5, 15}, // 2009-01-01
}}
