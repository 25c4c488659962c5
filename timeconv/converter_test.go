package timeconv

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUTCToGPS(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name string
		utc  string
		exp  GPSTime
	}{
		{"gps_epoch", "1980-01-06T00:00:00Z", GPSTime{0, 0}},
		{"leap_second", "2022-01-01T23:59:60Z", GPSTime{2191, 15}},
		{"week_start", "2022-01-02T00:00:00Z", GPSTime{2191, 15}},
		{"first_leap", "1981-07-01T00:00:00Z", GPSTime{77, 259201}},
		{"before_2009_leap", "2008-12-31T23:59:59.5Z", GPSTime{1512, 345613.5}},
		{"after_2009_leap", "2009-01-01T00:00:00Z", GPSTime{1512, 345615}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			a := assert.New(t)

			g, err := UTCToGPS(MustParseCivil(tc.utc))
			require.NoError(t, err)
			a.Equal(tc.exp.Week, g.Week)
			a.InDelta(tc.exp.TOW, g.TOW, 1e-3)
		})
	}

	for _, tc := range []struct {
		name string
		utc  Civil
		err  string
	}{
		{
			name: "before_gps_epoch",
			utc:  Civil{1979, time.December, 31, 0, 0, 0},
			err:  "utc 1979-12-31T00:00:00.000Z: invalid: julian date 2444238.500000 precedes the leap-second table starting at 2444244.500000",
		},
		{
			name: "invalid_day",
			utc:  Civil{2022, time.February, 29, 0, 0, 0},
			err:  "invalid: day 29 is not in 1..28 for 2022-02",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := UTCToGPS(tc.utc)
			require.EqualError(t, err, tc.err)
			require.ErrorIs(t, err, ErrInvalidInput)
			assert.Zero(t, g)
		})
	}
}

func TestGPSToUTC(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name string
		gps  GPSTime
		exp  string
	}{
		{"gps_epoch", GPSTime{0, 0}, "1980-01-06T00:00:00Z"},
		{"week_start", GPSTime{2191, 15}, "2022-01-02T00:00:00Z"},
		{"before_2009_leap", GPSTime{1512, 345613.5}, "2008-12-31T23:59:59.5Z"},
		{"after_2009_leap", GPSTime{1512, 345615}, "2009-01-01T00:00:00Z"},
		{"after_2009_leap_half", GPSTime{1512, 345615.5}, "2009-01-01T00:00:00.5Z"},
		{"first_leap", GPSTime{77, 259201}, "1981-07-01T00:00:00Z"},
		// The inserted leap second has no UTC rendering of its own. The
		// offset alternates between 14 and 15 on each pass and the fourth
		// pass lands half a second before the boundary.
		{"inside_leap_second", GPSTime{1512, 345614.5}, "2008-12-31T23:59:59.5Z"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			civ, err := GPSToUTC(tc.gps)
			require.NoError(t, err)
			if diff := cmp.Diff(MustParseCivil(tc.exp), civ, approxSeconds); diff != "" {
				t.Errorf("GPSToUTC(%v) mismatch (-want +got):\n%s", tc.gps, diff)
			}
		})
	}

	for _, tc := range []struct {
		name string
		gps  GPSTime
		err  string
	}{
		{"negative_week", GPSTime{-1, 0}, "invalid: gps week -1 is negative"},
		{"full_week", GPSTime{0, SecondsPerWeek}, "invalid: gps time of week 604800 is not in [0, 604800)"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			civ, err := GPSToUTC(tc.gps)
			require.EqualError(t, err, tc.err)
			require.ErrorIs(t, err, ErrInvalidInput)
			assert.Zero(t, civ)
		})
	}
}

func TestGPSRoundTrip(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewPCG(1980, 6)) //nolint:gosec

	for range 5000 {
		utc := Civil{
			Year:    1981 + rng.IntN(120),
			Month:   time.Month(1 + rng.IntN(12)),
			Hour:    rng.IntN(24),
			Minute:  rng.IntN(60),
			Seconds: float64(rng.IntN(60000)) / 1000,
		}
		dim, err := DaysInMonth(utc.Year, utc.Month)
		require.NoError(t, err)
		utc.Day = 1 + rng.IntN(dim)

		g, err := UTCToGPS(utc)
		require.NoError(t, err)
		got, err := GPSToUTC(g)
		require.NoError(t, err)
		if diff := cmp.Diff(utc, got, approxSeconds); diff != "" {
			t.Fatalf("round trip of %v through %v mismatch (-want +got):\n%s", utc, g, diff)
		}
	}
}

func TestGPSToUTCCustomTable(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)

	table, err := NewLeapTable(
		LeapSecond{GPSEpoch, 0},
		LeapSecond{2457754.5, 18}, // 2017-01-01
	)
	r.NoError(err)
	conv := New(WithLeapTable(table))

	utc := MustParseCivil("2022-01-02T00:00:00Z")
	g, err := conv.UTCToGPS(utc)
	r.NoError(err)
	a.Equal(GPSTime{2191, 18}, g)

	got, err := conv.GPSToUTC(g)
	r.NoError(err)
	if diff := cmp.Diff(utc, got, approxSeconds); diff != "" {
		t.Errorf("GPSToUTC(%v) mismatch (-want +got):\n%s", g, diff)
	}

	// The default table disagrees by three seconds.
	got, err = GPSToUTC(g)
	r.NoError(err)
	if diff := cmp.Diff(MustParseCivil("2022-01-02T00:00:03Z"), got, approxSeconds); diff != "" {
		t.Errorf("GPSToUTC(%v) mismatch (-want +got):\n%s", g, diff)
	}

	// A table starting after the GPS epoch cannot resolve early weeks.
	late, err := NewLeapTable(LeapSecond{2457754.5, 18})
	r.NoError(err)
	conv = New(WithLeapTable(late))
	_, err = conv.GPSToUTC(GPSTime{0, 10})
	r.ErrorIs(err, ErrInvalidInput)
	a.ErrorContains(err, "gps 0:10.000: ")
	_, err = conv.UTCToGPS(MustParseCivil("2000-01-01T00:00:00Z"))
	a.ErrorIs(err, ErrInvalidInput)
	_, err = conv.GPSFromYearDay(2016, 1)
	a.ErrorIs(err, ErrInvalidInput)
}

func TestGPSFromYearDay(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name string
		year int
		doy  int
		exp  GPSTime
	}{
		{"jan_2", 2022, 2, GPSTime{2191, 15}},
		{"jan_1", 2022, 1, GPSTime{2190, 518415}},
		{"jan_9", 2022, 9, GPSTime{2192, 15}},
		{"leap_year_end", 2020, 366, GPSTime{2138, 345615}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := GPSFromYearDay(tc.year, tc.doy)
			require.NoError(t, err)
			assert.Equal(t, tc.exp, g)
		})
	}

	for _, tc := range []struct {
		name string
		year int
		doy  int
		err  string
	}{
		{"day_zero", 2022, 0, "invalid: day of year 0 is not in 1..366"},
		{"day_367", 2022, 367, "invalid: day of year 367 is not in 1..366"},
		{"year_zero", 0, 1, "invalid: year 0 is not in 1..65535"},
		{
			"before_table", 1979, 360,
			"year 1979: invalid: julian date 2443874.500000 precedes the leap-second table starting at 2444244.500000",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := GPSFromYearDay(tc.year, tc.doy)
			require.EqualError(t, err, tc.err)
			require.ErrorIs(t, err, ErrInvalidInput)
			assert.Zero(t, g)
		})
	}
}

func TestRINEXToGPS(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name  string
		epoch string
		exp   GPSTime
	}{
		{"gps_epoch", "1980-01-06T00:00:00Z", GPSTime{0, 0}},
		{"week_start", "2022-01-02T00:00:00Z", GPSTime{2191, 0}},
		{"week_end", "2022-01-08T12:00:00Z", GPSTime{2191, 561600}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := RINEXToGPS(MustParseCivil(tc.epoch))
			require.NoError(t, err)
			assert.Equal(t, tc.exp, g)
		})
	}

	t.Run("before_epoch", func(t *testing.T) {
		t.Parallel()
		_, err := RINEXToGPS(MustParseCivil("1980-01-05T23:59:59Z"))
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestDateTimeValue(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)

	val, err := DateTimeValue(MustParseCivil("2022-01-01T23:59:60Z"))
	r.NoError(err)
	a.InDelta(1325116815, val, 1e-3)

	civ, err := CivilFromDateTimeValue(val)
	r.NoError(err)
	if diff := cmp.Diff(MustParseCivil("2022-01-02T00:00:00Z"), civ, approxSeconds); diff != "" {
		t.Errorf("CivilFromDateTimeValue(%v) mismatch (-want +got):\n%s", val, diff)
	}

	_, err = DateTimeValue(MustParseCivil("1970-01-01T00:00:00Z"))
	a.ErrorIs(err, ErrInvalidInput)

	_, err = CivilFromDateTimeValue(0)
	a.EqualError(err, "invalid: gps time value 0 is not positive")
}
