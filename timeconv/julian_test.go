package timeconv

import (
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUTCToJulian(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name string
		utc  string
		exp  JulianDate
	}{
		{"j2000", "2000-01-01T12:00:00Z", 2451545.0},
		{"gps_epoch", "1980-01-06T00:00:00Z", GPSEpoch},
		{"unix_epoch", "1970-01-01T00:00:00Z", UnixEpoch},
		{"year_one", "0001-01-01T00:00:00Z", 1721425.5},
		{"leap_second", "2022-01-01T23:59:60Z", 2459581.5},
		{"year_end_leap_second", "2021-12-31T23:59:60Z", 2459580.5},
		{"evening", "2022-01-01T18:00:00Z", 2459581.25},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			jd, err := UTCToJulian(MustParseCivil(tc.utc))
			require.NoError(t, err)
			assert.Equal(t, tc.exp, jd)
		})
	}

	t.Run("invalid", func(t *testing.T) {
		t.Parallel()
		for _, civ := range []Civil{
			{2022, time.February, 29, 0, 0, 0},
			{2022, 13, 1, 0, 0, 0},
			{2022, time.January, 1, 24, 0, 0},
			{2022, time.January, 1, 0, 60, 0},
			{2022, time.January, 1, 0, 0, 60.001},
			{0, time.January, 1, 0, 0, 0},
		} {
			jd, err := UTCToJulian(civ)
			assert.ErrorIs(t, err, ErrInvalidInput, "%#v", civ)
			assert.Zero(t, jd)
		}
	})
}

func TestJulianToUTC(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name string
		jd   JulianDate
		exp  string
	}{
		{"j2000", 2451545.0, "2000-01-01T12:00:00Z"},
		{"gps_epoch", GPSEpoch, "1980-01-06T00:00:00Z"},
		{"day_start", 2459581.5, "2022-01-02T00:00:00Z"},
		{"evening", 2459581.25, "2022-01-01T18:00:00Z"},
		{"year_one", 1721425.5, "0001-01-01T00:00:00Z"},
		{"afternoon", 2454804.2416666667, "2008-12-03T17:48:00Z"},
		{"last_day", 25657590.5, "65535-12-31T00:00:00Z"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			civ, err := JulianToUTC(tc.jd)
			require.NoError(t, err)
			if diff := cmp.Diff(MustParseCivil(tc.exp), civ, approxSeconds); diff != "" {
				t.Errorf("JulianToUTC(%v) mismatch (-want +got):\n%s", tc.jd, diff)
			}
		})
	}

	for _, tc := range []struct {
		name string
		jd   JulianDate
		err  string
	}{
		{"negative", -1, "invalid: julian date -1 is out of range"},
		{"nan", JulianDate(math.NaN()), "invalid: julian date NaN is out of range"},
		{"infinite", JulianDate(math.Inf(1)), "invalid: julian date +Inf is out of range"},
		{"zero", 0, "invalid: julian date 0.000000 precedes year 1"},
		{"year_zero", 1721424.5, "invalid: julian date 1721424.500000 precedes year 1"},
		{"past_max_year", 25657591.5, "invalid: julian date 25657591.500000 follows year 65535"},
		{"far_future", 30000000, "invalid: julian date 30000000.000000 follows year 65535"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			civ, err := JulianToUTC(tc.jd)
			require.EqualError(t, err, tc.err)
			require.ErrorIs(t, err, ErrInvalidInput)
			assert.Zero(t, civ)
		})
	}
}

func TestJulianRoundTripAcrossLeapSecond(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)

	// Both renderings of the same instant produce the same Julian Date, and
	// converting back yields the normalized one.
	leap, err := UTCToJulian(MustParseCivil("2016-12-31T23:59:60Z"))
	r.NoError(err)
	next, err := UTCToJulian(MustParseCivil("2017-01-01T00:00:00Z"))
	r.NoError(err)
	a.Equal(next, leap)

	civ, err := JulianToUTC(leap)
	r.NoError(err)
	a.Equal(MustParseCivil("2017-01-01T00:00:00Z"), civ)
}

func TestJulianDateCivil(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	civ, err := JulianDate(2451545.0).Civil()
	a.NoError(err)
	a.Equal(Civil{2000, time.January, 1, 12, 0, 0}, civ)

	_, err = JulianDate(-0.5).Civil()
	a.ErrorIs(err, ErrInvalidInput)
}

func TestJulianDateWeekday(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name string
		jd   JulianDate
		exp  time.Weekday
	}{
		{"afternoon", 2454804.2416666667, time.Wednesday},
		{"noon", 2451545.0, time.Saturday},
		{"midnight", 2451544.5, time.Saturday},
		{"before_midnight", 2451544.49, time.Friday},
		{"gps_epoch", GPSEpoch, time.Sunday},
		{"unix_epoch", UnixEpoch, time.Thursday},
		{"day_zero", 0, time.Monday},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			day, err := tc.jd.Weekday()
			require.NoError(t, err)
			assert.Equal(t, tc.exp, day)
		})
	}

	t.Run("matches_time_package", func(t *testing.T) {
		t.Parallel()
		start := time.Date(1999, 12, 25, 0, 0, 0, 0, time.UTC)
		for i := range 28 {
			tm := start.Add(time.Duration(i) * 13 * time.Hour)
			day, err := julianDateFromTime(tm).Weekday()
			require.NoError(t, err)
			assert.Equal(t, tm.Weekday(), day, "%v", tm)
		}
	})

	t.Run("negative", func(t *testing.T) {
		t.Parallel()
		_, err := JulianDate(-2).Weekday()
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestJulianDateString(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	a.Equal("2459581.500000", JulianDate(2459581.5).String())
	a.Equal("2451545.000000", JulianDate(2451545).String())
	a.Equal("2454804.241667", JulianDate(2454804.2416666667).String())
}

func TestJulianDateFromTime(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name string
		tm   time.Time
		exp  JulianDate
	}{
		{"unix_epoch", time.Unix(0, 0), UnixEpoch},
		{"midnight", time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC), 2459580.5},
		{"noon", time.Date(2022, 1, 1, 12, 0, 0, 0, time.UTC), 2459581.0},
		{"zone", time.Date(2022, 1, 1, 7, 0, 0, 0, time.FixedZone("EST", -5*3600)), 2459581.0},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.exp, julianDateFromTime(tc.tm))
		})
	}
}
