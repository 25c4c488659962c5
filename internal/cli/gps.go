package cli

import (
	"fmt"

	"github.com/opene57/e57time/timeconv"
	"github.com/spf13/cobra"
)

type gpsResult struct {
	Week  int     `json:"week"  toml:"week"`
	TOW   float64 `json:"tow"   toml:"tow"`
	Value float64 `json:"value" toml:"value"`
}

func newGPSResult(g timeconv.GPSTime) (gpsResult, error) {
	val, err := g.Value()
	if err != nil {
		return gpsResult{}, err
	}
	return gpsResult{Week: g.Week, TOW: g.TOW, Value: val}, nil
}

func (r gpsResult) text(precision int) string {
	return fmt.Sprintf("%d %s", r.Week, formatTOW(r.TOW, precision))
}

func (a *app) gpsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gps (<utc> | --doy <year> <day>)",
		Short: "Convert a UTC date and time to GPS week and time of week",
		Example: "  e57time gps 2022-01-02T00:00:00Z\n" +
			"  e57time gps --rinex 2022-01-02T00:00:00Z\n" +
			"  e57time gps --doy 2022 2",
		Args: func(cmd *cobra.Command, args []string) error {
			if doy, _ := cmd.Flags().GetBool("doy"); doy {
				return cobra.ExactArgs(2)(cmd, args)
			}
			return cobra.ExactArgs(1)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.resolveGPS(cmd, args)
			if err != nil {
				return err
			}
			res, err := newGPSResult(g)
			if err != nil {
				return err
			}
			return a.write(cmd, res)
		},
	}

	cmd.Flags().Bool("rinex", false, "treat the date and time as a RINEX epoch already in GPS time")
	cmd.Flags().Bool("doy", false, "convert 00:00:00 UTC on the year and day of year given as arguments")
	cmd.MarkFlagsMutuallyExclusive("rinex", "doy")
	return cmd
}

func (a *app) resolveGPS(cmd *cobra.Command, args []string) (timeconv.GPSTime, error) {
	if len(args) == 2 {
		year, err := parseInt("year", args[0])
		if err != nil {
			return timeconv.GPSTime{}, err
		}
		day, err := parseInt("day of year", args[1])
		if err != nil {
			return timeconv.GPSTime{}, err
		}
		return a.conv.GPSFromYearDay(year, day)
	}

	utc, err := timeconv.ParseCivil(args[0])
	if err != nil {
		return timeconv.GPSTime{}, err
	}
	if rinex, _ := cmd.Flags().GetBool("rinex"); rinex {
		return timeconv.RINEXToGPS(utc)
	}
	return a.conv.UTCToGPS(utc)
}
