package cli

import (
	"errors"

	"github.com/opene57/e57time/timeconv"
	"github.com/spf13/cobra"
)

type utcResult struct {
	UTC        timeconv.Civil      `json:"utc"         toml:"utc"`
	JulianDate timeconv.JulianDate `json:"julian_date" toml:"julian_date"`
}

func (r utcResult) text(precision int) string {
	return r.UTC.Format(precision)
}

func (a *app) utcCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "utc (--jd <jd> | --gps <week> <tow> | --value <seconds>)",
		Short: "Convert a Julian Date or GPS time to UTC",
		Example: "  e57time utc --jd 2459581.5\n" +
			"  e57time utc --gps 2191 15\n" +
			"  e57time utc --value 1325116815",
		Args: func(cmd *cobra.Command, args []string) error {
			if gps, _ := cmd.Flags().GetBool("gps"); gps {
				return cobra.ExactArgs(2)(cmd, args)
			}
			return cobra.NoArgs(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			utc, err := a.resolveUTC(cmd, args)
			if err != nil {
				return err
			}
			jd, err := timeconv.UTCToJulian(utc)
			if err != nil {
				return err
			}
			return a.write(cmd, utcResult{UTC: utc, JulianDate: jd})
		},
	}

	cmd.Flags().Float64("jd", 0, "Julian Date to convert")
	cmd.Flags().Bool("gps", false, "convert the GPS week and time of week given as arguments")
	cmd.Flags().Float64("value", 0, "GPS seconds count (E57 date-time value) to convert")
	cmd.MarkFlagsMutuallyExclusive("jd", "gps", "value")
	cmd.MarkFlagsOneRequired("jd", "gps", "value")
	return cmd
}

func (a *app) resolveUTC(cmd *cobra.Command, args []string) (timeconv.Civil, error) {
	flags := cmd.Flags()
	switch {
	case flags.Changed("jd"):
		jd, _ := flags.GetFloat64("jd")
		return timeconv.JulianToUTC(timeconv.JulianDate(jd))
	case flags.Changed("value"):
		val, _ := flags.GetFloat64("value")
		return a.conv.CivilFromDateTimeValue(val)
	case len(args) == 2:
		week, err := parseInt("gps week", args[0])
		if err != nil {
			return timeconv.Civil{}, err
		}
		tow, err := parseSeconds("gps time of week", args[1])
		if err != nil {
			return timeconv.Civil{}, err
		}
		return a.conv.GPSToUTC(timeconv.GPSTime{Week: week, TOW: tow})
	default:
		return timeconv.Civil{}, errors.New("one of --jd, --gps, or --value is required")
	}
}
