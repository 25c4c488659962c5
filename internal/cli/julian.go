package cli

import (
	"github.com/opene57/e57time/timeconv"
	"github.com/spf13/cobra"
)

type julianResult struct {
	UTC        timeconv.Civil      `json:"utc"         toml:"utc"`
	JulianDate timeconv.JulianDate `json:"julian_date" toml:"julian_date"`
}

func (r julianResult) text(int) string {
	return r.JulianDate.String()
}

func (a *app) julianCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "julian <utc>",
		Short:   "Convert a UTC date and time to a Julian Date",
		Example: "  e57time julian 2022-01-01T23:59:60Z",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			utc, err := timeconv.ParseCivil(args[0])
			if err != nil {
				return err
			}
			jd, err := timeconv.UTCToJulian(utc)
			if err != nil {
				return err
			}
			return a.write(cmd, julianResult{UTC: utc, JulianDate: jd})
		},
	}
}
