package cli

import (
	"github.com/opene57/e57time/timeconv"
	"github.com/spf13/cobra"
)

type weekdayResult struct {
	JulianDate timeconv.JulianDate `json:"julian_date" toml:"julian_date"`
	Weekday    string              `json:"weekday"     toml:"weekday"`
}

func (r weekdayResult) text(int) string {
	return r.Weekday
}

func (a *app) weekdayCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "weekday <jd>",
		Short:   "Show the day of the week of a Julian Date",
		Example: "  e57time weekday 2454804.2416667",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			jd, err := parseJulianDate(args[0])
			if err != nil {
				return err
			}
			day, err := jd.Weekday()
			if err != nil {
				return err
			}
			return a.write(cmd, weekdayResult{JulianDate: jd, Weekday: day.String()})
		},
	}
}
