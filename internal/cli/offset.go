package cli

import (
	"strconv"

	"github.com/opene57/e57time/timeconv"
	"github.com/spf13/cobra"
)

type offsetResult struct {
	JulianDate timeconv.JulianDate `json:"julian_date" toml:"julian_date"`
	Offset     timeconv.UTCOffset  `json:"utc_offset"  toml:"utc_offset"`
}

func (r offsetResult) text(int) string {
	return strconv.Itoa(int(r.Offset))
}

func (a *app) offsetCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "offset <jd>",
		Short:   "Show the leap seconds by which GPS time leads UTC at a Julian Date",
		Example: "  e57time offset 2459581.5",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			jd, err := parseJulianDate(args[0])
			if err != nil {
				return err
			}
			offset, err := a.conv.OffsetFor(jd)
			if err != nil {
				return err
			}
			return a.write(cmd, offsetResult{JulianDate: jd, Offset: offset})
		},
	}
}
