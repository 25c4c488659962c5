package cli

import (
	"fmt"

	"github.com/opene57/e57time/timeconv"
	"github.com/spf13/cobra"
)

type nowResult timeconv.Snapshot

func (r nowResult) text(precision int) string {
	return fmt.Sprintf(
		"utc          %s\njulian_date  %v\ngps          %d %s\nutc_offset   %d",
		r.UTC.Format(precision), r.JulianDate,
		r.GPS.Week, formatTOW(r.GPS.TOW, precision), r.Offset,
	)
}

func (a *app) nowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "now",
		Short: "Show the current time as UTC, Julian Date, and GPS time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			snap, err := a.conv.Now()
			if err != nil {
				return err
			}
			return a.write(cmd, nowResult(snap))
		},
	}
}
