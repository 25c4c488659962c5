package cli

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/opene57/e57time/internal/config"
	"github.com/opene57/e57time/timeconv"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
)

// result is the outcome of a command. Its exported fields are written for
// json and toml output; text output uses the text method.
type result interface {
	text(precision int) string
}

// write encodes res to the command's output in the configured format.
func (a *app) write(cmd *cobra.Command, res result) error {
	w := cmd.OutOrStdout()

	var err error
	switch a.cfg.Output {
	case config.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		err = enc.Encode(res)
	case config.OutputTOML:
		err = toml.NewEncoder(w).Encode(res)
	default:
		_, err = fmt.Fprintln(w, res.text(a.cfg.Precision))
	}
	if err != nil {
		return fmt.Errorf("failed to write %s output: %w", a.cfg.Output, err)
	}
	return nil
}

// formatTOW formats a GPS time of week with precision decimal places.
func formatTOW(tow float64, precision int) string {
	return strconv.FormatFloat(tow, 'f', precision, 64)
}

// parseJulianDate parses a Julian Date argument.
func parseJulianDate(arg string) (timeconv.JulianDate, error) {
	f, err := cast.ToFloat64E(arg)
	if err != nil {
		return 0, fmt.Errorf("%w: julian date %q: %w", timeconv.ErrInvalidInput, arg, err)
	}
	return timeconv.JulianDate(f), nil
}

// parseInt parses a whole-number argument such as a week, year, or day of
// year. Leading zeros are decimal.
func parseInt(name, arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not a whole number", timeconv.ErrInvalidInput, name, arg)
	}
	return n, nil
}

// parseSeconds parses a seconds argument such as a time of week.
func parseSeconds(name, arg string) (float64, error) {
	f, err := cast.ToFloat64E(arg)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q: %w", timeconv.ErrInvalidInput, name, arg, err)
	}
	return f, nil
}
