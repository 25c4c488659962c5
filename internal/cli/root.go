// Package cli implements the e57time command, a thin front end that reads
// arguments, runs one timeconv conversion, and writes the result.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/jonboulle/clockwork"
	"github.com/opene57/e57time/internal/config"
	"github.com/opene57/e57time/timeconv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// app holds the state shared by the commands of one command tree.
type app struct {
	v     *viper.Viper
	clock clockwork.Clock
	cfg   config.Config
	conv  *timeconv.Converter
}

// Execute runs the e57time command with the process arguments and exits
// non-zero on failure.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "e57time:", err)
		os.Exit(1)
	}
}

// NewRootCommand builds the e57time command tree reading the host clock.
func NewRootCommand() *cobra.Command {
	return newRootCommand(clockwork.NewRealClock())
}

func newRootCommand(clock clockwork.Clock) *cobra.Command {
	a := &app{v: viper.New(), clock: clock}

	root := &cobra.Command{
		Use:   "e57time",
		Short: "Convert between UTC, Julian Date, and GPS time",
		Long: "e57time converts timestamps between UTC calendar dates, Julian Dates,\n" +
			"and GPS week and time of week, accounting for leap seconds.",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.initConfig,
	}

	flags := root.PersistentFlags()
	flags.String("config", "", "config file (default .e57time.toml)")
	flags.StringP("output", "o", config.OutputText, "output format: text, json, or toml")
	flags.IntP("precision", "p", 3, "decimal places for seconds in text output")
	for _, name := range []string{"output", "precision"} {
		if err := a.v.BindPFlag(name, flags.Lookup(name)); err != nil {
			panic(err)
		}
	}

	root.AddCommand(
		a.julianCommand(),
		a.utcCommand(),
		a.gpsCommand(),
		a.offsetCommand(),
		a.weekdayCommand(),
		a.nowCommand(),
	)
	return root
}

// initConfig reads the config file and environment, then builds the
// Converter the commands share.
func (a *app) initConfig(cmd *cobra.Command, _ []string) error {
	if cfgFile, _ := cmd.Flags().GetString("config"); cfgFile != "" {
		a.v.SetConfigFile(cfgFile)
	} else {
		a.v.SetConfigName(".e57time")
		a.v.SetConfigType("toml")
		a.v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			a.v.AddConfigPath(home)
		}
	}

	a.v.SetEnvPrefix("E57TIME")
	a.v.AutomaticEnv()

	// No config file is fine; the defaults apply.
	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg, err := config.Load(a.v)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	table, err := cfg.LeapTable()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	a.cfg = cfg
	a.conv = timeconv.New(timeconv.WithLeapTable(table), timeconv.WithClock(a.clock))
	return nil
}
