// Package cmd implements the commands of the tempconv command-line tool.
package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mlogothetis/tempconv"
	"github.com/mlogothetis/tempconv/config"
	"github.com/mlogothetis/tempconv/internal/build"
	"github.com/mlogothetis/tempconv/internal/locale"
)

// Flags for [RootCommand]
var (
	ConfigPath string // Path to config file (default is first of $TEMPCONV_CONFIG, $XDG_CONFIG_HOME/tempconv.yaml, $HOME/.config/tempconv.yaml)
	Locale     string // Locale used to pick the default target unit
	TargetUnit string // Target unit when the arguments do not name one
	LogLevel   string // Log level
)

var cfg *config.Config

// RootCommand is the main [cobra.Command], which performs a conversion.
var RootCommand = &cobra.Command{
	Use:     "tempconv [flags] <value> <from-unit> [to-unit]",
	Short:   "Convert temperatures between Celsius, Fahrenheit, and kelvin",
	Version: build.Version(),
	Long: `Convert a temperature between Celsius, Fahrenheit, and kelvin.

The temperature may be given as a value and unit pair, or as a single
combined argument such as 25C or 98.6F. Units are named by their one-letter
code (C, F, K) or their full name, ignoring case.

If no target unit is given, it is taken from the config file, the --unit
flag, or the detected locale: locales of the United States, Liberia, and
Myanmar default to Fahrenheit, all others to Celsius.`,
	Example: `  tempconv 100 C F
  tempconv 25C kelvin
  tempconv -u F 37.5C
  tempconv 300K`,
	Args: cobra.RangeArgs(1, 3),
	PreRunE: func(cmd *cobra.Command, _ []string) (err error) {
		findConfig()

		cfg, err = config.Load(ConfigPath)
		if err != nil {
			return &ExitError{err, 1}
		}

		if err = flagsToConfig(cfg); err != nil {
			return &ExitError{err, 1}
		}

		setLogHandler(cfg)

		return nil
	},
	RunE: runConvert,
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		for _, f := range cleanup {
			f()
		}
	},

	SilenceUsage:          true,
	DisableFlagsInUseLine: true,
	CompletionOptions:     cobra.CompletionOptions{HiddenDefaultCmd: true},
}

func init() {
	RootCommand.Flags().SortFlags = false
	RootCommand.PersistentFlags().StringVarP(&ConfigPath, "config", "c", "", "Path to config file")
	RootCommand.Flags().StringVarP(&TargetUnit, "unit", "u", "", "Target unit when the arguments do not name one")
	RootCommand.Flags().StringVar(&Locale, "locale", "", "Locale used to pick the default target unit")
	RootCommand.PersistentFlags().StringVarP(&LogLevel, "log", "l", "", "Log level")
	RootCommand.Flags().BoolP("version", "V", false, "version for tempconv")

	RootCommand.MarkPersistentFlagFilename("config", "yaml", "yml")

	RootCommand.SetHelpTemplate(RootCommand.HelpTemplate() + "\n" + fullDocsFooter + "\n")
}

// Execute executes the root command.
func Execute() error {
	return RootCommand.Execute()
}

func runConvert(cmd *cobra.Command, args []string) error {
	temp, target, hasTarget, err := parseArgs(args)
	if err != nil {
		return &ExitError{err, 1}
	}

	if !hasTarget {
		target = defaultUnit(cfg)
	}

	fmt.Fprintln(cmd.OutOrStdout(), temp.To(target))

	return nil
}

// parseArgs decodes the argument forms accepted by the root command:
//
//	<value> <from-unit> <to-unit>
//	<value> <from-unit>
//	<temperature> <to-unit>
//	<temperature>
//
// A two-argument call is a value and unit pair when the first argument is
// a bare number, and a combined temperature plus target unit otherwise.
func parseArgs(args []string) (temp tempconv.Temperature, target tempconv.Unit, hasTarget bool, err error) {
	switch len(args) {
	case 1:
		temp, err = tempconv.Parse(args[0])
	case 2:
		if v, ferr := strconv.ParseFloat(args[0], 64); ferr == nil {
			var from tempconv.Unit
			if from, err = unitArg(args[1]); err != nil {
				return
			}

			temp, err = tempconv.New(v, from)

			return
		}

		if temp, err = tempconv.Parse(args[0]); err != nil {
			return
		}

		target, err = unitArg(args[1])
		hasTarget = err == nil
	case 3:
		v, ferr := strconv.ParseFloat(args[0], 64)
		if ferr != nil {
			err = fmt.Errorf("invalid value %q", args[0])
			return
		}

		var from tempconv.Unit
		if from, err = unitArg(args[1]); err != nil {
			return
		}

		if temp, err = tempconv.New(v, from); err != nil {
			return
		}

		target, err = unitArg(args[2])
		hasTarget = err == nil
	}

	return
}

// unitArg resolves a command-line unit argument, accepting the one-letter
// code or the full name, ignoring case.
func unitArg(s string) (tempconv.Unit, error) {
	var u tempconv.Unit

	if err := u.UnmarshalText([]byte(s)); err != nil {
		return 0, err
	}

	return u, nil
}

// defaultUnit picks the target unit when the arguments do not name one:
// the configured unit if set, otherwise the unit customary in the
// configured or detected locale.
func defaultUnit(cfg *config.Config) tempconv.Unit {
	if cfg.Unit != 0 {
		return tempconv.Unit(cfg.Unit)
	}

	loc := cfg.Locale
	if loc == "" {
		loc = locale.Detect()
	}

	return locale.DefaultUnit(loc)
}
