package cmd

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mlogothetis/tempconv/config"
	"github.com/mlogothetis/tempconv/log"
)

const fullDocsFooter = `Full documentation is available at:
https://pkg.go.dev/github.com/mlogothetis/tempconv`

// ExitError is an error that should cause the program to exit with the
// given code.
type ExitError struct {
	Err  error
	Code int
}

func (e *ExitError) Error() string {
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

var cleanup []func()

// AddCleanup registers f to run after the command finishes.
func AddCleanup(f func()) {
	cleanup = append(cleanup, f)
}

func findConfig() {
	const defaultConfigFile = "tempconv.yaml"

	if ConfigPath != "" {
		return
	}

	if env, ok := os.LookupEnv("TEMPCONV_CONFIG"); ok {
		ConfigPath = env
		return
	}

	if xdg, ok := os.LookupEnv("XDG_CONFIG_HOME"); ok {
		ConfigPath = filepath.Join(xdg, defaultConfigFile)
		return
	}

	home, err := os.UserHomeDir()
	cobra.CheckErr(err)

	ConfigPath = filepath.Join(home, ".config", defaultConfigFile)
}

func flagsToConfig(cfg *config.Config) error {
	if LogLevel != "" {
		var level log.Level

		if err := level.UnmarshalText([]byte(LogLevel)); err != nil {
			return err
		}

		cfg.Log.Level = config.Level(level)
	}

	if Locale != "" {
		cfg.Locale = Locale
	}

	if TargetUnit != "" {
		u, err := unitArg(TargetUnit)
		if err != nil {
			return err
		}

		cfg.Unit = config.Unit(u)
	}

	return nil
}

func setLogHandler(cfg *config.Config) {
	var w io.Writer

	switch strings.ToLower(cfg.Log.Output) {
	case "", "stderr":
	case "stdout":
		w = os.Stdout
	case "discard":
		log.SetHandler(log.DiscardHandler)
		return
	default:
		f, err := os.OpenFile(cfg.Log.Output, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
		if err != nil {
			log.Error(
				"Unable to open log file, deferring to stderr",
				err,
			)

			return
		}

		w = f

		AddCleanup(func() { f.Close() })
	}

	log.SetLogLevel(log.Level(cfg.Log.Level))

	switch strings.ToLower(cfg.Log.Format) {
	case "json":
		if w == nil {
			w = os.Stderr
		}

		log.SetJSONHandler(w)
	default:
		if w != nil {
			log.SetOutput(w)
		}
	}
}
