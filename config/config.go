// Package config provides the structures used for configuration.
package config

import (
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mlogothetis/tempconv/log"
)

// Config controls the default target unit and logging of the tempconv
// command. Config should be created with a call to [Default], [Read], or
// [Load].
type Config struct {
	// Unit is the target unit used when the command line does not name
	// one. When unset, the unit is chosen from the locale.
	Unit Unit `yaml:"unit,omitempty"`

	// Locale overrides the locale detected from the environment, e.g.
	// "en_US" or "de-DE".
	Locale string `yaml:"locale,omitempty"`

	Log LogConfig `yaml:"log,omitempty"`
}

// Default returns the default Config when no config file is provided.
func Default() *Config {
	return &Config{}
}

// Read returns the Config parsed from the yaml encoded config from r.
func Read(r io.Reader) (cfg *Config, err error) {
	cfg = Default()
	err = yaml.NewDecoder(r).Decode(cfg)

	return
}

// Load returns the Config parsed from the given yaml file. If the file
// does not exist, the default config is returned.
func Load(file string) (*Config, error) {
	f, err := os.Open(file)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}

		return nil, err
	}
	defer f.Close()

	log.Info("Loading config", "path", file)

	return Read(f)
}
