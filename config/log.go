package config

import (
	"gopkg.in/yaml.v3"

	"github.com/mlogothetis/tempconv/log"
)

// Level wraps [log.Level] for yaml decoding.
type Level log.Level

func (l *Level) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}

	return (*log.Level)(l).UnmarshalText([]byte(s))
}

func (l Level) MarshalYAML() (any, error) {
	return log.Level(l).String(), nil
}

type LogConfig struct {
	Level  Level  `yaml:"level"`
	Output string `yaml:"output"`
	Format string `yaml:"format"`
}
