package config

import (
	"gopkg.in/yaml.v3"

	"github.com/mlogothetis/tempconv"
)

// Unit wraps [tempconv.Unit] for yaml decoding. It accepts the one-letter
// code or the full unit name, ignoring case.
type Unit tempconv.Unit

func (u *Unit) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}

	return (*tempconv.Unit)(u).UnmarshalText([]byte(s))
}

func (u Unit) MarshalYAML() (any, error) {
	return tempconv.Unit(u).Abbrev(), nil
}
