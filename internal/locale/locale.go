// Package locale picks the default temperature unit from the process
// locale.
package locale

import (
	"os"
	"strings"

	"golang.org/x/text/language"

	"github.com/mlogothetis/tempconv"
)

// Detect returns the locale string from the environment, checking
// $LC_ALL, $LC_MESSAGES, and $LANG in that order.
func Detect() string {
	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := os.Getenv(key); v != "" {
			return v
		}
	}

	return ""
}

// DefaultUnit returns the temperature unit customary in the given locale:
// Fahrenheit for the United States, Liberia, and Myanmar, Celsius
// everywhere else, including for locales that cannot be parsed.
func DefaultUnit(locale string) tempconv.Unit {
	tag, err := language.Parse(normalize(locale))
	if err != nil {
		return tempconv.Celsius
	}

	region, _ := tag.Region()
	switch region.String() {
	case "US", "LR", "MM":
		return tempconv.Fahrenheit
	}

	return tempconv.Celsius
}

// normalize converts a POSIX locale string like "en_US.UTF-8" to a
// BCP 47 tag like "en-US".
func normalize(locale string) string {
	if i := strings.IndexAny(locale, ".@"); i >= 0 {
		locale = locale[:i]
	}

	return strings.ReplaceAll(locale, "_", "-")
}
