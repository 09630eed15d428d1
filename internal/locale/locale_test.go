package locale

import (
	"testing"

	"github.com/mlogothetis/tempconv"
)

func TestDefaultUnit(t *testing.T) {
	var tests = []struct {
		locale string
		want   tempconv.Unit
	}{
		{"en_US", tempconv.Fahrenheit},
		{"en_US.UTF-8", tempconv.Fahrenheit},
		{"en-US", tempconv.Fahrenheit},
		{"en_LR", tempconv.Fahrenheit},
		{"my_MM", tempconv.Fahrenheit},
		{"en_GB", tempconv.Celsius},
		{"de_DE.UTF-8", tempconv.Celsius},
		{"fr_FR@euro", tempconv.Celsius},
		{"ja_JP", tempconv.Celsius},
		{"", tempconv.Celsius},
		{"not a locale", tempconv.Celsius},
	}
	for _, tt := range tests {
		if got := DefaultUnit(tt.locale); got != tt.want {
			t.Errorf("%q: wanted %s, got %s", tt.locale, tt.want, got)
		}
	}
}

func TestDetect(t *testing.T) {
	t.Setenv("LC_ALL", "")
	t.Setenv("LC_MESSAGES", "")
	t.Setenv("LANG", "de_DE.UTF-8")

	if got := Detect(); got != "de_DE.UTF-8" {
		t.Errorf("Detect(): wanted %q, got %q", "de_DE.UTF-8", got)
	}

	t.Setenv("LC_ALL", "en_US.UTF-8")

	if got := Detect(); got != "en_US.UTF-8" {
		t.Errorf("Detect(): wanted %q, got %q", "en_US.UTF-8", got)
	}
}
