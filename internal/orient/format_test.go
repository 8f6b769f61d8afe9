package orient

import (
	"math"
	"testing"

	"github.com/litescript/ls-astro/units"
)

func TestFormatHMS(t *testing.T) {
	tests := []struct {
		name  string
		angle units.Angle
		want  string
	}{
		{"zero", units.Degrees(0), "00h00m00.0000s"},
		{"one hour", units.Degrees(15), "01h00m00.0000s"},
		{"half day", units.Degrees(180), "12h00m00.0000s"},
		{"exact minute", units.Degrees(187.5), "12h30m00.0000s"},
		{"fractional", units.Degrees(100.12345), "06h40m29.6280s"},
		{"negative wraps", units.Degrees(-90), "18h00m00.0000s"},
		{"rounds past full turn", units.Degrees(359.9999999999), "00h00m00.0000s"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := FormatHMS(tc.angle); got != tc.want {
				t.Errorf("FormatHMS = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestFormatDegrees(t *testing.T) {
	tests := []struct {
		name  string
		angle units.Angle
		want  string
	}{
		{"pi", units.Radians(math.Pi), "180.00000000°"},
		{"wraps above", units.Degrees(361.5), "1.50000000°"},
		{"wraps below", units.Degrees(-49.59087203), "310.40912797°"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := FormatDegrees(tc.angle); got != tc.want {
				t.Errorf("FormatDegrees = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestFormatArcseconds(t *testing.T) {
	if got := FormatArcseconds(units.Arcseconds(0.2345)); got != "+0.234500″" {
		t.Errorf("FormatArcseconds = %q, want %q", got, "+0.234500″")
	}
	if got := FormatArcseconds(units.Arcseconds(-1.75)); got != "-1.750000″" {
		t.Errorf("FormatArcseconds = %q, want %q", got, "-1.750000″")
	}
}

func TestFormatOffset(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{32.184, "+32.184000000 s"},
		{0, "+0.000000000 s"},
		{-0.5, "-0.500000000 s"},
	}

	for _, tc := range tests {
		if got := FormatOffset(tc.seconds); got != tc.want {
			t.Errorf("FormatOffset(%v) = %q, want %q", tc.seconds, got, tc.want)
		}
	}
}
