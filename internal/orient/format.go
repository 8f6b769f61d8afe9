package orient

import (
	"fmt"
	"math"

	"github.com/litescript/ls-astro/units"
)

// FormatHMS renders an angle as sidereal hours, minutes and seconds,
// e.g. "13h24m56.7890s". The angle is wrapped into [0, 2pi) first.
func FormatHMS(a units.Angle) string {
	sec := a.ModTwoPi().ToDegrees() * 240 // 360 degrees = 86400 seconds of time
	sec = math.Round(sec*1e4) / 1e4
	if sec >= 86400 {
		sec -= 86400
	}
	h := int(sec) / 3600
	m := int(sec) / 60 % 60
	s := sec - float64(h*3600+m*60)
	return fmt.Sprintf("%02dh%02dm%07.4fs", h, m, s)
}

// FormatDegrees renders an angle wrapped into [0, 360) with eight
// decimals, e.g. "310.40912797°".
func FormatDegrees(a units.Angle) string {
	return fmt.Sprintf("%.8f°", a.ModTwoPi().ToDegrees())
}

// FormatArcseconds renders a small signed angle in arcseconds.
func FormatArcseconds(a units.Angle) string {
	return fmt.Sprintf("%+.6f″", a.ToArcseconds())
}

// FormatOffset renders a scale offset in seconds with nanosecond
// resolution, e.g. "+32.184000000 s".
func FormatOffset(seconds float64) string {
	return fmt.Sprintf("%+.9f s", seconds)
}
