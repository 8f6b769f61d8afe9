package earth

import (
	"github.com/soniakeys/meeus/v3/base"

	"github.com/litescript/ls-astro/astrotime"
	"github.com/litescript/ls-astro/units"
)

// MeanObliquityIAU1980 returns the mean obliquity of the ecliptic of date
// after IAU 1980 at a TT instant.
func MeanObliquityIAU1980(tt astrotime.Time) units.Angle {
	t := tt.CenturiesSinceJ2000()
	return units.Arcseconds(base.Horner(t, 84381.448, -46.8150, -0.00059, 0.001813))
}

// MeanObliquityIAU2006 returns the mean obliquity of the ecliptic of date
// after IAU 2006 at a TT instant.
func MeanObliquityIAU2006(tt astrotime.Time) units.Angle {
	t := tt.CenturiesSinceJ2000()
	return units.Arcseconds(base.Horner(t,
		84381.406, -46.836769, -0.0001831, 0.00200340, -0.000000576, -0.0000000434))
}

// MeanObliquity returns the mean obliquity of the ecliptic of date for
// the reference system at a TT instant.
func (s ReferenceSystem) MeanObliquity(tt astrotime.Time) units.Angle {
	if s == Iers2010 {
		return MeanObliquityIAU2006(tt)
	}
	return MeanObliquityIAU1980(tt)
}
