package earth

import (
	"github.com/litescript/ls-astro/astrotime"
	"github.com/litescript/ls-astro/units"
)

// NutationIAU2006A returns the IAU 2000A nutation adjusted to match the
// IAU 2006 precession model per Wallace and Capitaine (2006).
func NutationIAU2006A(tdb astrotime.Time) Nutation {
	nut := NutationIAU2000A(tdb)
	j2corr := -2.7774e-6 * tdb.CenturiesSinceJ2000()
	nut.Longitude += units.Radians((0.4697e-6 + j2corr) * nut.Longitude.ToRadians())
	nut.Obliquity += units.Radians(j2corr * nut.Obliquity.ToRadians())
	return nut
}
