package earth

import (
	"github.com/litescript/ls-astro/astrotime"
	"github.com/litescript/ls-astro/units"
)

// The TIO locator is unpredictable, being dependent on the integration
// of observations of polar motion, but is dominated by secular drift,
// which provides a close approximation.
const tioSecularDrift = -47e-6 // arcseconds per century

// TioLocatorIAU2000 returns the Terrestrial Intermediate Origin locator
// s', which places the TIO on the equator of the Celestial Intermediate
// Pole, at a TT instant.
func TioLocatorIAU2000(tt astrotime.Time) units.Angle {
	return units.Arcseconds(tioSecularDrift * tt.CenturiesSinceJ2000())
}
