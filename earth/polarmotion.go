package earth

import (
	"gonum.org/v1/gonum/mat"

	"github.com/litescript/ls-astro/astrotime"
	"github.com/litescript/ls-astro/units"
)

// PoleCoords holds the coordinates of the Celestial Intermediate Pole in
// the ITRF, as published in the IERS finals tables.
type PoleCoords struct {
	Xp, Yp units.Angle
}

// IsZero reports whether both pole coordinates vanish.
func (p PoleCoords) IsZero() bool {
	return p.Xp == 0 && p.Yp == 0
}

// Matrix returns the polar motion rotation from the pseudo-Earth-fixed
// frame to the ITRF.
func (p PoleCoords) Matrix() *mat.Dense {
	var m mat.Dense
	m.Mul(R2(-p.Xp), R1(-p.Yp))
	return &m
}

// MatrixIAU2000 returns the polar motion rotation including the TIO
// locator s', per the IAU 2000 resolutions.
func (p PoleCoords) MatrixIAU2000(sp units.Angle) *mat.Dense {
	var m mat.Dense
	m.Mul(p.Matrix(), R3(sp))
	return &m
}

// PolarMotionMatrix returns the polar motion rotation of the reference
// system at a TT instant. Zero pole coordinates yield the identity;
// IERS2003 and IERS2010 include the TIO locator.
func (s ReferenceSystem) PolarMotionMatrix(tt astrotime.Time, pole PoleCoords) *mat.Dense {
	if pole.IsZero() {
		return Identity()
	}
	if s == Iers1996 {
		return pole.Matrix()
	}
	return pole.MatrixIAU2000(TioLocatorIAU2000(tt))
}
