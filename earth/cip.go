package earth

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/litescript/ls-astro/astrotime"
	"github.com/litescript/ls-astro/units"
)

// CipCoords holds the ICRF coordinates (X, Y) of the Celestial
// Intermediate Pole.
type CipCoords struct {
	X, Y units.Angle
}

// CipCoordsIAU2006 returns the CIP coordinates under IAU 2006 precession
// and IAU 2006A nutation at a TDB instant, extracted from the
// bias-precession-nutation matrix.
func CipCoordsIAU2006(tdb astrotime.Time) CipCoords {
	tt := tdb.WithScale(astrotime.TT)
	var npb mat.Dense
	npb.Mul(NutationIAU2006A(tdb).Matrix(MeanObliquityIAU2006(tt)), PrecessionIAU2006(tt).Matrix())
	return CipCoordsFromMatrix(&npb)
}

// CipCoordsFromMatrix extracts the CIP coordinates from a
// bias-precession-nutation matrix.
func CipCoordsFromMatrix(npb *mat.Dense) CipCoords {
	return CipCoords{
		X: units.Radians(npb.At(2, 0)),
		Y: units.Radians(npb.At(2, 1)),
	}
}

// Add returns the component-wise sum of two CIP coordinate pairs.
func (c CipCoords) Add(other CipCoords) CipCoords {
	return CipCoords{X: c.X + other.X, Y: c.Y + other.Y}
}

// CelestialToIntermediateMatrix returns the rotation from the ICRF to
// the celestial intermediate reference frame given the CIO locator s.
func (c CipCoords) CelestialToIntermediateMatrix(s units.Angle) *mat.Dense {
	x := c.X.ToRadians()
	y := c.Y.ToRadians()
	r2 := x*x + y*y

	var e units.Angle
	if r2 > 0 {
		e = units.Atan2(y, x)
	}
	d := units.Atan(math.Sqrt(r2 / (1 - r2)))

	return mulAll(R3(-(e + s)), R2(d), R3(e))
}
