package earth

import (
	"math"

	"github.com/soniakeys/meeus/v3/base"

	"github.com/litescript/ls-astro/astrotime"
	"github.com/litescript/ls-astro/units"
)

// CioLocatorIAU2006 returns the Celestial Intermediate Origin locator s,
// consistent with IAU 2006 precession and IAU 2000A nutation, at a TDB
// instant and for the given CIP coordinates.
func CioLocatorIAU2006(tdb astrotime.Time, cip CipCoords) units.Angle {
	t := tdb.CenturiesSinceJ2000()
	args := cioFundamentalArgs(t)
	evaluated := [6]float64{
		cioOrderSum(&args, cioPolynomial[0], cioTermsOrder0[:]),
		cioOrderSum(&args, cioPolynomial[1], cioTermsOrder1[:]),
		cioOrderSum(&args, cioPolynomial[2], cioTermsOrder2[:]),
		cioOrderSum(&args, cioPolynomial[3], cioTermsOrder3[:]),
		cioOrderSum(&args, cioPolynomial[4], cioTermsOrder4[:]),
		cioPolynomial[5],
	}
	s := units.Arcseconds(base.Horner(t, evaluated[:]...))
	return s - units.Radians(cip.X.ToRadians()*cip.Y.ToRadians()/2)
}

// cioFundamentalArgs returns the eight fundamental arguments of the s
// series in radians. The term tables are bound to this ordering:
// l, l', F, D, Ω, L_Ve, L_E, p_A.
func cioFundamentalArgs(t float64) [8]float64 {
	return [8]float64{
		MoonMeanAnomalyIERS03(t).ToRadians(),
		SunMeanAnomalyIERS03(t).ToRadians(),
		MoonArgumentOfLatitudeIERS03(t).ToRadians(),
		MoonSunElongationIERS03(t).ToRadians(),
		MoonAscendingNodeIERS03(t).ToRadians(),
		VenusMeanLongitudeIERS03(t).ToRadians(),
		EarthMeanLongitudeIERS03(t).ToRadians(),
		GeneralPrecessionIERS03(t).ToRadians(),
	}
}

// cioOrderSum folds the trigonometric terms of one polynomial order onto
// its constant coefficient, smallest terms first.
func cioOrderSum(args *[8]float64, coeff float64, terms []cioTerm) float64 {
	sum := coeff
	for i := len(terms) - 1; i >= 0; i-- {
		term := &terms[i]
		var a float64
		for j, c := range term.args {
			a += c * args[j]
		}
		sa, ca := math.Sincos(a)
		sum = sum + term.s*sa + term.c*ca
	}
	return sum
}

// cioTerm holds one trigonometric term of the s series: multipliers of
// the eight fundamental arguments and coefficients in arcseconds.
type cioTerm struct {
	args [8]float64
	s, c float64
}

// cioPolynomial holds the polynomial part of the s series in arcseconds
// per power of t.
var cioPolynomial = [6]float64{
	94.00e-6,
	3808.65e-6,
	-122.68e-6,
	-72574.11e-6,
	27.98e-6,
	15.62e-6,
}

var cioTermsOrder0 = [33]cioTerm{
	{[8]float64{0, 0, 0, 0, 1, 0, 0, 0}, -2640.73e-6, 0.39e-6},
	{[8]float64{0, 0, 0, 0, 2, 0, 0, 0}, -63.53e-6, 0.02e-6},
	{[8]float64{0, 0, 2, -2, 3, 0, 0, 0}, -11.75e-6, -0.01e-6},
	{[8]float64{0, 0, 2, -2, 1, 0, 0, 0}, -11.21e-6, -0.01e-6},
	{[8]float64{0, 0, 2, -2, 2, 0, 0, 0}, 4.57e-6, 0.00e-6},
	{[8]float64{0, 0, 2, 0, 3, 0, 0, 0}, -2.02e-6, 0.00e-6},
	{[8]float64{0, 0, 2, 0, 1, 0, 0, 0}, -1.98e-6, 0.00e-6},
	{[8]float64{0, 0, 0, 0, 3, 0, 0, 0}, 1.72e-6, 0.00e-6},
	{[8]float64{0, 1, 0, 0, 1, 0, 0, 0}, 1.41e-6, 0.01e-6},
	{[8]float64{0, 1, 0, 0, -1, 0, 0, 0}, 1.26e-6, 0.01e-6},
	{[8]float64{1, 0, 0, 0, -1, 0, 0, 0}, 0.63e-6, 0.00e-6},
	{[8]float64{1, 0, 0, 0, 1, 0, 0, 0}, 0.63e-6, 0.00e-6},
	{[8]float64{0, 1, 2, -2, 3, 0, 0, 0}, -0.46e-6, 0.00e-6},
	{[8]float64{0, 1, 2, -2, 1, 0, 0, 0}, -0.45e-6, 0.00e-6},
	{[8]float64{0, 0, 4, -4, 4, 0, 0, 0}, -0.36e-6, 0.00e-6},
	{[8]float64{0, 0, 1, -1, 1, -8, 12, 0}, 0.24e-6, 0.12e-6},
	{[8]float64{0, 0, 2, 0, 0, 0, 0, 0}, -0.32e-6, 0.00e-6},
	{[8]float64{0, 0, 2, 0, 2, 0, 0, 0}, -0.28e-6, 0.00e-6},
	{[8]float64{1, 0, 2, 0, 3, 0, 0, 0}, -0.27e-6, 0.00e-6},
	{[8]float64{1, 0, 2, 0, 1, 0, 0, 0}, -0.26e-6, 0.00e-6},
	{[8]float64{0, 0, 2, -2, 0, 0, 0, 0}, 0.21e-6, 0.00e-6},
	{[8]float64{0, 1, -2, 2, -3, 0, 0, 0}, -0.19e-6, 0.00e-6},
	{[8]float64{0, 1, -2, 2, -1, 0, 0, 0}, -0.18e-6, 0.00e-6},
	{[8]float64{0, 0, 0, 0, 0, 8, -13, -1}, 0.10e-6, -0.05e-6},
	{[8]float64{0, 0, 0, 2, 0, 0, 0, 0}, -0.15e-6, 0.00e-6},
	{[8]float64{2, 0, -2, 0, -1, 0, 0, 0}, 0.14e-6, 0.00e-6},
	{[8]float64{0, 1, 2, -2, 2, 0, 0, 0}, 0.14e-6, 0.00e-6},
	{[8]float64{1, 0, 0, -2, 1, 0, 0, 0}, -0.14e-6, 0.00e-6},
	{[8]float64{1, 0, 0, -2, -1, 0, 0, 0}, -0.14e-6, 0.00e-6},
	{[8]float64{0, 0, 4, -2, 4, 0, 0, 0}, -0.13e-6, 0.00e-6},
	{[8]float64{0, 0, 2, -2, 4, 0, 0, 0}, 0.11e-6, 0.00e-6},
	{[8]float64{1, 0, -2, 0, -3, 0, 0, 0}, -0.11e-6, 0.00e-6},
	{[8]float64{1, 0, -2, 0, -1, 0, 0, 0}, -0.11e-6, 0.00e-6},
}

var cioTermsOrder1 = [3]cioTerm{
	{[8]float64{0, 0, 0, 0, 2, 0, 0, 0}, -0.07e-6, 3.57e-6},
	{[8]float64{0, 0, 0, 0, 1, 0, 0, 0}, 1.73e-6, -0.03e-6},
	{[8]float64{0, 0, 2, -2, 3, 0, 0, 0}, 0.00e-6, 0.48e-6},
}

var cioTermsOrder2 = [25]cioTerm{
	{[8]float64{0, 0, 0, 0, 1, 0, 0, 0}, 743.52e-6, -0.17e-6},
	{[8]float64{0, 0, 2, -2, 2, 0, 0, 0}, 56.91e-6, 0.06e-6},
	{[8]float64{0, 0, 2, 0, 2, 0, 0, 0}, 9.84e-6, -0.01e-6},
	{[8]float64{0, 0, 0, 0, 2, 0, 0, 0}, -8.85e-6, 0.01e-6},
	{[8]float64{0, 1, 0, 0, 0, 0, 0, 0}, -6.38e-6, -0.05e-6},
	{[8]float64{1, 0, 0, 0, 0, 0, 0, 0}, -3.07e-6, 0.00e-6},
	{[8]float64{0, 1, 2, -2, 2, 0, 0, 0}, 2.23e-6, 0.00e-6},
	{[8]float64{0, 0, 2, 0, 1, 0, 0, 0}, 1.67e-6, 0.00e-6},
	{[8]float64{1, 0, 2, 0, 2, 0, 0, 0}, 1.30e-6, 0.00e-6},
	{[8]float64{0, 1, -2, 2, -2, 0, 0, 0}, 0.93e-6, 0.00e-6},
	{[8]float64{1, 0, 0, -2, 0, 0, 0, 0}, 0.68e-6, 0.00e-6},
	{[8]float64{0, 0, 2, -2, 1, 0, 0, 0}, -0.55e-6, 0.00e-6},
	{[8]float64{1, 0, -2, 0, -2, 0, 0, 0}, 0.53e-6, 0.00e-6},
	{[8]float64{0, 0, 0, 2, 0, 0, 0, 0}, -0.27e-6, 0.00e-6},
	{[8]float64{1, 0, 0, 0, 1, 0, 0, 0}, -0.27e-6, 0.00e-6},
	{[8]float64{1, 0, -2, -2, -2, 0, 0, 0}, -0.26e-6, 0.00e-6},
	{[8]float64{1, 0, 0, 0, -1, 0, 0, 0}, -0.25e-6, 0.00e-6},
	{[8]float64{1, 0, 2, 0, 1, 0, 0, 0}, 0.22e-6, 0.00e-6},
	{[8]float64{2, 0, 0, -2, 0, 0, 0, 0}, -0.21e-6, 0.00e-6},
	{[8]float64{2, 0, -2, 0, -1, 0, 0, 0}, 0.20e-6, 0.00e-6},
	{[8]float64{0, 0, 2, 2, 2, 0, 0, 0}, 0.17e-6, 0.00e-6},
	{[8]float64{2, 0, 2, 0, 2, 0, 0, 0}, 0.13e-6, 0.00e-6},
	{[8]float64{2, 0, 0, 0, 0, 0, 0, 0}, -0.13e-6, 0.00e-6},
	{[8]float64{1, 0, 2, -2, 2, 0, 0, 0}, -0.12e-6, 0.00e-6},
	{[8]float64{0, 0, 2, 0, 0, 0, 0, 0}, -0.11e-6, 0.00e-6},
}

var cioTermsOrder3 = [4]cioTerm{
	{[8]float64{0, 0, 0, 0, 1, 0, 0, 0}, 0.30e-6, -23.42e-6},
	{[8]float64{0, 0, 2, -2, 2, 0, 0, 0}, -0.03e-6, -1.46e-6},
	{[8]float64{0, 0, 2, 0, 2, 0, 0, 0}, -0.01e-6, -0.25e-6},
	{[8]float64{0, 0, 0, 0, 2, 0, 0, 0}, 0.00e-6, 0.23e-6},
}

var cioTermsOrder4 = [1]cioTerm{
	{[8]float64{0, 0, 0, 0, 1, 0, 0, 0}, -0.26e-6, -0.01e-6},
}
