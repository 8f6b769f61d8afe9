package earth

import (
	"math"

	"github.com/soniakeys/meeus/v3/base"

	"github.com/litescript/ls-astro/astrotime"
	"github.com/litescript/ls-astro/units"
)

// nut1980Term holds one term of the IAU 1980 nutation series: integer
// multipliers of the Delaunay arguments and coefficients in units of 0.1
// milliarcseconds.
type nut1980Term struct {
	l, lp, f, d, om                  float64
	sinPsi, sinPsiT, cosEps, cosEpsT float64
}

// NutationIAU1980 returns the IAU 1980 nutation components at a TDB
// instant.
func NutationIAU1980(tdb astrotime.Time) Nutation {
	t := tdb.CenturiesSinceJ2000()
	l := delaunay1980(t, 1325, 485866.733, 715922.633, 31.31, 0.064)
	lp := delaunay1980(t, 99, 1287099.804, 1292581.224, -0.577, -0.012)
	f := delaunay1980(t, 1342, 335778.877, 295263.137, -13.257, 0.011)
	d := delaunay1980(t, 1236, 1072261.307, 1105601.328, -6.891, 0.019)
	om := delaunay1980(t, -5, 450160.280, -482890.539, 7.455, 0.008)

	var dpsi, deps float64
	// The table is ordered by descending magnitude; fold the smallest
	// terms first.
	for i := len(nut1980Terms) - 1; i >= 0; i-- {
		term := &nut1980Terms[i]
		arg := term.l*l + term.lp*lp + term.f*f + term.d*d + term.om*om
		sin, cos := math.Sincos(arg)
		dpsi += (term.sinPsi + term.sinPsiT*t) * sin
		deps += (term.cosEps + term.cosEpsT*t) * cos
	}
	return Nutation{
		Longitude: units.Milliarcseconds(dpsi * 0.1),
		Obliquity: units.Milliarcseconds(deps * 0.1),
	}
}

// delaunay1980 evaluates a 1980-series Delaunay argument in radians from
// its arcsecond polynomial and whole-revolution rate, normalized to
// [-π, π).
func delaunay1980(t, revs float64, coeffs ...float64) float64 {
	poly := units.Arcseconds(base.Horner(t, coeffs...))
	rev := units.Radians(math.Mod(revs*t, 1) * (2 * math.Pi))
	return (poly + rev).NormalizeTwoPi(0).ToRadians()
}

var nut1980Terms = [106]nut1980Term{
	{0, 0, 0, 0, 1, -171996, -174.2, 92025, 8.9},
	{0, 0, 0, 0, 2, 2062, 0.2, -895, 0.5},
	{-2, 0, 2, 0, 1, 46, 0, -24, 0},
	{2, 0, -2, 0, 0, 11, 0, 0, 0},
	{-2, 0, 2, 0, 2, -3, 0, 1, 0},
	{1, -1, 0, -1, 0, -3, 0, 0, 0},
	{0, -2, 2, -2, 1, -2, 0, 1, 0},
	{2, 0, -2, 0, 1, 1, 0, 0, 0},
	{0, 0, 2, -2, 2, -13187, -1.6, 5736, -3.1},
	{0, 1, 0, 0, 0, 1426, -3.4, 54, -0.1},
	{0, 1, 2, -2, 2, -517, 1.2, 224, -0.6},
	{0, -1, 2, -2, 2, 217, -0.5, -95, 0.3},
	{0, 0, 2, -2, 1, 129, 0.1, -70, 0},
	{2, 0, 0, -2, 0, 48, 0, 1, 0},
	{0, 0, 2, -2, 0, -22, 0, 0, 0},
	{0, 2, 0, 0, 0, 17, -0.1, 0, 0},
	{0, 1, 0, 0, 1, -15, 0, 9, 0},
	{0, 2, 2, -2, 2, -16, 0.1, 7, 0},
	{0, -1, 0, 0, 1, -12, 0, 6, 0},
	{-2, 0, 0, 2, 1, -6, 0, 3, 0},
	{0, -1, 2, -2, 1, -5, 0, 3, 0},
	{2, 0, 0, -2, 1, 4, 0, -2, 0},
	{0, 1, 2, -2, 1, 4, 0, -2, 0},
	{1, 0, 0, -1, 0, -4, 0, 0, 0},
	{2, 1, 0, -2, 0, 1, 0, 0, 0},
	{0, 0, -2, 2, 1, 1, 0, 0, 0},
	{0, 1, -2, 2, 0, -1, 0, 0, 0},
	{0, 1, 0, 0, 2, 1, 0, 0, 0},
	{-1, 0, 0, 1, 1, 1, 0, 0, 0},
	{0, 1, 2, -2, 0, -1, 0, 0, 0},
	{0, 0, 2, 0, 2, -2274, -0.2, 977, -0.5},
	{1, 0, 0, 0, 0, 712, 0.1, -7, 0},
	{0, 0, 2, 0, 1, -386, -0.4, 200, 0},
	{1, 0, 2, 0, 2, -301, 0, 129, -0.1},
	{1, 0, 0, -2, 0, -158, 0, -1, 0},
	{-1, 0, 2, 0, 2, 123, 0, -53, 0},
	{0, 0, 0, 2, 0, 63, 0, -2, 0},
	{1, 0, 0, 0, 1, 63, 0.1, -33, 0},
	{-1, 0, 0, 0, 1, -58, -0.1, 32, 0},
	{-1, 0, 2, 2, 2, -59, 0, 26, 0},
	{1, 0, 2, 0, 1, -51, 0, 27, 0},
	{0, 0, 2, 2, 2, -38, 0, 16, 0},
	{2, 0, 0, 0, 0, 29, 0, -1, 0},
	{1, 0, 2, -2, 2, 29, 0, -12, 0},
	{2, 0, 2, 0, 2, -31, 0, 13, 0},
	{0, 0, 2, 0, 0, 26, 0, -1, 0},
	{-1, 0, 2, 0, 1, 21, 0, -10, 0},
	{-1, 0, 0, 2, 1, 16, 0, -8, 0},
	{1, 0, 0, -2, 1, -13, 0, 7, 0},
	{-1, 0, 2, 2, 1, -10, 0, 5, 0},
	{1, 1, 0, -2, 0, -7, 0, 0, 0},
	{0, 1, 2, 0, 2, 7, 0, -3, 0},
	{0, -1, 2, 0, 2, -7, 0, 3, 0},
	{1, 0, 2, 2, 2, -8, 0, 3, 0},
	{1, 0, 0, 2, 0, 6, 0, 0, 0},
	{2, 0, 2, -2, 2, 6, 0, -3, 0},
	{0, 0, 0, 2, 1, -6, 0, 3, 0},
	{0, 0, 2, 2, 1, -7, 0, 3, 0},
	{1, 0, 2, -2, 1, 6, 0, -3, 0},
	{0, 0, 0, -2, 1, -5, 0, 3, 0},
	{1, -1, 0, 0, 0, 5, 0, 0, 0},
	{2, 0, 2, 0, 1, -5, 0, 3, 0},
	{0, 1, 0, -2, 0, -4, 0, 0, 0},
	{1, 0, -2, 0, 0, 4, 0, 0, 0},
	{0, 0, 0, 1, 0, -4, 0, 0, 0},
	{1, 1, 0, 0, 0, -3, 0, 0, 0},
	{1, 0, 2, 0, 0, 3, 0, 0, 0},
	{1, -1, 2, 0, 2, -3, 0, 1, 0},
	{-1, -1, 2, 2, 2, -3, 0, 1, 0},
	{-2, 0, 0, 0, 1, -2, 0, 1, 0},
	{3, 0, 2, 0, 2, -3, 0, 1, 0},
	{0, -1, 2, 2, 2, -3, 0, 1, 0},
	{1, 1, 2, 0, 2, 2, 0, -1, 0},
	{-1, 0, 2, -2, 1, -2, 0, 1, 0},
	{2, 0, 0, 0, 1, 2, 0, -1, 0},
	{1, 0, 0, 0, 2, -2, 0, 1, 0},
	{3, 0, 0, 0, 0, 2, 0, 0, 0},
	{0, 0, 2, 1, 2, 2, 0, -1, 0},
	{-1, 0, 0, 0, 2, 1, 0, -1, 0},
	{1, 0, 0, -4, 0, -1, 0, 0, 0},
	{-2, 0, 2, 2, 2, 1, 0, -1, 0},
	{-1, 0, 2, 4, 2, -2, 0, 1, 0},
	{2, 0, 0, -4, 0, -1, 0, 0, 0},
	{1, 1, 2, -2, 2, 1, 0, -1, 0},
	{1, 0, 2, 2, 1, -1, 0, 1, 0},
	{-2, 0, 2, 4, 2, -1, 0, 1, 0},
	{-1, 0, 4, 0, 2, 1, 0, 0, 0},
	{1, -1, 0, -2, 0, 1, 0, 0, 0},
	{2, 0, 2, -2, 1, 1, 0, -1, 0},
	{2, 0, 2, 2, 2, -1, 0, 0, 0},
	{1, 0, 0, 2, 1, -1, 0, 0, 0},
	{0, 0, 4, -2, 2, 1, 0, 0, 0},
	{3, 0, 2, -2, 2, 1, 0, 0, 0},
	{1, 0, 2, -2, 0, -1, 0, 0, 0},
	{0, 1, 2, 0, 1, 1, 0, 0, 0},
	{-1, -1, 0, 2, 1, 1, 0, 0, 0},
	{0, 0, -2, 0, 1, -1, 0, 0, 0},
	{0, 0, 2, -1, 2, -1, 0, 0, 0},
	{0, 1, 0, 2, 0, -1, 0, 0, 0},
	{1, 0, -2, -2, 0, -1, 0, 0, 0},
	{0, -1, 2, 0, 1, -1, 0, 0, 0},
	{1, 1, 0, -2, 1, -1, 0, 0, 0},
	{1, 0, -2, 2, 0, -1, 0, 0, 0},
	{2, 0, 0, 2, 0, 1, 0, 0, 0},
	{0, 0, 2, 4, 2, -1, 0, 0, 0},
	{0, 1, 0, 1, 0, 1, 0, 0, 0},
}
