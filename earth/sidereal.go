package earth

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/soniakeys/meeus/v3/base"

	"github.com/litescript/ls-astro/astrotime"
	"github.com/litescript/ls-astro/units"
)

// EarthRotation returns the rotation from the true-of-date frame to the
// pseudo-Earth-fixed frame, a single rotation about the pole through
// Greenwich apparent sidereal time.
func (s ReferenceSystem) EarthRotation(tt, ut1 astrotime.Time, corr Corrections) *mat.Dense {
	return R3(s.GAST(tt, ut1, corr))
}

// GMST returns Greenwich mean sidereal time under the reference system's
// model.
func (s ReferenceSystem) GMST(tt, ut1 astrotime.Time) units.Angle {
	switch s {
	case Iers1996:
		return GMSTIAU1982(ut1)
	case Iers2003A, Iers2003B:
		return GMSTIAU2000(tt, ut1)
	}
	return GMSTIAU2006(tt, ut1)
}

// GAST returns Greenwich apparent sidereal time under the reference
// system's model. Nonzero EOP corrections are folded into the nutation in
// longitude before forming the equation of the equinoxes.
func (s ReferenceSystem) GAST(tt, ut1 astrotime.Time, corr Corrections) units.Angle {
	if corr.IsZero() {
		switch s {
		case Iers1996:
			return GASTIAU1994(ut1)
		case Iers2003A:
			return GASTIAU2000A(tt, ut1)
		case Iers2003B:
			return GASTIAU2000B(tt, ut1)
		}
		return GASTIAU2006A(tt, ut1)
	}
	gmst := s.GMST(tt, ut1)
	tdb := tt.WithScale(astrotime.TDB)
	rpb := s.BiasPrecessionMatrix(tt)
	epsa := s.MeanObliquity(tt)
	nut := s.Nutation(tdb)
	ecl := s.EclipticCorrections(corr, nut, epsa, rpb)
	nut.Longitude += ecl.X
	nut.Obliquity += ecl.Y
	if s == Iers1996 {
		ee := EquationOfEquinoxesIAU1994(tdb)
		return (gmst + ee + units.Radians(epsa.Cos()*ecl.X.ToRadians())).ModTwoPi()
	}
	ee := EquationOfEquinoxesIAU2000(tt, epsa, nut.Longitude)
	return (gmst + ee).ModTwoPi()
}

// EarthRotationAngle returns the Earth rotation angle θ at a UT1 instant
// per the IAU 2000 definition.
func EarthRotationAngle(ut1 astrotime.Time) units.Angle {
	d := ut1.DaysSinceJ2000()
	f := d - math.Floor(d)
	return units.Radians(2 * math.Pi * (f + 0.7790572732640 + 0.00273781191135448*d)).ModTwoPi()
}

// Coefficients of the IAU 1982 GMST-UT1 model, in seconds of time.
const (
	gmst82A = 24110.54841 - astrotime.SecondsPerDay/2
	gmst82B = 8640184.812866
	gmst82C = 0.093104
	gmst82D = -6.2e-6
)

// GMSTIAU1982 returns Greenwich mean sidereal time under the IAU 1982
// model.
func GMSTIAU1982(ut1 astrotime.Time) units.Angle {
	t := ut1.CenturiesSinceJ2000()
	d := ut1.DaysSinceJ2000()
	f := (d - math.Floor(d)) * astrotime.SecondsPerDay
	return units.HourMinSec(0, 0, base.Horner(t, gmst82A, gmst82B, gmst82C, gmst82D)+f).ModTwoPi()
}

// GMSTIAU2000 returns Greenwich mean sidereal time under the IAU 2000
// model, the Earth rotation angle plus the accumulated precession of the
// equinox in right ascension.
func GMSTIAU2000(tt, ut1 astrotime.Time) units.Angle {
	t := tt.CenturiesSinceJ2000()
	return EarthRotationAngle(ut1) + units.Arcseconds(base.Horner(t,
		0.014506, 4612.15739966, 1.39667721, -0.00009344, 0.00001882)).ModTwoPi()
}

// GMSTIAU2006 returns Greenwich mean sidereal time consistent with the
// IAU 2006 precession model.
func GMSTIAU2006(tt, ut1 astrotime.Time) units.Angle {
	t := tt.CenturiesSinceJ2000()
	return EarthRotationAngle(ut1) + units.Arcseconds(base.Horner(t,
		0.014506, 4612.156534, 1.3915817, -0.00000044, -0.000029956, -0.0000000368)).ModTwoPi()
}

// GASTIAU1994 returns Greenwich apparent sidereal time under the IAU 1994
// resolutions.
func GASTIAU1994(ut1 astrotime.Time) units.Angle {
	return (GMSTIAU1982(ut1) + EquationOfEquinoxesIAU1994(ut1.WithScale(astrotime.TDB))).ModTwoPi()
}

// GASTIAU2000A returns Greenwich apparent sidereal time consistent with
// the IAU 2000A nutation model.
func GASTIAU2000A(tt, ut1 astrotime.Time) units.Angle {
	return (GMSTIAU2000(tt, ut1) + EquationOfEquinoxesIAU2000A(tt)).ModTwoPi()
}

// GASTIAU2000B returns Greenwich apparent sidereal time consistent with
// the truncated IAU 2000B nutation model.
func GASTIAU2000B(tt, ut1 astrotime.Time) units.Angle {
	return (GMSTIAU2000(tt, ut1) + EquationOfEquinoxesIAU2000B(tt)).ModTwoPi()
}

// GASTIAU2006A returns Greenwich apparent sidereal time consistent with
// IAU 2006 precession and IAU 2006A nutation.
func GASTIAU2006A(tt, ut1 astrotime.Time) units.Angle {
	return (GMSTIAU2006(tt, ut1) + EquationOfEquinoxesIAU2006A(tt)).ModTwoPi()
}

// EquationOfEquinoxesIAU1994 returns the equation of the equinoxes per
// the IAU 1994 resolution, including the two largest complementary
// terms.
func EquationOfEquinoxesIAU1994(tdb astrotime.Time) units.Angle {
	t := tdb.CenturiesSinceJ2000()
	om := (units.Arcseconds(base.Horner(t, 450160.280, -482890.539, 7.455, 0.008)) +
		units.Radians(rem1(-5.0*t)*2*math.Pi)).ModTwoPi()
	dpsi := NutationIAU1980(tdb).Longitude
	eps0 := MeanObliquityIAU1980(tdb.WithScale(astrotime.TT))
	return units.Radians(eps0.Cos()*dpsi.ToRadians()) +
		units.Arcseconds(0.00264*om.Sin()+0.000063*(om+om).Sin())
}

// EquationOfEquinoxesIAU2000A returns the equation of the equinoxes
// consistent with the IAU 2000A nutation model.
func EquationOfEquinoxesIAU2000A(tt astrotime.Time) units.Angle {
	epsa := MeanObliquityIAU1980(tt) + PrecessionCorrectionsIAU2000(tt).Obliquity
	dpsi := NutationIAU2000A(tt.WithScale(astrotime.TDB)).Longitude
	return EquationOfEquinoxesIAU2000(tt, epsa, dpsi)
}

// EquationOfEquinoxesIAU2000B returns the equation of the equinoxes
// consistent with the truncated IAU 2000B nutation model.
func EquationOfEquinoxesIAU2000B(tt astrotime.Time) units.Angle {
	epsa := MeanObliquityIAU1980(tt) + PrecessionCorrectionsIAU2000(tt).Obliquity
	dpsi := NutationIAU2000B(tt.WithScale(astrotime.TDB)).Longitude
	return EquationOfEquinoxesIAU2000(tt, epsa, dpsi)
}

// EquationOfEquinoxesIAU2006A returns the equation of the equinoxes
// consistent with IAU 2006 precession and IAU 2006A nutation.
func EquationOfEquinoxesIAU2006A(tt astrotime.Time) units.Angle {
	epsa := MeanObliquityIAU2006(tt)
	dpsi := NutationIAU2006A(tt.WithScale(astrotime.TDB)).Longitude
	return EquationOfEquinoxesIAU2000(tt, epsa, dpsi)
}

// EquationOfEquinoxesIAU2000 returns the equation of the equinoxes for a
// given mean obliquity and nutation in longitude, with the IAU 2000
// complementary terms.
func EquationOfEquinoxesIAU2000(tt astrotime.Time, epsa, dpsi units.Angle) units.Angle {
	return units.Radians(epsa.Cos()*dpsi.ToRadians()) + complementaryTermsIAU2000(tt)
}

func complementaryTermsIAU2000(tt astrotime.Time) units.Angle {
	t := tt.CenturiesSinceJ2000()

	fa := [8]float64{
		MoonMeanAnomalyIERS03(t).ToRadians(),
		SunMeanAnomalyIERS03(t).ToRadians(),
		MoonArgumentOfLatitudeIERS03(t).ToRadians(),
		MoonSunElongationIERS03(t).ToRadians(),
		MoonAscendingNodeIERS03(t).ToRadians(),
		VenusMeanLongitudeIERS03(t).ToRadians(),
		EarthMeanLongitudeIERS03(t).ToRadians(),
		GeneralPrecessionIERS03(t).ToRadians(),
	}

	var s0, s1 float64
	for i := len(eeTermsE0) - 1; i >= 0; i-- {
		term := &eeTermsE0[i]
		var a float64
		for j, n := range term.nfa {
			a += float64(n) * fa[j]
		}
		sa, ca := math.Sincos(a)
		s0 = s0 + term.s*sa + term.c*ca
	}
	for i := len(eeTermsE1) - 1; i >= 0; i-- {
		term := &eeTermsE1[i]
		var a float64
		for j, n := range term.nfa {
			a += float64(n) * fa[j]
		}
		sa, ca := math.Sincos(a)
		s1 = s1 + term.s*sa + term.c*ca
	}

	return units.Arcseconds(s0 + s1*t)
}

// rem1 returns the non-negative fractional part of x.
func rem1(x float64) float64 {
	return x - math.Floor(x)
}

// eeTerm holds one complementary term of the IAU 2000 equation of the
// equinoxes: integer multipliers of the eight fundamental arguments
// l, l', F, D, Ω, L_Ve, L_E, p_A and coefficients in arcseconds.
type eeTerm struct {
	nfa  [8]int
	s, c float64
}

var eeTermsE0 = [33]eeTerm{
	{[8]int{0, 0, 0, 0, 1, 0, 0, 0}, 2640.96e-6, -0.39e-6},
	{[8]int{0, 0, 0, 0, 2, 0, 0, 0}, 63.52e-6, -0.02e-6},
	{[8]int{0, 0, 2, -2, 3, 0, 0, 0}, 11.75e-6, 0.01e-6},
	{[8]int{0, 0, 2, -2, 1, 0, 0, 0}, 11.21e-6, 0.01e-6},
	{[8]int{0, 0, 2, -2, 2, 0, 0, 0}, -4.55e-6, 0.00e-6},
	{[8]int{0, 0, 2, 0, 3, 0, 0, 0}, 2.02e-6, 0.00e-6},
	{[8]int{0, 0, 2, 0, 1, 0, 0, 0}, 1.98e-6, 0.00e-6},
	{[8]int{0, 0, 0, 0, 3, 0, 0, 0}, -1.72e-6, 0.00e-6},
	{[8]int{0, 1, 0, 0, 1, 0, 0, 0}, -1.41e-6, -0.01e-6},
	{[8]int{0, 1, 0, 0, -1, 0, 0, 0}, -1.26e-6, -0.01e-6},
	{[8]int{1, 0, 0, 0, -1, 0, 0, 0}, -0.63e-6, 0.00e-6},
	{[8]int{1, 0, 0, 0, 1, 0, 0, 0}, -0.63e-6, 0.00e-6},
	{[8]int{0, 1, 2, -2, 3, 0, 0, 0}, 0.46e-6, 0.00e-6},
	{[8]int{0, 1, 2, -2, 1, 0, 0, 0}, 0.45e-6, 0.00e-6},
	{[8]int{0, 0, 4, -4, 4, 0, 0, 0}, 0.36e-6, 0.00e-6},
	{[8]int{0, 0, 1, -1, 1, -8, 12, 0}, -0.24e-6, -0.12e-6},
	{[8]int{0, 0, 2, 0, 0, 0, 0, 0}, 0.32e-6, 0.00e-6},
	{[8]int{0, 0, 2, 0, 2, 0, 0, 0}, 0.28e-6, 0.00e-6},
	{[8]int{1, 0, 2, 0, 3, 0, 0, 0}, 0.27e-6, 0.00e-6},
	{[8]int{1, 0, 2, 0, 1, 0, 0, 0}, 0.26e-6, 0.00e-6},
	{[8]int{0, 0, 2, -2, 0, 0, 0, 0}, -0.21e-6, 0.00e-6},
	{[8]int{0, 1, -2, 2, -3, 0, 0, 0}, 0.19e-6, 0.00e-6},
	{[8]int{0, 1, -2, 2, -1, 0, 0, 0}, 0.18e-6, 0.00e-6},
	{[8]int{0, 0, 0, 0, 0, 8, -13, -1}, -0.10e-6, 0.05e-6},
	{[8]int{0, 0, 0, 2, 0, 0, 0, 0}, 0.15e-6, 0.00e-6},
	{[8]int{2, 0, -2, 0, -1, 0, 0, 0}, -0.14e-6, 0.00e-6},
	{[8]int{1, 0, 0, -2, 1, 0, 0, 0}, 0.14e-6, 0.00e-6},
	{[8]int{0, 1, 2, -2, 2, 0, 0, 0}, -0.14e-6, 0.00e-6},
	{[8]int{1, 0, 0, -2, -1, 0, 0, 0}, 0.14e-6, 0.00e-6},
	{[8]int{0, 0, 4, -2, 4, 0, 0, 0}, 0.13e-6, 0.00e-6},
	{[8]int{0, 0, 2, -2, 4, 0, 0, 0}, -0.11e-6, 0.00e-6},
	{[8]int{1, 0, -2, 0, -3, 0, 0, 0}, 0.11e-6, 0.00e-6},
	{[8]int{1, 0, -2, 0, -1, 0, 0, 0}, 0.11e-6, 0.00e-6},
}

var eeTermsE1 = [1]eeTerm{
	{[8]int{0, 0, 0, 0, 1, 0, 0, 0}, -0.87e-6, 0.00e-6},
}
