package earth

import (
	"gonum.org/v1/gonum/mat"

	"github.com/litescript/ls-astro/astrotime"
	"github.com/litescript/ls-astro/units"
)

// Nutation holds nutation components with respect to the ecliptic of
// date.
type Nutation struct {
	// Longitude is the nutation in longitude, δψ.
	Longitude units.Angle
	// Obliquity is the nutation in obliquity, δε.
	Obliquity units.Angle
}

// Add returns the component-wise sum of two nutations.
func (n Nutation) Add(other Nutation) Nutation {
	return Nutation{
		Longitude: n.Longitude + other.Longitude,
		Obliquity: n.Obliquity + other.Obliquity,
	}
}

// Matrix returns the rotation from the mean to the true equator and
// equinox of date, R1(-(ε+δε))·R3(-δψ)·R1(ε).
func (n Nutation) Matrix(epsa units.Angle) *mat.Dense {
	return mulAll(
		R1(-(n.Obliquity + epsa)),
		R3(-n.Longitude),
		R1(epsa),
	)
}

// Nutation returns the nutation components of the reference system's
// model at a TDB instant.
func (s ReferenceSystem) Nutation(tdb astrotime.Time) Nutation {
	switch s {
	case Iers1996:
		return NutationIAU1980(tdb)
	case Iers2003A:
		return NutationIAU2000A(tdb)
	case Iers2003B:
		return NutationIAU2000B(tdb)
	}
	return NutationIAU2006A(tdb)
}

// NutationMatrix returns the rotation from the mean to the true equator
// and equinox of date for the reference system. Under IERS2003 and
// IERS2010 the EOP corrections are folded into the nutation components
// first; IERS1996 applies its corrections at the sidereal-time stage
// instead.
func (s ReferenceSystem) NutationMatrix(tdb astrotime.Time, corr Corrections) *mat.Dense {
	tt := tdb.WithScale(astrotime.TT)
	if s == Iers1996 {
		return s.Nutation(tdb).Matrix(s.MeanObliquity(tt))
	}
	epsa := s.MeanObliquity(tt)
	nut := s.Nutation(tdb)
	rpb := s.BiasPrecessionMatrix(tt)
	ecl := s.EclipticCorrections(corr, nut, epsa, rpb)
	nut.Longitude += ecl.X
	nut.Obliquity += ecl.Y
	return nut.Matrix(epsa)
}
