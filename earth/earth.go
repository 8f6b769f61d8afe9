// Package earth implements the Earth orientation models of the IERS
// conventions, covering precession, nutation, sidereal rotation and polar
// motion for the 1996, 2003 and 2010 editions.
package earth

import (
	"gonum.org/v1/gonum/mat"

	"github.com/litescript/ls-astro/units"
)

// ReferenceSystem selects an edition of the IERS conventions together
// with its precession and nutation models.
type ReferenceSystem int

const (
	// Iers1996 pairs the IAU 1976 precession model with IAU 1980 nutation.
	Iers1996 ReferenceSystem = iota
	// Iers2003A pairs the IAU 2000 precession corrections with IAU 2000A
	// nutation.
	Iers2003A
	// Iers2003B pairs the IAU 2000 precession corrections with the
	// truncated IAU 2000B nutation model.
	Iers2003B
	// Iers2010 pairs the IAU 2006 precession model with IAU 2006A
	// nutation.
	Iers2010
)

// ReferenceSystems returns all supported reference systems in id order.
func ReferenceSystems() []ReferenceSystem {
	return []ReferenceSystem{Iers1996, Iers2003A, Iers2003B, Iers2010}
}

// ID returns the numeric identifier of the reference system.
func (s ReferenceSystem) ID() int {
	return int(s)
}

// Name returns the canonical name of the reference system.
func (s ReferenceSystem) Name() string {
	switch s {
	case Iers1996:
		return "IERS1996"
	case Iers2003A:
		return "IERS2003/IAU2000A"
	case Iers2003B:
		return "IERS2003/IAU2000B"
	case Iers2010:
		return "IERS2010"
	}
	return "unknown"
}

func (s ReferenceSystem) String() string {
	return s.Name()
}

// is2003 reports whether the system is one of the IERS2003 variants.
func (s ReferenceSystem) is2003() bool {
	return s == Iers2003A || s == Iers2003B
}

// Corrections holds observed corrections to the precession-nutation model
// of a reference system. Under IERS2003 and IERS2010 the components are
// the celestial pole offsets (dX, dY); under IERS1996 they are offsets in
// ecliptic longitude and obliquity (dψ, dε).
type Corrections struct {
	X, Y units.Angle
}

// IsZero reports whether both components vanish.
func (c Corrections) IsZero() bool {
	return c.X == 0 && c.Y == 0
}

// EclipticCorrections expresses EOP corrections as offsets in ecliptic
// longitude and obliquity. Celestial pole offsets are carried into the
// true-of-date basis with the bias-precession-nutation matrix and divided
// by sin ε; IERS1996 corrections are ecliptic already and pass through
// unchanged.
func (s ReferenceSystem) EclipticCorrections(corr Corrections, nut Nutation, epsa units.Angle, rpb *mat.Dense) Corrections {
	if s == Iers1996 {
		return corr
	}
	var rbpn mat.Dense
	rbpn.Mul(nut.Matrix(epsa), rpb)
	var v mat.VecDense
	v.MulVec(&rbpn, mat.NewVecDense(3, []float64{corr.X.ToRadians(), corr.Y.ToRadians(), 0}))
	return Corrections{
		X: units.Radians(v.AtVec(0) / epsa.Sin()),
		Y: units.Radians(v.AtVec(1)),
	}
}
