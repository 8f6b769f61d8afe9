package earth

import (
	"gonum.org/v1/gonum/mat"

	"github.com/soniakeys/meeus/v3/base"

	"github.com/litescript/ls-astro/astrotime"
	"github.com/litescript/ls-astro/units"
)

const (
	dPsiBias = units.Angle(-0.041775 * units.RadiansInArcsecond)
	dEpsBias = units.Angle(-0.0068192 * units.RadiansInArcsecond)
	dRA0     = units.Angle(-0.0146 * units.RadiansInArcsecond)

	// eps0 is the J2000 mean obliquity of the IAU 1976 precession model.
	eps0 = units.Angle(84381.448 * units.RadiansInArcsecond)

	precor = units.Angle(-0.29965 * units.RadiansInArcsecond)
	oblcor = units.Angle(-0.02524 * units.RadiansInArcsecond)
)

// Precession returns the precession angles of the reference system's
// precession model at a TT instant.
func (s ReferenceSystem) Precession(tt astrotime.Time) PrecessionAngles {
	switch s {
	case Iers1996:
		return PrecessionIAU1976(tt)
	case Iers2003A, Iers2003B:
		return PrecessionIAU2000(tt)
	default:
		return PrecessionIAU2006(tt)
	}
}

// BiasPrecessionMatrix returns the rotation from the ICRF to the
// mean-of-date frame at a TT instant.
func (s ReferenceSystem) BiasPrecessionMatrix(tt astrotime.Time) *mat.Dense {
	return s.Precession(tt).Matrix()
}

// PrecessionAngles is the parameterization of a precession model,
// convertible into a bias-precession matrix.
type PrecessionAngles interface {
	Matrix() *mat.Dense
}

// PrecessionAngles1976 holds the equatorial precession angles of the
// IAU 1976 model.
type PrecessionAngles1976 struct {
	Zeta  units.Angle
	Z     units.Angle
	Theta units.Angle
}

// PrecessionIAU1976 returns the IAU 1976 precession angles at a TT
// instant.
func PrecessionIAU1976(tt astrotime.Time) PrecessionAngles1976 {
	t := tt.CenturiesSinceJ2000()
	return PrecessionAngles1976{
		Zeta:  units.Arcseconds(t * base.Horner(t, 2306.2181, 0.30188, 0.017998)),
		Z:     units.Arcseconds(t * base.Horner(t, 2306.2181, 1.09468, 0.018203)),
		Theta: units.Arcseconds(t * base.Horner(t, 2004.3109, -0.42665, -0.041833)),
	}
}

// Matrix returns the IAU 1976 bias-precession matrix, including the frame
// bias between the ICRF and the J2000 mean equator and equinox.
func (p PrecessionAngles1976) Matrix() *mat.Dense {
	return mulAll(R3(-p.Z), R2(p.Theta), R3(-p.Zeta), FrameBias())
}

// PrecessionAngles2000 holds the Lieske et al. (1977) precession angles
// with the IAU 2000 rate corrections applied.
type PrecessionAngles2000 struct {
	PsiA   units.Angle
	OmegaA units.Angle
	ChiA   units.Angle
}

// PrecessionIAU2000 returns the IAU 2000 precession angles at a TT
// instant.
func PrecessionIAU2000(tt astrotime.Time) PrecessionAngles2000 {
	t := tt.CenturiesSinceJ2000()
	psia77 := units.Arcseconds(base.Horner(t, 0, 5038.7784, -1.07259, -0.001147))
	oma77 := eps0 + units.Arcseconds(base.Horner(t, 0, 0, 0.05127, -0.007726))
	chia := units.Arcseconds(base.Horner(t, 0, 10.5526, -2.38064, -0.001125))

	corr := PrecessionCorrectionsIAU2000(tt)
	return PrecessionAngles2000{
		PsiA:   psia77 + corr.Longitude,
		OmegaA: oma77 + corr.Obliquity,
		ChiA:   chia,
	}
}

// Matrix returns the IAU 2000 bias-precession matrix, including the frame
// bias between the ICRF and the J2000 mean equator and equinox.
func (p PrecessionAngles2000) Matrix() *mat.Dense {
	return mulAll(R3(p.ChiA), R1(-p.OmegaA), R3(-p.PsiA), R1(eps0), FrameBias())
}

// FukushimaWilliamsAngles holds the IAU 2006 bias-precession angles in
// the Fukushima-Williams parameterization, which absorbs the frame bias.
type FukushimaWilliamsAngles struct {
	Gamma   units.Angle
	Phi     units.Angle
	Psi     units.Angle
	Epsilon units.Angle
}

// PrecessionIAU2006 returns the IAU 2006 Fukushima-Williams angles at a
// TT instant.
func PrecessionIAU2006(tt astrotime.Time) FukushimaWilliamsAngles {
	t := tt.CenturiesSinceJ2000()
	return FukushimaWilliamsAngles{
		Gamma: units.Arcseconds(base.Horner(t,
			-0.052928, 10.556378, 0.4932044, -0.00031238, -0.000002788, 0.0000000260)),
		Phi: units.Arcseconds(base.Horner(t,
			84381.412819, -46.811016, 0.0511268, 0.00053289, -0.000000440, -0.0000000176)),
		Psi: units.Arcseconds(base.Horner(t,
			-0.041775, 5038.481484, 1.5584175, -0.00018522, -0.000026452, -0.0000000148)),
		Epsilon: MeanObliquityIAU2006(tt),
	}
}

// Matrix returns the IAU 2006 bias-precession matrix.
func (p FukushimaWilliamsAngles) Matrix() *mat.Dense {
	return mulAll(R1(-p.Epsilon), R3(-p.Psi), R1(p.Phi), R3(p.Gamma))
}

// FrameBias returns the fixed rotation from the ICRF to the J2000 mean
// equator and equinox.
func FrameBias() *mat.Dense {
	return mulAll(
		R1(-dEpsBias),
		R2(units.Radians(eps0.Sin()*dPsiBias.ToRadians())),
		R3(dRA0),
	)
}

// PrecessionCorrections holds the IAU 2000 corrections to the precession
// rates in longitude and obliquity.
type PrecessionCorrections struct {
	Longitude units.Angle
	Obliquity units.Angle
}

// PrecessionCorrectionsIAU2000 returns the accumulated IAU 2000
// precession-rate corrections at a TT instant.
func PrecessionCorrectionsIAU2000(tt astrotime.Time) PrecessionCorrections {
	t := tt.CenturiesSinceJ2000()
	return PrecessionCorrections{
		Longitude: units.Radians(t * precor.ToRadians()),
		Obliquity: units.Radians(t * oblcor.ToRadians()),
	}
}
