package earth

import (
	"github.com/soniakeys/meeus/v3/base"

	"github.com/litescript/ls-astro/units"
)

// Fundamental astronomical arguments. Three families are provided: the
// IERS Conventions 2003 expressions, the MHB2000 expressions underlying
// the IAU 2000A nutation series, and the linear Simon et al. (1994)
// expressions used by the truncated IAU 2000B model. All take the time as
// Julian centuries of TDB since J2000 and return angles normalized per
// the source convention.

// MoonMeanAnomalyIERS03 returns the Moon's mean anomaly l.
func MoonMeanAnomalyIERS03(t float64) units.Angle {
	return units.ArcsecondsNormalizedSigned(base.Horner(t,
		485868.249036, 1717915923.2178, 31.8792, 0.051635, -0.00024470))
}

// SunMeanAnomalyIERS03 returns the Sun's mean anomaly l'.
func SunMeanAnomalyIERS03(t float64) units.Angle {
	return units.ArcsecondsNormalizedSigned(base.Horner(t,
		1287104.793048, 129596581.0481, -0.5532, 0.000136, -0.00001149))
}

// MoonArgumentOfLatitudeIERS03 returns the Moon's mean argument of
// latitude F, the mean longitude of the Moon minus the mean longitude of
// its ascending node.
func MoonArgumentOfLatitudeIERS03(t float64) units.Angle {
	return units.ArcsecondsNormalizedSigned(base.Horner(t,
		335779.526232, 1739527262.8478, -12.7512, -0.001037, 0.00000417))
}

// MoonSunElongationIERS03 returns the mean elongation of the Moon from
// the Sun D.
func MoonSunElongationIERS03(t float64) units.Angle {
	return units.ArcsecondsNormalizedSigned(base.Horner(t,
		1072260.703692, 1602961601.2090, -6.3706, 0.006593, -0.00003169))
}

// MoonAscendingNodeIERS03 returns the mean longitude of the Moon's
// ascending node Ω.
func MoonAscendingNodeIERS03(t float64) units.Angle {
	return units.ArcsecondsNormalizedSigned(base.Horner(t,
		450160.398036, -6962890.5431, 7.4722, 0.007702, -0.00005939))
}

// MercuryMeanLongitudeIERS03 returns Mercury's mean longitude.
func MercuryMeanLongitudeIERS03(t float64) units.Angle {
	return units.Radians(4.402608842 + 2608.7903141574*t).ModTwoPiSigned()
}

// VenusMeanLongitudeIERS03 returns Venus's mean longitude.
func VenusMeanLongitudeIERS03(t float64) units.Angle {
	return units.Radians(3.176146697 + 1021.3285546211*t).ModTwoPiSigned()
}

// EarthMeanLongitudeIERS03 returns Earth's mean longitude.
func EarthMeanLongitudeIERS03(t float64) units.Angle {
	return units.Radians(1.753470314 + 628.3075849991*t).ModTwoPiSigned()
}

// MarsMeanLongitudeIERS03 returns Mars's mean longitude.
func MarsMeanLongitudeIERS03(t float64) units.Angle {
	return units.Radians(6.203480913 + 334.0612426700*t).ModTwoPiSigned()
}

// JupiterMeanLongitudeIERS03 returns Jupiter's mean longitude.
func JupiterMeanLongitudeIERS03(t float64) units.Angle {
	return units.Radians(0.599546497 + 52.9690962641*t).ModTwoPiSigned()
}

// SaturnMeanLongitudeIERS03 returns Saturn's mean longitude.
func SaturnMeanLongitudeIERS03(t float64) units.Angle {
	return units.Radians(0.874016757 + 21.3299104960*t).ModTwoPiSigned()
}

// UranusMeanLongitudeIERS03 returns Uranus's mean longitude.
func UranusMeanLongitudeIERS03(t float64) units.Angle {
	return units.Radians(5.481293872 + 7.4781598567*t).ModTwoPiSigned()
}

// NeptuneMeanLongitudeIERS03 returns Neptune's mean longitude.
func NeptuneMeanLongitudeIERS03(t float64) units.Angle {
	return units.Radians(5.311886287 + 3.8133035638*t).ModTwoPiSigned()
}

// GeneralPrecessionIERS03 returns the general accumulated precession in
// longitude p_A.
func GeneralPrecessionIERS03(t float64) units.Angle {
	return units.Radians(base.Horner(t, 0, 0.024381750, 0.00000538691))
}

// MoonMeanAnomalyMHB2000 returns the Moon's mean anomaly l in the MHB2000
// planetary formulation.
func MoonMeanAnomalyMHB2000(t float64) units.Angle {
	return units.Radians(2.35555598 + 8328.6914269554*t).ModTwoPiSigned()
}

// SunMeanAnomalyMHB2000 returns the Sun's mean anomaly l'.
func SunMeanAnomalyMHB2000(t float64) units.Angle {
	return units.ArcsecondsNormalizedSigned(base.Horner(t,
		1287104.79305, 129596581.0481, -0.5532, 0.000136, -0.00001149))
}

// MoonArgumentOfLatitudeMHB2000 returns the Moon's mean argument of
// latitude F in the MHB2000 planetary formulation.
func MoonArgumentOfLatitudeMHB2000(t float64) units.Angle {
	return units.Radians(1.627905234 + 8433.466158131*t).ModTwoPiSigned()
}

// MoonSunElongationMHB2000 returns the mean elongation of the Moon from
// the Sun D as used by the MHB2000 luni-solar series.
func MoonSunElongationMHB2000(t float64) units.Angle {
	return units.ArcsecondsNormalizedSigned(base.Horner(t,
		1072260.70369, 1602961601.2090, -6.3706, 0.006593, -0.00003169))
}

// MoonSunElongationPlanetaryMHB2000 returns the mean elongation of the
// Moon from the Sun D as used by the MHB2000 planetary series.
func MoonSunElongationPlanetaryMHB2000(t float64) units.Angle {
	return units.Radians(5.198466741 + 7771.3771468121*t).ModTwoPiSigned()
}

// MoonAscendingNodeMHB2000 returns the mean longitude of the Moon's
// ascending node Ω in the MHB2000 planetary formulation.
func MoonAscendingNodeMHB2000(t float64) units.Angle {
	return units.Radians(2.18243920 - 33.757045*t).ModTwoPiSigned()
}

// NeptuneMeanLongitudeMHB2000 returns Neptune's mean longitude in the
// MHB2000 formulation.
func NeptuneMeanLongitudeMHB2000(t float64) units.Angle {
	return units.Radians(5.3211590 + 3.81277740*t).ModTwoPiSigned()
}

// MoonMeanAnomalySimon1994 returns the Moon's mean anomaly l truncated to
// the linear Simon et al. (1994) expression.
func MoonMeanAnomalySimon1994(t float64) units.Angle {
	return units.ArcsecondsNormalizedSigned(485868.249036 + 1717915923.2178*t)
}

// SunMeanAnomalySimon1994 returns the Sun's mean anomaly l' truncated to
// the linear Simon et al. (1994) expression.
func SunMeanAnomalySimon1994(t float64) units.Angle {
	return units.ArcsecondsNormalizedSigned(1287104.79305 + 129596581.0481*t)
}

// MoonArgumentOfLatitudeSimon1994 returns the Moon's mean argument of
// latitude F truncated to the linear Simon et al. (1994) expression.
func MoonArgumentOfLatitudeSimon1994(t float64) units.Angle {
	return units.ArcsecondsNormalizedSigned(335779.526232 + 1739527262.8478*t)
}

// MoonSunElongationSimon1994 returns the mean elongation of the Moon from
// the Sun D truncated to the linear Simon et al. (1994) expression.
func MoonSunElongationSimon1994(t float64) units.Angle {
	return units.ArcsecondsNormalizedSigned(1072260.70369 + 1602961601.2090*t)
}

// MoonAscendingNodeSimon1994 returns the mean longitude of the Moon's
// ascending node Ω truncated to the linear Simon et al. (1994)
// expression.
func MoonAscendingNodeSimon1994(t float64) units.Angle {
	return units.ArcsecondsNormalizedSigned(450160.398036 - 6962890.5431*t)
}
