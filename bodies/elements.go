package bodies

import (
	"math"

	"github.com/litescript/ls-astro/astrotime"
)

type elementKind int

const (
	rightAscension elementKind = iota
	declination
	rotation
)

// sincos selects the trigonometric function of the element's series:
// declination terms use cosines, the others sines.
func (k elementKind) sincos(x float64) float64 {
	if k == declination {
		return math.Cos(x)
	}
	return math.Sin(x)
}

func (k elementKind) sincosDot(x float64) float64 {
	if k == declination {
		return math.Sin(x)
	}
	return math.Cos(x)
}

func (k elementKind) sign() float64 {
	if k == declination {
		return -1.0
	}
	return 1.0
}

// dt is the time unit of the element's polynomial: days for the prime
// meridian, Julian centuries for the pole.
func (k elementKind) dt() float64 {
	if k == rotation {
		return astrotime.SecondsPerDay
	}
	return astrotime.SecondsPerJulianCentury
}

// nutationPrecession holds the phases and rates, in radians and radians
// per Julian century, of a planetary system's nutation-precession
// angles.
type nutationPrecession struct {
	theta0 []float64
	theta1 []float64
}

func (np *nutationPrecession) angle(i int, t float64) float64 {
	return np.theta0[i] + np.theta1[i]*t/astrotime.SecondsPerJulianCentury
}

// rotationalElement is one orientation angle: a polynomial in t plus an
// optional trigonometric series over the system's nutation-precession
// angles.
type rotationalElement struct {
	kind elementKind
	c0   float64
	c1   float64
	c2   float64
	c    []float64
}

func (e *rotationalElement) trigTerm(np *nutationPrecession, t float64) float64 {
	if e.c == nil {
		return 0
	}
	var sum float64
	for i, ci := range e.c {
		sum += ci * e.kind.sincos(np.angle(i, t))
	}
	return sum
}

func (e *rotationalElement) trigTermDot(np *nutationPrecession, t float64) float64 {
	if e.c == nil {
		return 0
	}
	var sum float64
	for i, ci := range e.c {
		sum += ci * np.theta1[i] / astrotime.SecondsPerJulianCentury * e.kind.sincosDot(np.angle(i, t))
	}
	return sum
}

func (e *rotationalElement) angle(np *nutationPrecession, t float64) float64 {
	dt := e.kind.dt()
	return e.c0 + e.c1*t/dt + e.c2*(t*t)/(dt*dt) + e.trigTerm(np, t)
}

func (e *rotationalElement) angleDot(np *nutationPrecession, t float64) float64 {
	dt := e.kind.dt()
	return e.c1/dt + 2*e.c2*t/(dt*dt) + e.kind.sign()*e.trigTermDot(np, t)
}

// elementSet bundles the three orientation angles of a body with the
// nutation-precession angles they reference.
type elementSet struct {
	nutPrec *nutationPrecession
	ra      rotationalElement
	dec     rotationalElement
	w       rotationalElement
}

func (s *elementSet) angles(t float64) Elements {
	return Elements{
		RightAscension: s.ra.angle(s.nutPrec, t),
		Declination:    s.dec.angle(s.nutPrec, t),
		Rotation:       s.w.angle(s.nutPrec, t),
	}
}

func (s *elementSet) rates(t float64) Elements {
	return Elements{
		RightAscension: s.ra.angleDot(s.nutPrec, t),
		Declination:    s.dec.angleDot(s.nutPrec, t),
		Rotation:       s.w.angleDot(s.nutPrec, t),
	}
}
