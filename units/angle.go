// Package units provides newtype wrappers for unitful float64 quantities.
package units

import (
	"fmt"
	"math"
)

// DegreesInCircle is the number of degrees in a full circle.
const DegreesInCircle = 360.0

// ArcsecondsInCircle is the number of arcseconds in a full circle.
const ArcsecondsInCircle = DegreesInCircle * 60.0 * 60.0

// RadiansInArcsecond converts arcseconds to radians.
const RadiansInArcsecond = (2 * math.Pi) / ArcsecondsInCircle

// Angle is an angle in radians.
type Angle float64

// Radians creates an angle from a value in radians.
func Radians(rad float64) Angle {
	return Angle(rad)
}

// Degrees creates an angle from a value in degrees.
func Degrees(deg float64) Angle {
	return Angle(deg * math.Pi / 180.0)
}

// Arcseconds creates an angle from a value in arcseconds.
func Arcseconds(asec float64) Angle {
	return Angle(asec * RadiansInArcsecond)
}

// ArcsecondsNormalizedSigned creates an angle from a value in arcseconds,
// reduced to (-1296000, 1296000) before the conversion to radians.
func ArcsecondsNormalizedSigned(asec float64) Angle {
	return Angle(math.Mod(asec, ArcsecondsInCircle) * RadiansInArcsecond)
}

// Milliarcseconds creates an angle from a value in milliarcseconds.
func Milliarcseconds(mas float64) Angle {
	return Arcseconds(mas * 1e-3)
}

// Microarcseconds creates an angle from a value in microarcseconds.
func Microarcseconds(uas float64) Angle {
	return Arcseconds(uas * 1e-6)
}

// HourMinSec creates an angle from a right ascension in hours, minutes
// and seconds of time.
func HourMinSec(hours, minutes int, seconds float64) Angle {
	return Degrees(15.0 * (float64(hours) + float64(minutes)/60.0 + seconds/3600.0))
}

// Asin creates an angle from the arcsine of a value.
func Asin(v float64) Angle {
	return Angle(math.Asin(v))
}

// Acos creates an angle from the arccosine of a value.
func Acos(v float64) Angle {
	return Angle(math.Acos(v))
}

// Atan creates an angle from the arctangent of a value.
func Atan(v float64) Angle {
	return Angle(math.Atan(v))
}

// Atan2 creates an angle from the four-quadrant arctangent of y/x.
func Atan2(y, x float64) Angle {
	return Angle(math.Atan2(y, x))
}

// ToRadians returns the value of the angle in radians.
func (a Angle) ToRadians() float64 {
	return float64(a)
}

// ToDegrees returns the value of the angle in degrees.
func (a Angle) ToDegrees() float64 {
	return float64(a) * 180.0 / math.Pi
}

// ToArcseconds returns the value of the angle in arcseconds.
func (a Angle) ToArcseconds() float64 {
	return float64(a) / RadiansInArcsecond
}

// Sin returns the sine of the angle.
func (a Angle) Sin() float64 {
	return math.Sin(float64(a))
}

// Cos returns the cosine of the angle.
func (a Angle) Cos() float64 {
	return math.Cos(float64(a))
}

// SinCos returns the sine and cosine of the angle.
func (a Angle) SinCos() (float64, float64) {
	return math.Sincos(float64(a))
}

// Tan returns the tangent of the angle.
func (a Angle) Tan() float64 {
	return math.Tan(float64(a))
}

// Abs returns the absolute value of the angle.
func (a Angle) Abs() Angle {
	return Angle(math.Abs(float64(a)))
}

// ModTwoPi returns the angle normalized to the interval [0, 2π).
func (a Angle) ModTwoPi() Angle {
	m := math.Mod(float64(a), 2*math.Pi)
	if m < 0 {
		m += 2 * math.Pi
	}
	return Angle(m)
}

// ModTwoPiSigned returns the angle reduced to the interval (-2π, 2π)
// with the sign of the input preserved.
func (a Angle) ModTwoPiSigned() Angle {
	return Angle(math.Mod(float64(a), 2*math.Pi))
}

// NormalizeTwoPi returns the angle normalized to a 2π-wide interval
// centered around center.
func (a Angle) NormalizeTwoPi(center Angle) Angle {
	f := float64(a)
	c := float64(center)
	return Angle(f - 2*math.Pi*math.Floor((f+math.Pi-c)/(2*math.Pi)))
}

// String formats the angle in degrees.
func (a Angle) String() string {
	return fmt.Sprintf("%v deg", a.ToDegrees())
}
