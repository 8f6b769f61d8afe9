package units

import "fmt"

// AstronomicalUnit is the astronomical unit in meters.
const AstronomicalUnit = 1.495978707e11

// Distance is a distance in meters.
type Distance float64

// Meters creates a distance from a value in meters.
func Meters(m float64) Distance {
	return Distance(m)
}

// Kilometers creates a distance from a value in kilometers.
func Kilometers(km float64) Distance {
	return Distance(km * 1e3)
}

// AstronomicalUnits creates a distance from a value in astronomical units.
func AstronomicalUnits(au float64) Distance {
	return Distance(au * AstronomicalUnit)
}

// ToMeters returns the value of the distance in meters.
func (d Distance) ToMeters() float64 {
	return float64(d)
}

// ToKilometers returns the value of the distance in kilometers.
func (d Distance) ToKilometers() float64 {
	return float64(d) * 1e-3
}

// ToAstronomicalUnits returns the value of the distance in astronomical units.
func (d Distance) ToAstronomicalUnits() float64 {
	return float64(d) / AstronomicalUnit
}

// String formats the distance in kilometers.
func (d Distance) String() string {
	return fmt.Sprintf("%v km", d.ToKilometers())
}

// Velocity is a velocity in meters per second.
type Velocity float64

// MetersPerSecond creates a velocity from a value in m/s.
func MetersPerSecond(mps float64) Velocity {
	return Velocity(mps)
}

// KilometersPerSecond creates a velocity from a value in km/s.
func KilometersPerSecond(kps float64) Velocity {
	return Velocity(kps * 1e3)
}

// ToMetersPerSecond returns the value of the velocity in m/s.
func (v Velocity) ToMetersPerSecond() float64 {
	return float64(v)
}

// ToKilometersPerSecond returns the value of the velocity in km/s.
func (v Velocity) ToKilometersPerSecond() float64 {
	return float64(v) * 1e-3
}

// String formats the velocity in km/s.
func (v Velocity) String() string {
	return fmt.Sprintf("%v km/s", v.ToKilometersPerSecond())
}
