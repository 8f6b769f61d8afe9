package units

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestDistanceConversions(t *testing.T) {
	tests := []struct {
		name     string
		distance Distance
		meters   float64
	}{
		{"meters", Meters(1000), 1000},
		{"kilometers", Kilometers(1), 1000},
		{"astronomical units", AstronomicalUnits(1), 1.495978707e11},
		{"negative", Kilometers(-6378.1366), -6378136.6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.distance.ToMeters(); !scalar.EqualWithinRel(got, tt.meters, 1e-12) {
				t.Errorf("ToMeters() = %v, want %v", got, tt.meters)
			}
		})
	}
}

func TestDistanceAstronomicalUnits(t *testing.T) {
	d1 := Meters(1.5e11)
	d2 := AstronomicalUnits(1.5e11 / AstronomicalUnit)
	if !scalar.EqualWithinRel(d1.ToMeters(), d2.ToMeters(), 1e-9) {
		t.Errorf("AU conversion mismatch: %v != %v", d1, d2)
	}
	if got := AstronomicalUnits(1).ToAstronomicalUnits(); math.Abs(got-1) > 1e-15 {
		t.Errorf("ToAstronomicalUnits() = %v, want 1", got)
	}
}

func TestVelocityConversions(t *testing.T) {
	tests := []struct {
		name     string
		velocity Velocity
		mps      float64
	}{
		{"m/s", MetersPerSecond(1000), 1000},
		{"km/s", KilometersPerSecond(1), 1000},
		{"orbital", KilometersPerSecond(7.5), 7500},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.velocity.ToMetersPerSecond(); got != tt.mps {
				t.Errorf("ToMetersPerSecond() = %v, want %v", got, tt.mps)
			}
		})
	}
	if got := KilometersPerSecond(7.5).ToKilometersPerSecond(); math.Abs(got-7.5) > 1e-12 {
		t.Errorf("ToKilometersPerSecond() = %v, want 7.5", got)
	}
}
