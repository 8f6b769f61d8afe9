package earth

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/litescript/ls-astro/astrotime"
	"github.com/litescript/ls-astro/units"
)

func TestCipCoordsFromMatrix(t *testing.T) {
	npb := mat.NewDense(3, 3, []float64{
		9.999962358680738e-1, -2.516417057665452e-3, -1.09356978534237e-3,
		2.516462370370876e-3, 9.999968329010883e-1, 4.00615958735831e-5,
		1.093465510215479e-3, -4.281337229063151e-5, 9.999994012499173e-1,
	})
	got := CipCoordsFromMatrix(npb)
	if got.X.ToRadians() != 1.093465510215479e-3 {
		t.Errorf("X = %.16e, want 1.093465510215479e-3", got.X.ToRadians())
	}
	if got.Y.ToRadians() != -4.281337229063151e-5 {
		t.Errorf("Y = %.16e, want -4.281337229063151e-5", got.Y.ToRadians())
	}
}

func TestCipCoordsIAU2006(t *testing.T) {
	// Extracting the CIP from the bias-precession-nutation matrix tracks
	// the direct series expansion of X and Y to tens of picoradians.
	tdb := twoPartJD(t, astrotime.TDB, 2400000.5, 53736.0)
	got := CipCoordsIAU2006(tdb)
	if diff := math.Abs(got.X.ToRadians() - 5.791308486706011e-4); diff > 5e-11 {
		t.Errorf("X = %.16e, diff to series value %.2e", got.X.ToRadians(), diff)
	}
	if diff := math.Abs(got.Y.ToRadians() - 4.020579816732961e-5); diff > 5e-11 {
		t.Errorf("Y = %.16e, diff to series value %.2e", got.Y.ToRadians(), diff)
	}
}

func TestCipCoordsAdd(t *testing.T) {
	a := CipCoords{X: units.Microarcseconds(100), Y: units.Microarcseconds(-30)}
	b := CipCoords{X: units.Microarcseconds(175), Y: units.Microarcseconds(-225.9)}
	got := a.Add(b)
	want := CipCoords{X: a.X + b.X, Y: a.Y + b.Y}
	if got != want {
		t.Errorf("Add = %+v, want %+v", got, want)
	}
}

func TestCelestialToIntermediateMatrix(t *testing.T) {
	cip := CipCoords{
		X: units.Radians(5.791308486706011e-4),
		Y: units.Radians(4.020579816732961e-5),
	}
	s := units.Radians(-1.220040848472272e-8)
	want := [9]float64{
		0.9999998323037157, 5.581984869168499e-10, -5.791308491611282e-4,
		-2.3842616426704402e-8, 0.9999999991917469, -4.020579110169669e-5,
		5.791308486706011e-4, 4.020579816732961e-5, 0.9999998314954628,
	}
	wantMatrix(t, cip.CelestialToIntermediateMatrix(s), want, 1e-12)
}

func TestCelestialToIntermediateMatrixAtPole(t *testing.T) {
	// Zero CIP coordinates leave only the locator rotation.
	var cip CipCoords
	s := units.Arcseconds(-47e-6)
	got := cip.CelestialToIntermediateMatrix(s)
	want := R3(-s)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if diff := math.Abs(got.At(i, j) - want.At(i, j)); diff > 1e-15 {
				t.Errorf("element (%d,%d) = %v, want %v", i, j, got.At(i, j), want.At(i, j))
			}
		}
	}
}
