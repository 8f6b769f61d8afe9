package earth

import (
	"math"
	"testing"

	"github.com/litescript/ls-astro/astrotime"
	"github.com/litescript/ls-astro/units"
)

func TestCioLocatorIAU2006(t *testing.T) {
	tdb := twoPartJD(t, astrotime.TDB, 2400000.5, 53736.0)
	cip := CipCoords{
		X: units.Radians(5.791308486706011e-4),
		Y: units.Radians(4.020579816732961e-5),
	}
	got := CioLocatorIAU2006(tdb, cip).ToRadians()
	want := -1.220032213076463e-8
	if diff := math.Abs(got - want); diff > 1e-18 {
		t.Errorf("CioLocatorIAU2006 = %.16e, want %.16e (diff %.2e)", got, want, diff)
	}
}

func TestCioLocatorAtJ2000(t *testing.T) {
	// At J2000 the polynomial reduces to its constant term plus the
	// periodic sums; the locator stays within a few milliarcseconds.
	tdb := astrotime.J2000(astrotime.TDB)
	got := CioLocatorIAU2006(tdb, CipCoords{})
	if math.Abs(got.ToArcseconds()) > 5e-3 {
		t.Errorf("CioLocatorIAU2006 at J2000 = %v arcsec, want below 5e-3", got.ToArcseconds())
	}
}
