package earth

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/litescript/ls-astro/astrotime"
)

func TestBiasPrecessionMatrixIers1996(t *testing.T) {
	tt := twoPartJD(t, astrotime.TT, 2400000.5, 50123.9999)
	// IAU 1976 precession relative to J2000; the frame bias is appended
	// separately.
	p76 := mat.NewDense(3, 3, []float64{
		0.9999995504328351, 8.696632209480961e-4, 3.7791534749598884e-4,
		-8.696632209485112e-4, 0.9999996218428561, -1.6432847761118864e-7,
		-3.779153474950335e-4, -1.643306746147367e-7, 0.999999928589979,
	})
	var want mat.Dense
	want.Mul(p76, FrameBias())

	got := Iers1996.BiasPrecessionMatrix(tt)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if diff := math.Abs(got.At(i, j) - want.At(i, j)); diff > 1e-12 {
				t.Errorf("element (%d,%d) = %.16e, want %.16e", i, j, got.At(i, j), want.At(i, j))
			}
		}
	}
}

func TestBiasPrecessionMatrixIers2003(t *testing.T) {
	tt := twoPartJD(t, astrotime.TT, 2400000.5, 50123.9999)
	want := [9]float64{
		0.9999995505175088, 8.695405883617885e-4, 3.779734722239007e-4,
		-8.695405990410864e-4, 0.9999996219494925, -1.360775820404982e-7,
		-3.779734476558185e-4, -1.925857585832024e-7, 0.9999999285680153,
	}
	wantMatrix(t, Iers2003A.BiasPrecessionMatrix(tt), want, 1e-12)
	wantMatrix(t, Iers2003B.BiasPrecessionMatrix(tt), want, 1e-12)
}

func TestBiasPrecessionMatrixIers2010(t *testing.T) {
	tt := twoPartJD(t, astrotime.TT, 2400000.5, 50123.9999)
	want := [9]float64{
		0.9999995505176007, 8.695404617348209e-4, 3.779735201865589e-4,
		-8.695404723772031e-4, 0.9999996219496027, -1.3617524970802702e-7,
		-3.7797349570340897e-4, -1.924880847894457e-7, 0.9999999285679972,
	}
	wantMatrix(t, Iers2010.BiasPrecessionMatrix(tt), want, 1e-12)
}

func TestFrameBias(t *testing.T) {
	want := [9]float64{
		0.9999999999999942, -7.078279744199197e-8, 8.056217146976134e-8,
		7.078279477857338e-8, 0.999999999999997, 3.3060414542221364e-8,
		-8.056217380986972e-8, -3.3060408839805523e-8, 0.9999999999999962,
	}
	wantMatrix(t, FrameBias(), want, 1e-12)
}

func TestPrecessionCorrectionsIAU2000(t *testing.T) {
	tt := twoPartJD(t, astrotime.TT, 2400000.5, 53736.0)
	corr := PrecessionCorrectionsIAU2000(tt)
	if got, want := corr.Longitude.ToRadians(), -8.716465172668348e-8; math.Abs(got-want) > 1e-22 {
		t.Errorf("Longitude = %.16e, want %.16e", got, want)
	}
	if got, want := corr.Obliquity.ToRadians(), -7.342018386722813e-9; math.Abs(got-want) > 1e-22 {
		t.Errorf("Obliquity = %.16e, want %.16e", got, want)
	}
}
