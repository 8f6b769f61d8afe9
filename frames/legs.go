package frames

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/litescript/ls-astro/astrotime"
	"github.com/litescript/ls-astro/bodies"
	"github.com/litescript/ls-astro/earth"
	"github.com/litescript/ls-astro/units"
)

// Mean angular velocity of the Earth in rad/s, applied to the sidereal
// and Earth rotation angle legs.
const rotationRateEarth = 7.2921150e-5

func offsetError(err error) error {
	return fmt.Errorf("offset error: %w", err)
}

func eopError(err error) error {
	return fmt.Errorf("EOP error: %w", err)
}

// icrfToCirf applies the IAU 2006/2000A celestial-to-intermediate matrix.
// The CIO locator is evaluated for the modeled CIP; observed corrections
// refine the coordinates afterwards and default to zero when the provider
// has none.
func icrfToCirf(p RotationProvider, t astrotime.Time) (Rotation, error) {
	tdb, err := t.TryToScale(astrotime.TDB, p)
	if err != nil {
		return Rotation{}, offsetError(err)
	}
	cip := earth.CipCoordsIAU2006(tdb)
	s := earth.CioLocatorIAU2006(tdb, cip)
	if corr, err := p.Corrections(t, earth.Iers2010); err == nil {
		cip = cip.Add(earth.CipCoords{X: corr.X, Y: corr.Y})
	}
	return NewRotation(cip.CelestialToIntermediateMatrix(s)), nil
}

// cirfToTirf rotates by the Earth rotation angle about the CIP.
func cirfToTirf(p RotationProvider, t astrotime.Time) (Rotation, error) {
	ut1, err := t.TryToScale(astrotime.UT1, p)
	if err != nil {
		return Rotation{}, offsetError(err)
	}
	era := earth.EarthRotationAngle(ut1)
	return NewRotation(earth.R3(era)).
		WithAngularVelocity([3]float64{0, 0, rotationRateEarth}), nil
}

// tirfToItrf applies polar motion with the IAU 2000 TIO locator.
func tirfToItrf(p RotationProvider, t astrotime.Time) (Rotation, error) {
	tt, err := t.TryToScale(astrotime.TT, p)
	if err != nil {
		return Rotation{}, offsetError(err)
	}
	pole, err := p.PoleCoords(t)
	if err != nil {
		return Rotation{}, eopError(err)
	}
	return NewRotation(earth.Iers2010.PolarMotionMatrix(tt, pole)), nil
}

// icrfToMod applies the bias-precession matrix of the reference system.
func icrfToMod(p RotationProvider, sys earth.ReferenceSystem, t astrotime.Time) (Rotation, error) {
	tt, err := t.TryToScale(astrotime.TT, p)
	if err != nil {
		return Rotation{}, offsetError(err)
	}
	return NewRotation(sys.BiasPrecessionMatrix(tt)), nil
}

// modToTod applies the nutation matrix of the reference system, corrected
// by the observed celestial pole offsets.
func modToTod(p RotationProvider, sys earth.ReferenceSystem, t astrotime.Time) (Rotation, error) {
	tdb, err := t.TryToScale(astrotime.TDB, p)
	if err != nil {
		return Rotation{}, offsetError(err)
	}
	corr, err := p.Corrections(t, sys)
	if err != nil {
		return Rotation{}, eopError(err)
	}
	return NewRotation(sys.NutationMatrix(tdb, corr)), nil
}

// todToPef rotates by the apparent sidereal time of the reference system.
func todToPef(p RotationProvider, sys earth.ReferenceSystem, t astrotime.Time) (Rotation, error) {
	tt, err := t.TryToScale(astrotime.TT, p)
	if err != nil {
		return Rotation{}, offsetError(err)
	}
	ut1, err := t.TryToScale(astrotime.UT1, p)
	if err != nil {
		return Rotation{}, offsetError(err)
	}
	corr, err := p.Corrections(t, sys)
	if err != nil {
		return Rotation{}, eopError(err)
	}
	return NewRotation(sys.EarthRotation(tt, ut1, corr)).
		WithAngularVelocity([3]float64{0, 0, rotationRateEarth}), nil
}

// pefToItrf applies polar motion in the convention of the reference
// system.
func pefToItrf(p RotationProvider, sys earth.ReferenceSystem, t astrotime.Time) (Rotation, error) {
	tt, err := t.TryToScale(astrotime.TT, p)
	if err != nil {
		return Rotation{}, offsetError(err)
	}
	pole, err := p.PoleCoords(t)
	if err != nil {
		return Rotation{}, eopError(err)
	}
	return NewRotation(sys.PolarMotionMatrix(tt, pole)), nil
}

// pefToTeme rotates from the true equinox to the mean equinox by the
// IAU 1994 equation of the equinoxes, regardless of the reference system
// realizing PEF.
func pefToTeme(p RotationProvider, t astrotime.Time) (Rotation, error) {
	tdb, err := t.TryToScale(astrotime.TDB, p)
	if err != nil {
		return Rotation{}, offsetError(err)
	}
	eoe := earth.EquationOfEquinoxesIAU1994(tdb)
	return NewRotation(earth.R3(-eoe)), nil
}

// icrfToIau orients the frame by the rotational elements of the body: the
// pole right ascension and declination followed by the prime meridian
// angle, with the element rates as angular velocity.
func icrfToIau(p RotationProvider, body bodies.Origin, t astrotime.Time) (Rotation, error) {
	tdb, err := t.TryToScale(astrotime.TDB, p)
	if err != nil {
		return Rotation{}, offsetError(err)
	}
	seconds := tdb.SecondsSinceJ2000()
	angles, err := body.RotationalElements(seconds)
	if err != nil {
		return Rotation{}, err
	}
	rates, err := body.RotationalElementRates(seconds)
	if err != nil {
		return Rotation{}, err
	}
	m1 := earth.R3(units.Radians(angles.RightAscension + math.Pi/2))
	m2 := earth.R1(units.Radians(math.Pi/2 - angles.Declination))
	m3 := earth.R3(units.Radians(math.Mod(angles.Rotation, 2*math.Pi)))
	v := [3]float64{rates.RightAscension, -rates.Declination, rates.Rotation}
	return NewRotation(mul3(m3, m2, m1)).WithAngularVelocity(v), nil
}

func mul3(a, b, c *mat.Dense) *mat.Dense {
	var ab mat.Dense
	ab.Mul(a, b)
	out := mat.NewDense(3, 3, nil)
	out.Mul(&ab, c)
	return out
}
