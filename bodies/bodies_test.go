package bodies

import (
	"errors"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestOriginRoundTrip(t *testing.T) {
	for _, o := range Origins() {
		byName, err := ParseOrigin(o.Name())
		if err != nil {
			t.Fatalf("ParseOrigin(%q): %v", o.Name(), err)
		}
		if byName != o {
			t.Errorf("ParseOrigin(%q) = %v, want %v", o.Name(), byName, o)
		}
		byID, err := OriginFromNaifID(o.NaifID())
		if err != nil {
			t.Fatalf("OriginFromNaifID(%d): %v", o.NaifID(), err)
		}
		if byID != o {
			t.Errorf("OriginFromNaifID(%d) = %v, want %v", o.NaifID(), byID, o)
		}
	}
}

func TestParseOriginAliases(t *testing.T) {
	tests := []struct {
		name string
		want Origin
	}{
		{"ssb", SolarSystemBarycenter},
		{"SSB", SolarSystemBarycenter},
		{"Solar System Barycenter", SolarSystemBarycenter},
		{"luna", Moon},
		{"Luna", Moon},
		{"moon", Moon},
		{"EARTH", Earth},
		{"jupiter barycenter", JupiterBarycenter},
	}
	for _, tc := range tests {
		got, err := ParseOrigin(tc.name)
		if err != nil {
			t.Fatalf("ParseOrigin(%q): %v", tc.name, err)
		}
		if got != tc.want {
			t.Errorf("ParseOrigin(%q) = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestParseOriginUnknown(t *testing.T) {
	_, err := ParseOrigin("Rupert")
	var unknown *UnknownOriginNameError
	if !errors.As(err, &unknown) {
		t.Fatalf("ParseOrigin(Rupert) error = %v, want UnknownOriginNameError", err)
	}
	if want := "no origin with name `Rupert` is known"; err.Error() != want {
		t.Errorf("error = %q, want %q", err.Error(), want)
	}
}

func TestOriginFromNaifIDUnknown(t *testing.T) {
	_, err := OriginFromNaifID(666)
	var unknown *UnknownOriginIDError
	if !errors.As(err, &unknown) {
		t.Fatalf("OriginFromNaifID(666) error = %v, want UnknownOriginIDError", err)
	}
	if want := "no origin with NAIF ID `666` is known"; err.Error() != want {
		t.Errorf("error = %q, want %q", err.Error(), want)
	}
}

func TestNaifIDs(t *testing.T) {
	tests := []struct {
		origin Origin
		id     int
	}{
		{Sun, 10},
		{Mercury, 199},
		{Earth, 399},
		{Pluto, 999},
		{SolarSystemBarycenter, 0},
		{EarthBarycenter, 3},
		{PlutoBarycenter, 9},
		{Moon, 301},
	}
	for _, tc := range tests {
		if got := tc.origin.NaifID(); got != tc.id {
			t.Errorf("%v NaifID = %d, want %d", tc.origin, got, tc.id)
		}
	}
}

func TestIsBarycenter(t *testing.T) {
	if Earth.IsBarycenter() {
		t.Error("Earth reported as barycenter")
	}
	if Moon.IsBarycenter() {
		t.Error("Moon reported as barycenter")
	}
	if !SolarSystemBarycenter.IsBarycenter() {
		t.Error("SSB not reported as barycenter")
	}
	if !EarthBarycenter.IsBarycenter() {
		t.Error("Earth Barycenter not reported as barycenter")
	}
}

func TestGravitationalParameter(t *testing.T) {
	tests := []struct {
		origin Origin
		gm     float64
	}{
		{Sun, 132712440041.27942},
		{Earth, 398600.43550702266},
		{Moon, 4902.8001184575496},
		{EarthBarycenter, 403503.2356254802},
		{JupiterBarycenter, 126712764.09999998},
		{PlutoBarycenter, 975.5},
	}
	for _, tc := range tests {
		got, err := tc.origin.GravitationalParameter()
		if err != nil {
			t.Fatalf("%v GravitationalParameter: %v", tc.origin, err)
		}
		if got != tc.gm {
			t.Errorf("%v GM = %v, want %v", tc.origin, got, tc.gm)
		}
	}
}

func TestGravitationalParameterUndefined(t *testing.T) {
	_, err := SolarSystemBarycenter.GravitationalParameter()
	var undef *UndefinedPropertyError
	if !errors.As(err, &undef) {
		t.Fatalf("error = %v, want UndefinedPropertyError", err)
	}
	want := "undefined property 'gravitational parameter' for origin 'Solar System Barycenter'"
	if err.Error() != want {
		t.Errorf("error = %q, want %q", err.Error(), want)
	}
}

func TestEarthSpheroid(t *testing.T) {
	radii, err := Earth.Radii()
	if err != nil {
		t.Fatalf("Earth Radii: %v", err)
	}
	if want := (Radii{6378.1366, 6378.1366, 6356.7519}); radii != want {
		t.Errorf("Earth radii = %v, want %v", radii, want)
	}
	eq, err := Earth.EquatorialRadius()
	if err != nil || eq != 6378.1366 {
		t.Errorf("Earth equatorial radius = %v (err %v), want 6378.1366", eq, err)
	}
	polar, err := Earth.PolarRadius()
	if err != nil || polar != 6356.7519 {
		t.Errorf("Earth polar radius = %v (err %v), want 6356.7519", polar, err)
	}
	mean, err := Earth.MeanRadius()
	if err != nil || !scalar.EqualWithinRel(mean, 6371.008366666666, 1e-14) {
		t.Errorf("Earth mean radius = %v (err %v), want 6371.008366666666", mean, err)
	}
	f, err := Earth.Flattening()
	if err != nil {
		t.Fatalf("Earth Flattening: %v", err)
	}
	if !scalar.EqualWithinRel(f, 0.0033528131084554717, 1e-14) {
		t.Errorf("Earth flattening = %.17g, want 0.0033528131084554717", f)
	}
}

func TestBarycenterRadiiUndefined(t *testing.T) {
	_, err := EarthBarycenter.Radii()
	var undef *UndefinedPropertyError
	if !errors.As(err, &undef) {
		t.Fatalf("error = %v, want UndefinedPropertyError", err)
	}
	if undef.Property != "radii" {
		t.Errorf("property = %q, want %q", undef.Property, "radii")
	}
	if _, err := EarthBarycenter.MeanRadius(); !errors.As(err, &undef) {
		t.Errorf("MeanRadius error = %v, want UndefinedPropertyError", err)
	}
	if _, err := EarthBarycenter.Flattening(); !errors.As(err, &undef) {
		t.Errorf("Flattening error = %v, want UndefinedPropertyError", err)
	}
}
