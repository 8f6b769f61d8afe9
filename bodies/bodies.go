// Package bodies catalogs solar system bodies and barycenters: NAIF ids,
// gravitational parameters, ellipsoid radii, and IAU rotational elements.
//
// Rotational elements follow the conventions of the IAU Working Group on
// Cartographic Coordinates and Rotational Elements: the right ascension
// and declination of a body's north pole evolve per Julian TDB century,
// the prime meridian angle per day, and trigonometric terms are driven
// by the nutation-precession angles of the body's planetary system.
// Gravitational parameters are the DE440 values in km³/s²; radii are the
// pck00011 values in km.
package bodies

import (
	"fmt"
	"strings"
)

// Origin identifies a body or barycenter from the catalog.
type Origin int

const (
	Sun Origin = iota
	Mercury
	Venus
	Earth
	Mars
	Jupiter
	Saturn
	Uranus
	Neptune
	Pluto
	SolarSystemBarycenter
	MercuryBarycenter
	VenusBarycenter
	EarthBarycenter
	MarsBarycenter
	JupiterBarycenter
	SaturnBarycenter
	UranusBarycenter
	NeptuneBarycenter
	PlutoBarycenter
	Moon
)

// UnknownOriginNameError is returned when a string names no catalog entry.
type UnknownOriginNameError struct {
	Name string
}

func (e *UnknownOriginNameError) Error() string {
	return fmt.Sprintf("no origin with name `%s` is known", e.Name)
}

// UnknownOriginIDError is returned for a NAIF ID outside the catalog.
type UnknownOriginIDError struct {
	ID int
}

func (e *UnknownOriginIDError) Error() string {
	return fmt.Sprintf("no origin with NAIF ID `%d` is known", e.ID)
}

// UndefinedPropertyError is returned when a catalog entry does not define
// the requested property, e.g. the radii of a barycenter.
type UndefinedPropertyError struct {
	Origin   string
	Property string
}

func (e *UndefinedPropertyError) Error() string {
	return fmt.Sprintf("undefined property '%s' for origin '%s'", e.Property, e.Origin)
}

// Radii holds the triaxial ellipsoid radii in km: the two equatorial
// radii followed by the polar radius.
type Radii [3]float64

// Elements holds a body's IAU orientation angles: right ascension and
// declination of the north pole and the prime meridian angle, in
// radians. Rates use the same fields in radians per second.
type Elements struct {
	RightAscension float64
	Declination    float64
	Rotation       float64
}

// Origins lists the full catalog in a stable order.
func Origins() []Origin {
	list := make([]Origin, len(catalog))
	for i := range catalog {
		list[i] = Origin(i)
	}
	return list
}

// ParseOrigin matches a body or barycenter by name, ignoring case.
// `ssb` and `luna` are accepted as aliases.
func ParseOrigin(name string) (Origin, error) {
	switch strings.ToLower(name) {
	case "sun":
		return Sun, nil
	case "mercury":
		return Mercury, nil
	case "venus":
		return Venus, nil
	case "earth":
		return Earth, nil
	case "mars":
		return Mars, nil
	case "jupiter":
		return Jupiter, nil
	case "saturn":
		return Saturn, nil
	case "uranus":
		return Uranus, nil
	case "neptune":
		return Neptune, nil
	case "pluto":
		return Pluto, nil
	case "ssb", "solar system barycenter":
		return SolarSystemBarycenter, nil
	case "mercury barycenter":
		return MercuryBarycenter, nil
	case "venus barycenter":
		return VenusBarycenter, nil
	case "earth barycenter":
		return EarthBarycenter, nil
	case "mars barycenter":
		return MarsBarycenter, nil
	case "jupiter barycenter":
		return JupiterBarycenter, nil
	case "saturn barycenter":
		return SaturnBarycenter, nil
	case "uranus barycenter":
		return UranusBarycenter, nil
	case "neptune barycenter":
		return NeptuneBarycenter, nil
	case "pluto barycenter":
		return PlutoBarycenter, nil
	case "moon", "luna":
		return Moon, nil
	}
	return 0, &UnknownOriginNameError{Name: name}
}

// OriginFromNaifID returns the catalog entry with the given NAIF ID.
func OriginFromNaifID(id int) (Origin, error) {
	for i := range catalog {
		if catalog[i].id == id {
			return Origin(i), nil
		}
	}
	return 0, &UnknownOriginIDError{ID: id}
}

func (o Origin) entry() *originData {
	if o < 0 || int(o) >= len(catalog) {
		return nil
	}
	return &catalog[o]
}

// NaifID returns the NAIF integer ID of the origin.
func (o Origin) NaifID() int {
	if d := o.entry(); d != nil {
		return d.id
	}
	return 0
}

// Name returns the catalog name of the origin, e.g. "Earth Barycenter".
func (o Origin) Name() string {
	if d := o.entry(); d != nil {
		return d.name
	}
	return "unknown"
}

func (o Origin) String() string {
	return o.Name()
}

// IsBarycenter reports whether the origin is a barycenter rather than a
// physical body.
func (o Origin) IsBarycenter() bool {
	return o.NaifID() < 10
}

func (o Origin) undefined(prop string) error {
	return &UndefinedPropertyError{Origin: o.Name(), Property: prop}
}

// GravitationalParameter returns the gravitational parameter in km³/s².
func (o Origin) GravitationalParameter() (float64, error) {
	d := o.entry()
	if d == nil || !d.hasGM {
		return 0, o.undefined("gravitational parameter")
	}
	return d.gm, nil
}

// Radii returns the triaxial ellipsoid radii in km.
func (o Origin) Radii() (Radii, error) {
	d := o.entry()
	if d == nil || !d.hasRadii {
		return Radii{}, o.undefined("radii")
	}
	return d.radii, nil
}

// MeanRadius returns the mean radius in km.
func (o Origin) MeanRadius() (float64, error) {
	d := o.entry()
	if d == nil || !d.hasRadii {
		return 0, o.undefined("mean radius")
	}
	return d.mean, nil
}

// EquatorialRadius returns the larger equatorial radius in km.
func (o Origin) EquatorialRadius() (float64, error) {
	r, err := o.Radii()
	if err != nil {
		return 0, err
	}
	return r[0], nil
}

// PolarRadius returns the polar radius in km.
func (o Origin) PolarRadius() (float64, error) {
	r, err := o.Radii()
	if err != nil {
		return 0, err
	}
	return r[2], nil
}

// Flattening returns the spheroid flattening (equatorial − polar) /
// equatorial.
func (o Origin) Flattening() (float64, error) {
	r, err := o.Radii()
	if err != nil {
		return 0, err
	}
	return (r[0] - r[2]) / r[0], nil
}

// RotationalElements evaluates the IAU orientation angles at t TDB
// seconds since J2000, in radians. The angles are not normalized; the
// prime meridian in particular accumulates whole rotations.
func (o Origin) RotationalElements(t float64) (Elements, error) {
	d := o.entry()
	if d == nil || d.elements == nil {
		return Elements{}, o.undefined("rotational elements")
	}
	return d.elements.angles(t), nil
}

// RotationalElementRates evaluates the orientation angle rates at t TDB
// seconds since J2000, in radians per second.
func (o Origin) RotationalElementRates(t float64) (Elements, error) {
	d := o.entry()
	if d == nil || d.elements == nil {
		return Elements{}, o.undefined("rotational elements")
	}
	return d.elements.rates(t), nil
}
