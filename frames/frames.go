// Package frames models celestial and terrestrial reference frames and
// builds the rotations between them.
//
// The frame graph pivots on the ICRF. The CIO-based chain
// ICRF -> CIRF -> TIRF -> ITRF follows the IERS 2010 conventions, the
// equinox-based chain ICRF -> MOD -> TOD -> PEF is realized per reference
// system, TEME attaches to PEF through the IAU 1994 equation of the
// equinoxes, and IAU body-fixed frames attach directly to the ICRF through
// the rotational elements of their body.
package frames

import (
	"fmt"
	"strings"

	"github.com/litescript/ls-astro/bodies"
	"github.com/litescript/ls-astro/earth"
)

// UnknownFrameError is returned when a frame name cannot be resolved.
type UnknownFrameError struct {
	Name string
}

func (e *UnknownFrameError) Error() string {
	return fmt.Sprintf("no frame with name '%s' is known", e.Name)
}

// NonQuasiInertialFrameError is returned when an operation requires a
// quasi-inertial frame.
type NonQuasiInertialFrameError struct {
	Frame string
}

func (e *NonQuasiInertialFrameError) Error() string {
	return fmt.Sprintf("%s is not a quasi-inertial frame", e.Frame)
}

// NonBodyFixedFrameError is returned when an operation requires a
// body-fixed frame.
type NonBodyFixedFrameError struct {
	Frame string
}

func (e *NonBodyFixedFrameError) Error() string {
	return fmt.Sprintf("%s is not a body-fixed frame", e.Frame)
}

type frameKind int

const (
	kindIcrf frameKind = iota
	kindCirf
	kindTirf
	kindItrf
	kindTeme
	kindMod
	kindTod
	kindPef
	kindIau
)

// Frame identifies a reference frame. Frames are comparable values: the
// of-date frames carry the IERS reference system realizing them and IAU
// frames carry their rotating body.
type Frame struct {
	kind frameKind
	sys  earth.ReferenceSystem
	body bodies.Origin
}

// The fixed frames of the CIO-based chain plus TEME.
var (
	ICRF = Frame{kind: kindIcrf}
	CIRF = Frame{kind: kindCirf}
	TIRF = Frame{kind: kindTirf}
	ITRF = Frame{kind: kindItrf}
	TEME = Frame{kind: kindTeme}
)

// MOD returns the mean equator and equinox of date frame realized by the
// given reference system.
func MOD(sys earth.ReferenceSystem) Frame {
	return Frame{kind: kindMod, sys: sys}
}

// TOD returns the true equator and equinox of date frame realized by the
// given reference system.
func TOD(sys earth.ReferenceSystem) Frame {
	return Frame{kind: kindTod, sys: sys}
}

// PEF returns the pseudo-Earth-fixed frame realized by the given reference
// system.
func PEF(sys earth.ReferenceSystem) Frame {
	return Frame{kind: kindPef, sys: sys}
}

// IAU returns the body-fixed frame defined by the rotational elements of
// the given body. Bodies without rotational elements are rejected by
// ParseFrame; rotations involving them fail with an
// UndefinedPropertyError.
func IAU(body bodies.Origin) Frame {
	return Frame{kind: kindIau, body: body}
}

// Name returns the full name of the frame.
func (f Frame) Name() string {
	switch f.kind {
	case kindIcrf:
		return "International Celestial Reference Frame"
	case kindCirf:
		return "Celestial Intermediate Reference Frame"
	case kindTirf:
		return "Terrestrial Intermediate Reference Frame"
	case kindItrf:
		return "International Terrestrial Reference Frame"
	case kindTeme:
		return "True Equator Mean Equinox Reference Frame"
	case kindMod:
		return "Mean Equator and Equinox of Date Reference Frame"
	case kindTod:
		return "True Equator and Equinox of Date Reference Frame"
	case kindPef:
		return "Pseudo-Earth-Fixed Reference Frame"
	case kindIau:
		switch f.body {
		case bodies.Sun, bodies.Moon:
			return fmt.Sprintf("IAU Body-Fixed Reference Frame for the %s", f.body.Name())
		default:
			return fmt.Sprintf("IAU Body-Fixed Reference Frame for %s", f.body.Name())
		}
	}
	return "unknown"
}

// Abbreviation returns the short name of the frame.
func (f Frame) Abbreviation() string {
	switch f.kind {
	case kindIcrf:
		return "ICRF"
	case kindCirf:
		return "CIRF"
	case kindTirf:
		return "TIRF"
	case kindItrf:
		return "ITRF"
	case kindTeme:
		return "TEME"
	case kindMod:
		return "MOD"
	case kindTod:
		return "TOD"
	case kindPef:
		return "PEF"
	case kindIau:
		name := strings.NewReplacer(" ", "_", "-", "_").Replace(f.body.Name())
		return "IAU_" + strings.ToUpper(name)
	}
	return "unknown"
}

func (f Frame) String() string {
	return f.Abbreviation()
}

// System returns the IERS reference system realizing an of-date frame and
// reports false for every other kind.
func (f Frame) System() (earth.ReferenceSystem, bool) {
	if f.isOfDate() {
		return f.sys, true
	}
	return 0, false
}

// Body returns the rotating body of an IAU frame and reports false for
// every other kind.
func (f Frame) Body() (bodies.Origin, bool) {
	if f.kind == kindIau {
		return f.body, true
	}
	return 0, false
}

// IsRotating reports whether the frame rotates with respect to the ICRF.
func (f Frame) IsRotating() bool {
	switch f.kind {
	case kindTirf, kindItrf, kindPef, kindIau:
		return true
	}
	return false
}

// QuasiInertial validates that the frame can serve as the reference of an
// osculating orbit. Only the ICRF qualifies.
func (f Frame) QuasiInertial() error {
	if f.kind == kindIcrf {
		return nil
	}
	return &NonQuasiInertialFrameError{Frame: f.Abbreviation()}
}

// BodyFixed validates that the frame co-rotates with a central body. The
// ITRF and the IAU frames qualify.
func (f Frame) BodyFixed() error {
	switch f.kind {
	case kindItrf, kindIau:
		return nil
	}
	return &NonBodyFixedFrameError{Frame: f.Abbreviation()}
}

func (f Frame) isOfDate() bool {
	return f.kind == kindMod || f.kind == kindTod || f.kind == kindPef
}

// ParseFrame resolves a frame from its abbreviation, matched
// case-insensitively. The of-date frames resolve to their IERS 2010
// realization. IAU body-fixed frames parse from IAU_<BODY> for every body
// with rotational elements.
func ParseFrame(name string) (Frame, error) {
	switch strings.ToLower(name) {
	case "icrf":
		return ICRF, nil
	case "cirf":
		return CIRF, nil
	case "tirf":
		return TIRF, nil
	case "itrf":
		return ITRF, nil
	case "teme":
		return TEME, nil
	case "mod":
		return MOD(earth.Iers2010), nil
	case "tod":
		return TOD(earth.Iers2010), nil
	case "pef":
		return PEF(earth.Iers2010), nil
	}
	if f, ok := parseIauFrame(name); ok {
		return f, nil
	}
	return Frame{}, &UnknownFrameError{Name: name}
}

func parseIauFrame(s string) (Frame, bool) {
	prefix, rest, ok := strings.Cut(s, "_")
	if !ok || !strings.EqualFold(prefix, "iau") {
		return Frame{}, false
	}
	body, err := bodies.ParseOrigin(strings.ToLower(rest))
	if err != nil {
		return Frame{}, false
	}
	if _, err := body.RotationalElements(0); err != nil {
		return Frame{}, false
	}
	return IAU(body), true
}
