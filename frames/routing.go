package frames

import (
	"errors"
	"fmt"

	"github.com/litescript/ls-astro/astrotime"
	"github.com/litescript/ls-astro/earth"
)

// ErrIncompatibleReferenceSystems is returned when both endpoints are
// of-date frames realized by different IERS reference systems.
var ErrIncompatibleReferenceSystems = errors.New("incompatible reference systems")

// TryRotation builds the rotation taking coordinates from the origin
// frame to the target frame at the given instant. Routing pivots on the
// ICRF: the CIO chain serves CIRF, TIRF and ITRF, the equinox chain
// serves the of-date frames of one reference system, TEME attaches
// through PEF under IERS 1996 and IAU body-fixed frames attach directly
// to the ICRF. Identical frames yield the identity rotation.
func TryRotation(origin, target Frame, t astrotime.Time, p RotationProvider) (Rotation, error) {
	if origin == target {
		return IdentityRotation(), nil
	}
	if origin.isOfDate() && target.isOfDate() && origin.sys != target.sys {
		return Rotation{}, ErrIncompatibleReferenceSystems
	}
	nodes := append([]Frame{origin}, append(route(origin, target), target)...)
	rot := IdentityRotation()
	for i := 0; i+1 < len(nodes); i++ {
		leg, err := legRotation(p, nodes[i], nodes[i+1], t)
		if err != nil {
			return Rotation{}, err
		}
		rot = rot.Compose(leg)
	}
	return rot, nil
}

// route lists the frames visited between origin and target, exclusive.
// Every consecutive pair maps to a direct leg.
func route(origin, target Frame) []Frame {
	s := viaSystem(origin, target)
	switch origin.kind {
	case kindIcrf:
		switch target.kind {
		case kindTirf:
			return []Frame{CIRF}
		case kindItrf:
			return []Frame{CIRF, TIRF}
		case kindTod:
			return []Frame{MOD(s)}
		case kindPef:
			return []Frame{MOD(s), TOD(s)}
		case kindTeme:
			return []Frame{MOD(s), TOD(s), PEF(s)}
		}
	case kindCirf:
		switch target.kind {
		case kindItrf:
			return []Frame{TIRF}
		case kindMod, kindIau:
			return []Frame{ICRF}
		case kindTod:
			return []Frame{ICRF, MOD(s)}
		case kindPef:
			return []Frame{ICRF, MOD(s), TOD(s)}
		case kindTeme:
			return []Frame{ICRF, MOD(s), TOD(s), PEF(s)}
		}
	case kindTirf:
		switch target.kind {
		case kindIcrf:
			return []Frame{CIRF}
		case kindMod, kindIau:
			return []Frame{CIRF, ICRF}
		case kindTod:
			return []Frame{CIRF, ICRF, MOD(s)}
		case kindPef:
			return []Frame{ITRF}
		case kindTeme:
			return []Frame{ITRF, PEF(s)}
		}
	case kindItrf:
		switch target.kind {
		case kindIcrf:
			return []Frame{TIRF, CIRF}
		case kindCirf:
			return []Frame{TIRF}
		case kindIau:
			return []Frame{TIRF, CIRF, ICRF}
		case kindMod:
			return []Frame{PEF(s), TOD(s)}
		case kindTod:
			return []Frame{PEF(s)}
		case kindTeme:
			return []Frame{PEF(s)}
		}
	case kindTeme:
		switch target.kind {
		case kindIcrf:
			return []Frame{PEF(s), TOD(s), MOD(s)}
		case kindCirf, kindIau:
			return []Frame{PEF(s), TOD(s), MOD(s), ICRF}
		case kindTirf:
			return []Frame{PEF(s), ITRF}
		case kindItrf:
			return []Frame{PEF(s)}
		case kindMod:
			return []Frame{PEF(s), TOD(s)}
		case kindTod:
			return []Frame{PEF(s)}
		}
	case kindMod:
		switch target.kind {
		case kindCirf, kindIau:
			return []Frame{ICRF}
		case kindTirf:
			return []Frame{ICRF, CIRF}
		case kindItrf:
			return []Frame{TOD(s), PEF(s)}
		case kindPef:
			return []Frame{TOD(s)}
		case kindTeme:
			return []Frame{TOD(s), PEF(s)}
		}
	case kindTod:
		switch target.kind {
		case kindIcrf:
			return []Frame{MOD(s)}
		case kindCirf, kindIau:
			return []Frame{MOD(s), ICRF}
		case kindTirf:
			return []Frame{MOD(s), ICRF, CIRF}
		case kindItrf:
			return []Frame{PEF(s)}
		case kindTeme:
			return []Frame{PEF(s)}
		}
	case kindPef:
		switch target.kind {
		case kindIcrf:
			return []Frame{TOD(s), MOD(s)}
		case kindCirf, kindIau:
			return []Frame{TOD(s), MOD(s), ICRF}
		case kindTirf:
			return []Frame{ITRF}
		case kindMod:
			return []Frame{TOD(s)}
		}
	case kindIau:
		switch target.kind {
		case kindCirf, kindMod, kindIau:
			return []Frame{ICRF}
		case kindTirf:
			return []Frame{ICRF, CIRF}
		case kindItrf:
			return []Frame{ICRF, CIRF, TIRF}
		case kindTod:
			return []Frame{ICRF, MOD(s)}
		case kindPef:
			return []Frame{ICRF, MOD(s), TOD(s)}
		case kindTeme:
			return []Frame{ICRF, MOD(s), TOD(s), PEF(s)}
		}
	}
	return nil
}

// viaSystem picks the reference system realizing of-date intermediates.
// An of-date endpoint fixes it; chains between the remaining frames and
// TEME run under IERS 1996.
func viaSystem(origin, target Frame) earth.ReferenceSystem {
	if origin.isOfDate() {
		return origin.sys
	}
	if target.isOfDate() {
		return target.sys
	}
	return earth.Iers1996
}

// legRotation builds the rotation for a directly connected frame pair.
func legRotation(p RotationProvider, from, to Frame, t astrotime.Time) (Rotation, error) {
	switch {
	case from.kind == kindIcrf && to.kind == kindCirf:
		return icrfToCirf(p, t)
	case from.kind == kindCirf && to.kind == kindIcrf:
		return transposed(icrfToCirf(p, t))
	case from.kind == kindCirf && to.kind == kindTirf:
		return cirfToTirf(p, t)
	case from.kind == kindTirf && to.kind == kindCirf:
		return transposed(cirfToTirf(p, t))
	case from.kind == kindTirf && to.kind == kindItrf:
		return tirfToItrf(p, t)
	case from.kind == kindItrf && to.kind == kindTirf:
		return transposed(tirfToItrf(p, t))
	case from.kind == kindIcrf && to.kind == kindMod:
		return icrfToMod(p, to.sys, t)
	case from.kind == kindMod && to.kind == kindIcrf:
		return transposed(icrfToMod(p, from.sys, t))
	case from.kind == kindMod && to.kind == kindTod:
		return modToTod(p, to.sys, t)
	case from.kind == kindTod && to.kind == kindMod:
		return transposed(modToTod(p, from.sys, t))
	case from.kind == kindTod && to.kind == kindPef:
		return todToPef(p, to.sys, t)
	case from.kind == kindPef && to.kind == kindTod:
		return transposed(todToPef(p, from.sys, t))
	case from.kind == kindPef && to.kind == kindItrf:
		return pefToItrf(p, from.sys, t)
	case from.kind == kindItrf && to.kind == kindPef:
		return transposed(pefToItrf(p, to.sys, t))
	case from.kind == kindPef && to.kind == kindTeme:
		return pefToTeme(p, t)
	case from.kind == kindTeme && to.kind == kindPef:
		return transposed(pefToTeme(p, t))
	case from.kind == kindIcrf && to.kind == kindIau:
		return icrfToIau(p, to.body, t)
	case from.kind == kindIau && to.kind == kindIcrf:
		return transposed(icrfToIau(p, from.body, t))
	}
	return Rotation{}, fmt.Errorf("no direct rotation from %s to %s", from, to)
}

func transposed(r Rotation, err error) (Rotation, error) {
	if err != nil {
		return Rotation{}, err
	}
	return r.Transpose(), nil
}
