package astrotime

import (
	"fmt"
	"strings"
)

// TimeScale identifies one of the six continuous astronomical time scales.
// UTC is not a TimeScale; being discontinuous across leap seconds it is
// modelled separately by [UTC].
type TimeScale int

const (
	TAI TimeScale = iota
	TCB
	TCG
	TDB
	TT
	UT1
)

// UnknownTimeScaleError is returned when a string does not name a supported
// time scale.
type UnknownTimeScaleError struct {
	Name string
}

func (e *UnknownTimeScaleError) Error() string {
	return fmt.Sprintf("unknown time scale `%s`", e.Name)
}

// Abbreviation returns the conventional short name of the scale, e.g. "TAI".
func (s TimeScale) Abbreviation() string {
	switch s {
	case TAI:
		return "TAI"
	case TCB:
		return "TCB"
	case TCG:
		return "TCG"
	case TDB:
		return "TDB"
	case TT:
		return "TT"
	case UT1:
		return "UT1"
	}
	return "unknown"
}

// Name returns the full name of the scale.
func (s TimeScale) Name() string {
	switch s {
	case TAI:
		return "International Atomic Time"
	case TCB:
		return "Barycentric Coordinate Time"
	case TCG:
		return "Geocentric Coordinate Time"
	case TDB:
		return "Barycentric Dynamical Time"
	case TT:
		return "Terrestrial Time"
	case UT1:
		return "Universal Time"
	}
	return "unknown"
}

func (s TimeScale) String() string {
	return s.Abbreviation()
}

// TimeScales lists all supported scales in a stable order.
func TimeScales() []TimeScale {
	return []TimeScale{TAI, TCB, TCG, TDB, TT, UT1}
}

// ParseTimeScale matches a scale by abbreviation or full name, ignoring case.
func ParseTimeScale(name string) (TimeScale, error) {
	switch strings.ToLower(name) {
	case "tai", "international atomic time":
		return TAI, nil
	case "tcb", "barycentric coordinate time":
		return TCB, nil
	case "tcg", "geocentric coordinate time":
		return TCG, nil
	case "tdb", "barycentric dynamical time":
		return TDB, nil
	case "tt", "terrestrial time":
		return TT, nil
	case "ut1", "universal time":
		return UT1, nil
	}
	return 0, &UnknownTimeScaleError{Name: name}
}
