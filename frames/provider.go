package frames

import (
	"github.com/litescript/ls-astro/astrotime"
	"github.com/litescript/ls-astro/earth"
)

// RotationProvider supplies the measured Earth orientation data consumed
// by the frame transformations: UT1 offsets, celestial pole corrections
// per reference system and polar motion coordinates.
//
// *eop.Provider implements the interface when a finals file is loaded;
// DefaultProvider substitutes zeros otherwise.
type RotationProvider interface {
	astrotime.UT1Provider

	// Corrections returns the observed celestial pole corrections for the
	// given reference system at t.
	Corrections(t astrotime.Time, sys earth.ReferenceSystem) (earth.Corrections, error)

	// PoleCoords returns the observed coordinates of the celestial
	// ephemeris pole at t.
	PoleCoords(t astrotime.Time) (earth.PoleCoords, error)
}

// DefaultProvider serves zero corrections and zero polar motion and fails
// conversions that touch UT1 with ErrMissingEOPProvider. It suffices for
// every leg evaluated on TT or TDB alone, including the IAU body-fixed
// transformations.
type DefaultProvider struct{}

func (DefaultProvider) DeltaUT1TAI(tai astrotime.TimeDelta) (astrotime.TimeDelta, error) {
	return astrotime.TimeDelta{}, astrotime.ErrMissingEOPProvider
}

func (DefaultProvider) DeltaTAIUT1(ut1 astrotime.TimeDelta) (astrotime.TimeDelta, error) {
	return astrotime.TimeDelta{}, astrotime.ErrMissingEOPProvider
}

func (DefaultProvider) Corrections(t astrotime.Time, sys earth.ReferenceSystem) (earth.Corrections, error) {
	return earth.Corrections{}, nil
}

func (DefaultProvider) PoleCoords(t astrotime.Time) (earth.PoleCoords, error) {
	return earth.PoleCoords{}, nil
}
