package frames

import (
	"errors"
	"testing"

	"github.com/litescript/ls-astro/astrotime"
	"github.com/litescript/ls-astro/earth"
	"github.com/litescript/ls-astro/eop"
)

var (
	_ RotationProvider = DefaultProvider{}
	_ RotationProvider = (*eop.Provider)(nil)
)

func TestDefaultProvider(t *testing.T) {
	p := DefaultProvider{}

	if _, err := p.DeltaUT1TAI(astrotime.TimeDelta{}); !errors.Is(err, astrotime.ErrMissingEOPProvider) {
		t.Errorf("DeltaUT1TAI error = %v, want ErrMissingEOPProvider", err)
	}
	if _, err := p.DeltaTAIUT1(astrotime.TimeDelta{}); !errors.Is(err, astrotime.ErrMissingEOPProvider) {
		t.Errorf("DeltaTAIUT1 error = %v, want ErrMissingEOPProvider", err)
	}

	tt := twoPartJD(t, astrotime.TT, 2454195.5, 0.5)
	for _, sys := range earth.ReferenceSystems() {
		corr, err := p.Corrections(tt, sys)
		if err != nil {
			t.Fatalf("Corrections(%v): %v", sys, err)
		}
		if !corr.IsZero() {
			t.Errorf("Corrections(%v) = %+v, want zero", sys, corr)
		}
	}
	pole, err := p.PoleCoords(tt)
	if err != nil {
		t.Fatalf("PoleCoords: %v", err)
	}
	if !pole.IsZero() {
		t.Errorf("PoleCoords = %+v, want zero", pole)
	}
}
