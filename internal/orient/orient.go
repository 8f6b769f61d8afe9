// Package orient computes the dashboard readout: the current instant
// expressed in every supported time scale, the Earth rotation angles,
// interpolated Earth orientation parameters when finals data is loaded,
// and the rotation between a selected pair of reference frames.
package orient

import (
	"fmt"
	"time"

	"github.com/litescript/ls-astro/astrotime"
	"github.com/litescript/ls-astro/earth"
	"github.com/litescript/ls-astro/eop"
	"github.com/litescript/ls-astro/frames"
	"github.com/litescript/ls-astro/units"
)

// ScaleRow is one line of the time-scale clock: the instant expressed in
// a single scale together with its offset from TAI in seconds. Err is
// set instead when the conversion is unavailable, which happens for UT1
// without an EOP provider or outside the provider's data range.
type ScaleRow struct {
	Scale     astrotime.TimeScale
	Time      astrotime.Time
	OffsetTAI float64
	Err       error
}

// EarthAngles holds the Earth rotation readout. When no exact UT1 is
// available the angles are evaluated with UT1 approximated by UTC and
// Approximate is set; the error stays below 0.9 seconds of time.
type EarthAngles struct {
	Era         units.Angle
	Gmst        units.Angle
	Gast        units.Angle
	EqEquinoxes units.Angle
	Approximate bool
}

// EOPValues holds interpolated Earth orientation parameters. Err is set
// when the instant falls outside the finals table.
type EOPValues struct {
	XPole       float64 // arcseconds
	YPole       float64 // arcseconds
	DeltaUT1TAI float64 // seconds, UT1-TAI
	DeltaUT1UTC float64 // seconds, UT1-UTC
	Err         error
}

// Readout is one computed snapshot of everything the dashboard shows.
// Partial failures are carried per section so the panels can render the
// rest.
type Readout struct {
	UTC         astrotime.UTC
	TAI         astrotime.Time
	TaiMinusUtc float64
	Scales      []ScaleRow
	Earth       EarthAngles
	EOP         *EOPValues // nil when running without finals data
	From, To    frames.Frame
	Rotation    *frames.Rotation
	RotationErr error
}

// Engine computes readouts. It is immutable after construction and safe
// for concurrent use.
type Engine struct {
	rotation frames.RotationProvider
	eop      *eop.Provider
	leap     astrotime.LeapSecondsProvider
}

// NewEngine builds an Engine. provider may be nil, in which case UT1
// conversions and polar motion are unavailable and frame rotations use
// the zero-correction default provider. leap may be nil to use the
// built-in leap second table.
func NewEngine(provider *eop.Provider, leap astrotime.LeapSecondsProvider) *Engine {
	e := &Engine{eop: provider, leap: leap}
	if e.leap == nil {
		if provider != nil {
			e.leap = provider.LeapSeconds()
		} else {
			e.leap = astrotime.BuiltinLeapSeconds{}
		}
	}
	if provider != nil {
		e.rotation = provider
	} else {
		e.rotation = frames.DefaultProvider{}
	}
	return e
}

// HasEOP reports whether finals data is loaded.
func (e *Engine) HasEOP() bool {
	return e.eop != nil
}

// Provider returns the rotation provider backing the engine.
func (e *Engine) Provider() frames.RotationProvider {
	return e.rotation
}

// LeapSeconds returns the provider used for UTC conversions.
func (e *Engine) LeapSeconds() astrotime.LeapSecondsProvider {
	return e.leap
}

// Compute builds a readout for a wall clock instant.
func (e *Engine) Compute(wall time.Time, from, to frames.Frame) (*Readout, error) {
	w := wall.UTC()
	seconds := float64(w.Second()) + float64(w.Nanosecond())/1e9
	utc, err := astrotime.CivilUTC(w.Year(), int(w.Month()), w.Day(), w.Hour(), w.Minute(), seconds)
	if err != nil {
		return nil, fmt.Errorf("system clock: %w", err)
	}
	return e.ComputeAt(utc, from, to)
}

// ComputeAt builds a readout for an explicit UTC instant.
func (e *Engine) ComputeAt(utc astrotime.UTC, from, to frames.Frame) (*Readout, error) {
	tai, err := utc.ToTAIWithProvider(e.leap)
	if err != nil {
		return nil, err
	}

	r := &Readout{UTC: utc, TAI: tai, From: from, To: to}
	if d, ok := e.leap.DeltaTAIUTC(tai); ok {
		r.TaiMinusUtc = d.ToDecimalSeconds()
	}
	r.Scales = e.scaleRows(tai)
	r.Earth = e.earthAngles(tai, utc)
	r.EOP = e.eopValues(tai)
	rot, rotErr := frames.TryRotation(from, to, tai, e.rotation)
	if rotErr != nil {
		r.RotationErr = rotErr
	} else {
		r.Rotation = &rot
	}
	return r, nil
}

func (e *Engine) scaleRows(tai astrotime.Time) []ScaleRow {
	scales := astrotime.TimeScales()
	rows := make([]ScaleRow, 0, len(scales))
	for _, s := range scales {
		row := ScaleRow{Scale: s}
		t, err := tai.TryToScale(s, e.rotation)
		if err != nil {
			row.Err = err
		} else {
			row.Time = t
			row.OffsetTAI = t.ToDelta().Sub(tai.ToDelta()).ToDecimalSeconds()
		}
		rows = append(rows, row)
	}
	return rows
}

func (e *Engine) earthAngles(tai astrotime.Time, utc astrotime.UTC) EarthAngles {
	tt, _ := tai.ToScale(astrotime.TT)
	ut1, approx := e.resolveUT1(tai, utc)
	return EarthAngles{
		Era:         earth.EarthRotationAngle(ut1).ModTwoPi(),
		Gmst:        earth.GMSTIAU2006(tt, ut1).ModTwoPi(),
		Gast:        earth.GASTIAU2006A(tt, ut1).ModTwoPi(),
		EqEquinoxes: earth.EquationOfEquinoxesIAU2006A(tt),
		Approximate: approx,
	}
}

// resolveUT1 returns the exact UT1 when the provider can serve it and
// otherwise reinterprets the UTC seconds as UT1.
func (e *Engine) resolveUT1(tai astrotime.Time, utc astrotime.UTC) (astrotime.Time, bool) {
	if e.eop != nil {
		if ut1, err := tai.TryToScale(astrotime.UT1, e.eop); err == nil {
			return ut1, false
		}
	}
	return astrotime.TimeFromDelta(astrotime.UT1, utc.ToDelta()), true
}

func (e *Engine) eopValues(tai astrotime.Time) *EOPValues {
	if e.eop == nil {
		return nil
	}
	v := &EOPValues{}
	xp, yp, err := e.eop.PolarMotion(tai)
	if err != nil {
		v.Err = err
		return v
	}
	v.XPole, v.YPole = xp, yp

	du, err := e.eop.DeltaUT1TAI(tai.ToDelta())
	if err != nil {
		v.Err = err
		return v
	}
	v.DeltaUT1TAI = du.ToDecimalSeconds()
	if d, ok := e.eop.DeltaTAIUTC(tai); ok {
		v.DeltaUT1UTC = v.DeltaUT1TAI + d.ToDecimalSeconds()
	}
	return v
}
