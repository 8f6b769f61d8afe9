package eop

import (
	"errors"
	"fmt"
	"os"

	"github.com/litescript/ls-astro/astrotime"
	"github.com/litescript/ls-astro/earth"
	"github.com/litescript/ls-astro/series"
	"github.com/litescript/ls-astro/units"
)

var (
	// ErrNoFiles is returned when a Parser runs without any input file.
	ErrNoFiles = errors.New("either a finals.all.csv or a finals2000A.all.csv file must be provided")

	// ErrMissingIAU1980 is returned when ecliptic nutation corrections are
	// requested but no finals.all.csv file was loaded.
	ErrMissingIAU1980 = errors.New("no finals.all.csv file was loaded")

	// ErrMissingIAU2000 is returned when celestial pole offsets are
	// requested but no finals2000A.all.csv file was loaded.
	ErrMissingIAU2000 = errors.New("no finals2000A.all.csv file was loaded")
)

// Parser configures and builds an EOP Provider from IERS finals files.
//
// The IERS publish the parameters in two files that differ only in which
// nutation correction columns are populated: finals.all carries the
// IAU 1980 ecliptic offsets and finals2000A.all the IAU 2000 celestial
// pole offsets. Either file alone serves polar motion and UT1; providing
// both merges the records in one pass.
type Parser struct {
	paths []string
	leap  astrotime.LeapSecondsProvider
}

// NewParser returns a Parser with no inputs configured.
func NewParser() *Parser {
	return &Parser{}
}

// FromPath configures a single finals file.
func (p *Parser) FromPath(path string) *Parser {
	p.paths = []string{path}
	return p
}

// FromPaths configures two finals files to be parsed in lockstep.
func (p *Parser) FromPaths(path1, path2 string) *Parser {
	p.paths = []string{path1, path2}
	return p
}

// WithLeapSeconds overrides the built-in leap second table, typically
// with a LeapSecondsKernel.
func (p *Parser) WithLeapSeconds(provider astrotime.LeapSecondsProvider) *Parser {
	p.leap = provider
	return p
}

// Parse reads the configured files and builds the Provider.
func (p *Parser) Parse() (*Provider, error) {
	if len(p.paths) == 0 {
		return nil, ErrNoFiles
	}
	records, err := loadRecords(p.paths[0])
	if err != nil {
		return nil, err
	}
	if len(p.paths) > 1 {
		other, err := loadRecords(p.paths[1])
		if err != nil {
			return nil, err
		}
		if len(other) < len(records) {
			records = records[:len(other)]
		}
		for i := range records {
			records[i] = records[i].merge(other[i])
		}
	}

	leap := p.leap
	if leap == nil {
		leap = astrotime.BuiltinLeapSeconds{}
	}

	var j2000 []float64
	var dut1TAI, xPole, yPole []float64
	var dPsi, dEps, dX, dY []float64
	for i, rec := range records {
		j2000 = append(j2000, rec.mjd*astrotime.SecondsPerDay-astrotime.SecondsBetweenMJDAndJ2000)

		if rec.deltaUT1UTC.ok {
			utc, err := astrotime.CivilUTC(rec.year, rec.month, rec.day, 0, 0, 0)
			if err != nil {
				return nil, fmt.Errorf("finals CSV record %d: %w", i+1, err)
			}
			deltaUTCTAI, ok := leap.DeltaUTCTAI(utc)
			if !ok {
				return nil, fmt.Errorf("no leap second data for %s", utc)
			}
			dut1TAI = append(dut1TAI, rec.deltaUT1UTC.value+deltaUTCTAI.ToDecimalSeconds())
		}
		if rec.xPole.ok && rec.yPole.ok {
			xPole = append(xPole, rec.xPole.value)
			yPole = append(yPole, rec.yPole.value)
		}
		if rec.dPsi.ok && rec.dEps.ok {
			dPsi = append(dPsi, rec.dPsi.value)
			dEps = append(dEps, rec.dEps.value)
		}
		if rec.dX.ok && rec.dY.ok {
			dX = append(dX, rec.dX.value)
			dY = append(dY, rec.dY.value)
		}
	}

	fit := func(name string, values []float64) (*series.Series, error) {
		s, err := series.New(j2000[:len(values)], values, series.CubicSpline)
		if err != nil {
			return nil, fmt.Errorf("fitting %s: %w", name, err)
		}
		return s, nil
	}

	provider := &Provider{leap: leap}
	if provider.xPole, err = fit("x_pole", xPole); err != nil {
		return nil, err
	}
	if provider.yPole, err = fit("y_pole", yPole); err != nil {
		return nil, err
	}
	if provider.deltaUT1TAI, err = fit("UT1-TAI", dut1TAI); err != nil {
		return nil, err
	}
	if len(dPsi) > 0 {
		if provider.dPsi, err = fit("dPsi", dPsi); err != nil {
			return nil, err
		}
		if provider.dEps, err = fit("dEpsilon", dEps); err != nil {
			return nil, err
		}
	}
	if len(dX) > 0 {
		if provider.dX, err = fit("dX", dX); err != nil {
			return nil, err
		}
		if provider.dY, err = fit("dY", dY); err != nil {
			return nil, err
		}
	}
	return provider, nil
}

func loadRecords(path string) ([]finalsRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	records, err := readFinals(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return records, nil
}

// Provider serves interpolated Earth orientation parameters from cubic
// spline series over seconds since J2000. Polar motion and nutation
// corrections are indexed by the UTC pseudo-time axis, the UT1 offset by
// TAI. A Provider is immutable and safe for concurrent use. It
// implements the astrotime UT1 and leap second provider interfaces and
// the frames rotation provider interface.
type Provider struct {
	xPole, yPole *series.Series // arcseconds
	deltaUT1TAI  *series.Series // seconds
	dPsi, dEps   *series.Series // milliarcseconds
	dX, dY       *series.Series // milliarcseconds
	leap         astrotime.LeapSecondsProvider
}

// utcSeconds renders the instant on the UTC pseudo-time axis the data
// series are indexed by.
func (p *Provider) utcSeconds(t astrotime.Time) (float64, error) {
	tai, err := t.TryToScale(astrotime.TAI, p)
	if err != nil {
		return 0, err
	}
	utc, err := tai.ToUTCWithProvider(p.leap)
	if err != nil {
		return 0, err
	}
	return utc.ToDelta().ToDecimalSeconds(), nil
}

// PolarMotion returns the interpolated pole coordinates in arcseconds.
func (p *Provider) PolarMotion(t astrotime.Time) (float64, float64, error) {
	s, err := p.utcSeconds(t)
	if err != nil {
		return 0, 0, err
	}
	xp := p.xPole.Interpolate(s)
	yp := p.yPole.Interpolate(s)
	if first, _ := p.xPole.First(); s < first {
		return 0, 0, &ExtrapolationError{Values: []float64{xp, yp}}
	}
	if last, _ := p.xPole.Last(); s > last {
		return 0, 0, &ExtrapolationError{Values: []float64{xp, yp}}
	}
	return xp, yp, nil
}

// NutationPrecessionIAU1980 returns the interpolated ecliptic nutation
// corrections dψ, dε in milliarcseconds.
func (p *Provider) NutationPrecessionIAU1980(t astrotime.Time) (float64, float64, error) {
	if p.dPsi == nil {
		return 0, 0, ErrMissingIAU1980
	}
	return p.interpolatePair(t, p.dPsi, p.dEps)
}

// NutationPrecessionIAU2000 returns the interpolated celestial pole
// offsets dX, dY in milliarcseconds.
func (p *Provider) NutationPrecessionIAU2000(t astrotime.Time) (float64, float64, error) {
	if p.dX == nil {
		return 0, 0, ErrMissingIAU2000
	}
	return p.interpolatePair(t, p.dX, p.dY)
}

func (p *Provider) interpolatePair(t astrotime.Time, a, b *series.Series) (float64, float64, error) {
	s, err := p.utcSeconds(t)
	if err != nil {
		return 0, 0, err
	}
	va := a.Interpolate(s)
	vb := b.Interpolate(s)
	if first, _ := a.First(); s < first {
		return 0, 0, &ExtrapolationError{Values: []float64{va, vb}}
	}
	if last, _ := a.Last(); s > last {
		return 0, 0, &ExtrapolationError{Values: []float64{va, vb}}
	}
	return va, vb, nil
}

// DeltaUT1TAI returns UT1 minus TAI at a TAI instant given as seconds
// since J2000.
func (p *Provider) DeltaUT1TAI(tai astrotime.TimeDelta) (astrotime.TimeDelta, error) {
	seconds := tai.ToDecimalSeconds()
	value := p.deltaUT1TAI.Interpolate(seconds)
	if err := p.checkUT1Range(seconds, value); err != nil {
		return astrotime.TimeDelta{}, err
	}
	return astrotime.DeltaFromDecimalSeconds(value)
}

// DeltaTAIUT1 returns TAI minus UT1 at a UT1 instant given as seconds
// since J2000. The series is indexed by TAI, so the UT1 argument is
// refined by re-interpolating at the shifted instant.
func (p *Provider) DeltaTAIUT1(ut1 astrotime.TimeDelta) (astrotime.TimeDelta, error) {
	seconds := ut1.ToDecimalSeconds()
	value := p.deltaUT1TAI.Interpolate(seconds)
	for range 2 {
		value = p.deltaUT1TAI.Interpolate(seconds - value)
	}
	if err := p.checkUT1Range(seconds, value); err != nil {
		return astrotime.TimeDelta{}, err
	}
	delta, err := astrotime.DeltaFromDecimalSeconds(value)
	if err != nil {
		return astrotime.TimeDelta{}, err
	}
	return delta.Neg(), nil
}

func (p *Provider) checkUT1Range(seconds, value float64) error {
	if first, _ := p.deltaUT1TAI.First(); seconds < first {
		return &ExtrapolationError{Values: []float64{value}}
	}
	if last, _ := p.deltaUT1TAI.Last(); seconds > last {
		return &ExtrapolationError{Values: []float64{value}}
	}
	return nil
}

// LeapSeconds returns the leap second provider backing the UTC bridge.
func (p *Provider) LeapSeconds() astrotime.LeapSecondsProvider {
	return p.leap
}

// DeltaTAIUTC implements astrotime.LeapSecondsProvider.
func (p *Provider) DeltaTAIUTC(tai astrotime.Time) (astrotime.TimeDelta, bool) {
	return p.leap.DeltaTAIUTC(tai)
}

// DeltaUTCTAI implements astrotime.LeapSecondsProvider.
func (p *Provider) DeltaUTCTAI(utc astrotime.UTC) (astrotime.TimeDelta, bool) {
	return p.leap.DeltaUTCTAI(utc)
}

// IsLeapSecondDate implements astrotime.LeapSecondsProvider.
func (p *Provider) IsLeapSecondDate(date astrotime.Date) bool {
	return p.leap.IsLeapSecondDate(date)
}

// IsLeapSecond implements astrotime.LeapSecondsProvider.
func (p *Provider) IsLeapSecond(tai astrotime.Time) bool {
	return p.leap.IsLeapSecond(tai)
}

// Corrections returns the observed nutation corrections in the basis of
// the reference system: ecliptic offsets for IERS 1996, celestial pole
// offsets for IERS 2003 and 2010.
func (p *Provider) Corrections(t astrotime.Time, sys earth.ReferenceSystem) (earth.Corrections, error) {
	var x, y float64
	var err error
	if sys == earth.Iers1996 {
		x, y, err = p.NutationPrecessionIAU1980(t)
	} else {
		x, y, err = p.NutationPrecessionIAU2000(t)
	}
	if err != nil {
		return earth.Corrections{}, err
	}
	return earth.Corrections{
		X: units.Milliarcseconds(x),
		Y: units.Milliarcseconds(y),
	}, nil
}

// PoleCoords returns the interpolated pole coordinates as angles.
func (p *Provider) PoleCoords(t astrotime.Time) (earth.PoleCoords, error) {
	xp, yp, err := p.PolarMotion(t)
	if err != nil {
		return earth.PoleCoords{}, err
	}
	return earth.PoleCoords{
		Xp: units.Arcseconds(xp),
		Yp: units.Arcseconds(yp),
	}, nil
}
