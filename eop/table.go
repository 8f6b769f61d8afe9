package eop

import (
	"fmt"
	"io"
	"os"

	"github.com/litescript/ls-astro/series"
)

// Table holds the contiguous valid prefix of a finals file as columnar
// arrays over whole-day MJD epochs, with Akima interpolants fitted per
// column. Polar motion is in arcseconds, the UT1 offset in seconds and
// the celestial pole offsets in milliarcseconds.
type Table struct {
	mjd         []int
	xPole       []float64
	yPole       []float64
	deltaUT1UTC []float64
	dX, dY      []float64

	xpFit, ypFit, dut1Fit *series.Akima
	dxFit, dyFit          *series.Akima
}

// Values is one interpolated row of a Table. DX and DY hold dX/dY when
// the table was parsed from finals2000A.all, the ecliptic offsets
// dψ/dε when it was parsed from finals.all, and zero when the file
// carried no nutation corrections.
type Values struct {
	XPole       float64 // arcseconds
	YPole       float64 // arcseconds
	DeltaUT1UTC float64 // seconds
	DX, DY      float64 // milliarcseconds
}

// LoadFinals parses a finals CSV file into a Table.
func LoadFinals(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	table, err := ParseFinals(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return table, nil
}

// ParseFinals parses a finals CSV stream into a Table. The first row with
// an empty x_pole column ends the valid prefix; a row missing y_pole or
// UT1-UTC despite a present x_pole is an error.
func ParseFinals(r io.Reader) (*Table, error) {
	records, err := readFinals(r)
	if err != nil {
		return nil, err
	}

	t := &Table{}
	for i, rec := range records {
		if !rec.xPole.ok {
			break
		}
		if !rec.yPole.ok {
			return nil, fmt.Errorf("finals CSV record %d is missing y_pole despite present x_pole", i+1)
		}
		if !rec.deltaUT1UTC.ok {
			return nil, fmt.Errorf("finals CSV record %d is missing UT1-UTC despite present x_pole", i+1)
		}
		t.mjd = append(t.mjd, int(rec.mjd))
		t.xPole = append(t.xPole, rec.xPole.value)
		t.yPole = append(t.yPole, rec.yPole.value)
		t.deltaUT1UTC = append(t.deltaUT1UTC, rec.deltaUT1UTC.value)

		dx, dy := rec.dX, rec.dY
		if !dx.ok {
			dx, dy = rec.dPsi, rec.dEps
		}
		if dx.ok && dy.ok && len(t.dX) == i {
			t.dX = append(t.dX, dx.value)
			t.dY = append(t.dY, dy.value)
		}
	}

	if t.xpFit, err = series.NewAkima(t.mjd, t.xPole); err != nil {
		return nil, fmt.Errorf("fitting x_pole: %w", err)
	}
	if t.ypFit, err = series.NewAkima(t.mjd, t.yPole); err != nil {
		return nil, fmt.Errorf("fitting y_pole: %w", err)
	}
	if t.dut1Fit, err = series.NewAkima(t.mjd, t.deltaUT1UTC); err != nil {
		return nil, fmt.Errorf("fitting UT1-UTC: %w", err)
	}
	if len(t.dX) >= minTablePoints {
		if t.dxFit, err = series.NewAkima(t.mjd[:len(t.dX)], t.dX); err != nil {
			return nil, fmt.Errorf("fitting dX: %w", err)
		}
		if t.dyFit, err = series.NewAkima(t.mjd[:len(t.dY)], t.dY); err != nil {
			return nil, fmt.Errorf("fitting dY: %w", err)
		}
	}
	return t, nil
}

// The Akima fit needs five points per column.
const minTablePoints = 5

// Len returns the number of tabulated epochs.
func (t *Table) Len() int {
	return len(t.mjd)
}

// Range returns the first and last tabulated MJD.
func (t *Table) Range() (int, int) {
	return t.mjd[0], t.mjd[len(t.mjd)-1]
}

// HasCorrections reports whether the table carries nutation corrections.
func (t *Table) HasCorrections() bool {
	return t.dxFit != nil
}

// Interpolate evaluates every column at the given MJD. Queries outside
// the tabulated range fail with an ExtrapolationError carrying the
// boundary values. The nutation correction columns usually end before
// the polar motion prefix; beyond their range they clamp to the last
// tabulated value.
func (t *Table) Interpolate(mjd float64) (Values, error) {
	v := Values{
		XPole:       t.xpFit.Interpolate(mjd),
		YPole:       t.ypFit.Interpolate(mjd),
		DeltaUT1UTC: t.dut1Fit.Interpolate(mjd),
	}
	if t.dxFit != nil {
		v.DX = t.dxFit.Interpolate(mjd)
		v.DY = t.dyFit.Interpolate(mjd)
	}
	if first, last := t.Range(); mjd < float64(first) || mjd > float64(last) {
		return Values{}, &ExtrapolationError{
			Values: []float64{v.XPole, v.YPole, v.DeltaUT1UTC},
		}
	}
	return v, nil
}
