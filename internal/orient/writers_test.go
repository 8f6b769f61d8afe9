package orient

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/litescript/ls-astro/astrotime"
	"github.com/litescript/ls-astro/bodies"
	"github.com/litescript/ls-astro/frames"
)

func TestWriteSummaryWithoutEOP(t *testing.T) {
	engine := NewEngine(nil, nil)
	utc := mustUTC(t, "2024-07-05T09:09:18.173")
	r, err := engine.ComputeAt(utc, frames.ICRF, frames.IAU(bodies.Earth))
	if err != nil {
		t.Fatalf("ComputeAt: %v", err)
	}

	var buf bytes.Buffer
	WriteSummary(&buf, r)
	out := buf.String()

	wants := []string{
		"UTC   2024-07-05T09:09:18.173000000 UTC",
		"TAI   2024-07-05T09:09:55.173000000 TAI",
		"+32.184000000 s",
		"UT1   unavailable",
		"ERA",
		"GMST",
		"GAST",
		"EqEq",
		"UT1 approximated by UTC",
	}
	for _, want := range wants {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q\n%s", want, out)
		}
	}
	if strings.Contains(out, "x_p") {
		t.Error("summary must omit the EOP block without finals data")
	}
}

func TestWriteSummaryWithEOP(t *testing.T) {
	engine := fixtureEngine(t)
	utc := mustUTC(t, "2017-01-01T12:00:00.000")
	r, err := engine.ComputeAt(utc, frames.ICRF, frames.ITRF)
	if err != nil {
		t.Fatalf("ComputeAt: %v", err)
	}

	var buf bytes.Buffer
	WriteSummary(&buf, r)
	out := buf.String()

	wants := []string{
		"x_p      +0.105500″",
		"y_p      +0.289000″",
		"UT1-UTC  +0.4089000 s",
	}
	for _, want := range wants {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q\n%s", want, out)
		}
	}
	if strings.Contains(out, "approximated") {
		t.Error("exact UT1 must not be flagged as approximate")
	}
}

func TestWriteConversion(t *testing.T) {
	engine := NewEngine(nil, nil)
	utc := mustUTC(t, "2024-07-05T09:09:18.173")
	r, err := engine.ComputeAt(utc, frames.ICRF, frames.IAU(bodies.Earth))
	if err != nil {
		t.Fatalf("ComputeAt: %v", err)
	}

	var buf bytes.Buffer
	if err := WriteConversion(&buf, r, astrotime.TT); err != nil {
		t.Fatalf("WriteConversion: %v", err)
	}
	if got, want := buf.String(), "2024-07-05T09:10:27.357000000 TT\n"; got != want {
		t.Errorf("conversion = %q, want %q", got, want)
	}

	// UT1 has no provider and must surface the conversion error.
	if err := WriteConversion(&buf, r, astrotime.UT1); !errors.Is(err, astrotime.ErrMissingEOPProvider) {
		t.Errorf("expected missing provider error, got %v", err)
	}
}

func TestWriteMatrix(t *testing.T) {
	engine := NewEngine(nil, nil)
	utc := mustUTC(t, "2024-07-05T09:09:18.173")
	r, err := engine.ComputeAt(utc, frames.ICRF, frames.IAU(bodies.Earth))
	if err != nil {
		t.Fatalf("ComputeAt: %v", err)
	}

	var buf bytes.Buffer
	if err := WriteMatrix(&buf, r); err != nil {
		t.Fatalf("WriteMatrix: %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, "ICRF -> IAU_EARTH at 2024-07-05T09:09:55.173 TAI") {
		t.Errorf("matrix header missing:\n%s", out)
	}
	if !strings.Contains(out, "d/dt (1/s)") {
		t.Error("matrix output missing the derivative block")
	}
	// Nine matrix entries and nine derivative entries.
	if got := strings.Count(out, "  "); got < 6 {
		t.Errorf("expected six value rows, got output:\n%s", out)
	}
}

func TestWriteMatrixRotationError(t *testing.T) {
	engine := NewEngine(nil, nil)
	utc := mustUTC(t, "2024-07-05T09:09:18.173")
	r, err := engine.ComputeAt(utc, frames.ICRF, frames.ITRF)
	if err != nil {
		t.Fatalf("ComputeAt: %v", err)
	}

	var buf bytes.Buffer
	if err := WriteMatrix(&buf, r); err == nil {
		t.Fatal("expected rotation error without an EOP provider")
	}
	if buf.Len() != 0 {
		t.Errorf("no output expected on error, got %q", buf.String())
	}
}
