package orient

import (
	"fmt"
	"io"

	"github.com/litescript/ls-astro/astrotime"
	"github.com/litescript/ls-astro/units"
)

// WriteSummary prints the readout as plain text: every time scale, the
// Earth rotation angles, and the EOP block when finals data is loaded.
func WriteSummary(w io.Writer, r *Readout) {
	fmt.Fprintf(w, "%-5s %.9v\n", "UTC", r.UTC)
	for _, row := range r.Scales {
		if row.Err != nil {
			fmt.Fprintf(w, "%-5s unavailable (%v)\n", row.Scale, row.Err)
			continue
		}
		fmt.Fprintf(w, "%-5s %.9v  %s\n", row.Scale, row.Time, FormatOffset(row.OffsetTAI))
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%-8s %s\n", "ERA", FormatDegrees(r.Earth.Era))
	fmt.Fprintf(w, "%-8s %s\n", "GMST", FormatHMS(r.Earth.Gmst))
	fmt.Fprintf(w, "%-8s %s\n", "GAST", FormatHMS(r.Earth.Gast))
	fmt.Fprintf(w, "%-8s %s\n", "EqEq", FormatArcseconds(r.Earth.EqEquinoxes))
	if r.Earth.Approximate {
		fmt.Fprintln(w, "UT1 approximated by UTC")
	}

	if r.EOP == nil {
		return
	}
	if r.EOP.Err != nil {
		fmt.Fprintf(w, "EOP unavailable: %v\n", r.EOP.Err)
		return
	}
	fmt.Fprintf(w, "%-8s %s\n", "x_p", FormatArcseconds(units.Arcseconds(r.EOP.XPole)))
	fmt.Fprintf(w, "%-8s %s\n", "y_p", FormatArcseconds(units.Arcseconds(r.EOP.YPole)))
	fmt.Fprintf(w, "%-8s %+.7f s\n", "UT1-UTC", r.EOP.DeltaUT1UTC)
}

// WriteConversion prints the instant in a single scale.
func WriteConversion(w io.Writer, r *Readout, scale astrotime.TimeScale) error {
	for _, row := range r.Scales {
		if row.Scale != scale {
			continue
		}
		if row.Err != nil {
			return row.Err
		}
		fmt.Fprintf(w, "%.9v\n", row.Time)
		return nil
	}
	return fmt.Errorf("no %s row in readout", scale)
}

// WriteMatrix prints the rotation matrix and its time derivative for the
// readout's frame pair.
func WriteMatrix(w io.Writer, r *Readout) error {
	if r.RotationErr != nil {
		return r.RotationErr
	}

	fmt.Fprintf(w, "%s -> %s at %v\n\n", r.From, r.To, r.TAI)
	m := r.Rotation.Matrix()
	for i := 0; i < 3; i++ {
		fmt.Fprintf(w, "  %+.12f  %+.12f  %+.12f\n", m.At(i, 0), m.At(i, 1), m.At(i, 2))
	}

	fmt.Fprintf(w, "\nd/dt (1/s)\n")
	dm := r.Rotation.Derivative()
	for i := 0; i < 3; i++ {
		fmt.Fprintf(w, "  %+.9e  %+.9e  %+.9e\n", dm.At(i, 0), dm.At(i, 1), dm.At(i, 2))
	}
	return nil
}
