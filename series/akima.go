package series

import (
	"math"
	"sort"
)

const minPointsAkima = 5

// Akima interpolates tabulated values on an integer axis with Akima's
// piecewise cubic method. The fit synthesizes two extra slopes beyond
// each end of the table, and evaluation outside the axis clamps to the
// boundary ordinates.
type Akima struct {
	x       []int
	y       []float64
	b, c, d []float64
}

// NewAkima fits an Akima interpolant to samples on a strictly
// increasing integer axis.
func NewAkima(x []int, y []float64) (*Akima, error) {
	n := len(x)
	if len(y) != n {
		return nil, &DimensionError{X: n, Y: len(y)}
	}
	if n < minPointsAkima {
		return nil, &InsufficientPointsError{Needed: minPointsAkima, Got: n}
	}
	for i := 1; i < n; i++ {
		if x[i] <= x[i-1] {
			return nil, ErrNonMonotonic
		}
	}

	// Segment slopes padded with two synthetic slopes on each side.
	m := make([]float64, 0, n+3)
	m = append(m, 0, 0)
	for i := 0; i < n-1; i++ {
		m = append(m, (y[i+1]-y[i])/float64(x[i+1]-x[i]))
	}
	m[1] = 2*m[2] - m[3]
	m[0] = 2*m[1] - m[2]
	m = append(m, 2*m[len(m)-1]-m[len(m)-2])
	m = append(m, 2*m[len(m)-1]-m[len(m)-2])

	b := make([]float64, n)
	for i := range b {
		b[i] = 0.5 * (m[i+3] + m[i])
	}

	dm := make([]float64, len(m)-1)
	for i := range dm {
		dm[i] = math.Abs(m[i+1] - m[i])
	}
	f1 := dm[2 : n+2]
	f2 := dm[:n]
	f12 := make([]float64, n)
	f12Max := math.Inf(-1)
	for i := range f12 {
		f12[i] = f1[i] + f2[i]
		f12Max = math.Max(f12Max, f12[i])
	}
	for i, f := range f12 {
		if f > 1e-9*f12Max {
			b[i] = (f1[i]*m[i+1] + f2[i]*m[i+2]) / f
		}
	}

	c := make([]float64, n-1)
	d := make([]float64, n-1)
	for i := 0; i < n-1; i++ {
		dx := float64(x[i+1] - x[i])
		c[i] = (3*m[i+2] - 2*b[i] - b[i+1]) / dx
		d[i] = (b[i] + b[i+1] - 2*m[i+2]) / (dx * dx)
	}

	return &Akima{
		x: append([]int(nil), x...),
		y: append([]float64(nil), y...),
		b: b,
		c: c,
		d: d,
	}, nil
}

// Interpolate evaluates the interpolant at xi, clamping to the first or
// last ordinate outside the axis range.
func (a *Akima) Interpolate(xi float64) float64 {
	n := len(a.x)
	if xi <= float64(a.x[0]) {
		return a.y[0]
	}
	if xi >= float64(a.x[n-1]) {
		return a.y[n-1]
	}

	// Greatest index with x[idx] <= xi.
	idx := sort.SearchInts(a.x, int(math.Floor(xi))+1) - 1

	w := xi - float64(a.x[idx])
	return a.y[idx] + w*(a.b[idx]+w*(a.c[idx]+w*a.d[idx]))
}

// X returns the integer axis of the interpolant.
func (a *Akima) X() []int {
	return a.x
}

// Y returns the tabulated values of the interpolant.
func (a *Akima) Y() []float64 {
	return a.y
}
