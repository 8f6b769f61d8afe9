// Package series provides one-dimensional interpolation over sampled data.
package series

import (
	"errors"
	"fmt"
	"sort"

	"gonum.org/v1/gonum/mat"
)

const (
	minPointsLinear = 2
	minPointsSpline = 4
)

// ErrNonMonotonic is returned when the x axis is not strictly increasing.
var ErrNonMonotonic = errors.New("x axis must be strictly increasing")

// DimensionError is returned when the x and y slices have different lengths.
type DimensionError struct {
	X, Y int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("x and y must have the same length but were %d and %d", e.X, e.Y)
}

// InsufficientPointsError is returned when too few points are supplied.
type InsufficientPointsError struct {
	Needed, Got int
}

func (e *InsufficientPointsError) Error() string {
	return fmt.Sprintf("need at least %d points but got %d", e.Needed, e.Got)
}

// Interpolation selects the interpolation method of a Series.
type Interpolation int

const (
	// Linear interpolates piecewise linearly between samples.
	Linear Interpolation = iota
	// CubicSpline fits a cubic spline with not-a-knot boundary conditions.
	// Fewer than four points degrade to linear interpolation.
	CubicSpline
)

// Series interpolates sampled values over a strictly increasing x axis.
// Evaluation outside the sampled range extrapolates with the boundary
// segment.
type Series struct {
	x, y           []float64
	cubic          bool
	c1, c2, c3, c4 []float64
}

// New creates a series from samples of a function y = f(x). The x axis
// must be strictly increasing and hold at least two points.
func New(x, y []float64, interp Interpolation) (*Series, error) {
	if !IsStrictlyIncreasing(x) {
		return nil, ErrNonMonotonic
	}
	n := len(x)
	if len(y) != n {
		return nil, &DimensionError{X: n, Y: len(y)}
	}
	if n < minPointsLinear {
		return nil, &InsufficientPointsError{Needed: minPointsLinear, Got: n}
	}

	s := &Series{
		x: append([]float64(nil), x...),
		y: append([]float64(nil), y...),
	}
	if interp == CubicSpline && n >= minPointsSpline {
		if err := s.fitSpline(); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// fitSpline computes per-segment cubic coefficients with not-a-knot
// boundary conditions by solving the tridiagonal slope system.
func (s *Series) fitSpline() error {
	x, y := s.x, s.y
	n := len(x)
	dx := Diff(x)
	nd := len(dx)
	slope := Diff(y)
	for i := range slope {
		slope[i] /= dx[i]
	}

	d := make([]float64, n)
	dl := make([]float64, n-1)
	du := make([]float64, n-1)
	rhs := make([]float64, n)

	d[0] = dx[1]
	du[0] = x[2] - x[0]
	delta := x[2] - x[0]
	rhs[0] = ((dx[0]+2*delta)*dx[1]*slope[0] + dx[0]*dx[0]*slope[1]) / delta
	for i := 0; i < nd-1; i++ {
		d[i+1] = 2 * (dx[i] + dx[i+1])
		rhs[i+1] = 3 * (dx[i+1]*slope[i] + dx[i]*slope[i+1])
		du[i+1] = dx[i]
		dl[i] = dx[i+1]
	}
	d[n-1] = dx[nd-2]
	delta = x[n-1] - x[n-3]
	dl[n-2] = delta
	rhs[n-1] = (dx[nd-1]*dx[nd-1]*slope[nd-2] + (2*delta+dx[nd-1])*dx[nd-2]*slope[nd-1]) / delta

	tri := mat.NewTridiag(n, dl, d, du)
	var sol mat.VecDense
	if err := tri.SolveVecTo(&sol, false, mat.NewVecDense(n, rhs)); err != nil {
		return fmt.Errorf("solving spline system: %w", err)
	}

	s.cubic = true
	s.c1 = append([]float64(nil), y[:n-1]...)
	s.c2 = make([]float64, n-1)
	s.c3 = make([]float64, n-1)
	s.c4 = make([]float64, n-1)
	for i := 0; i < n-1; i++ {
		si := sol.AtVec(i)
		si1 := sol.AtVec(i + 1)
		t := (si + si1 - 2*slope[i]) / dx[i]
		s.c2[i] = si
		s.c3[i] = (slope[i]-si)/dx[i] - t
		s.c4[i] = t / dx[i]
	}
	return nil
}

// Interpolate evaluates the series at xp.
func (s *Series) Interpolate(xp float64) float64 {
	x, y := s.x, s.y
	n := len(x)
	var idx int
	switch {
	case xp <= x[0]:
		idx = 0
	case xp >= x[n-1]:
		idx = n - 2
	default:
		idx = sort.SearchFloat64s(x, xp) - 1
	}
	if !s.cubic {
		x0, x1 := x[idx], x[idx+1]
		y0, y1 := y[idx], y[idx+1]
		return y0 + (y1-y0)*(xp-x0)/(x1-x0)
	}
	w := xp - x[idx]
	return s.c1[idx] + w*(s.c2[idx]+w*(s.c3[idx]+w*s.c4[idx]))
}

// X returns the x axis of the series.
func (s *Series) X() []float64 {
	return s.x
}

// Y returns the sampled values of the series.
func (s *Series) Y() []float64 {
	return s.y
}

// First returns the first sample.
func (s *Series) First() (float64, float64) {
	return s.x[0], s.y[0]
}

// Last returns the last sample.
func (s *Series) Last() (float64, float64) {
	return s.x[len(s.x)-1], s.y[len(s.y)-1]
}
