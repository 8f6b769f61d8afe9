package frames

import "gonum.org/v1/gonum/mat"

// Rotation carries a rotation matrix between two frames at a fixed instant
// together with its time derivative, so that transformed velocities pick
// up the relative angular velocity of the frames.
type Rotation struct {
	m  *mat.Dense
	dm *mat.Dense
}

// IdentityRotation returns the identity rotation with a zero derivative.
func IdentityRotation() Rotation {
	return NewRotation(mat.NewDense(3, 3, []float64{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}))
}

// NewRotation wraps a rotation matrix with a zero derivative.
func NewRotation(m *mat.Dense) Rotation {
	return Rotation{m: m, dm: mat.NewDense(3, 3, nil)}
}

// WithDerivative sets the time derivative of the rotation matrix.
func (r Rotation) WithDerivative(dm *mat.Dense) Rotation {
	r.dm = dm
	return r
}

// WithAngularVelocity derives the matrix derivative from the angular
// velocity of the target frame, given in rad/s in origin coordinates.
func (r Rotation) WithAngularVelocity(v [3]float64) Rotation {
	s := mat.NewDense(3, 3, []float64{
		0, -v[2], v[1],
		v[2], 0, -v[0],
		v[1], v[0], 0,
	})
	dm := mat.NewDense(3, 3, nil)
	dm.Mul(s, r.m)
	dm.Scale(-1, dm)
	r.dm = dm
	return r
}

// Matrix returns the rotation matrix.
func (r Rotation) Matrix() *mat.Dense {
	return r.m
}

// Derivative returns the time derivative of the rotation matrix.
func (r Rotation) Derivative() *mat.Dense {
	return r.dm
}

// Compose chains the rotations so that the result applies r first and
// next second.
func (r Rotation) Compose(next Rotation) Rotation {
	m := mat.NewDense(3, 3, nil)
	m.Mul(next.m, r.m)
	dm := mat.NewDense(3, 3, nil)
	dm.Mul(next.dm, r.m)
	var tmp mat.Dense
	tmp.Mul(next.m, r.dm)
	dm.Add(dm, &tmp)
	return Rotation{m: m, dm: dm}
}

// Transpose returns the reverse rotation.
func (r Rotation) Transpose() Rotation {
	m := mat.NewDense(3, 3, nil)
	m.CloneFrom(r.m.T())
	dm := mat.NewDense(3, 3, nil)
	dm.CloneFrom(r.dm.T())
	return Rotation{m: m, dm: dm}
}

// RotatePosition transforms a position vector into the target frame.
func (r Rotation) RotatePosition(pos [3]float64) [3]float64 {
	return mulVec(r.m, pos)
}

// RotateVelocity transforms a velocity vector into the target frame,
// including the contribution of the frame motion at pos.
func (r Rotation) RotateVelocity(pos, vel [3]float64) [3]float64 {
	out := mulVec(r.dm, pos)
	mv := mulVec(r.m, vel)
	for i := range out {
		out[i] += mv[i]
	}
	return out
}

// RotateState transforms a position and velocity pair at once.
func (r Rotation) RotateState(s State) State {
	return State{
		Position: r.RotatePosition(s.Position),
		Velocity: r.RotateVelocity(s.Position, s.Velocity),
	}
}

func mulVec(m *mat.Dense, v [3]float64) [3]float64 {
	var out [3]float64
	for i := range out {
		out[i] = m.At(i, 0)*v[0] + m.At(i, 1)*v[1] + m.At(i, 2)*v[2]
	}
	return out
}

// State pairs a position and a velocity vector expressed in one frame.
// Units are the caller's; km and km/s are conventional.
type State struct {
	Position [3]float64
	Velocity [3]float64
}
