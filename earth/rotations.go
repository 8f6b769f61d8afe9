package earth

import (
	"gonum.org/v1/gonum/mat"

	"github.com/litescript/ls-astro/units"
)

// R1 returns the passive rotation by angle about the x axis.
func R1(angle units.Angle) *mat.Dense {
	sin, cos := angle.SinCos()
	return mat.NewDense(3, 3, []float64{
		1, 0, 0,
		0, cos, sin,
		0, -sin, cos,
	})
}

// R2 returns the passive rotation by angle about the y axis.
func R2(angle units.Angle) *mat.Dense {
	sin, cos := angle.SinCos()
	return mat.NewDense(3, 3, []float64{
		cos, 0, -sin,
		0, 1, 0,
		sin, 0, cos,
	})
}

// R3 returns the passive rotation by angle about the z axis.
func R3(angle units.Angle) *mat.Dense {
	sin, cos := angle.SinCos()
	return mat.NewDense(3, 3, []float64{
		cos, sin, 0,
		-sin, cos, 0,
		0, 0, 1,
	})
}

// Identity returns the 3x3 identity matrix.
func Identity() *mat.Dense {
	return mat.NewDense(3, 3, []float64{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	})
}

// mulAll multiplies the given rotation matrices left to right.
func mulAll(ms ...*mat.Dense) *mat.Dense {
	out := ms[0]
	for _, m := range ms[1:] {
		var p mat.Dense
		p.Mul(out, m)
		out = &p
	}
	return out
}
