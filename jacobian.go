package ivolmesh

import (
	"math/bits"

	"gonum.org/v1/gonum/spatial/r3"
)

// NormalizedJacobian computes the scaled Jacobian determinant at
// hexahedron corner icorner: the determinant of the three edge vectors
// meeting at the corner divided by the product of their lengths, with
// the sign corrected for corner parity. Corners follow cube bit order.
// The result is 1 at a perfect right-angle corner, 0 at a flattened
// one, and negative where the element folds through itself. A corner
// with a zero-length edge reports 0.
func NormalizedJacobian(hex [8]r3.Vec, icorner int) float64 {
	if icorner < 0 || icorner >= 8 {
		panic("hexahedron corner index out of range")
	}
	p := hex[icorner]
	e0 := r3.Sub(hex[icorner^1], p)
	e1 := r3.Sub(hex[icorner^2], p)
	e2 := r3.Sub(hex[icorner^4], p)
	l := r3.Norm(e0) * r3.Norm(e1) * r3.Norm(e2)
	if l == 0 {
		return 0
	}
	det := r3.Dot(e0, r3.Cross(e1, e2))
	if bits.OnesCount8(uint8(icorner))&1 != 0 {
		det = -det // odd corners see a mirrored edge frame
	}
	return det / l
}

// hexCorners gathers the corner positions of element ihex.
func (o *Optimizer) hexCorners(ihex int) (hex [8]r3.Vec) {
	for i := range hex {
		hex[i] = o.coord[o.elems[ihex*8+i]]
	}
	return hex
}

// minIncidentJacobian returns the minimum corner quality over every
// corner of every element incident to vertex iv.
func (o *Optimizer) minIncidentJacobian(iv int) float64 {
	minJ := 1.0
	for _, ihex := range o.incident[iv] {
		hex := o.hexCorners(ihex)
		for i := 0; i < 8; i++ {
			if j := NormalizedJacobian(hex, i); j < minJ {
				minJ = j
			}
		}
	}
	return minJ
}
