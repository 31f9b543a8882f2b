package dualtable

import (
	"fmt"
	"math/bits"
)

// maxDimension bounds table construction. A dimension 5 cube has 32
// corners and would need 2^32 entries.
const maxDimension = 4

// New builds and validates the dual contouring table of a cube.
//
// The separateNeg flag selects which sign class the isosurface
// separates: each connected component of that class receives its own
// dual vertex, so same-sign corners joined only through the opposite
// class end up on distinct isosurface patches. separateOpposite
// additionally forces two diagonally opposite same-sign corners onto
// distinct patches even when the flood fill alone would merge them
// through the separated class.
//
// A table that fails its post-construction consistency check is never
// returned.
func New(dimension int, separateNeg, separateOpposite bool) (*Table, error) {
	if dimension < 1 || dimension > maxDimension {
		return nil, fmt.Errorf("dualtable: dimension %d outside [1, %d]", dimension, maxDimension)
	}
	cube := NewCube(dimension)
	numEntries := 1 << cube.NumVertices()
	nume := cube.NumEdges()
	t := &Table{
		cube:             cube,
		numEntries:       numEntries,
		separateNeg:      separateNeg,
		separateOpposite: separateOpposite,
		numIsov:          make([]uint8, numEntries),
		isBipolar:        make([]bool, numEntries*nume),
		incidentIsov:     make([]uint8, numEntries*nume),
	}
	t.create()
	if err := t.check(); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Table) create() {
	fc := NewFindComponent(t.cube.dimension)
	numv := t.cube.NumVertices()
	nume := t.cube.NumEdges()
	vmask := t.numEntries - 1
	for it := 1; it < t.numEntries-1; it++ {
		// Entries 0 and 2^V-1 are uniform and contribute nothing.

		// Label components of the separated sign class. Positive
		// corners are the set bits of it.
		positive := !t.separateNeg
		if t.separateOpposite {
			// When the class that is not separated consists of exactly
			// two diagonally opposite corners, label its components
			// instead: the corners are not edge-adjacent, so they come
			// apart into one patch each.
			other := it
			if positive {
				other = vmask &^ it
			}
			if isOppositeCornerPair(other, numv) {
				positive = !positive
			}
		}
		nc := fc.ComputeNumComponents(it, positive)
		t.numIsov[it] = uint8(nc)

		base := it * nume
		for ke := 0; ke < nume; ke++ {
			iv0, iv1 := t.cube.EdgeEndpoints(ke)
			s0 := it&(1<<iv0) != 0
			s1 := it&(1<<iv1) != 0
			if s0 == s1 {
				continue
			}
			t.isBipolar[base+ke] = true
			// The endpoint inside the labeled class resolves the dual
			// vertex on the face dual to this edge.
			ivc := iv0
			if s1 == positive {
				ivc = iv1
			}
			t.incidentIsov[base+ke] = uint8(fc.Component(ivc) - 1)
		}
	}
}

// isOppositeCornerPair reports whether the set bits of class are
// exactly two diagonally opposite cube corners.
func isOppositeCornerPair(class, numv int) bool {
	if bits.OnesCount(uint(class)) != 2 {
		return false
	}
	lo := class & -class
	return bits.TrailingZeros(uint(lo))+bits.TrailingZeros(uint(class^lo)) == numv-1
}

// check validates every entry against its complement and its own
// vertex count. A failure here is a construction bug, not a runtime
// condition: the table must not be used.
func (t *Table) check() error {
	nume := t.cube.NumEdges()
	for it := 0; it < t.numEntries; it++ {
		nv := int(t.numIsov[it])
		uniform := it == 0 || it == t.numEntries-1
		if uniform && nv != 0 {
			return fmt.Errorf("dualtable: uniform entry %d has %d dual vertices", it, nv)
		}
		if !uniform && nv < 1 {
			return fmt.Errorf("dualtable: entry %d has no dual vertices", it)
		}
		base := it * nume
		cbase := (t.numEntries - 1 - it) * nume
		for ke := 0; ke < nume; ke++ {
			if t.isBipolar[base+ke] != t.isBipolar[cbase+ke] {
				return fmt.Errorf("dualtable: entry %d and its complement disagree on edge %d polarity", it, ke)
			}
			if t.isBipolar[base+ke] && int(t.incidentIsov[base+ke]) >= nv {
				return fmt.Errorf("dualtable: entry %d edge %d references dual vertex %d of %d",
					it, ke, t.incidentIsov[base+ke], nv)
			}
			if uniform && t.isBipolar[base+ke] {
				return fmt.Errorf("dualtable: uniform entry %d has bipolar edge %d", it, ke)
			}
		}
	}
	return nil
}
