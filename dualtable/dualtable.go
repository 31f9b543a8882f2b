// Package dualtable builds the combinatorial lookup tables used by dual
// contouring mesh generators. For every configuration of positive and
// negative labels at the corners of a cube the table stores how many
// dual mesh vertices the cube contributes and, for each bipolar cube
// edge, which dual vertex lies on the isosurface face dual to that
// edge. An optional annotation layer flags configurations and facets
// whose topology is ambiguous.
package dualtable

// Table is the dual contouring lookup table of a cube. Entries are
// keyed by configuration index: an integer in [0, 2^V) with one sign
// bit per cube corner. A Table is immutable once built and safe for
// concurrent readers.
type Table struct {
	cube             Cube
	numEntries       int
	separateNeg      bool
	separateOpposite bool

	// numIsov[it] is the number of dual vertices of entry it.
	numIsov []uint8
	// isBipolar and incidentIsov are flattened entry-major, one slot
	// per entry and cube edge. They are owned exclusively by the Table
	// and never handed out.
	isBipolar    []bool
	incidentIsov []uint8
}

// Cube returns the cube incidence queries the table was built over.
func (t *Table) Cube() Cube { return t.cube }

// Dimension returns the cube dimension.
func (t *Table) Dimension() int { return t.cube.dimension }

// NumPolyVertices returns the number of cube corners.
func (t *Table) NumPolyVertices() int { return t.cube.NumVertices() }

// NumPolyEdges returns the number of cube edges.
func (t *Table) NumPolyEdges() int { return t.cube.NumEdges() }

// NumTableEntries returns the number of configurations, 2^V.
func (t *Table) NumTableEntries() int { return t.numEntries }

// SeparateNeg reports whether the table separates negative vertices.
func (t *Table) SeparateNeg() bool { return t.separateNeg }

// SeparateOpposite reports whether the table always separates two
// diagonally opposite same-sign corners.
func (t *Table) SeparateOpposite() bool { return t.separateOpposite }

// Complement returns the configuration with every corner sign flipped.
func (t *Table) Complement(it int) int {
	t.checkEntry(it)
	return t.numEntries - 1 - it
}

// NumIsoVertices returns the number of dual mesh vertices entry it
// contributes.
func (t *Table) NumIsoVertices(it int) int {
	t.checkEntry(it)
	return int(t.numIsov[it])
}

// IsBipolar reports whether cube edge ke has endpoints of differing
// sign under configuration it.
func (t *Table) IsBipolar(it, ke int) bool {
	t.checkEntry(it)
	t.checkEdge(ke)
	return t.isBipolar[it*t.cube.NumEdges()+ke]
}

// IncidentIsoVertex returns the dual vertex incident on the isosurface
// face dual to cube edge ke. The result is meaningless unless edge ke
// is bipolar under configuration it.
func (t *Table) IncidentIsoVertex(it, ke int) int {
	t.checkEntry(it)
	t.checkEdge(ke)
	return int(t.incidentIsov[it*t.cube.NumEdges()+ke])
}

// IsPositive reports whether corner iv carries a positive label under
// configuration it.
func (t *Table) IsPositive(it, iv int) bool {
	t.checkEntry(it)
	if iv < 0 || iv >= t.cube.NumVertices() {
		panic("cube vertex index out of range")
	}
	return it&(1<<iv) != 0
}

func (t *Table) checkEntry(it int) {
	if it < 0 || it >= t.numEntries {
		panic("table entry index out of range")
	}
}

func (t *Table) checkEdge(ke int) {
	if ke < 0 || ke >= t.cube.NumEdges() {
		panic("cube edge index out of range")
	}
}
