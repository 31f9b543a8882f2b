package dualtable

// Cube provides vertex, edge and facet incidence of a cube of arbitrary
// dimension. Vertices are indexed by their coordinate bits: bit k of a
// vertex index is the vertex coordinate along direction k. Two vertices
// share an edge when their indices differ in exactly one bit.
type Cube struct {
	dimension int
}

// NewCube returns incidence queries for a cube of the given dimension.
func NewCube(dimension int) Cube {
	if dimension < 1 || dimension > 32 {
		panic("cube dimension out of range")
	}
	return Cube{dimension: dimension}
}

// Dimension returns the cube dimension.
func (c Cube) Dimension() int { return c.dimension }

// NumVertices returns the number of cube vertices, 2^d.
func (c Cube) NumVertices() int { return 1 << c.dimension }

// NumEdges returns the number of cube edges, d*2^(d-1).
func (c Cube) NumEdges() int { return c.dimension << (c.dimension - 1) }

// NumFacets returns the number of (d-1)-dimensional faces, 2d.
func (c Cube) NumFacets() int { return 2 * c.dimension }

// NumFacetVertices returns the number of vertices per facet, 2^(d-1).
func (c Cube) NumFacetVertices() int { return 1 << (c.dimension - 1) }

// VertexNeighbor returns the vertex adjacent to iv along direction dir.
func (c Cube) VertexNeighbor(iv, dir int) int { return iv ^ (1 << dir) }

// OppositeVertex returns the vertex diagonally opposite to iv.
func (c Cube) OppositeVertex(iv int) int { return c.NumVertices() - 1 - iv }

// EdgeEndpoints returns the two endpoint vertices of edge ke with
// iv0 < iv1. Edges are grouped by direction: edges 0..2^(d-1)-1 run
// along direction 0, the next 2^(d-1) along direction 1, and so on.
func (c Cube) EdgeEndpoints(ke int) (iv0, iv1 int) {
	if ke < 0 || ke >= c.NumEdges() {
		panic("cube edge index out of range")
	}
	half := c.NumVertices() / 2
	dir := ke / half
	iv0 = insertBit(ke%half, dir, 0)
	return iv0, iv0 | 1<<dir
}

// FacetVertex returns the k'th vertex of facet jf. Facets 0..d-1 are the
// lower facets orthogonal to directions 0..d-1, facets d..2d-1 the upper
// facets in the same direction order.
func (c Cube) FacetVertex(jf, k int) int {
	c.checkFacet(jf)
	if k < 0 || k >= c.NumFacetVertices() {
		panic("facet vertex index out of range")
	}
	return insertBit(k, jf%c.dimension, jf/c.dimension)
}

// VertexInFacet reports whether vertex iv lies in facet jf.
func (c Cube) VertexInFacet(jf, iv int) bool {
	c.checkFacet(jf)
	return (iv>>(jf%c.dimension))&1 == jf/c.dimension
}

// FacetBitCounts returns how many corners of facet jf carry a negative
// (clear bit) and a positive (set bit) label under configuration it.
func (c Cube) FacetBitCounts(it, jf int) (numNeg, numPos int) {
	c.checkFacet(jf)
	for k := 0; k < c.NumFacetVertices(); k++ {
		if it&(1<<c.FacetVertex(jf, k)) == 0 {
			numNeg++
		} else {
			numPos++
		}
	}
	return numNeg, numPos
}

// IsFacetActive reports whether facet jf has corners of both signs
// under configuration it.
func (c Cube) IsFacetActive(it, jf int) bool {
	numNeg, numPos := c.FacetBitCounts(it, jf)
	return numNeg > 0 && numPos > 0
}

// NumActiveFacets returns the number of active facets of configuration it.
func (c Cube) NumActiveFacets(it int) int {
	n := 0
	for jf := 0; jf < c.NumFacets(); jf++ {
		if c.IsFacetActive(it, jf) {
			n++
		}
	}
	return n
}

func (c Cube) checkFacet(jf int) {
	if jf < 0 || jf >= c.NumFacets() {
		panic("cube facet index out of range")
	}
}

// insertBit widens x by one bit, placing bit at position pos.
func insertBit(x, pos, bit int) int {
	low := x & (1<<pos - 1)
	return (x-low)<<1 | bit<<pos | low
}
