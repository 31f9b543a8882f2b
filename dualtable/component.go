package dualtable

// FindComponent finds connected components among the cube vertices of a
// single sign class, flood-filling over cube-edge adjacency. The flag
// and component scratch arrays are reused between queries so the table
// builder's inner loop allocates nothing; ClearAll resets them.
type FindComponent struct {
	cube  Cube
	flag  []bool
	comp  []int
	stack []int
}

// NewFindComponent returns a component finder for a cube of the given
// dimension.
func NewFindComponent(dimension int) *FindComponent {
	cube := NewCube(dimension)
	return &FindComponent{
		cube:  cube,
		flag:  make([]bool, cube.NumVertices()),
		comp:  make([]int, cube.NumVertices()),
		stack: make([]int, 0, cube.NumVertices()),
	}
}

// Dimension returns the cube dimension.
func (fc *FindComponent) Dimension() int { return fc.cube.dimension }

// NumCubeVertices returns the number of cube vertices.
func (fc *FindComponent) NumCubeVertices() int { return len(fc.flag) }

// VertexFlag reports whether vertex i is currently flagged.
func (fc *FindComponent) VertexFlag(i int) bool { return fc.flag[i] }

// Component returns the component label of vertex i, zero if unvisited.
func (fc *FindComponent) Component(i int) int { return fc.comp[i] }

// SetVertexFlags flags the vertices whose bit is set in configuration it.
func (fc *FindComponent) SetVertexFlags(it int) {
	for i := range fc.flag {
		fc.flag[i] = it&(1<<i) != 0
	}
}

// NegateVertexFlags inverts every vertex flag, switching the selected
// polarity without recomputing from a configuration.
func (fc *FindComponent) NegateVertexFlags() {
	for i := range fc.flag {
		fc.flag[i] = !fc.flag[i]
	}
}

// ClearAll clears all vertex flags and component labels.
func (fc *FindComponent) ClearAll() {
	for i := range fc.flag {
		fc.flag[i] = false
		fc.comp[i] = 0
	}
}

// Search flood-fills the flagged vertices reachable from vertex i over
// cube edges, labeling them with component icomp. icomp must be nonzero
// so labeled vertices are distinguishable from unvisited ones, and
// unique per call within one enumeration pass.
func (fc *FindComponent) Search(i, icomp int) {
	if icomp == 0 {
		panic("component label must be nonzero")
	}
	if !fc.flag[i] {
		return
	}
	fc.comp[i] = icomp
	fc.stack = append(fc.stack[:0], i)
	for len(fc.stack) > 0 {
		iv := fc.stack[len(fc.stack)-1]
		fc.stack = fc.stack[:len(fc.stack)-1]
		for dir := 0; dir < fc.cube.dimension; dir++ {
			adj := fc.cube.VertexNeighbor(iv, dir)
			if fc.flag[adj] && fc.comp[adj] == 0 {
				fc.comp[adj] = icomp
				fc.stack = append(fc.stack, adj)
			}
		}
	}
}

// SearchFacet is Search with adjacency restricted to edges lying in
// facet kf. Facet kf must contain vertex i.
func (fc *FindComponent) SearchFacet(kf, i, icomp int) {
	if icomp == 0 {
		panic("component label must be nonzero")
	}
	if !fc.cube.VertexInFacet(kf, i) {
		panic("search vertex outside facet")
	}
	if !fc.flag[i] {
		return
	}
	orth := kf % fc.cube.dimension
	fc.comp[i] = icomp
	fc.stack = append(fc.stack[:0], i)
	for len(fc.stack) > 0 {
		iv := fc.stack[len(fc.stack)-1]
		fc.stack = fc.stack[:len(fc.stack)-1]
		for dir := 0; dir < fc.cube.dimension; dir++ {
			if dir == orth {
				continue // would leave the facet
			}
			adj := fc.cube.VertexNeighbor(iv, dir)
			if fc.flag[adj] && fc.comp[adj] == 0 {
				fc.comp[adj] = icomp
				fc.stack = append(fc.stack, adj)
			}
		}
	}
}

// ComputeNumComponents returns the number of connected components of
// positive (bit set) or negative vertices of configuration it. An empty
// sign class yields zero components. Component labels remain valid
// until the next query.
func (fc *FindComponent) ComputeNumComponents(it int, positive bool) int {
	fc.ClearAll()
	fc.SetVertexFlags(it)
	if !positive {
		fc.NegateVertexFlags()
	}
	n := 0
	for i := range fc.flag {
		if fc.flag[i] && fc.comp[i] == 0 {
			n++
			fc.Search(i, n)
		}
	}
	return n
}

// ComputeNumComponentsInFacet is ComputeNumComponents restricted to the
// vertices and edges of facet kf.
func (fc *FindComponent) ComputeNumComponentsInFacet(it, kf int, positive bool) int {
	fc.ClearAll()
	fc.SetVertexFlags(it)
	if !positive {
		fc.NegateVertexFlags()
	}
	n := 0
	for k := 0; k < fc.cube.NumFacetVertices(); k++ {
		iv := fc.cube.FacetVertex(kf, k)
		if fc.flag[iv] && fc.comp[iv] == 0 {
			n++
			fc.SearchFacet(kf, iv, n)
		}
	}
	return n
}
