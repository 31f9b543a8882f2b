package dualtable

// Ambiguity annotates a Table with topological ambiguity information: a
// configuration is ambiguous when a single sign class splits into more
// connected components than the one patch the corner signs alone would
// suggest, so the table has more than one valid way to connect it.
//
// The annotation is a pure function of the sign patterns, independent
// of geometry and of the table's separation flags. It is kept apart
// from the Table, in parallel arrays keyed by the same configuration
// index, so callers that never resolve ambiguities can skip building it.
type Ambiguity struct {
	numFacets int

	isAmbiguous []bool
	// ambiguousFacets[it] has bit k set when facet k is ambiguous.
	ambiguousFacets    []uint64
	numAmbiguousFacets []uint8
	numActiveFacets    []uint8
}

// ComputeAmbiguity derives the ambiguity annotation of every table
// entry. Computed once; the result is immutable and safe for
// concurrent readers.
func ComputeAmbiguity(t *Table) *Ambiguity {
	cube := t.cube
	fc := NewFindComponent(cube.dimension)
	a := &Ambiguity{
		numFacets:          cube.NumFacets(),
		isAmbiguous:        make([]bool, t.numEntries),
		ambiguousFacets:    make([]uint64, t.numEntries),
		numAmbiguousFacets: make([]uint8, t.numEntries),
		numActiveFacets:    make([]uint8, t.numEntries),
	}
	for it := 0; it < t.numEntries; it++ {
		a.isAmbiguous[it] = isCubeAmbiguous(it, fc)
		var set uint64
		var n uint8
		for jf := 0; jf < cube.NumFacets(); jf++ {
			if isCubeFacetAmbiguous(it, jf, fc, cube) {
				set |= 1 << jf
				n++
			}
		}
		a.ambiguousFacets[it] = set
		a.numAmbiguousFacets[it] = n
		a.numActiveFacets[it] = uint8(cube.NumActiveFacets(it))
	}
	return a
}

// IsAmbiguous reports whether configuration it is ambiguous.
func (a *Ambiguity) IsAmbiguous(it int) bool {
	a.checkEntry(it)
	return a.isAmbiguous[it]
}

// IsFacetAmbiguous reports whether facet jf of configuration it is
// ambiguous: active and splitting a sign class in two within the facet.
func (a *Ambiguity) IsFacetAmbiguous(it, jf int) bool {
	a.checkEntry(it)
	if jf < 0 || jf >= a.numFacets {
		panic("cube facet index out of range")
	}
	return a.ambiguousFacets[it]&(1<<jf) != 0
}

// AmbiguousFacetBits returns the ambiguous facets of configuration it
// as a bitmask.
func (a *Ambiguity) AmbiguousFacetBits(it int) uint64 {
	a.checkEntry(it)
	return a.ambiguousFacets[it]
}

// NumAmbiguousFacets returns the number of ambiguous facets of
// configuration it.
func (a *Ambiguity) NumAmbiguousFacets(it int) int {
	a.checkEntry(it)
	return int(a.numAmbiguousFacets[it])
}

// NumActiveFacets returns the number of facets of configuration it
// holding corners of both signs.
func (a *Ambiguity) NumActiveFacets(it int) int {
	a.checkEntry(it)
	return int(a.numActiveFacets[it])
}

func (a *Ambiguity) checkEntry(it int) {
	if it < 0 || it >= len(a.isAmbiguous) {
		panic("table entry index out of range")
	}
}

func isCubeAmbiguous(it int, fc *FindComponent) bool {
	if fc.ComputeNumComponents(it, true) > 1 {
		return true
	}
	return fc.ComputeNumComponents(it, false) > 1
}

func isCubeFacetAmbiguous(it, jf int, fc *FindComponent, cube Cube) bool {
	if !cube.IsFacetActive(it, jf) {
		return false
	}
	if fc.ComputeNumComponentsInFacet(it, jf, true) > 1 {
		return true
	}
	return fc.ComputeNumComponentsInFacet(it, jf, false) > 1
}
