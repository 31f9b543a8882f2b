package ivolmesh

import (
	"fmt"

	"github.com/soypat/ivolmesh/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

// Optimizer repositions the vertices of a hexahedral mesh to improve
// element quality. It mutates the caller's coordinate buffer in place;
// the element list and vertex records are never modified. An Optimizer
// assumes a single writer: passes mutate one vertex at a time and later
// vertices in a pass see already-updated neighbor positions.
type Optimizer struct {
	elems []int
	coord []r3.Vec
	info  []VertexInfo

	// Isosurface membership, classified once at construction.
	onLower []bool
	onUpper []bool

	// adj and incident are derived from elems once and read-only after.
	adj      [][]int
	incident [][]int
}

// NewOptimizer validates the mesh and builds the vertex adjacency and
// incidence maps. elems holds 8 corner indices per hexahedron in cube
// bit order; coord is the mutable coordinate buffer, one position per
// vertex; info records each vertex's originating cell, configuration
// and patch. table classifies dual vertices onto the lower or upper
// isosurface; a nil table classifies every vertex interior.
func NewOptimizer(elems []int, coord []r3.Vec, info []VertexInfo, table SurfaceTable) (*Optimizer, error) {
	if len(elems)%8 != 0 {
		return nil, fmt.Errorf("ivolmesh: element list length %d is not a multiple of 8", len(elems))
	}
	if len(info) != len(coord) {
		return nil, fmt.Errorf("ivolmesh: %d vertex records for %d vertex coordinates", len(info), len(coord))
	}
	for i, v := range elems {
		if v < 0 || v >= len(coord) {
			return nil, fmt.Errorf("ivolmesh: element %d corner %d references vertex %d of %d", i/8, i%8, v, len(coord))
		}
	}
	o := &Optimizer{
		elems:    elems,
		coord:    coord,
		info:     info,
		onLower:  make([]bool, len(coord)),
		onUpper:  make([]bool, len(coord)),
		adj:      buildAdjacency(elems, len(coord)),
		incident: buildIncidence(elems, len(coord)),
	}
	if table != nil {
		for i, vi := range info {
			o.onLower[i] = table.OnLowerIsosurface(vi.Config, vi.Patch)
			o.onUpper[i] = table.OnUpperIsosurface(vi.Config, vi.Patch)
		}
	}
	return o, nil
}

// NumVertices returns the number of mesh vertices.
func (o *Optimizer) NumVertices() int { return len(o.coord) }

// NumElems returns the number of hexahedral elements.
func (o *Optimizer) NumElems() int { return len(o.elems) / 8 }

// Optimize runs the Laplacian, short-edge and Jacobian passes in order
// with the knobs in p, accumulating move counts into stats. stats may
// be nil.
func (o *Optimizer) Optimize(p Params, stats *Stats) {
	if stats == nil {
		stats = &Stats{}
	}
	stats.LaplacianMoved += o.SmoothLaplacian(p.LaplacianLimit, p.LaplacianIterations)
	stats.ShortEdgeMoved += o.RepairShortEdges(p.ShortEdgeLimit, p.ShortEdgeIterations)
	stats.JacobianMoved += o.RepairJacobian(p.JacobianLimit, p.JacobianIterations)
}

// Bounds returns the bounding box of the current vertex coordinates.
func (o *Optimizer) Bounds() r3.Box {
	if len(o.coord) == 0 {
		return r3.Box{}
	}
	bb := d3.Box{Min: o.coord[0], Max: o.coord[0]}
	for _, v := range o.coord[1:] {
		bb = bb.Include(v)
	}
	return r3.Box(bb)
}
