// Package ivolmesh improves the quality of hexahedral meshes produced
// by dual contouring of interval volumes. It repositions mesh vertices
// to remove degenerate and inverted elements and to even out edge
// lengths; element connectivity is never modified. The lookup tables
// driving the generator live in the dualtable subpackage.
package ivolmesh

// VertexInfo ties a mesh vertex back to the grid cell that generated
// it. The record is fixed for the vertex's lifetime and is used only to
// look up isosurface membership and to recognize dual-mesh counterparts
// during repair.
type VertexInfo struct {
	// Cube identifies the originating grid cell.
	Cube int
	// Config is the sign configuration (table index) of that cell.
	Config int
	// Patch is the dual vertex index within the configuration.
	Patch int
}

// SurfaceTable reports whether a dual vertex lies on the lower or upper
// isosurface of the interval volume. The interval-volume table of the
// outer mesh generator satisfies this; vertices on neither surface are
// interior.
type SurfaceTable interface {
	OnLowerIsosurface(config, patch int) bool
	OnUpperIsosurface(config, patch int) bool
}

// Params bundles the numeric knobs of a full optimization run.
type Params struct {
	// LaplacianLimit is the edge length below which Laplacian smoothing
	// moves a vertex; vertices with no short edge are left untouched.
	LaplacianLimit      float64
	LaplacianIterations int
	// ShortEdgeLimit is the edge length below which both endpoints are
	// fed through gradient repair.
	ShortEdgeLimit      float64
	ShortEdgeIterations int
	// JacobianLimit is the corner quality below which an element's
	// vertex is fed through gradient repair.
	JacobianLimit      float64
	JacobianIterations int
}

// Stats is a caller-owned record of the changes an optimization run
// made to the coordinate buffer.
type Stats struct {
	LaplacianMoved int
	ShortEdgeMoved int
	JacobianMoved  int
}

// Moved returns the total number of vertex moves recorded.
func (s *Stats) Moved() int {
	return s.LaplacianMoved + s.ShortEdgeMoved + s.JacobianMoved
}
