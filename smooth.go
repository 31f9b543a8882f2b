package ivolmesh

import "gonum.org/v1/gonum/spatial/r3"

// SmoothLaplacian runs Laplacian edge-length smoothing over the mesh
// and returns the number of vertex moves. iterations <= 0 leaves the
// coordinates untouched; otherwise 2*iterations+1 passes run,
// alternating by parity: even passes update only interior vertices,
// odd passes only isosurface vertices, so the two groups never compete
// within a pass.
//
// A vertex moves to the average of the neighbors sharing its surface
// (interior vertices average over all neighbors), and only when at
// least one of those neighbors is nearer than distLimit. Updates land
// immediately: vertices later in a pass see the new positions.
func (o *Optimizer) SmoothLaplacian(distLimit float64, iterations int) (moved int) {
	if iterations <= 0 {
		return 0
	}
	for pass := 0; pass < 2*iterations+1; pass++ {
		skipSurface := pass%2 == 0
		for cur := range o.coord {
			onSurface := o.onLower[cur] || o.onUpper[cur]
			if onSurface == skipSurface {
				continue
			}
			var sum r3.Vec
			n := 0
			short := false
			for _, adj := range o.adj[cur] {
				if o.onLower[cur] && !o.onLower[adj] || o.onUpper[cur] && !o.onUpper[adj] {
					continue // neighbor on a different surface
				}
				sum = r3.Add(sum, o.coord[adj])
				n++
				if r3.Norm(r3.Sub(o.coord[cur], o.coord[adj])) < distLimit {
					short = true
				}
			}
			if short {
				o.coord[cur] = r3.Scale(1/float64(n), sum)
				moved++
			}
		}
	}
	return moved
}
