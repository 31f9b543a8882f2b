package ivolmesh

import "gonum.org/v1/gonum/spatial/r3"

// moveStep is the fraction of a neighbor direction the gradient mover
// advances per probe.
const moveStep = 0.1

// RepairJacobian scans every element corner for quality below
// jacobianLimit and gradient-moves the flagged vertices together with
// their dual-mesh counterparts. Returns the number of vertex moves.
// Vertices still below the limit after all iterations are left as they
// are; non-convergence is normal.
func (o *Optimizer) RepairJacobian(jacobianLimit float64, iterations int) (moved int) {
	for it := 0; it < iterations; it++ {
		var flagged []int
		for ihex := 0; ihex < len(o.elems)/8; ihex++ {
			hex := o.hexCorners(ihex)
			for i := 0; i < 8; i++ {
				if NormalizedJacobian(hex, i) < jacobianLimit {
					// Duplicates are expected; a vertex is flagged once
					// per bad corner it participates in.
					flagged = append(flagged, o.elems[ihex*8+i])
				}
			}
		}
		moved += o.repairFlagged(flagged)
	}
	return moved
}

// RepairShortEdges feeds both endpoints of every element edge shorter
// than lengthLimit through the same repair routine as RepairJacobian.
// Returns the number of vertex moves.
func (o *Optimizer) RepairShortEdges(lengthLimit float64, iterations int) (moved int) {
	for it := 0; it < iterations; it++ {
		var flagged []int
		for cur := range o.coord {
			for _, adj := range o.adj[cur] {
				if r3.Norm(r3.Sub(o.coord[cur], o.coord[adj])) < lengthLimit {
					flagged = append(flagged, cur, adj)
				}
			}
		}
		moved += o.repairFlagged(flagged)
	}
	return moved
}

// repairFlagged gradient-moves every flagged vertex against its
// dual-mesh counterparts: adjacent vertices generated by the same grid
// cell, not arbitrary mesh neighbors. The counterpart moves first, then
// the flagged vertex.
func (o *Optimizer) repairFlagged(flagged []int) (moved int) {
	for _, cur := range flagged {
		for _, adj := range o.adj[cur] {
			if o.info[adj].Cube != o.info[cur].Cube {
				continue
			}
			if o.gradientMove(adj) {
				moved++
			}
			if o.gradientMove(cur) {
				moved++
			}
		}
	}
	return moved
}

// gradientMove repositions vertex iv in two phases. First each eligible
// neighbor direction is probed with a single moveStep advance and
// scored by the worst corner quality over the elements incident to iv;
// the first direction achieving the best score wins, which makes the
// outcome depend on adjacency construction order. Then a bounded line
// search advances along the fixed winning direction while the
// accumulated fraction stays below 0.5, and commits the best-scoring
// probed position, not the last one. Reports whether iv moved.
func (o *Optimizer) gradientMove(iv int) bool {
	start := o.coord[iv]
	target := start
	best := -1.0
	for _, adj := range o.adj[iv] {
		if o.onLower[iv] && !o.onLower[adj] || o.onUpper[iv] && !o.onUpper[adj] {
			continue
		}
		o.coord[iv] = r3.Add(r3.Scale(1-moveStep, start), r3.Scale(moveStep, o.coord[adj]))
		if minJ := o.minIncidentJacobian(iv); minJ > best {
			best = minJ
			target = o.coord[adj]
		}
		o.coord[iv] = start
	}
	// With no eligible neighbor the direction is zero and the search
	// below restores the starting position.
	step := r3.Scale(moveStep, r3.Sub(target, start))
	best = -1.0
	optimal := start
	for i := 1; moveStep*float64(i) < 0.5; i++ {
		o.coord[iv] = r3.Add(o.coord[iv], step)
		if minJ := o.minIncidentJacobian(iv); minJ > best {
			best = minJ
			optimal = o.coord[iv]
		}
	}
	o.coord[iv] = optimal
	return optimal != start
}
