package ivolmesh

// hexEdges lists the 12 corner pairs joined by a hexahedron edge.
// Corners follow cube bit order: bit 0 is x, bit 1 is y, bit 2 is z,
// so paired corners differ in exactly one bit.
var hexEdges = [12][2]int{
	{0, 1}, {2, 3}, {4, 5}, {6, 7}, // x
	{0, 2}, {1, 3}, {4, 6}, {5, 7}, // y
	{0, 4}, {1, 5}, {2, 6}, {3, 7}, // z
}

// buildAdjacency derives, from the flat hexahedral element list, the
// neighbor vertices sharing an element edge with each vertex. Built
// once before optimization and read-only afterward.
func buildAdjacency(elems []int, nvert int) [][]int {
	adj := make([][]int, nvert)
	for ihex := 0; ihex < len(elems)/8; ihex++ {
		hex := elems[ihex*8 : ihex*8+8]
		for _, e := range hexEdges {
			a, b := hex[e[0]], hex[e[1]]
			adj[a] = appendUnique(adj[a], b)
			adj[b] = appendUnique(adj[b], a)
		}
	}
	return adj
}

// buildIncidence maps each vertex to the elements it is a corner of.
func buildIncidence(elems []int, nvert int) [][]int {
	inc := make([][]int, nvert)
	for ihex := 0; ihex < len(elems)/8; ihex++ {
		for _, v := range elems[ihex*8 : ihex*8+8] {
			inc[v] = appendUnique(inc[v], ihex)
		}
	}
	return inc
}

// appendUnique keeps the lists duplicate free. They stay short, so a
// linear scan beats a map here.
func appendUnique(list []int, v int) []int {
	for _, x := range list {
		if x == v {
			return list
		}
	}
	return append(list, v)
}
