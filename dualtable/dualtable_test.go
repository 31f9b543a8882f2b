package dualtable_test

import (
	"testing"

	"github.com/soypat/ivolmesh/dualtable"
)

func mustTable(t testing.TB, dim int, separateNeg, separateOpposite bool) *dualtable.Table {
	t.Helper()
	table, err := dualtable.New(dim, separateNeg, separateOpposite)
	if err != nil {
		t.Fatalf("building %dD table: %v", dim, err)
	}
	return table
}

func TestTableSizes(t *testing.T) {
	for dim := 1; dim <= 4; dim++ {
		table := mustTable(t, dim, false, false)
		if got := table.Dimension(); got != dim {
			t.Errorf("dim %d: Dimension()=%d", dim, got)
		}
		if got, want := table.NumPolyVertices(), 1<<dim; got != want {
			t.Errorf("dim %d: NumPolyVertices()=%d, want %d", dim, got, want)
		}
		if got, want := table.NumPolyEdges(), dim<<(dim-1); got != want {
			t.Errorf("dim %d: NumPolyEdges()=%d, want %d", dim, got, want)
		}
		if got, want := table.NumTableEntries(), 1<<(1<<dim); got != want {
			t.Errorf("dim %d: NumTableEntries()=%d, want %d", dim, got, want)
		}
	}
}

func TestTableBadDimension(t *testing.T) {
	for _, dim := range []int{-1, 0, 5, 32} {
		if _, err := dualtable.New(dim, false, false); err == nil {
			t.Errorf("dimension %d: expected error", dim)
		}
	}
}

func TestUniformEntries(t *testing.T) {
	for dim := 1; dim <= 4; dim++ {
		table := mustTable(t, dim, false, false)
		for _, it := range []int{0, table.NumTableEntries() - 1} {
			if n := table.NumIsoVertices(it); n != 0 {
				t.Errorf("dim %d entry %d: NumIsoVertices=%d, want 0", dim, it, n)
			}
			for ke := 0; ke < table.NumPolyEdges(); ke++ {
				if table.IsBipolar(it, ke) {
					t.Errorf("dim %d entry %d: edge %d bipolar", dim, it, ke)
				}
			}
		}
	}
}

func TestSingleCorner3D(t *testing.T) {
	table := mustTable(t, 3, false, false)
	// One positive corner: one dual vertex, and the three edges leaving
	// that corner are the bipolar ones.
	const it = 1
	if n := table.NumIsoVertices(it); n != 1 {
		t.Fatalf("NumIsoVertices(%d)=%d, want 1", it, n)
	}
	bipolar := 0
	for ke := 0; ke < table.NumPolyEdges(); ke++ {
		if !table.IsBipolar(it, ke) {
			continue
		}
		bipolar++
		iv0, iv1 := table.Cube().EdgeEndpoints(ke)
		if iv0 != 0 && iv1 != 0 {
			t.Errorf("edge %d (%d,%d) bipolar but not incident on corner 0", ke, iv0, iv1)
		}
		if isov := table.IncidentIsoVertex(it, ke); isov != 0 {
			t.Errorf("edge %d: IncidentIsoVertex=%d, want 0", ke, isov)
		}
	}
	if bipolar != 3 {
		t.Errorf("entry %d has %d bipolar edges, want 3", it, bipolar)
	}
}

func TestMixedEntriesHaveDualVertices(t *testing.T) {
	table := mustTable(t, 3, false, false)
	for it := 1; it < table.NumTableEntries()-1; it++ {
		if n := table.NumIsoVertices(it); n < 1 {
			t.Errorf("entry %d: NumIsoVertices=%d, want >= 1", it, n)
		}
	}
}

func TestComplementInvolution(t *testing.T) {
	for dim := 1; dim <= 3; dim++ {
		table := mustTable(t, dim, false, false)
		for it := 0; it < table.NumTableEntries(); it++ {
			if got := table.Complement(table.Complement(it)); got != it {
				t.Fatalf("dim %d: Complement(Complement(%d))=%d", dim, it, got)
			}
		}
	}
}

func TestComplementBipolarAgreement(t *testing.T) {
	for dim := 2; dim <= 3; dim++ {
		table := mustTable(t, dim, false, false)
		for it := 0; it < table.NumTableEntries(); it++ {
			ic := table.Complement(it)
			for ke := 0; ke < table.NumPolyEdges(); ke++ {
				if table.IsBipolar(it, ke) != table.IsBipolar(ic, ke) {
					t.Fatalf("dim %d: entries %d and %d disagree on edge %d polarity", dim, it, ic, ke)
				}
			}
		}
	}
}

// Flipping every corner sign and swapping the separated class must give
// the same dual vertex counts.
func TestSeparationSymmetry(t *testing.T) {
	pos := mustTable(t, 3, false, false)
	neg := mustTable(t, 3, true, false)
	for it := 0; it < pos.NumTableEntries(); it++ {
		if got, want := neg.NumIsoVertices(pos.Complement(it)), pos.NumIsoVertices(it); got != want {
			t.Errorf("entry %d: negated table has %d dual vertices, want %d", it, got, want)
		}
	}
}

func TestSeparateOppositeCorners(t *testing.T) {
	// Corners 0 and 7 positive: the non-separated class is a diagonally
	// opposite pair, so the override splits it into two patches.
	const it = 1 | 1<<7
	merged := mustTable(t, 3, true, false)
	if n := merged.NumIsoVertices(it); n != 1 {
		t.Errorf("without override: NumIsoVertices(%d)=%d, want 1", it, n)
	}
	split := mustTable(t, 3, true, true)
	if n := split.NumIsoVertices(it); n != 2 {
		t.Errorf("with override: NumIsoVertices(%d)=%d, want 2", it, n)
	}
}

func TestIsPositive(t *testing.T) {
	table := mustTable(t, 3, false, false)
	const it = 0b10100101
	for iv := 0; iv < 8; iv++ {
		want := it&(1<<iv) != 0
		if got := table.IsPositive(it, iv); got != want {
			t.Errorf("IsPositive(%#b, %d)=%v, want %v", it, iv, got, want)
		}
	}
}

func TestEntryRangePanics(t *testing.T) {
	table := mustTable(t, 3, false, false)
	defer func() {
		if recover() == nil {
			t.Error("NumIsoVertices out of range did not panic")
		}
	}()
	table.NumIsoVertices(table.NumTableEntries())
}

func TestAmbiguity3D(t *testing.T) {
	table := mustTable(t, 3, false, false)
	amb := dualtable.ComputeAmbiguity(table)

	cases := []struct {
		it        int
		ambiguous bool
	}{
		{0, false},
		{255, false},
		{1, false},          // single corner
		{1 | 1<<1, false},   // edge
		{1 | 1<<7, true},    // opposite corner pair
		{1 | 1<<3, true},    // facet diagonal pair
		{0b01101001, true},  // alternating corners
		{0b00001111, false}, // half and half
	}
	for _, tc := range cases {
		if got := amb.IsAmbiguous(tc.it); got != tc.ambiguous {
			t.Errorf("IsAmbiguous(%d)=%v, want %v", tc.it, got, tc.ambiguous)
		}
	}
}

func TestAmbiguityComplementSymmetry(t *testing.T) {
	table := mustTable(t, 3, false, false)
	amb := dualtable.ComputeAmbiguity(table)
	for it := 0; it < table.NumTableEntries(); it++ {
		ic := table.Complement(it)
		if amb.IsAmbiguous(it) != amb.IsAmbiguous(ic) {
			t.Errorf("entries %d and %d disagree on ambiguity", it, ic)
		}
		if amb.AmbiguousFacetBits(it) != amb.AmbiguousFacetBits(ic) {
			t.Errorf("entries %d and %d disagree on ambiguous facets", it, ic)
		}
	}
}

func TestFacetAmbiguity(t *testing.T) {
	table := mustTable(t, 3, false, false)
	amb := dualtable.ComputeAmbiguity(table)

	// Corners 0 and 3 are a diagonal pair of the z=0 facet (facet 2).
	const it = 1 | 1<<3
	if !amb.IsFacetAmbiguous(it, 2) {
		t.Error("facet 2 of diagonal pair not flagged ambiguous")
	}
	if got := amb.NumAmbiguousFacets(it); got != 1 {
		t.Errorf("NumAmbiguousFacets(%d)=%d, want 1", it, got)
	}
	// The opposite facet z=1 holds no positive corner and is inactive.
	if amb.IsFacetAmbiguous(it, 5) {
		t.Error("inactive facet 5 flagged ambiguous")
	}
	if got := amb.NumActiveFacets(1); got != 3 {
		t.Errorf("NumActiveFacets(1)=%d, want 3", got)
	}
	if got := amb.NumActiveFacets(0); got != 0 {
		t.Errorf("NumActiveFacets(0)=%d, want 0", got)
	}
}

func TestAmbiguousFacetCountMatchesBits(t *testing.T) {
	table := mustTable(t, 3, false, false)
	amb := dualtable.ComputeAmbiguity(table)
	for it := 0; it < table.NumTableEntries(); it++ {
		n := 0
		for jf := 0; jf < table.Cube().NumFacets(); jf++ {
			if amb.IsFacetAmbiguous(it, jf) {
				n++
			}
		}
		if got := amb.NumAmbiguousFacets(it); got != n {
			t.Errorf("entry %d: NumAmbiguousFacets=%d, facet scan found %d", it, got, n)
		}
	}
}
