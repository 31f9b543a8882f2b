package ivolmesh_test

import (
	"math/rand"
	"os"
	"testing"

	"github.com/pkg/profile"
	"github.com/soypat/ivolmesh"
	"gonum.org/v1/gonum/spatial/r3"
)

// makeHexGrid builds a structured nx by ny by nz hexahedral grid with
// jittered interior vertices so the optimization passes have work to do.
func makeHexGrid(nx, ny, nz int) (elems []int, coord []r3.Vec, info []ivolmesh.VertexInfo) {
	rng := rand.New(rand.NewSource(1))
	vidx := func(i, j, k int) int { return (k*(ny+1)+j)*(nx+1) + i }
	for k := 0; k <= nz; k++ {
		for j := 0; j <= ny; j++ {
			for i := 0; i <= nx; i++ {
				p := r3.Vec{X: float64(i), Y: float64(j), Z: float64(k)}
				if i > 0 && i < nx && j > 0 && j < ny && k > 0 && k < nz {
					p = r3.Add(p, r3.Vec{
						X: 0.3 * (rng.Float64() - 0.5),
						Y: 0.3 * (rng.Float64() - 0.5),
						Z: 0.3 * (rng.Float64() - 0.5),
					})
				}
				coord = append(coord, p)
			}
		}
	}
	info = make([]ivolmesh.VertexInfo, len(coord))
	cell := 0
	for k := 0; k < nz; k++ {
		for j := 0; j < ny; j++ {
			for i := 0; i < nx; i++ {
				for iv := 0; iv < 8; iv++ {
					v := vidx(i+iv&1, j+(iv>>1)&1, k+(iv>>2)&1)
					elems = append(elems, v)
					info[v].Cube = cell
				}
				cell++
			}
		}
	}
	return elems, coord, info
}

func benchParams() ivolmesh.Params {
	return ivolmesh.Params{
		LaplacianLimit:      1.5,
		LaplacianIterations: 2,
		ShortEdgeLimit:      0.2,
		ShortEdgeIterations: 1,
		JacobianLimit:       0.2,
		JacobianIterations:  2,
	}
}

func BenchmarkOptimize(b *testing.B) {
	elems, coord, info := makeHexGrid(10, 10, 10)
	pristine := append([]r3.Vec(nil), coord...)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		copy(coord, pristine)
		o, err := ivolmesh.NewOptimizer(elems, coord, info, nil)
		if err != nil {
			b.Fatal(err)
		}
		b.StartTimer()
		o.Optimize(benchParams(), nil)
	}
}

func BenchmarkNewOptimizer(b *testing.B) {
	elems, coord, info := makeHexGrid(10, 10, 10)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ivolmesh.NewOptimizer(elems, coord, info, nil); err != nil {
			b.Fatal(err)
		}
	}
}

func TestOptimizeGrid(t *testing.T) {
	elems, coord, info := makeHexGrid(4, 4, 4)
	o, err := ivolmesh.NewOptimizer(elems, coord, info, nil)
	if err != nil {
		t.Fatal(err)
	}
	if o.NumElems() != 64 {
		t.Fatalf("grid has %d elements, want 64", o.NumElems())
	}
	var stats ivolmesh.Stats
	o.Optimize(benchParams(), &stats)
	if stats.LaplacianMoved == 0 {
		t.Error("jittered grid produced no smoothing moves")
	}
	// Every pass moves vertices toward neighbor averages, so the mesh
	// stays inside the original hull.
	bb := o.Bounds()
	const tol = 1e-9
	if bb.Min.X < -tol || bb.Min.Y < -tol || bb.Min.Z < -tol ||
		bb.Max.X > 4+tol || bb.Max.Y > 4+tol || bb.Max.Z > 4+tol {
		t.Errorf("Bounds()=%+v escaped the original hull", bb)
	}
}

// Produces cpu.pprof in the working directory when IVOLMESH_PROFILE is
// set; skipped otherwise.
func TestOptimizeProfile(t *testing.T) {
	if os.Getenv("IVOLMESH_PROFILE") == "" {
		t.Skip("set IVOLMESH_PROFILE to profile an optimization run")
	}
	defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	elems, coord, info := makeHexGrid(20, 20, 20)
	o, err := ivolmesh.NewOptimizer(elems, coord, info, nil)
	if err != nil {
		t.Fatal(err)
	}
	var stats ivolmesh.Stats
	o.Optimize(benchParams(), &stats)
	t.Logf("moved %d vertices", stats.Moved())
}
