package hmm

import (
	"math"
	"testing"
)

// checkInvariants walks every live triangle and checks the
// per-triangle and per-edge invariants any valid mesh state must
// satisfy, at whatever point in the refinement it is called.
func checkInvariants(t *testing.T, m *mesh) {
	t.Helper()

	for tri := int32(0); tri < int32(len(m.live)); tri++ {
		if !m.live[tri] {
			continue
		}
		base := 3 * tri
		a, b, c := m.origin[base+0], m.origin[base+1], m.origin[base+2]
		A, B, C := m.verts[a].samplePoint, m.verts[b].samplePoint, m.verts[c].samplePoint

		if orient2D(A, B, C) <= 0 {
			t.Errorf("triangle %d is not strictly ccw: %v %v %v", tri, A, B, C)
		}

		for k := int32(0); k < 3; k++ {
			e := base + k
			te := m.twin[e]
			if te < 0 {
				continue
			}
			if m.twin[te] != e {
				t.Errorf("twin(twin(%d)) = %d, want %d", e, m.twin[te], e)
			}
			if m.origin[next(e)] != m.origin[te] {
				t.Errorf("origin(next(%d))=%d != origin(twin(%d))=%d", e, m.origin[next(e)], e, m.origin[te])
			}

			tp := te / 3
			if !m.live[tp] {
				t.Errorf("edge %d's twin triangle %d is not live", e, tp)
				continue
			}
			eA := m.verts[m.origin[e]].samplePoint
			eB := m.verts[m.origin[next(e)]].samplePoint
			l := m.verts[m.origin[prev(e)]].samplePoint
			r := m.verts[m.origin[prev(te)]].samplePoint
			if incircle(eA, eB, l, r) {
				t.Errorf("edge %d violates Delaunay: opposite vertex %v lies inside circumcircle", e, r)
			}
		}
	}
}

func TestMeshInvariantsHoldDuringRefinement(t *testing.T) {
	const w, h = 30, 30
	hm := gridFromFunc(w, h, func(x, y int) float64 {
		return math.Sin(float64(x)*2*math.Pi/29) * math.Sin(float64(y)*2*math.Pi/29)
	})

	m, err := newMesh(hm)
	if err != nil {
		t.Fatalf("newMesh: %v", err)
	}
	checkInvariants(t, m)

	for i := 0; i < 50; i++ {
		entry, ok := m.q.pop(m)
		if !ok {
			break
		}
		cand := m.candidates[entry.tri]
		if cand.Err <= 0 {
			break
		}
		m.insert(entry.tri, samplePoint{X: cand.X, Y: cand.Y})
		checkInvariants(t, m)
	}
}

func TestInsertingOwnVertexCandidateIsForbidden(t *testing.T) {
	hm := gridFromFunc(10, 10, func(x, y int) float64 { return 0.5 })
	m, err := newMesh(hm)
	if err != nil {
		t.Fatalf("newMesh: %v", err)
	}

	for tri := int32(0); tri < int32(len(m.live)); tri++ {
		if !m.live[tri] {
			continue
		}
		cand := m.candidates[tri]
		base := 3 * tri
		for k := int32(0); k < 3; k++ {
			v := m.verts[m.origin[base+k]]
			if v.X == cand.X && v.Y == cand.Y && cand.Err != 0 {
				t.Errorf("candidate coincides with vertex %v but has nonzero error %g", v, cand.Err)
			}
		}
	}
}

func TestOrientSign(t *testing.T) {
	a := samplePoint{0, 0}
	b := samplePoint{10, 0}

	if got := orientSign(a, b, samplePoint{5, 5}); got != 1 {
		t.Errorf("orientSign above = %d, want 1", got)
	}
	if got := orientSign(a, b, samplePoint{5, -5}); got != -1 {
		t.Errorf("orientSign below = %d, want -1", got)
	}
	if got := orientSign(a, b, samplePoint{5, 0}); got != 0 {
		t.Errorf("orientSign collinear = %d, want 0", got)
	}
}

func TestIncircleCocircularIsNotInside(t *testing.T) {
	// Four corners of a square are exactly cocircular with each other.
	a := samplePoint{0, 0}
	b := samplePoint{10, 0}
	c := samplePoint{10, 10}
	p := samplePoint{0, 10}

	if incircle(a, b, c, p) {
		t.Error("cocircular point reported as strictly inside")
	}
}
