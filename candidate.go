package hmm

import "math"

// candidate is the worst-error pixel cached for a live triangle. A
// triangle whose candidate coincides with one of its own vertices is
// ineligible for further splitting and carries Err 0.
type candidate struct {
	X, Y int
	Err  float64
}

// recomputeCandidate rasterizes triangle t and caches its worst-error
// pixel. Degenerate (zero-area) triangles must never reach here; they
// are prevented by the exact orientation checks during insertion and
// flipping.
func (m *mesh) recomputeCandidate(t int32) {
	base := 3 * t
	a, b, c := m.origin[base+0], m.origin[base+1], m.origin[base+2]
	A, B, C := m.verts[a], m.verts[b], m.verts[c]

	cand := rasterizeWorstError(m.hm, A, B, C)
	m.candidates[t] = cand
	m.q.push(t, m.gen[t], cand.Err)
}

// rasterizeWorstError walks the integer-aligned bounding box of the
// closed triangle A,B,C and returns the pixel whose elevation departs
// most from the plane through A,B,C. Edge functions and the plane
// value are maintained incrementally: each is linear in (x,y), so a
// per-row base plus a per-column step suffices.
func rasterizeWorstError(hm Heightmap, A, B, C vertex) candidate {
	minX := Min(A.X, B.X, C.X)
	maxX := Max(A.X, B.X, C.X)
	minY := Min(A.Y, B.Y, C.Y)
	maxY := Max(A.Y, B.Y, C.Y)

	// Twice the signed area of ABC; positive because triangles are
	// always stored ccw.
	area2 := int64(B.X-A.X)*int64(C.Y-A.Y) - int64(B.Y-A.Y)*int64(C.X-A.X)
	invArea2 := 1.0 / float64(area2)

	// Edge function for edge (P,Q) evaluated at (x,y):
	//   e(x,y) = (Q.X-P.X)*(y-P.Y) - (Q.Y-P.Y)*(x-P.X)
	// which is linear in x and y with constant per-step deltas.
	type edge struct {
		dx, dy   int64 // Q-P
		baseVal  int64 // value at (minX, minY)
		stepX    int64 // delta when x += 1
		stepY    int64 // delta when y += 1 (applied once per row)
	}
	newEdge := func(p, q samplePoint) edge {
		dx := int64(q.X - p.X)
		dy := int64(q.Y - p.Y)
		base := dx*int64(minY-p.Y) - dy*int64(minX-p.X)
		return edge{dx: dx, dy: dy, baseVal: base, stepX: -dy, stepY: dx}
	}

	eAB := newEdge(A.samplePoint, B.samplePoint)
	eBC := newEdge(B.samplePoint, C.samplePoint)
	eCA := newEdge(C.samplePoint, A.samplePoint)

	var best candidate
	best.Err = -1

	rowAB, rowBC, rowCA := eAB.baseVal, eBC.baseVal, eCA.baseVal

	for y := minY; y <= maxY; y++ {
		valAB, valBC, valCA := rowAB, rowBC, rowCA

		for x := minX; x <= maxX; x++ {
			if valAB >= 0 && valBC >= 0 && valCA >= 0 {
				// Barycentric weights (unnormalized): the weight for
				// vertex C is the edge function of AB, etc.
				wC := float64(valAB)
				wA := float64(valBC)
				wB := float64(valCA)

				zPlane := (wA*A.Z + wB*B.Z + wC*C.Z) * invArea2
				zHM := hm.At(x, y)
				err := zHM - zPlane
				abs := math.Abs(err)
				if abs > best.Err {
					best = candidate{X: x, Y: y, Err: abs}
				}
			}
			valAB += eAB.stepX
			valBC += eBC.stepX
			valCA += eCA.stepX
		}

		rowAB += eAB.stepY
		rowBC += eBC.stepY
		rowCA += eCA.stepY
	}

	if best.Err < 0 {
		// Degenerate bounding box (should not happen for a
		// non-degenerate triangle since each vertex is itself a valid
		// rasterized pixel), fall back to vertex A with zero error.
		return candidate{X: A.X, Y: A.Y, Err: 0}
	}

	// A candidate equal to one of the triangle's own vertices is
	// never eligible for re-insertion; store it with error zero so it
	// sorts last and is never re-enqueued as a positive-error split.
	if (best.X == A.X && best.Y == A.Y) ||
		(best.X == B.X && best.Y == B.Y) ||
		(best.X == C.X && best.Y == C.Y) {
		best.Err = 0
	}

	return best
}
