package hmm

import "fmt"

// maxSafeDimension bounds the heightmap so that the incircle and
// orientation determinants (degree-4 in pixel coordinates) cannot
// overflow signed 64-bit arithmetic. The determinant's dominant term
// is bounded by roughly 8*max(W,H)^4; at 20000 that is comfortably
// under 2^63 with headroom for intermediate products.
const maxSafeDimension = 20000

// samplePoint is an integer pixel coordinate. Every triangulation
// vertex corresponds to exactly one samplePoint.
type samplePoint struct {
	X, Y int
}

// vertex is a triangulation vertex: its sample coordinate plus the
// elevation read once from the heightmap at insertion time.
type vertex struct {
	samplePoint
	Z float64
}

// mesh is the half-edge connectivity: triangles are three consecutive
// half-edge slots, origin[e] is the origin vertex of half-edge e,
// twin[e] is the opposing half-edge across the shared edge (or -1 on
// the convex hull). Triangle slots are reused via a free list; gen
// distinguishes a reused slot from the one a stale queue entry still
// refers to.
type mesh struct {
	hm Heightmap
	q  *priorityQueue

	verts []vertex

	origin []int32 // len == 3*cap(triangles)
	twin   []int32 // len == 3*cap(triangles)
	live   []bool  // indexed by triangle id
	gen    []uint32

	free []int32

	candidates []candidate // indexed by triangle id

	flipStack []int32

	liveCount int
}

func newMesh(hm Heightmap) (*mesh, error) {
	w, h := hm.Width(), hm.Height()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("hmm: invalid heightmap dimensions %dx%d", w, h)
	}
	maxDim := w
	if h > maxDim {
		maxDim = h
	}
	if maxDim > maxSafeDimension {
		return nil, fmt.Errorf("hmm: heightmap dimension %d exceeds the safe limit of %d pixels for exact 64-bit predicates", maxDim, maxSafeDimension)
	}

	m := &mesh{hm: hm, q: newPriorityQueue()}

	p00 := m.addVertex(0, 0)
	p10 := m.addVertex(w-1, 0)
	p01 := m.addVertex(0, h-1)
	p11 := m.addVertex(w-1, h-1)

	// Two triangles split along the (0,0)-(w-1,h-1) diagonal, both ccw.
	t0 := m.addTriangle(p00, p11, p01)
	t1 := m.addTriangle(p00, p10, p11)

	// t0 = (p00, p11, p01): edges p00->p11 (diagonal), p11->p01 (hull),
	// p01->p00 (hull).
	// t1 = (p00, p10, p11): edges p00->p10 (hull), p10->p11 (hull),
	// p11->p00 (diagonal, twin of t0's p00->p11).
	m.link(3*t0+0, 3*t1+2)

	m.recomputeCandidate(t0)
	m.recomputeCandidate(t1)

	return m, nil
}

func (m *mesh) addVertex(x, y int) int32 {
	m.verts = append(m.verts, vertex{samplePoint{x, y}, m.hm.At(x, y)})
	return int32(len(m.verts) - 1)
}

// addTriangle allocates a (possibly reused) triangle slot with the
// given ccw vertex triple and all twins unset (-1). The caller is
// responsible for linking boundary half-edges.
func (m *mesh) addTriangle(a, b, c int32) int32 {
	var t int32
	if n := len(m.free); n > 0 {
		t = m.free[n-1]
		m.free = m.free[:n-1]
	} else {
		t = int32(len(m.live))
		m.origin = append(m.origin, 0, 0, 0)
		m.twin = append(m.twin, -1, -1, -1)
		m.live = append(m.live, false)
		m.gen = append(m.gen, 0)
		m.candidates = append(m.candidates, candidate{})
	}

	base := 3 * t
	m.origin[base+0] = a
	m.origin[base+1] = b
	m.origin[base+2] = c
	m.twin[base+0] = -1
	m.twin[base+1] = -1
	m.twin[base+2] = -1
	m.live[t] = true
	m.liveCount++

	return t
}

func (m *mesh) retire(t int32) {
	m.live[t] = false
	m.gen[t]++
	m.liveCount--
	m.free = append(m.free, t)
}

func (m *mesh) link(e1, e2 int32) {
	m.twin[e1] = e2
	if e2 >= 0 {
		m.twin[e2] = e1
	}
}

func next(e int32) int32 {
	t := e / 3
	return 3*t + (e+1)%3
}

func prev(e int32) int32 {
	t := e / 3
	return 3*t + (e+2)%3
}

// insert adds a new vertex at p (belonging to live triangle t, on or
// inside its boundary) and restores local Delaunay-ness by flipping.
func (m *mesh) insert(t int32, p samplePoint) {
	base := 3 * t
	a, b, c := m.origin[base+0], m.origin[base+1], m.origin[base+2]
	A, B, C := m.verts[a].samplePoint, m.verts[b].samplePoint, m.verts[c].samplePoint

	cross0 := orientSign(A, B, p)
	cross1 := orientSign(B, C, p)
	cross2 := orientSign(C, A, p)

	v := m.addVertex(p.X, p.Y)

	switch {
	case cross0 == 0:
		m.splitEdge(base+0, v)
	case cross1 == 0:
		m.splitEdge(base+1, v)
	case cross2 == 0:
		m.splitEdge(base+2, v)
	default:
		m.splitInterior(t, v)
	}

	m.drainFlipStack()
}

// splitInterior replaces triangle t=(A,B,C) with three triangles
// fanning from v to each edge.
func (m *mesh) splitInterior(t int32, v int32) {
	base := 3 * t
	a, b, c := m.origin[base+0], m.origin[base+1], m.origin[base+2]
	oldAB, oldBC, oldCA := m.twin[base+0], m.twin[base+1], m.twin[base+2]

	m.retire(t)

	t1 := m.addTriangle(a, b, v) // A,B,v
	t2 := m.addTriangle(b, c, v) // B,C,v
	t3 := m.addTriangle(c, a, v) // C,A,v

	m.link(3*t1+0, oldAB)
	m.link(3*t2+0, oldBC)
	m.link(3*t3+0, oldCA)

	m.link(3*t1+1, 3*t2+2) // B->v / v->B
	m.link(3*t2+1, 3*t3+2) // C->v / v->C
	m.link(3*t3+1, 3*t1+2) // A->v / v->A

	m.pushFlip(3*t1 + 0)
	m.pushFlip(3*t2 + 0)
	m.pushFlip(3*t3 + 0)

	m.recomputeCandidate(t1)
	m.recomputeCandidate(t2)
	m.recomputeCandidate(t3)
}

// splitEdge inserts v on the edge represented by half-edge he, which
// runs U->W with apex X in its own triangle. If he has a twin (shared
// edge) the twin's triangle is split too; on the convex hull only the
// he side is split.
func (m *mesh) splitEdge(he int32, v int32) {
	twinHe := m.twin[he]
	if twinHe < 0 {
		m.splitHullEdge(he, v)
		return
	}

	t := he / 3
	tp := twinHe / 3

	u := m.origin[he]
	w := m.origin[next(he)]
	x := m.origin[prev(he)]
	y := m.origin[prev(twinHe)]

	oldXU := m.twin[prev(he)]     // edge X->U
	oldWX := m.twin[next(he)]     // edge W->X
	oldYW := m.twin[prev(twinHe)] // edge Y->W
	oldUY := m.twin[next(twinHe)] // edge U->Y

	m.retire(t)
	m.retire(tp)

	ta := m.addTriangle(u, v, x) // U,v,X
	tb := m.addTriangle(v, w, x) // v,W,X
	tc := m.addTriangle(w, v, y) // W,v,Y
	td := m.addTriangle(v, u, y) // v,U,Y

	m.link(3*ta+1, 3*tb+2) // v->X / X->v
	m.link(3*ta+0, 3*td+0) // U->v / v->U
	m.link(3*tb+0, 3*tc+0) // v->W / W->v
	m.link(3*tc+1, 3*td+2) // v->Y / Y->v

	m.link(3*ta+2, oldXU) // X->U
	m.link(3*tb+1, oldWX) // W->X
	m.link(3*tc+2, oldYW) // Y->W
	m.link(3*td+1, oldUY) // U->Y

	m.pushFlip(3*ta + 2)
	m.pushFlip(3*tb + 1)
	m.pushFlip(3*tc + 2)
	m.pushFlip(3*td + 1)

	m.recomputeCandidate(ta)
	m.recomputeCandidate(tb)
	m.recomputeCandidate(tc)
	m.recomputeCandidate(td)
}

func (m *mesh) splitHullEdge(he int32, v int32) {
	t := he / 3
	u := m.origin[he]
	w := m.origin[next(he)]
	x := m.origin[prev(he)]

	oldXU := m.twin[prev(he)]
	oldWX := m.twin[next(he)]

	m.retire(t)

	ta := m.addTriangle(u, v, x) // U,v,X
	tb := m.addTriangle(v, w, x) // v,W,X

	m.link(3*ta+1, 3*tb+2) // v->X / X->v
	m.link(3*ta+0, -1)     // U->v hull edge
	m.link(3*tb+0, -1)     // v->W hull edge

	m.link(3*ta+2, oldXU) // X->U
	m.link(3*tb+1, oldWX) // W->X

	m.pushFlip(3*ta + 2)
	m.pushFlip(3*tb + 1)

	m.recomputeCandidate(ta)
	m.recomputeCandidate(tb)
}

func (m *mesh) pushFlip(e int32) {
	if m.twin[e] >= 0 {
		m.flipStack = append(m.flipStack, e)
	}
}

// drainFlipStack restores the Delaunay property by repeatedly
// flipping any popped edge whose opposite quadrilateral vertex lies
// inside its triangle's circumcircle.
func (m *mesh) drainFlipStack() {
	for len(m.flipStack) > 0 {
		n := len(m.flipStack)
		e := m.flipStack[n-1]
		m.flipStack = m.flipStack[:n-1]

		te := m.twin[e]
		if te < 0 {
			continue
		}
		t := e / 3
		if !m.live[t] || !m.live[te/3] {
			continue
		}

		a := m.origin[e]
		b := m.origin[next(e)]
		l := m.origin[prev(e)]
		r := m.origin[prev(te)]

		A, B, L, R := m.verts[a].samplePoint, m.verts[b].samplePoint, m.verts[l].samplePoint, m.verts[r].samplePoint

		if !incircle(A, B, L, R) {
			continue
		}

		m.flip(e)
	}
}

// flip retriangulates the quadrilateral spanning e and twin(e) along
// the other diagonal.
func (m *mesh) flip(e int32) {
	te := m.twin[e]
	t := e / 3
	tp := te / 3

	a := m.origin[e]
	b := m.origin[next(e)]
	l := m.origin[prev(e)]
	r := m.origin[prev(te)]

	oldBL := m.twin[next(e)]  // edge B->L
	oldLA := m.twin[prev(e)]  // edge L->A
	oldAR := m.twin[next(te)] // edge A->R
	oldRB := m.twin[prev(te)] // edge R->B

	m.retire(t)
	m.retire(tp)

	t1 := m.addTriangle(l, a, r) // L,A,R
	t2 := m.addTriangle(r, b, l) // R,B,L

	m.link(3*t1+2, 3*t2+2) // R->L / L->R

	m.link(3*t1+0, oldLA) // L->A
	m.link(3*t1+1, oldAR) // A->R
	m.link(3*t2+0, oldRB) // R->B
	m.link(3*t2+1, oldBL) // B->L

	m.pushFlip(3*t1 + 0)
	m.pushFlip(3*t1 + 1)
	m.pushFlip(3*t2 + 0)
	m.pushFlip(3*t2 + 1)

	m.recomputeCandidate(t1)
	m.recomputeCandidate(t2)
}

// orientSign returns the sign of cross(B-A, P-A): positive if P is
// strictly left of the directed edge A->B, zero if collinear.
func orientSign(a, b, p samplePoint) int {
	v := orient2D(a, b, p)
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

func orient2D(a, b, p samplePoint) int64 {
	abx := int64(b.X - a.X)
	aby := int64(b.Y - a.Y)
	apx := int64(p.X - a.X)
	apy := int64(p.Y - a.Y)
	return abx*apy - aby*apx
}

// incircle reports whether p lies strictly inside the circumcircle of
// the ccw triangle (a,b,c), using the exact 3x3 determinant form of
// the incircle predicate.
func incircle(a, b, c, p samplePoint) bool {
	adx := int64(a.X - p.X)
	ady := int64(a.Y - p.Y)
	bdx := int64(b.X - p.X)
	bdy := int64(b.Y - p.Y)
	cdx := int64(c.X - p.X)
	cdy := int64(c.Y - p.Y)

	adSq := adx*adx + ady*ady
	bdSq := bdx*bdx + bdy*bdy
	cdSq := cdx*cdx + cdy*cdy

	det := adx*(bdy*cdSq-cdy*bdSq) -
		ady*(bdx*cdSq-cdx*bdSq) +
		adSq*(bdx*cdy-cdx*bdy)

	return det > 0
}
