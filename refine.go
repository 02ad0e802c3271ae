package hmm

// Heightmap is the immutable elevation sampler consumed by the
// triangulator. At must return a value in [0,1]; the heightmap must
// remain alive and immutable for the triangulator's lifetime.
type Heightmap interface {
	Width() int
	Height() int
	At(x, y int) float64
}

// Vertex is one output mesh vertex, in pixel units: X and Y are the
// sample's pixel coordinates, Z is the heightmap elevation sampled
// there.
type Vertex struct {
	X, Y, Z float64
}

// Triangle is a counter-clockwise vertex-index triple.
type Triangle [3]int

// Triangulator builds a Delaunay triangulation of a heightmap domain
// by repeatedly inserting the worst-error candidate point. It is
// single-threaded and non-suspending: Run must not be called
// concurrently with itself, and the Heightmap it was built from must
// not change for its lifetime.
type Triangulator struct {
	m   *mesh
	err float64
	ran bool
}

// NewTriangulator constructs the initial two-triangle triangulation of
// the heightmap's domain rectangle. It fails only for invalid input: a
// zero-sized heightmap, or one whose dimensions would let the
// incircle/orientation determinants overflow signed 64-bit
// arithmetic.
func NewTriangulator(hm Heightmap) (*Triangulator, error) {
	m, err := newMesh(hm)
	if err != nil {
		return nil, err
	}
	return &Triangulator{m: m}, nil
}

// Run repeatedly inserts the worst-error candidate until the worst
// remaining error is at most maxError, the live triangle count reaches
// maxTriangles, or the vertex count reaches maxPoints, whichever comes
// first. maxTriangles == 0 and maxPoints == 0 mean unbounded. One
// insertion adds one or two triangles, so the final triangle count can
// exceed maxTriangles by one. A zero-progress termination (the first
// popped candidate already has error 0) is a valid outcome, not a
// failure.
func (t *Triangulator) Run(maxError float64, maxTriangles, maxPoints int) error {
	m := t.m

	for {
		entry, ok := m.q.pop(m)
		if !ok {
			// Every live triangle is coplanar with its samples: no
			// further progress is possible regardless of bounds.
			t.err = 0
			break
		}

		e := entry.err
		reachedTriangles := maxTriangles > 0 && m.liveCount >= maxTriangles
		reachedPoints := maxPoints > 0 && len(m.verts) >= maxPoints

		if e <= maxError || reachedTriangles || reachedPoints {
			t.err = e
			// Put the entry back so a subsequent Run call with looser
			// bounds can continue from exactly this point.
			m.q.push(entry.tri, entry.gen, entry.err)
			break
		}

		cand := m.candidates[entry.tri]
		m.insert(entry.tri, samplePoint{X: cand.X, Y: cand.Y})
	}

	t.ran = true
	return nil
}

// Points returns the final vertex list, each as (x,y,z_hm(x,y)) in
// pixel units.
func (t *Triangulator) Points() []Vertex {
	m := t.m
	out := make([]Vertex, len(m.verts))
	for i, v := range m.verts {
		out[i] = Vertex{X: float64(v.X), Y: float64(v.Y), Z: v.Z}
	}
	return out
}

// Triangles returns the live triangle list as ccw vertex-index
// triples, in a stable (triangle-slot) order.
func (t *Triangulator) Triangles() []Triangle {
	m := t.m
	out := make([]Triangle, 0, m.liveCount)
	for tri := 0; tri < len(m.live); tri++ {
		if !m.live[tri] {
			continue
		}
		base := int32(3 * tri)
		out = append(out, Triangle{
			int(m.origin[base+0]),
			int(m.origin[base+1]),
			int(m.origin[base+2]),
		})
	}
	return out
}

// Error reports the candidate error of the triangle that would have
// been processed next at termination.
func (t *Triangulator) Error() float64 {
	return t.err
}
