package hmm

// AddBase extrudes the mesh down to a flat bottom at elevation z and
// closes it with a skirt around the boundary plus a bottom cap,
// producing a solid (printable) volume. w and h are the heightmap's
// pixel dimensions the mesh was triangulated from; z is typically
// negative (below the heightmap's own z=0 floor).
//
// points and triangles are taken by value and the extended slices are
// returned, since the base adds new vertices and faces rather than
// modifying the surface mesh in place.
func AddBase(points []Vertex, triangles []Triangle, w, h int, z float64) ([]Vertex, []Triangle) {
	surfaceVertCount := len(points)

	boundary := boundaryLoop(points, w, h)
	if len(boundary) == 0 {
		return points, triangles
	}

	// One base vertex per boundary vertex, directly below it at z.
	baseIndex := make(map[int]int, len(boundary))
	for _, i := range boundary {
		baseIndex[i] = len(points)
		p := points[i]
		points = append(points, Vertex{X: p.X, Y: p.Y, Z: z})
	}

	// Skirt: one quad (two triangles) per boundary edge, wound so the
	// skirt faces outward.
	for i := 0; i < len(boundary); i++ {
		a := boundary[i]
		b := boundary[(i+1)%len(boundary)]
		ba, bb := baseIndex[a], baseIndex[b]
		triangles = append(triangles,
			Triangle{a, ba, bb},
			Triangle{a, bb, b},
		)
	}

	// Bottom cap: a fan from the first base vertex. The boundary loop
	// is a simple rectangle-derived polygon, so a fan triangulation is
	// always valid and matches the cheap approach the rest of the
	// package favors over a general polygon triangulator.
	first := baseIndex[boundary[0]]
	for i := 1; i+1 < len(boundary); i++ {
		bi := baseIndex[boundary[i]]
		bj := baseIndex[boundary[i+1]]
		triangles = append(triangles, Triangle{first, bj, bi})
	}

	_ = surfaceVertCount
	return points, triangles
}

// boundaryLoop returns the surface mesh's outer boundary vertex
// indices, in order, by walking the four edges of the heightmap's
// pixel-space bounding rectangle and matching each integer (x,y) to
// its vertex index. The triangulator always keeps the four corners
// and never moves a hull vertex off the rectangle's perimeter, so
// every vertex with X or Y on the rectangle's edge is a boundary
// vertex.
func boundaryLoop(points []Vertex, w, h int) []int {
	byXY := make(map[[2]int]int, len(points))
	for i, p := range points {
		byXY[[2]int{int(p.X), int(p.Y)}] = i
	}

	var loop []int
	add := func(x, y int) {
		if i, ok := byXY[[2]int{x, y}]; ok {
			loop = append(loop, i)
		}
	}

	for x := 0; x < w; x++ {
		add(x, 0)
	}
	for y := 1; y < h; y++ {
		add(w-1, y)
	}
	for x := w - 2; x >= 0; x-- {
		add(x, h-1)
	}
	for y := h - 2; y > 0; y-- {
		add(0, y)
	}

	return loop
}
