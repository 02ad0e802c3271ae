package hmm

// ScaleZ multiplies every point's elevation by zScale, converting the
// triangulator's raw [0,1] heightmap elevation into the same physical
// units the base height and final mesh size are expressed in. This
// must run before AddBase, since the base's floor elevation is itself
// given in scaled units.
func ScaleZ(points []Vertex, zScale float64) []Vertex {
	out := make([]Vertex, len(points))
	for i, p := range points {
		out[i] = Vertex{X: p.X, Y: p.Y, Z: p.Z * zScale}
	}
	return out
}

// Rescale maps the triangulator's pixel-unit X,Y positions onto a
// mesh of the requested physical size: xSize by ySize. The
// triangulator always produces one unit per heightmap pixel; this is
// a post-processing pass applied once, after triangulation and any
// base extrusion, so both the surface and the base scale together. Z
// is left untouched, since ScaleZ already put it in physical units.
func Rescale(points []Vertex, w, h int, xSize, ySize float64) []Vertex {
	sx := xSize / float64(w)
	sy := ySize / float64(h)
	out := make([]Vertex, len(points))
	for i, p := range points {
		out[i] = Vertex{X: p.X * sx, Y: p.Y * sy, Z: p.Z}
	}
	return out
}

// UVsFromXY derives one UV per point by normalizing its
// already-rescaled X,Y position against the mesh's physical size.
// The heightmap's own grid coordinates map cleanly onto UV space this
// way without any separate unwrapping step.
func UVsFromXY(points []Vertex, xSize, ySize float64) []UV {
	uvs := make([]UV, len(points))
	for i, p := range points {
		uvs[i] = UV{U: p.X / xSize, V: p.Y / ySize}
	}
	return uvs
}
