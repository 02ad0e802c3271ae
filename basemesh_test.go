package hmm

import "testing"

func TestAddBaseClosesTheVolume(t *testing.T) {
	hm := gridFromFunc(10, 10, func(x, y int) float64 { return 0.5 })
	tr := runTriangulator(t, hm, 0.001, 0, 0)

	points, triangles := tr.Points(), tr.Triangles()
	surfacePoints, surfaceTriangles := len(points), len(triangles)

	points, triangles = AddBase(points, triangles, hm.Width(), hm.Height(), -1)

	if len(points) <= surfacePoints {
		t.Errorf("AddBase did not add any base vertices: %d -> %d", surfacePoints, len(points))
	}
	if len(triangles) <= surfaceTriangles {
		t.Errorf("AddBase did not add any base triangles: %d -> %d", surfaceTriangles, len(triangles))
	}

	var sawBelowZero bool
	for _, p := range points[surfacePoints:] {
		if p.Z != -1 {
			t.Errorf("base vertex %v not at the requested floor elevation", p)
		}
		sawBelowZero = true
	}
	if !sawBelowZero {
		t.Error("expected at least one base vertex")
	}
}

func TestAddBaseNoOpOnEmptyBoundary(t *testing.T) {
	points := []Vertex{{X: 5, Y: 5, Z: 0}}
	triangles := []Triangle{}

	outPoints, outTriangles := AddBase(points, triangles, 10, 10, -1)

	if len(outPoints) != len(points) || len(outTriangles) != len(triangles) {
		t.Error("AddBase should be a no-op when no boundary vertices are found")
	}
}
