package hmm

import "testing"

func TestRasterizeWorstErrorOnFlatPlane(t *testing.T) {
	hm := gridFromFunc(10, 10, func(x, y int) float64 { return 0.5 })
	A := vertex{samplePoint{0, 0}, 0.5}
	B := vertex{samplePoint{9, 0}, 0.5}
	C := vertex{samplePoint{0, 9}, 0.5}

	cand := rasterizeWorstError(hm, A, B, C)
	if cand.Err != 0 {
		t.Errorf("err = %g, want 0 for a triangle coplanar with the heightmap", cand.Err)
	}
}

func TestRasterizeWorstErrorFindsTheSpike(t *testing.T) {
	hm := gridFromFunc(10, 10, func(x, y int) float64 {
		if x == 4 && y == 4 {
			return 1
		}
		return 0
	})
	A := vertex{samplePoint{0, 0}, 0}
	B := vertex{samplePoint{9, 0}, 0}
	C := vertex{samplePoint{0, 9}, 0}

	cand := rasterizeWorstError(hm, A, B, C)
	if cand.X != 4 || cand.Y != 4 {
		t.Errorf("worst pixel = (%d,%d), want (4,4)", cand.X, cand.Y)
	}
	if cand.Err <= 0 {
		t.Errorf("err = %g, want > 0", cand.Err)
	}
}
