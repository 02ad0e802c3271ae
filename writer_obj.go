package hmm

import (
	"bufio"
	"fmt"
	"os"
)

// UV is a 2D texture coordinate, one per mesh vertex.
type UV struct {
	U, V float64
}

// WriteOBJ writes the mesh as a Wavefront OBJ file at path, with one
// vt per point. No library in the retrieved pack speaks OBJ, so this
// writes the (trivial, line-oriented) format directly with bufio/fmt.
func WriteOBJ(path string, points []Vertex, triangles []Triangle, uvs []UV) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("hmm: creating %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)

	for _, v := range points {
		if _, err := fmt.Fprintf(w, "v %g %g %g\n", v.X, v.Y, v.Z); err != nil {
			return fmt.Errorf("hmm: writing OBJ %s: %w", path, err)
		}
	}
	for _, uv := range uvs {
		if _, err := fmt.Fprintf(w, "vt %g %g\n", uv.U, uv.V); err != nil {
			return fmt.Errorf("hmm: writing OBJ %s: %w", path, err)
		}
	}
	for _, t := range triangles {
		// OBJ indices are 1-based; vt indices line up with v indices
		// since WriteOBJ always emits one texture coordinate per point.
		if _, err := fmt.Fprintf(w, "f %d/%d %d/%d %d/%d\n",
			t[0]+1, t[0]+1, t[1]+1, t[1]+1, t[2]+1, t[2]+1); err != nil {
			return fmt.Errorf("hmm: writing OBJ %s: %w", path, err)
		}
	}

	return w.Flush()
}
