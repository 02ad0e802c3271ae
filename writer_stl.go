package hmm

import (
	"fmt"

	"github.com/hschendel/stl"
)

// WriteSTL writes the mesh's points and triangles as a binary STL
// file at path, following the pack's AppendTriangle/RecalculateNormals
// pattern rather than computing face normals by hand.
func WriteSTL(path string, points []Vertex, triangles []Triangle) error {
	solid := &stl.Solid{}

	for _, t := range triangles {
		solid.AppendTriangle(stl.Triangle{
			Vertices: [3]stl.Vec3{
				toVec3(points[t[0]]),
				toVec3(points[t[1]]),
				toVec3(points[t[2]]),
			},
		})
	}

	solid.RecalculateNormals()

	if err := solid.WriteFile(path); err != nil {
		return fmt.Errorf("hmm: writing STL %s: %w", path, err)
	}
	return nil
}

func toVec3(v Vertex) stl.Vec3 {
	return stl.Vec3{float32(v.X), float32(v.Y), float32(v.Z)}
}
