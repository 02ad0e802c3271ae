/*
Package hmm converts a grayscale heightmap into a triangulated surface
mesh using a greedy, error-driven Delaunay refinement (Garland-Heckbert
"Fast Polygonal Approximation of Terrains and Height Fields").

The package provides a command line utility supporting the usual
heightmap-to-mesh options. Check the supported commands by typing:

	$ hmm --help

Using Go interfaces the API can expose the triangulated result either
as the raw mesh (points, triangles, terminal error) or through one of
the writers in this package.

Example to triangulate a heightmap and write it out as a binary STL:

	package main

	import (
		"fmt"

		"github.com/natanalt/hmm"
	)

	func main() {
		hm, err := hmm.LoadHeightmap("input.png")
		if err != nil {
			panic(err)
		}

		t, err := hmm.NewTriangulator(hm)
		if err != nil {
			panic(err)
		}
		if err := t.Run(0.001, 0, 0); err != nil {
			panic(err)
		}

		points := hmm.ScaleZ(t.Points(), 20)
		points = hmm.Rescale(points, hm.Width(), hm.Height(), 100, 100)
		if err := hmm.WriteSTL("output.stl", points, t.Triangles()); err != nil {
			fmt.Printf("Error writing STL: %s", err.Error())
		}
	}
*/
package hmm
