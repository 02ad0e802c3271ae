package hmm

import (
	"fmt"
	"image/color"

	"github.com/fogleman/gg"
)

// SavePreview renders a wireframe debug view of the triangulated mesh
// to a PNG at path: each triangle filled by its average vertex
// elevation (grayscale) and outlined in red, using a fill-then-stroke
// pass per triangle.
func SavePreview(hm Heightmap, points []Vertex, triangles []Triangle, path string) error {
	width, height := hm.Width(), hm.Height()
	ctx := gg.NewContext(width, height)
	ctx.DrawRectangle(0, 0, float64(width), float64(height))
	ctx.SetRGBA(1, 1, 1, 1)
	ctx.Fill()

	for _, t := range triangles {
		a, b, c := points[t[0]], points[t[1]], points[t[2]]

		ctx.Push()
		ctx.MoveTo(a.X, a.Y)
		ctx.LineTo(b.X, b.Y)
		ctx.LineTo(c.X, c.Y)
		ctx.LineTo(a.X, a.Y)

		shade := (a.Z + b.Z + c.Z) / 3
		fill := color.RGBA{
			R: uint8(clamp01(shade) * 255),
			G: uint8(clamp01(shade) * 255),
			B: uint8(clamp01(shade) * 255),
			A: 255,
		}

		ctx.SetFillStyle(gg.NewSolidPattern(fill))
		ctx.SetStrokeStyle(gg.NewSolidPattern(color.RGBA{R: 255, G: 0, B: 0, A: 160}))
		ctx.SetLineWidth(0.5)
		ctx.FillPreserve()
		ctx.StrokePreserve()
		ctx.Stroke()
		ctx.Pop()
	}

	if err := ctx.SavePNG(path); err != nil {
		return fmt.Errorf("hmm: writing preview %s: %w", path, err)
	}
	return nil
}
