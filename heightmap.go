package hmm

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"math"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// Grid is the concrete Heightmap: a W*H array of float64 elevations
// in [0,1], row-major by Y then X. AutoLevel, Invert and GammaCurve
// modify it in place.
type Grid struct {
	width, height int
	z              []float64
}

// NewGrid allocates a blank grid of the given dimensions.
func NewGrid(width, height int) *Grid {
	return &Grid{width: width, height: height, z: make([]float64, width*height)}
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

func (g *Grid) At(x, y int) float64 { return g.z[y*g.width+x] }

func (g *Grid) set(x, y int, v float64) { g.z[y*g.width+x] = v }

// LoadHeightmap decodes an image file (PNG, JPEG, BMP or TIFF) and
// converts it to a Grid by grayscale luminance, normalized to [0,1].
func LoadHeightmap(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("hmm: opening heightmap: %w", err)
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("hmm: decoding heightmap (try png, jpg, bmp or tiff): %w", err)
	}

	return GridFromImage(src), nil
}

// GridFromImage converts a decoded image to a Grid using standard
// NTSC luminance weights to collapse color to a single elevation
// channel.
func GridFromImage(src image.Image) *Grid {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	g := NewGrid(w, h)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, gg, bb, _ := src.At(b.Min.X+x, b.Min.Y+y).RGBA()
			lum := float64(r)*0.299 + float64(gg)*0.587 + float64(bb)*0.114
			g.set(x, y, lum/65535.0)
		}
	}
	return g
}

// minMax returns the grid's minimum and maximum elevation.
func (g *Grid) minMax() (lo, hi float64) {
	lo, hi = g.z[0], g.z[0]
	for _, v := range g.z[1:] {
		lo = Min(lo, v)
		hi = Max(hi, v)
	}
	return
}

// AutoLevel stretches the grid's elevation range to fill [0,1].
func (g *Grid) AutoLevel() *Grid {
	lo, hi := g.minMax()
	span := hi - lo
	if span == 0 {
		return g
	}
	for i, v := range g.z {
		g.z[i] = (v - lo) / span
	}
	return g
}

// Invert maps every elevation z to 1-z.
func (g *Grid) Invert() *Grid {
	for i, v := range g.z {
		g.z[i] = 1 - v
	}
	return g
}

// GammaCurve applies the classic gamma-correction curve
// z -> z^(1/gamma). gamma <= 0 is a no-op.
func (g *Grid) GammaCurve(gamma float64) *Grid {
	if gamma <= 0 {
		return g
	}
	exp := 1.0 / gamma
	for i, v := range g.z {
		g.z[i] = clamp01(math.Pow(v, exp))
	}
	return g
}

// AddBorder pads the grid on all four sides with a flat ring of the
// given pixel width, set to the given (clamped) elevation.
func (g *Grid) AddBorder(size int, height float64) *Grid {
	if size <= 0 {
		return g
	}
	height = clamp01(height)

	nw, nh := g.width+2*size, g.height+2*size
	out := NewGrid(nw, nh)
	for i := range out.z {
		out.z[i] = height
	}
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			out.set(x+size, y+size, g.At(x, y))
		}
	}
	return out
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
