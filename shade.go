package hmm

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
)

// sobelX and sobelY are the classic edge-detection kernels,
// repurposed here as elevation-gradient estimators: convolved against
// a heightmap they give (dz/dx, dz/dy), scaled by 8, at each interior
// sample instead of an edge magnitude.
var (
	sobelX = [3][3]float64{
		{-1, 0, 1},
		{-2, 0, 2},
		{-1, 0, 1},
	}
	sobelY = [3][3]float64{
		{-1, -2, -1},
		{0, 0, 0},
		{1, 2, 1},
	}
)

// gradient returns the Sobel-estimated (dz/dx, dz/dy) at (x,y),
// clamping the 3x3 window to the grid edges.
func gradient(hm Heightmap, x, y int) (float64, float64) {
	w, h := hm.Width(), hm.Height()
	var gx, gy float64
	for row := -1; row <= 1; row++ {
		sy := y + row
		if sy < 0 {
			sy = 0
		} else if sy >= h {
			sy = h - 1
		}
		for col := -1; col <= 1; col++ {
			sx := x + col
			if sx < 0 {
				sx = 0
			} else if sx >= w {
				sx = w - 1
			}
			z := hm.At(sx, sy)
			gx += z * sobelX[row+1][col+1]
			gy += z * sobelY[row+1][col+1]
		}
	}
	// The raw Sobel response is 8 times the per-pixel slope.
	return gx / 8, gy / 8
}

// unitNormal returns the upward-facing unit surface normal at (x,y),
// estimated from the Sobel gradient. zScale converts elevation units
// to the same scale as one pixel, so the normal reflects the mesh's
// actual aspect ratio rather than treating z as dimensionless.
func unitNormal(hm Heightmap, x, y int, zScale float64) (nx, ny, nz float64) {
	gx, gy := gradient(hm, x, y)
	nx, ny, nz = -gx*zScale, -gy*zScale, 1
	length := math.Sqrt(nx*nx + ny*ny + nz*nz)
	return nx / length, ny / length, nz / length
}

// SaveNormalmap renders a tangent-space normal map of the heightmap to
// a PNG at path: (nx,ny,nz) packed into (r,g,b) as (n+1)/2*255, the
// standard normal-map encoding.
func SaveNormalmap(hm Heightmap, path string, zScale float64) error {
	w, h := hm.Width(), hm.Height()
	img := image.NewRGBA(image.Rect(0, 0, w, h))

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			nx, ny, nz := unitNormal(hm, x, y, zScale)
			img.SetRGBA(x, y, color.RGBA{
				R: encodeNormalComponent(nx),
				G: encodeNormalComponent(ny),
				B: encodeNormalComponent(nz),
				A: 255,
			})
		}
	}

	return writePNG(path, img)
}

func encodeNormalComponent(v float64) uint8 {
	return uint8(clamp01((v + 1) / 2) * 255)
}

// SaveHillshade renders a grayscale Lambertian hillshade of the
// heightmap to a PNG at path. azimuth and altitude are in degrees,
// matching the conventional light-source-direction parameterization.
func SaveHillshade(hm Heightmap, path string, zScale, azimuth, altitude float64) error {
	w, h := hm.Width(), hm.Height()
	img := image.NewGray(image.Rect(0, 0, w, h))

	az := azimuth * math.Pi / 180
	alt := altitude * math.Pi / 180
	lx := math.Cos(alt) * math.Cos(az)
	ly := math.Cos(alt) * math.Sin(az)
	lz := math.Sin(alt)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			nx, ny, nz := unitNormal(hm, x, y, zScale)
			shade := nx*lx + ny*ly + nz*lz
			if shade < 0 {
				shade = 0
			}
			img.SetGray(x, y, color.Gray{Y: uint8(shade * 255)})
		}
	}

	return writePNG(path, img)
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("hmm: creating %s: %w", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("hmm: encoding %s: %w", path, err)
	}
	return nil
}
