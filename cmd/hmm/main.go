// Command hmm converts a grayscale heightmap image into a triangulated
// 3D mesh, written out as binary STL or Wavefront OBJ.
package main

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/natanalt/hmm"
	"github.com/natanalt/hmm/internal/progress"
)

var (
	app = kingpin.New("hmm", "Convert a heightmap image into a triangulated 3D mesh.")

	xSize   = app.Flag("xsize", "requested size of the mesh in the X axis").Short('x').Required().Float64()
	ySize   = app.Flag("ysize", "requested size of the mesh in the Y axis").Short('y').Required().Float64()
	zScale  = app.Flag("zscale", "z scale relative to x & y").Short('z').Required().Float64()
	maxErr  = app.Flag("error", "maximum triangulation error").Short('e').Default("0.001").Float64()
	maxTris = app.Flag("triangles", "maximum number of triangles").Short('t').Default("0").Int()
	maxPts  = app.Flag("points", "maximum number of vertices").Short('p').Default("0").Int()
	base    = app.Flag("base", "solid base height").Short('b').Default("0").Float64()

	level  = app.Flag("level", "auto level input to full grayscale range").Bool()
	invert = app.Flag("invert", "invert heightmap").Bool()
	blur   = app.Flag("blur", "gaussian blur sigma").Default("0").Int()
	gamma  = app.Flag("gamma", "gamma curve exponent").Default("0").Float64()

	borderSize   = app.Flag("border-size", "border size in pixels").Default("0").Int()
	borderHeight = app.Flag("border-height", "border z height").Default("1").Float64()

	normalmapPath = app.Flag("normal-map", "path to write normal map png").Default("").String()
	shadePath     = app.Flag("shade-path", "path to write hillshade png").Default("").String()
	shadeAlt      = app.Flag("shade-alt", "hillshade light altitude").Default("45").Float64()
	shadeAz       = app.Flag("shade-az", "hillshade light azimuth").Default("0").Float64()

	previewPath = app.Flag("preview", "path to write a wireframe preview png").Default("").String()

	quiet = app.Flag("quiet", "suppress console output").Short('q').Bool()

	inFile  = app.Arg("infile", "input heightmap image").Required().String()
	outFile = app.Arg("outfile", "output mesh file (.stl or .obj)").String()
)

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))

	if *outFile == "" && *normalmapPath == "" && *shadePath == "" && *previewPath == "" {
		app.FatalUsage("outfile required")
	}

	r := progress.New(*quiet)

	done := r.Stage("loading heightmap")
	hm, err := hmm.LoadHeightmap(*inFile)
	done()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	r.Printf("  %d x %d = %d pixels\n", hm.Width(), hm.Height(), hm.Width()*hm.Height())

	pipeline := buildPipeline()
	grid := pipeline.Apply(hm)

	w, h := grid.Width(), grid.Height()

	if *outFile != "" || *previewPath != "" {
		if err := writeMesh(r, grid, w, h); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	if *normalmapPath != "" {
		done = r.Stage("computing normal map")
		err := hmm.SaveNormalmap(grid, *normalmapPath, *zScale)
		done()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	if *shadePath != "" {
		done = r.Stage("computing hillshade image")
		err := hmm.SaveHillshade(grid, *shadePath, *zScale, *shadeAz, *shadeAlt)
		done()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
}

func buildPipeline() *hmm.Pipeline {
	var filters []hmm.Filter
	if *level {
		filters = append(filters, hmm.LevelFilter{})
	}
	if *invert {
		filters = append(filters, hmm.InvertFilter{})
	}
	if *blur > 0 {
		filters = append(filters, hmm.BlurFilter{Sigma: *blur})
	}
	if *gamma > 0 {
		filters = append(filters, hmm.GammaFilter{Gamma: *gamma})
	}
	if *borderSize > 0 {
		filters = append(filters, hmm.BorderFilter{Size: *borderSize, Height: *borderHeight})
	}
	return hmm.NewPipeline(filters...)
}

func writeMesh(r *progress.Reporter, grid *hmm.Grid, w, h int) error {
	done := r.Spin("triangulating")
	t, err := hmm.NewTriangulator(grid)
	if err != nil {
		done()
		return err
	}
	if err := t.Run(*maxErr, *maxTris, *maxPts); err != nil {
		done()
		return err
	}
	points := t.Points()
	triangles := t.Triangles()
	done()

	if *previewPath != "" {
		done = r.Stage("writing preview png")
		err := hmm.SavePreview(grid, points, triangles, *previewPath)
		done()
		if err != nil {
			return err
		}
	}

	points = hmm.ScaleZ(points, *zScale)

	if *base > 0 {
		done = r.Stage("adding solid base")
		points, triangles = hmm.AddBase(points, triangles, w, h, -*base**zScale)
		done()
	}

	naive := float64((w-1)*(h-1)*2)
	r.Printf("  error = %g\n", t.Error())
	r.Printf("  points = %d\n", len(points))
	r.Printf("  triangles = %d\n", len(triangles))
	if naive > 0 {
		r.Printf("  vs. naive = %g%%\n", 100*float64(len(triangles))/naive)
	}

	if *outFile == "" {
		return nil
	}

	done = r.Stage("postprocess rescaling pass")
	points = hmm.Rescale(points, w, h, *xSize, *ySize)
	done()

	done = r.Stage("generating UVs")
	uvs := hmm.UVsFromXY(points, *xSize, *ySize)
	done()

	switch {
	case strings.HasSuffix(strings.ToLower(*outFile), ".stl"):
		done = r.Stage("writing .stl output")
		err := hmm.WriteSTL(*outFile, points, triangles)
		done()
		return err
	case strings.HasSuffix(strings.ToLower(*outFile), ".obj"):
		done = r.Stage("writing .obj output")
		err := hmm.WriteOBJ(*outFile, points, triangles, uvs)
		done()
		return err
	default:
		return fmt.Errorf("could not deduce target file format from %q: use a .stl or .obj extension", *outFile)
	}
}
