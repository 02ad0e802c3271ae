package hmm

// Filter is one heightmap preprocessing step. Filters may change the
// grid's dimensions (AddBorder grows it), so Apply returns the grid
// to use from then on. AddBorder and GaussianBlur return a new grid;
// the other steps modify the given grid in place and return it.
type Filter interface {
	Apply(g *Grid) *Grid
}

// Pipeline chains filters and applies them in order: level -> invert
// -> blur -> gamma -> border, per the CLI's flag order in cmd/hmm.
type Pipeline struct {
	Filters []Filter
}

// NewPipeline builds a pipeline from the given filters, applied in
// the order given.
func NewPipeline(filters ...Filter) *Pipeline {
	return &Pipeline{Filters: filters}
}

// Apply runs every filter in order, threading the (possibly resized)
// grid from one stage to the next.
func (p *Pipeline) Apply(g *Grid) *Grid {
	for _, f := range p.Filters {
		g = f.Apply(g)
	}
	return g
}

// LevelFilter stretches the grid's elevation range to fill [0,1].
type LevelFilter struct{}

func (LevelFilter) Apply(g *Grid) *Grid { return g.AutoLevel() }

// InvertFilter maps elevation z to 1-z.
type InvertFilter struct{}

func (InvertFilter) Apply(g *Grid) *Grid { return g.Invert() }

// BlurFilter applies a Gaussian-like box blur of the given integer
// sigma (radius) to the grid before triangulation.
type BlurFilter struct {
	Sigma int
}

func (f BlurFilter) Apply(g *Grid) *Grid { return g.GaussianBlur(f.Sigma) }

// GammaFilter applies z -> z^(1/gamma).
type GammaFilter struct {
	Gamma float64
}

func (f GammaFilter) Apply(g *Grid) *Grid { return g.GammaCurve(f.Gamma) }

// BorderFilter pads the grid with a flat border ring of the given
// pixel width and height.
type BorderFilter struct {
	Size   int
	Height float64
}

func (f BorderFilter) Apply(g *Grid) *Grid { return g.AddBorder(f.Size, f.Height) }
