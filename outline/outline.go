package outline

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/tsawler/outliner/model"
)

// epsilon is the quantization grid for edge coordinates. Edges are rounded
// outward to this grid before any comparison or sorting; without it,
// floating-point noise in the source rectangles would keep near-identical
// edges from cancelling each other in the sweep.
const epsilon = 1e-4

// MaxBoxes is the input-size ceiling. A single text selection produces at
// most a few hundred rectangles; the ceiling bounds worst-case latency
// against a runaway caller.
const MaxBoxes = 4096

var (
	// ErrNoBoxes is returned when the input rectangle list is empty.
	ErrNoBoxes = errors.New("outline: no input boxes")

	// ErrInvalidBox is returned when an input rectangle has non-finite
	// coordinates or non-positive dimensions.
	ErrInvalidBox = errors.New("outline: invalid input box")

	// ErrTooManyBoxes is returned when the input exceeds MaxBoxes.
	ErrTooManyBoxes = errors.New("outline: too many input boxes")

	// ErrInvalidConfig is returned when a Config carries non-finite values,
	// or when a negative BorderWidth or InnerMargin collapses a box or the
	// bounding box to nothing.
	ErrInvalidConfig = errors.New("outline: invalid configuration")
)

// Config holds construction options for an Outliner. The zero value is a
// valid configuration.
type Config struct {
	// BorderWidth inflates every rectangle outward before quantization,
	// so a stroked border drawn on the outline clears the glyphs.
	BorderWidth float64

	// InnerMargin expands the final bounding box on all sides.
	InnerMargin float64

	// RTL marks the selection as right-to-left text. It only affects the
	// anchor point: the trailing caret edge is skipped when choosing it.
	RTL bool

	// SkipLineStrips disables line-strip computation. Highlight-only
	// callers set it to avoid retaining the per-box data strips need.
	SkipLineStrips bool
}

// DefaultConfig returns the default construction options.
func DefaultConfig() Config {
	return Config{}
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// edge is one quantized vertical side of an input box, in box-relative
// coordinates once construction finishes. y1 < y2 always.
type edge struct {
	x      float64
	y1, y2 float64
	isLeft bool
}

// quantBox is an input box snapped outward to the quantization grid, kept in
// page coordinates for line-strip grouping.
type quantBox struct {
	x1, y1, x2, y2 float64
}

// Outliner computes union outlines and line strips for one batch of
// rectangles. Construct a new instance per batch; an Outliner holds the
// normalized edges of its batch and nothing else, and is not meant to be
// shared across goroutines.
type Outliner struct {
	cfg       Config
	edges     []edge     // box-relative, sorted by (x, y1, y2)
	boxes     []quantBox // page coordinates; nil when SkipLineStrips is set
	box       model.BBox // page coordinates, expanded by InnerMargin
	lastPoint model.Point
}

// Polygon is a closed rectilinear loop in box-relative [0,1] coordinates.
// Consecutive points alternate between horizontal and vertical moves, and
// the last point connects back to the first.
type Polygon []model.Point

// LineStrip is one horizontal run of merged same-baseline boxes in
// box-relative [0,1] coordinates. Y2 is the baseline edge.
type LineStrip struct {
	X1, Y1, X2, Y2 float64
}

// BoundingBox is the page-coordinate box enclosing all quantized edges,
// together with the box-relative anchor point used for UI placement.
type BoundingBox struct {
	model.BBox
	LastPoint model.Point
}

// Result is the output of Outlines.
type Result struct {
	// Polygons holds one closed loop per connected boundary component.
	Polygons []Polygon

	// Box is the enclosing bounding box.
	Box BoundingBox

	// Strips holds the merged underline strips, empty when the Outliner
	// was constructed with SkipLineStrips.
	Strips []LineStrip
}

// StripResult is the output of LineStrips.
type StripResult struct {
	Box    BoundingBox
	Strips []LineStrip
}

// New creates an Outliner with default options.
func New(boxes []model.BBox) (*Outliner, error) {
	return NewWithConfig(boxes, DefaultConfig())
}

// NewWithConfig creates an Outliner for one batch of rectangles. The boxes
// may overlap arbitrarily; their order matters only for baseline grouping.
// Construction performs all normalization: outward quantization of the
// vertical edges, bounding-box tracking, and conversion of every edge to
// box-relative coordinates.
func NewWithConfig(boxes []model.BBox, cfg Config) (*Outliner, error) {
	if len(boxes) == 0 {
		return nil, ErrNoBoxes
	}
	if len(boxes) > MaxBoxes {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyBoxes, len(boxes), MaxBoxes)
	}
	if !isFinite(cfg.BorderWidth) || !isFinite(cfg.InnerMargin) {
		return nil, fmt.Errorf("%w: border width %g, inner margin %g",
			ErrInvalidConfig, cfg.BorderWidth, cfg.InnerMargin)
	}

	o := &Outliner{
		cfg:   cfg,
		edges: make([]edge, 0, 2*len(boxes)),
	}
	if !cfg.SkipLineStrips {
		o.boxes = make([]quantBox, 0, len(boxes))
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)

	bw := cfg.BorderWidth
	for i, b := range boxes {
		if !b.IsFinite() || !b.IsValid() {
			return nil, fmt.Errorf("%w: box %d {%g %g %g %g}", ErrInvalidBox,
				i, b.X, b.Y, b.Width, b.Height)
		}

		// Round outward so that identical edges land on identical grid
		// values no matter which box produced them.
		x1 := math.Floor((b.X-bw)/epsilon) * epsilon
		x2 := math.Ceil((b.X+b.Width+bw)/epsilon) * epsilon
		y1 := math.Floor((b.Y-bw)/epsilon) * epsilon
		y2 := math.Ceil((b.Y+b.Height+bw)/epsilon) * epsilon

		// A negative BorderWidth shrinks boxes; shrinking past a box's
		// half-extent would invert its edges and corrupt the sweep.
		if x2 <= x1 || y2 <= y1 {
			return nil, fmt.Errorf("%w: border width %g collapses box %d",
				ErrInvalidConfig, bw, i)
		}

		o.edges = append(o.edges,
			edge{x: x1, y1: y1, y2: y2, isLeft: true},
			edge{x: x2, y1: y1, y2: y2},
		)
		if o.boxes != nil {
			o.boxes = append(o.boxes, quantBox{x1: x1, y1: y1, x2: x2, y2: y2})
		}

		minX = math.Min(minX, x1)
		maxX = math.Max(maxX, x2)
		minY = math.Min(minY, y1)
		maxY = math.Max(maxY, y2)
	}

	o.box = model.BBox{
		X:      minX,
		Y:      minY,
		Width:  maxX - minX,
		Height: maxY - minY,
	}.Expand(cfg.InnerMargin)
	if o.box.Width <= 0 || o.box.Height <= 0 {
		return nil, fmt.Errorf("%w: inner margin %g collapses the bounding box",
			ErrInvalidConfig, cfg.InnerMargin)
	}

	// Re-express every edge as a fraction of the bounding box, decoupling
	// the outline from the original coordinate scale.
	for i := range o.edges {
		o.edges[i].x = (o.edges[i].x - o.box.X) / o.box.Width
		o.edges[i].y1 = (o.edges[i].y1 - o.box.Y) / o.box.Height
		o.edges[i].y2 = (o.edges[i].y2 - o.box.Y) / o.box.Height
	}

	// Stable so that edges with identical quantized coordinates keep input
	// order; the sweep result is then a deterministic function of the input.
	sort.SliceStable(o.edges, func(i, j int) bool {
		a, b := o.edges[i], o.edges[j]
		if a.x != b.x {
			return a.x < b.x
		}
		if a.y1 != b.y1 {
			return a.y1 < b.y1
		}
		return a.y2 < b.y2
	})

	// The anchor is the bottom of the rightmost edge in sort order. For
	// right-to-left text the rightmost edge is the trailing caret, so the
	// one before it is used instead.
	last := len(o.edges) - 1
	if cfg.RTL {
		last--
	}
	o.lastPoint = model.Point{X: o.edges[last].x, Y: o.edges[last].y2}

	return o, nil
}

// Box returns the enclosing bounding box and anchor point.
func (o *Outliner) Box() BoundingBox {
	return BoundingBox{BBox: o.box, LastPoint: o.lastPoint}
}

// Outlines runs the full boundary extraction: the union boundary polygons,
// the bounding box, and (unless disabled at construction) the line strips.
func (o *Outliner) Outlines() *Result {
	return &Result{
		Polygons: tracePolygons(o.boundaryEdges()),
		Box:      o.Box(),
		Strips:   o.lineStrips(),
	}
}

// LineStrips computes only the bounding box and the merged line strips,
// skipping the more expensive boundary extraction. Callers that draw
// underline or strikeout decorations and no highlight use this.
func (o *Outliner) LineStrips() *StripResult {
	return &StripResult{
		Box:    o.Box(),
		Strips: o.lineStrips(),
	}
}

// boundaryEdges sweeps the sorted vertical edges left to right and returns
// every edge fragment on the outer boundary of the union.
//
// A left edge is broken against the coverage that existed before it arrives,
// then its interval becomes active. A right edge first retires its interval,
// then is broken against the coverage that remains. This ordering is what
// cancels interior-overlap edges: a fragment survives only where no other
// rectangle covers it on the relevant side.
func (o *Outliner) boundaryEdges() []edge {
	var active intervalSet
	var boundary []edge

	for _, e := range o.edges {
		if e.isLeft {
			for _, f := range active.uncovered(e.y1, e.y2) {
				boundary = append(boundary, edge{x: e.x, y1: f.y1, y2: f.y2, isLeft: true})
			}
			active.insert(e.y1, e.y2)
		} else {
			active.remove(e.y1, e.y2)
			for _, f := range active.uncovered(e.y1, e.y2) {
				boundary = append(boundary, edge{x: e.x, y1: f.y1, y2: f.y2})
			}
		}
	}

	return boundary
}
