// Package annot bridges selection rectangles to PDF text-markup
// annotations, the natural consumer of the outline engine's output.
//
// A text-markup annotation (Highlight, Underline, StrikeOut) carries a
// QuadPoints array: 8 numbers per selected rectangle, one quadrilateral
// per glyph run. This package converts between rectangle sets and that
// encoding and assembles a [Markup] whose Rect is the outline engine's
// bounding box for the same selection.
//
// Coordinates stay in this module's y-down page convention; embedding into
// an actual PDF (a y-up coordinate system) is the writer's concern, not
// this package's.
package annot

import (
	"errors"
	"fmt"
	"math"

	"github.com/tsawler/outliner/model"
	"github.com/tsawler/outliner/outline"
)

var (
	// ErrBadQuadPoints is returned when a QuadPoints array's length is
	// not a multiple of 8 or contains non-finite values.
	ErrBadQuadPoints = errors.New("annot: malformed quad points")
)

// Kind identifies a text-markup annotation subtype.
type Kind int

const (
	Highlight Kind = iota
	Underline
	StrikeOut
)

// String returns the PDF subtype name for the kind.
func (k Kind) String() string {
	switch k {
	case Highlight:
		return "Highlight"
	case Underline:
		return "Underline"
	case StrikeOut:
		return "StrikeOut"
	default:
		return "Unknown"
	}
}

// Markup is a text-markup annotation assembled from a selection.
type Markup struct {
	// Kind is the annotation subtype.
	Kind Kind

	// Rect is the annotation rectangle: the outline engine's bounding
	// box for the selection, border inflation and margin included.
	Rect model.BBox

	// QuadPoints holds 8 numbers per selected rectangle, corner order
	// upper-left, upper-right, lower-left, lower-right.
	QuadPoints []float64
}

// NewMarkup builds a Markup for a selection. The boxes are validated and
// measured by the outline engine with the given configuration, so Rect
// reflects the same border inflation and inner margin a rendered outline
// would have.
func NewMarkup(kind Kind, boxes []model.BBox, cfg outline.Config) (*Markup, error) {
	o, err := outline.NewWithConfig(boxes, cfg)
	if err != nil {
		return nil, fmt.Errorf("annot: %w", err)
	}

	return &Markup{
		Kind:       kind,
		Rect:       o.Box().BBox,
		QuadPoints: QuadPoints(boxes),
	}, nil
}

// QuadPoints encodes rectangles as a PDF QuadPoints array: for each box the
// four corners in order upper-left, upper-right, lower-left, lower-right.
func QuadPoints(boxes []model.BBox) []float64 {
	qp := make([]float64, 0, 8*len(boxes))
	for _, b := range boxes {
		qp = append(qp,
			b.Left(), b.Top(),
			b.Right(), b.Top(),
			b.Left(), b.Bottom(),
			b.Right(), b.Bottom(),
		)
	}
	return qp
}

// ParseQuadPoints decodes a QuadPoints array back into rectangles. Corner
// order in the wild is inconsistent across producers, so each quad's box is
// taken from the min/max of its four points rather than assumed corner
// positions.
func ParseQuadPoints(nums []float64) ([]model.BBox, error) {
	if len(nums)%8 != 0 {
		return nil, fmt.Errorf("%w: length %d is not a multiple of 8", ErrBadQuadPoints, len(nums))
	}

	boxes := make([]model.BBox, 0, len(nums)/8)
	for i := 0; i < len(nums); i += 8 {
		quad := nums[i : i+8]
		minX, minY := math.Inf(1), math.Inf(1)
		maxX, maxY := math.Inf(-1), math.Inf(-1)
		for j := 0; j < 8; j += 2 {
			x, y := quad[j], quad[j+1]
			if math.IsNaN(x) || math.IsInf(x, 0) || math.IsNaN(y) || math.IsInf(y, 0) {
				return nil, fmt.Errorf("%w: non-finite coordinate in quad %d", ErrBadQuadPoints, i/8)
			}
			minX = math.Min(minX, x)
			minY = math.Min(minY, y)
			maxX = math.Max(maxX, x)
			maxY = math.Max(maxY, y)
		}
		boxes = append(boxes, model.BBox{
			X:      minX,
			Y:      minY,
			Width:  maxX - minX,
			Height: maxY - minY,
		})
	}
	return boxes, nil
}
