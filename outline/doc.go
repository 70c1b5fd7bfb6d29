// Package outline computes the union boundary of a set of axis-aligned
// rectangles, typically the glyph or line bounding boxes of a text selection.
//
// Given the rectangles, an [Outliner] produces:
//
//   - the minimal-edge rectilinear polygon(s) tracing the boundary of the
//     union, so a selection renders as one coherent shape instead of a pile
//     of overlapping boxes,
//   - a reduced set of horizontal line strips, one per visual text line,
//     suitable for placing underline or strikeout strokes, and
//   - the enclosing bounding box together with an anchor point for UI
//     placement.
//
// Polygon and strip coordinates are box-relative fractions in [0,1] of the
// bounding box, so callers can rescale results onto any target rectangle
// (see model.FitUnitSquare). The bounding box itself is reported in the
// input's page coordinates.
//
// The boundary extraction is a left-to-right sweep over the rectangles'
// vertical edges. Edge coordinates are snapped outward to a fixed 1e-4 grid
// first, which collapses the near-duplicate edges that text-extraction
// jitter produces; a sorted set of active y-intervals then cancels every
// edge fragment that lies inside the union, and the surviving fragments are
// stitched into closed loops through their horizontal connectors.
//
// An Outliner recomputes from scratch on every call and holds no state that
// outlives it. Instances are cheap; concurrent callers should construct one
// per rectangle batch rather than share instances across goroutines.
package outline
