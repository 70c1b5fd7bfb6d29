// Package render turns outline-engine output into drawable geometry.
//
// The engine reports polygons and line strips in box-relative [0,1]
// coordinates; this package rescales them onto a target rectangle as a
// [Path] of straight-line elements and can rasterize filled paths to an
// alpha mask. It performs no geometric computation of its own beyond the
// affine rescale.
package render

import (
	"github.com/tsawler/outliner/model"
	"github.com/tsawler/outliner/outline"
)

// PathElement is one drawing command in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo starts a new subpath at the given point.
type MoveTo struct {
	X, Y float64
}

func (MoveTo) isPathElement() {}

// LineTo adds a straight line to the given point.
type LineTo struct {
	X, Y float64
}

func (LineTo) isPathElement() {}

// Close closes the current subpath back to its starting point.
type Close struct{}

func (Close) isPathElement() {}

// Path is an ordered sequence of drawing commands.
type Path struct {
	elements []PathElement
}

// NewPath creates an empty path.
func NewPath() *Path {
	return &Path{}
}

// MoveTo starts a new subpath at (x, y).
func (p *Path) MoveTo(x, y float64) {
	p.elements = append(p.elements, MoveTo{X: x, Y: y})
}

// LineTo adds a straight line to (x, y).
func (p *Path) LineTo(x, y float64) {
	p.elements = append(p.elements, LineTo{X: x, Y: y})
}

// Close closes the current subpath.
func (p *Path) Close() {
	p.elements = append(p.elements, Close{})
}

// Elements returns the path's drawing commands.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// OutlinePath converts box-relative polygons into a single path in target
// coordinates, one closed subpath per polygon.
func OutlinePath(polygons []outline.Polygon, target model.BBox) *Path {
	m := model.FitUnitSquare(target)
	p := NewPath()
	for _, poly := range polygons {
		for i, pt := range poly {
			q := m.Transform(pt)
			if i == 0 {
				p.MoveTo(q.X, q.Y)
			} else {
				p.LineTo(q.X, q.Y)
			}
		}
		p.Close()
	}
	return p
}

// UnderlinePath converts line strips into underline strokes in target
// coordinates: one open subpath along each strip's baseline edge.
func UnderlinePath(strips []outline.LineStrip, target model.BBox) *Path {
	m := model.FitUnitSquare(target)
	p := NewPath()
	for _, s := range strips {
		a := m.Transform(model.Point{X: s.X1, Y: s.Y2})
		b := m.Transform(model.Point{X: s.X2, Y: s.Y2})
		p.MoveTo(a.X, a.Y)
		p.LineTo(b.X, b.Y)
	}
	return p
}

// StrikeoutPath converts line strips into strikeout strokes in target
// coordinates: one open subpath through each strip's vertical midpoint.
func StrikeoutPath(strips []outline.LineStrip, target model.BBox) *Path {
	m := model.FitUnitSquare(target)
	p := NewPath()
	for _, s := range strips {
		mid := (s.Y1 + s.Y2) / 2
		a := m.Transform(model.Point{X: s.X1, Y: mid})
		b := m.Transform(model.Point{X: s.X2, Y: mid})
		p.MoveTo(a.X, a.Y)
		p.LineTo(b.X, b.Y)
	}
	return p
}
