// Package outliner provides a fluent API for computing selection outlines
// and underline strips from text-selection rectangles.
//
// Basic usage:
//
//	result, err := outliner.FromBoxes(boxes...).Outlines()
//	if err != nil {
//	    // handle error
//	}
//	for _, poly := range result.Polygons {
//	    // draw the highlight shape
//	}
//
// With options:
//
//	result, err := outliner.FromBoxes(boxes...).
//	    BorderWidth(0.5).
//	    InnerMargin(2).
//	    ForText(selectedText).
//	    Outlines()
//
// For advanced use cases, the lower-level outline package is also available.
package outliner

import (
	"github.com/tsawler/outliner/model"
	"github.com/tsawler/outliner/outline"
	"github.com/tsawler/outliner/text"
)

// Selection provides a fluent interface for configuring and running the
// outline engine over one set of selection rectangles. Each configuration
// method returns a new Selection instance, making it safe to fork a chain
// and allowing method chaining.
type Selection struct {
	boxes   []model.BBox
	options outlineOptions
}

// FromBoxes starts a selection from rectangle bounding boxes, as produced
// by a text-selection API. The boxes may overlap arbitrarily.
//
// Example:
//
//	result, err := outliner.FromBoxes(boxes...).Outlines()
func FromBoxes(boxes ...model.BBox) *Selection {
	return &Selection{
		boxes:   boxes,
		options: defaultOptions(),
	}
}

// clone creates a copy of the Selection with a deep copy of options.
// This ensures immutability - each chain method returns a new instance.
func (s *Selection) clone() *Selection {
	return &Selection{
		boxes:   s.boxes,
		options: s.options.clone(),
	}
}

// BorderWidth inflates every rectangle outward by w before the outline is
// computed, so a border stroked along the outline clears the glyphs.
func (s *Selection) BorderWidth(w float64) *Selection {
	newSel := s.clone()
	newSel.options.borderWidth = w
	return newSel
}

// InnerMargin expands the resulting bounding box by m on all sides.
func (s *Selection) InnerMargin(m float64) *Selection {
	newSel := s.clone()
	newSel.options.innerMargin = m
	return newSel
}

// RightToLeft marks the selection as right-to-left text, which moves the
// anchor point off the trailing caret edge.
func (s *Selection) RightToLeft() *Selection {
	newSel := s.clone()
	newSel.options.rtl = true
	return newSel
}

// ForText derives the selection's direction from the selected string using
// Unicode bidirectional classes, instead of setting it explicitly.
func (s *Selection) ForText(selected string) *Selection {
	newSel := s.clone()
	newSel.options.rtl = text.DetectDirection(selected).IsRTL()
	return newSel
}

// WithoutLineStrips disables underline-strip computation for callers that
// only draw the highlight shape.
func (s *Selection) WithoutLineStrips() *Selection {
	newSel := s.clone()
	newSel.options.skipLineStrips = true
	return newSel
}

// Outlines runs the full boundary extraction: union polygons, bounding box,
// and (unless disabled) underline strips.
func (s *Selection) Outlines() (*outline.Result, error) {
	o, err := s.engine()
	if err != nil {
		return nil, err
	}
	return o.Outlines(), nil
}

// LineStrips computes only the bounding box and merged underline strips,
// skipping the boundary extraction.
func (s *Selection) LineStrips() (*outline.StripResult, error) {
	o, err := s.engine()
	if err != nil {
		return nil, err
	}
	return o.LineStrips(), nil
}

// engine constructs the outline engine from the accumulated options.
func (s *Selection) engine() (*outline.Outliner, error) {
	return outline.NewWithConfig(s.boxes, outline.Config{
		BorderWidth:    s.options.borderWidth,
		InnerMargin:    s.options.innerMargin,
		RTL:            s.options.rtl,
		SkipLineStrips: s.options.skipLineStrips,
	})
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	result := outliner.Must(outliner.FromBoxes(boxes...).Outlines())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
