// Package model provides the geometric primitives shared by the outline
// engine and its consumers.
//
// All coordinates use a y-down convention: X increases to the right and Y
// increases down the page, matching what viewport and text-selection APIs
// produce. A text box's Bottom edge (Y + Height) is therefore its baseline.
//
// # Geometry
//
//   - [BBox] - bounding box with intersection, union, and expansion calculations
//   - [Point] - 2D point with distance calculation
//   - [Matrix] - 2D affine transformation matrix
//
// [Matrix] composes right to left in row-vector convention: m.Multiply(n)
// applies m first, then n. [FitUnitSquare] builds the matrix that maps the
// box-relative [0,1] coordinates reported by the outline engine onto an
// arbitrary target rectangle.
package model
