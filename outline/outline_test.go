package outline

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/tsawler/outliner/model"
)

// coordTol absorbs the outward snap to the quantization grid when comparing
// page-coordinate results against unquantized inputs.
const coordTol = 3 * epsilon

// signedArea computes the shoelace area of a polygon in its own coordinates.
func signedArea(p Polygon) float64 {
	sum := 0.0
	for i, pt := range p {
		next := p[(i+1)%len(p)]
		sum += pt.X*next.Y - next.X*pt.Y
	}
	return sum / 2
}

// pageArea converts a box-relative polygon area to page units.
func pageArea(p Polygon, box model.BBox) float64 {
	return math.Abs(signedArea(p)) * box.Width * box.Height
}

func TestNewValidation(t *testing.T) {
	valid := model.BBox{X: 0, Y: 0, Width: 10, Height: 10}

	tests := []struct {
		name    string
		boxes   []model.BBox
		wantErr error
	}{
		{"empty input", nil, ErrNoBoxes},
		{"NaN coordinate", []model.BBox{{X: math.NaN(), Y: 0, Width: 10, Height: 10}}, ErrInvalidBox},
		{"infinite width", []model.BBox{{X: 0, Y: 0, Width: math.Inf(1), Height: 10}}, ErrInvalidBox},
		{"zero width", []model.BBox{{X: 0, Y: 0, Width: 0, Height: 10}}, ErrInvalidBox},
		{"negative height", []model.BBox{{X: 0, Y: 0, Width: 10, Height: -1}}, ErrInvalidBox},
		{"second box invalid", []model.BBox{valid, {X: 0, Y: 0, Width: 10, Height: math.NaN()}}, ErrInvalidBox},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.boxes)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("New() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewTooManyBoxes(t *testing.T) {
	boxes := make([]model.BBox, MaxBoxes+1)
	for i := range boxes {
		boxes[i] = model.BBox{X: float64(i), Y: 0, Width: 1, Height: 1}
	}
	_, err := New(boxes)
	if !errors.Is(err, ErrTooManyBoxes) {
		t.Errorf("New() error = %v, want %v", err, ErrTooManyBoxes)
	}
}

func TestSingleBox(t *testing.T) {
	box := model.BBox{X: 10, Y: 20, Width: 100, Height: 50}
	o, err := New([]model.BBox{box})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	res := o.Outlines()

	if len(res.Polygons) != 1 {
		t.Fatalf("got %d polygons, want 1", len(res.Polygons))
	}

	want := Polygon{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 0}}
	if diff := cmp.Diff(want, res.Polygons[0], cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("polygon mismatch (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff(box, res.Box.BBox, cmpopts.EquateApprox(0, coordTol)); diff != "" {
		t.Errorf("bounding box mismatch (-want +got):\n%s", diff)
	}

	// Anchor is the bottom of the rightmost edge.
	wantAnchor := model.Point{X: 1, Y: 1}
	if diff := cmp.Diff(wantAnchor, res.Box.LastPoint, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("anchor mismatch (-want +got):\n%s", diff)
	}

	if len(res.Strips) != 1 {
		t.Fatalf("got %d strips, want 1", len(res.Strips))
	}
	wantStrip := LineStrip{X1: 0, Y1: 0, X2: 1, Y2: 1}
	if diff := cmp.Diff(wantStrip, res.Strips[0], cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("strip mismatch (-want +got):\n%s", diff)
	}
}

func TestSingleBoxBorderAndMargin(t *testing.T) {
	box := model.BBox{X: 10, Y: 20, Width: 100, Height: 50}
	o, err := NewWithConfig([]model.BBox{box}, Config{BorderWidth: 2, InnerMargin: 3})
	if err != nil {
		t.Fatalf("NewWithConfig() failed: %v", err)
	}

	got := o.Box().BBox
	want := box.Expand(2).Expand(3)
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, coordTol)); diff != "" {
		t.Errorf("bounding box mismatch (-want +got):\n%s", diff)
	}
}

func TestDisjointBoxes(t *testing.T) {
	boxes := []model.BBox{
		{X: 0, Y: 0, Width: 10, Height: 10},
		{X: 0, Y: 20, Width: 10, Height: 10},
		{X: 40, Y: 0, Width: 10, Height: 10},
	}
	o, err := New(boxes)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	res := o.Outlines()
	if len(res.Polygons) != 3 {
		t.Fatalf("got %d polygons, want 3", len(res.Polygons))
	}
	for i, poly := range res.Polygons {
		if len(poly) != 4 {
			t.Errorf("polygon %d has %d vertices, want 4", i, len(poly))
		}
	}
}

func TestOverlappingBoxes(t *testing.T) {
	a := model.BBox{X: 0, Y: 0, Width: 10, Height: 10}
	b := model.BBox{X: 5, Y: 5, Width: 10, Height: 10}
	o, err := New([]model.BBox{a, b})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	res := o.Outlines()
	if len(res.Polygons) != 1 {
		t.Fatalf("got %d polygons, want 1", len(res.Polygons))
	}
	if len(res.Polygons[0]) <= 4 {
		t.Errorf("polygon has %d vertices, want more than 4", len(res.Polygons[0]))
	}

	wantArea := a.Area() + b.Area() - a.Intersection(b).Area()
	gotArea := pageArea(res.Polygons[0], res.Box.BBox)
	if math.Abs(gotArea-wantArea) > 0.05 {
		t.Errorf("union area = %g, want %g", gotArea, wantArea)
	}
}

func TestContainedBox(t *testing.T) {
	outer := model.BBox{X: 0, Y: 0, Width: 20, Height: 20}
	inner := model.BBox{X: 5, Y: 5, Width: 5, Height: 5}
	o, err := New([]model.BBox{outer, inner})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	res := o.Outlines()
	if len(res.Polygons) != 1 {
		t.Fatalf("got %d polygons, want 1", len(res.Polygons))
	}
	if len(res.Polygons[0]) != 4 {
		t.Errorf("polygon has %d vertices, want 4; contained box must contribute no edges", len(res.Polygons[0]))
	}
	if got := pageArea(res.Polygons[0], res.Box.BBox); math.Abs(got-outer.Area()) > 0.05 {
		t.Errorf("area = %g, want %g", got, outer.Area())
	}
}

func TestAnnularUnion(t *testing.T) {
	// Four boxes forming a square ring around a 10x10 hole.
	boxes := []model.BBox{
		{X: 0, Y: 0, Width: 30, Height: 10},  // top
		{X: 0, Y: 20, Width: 30, Height: 10}, // bottom
		{X: 0, Y: 0, Width: 10, Height: 30},  // left
		{X: 20, Y: 0, Width: 10, Height: 30}, // right
	}
	o, err := New(boxes)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	res := o.Outlines()
	if len(res.Polygons) != 2 {
		t.Fatalf("got %d polygons, want 2 (outer boundary and hole)", len(res.Polygons))
	}

	areas := []float64{
		pageArea(res.Polygons[0], res.Box.BBox),
		pageArea(res.Polygons[1], res.Box.BBox),
	}
	if areas[0] < areas[1] {
		areas[0], areas[1] = areas[1], areas[0]
	}
	if math.Abs(areas[0]-900) > 0.5 {
		t.Errorf("outer area = %g, want 900", areas[0])
	}
	if math.Abs(areas[1]-100) > 0.5 {
		t.Errorf("hole area = %g, want 100", areas[1])
	}
}

func TestAnnularHoleWinding(t *testing.T) {
	// Same ring as above. A non-zero winding fill leaves the hole empty
	// only if the hole loop winds against its enclosing outer loop.
	boxes := []model.BBox{
		{X: 0, Y: 0, Width: 30, Height: 10},
		{X: 0, Y: 20, Width: 30, Height: 10},
		{X: 0, Y: 0, Width: 10, Height: 30},
		{X: 20, Y: 0, Width: 10, Height: 30},
	}
	o, err := New(boxes)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	res := o.Outlines()
	if len(res.Polygons) != 2 {
		t.Fatalf("got %d polygons, want 2", len(res.Polygons))
	}

	outer, hole := signedArea(res.Polygons[0]), signedArea(res.Polygons[1])
	if math.Abs(outer) < math.Abs(hole) {
		outer, hole = hole, outer
	}
	if outer*hole >= 0 {
		t.Errorf("outer and hole loops wind the same way: signed areas %g and %g", outer, hole)
	}
}

func TestConfigValidation(t *testing.T) {
	boxes := []model.BBox{{X: 10, Y: 20, Width: 100, Height: 50}}

	tests := []struct {
		name    string
		cfg     Config
		wantErr error
	}{
		{"NaN border width", Config{BorderWidth: math.NaN()}, ErrInvalidConfig},
		{"infinite border width", Config{BorderWidth: math.Inf(1)}, ErrInvalidConfig},
		{"NaN inner margin", Config{InnerMargin: math.NaN()}, ErrInvalidConfig},
		{"infinite inner margin", Config{InnerMargin: math.Inf(-1)}, ErrInvalidConfig},
		{"border width collapses a box", Config{BorderWidth: -30}, ErrInvalidConfig},
		{"inner margin collapses the bounding box", Config{InnerMargin: -60}, ErrInvalidConfig},
		{"small negative border width", Config{BorderWidth: -1}, nil},
		{"small negative inner margin", Config{InnerMargin: -2}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o, err := NewWithConfig(boxes, tt.cfg)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("NewWithConfig() error = %v, want %v", err, tt.wantErr)
			}
			if err == nil {
				// A config that passes validation must never panic the sweep.
				if res := o.Outlines(); len(res.Polygons) != 1 {
					t.Errorf("got %d polygons, want 1", len(res.Polygons))
				}
			}
		})
	}
}

func TestIdempotence(t *testing.T) {
	boxes := []model.BBox{
		{X: 0, Y: 0, Width: 10, Height: 10},
		{X: 5, Y: 5, Width: 10, Height: 10},
		{X: 30, Y: 0, Width: 10, Height: 10},
		{X: 0, Y: 0, Width: 10, Height: 10}, // duplicate of the first
	}

	run := func() *Result {
		o, err := New(boxes)
		if err != nil {
			t.Fatalf("New() failed: %v", err)
		}
		return o.Outlines()
	}

	first := run()
	second := run()
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("results differ across fresh instances (-first +second):\n%s", diff)
	}
}

func TestRepeatedQueriesSameInstance(t *testing.T) {
	o, err := New([]model.BBox{
		{X: 0, Y: 0, Width: 10, Height: 10},
		{X: 5, Y: 5, Width: 10, Height: 10},
	})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	first := o.Outlines()
	second := o.Outlines()
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("results differ across calls (-first +second):\n%s", diff)
	}
}

func TestLastPointDirection(t *testing.T) {
	boxes := []model.BBox{
		{X: 0, Y: 0, Width: 10, Height: 10},
		{X: 20, Y: 0, Width: 10, Height: 10},
	}

	ltr, err := New(boxes)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	rtl, err := NewWithConfig(boxes, Config{RTL: true})
	if err != nil {
		t.Fatalf("NewWithConfig() failed: %v", err)
	}

	// LTR anchors on the rightmost edge (x=30, relative 1); RTL skips the
	// trailing caret edge and anchors on the one before it (x=20, relative 2/3).
	if got := ltr.Box().LastPoint.X; math.Abs(got-1) > 1e-9 {
		t.Errorf("LTR anchor x = %g, want 1", got)
	}
	if got := rtl.Box().LastPoint.X; math.Abs(got-2.0/3) > 1e-3 {
		t.Errorf("RTL anchor x = %g, want 2/3", got)
	}
	if ltr.Box().LastPoint == rtl.Box().LastPoint {
		t.Error("LTR and RTL anchors should differ")
	}
}

func TestSkipLineStrips(t *testing.T) {
	o, err := NewWithConfig([]model.BBox{
		{X: 0, Y: 0, Width: 10, Height: 10},
	}, Config{SkipLineStrips: true})
	if err != nil {
		t.Fatalf("NewWithConfig() failed: %v", err)
	}

	if res := o.Outlines(); len(res.Strips) != 0 {
		t.Errorf("got %d strips with SkipLineStrips set, want 0", len(res.Strips))
	}
}
