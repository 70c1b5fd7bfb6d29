package render

import (
	"image"

	"golang.org/x/image/vector"
)

// Rasterize fills the path's closed subpaths into a width x height alpha
// mask using non-zero winding. Open subpaths (underline and strikeout
// strokes) enclose no area and contribute nothing; stroke them with the
// caller's own line width instead.
func Rasterize(p *Path, width, height int) *image.Alpha {
	r := vector.NewRasterizer(width, height)
	for _, el := range p.Elements() {
		switch e := el.(type) {
		case MoveTo:
			r.MoveTo(float32(e.X), float32(e.Y))
		case LineTo:
			r.LineTo(float32(e.X), float32(e.Y))
		case Close:
			r.ClosePath()
		}
	}

	dst := image.NewAlpha(image.Rect(0, 0, width, height))
	r.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})
	return dst
}
