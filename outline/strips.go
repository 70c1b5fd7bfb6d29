package outline

import (
	"math"
	"sort"
)

// lineGroup collects the boxes sharing one quantized baseline. minY1 is the
// topmost y1 among its members and stands in for the group's line height.
type lineGroup struct {
	y2    float64
	minY1 float64
	boxes []quantBox
}

// lineStrips merges the input boxes into one horizontal strip per visual
// text line, in box-relative coordinates. Returns nil when strip
// computation was disabled at construction.
//
// The steps are:
//
//  1. Group boxes by quantized baseline (y2), tracking each group's minimum
//     y1.
//  2. Fold a baseline into the previous kept one when the previous group's
//     minY1 is >= the current group's, i.e. the later line's content is at
//     least as tall and the two groups are one visual line fragmented by
//     extraction noise. The merged group keeps the later baseline and the
//     smaller minY1.
//  3. Within each group, sorted by left edge, break runs where the
//     horizontal gap exceeds twice the line height, so strokes stop across
//     column or paragraph gaps.
func (o *Outliner) lineStrips() []LineStrip {
	if o.boxes == nil {
		return nil
	}

	byBaseline := make(map[float64]*lineGroup)
	for _, b := range o.boxes {
		g := byBaseline[b.y2]
		if g == nil {
			g = &lineGroup{y2: b.y2, minY1: b.y1}
			byBaseline[b.y2] = g
		} else if b.y1 < g.minY1 {
			g.minY1 = b.y1
		}
		g.boxes = append(g.boxes, b)
	}

	groups := make([]*lineGroup, 0, len(byBaseline))
	for _, g := range byBaseline {
		groups = append(groups, g)
	}
	sort.Slice(groups, func(i, j int) bool {
		return groups[i].y2 < groups[j].y2
	})

	kept := groups[:0]
	for _, g := range groups {
		if len(kept) > 0 {
			prev := kept[len(kept)-1]
			if prev.minY1 >= g.minY1 {
				prev.y2 = g.y2
				prev.minY1 = g.minY1
				prev.boxes = append(prev.boxes, g.boxes...)
				continue
			}
		}
		kept = append(kept, g)
	}

	var strips []LineStrip
	for _, g := range kept {
		sort.SliceStable(g.boxes, func(i, j int) bool {
			return g.boxes[i].x1 < g.boxes[j].x1
		})

		maxGap := 2 * (g.y2 - g.minY1)
		run := quantBox{x1: g.boxes[0].x1, y1: g.boxes[0].y1, x2: g.boxes[0].x2, y2: g.y2}
		for _, b := range g.boxes[1:] {
			if b.x1-run.x2 > maxGap {
				strips = append(strips, o.relativeStrip(run))
				run = quantBox{x1: b.x1, y1: b.y1, x2: b.x2, y2: g.y2}
				continue
			}
			run.x2 = math.Max(run.x2, b.x2)
			run.y1 = math.Min(run.y1, b.y1)
		}
		strips = append(strips, o.relativeStrip(run))
	}

	return strips
}

// relativeStrip converts a page-coordinate run into a box-relative strip
// using the same bounding-box normalization as the outline edges.
func (o *Outliner) relativeStrip(run quantBox) LineStrip {
	return LineStrip{
		X1: (run.x1 - o.box.X) / o.box.Width,
		Y1: (run.y1 - o.box.Y) / o.box.Height,
		X2: (run.x2 - o.box.X) / o.box.Width,
		Y2: (run.y2 - o.box.Y) / o.box.Height,
	}
}
