package outline

import (
	"sort"

	"github.com/tsawler/outliner/model"
)

// The boundary edge set coming out of the sweep is an unordered bag of
// vertical segments. Sorting their endpoints by (y, x) pairs up the
// endpoints joined by horizontal boundary runs: the union boundary is a
// disjoint set of simple rectilinear curves, so along any horizontal level
// the boundary endpoints alternate outside-inside, and consecutive pairs are
// connectors. Linking the paired edges and walking the links yields one
// closed polygon per connected component.

// edgeLink addresses one endpoint of an arena edge: the edge's index and
// which end (0 = y1, 1 = y2) the horizontal connector attaches to.
type edgeLink struct {
	edge int
	end  int
}

// arenaEdge is a boundary edge annotated with its two neighbor links,
// one per endpoint. Index-based links keep the traversal free of pointer
// cycles.
type arenaEdge struct {
	x, y1, y2 float64
	isLeft    bool
	link      [2]edgeLink
	visited   bool
}

func (e *arenaEdge) endY(end int) float64 {
	if end == 0 {
		return e.y1
	}
	return e.y2
}

// endpoint is one end of a boundary edge, tagged for the pairing sort.
type endpoint struct {
	x, y float64
	edge int
	end  int
}

// tracePolygons reconstructs the closed boundary loops from the surviving
// vertical edges. Zero, one, or many polygons may result, one per connected
// boundary component (disjoint selections, or holes in annular unions).
func tracePolygons(edges []edge) []Polygon {
	arena := make([]arenaEdge, len(edges))
	points := make([]endpoint, 0, 2*len(edges))
	for i, e := range edges {
		arena[i] = arenaEdge{x: e.x, y1: e.y1, y2: e.y2, isLeft: e.isLeft}
		points = append(points,
			endpoint{x: e.x, y: e.y1, edge: i, end: 0},
			endpoint{x: e.x, y: e.y2, edge: i, end: 1},
		)
	}

	// Stable: endpoints sharing a corner keep emission order, so the
	// pairing below is deterministic.
	sort.SliceStable(points, func(i, j int) bool {
		if points[i].y != points[j].y {
			return points[i].y < points[j].y
		}
		return points[i].x < points[j].x
	})

	// Consecutive endpoint pairs are joined by a horizontal boundary run;
	// record the connection on both edges. Every edge has two endpoints
	// and every endpoint lands in exactly one pair, so each edge ends up
	// with exactly two links.
	for i := 0; i+1 < len(points); i += 2 {
		a, b := points[i], points[i+1]
		arena[a.edge].link[a.end] = edgeLink{edge: b.edge, end: b.end}
		arena[b.edge].link[b.end] = edgeLink{edge: a.edge, end: a.end}
	}

	var polygons []Polygon
	for start := range arena {
		if arena[start].visited {
			continue
		}

		// Walk the neighbor chain: enter each edge at one endpoint,
		// traverse it vertically, then follow the horizontal connector
		// at the exit endpoint to the next edge.
		//
		// Each walk begins at its component's leftmost edge: a left
		// edge for an outer boundary, a right edge for a hole (the
		// enclosed region sits to its right). Entering a left edge at
		// the top and a right edge at the bottom winds the two loop
		// kinds in opposite directions, which a non-zero winding fill
		// needs to leave holes unpainted.
		startEnd := 0
		if !arena[start].isLeft {
			startEnd = 1
		}
		poly := make(Polygon, 0, 2*len(arena))
		cur, enter := start, startEnd
		for {
			e := &arena[cur]
			e.visited = true
			exit := 1 - enter
			poly = append(poly,
				model.Point{X: e.x, Y: e.endY(enter)},
				model.Point{X: e.x, Y: e.endY(exit)},
			)
			next := e.link[exit]
			if arena[next.edge].visited {
				if next.edge != start || next.end != startEnd {
					panic("outline: boundary walk did not close on its starting edge")
				}
				break
			}
			cur, enter = next.edge, next.end
		}
		polygons = append(polygons, poly)
	}

	return polygons
}
