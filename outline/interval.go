package outline

import "sort"

// span is a vertical coverage interval, y1 < y2.
type span struct {
	y1, y2 float64
}

// intervalSet holds the y-intervals covered by the rectangles currently
// straddling the sweep line. The slice is kept sorted by y1; duplicate
// spans are expected (two boxes can contribute identical edges) and are
// stored and removed individually, never coalesced.
type intervalSet struct {
	spans []span
}

// locate returns the index of the first span whose y1 is >= y.
func (s *intervalSet) locate(y float64) int {
	return sort.Search(len(s.spans), func(i int) bool {
		return s.spans[i].y1 >= y
	})
}

// insert adds the span at its sorted position, ahead of any spans with an
// equal y1.
func (s *intervalSet) insert(y1, y2 float64) {
	i := s.locate(y1)
	s.spans = append(s.spans, span{})
	copy(s.spans[i+1:], s.spans[i:])
	s.spans[i] = span{y1: y1, y2: y2}
}

// remove deletes the single span exactly matching (y1, y2), scanning forward
// and then backward from the binary-search anchor. Coordinates are snapped to
// the quantization grid before ever reaching this set, so the match is exact.
// A missing match means a right edge arrived without its left partner, which
// cannot happen for validated input; that is a defect in the sweep, not a
// runtime condition, so it panics.
func (s *intervalSet) remove(y1, y2 float64) {
	i := s.locate(y1)
	for j := i; j < len(s.spans) && s.spans[j].y1 == y1; j++ {
		if s.spans[j].y2 == y2 {
			s.spans = append(s.spans[:j], s.spans[j+1:]...)
			return
		}
	}
	for j := i - 1; j >= 0 && s.spans[j].y1 == y1; j-- {
		if s.spans[j].y2 == y2 {
			s.spans = append(s.spans[:j], s.spans[j+1:]...)
			return
		}
	}
	panic("outline: no active interval matches removed edge")
}

// uncovered returns the sub-spans of [y1, y2] not covered by any active
// span. Only spans starting below y2 can overlap; the slice is sorted, so
// the scan stops at the first span at or past y2.
//
// For each active span the surviving fragments are clipped in place: a
// fragment fully inside the span is dropped, a fragment overhanging one end
// is shrunk, and a fragment overhanging both ends is split in two.
func (s *intervalSet) uncovered(y1, y2 float64) []span {
	frags := []span{{y1: y1, y2: y2}}
	for _, sp := range s.spans {
		if sp.y1 >= y2 {
			break
		}
		for i := 0; i < len(frags); i++ {
			if sp.y2 <= frags[i].y1 || sp.y1 >= frags[i].y2 {
				continue
			}
			if sp.y1 <= frags[i].y1 {
				if sp.y2 >= frags[i].y2 {
					frags = append(frags[:i], frags[i+1:]...)
					i--
				} else {
					frags[i].y1 = sp.y2
				}
			} else if sp.y2 >= frags[i].y2 {
				frags[i].y2 = sp.y1
			} else {
				frags = append(frags, span{y1: sp.y2, y2: frags[i].y2})
				frags[i].y2 = sp.y1
			}
		}
	}
	return frags
}
