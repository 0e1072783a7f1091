package atlaspack

import (
	"cmp"
	"slices"
)

// Rect describes an axis-aligned rectangle for overlap queries. Width
// and Height may be negative; endpoints are normalized internally.
type Rect[S Scalar] struct {
	X      S `json:"x"`
	Y      S `json:"y"`
	Width  S `json:"width"`
	Height S `json:"height"`
}

// Pair identifies two overlapping rectangles by their input indices,
// with A < B.
type Pair struct {
	A int `json:"a"`
	B int `json:"b"`
}

func pairOf(i, j int) Pair {
	if i < j {
		return Pair{A: i, B: j}
	}
	return Pair{A: j, B: i}
}

// Intersections reports every pair of rectangles that overlap with
// positive area. Rectangles that merely touch along an edge or corner
// are not reported, and a zero-width or zero-height rectangle can
// never overlap anything on that axis.
//
// The result is sorted by (A, B). Swapping two input rectangles only
// relabels indices in the output, never changes which pairs are found.
//
// Two rectangles overlap in 2D exactly when their intervals overlap on
// both axes, so one sweep per axis suffices: O(n log n) to sort the
// endpoints plus pair emission. Primarily a verification oracle for
// packed layouts, also usable as a standalone intersection primitive.
func Intersections[S Scalar](rects []Rect[S]) []Pair {
	xPairs := axisOverlaps(rects, func(r Rect[S]) (S, S) { return r.X, r.X + r.Width })
	if len(xPairs) == 0 {
		return []Pair{}
	}
	yPairs := axisOverlaps(rects, func(r Rect[S]) (S, S) { return r.Y, r.Y + r.Height })

	both := make([]Pair, 0, min(len(xPairs), len(yPairs)))
	for p := range xPairs {
		if _, ok := yPairs[p]; ok {
			both = append(both, p)
		}
	}

	slices.SortFunc(both, func(a, b Pair) int {
		if c := cmp.Compare(a.A, b.A); c != 0 {
			return c
		}
		return cmp.Compare(a.B, b.B)
	})
	return both
}

// sweepEvent is one interval endpoint on a single axis.
type sweepEvent[S Scalar] struct {
	id    int
	value S
	start bool
}

// axisOverlaps runs a sweep along one axis and returns every pair of
// rectangles whose half-open intervals [start, end) overlap there.
func axisOverlaps[S Scalar](rects []Rect[S], interval func(Rect[S]) (S, S)) map[Pair]struct{} {
	events := make([]sweepEvent[S], 0, 2*len(rects))
	for id, r := range rects {
		lo, hi := interval(r)
		if hi < lo {
			lo, hi = hi, lo
		}
		if lo == hi {
			// Zero extent occupies nothing on this axis.
			continue
		}
		events = append(events,
			sweepEvent[S]{id: id, value: lo, start: true},
			sweepEvent[S]{id: id, value: hi, start: false},
		)
	}

	// At equal coordinates, removals are processed before insertions so
	// intervals that only share a boundary are not paired.
	slices.SortFunc(events, func(a, b sweepEvent[S]) int {
		if c := cmp.Compare(a.value, b.value); c != 0 {
			return c
		}
		switch {
		case a.start == b.start:
			return cmp.Compare(a.id, b.id)
		case a.start:
			return 1
		default:
			return -1
		}
	})

	pairs := make(map[Pair]struct{})
	open := make(map[int]struct{})
	for _, ev := range events {
		if ev.start {
			for other := range open {
				pairs[pairOf(ev.id, other)] = struct{}{}
			}
			open[ev.id] = struct{}{}
		} else {
			delete(open, ev.id)
		}
	}
	return pairs
}
