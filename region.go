package atlaspack

// region is a free rectangular area still available for placement.
// Regions never escape a Pack call.
type region[S Scalar] struct {
	x, y   S
	width  Length[S]
	height Length[S]
}

// fitClass ranks candidate regions by how much of their extent is
// bounded. At equal bounding-box growth, finite fits are preferred
// over dipping into an unbounded region, and the doubly-unbounded seed
// is the fit of last resort; it can absorb any box, which is what
// guarantees termination.
type fitClass int

const (
	fitFinite       fitClass = iota // both leftovers finite
	fitHalfBounded                  // exactly one leftover unbounded
	fitSeed                         // both leftovers unbounded
)

// fitScore is the score of placing a box in a candidate region. Lower
// is better: bounding-box growth first, then class, then the shortest
// finite leftover side, then distance from the origin. Growth leads so
// that a placement inside the current container always beats one that
// pushes an edge outward, and edge-pushing placements compete on the
// area they add.
type fitScore struct {
	growth   float64
	class    fitClass
	leftover float64
	origin   float64
}

func (s fitScore) betterThan(o fitScore) bool {
	if s.growth != o.growth {
		return s.growth < o.growth
	}
	if s.class != o.class {
		return s.class < o.class
	}
	if s.leftover != o.leftover {
		return s.leftover < o.leftover
	}
	return s.origin < o.origin
}

// regionList tracks the free regions of one packing run as a flat
// slice with index-based removal, the same arena style the splitting
// naturally produces up to two children per placement.
type regionList[S Scalar] struct {
	free []region[S]
}

// newRegionList seeds the tracker with a single region at the origin,
// unbounded in both dimensions.
func newRegionList[S Scalar]() *regionList[S] {
	return &regionList[S]{
		free: []region[S]{{width: Unbounded[S](), height: Unbounded[S]()}},
	}
}

// findBestRegion returns the index of the free region that fits a
// width x height box plus spacing with the best score, or -1 when no
// region qualifies. boundW and boundH are the container extents packed
// so far; candidates are charged the bounding-box area their placement
// would add, which keeps the layout compact instead of letting the
// unbounded arms sprawl.
func (rl *regionList[S]) findBestRegion(spacing, width, height, boundW, boundH S) int {
	bestIdx := -1
	var bestScore fitScore

	needW := width + spacing
	needH := height + spacing
	curW := float64(boundW)
	curH := float64(boundH)

	for i, r := range rl.free {
		if !r.width.AtLeast(needW) || !r.height.AtLeast(needH) {
			continue
		}

		leftW := r.width.Sub(needW)
		leftH := r.height.Sub(needH)

		var score fitScore
		newW := max(curW, float64(r.x)+float64(needW))
		newH := max(curH, float64(r.y)+float64(needH))
		score.growth = newW*newH - curW*curH
		score.origin = float64(r.x) + float64(r.y)
		switch {
		case !leftW.IsUnbounded() && !leftH.IsUnbounded():
			score.class = fitFinite
			score.leftover = min(float64(leftW.Value()), float64(leftH.Value()))
		case leftW.IsUnbounded() && leftH.IsUnbounded():
			score.class = fitSeed
		case leftW.IsUnbounded():
			score.class = fitHalfBounded
			score.leftover = float64(leftH.Value())
		default:
			score.class = fitHalfBounded
			score.leftover = float64(leftW.Value())
		}

		if bestIdx < 0 || score.betterThan(bestScore) {
			bestIdx = i
			bestScore = score
		}
	}

	return bestIdx
}

// placeAndSplit places a width x height box flush at the origin of the
// free region at idx and guillotine-cuts the remainder around the
// footprint expanded by spacing on the +x and +y sides only. The
// consumed region is removed; surviving children are added. Returns
// the placement position.
func (rl *regionList[S]) placeAndSplit(spacing, width, height S, idx int, splitVertically bool) (S, S) {
	r := rl.free[idx]
	rl.free = append(rl.free[:idx], rl.free[idx+1:]...)

	usedW := width + spacing
	usedH := height + spacing

	right := region[S]{
		x:      r.x + usedW,
		y:      r.y,
		width:  r.width.Sub(usedW),
		height: Finite(usedH),
	}
	top := region[S]{
		x:      r.x,
		y:      r.y + usedH,
		width:  r.width,
		height: r.height.Sub(usedH),
	}
	if splitVertically {
		right.height = r.height
		top.width = Finite(usedW)
	}

	if right.width.Positive() && right.height.Positive() {
		rl.free = append(rl.free, right)
	}
	if top.width.Positive() && top.height.Positive() {
		rl.free = append(rl.free, top)
	}

	return r.x, r.y
}
