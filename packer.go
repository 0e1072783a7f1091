package atlaspack

import "slices"

// Pack arranges boxes into the smallest practical bounding rectangle
// without overlap, using a best-area-fit guillotine heuristic over an
// initially unbounded free region. The function is pure and
// deterministic: identical inputs, including order, produce identical
// layouts, and independent calls may run concurrently.
//
// Boxes with negative dimensions are packed by their absolute
// footprint; zero-dimension boxes are legal and consume a region like
// any other. The returned placements appear in packing order.
//
// The only failure mode is an UnplaceableBoxError, which the unbounded
// seed region makes unreachable in practice; it is surfaced rather
// than dropping the box silently.
func Pack[S Scalar, T any](cfg Config[S], boxes []Box[S, T]) (PackedBoxes[S, T], error) {
	spacing := cfg.Spacing
	if spacing < 0 {
		spacing = 0
	}
	minWidth := cfg.MinWidth
	if minWidth < 0 {
		minWidth = 0
	}

	sorted := make([]Box[S, T], len(boxes))
	copy(sorted, boxes)
	if !cfg.PreserveOrder {
		slices.SortStableFunc(sorted, compareLargestFirst)
	}

	regions := newRegionList[S]()
	packed := PackedBoxes[S, T]{Boxes: make([]PlacedBox[S, T], 0, len(sorted))}

	for n, box := range sorted {
		w := absScalar(box.Width)
		h := absScalar(box.Height)

		idx := regions.findBestRegion(spacing, w, h, packed.Width, packed.Height)
		if idx < 0 {
			return PackedBoxes[S, T]{}, &UnplaceableBoxError[S, T]{Box: box}
		}

		x, y := regions.placeAndSplit(spacing, w, h, idx, n%2 == 0)
		packed.Boxes = append(packed.Boxes, PlacedBox[S, T]{
			X: x, Y: y, Width: w, Height: h, Data: box.Data,
		})

		packed.Width = max(packed.Width, x+w+spacing)
		packed.Height = max(packed.Height, y+h+spacing)
	}

	// The running extents include one trailing spacing each; spacing is
	// reserved between boxes, not as an outer margin.
	if len(packed.Boxes) > 0 {
		packed.Width -= spacing
		packed.Height -= spacing
	}

	packed.Width = max(packed.Width, minWidth)
	if cfg.PowerOfTwo {
		packed.Width = nextPowerOfTwo(packed.Width)
		packed.Height = nextPowerOfTwo(packed.Height)
	}

	return packed, nil
}

// compareLargestFirst orders boxes for packing. A box that dominates
// another in both absolute dimensions comes first; otherwise the
// larger absolute area wins. The dominance check keeps same-area boxes
// with extreme aspect ratios from jumping ahead of more regular ones,
// which empirically hurts packing efficiency.
func compareLargestFirst[S Scalar, T any](a, b Box[S, T]) int {
	aw, ah := absScalar(a.Width), absScalar(a.Height)
	bw, bh := absScalar(b.Width), absScalar(b.Height)

	switch {
	case aw >= bw && ah >= bh && (aw > bw || ah > bh):
		return -1
	case bw >= aw && bh >= ah && (bw > aw || bh > ah):
		return 1
	}

	areaA := aw * ah
	areaB := bw * bh
	switch {
	case areaA > areaB:
		return -1
	case areaA < areaB:
		return 1
	}
	return 0
}
