package atlaspack

import "fmt"

// Box is an input rectangle request. Width and Height may be negative
// or zero; the packer always treats the absolute value as the box's
// footprint. Data is an opaque caller-owned payload carried through
// unchanged, and is never inspected, compared, or hashed.
type Box[S Scalar, T any] struct {
	Width  S `json:"width"`
	Height S `json:"height"`
	Data   T `json:"data"`
}

// NewBox initializes a box with the specified dimensions and payload.
func NewBox[S Scalar, T any](width, height S, data T) Box[S, T] {
	return Box[S, T]{Width: width, Height: height, Data: data}
}

// PlacedBox is a box after placement. Width and Height are the
// absolute value of the source box's dimensions and X, Y are always
// non-negative.
type PlacedBox[S Scalar, T any] struct {
	X      S `json:"x"`
	Y      S `json:"y"`
	Width  S `json:"width"`
	Height S `json:"height"`
	Data   T `json:"data"`
}

// Rect returns the placement's footprint without the payload.
func (b PlacedBox[S, T]) Rect() Rect[S] {
	return Rect[S]{X: b.X, Y: b.Y, Width: b.Width, Height: b.Height}
}

// PackedBoxes is the result of a Pack call: the bounding container
// size and every placement. Placements are emitted in the order they
// were packed, which need not match the input order.
type PackedBoxes[S Scalar, T any] struct {
	Width  S                 `json:"width"`
	Height S                 `json:"height"`
	Boxes  []PlacedBox[S, T] `json:"boxes"`
}

// UsedArea returns the total area covered by placed boxes.
func (p PackedBoxes[S, T]) UsedArea() S {
	var total S
	for _, b := range p.Boxes {
		total += b.Width * b.Height
	}
	return total
}

// TotalArea returns the container area.
func (p PackedBoxes[S, T]) TotalArea() S {
	return p.Width * p.Height
}

// Efficiency returns the ratio of used area to container area in the
// range 0.0 to 1.0.
func (p PackedBoxes[S, T]) Efficiency() float64 {
	ta := p.TotalArea()
	if ta == 0 {
		return 0
	}
	return float64(p.UsedArea()) / float64(ta)
}

// Rects returns the footprints of all placements, suitable for
// Intersections.
func (p PackedBoxes[S, T]) Rects() []Rect[S] {
	rects := make([]Rect[S], len(p.Boxes))
	for i, b := range p.Boxes {
		rects[i] = b.Rect()
	}
	return rects
}

// Overlaps runs the overlap detector over all placements. A correct
// packing always returns an empty result.
func (p PackedBoxes[S, T]) Overlaps() []Pair {
	return Intersections(p.Rects())
}

// Config holds packing options. The zero value packs tightly with no
// rounding.
type Config[S Scalar] struct {
	// Spacing is the minimum empty gap reserved between adjacent
	// boxes. It is not applied as an outer margin around the
	// container. Negative values are clamped to zero.
	Spacing S `json:"spacing"`
	// PowerOfTwo rounds the final width and height up, independently,
	// to the next power of two.
	PowerOfTwo bool `json:"power_of_two"`
	// MinWidth is a floor on the container width, applied before any
	// power-of-two rounding. Negative values are clamped to zero.
	MinWidth S `json:"min_width"`
	// PreserveOrder packs boxes in the order given instead of sorting
	// them largest first. Callers that search over orderings, or that
	// have already sorted their input, set this to take control of
	// placement order.
	PreserveOrder bool `json:"preserve_order,omitempty"`
}

// UnplaceableBoxError reports a box for which no free region could be
// found. Given the unbounded seed region this should be unreachable,
// but a box is never dropped silently: the caller decides whether to
// relax the configuration or abort.
type UnplaceableBoxError[S Scalar, T any] struct {
	Box Box[S, T]
}

func (e *UnplaceableBoxError[S, T]) Error() string {
	return fmt.Sprintf("atlaspack: no free region can hold a %v x %v box", e.Box.Width, e.Box.Height)
}
