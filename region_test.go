package atlaspack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLength_Arithmetic(t *testing.T) {
	f := Finite(10)
	u := Unbounded[int]()

	assert.False(t, f.IsUnbounded())
	assert.True(t, u.IsUnbounded())

	assert.Equal(t, 7, f.Sub(3).Value())
	assert.True(t, u.Sub(1000).IsUnbounded())

	assert.True(t, f.AtLeast(10))
	assert.False(t, f.AtLeast(11))
	assert.True(t, u.AtLeast(1<<40))

	assert.True(t, f.Positive())
	assert.False(t, Finite(0).Positive())
	assert.False(t, Finite(-4).Positive())
	assert.True(t, u.Positive())
}

func TestNextPowerOfTwo(t *testing.T) {
	assert.Equal(t, 0, nextPowerOfTwo(0))
	assert.Equal(t, 0, nextPowerOfTwo(-16))
	assert.Equal(t, 1, nextPowerOfTwo(1))
	assert.Equal(t, 2, nextPowerOfTwo(2))
	assert.Equal(t, 4, nextPowerOfTwo(3))
	assert.Equal(t, 128, nextPowerOfTwo(128))
	assert.Equal(t, 256, nextPowerOfTwo(129))
}

func TestRegionList_SeededUnbounded(t *testing.T) {
	rl := newRegionList[int]()

	require.Len(t, rl.free, 1)
	assert.True(t, rl.free[0].width.IsUnbounded())
	assert.True(t, rl.free[0].height.IsUnbounded())

	// The seed absorbs anything, so a fit always exists.
	idx := rl.findBestRegion(0, 1<<30, 1<<30, 0, 0)
	assert.Equal(t, 0, idx)
}

func TestRegionList_PrefersFiniteOverUnbounded(t *testing.T) {
	rl := &regionList[int]{free: []region[int]{
		{x: 0, y: 0, width: Unbounded[int](), height: Unbounded[int]()},
		{x: 100, y: 0, width: Finite(20), height: Finite(20)},
	}}

	idx := rl.findBestRegion(0, 10, 10, 120, 20)
	assert.Equal(t, 1, idx, "a bounded fit beats the unbounded seed")
}

func TestRegionList_BestFitMinimizesLeftover(t *testing.T) {
	rl := &regionList[int]{free: []region[int]{
		{x: 0, y: 0, width: Finite(50), height: Finite(50)},
		{x: 60, y: 0, width: Finite(12), height: Finite(30)},
	}}

	// A 10x10 box leaves min leftover 2 in the second region vs 40 in
	// the first.
	idx := rl.findBestRegion(0, 10, 10, 72, 50)
	assert.Equal(t, 1, idx)
}

func TestRegionList_OriginTieBreak(t *testing.T) {
	rl := &regionList[int]{free: []region[int]{
		{x: 30, y: 30, width: Finite(20), height: Finite(20)},
		{x: 0, y: 0, width: Finite(20), height: Finite(20)},
	}}

	idx := rl.findBestRegion(0, 10, 10, 50, 50)
	assert.Equal(t, 1, idx, "equal leftovers resolve toward the origin")
}

func TestRegionList_SpacingRaisesRequirement(t *testing.T) {
	rl := &regionList[int]{free: []region[int]{
		{x: 0, y: 0, width: Finite(12), height: Finite(12)},
	}}

	assert.Equal(t, 0, rl.findBestRegion(2, 10, 10, 12, 12))
	assert.Equal(t, -1, rl.findBestRegion(3, 10, 10, 12, 12))
}

func TestRegionList_GrowthBeatsSnugLeftover(t *testing.T) {
	// A wide free strip inside the current 102x80 container versus a
	// narrow column whose next slot sits above the container's top edge.
	// The column is the snugger width fit, but taking it would raise the
	// whole bounding box; the in-bounds strip must win.
	rl := &regionList[int]{free: []region[int]{
		{x: 0, y: 40, width: Finite(100), height: Unbounded[int]()},
		{x: 90, y: 80, width: Finite(12), height: Unbounded[int]()},
	}}

	idx := rl.findBestRegion(0, 10, 10, 102, 80)
	assert.Equal(t, 0, idx, "placements inside the container beat ones that grow it")
}

func TestRegionList_CheaperGrowthDirectionWins(t *testing.T) {
	// Both candidates extend the 100x40 container. Extending the bottom
	// row rightward adds a 10x40 strip; extending the left column upward
	// adds a 100x10 strip and costs more than twice as much.
	rl := &regionList[int]{free: []region[int]{
		{x: 0, y: 40, width: Finite(100), height: Unbounded[int]()},
		{x: 100, y: 0, width: Unbounded[int](), height: Finite(40)},
	}}

	idx := rl.findBestRegion(0, 10, 10, 100, 40)
	assert.Equal(t, 1, idx, "the smaller bounding-box growth wins")
}

func TestRegionList_PlaceAndSplitChildren(t *testing.T) {
	rl := &regionList[int]{free: []region[int]{
		{x: 0, y: 0, width: Finite(100), height: Finite(80)},
	}}

	x, y := rl.placeAndSplit(2, 30, 20, 0, false)
	assert.Equal(t, 0, x)
	assert.Equal(t, 0, y)
	require.Len(t, rl.free, 2)

	right := rl.free[0]
	assert.Equal(t, 32, right.x)
	assert.Equal(t, 0, right.y)
	assert.Equal(t, 68, right.width.Value())
	assert.Equal(t, 22, right.height.Value(), "horizontal split caps the right child at the box height")

	top := rl.free[1]
	assert.Equal(t, 0, top.x)
	assert.Equal(t, 22, top.y)
	assert.Equal(t, 100, top.width.Value(), "horizontal split gives the top child full width")
	assert.Equal(t, 58, top.height.Value())
}

func TestRegionList_PlaceAndSplitVertical(t *testing.T) {
	rl := &regionList[int]{free: []region[int]{
		{x: 0, y: 0, width: Finite(100), height: Finite(80)},
	}}

	rl.placeAndSplit(0, 30, 20, 0, true)
	require.Len(t, rl.free, 2)

	right := rl.free[0]
	assert.Equal(t, 70, right.width.Value())
	assert.Equal(t, 80, right.height.Value(), "vertical split gives the right child full height")

	top := rl.free[1]
	assert.Equal(t, 30, top.width.Value(), "vertical split caps the top child at the box width")
	assert.Equal(t, 60, top.height.Value())
}

func TestRegionList_DegenerateChildrenDiscarded(t *testing.T) {
	rl := &regionList[int]{free: []region[int]{
		{x: 0, y: 0, width: Finite(30), height: Finite(20)},
	}}

	// The box consumes the region exactly: both children collapse.
	rl.placeAndSplit(0, 30, 20, 0, false)
	assert.Empty(t, rl.free)
}

func TestRegionList_UnboundedSeedSplit(t *testing.T) {
	rl := newRegionList[int]()

	rl.placeAndSplit(1, 10, 10, 0, true)
	require.Len(t, rl.free, 2)

	right := rl.free[0]
	assert.Equal(t, 11, right.x)
	assert.True(t, right.width.IsUnbounded())
	assert.True(t, right.height.IsUnbounded())

	top := rl.free[1]
	assert.Equal(t, 11, top.y)
	assert.Equal(t, 11, top.width.Value())
	assert.True(t, top.height.IsUnbounded())
}
