package atlaspack

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPack_SingleBox(t *testing.T) {
	packed, err := Pack(Config[int]{}, []Box[int, string]{NewBox(64, 32, "sprite")})

	require.NoError(t, err)
	require.Len(t, packed.Boxes, 1)
	assert.Equal(t, 0, packed.Boxes[0].X)
	assert.Equal(t, 0, packed.Boxes[0].Y)
	assert.Equal(t, 64, packed.Width)
	assert.Equal(t, 32, packed.Height)
	assert.Equal(t, "sprite", packed.Boxes[0].Data)
}

func TestPack_NoOverlap(t *testing.T) {
	boxes := []Box[int, int]{
		NewBox(50, 30, 0),
		NewBox(20, 20, 1),
		NewBox(20, 20, 2),
		NewBox(10, 45, 3),
		NewBox(35, 5, 4),
		NewBox(5, 5, 5),
	}

	for _, spacing := range []int{0, 1, 3, 8} {
		packed, err := Pack(Config[int]{Spacing: spacing}, boxes)
		require.NoError(t, err)
		assert.Empty(t, packed.Overlaps(), "spacing %d produced overlapping boxes", spacing)
	}
}

func TestPack_Containment(t *testing.T) {
	boxes := []Box[int, int]{
		NewBox(40, 25, 0),
		NewBox(12, 60, 1),
		NewBox(30, 30, 2),
		NewBox(7, 3, 3),
	}

	packed, err := Pack(Config[int]{Spacing: 2}, boxes)
	require.NoError(t, err)

	for _, b := range packed.Boxes {
		assert.GreaterOrEqual(t, b.X, 0)
		assert.GreaterOrEqual(t, b.Y, 0)
		assert.LessOrEqual(t, b.X+b.Width, packed.Width)
		assert.LessOrEqual(t, b.Y+b.Height, packed.Height)
	}
}

func TestPack_CountPreservation(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	boxes := make([]Box[int, int], 60)
	for i := range boxes {
		boxes[i] = NewBox(rng.Intn(40)+1, rng.Intn(40)+1, i)
	}

	packed, err := Pack(Config[int]{Spacing: 1}, boxes)
	require.NoError(t, err)
	assert.Len(t, packed.Boxes, len(boxes))

	// Every payload must come through exactly once.
	seen := make(map[int]bool, len(boxes))
	for _, b := range packed.Boxes {
		assert.False(t, seen[b.Data], "payload %d placed twice", b.Data)
		seen[b.Data] = true
	}
	assert.Len(t, seen, len(boxes))
}

func TestPack_AbsoluteValueNormalization(t *testing.T) {
	packed, err := Pack(Config[int]{}, []Box[int, string]{NewBox(-9, 27, "flipped")})

	require.NoError(t, err)
	require.Len(t, packed.Boxes, 1)
	assert.Equal(t, 9, packed.Boxes[0].Width)
	assert.Equal(t, 27, packed.Boxes[0].Height)
	assert.Equal(t, 9, packed.Width)
	assert.Equal(t, 27, packed.Height)
}

func TestPack_ZeroHeightBox(t *testing.T) {
	packed, err := Pack(Config[int]{}, []Box[int, string]{NewBox(128, 0, "strip")})

	require.NoError(t, err)
	require.Len(t, packed.Boxes, 1)
	assert.Equal(t, 0, packed.Boxes[0].X)
	assert.Equal(t, 0, packed.Boxes[0].Y)
	assert.Equal(t, 128, packed.Width)
	assert.Equal(t, 0, packed.Height)
}

func TestPack_PowerOfTwoWithMinWidth(t *testing.T) {
	cfg := Config[int]{PowerOfTwo: true, MinWidth: 128}
	packed, err := Pack(cfg, []Box[int, string]{NewBox(129, 0, "wide")})

	require.NoError(t, err)
	require.Len(t, packed.Boxes, 1)
	assert.Equal(t, 0, packed.Boxes[0].X)
	assert.Equal(t, 0, packed.Boxes[0].Y)
	assert.Equal(t, 256, packed.Width, "next power of two above 129")
	assert.Equal(t, 0, packed.Height)
}

func TestPack_MinWidthFloorsContainer(t *testing.T) {
	packed, err := Pack(Config[int]{MinWidth: 200}, []Box[int, string]{NewBox(10, 10, "tiny")})

	require.NoError(t, err)
	assert.Equal(t, 200, packed.Width)
	assert.Equal(t, 10, packed.Height)
}

func TestPack_NegativeConfigClamped(t *testing.T) {
	boxes := []Box[int, int]{NewBox(10, 10, 0), NewBox(10, 10, 1)}

	clamped, err := Pack(Config[int]{Spacing: -5, MinWidth: -100}, boxes)
	require.NoError(t, err)
	plain, err := Pack(Config[int]{}, boxes)
	require.NoError(t, err)

	assert.Equal(t, plain, clamped, "negative spacing and min width behave as zero")
}

func TestPack_SpacingIsTight(t *testing.T) {
	const s = 4
	boxes := []Box[int, int]{NewBox(10, 10, 0), NewBox(10, 10, 1)}

	packed, err := Pack(Config[int]{Spacing: s}, boxes)
	require.NoError(t, err)
	require.Len(t, packed.Boxes, 2)

	inflate := func(by int) []Rect[int] {
		rects := packed.Rects()
		for i := range rects {
			rects[i].X -= by
			rects[i].Y -= by
			rects[i].Width += 2 * by
			rects[i].Height += 2 * by
		}
		return rects
	}

	// Growing every box by half the spacing consumes the reserved gap
	// exactly: boxes touch but do not overlap.
	assert.Empty(t, Intersections(inflate(s/2)))
	// Growing by the full spacing overshoots the gap and must collide.
	assert.NotEmpty(t, Intersections(inflate(s)))
}

func TestPack_Deterministic(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	boxes := make([]Box[int, int], 40)
	for i := range boxes {
		boxes[i] = NewBox(rng.Intn(30)+1, rng.Intn(30)+1, i)
	}
	cfg := Config[int]{Spacing: 2, PowerOfTwo: true}

	first, err := Pack(cfg, boxes)
	require.NoError(t, err)
	second, err := Pack(cfg, boxes)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestPack_EmptyInput(t *testing.T) {
	packed, err := Pack[int, string](Config[int]{Spacing: 3}, nil)

	require.NoError(t, err)
	assert.Empty(t, packed.Boxes)
	assert.Equal(t, 0, packed.Width)
	assert.Equal(t, 0, packed.Height)
}

func TestPack_FloatScalars(t *testing.T) {
	boxes := []Box[float64, string]{
		NewBox(10.5, 4.25, "a"),
		NewBox(3.75, 3.75, "b"),
	}

	packed, err := Pack(Config[float64]{Spacing: 0.5}, boxes)
	require.NoError(t, err)
	assert.Len(t, packed.Boxes, 2)
	assert.Empty(t, packed.Overlaps())
}

// TestPack_EfficiencyThreshold is a statistical guard against heuristic
// regressions: random box sets must keep total placed area above a
// fixed fraction of the container area.
func TestPack_EfficiencyThreshold(t *testing.T) {
	for _, seed := range []int64{1, 2, 3} {
		rng := rand.New(rand.NewSource(seed))
		boxes := make([]Box[int, int], 150)
		for i := range boxes {
			boxes[i] = NewBox(rng.Intn(50)+1, rng.Intn(50)+1, i)
		}

		packed, err := Pack(Config[int]{}, boxes)
		require.NoError(t, err)
		require.Empty(t, packed.Overlaps())
		assert.Greater(t, packed.Efficiency(), 0.6, "seed %d packed too loosely", seed)
	}
}

func TestPack_SortOrderPrefersDominantBoxes(t *testing.T) {
	// 20x4 and 10x10: neither dominates, so the larger area (10x10)
	// goes first. 12x12 dominates 10x10 and must lead.
	boxes := []Box[int, string]{
		NewBox(20, 4, "slab"),
		NewBox(10, 10, "square"),
		NewBox(12, 12, "big"),
	}

	packed, err := Pack(Config[int]{}, boxes)
	require.NoError(t, err)
	require.Len(t, packed.Boxes, 3)
	assert.Equal(t, "big", packed.Boxes[0].Data)
	assert.Equal(t, "square", packed.Boxes[1].Data)
	assert.Equal(t, "slab", packed.Boxes[2].Data)
}

func TestPack_PreserveOrder(t *testing.T) {
	boxes := []Box[int, string]{
		NewBox(20, 4, "slab"),
		NewBox(10, 10, "square"),
		NewBox(12, 12, "big"),
	}

	packed, err := Pack(Config[int]{PreserveOrder: true}, boxes)
	require.NoError(t, err)
	require.Len(t, packed.Boxes, 3)
	assert.Equal(t, "slab", packed.Boxes[0].Data)
	assert.Equal(t, "square", packed.Boxes[1].Data)
	assert.Equal(t, "big", packed.Boxes[2].Data)
	assert.Empty(t, packed.Overlaps())
}
