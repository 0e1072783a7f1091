package atlas

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/atlaspack/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSprites() []model.Sprite {
	return []model.Sprite{
		model.NewSprite("hero", 64, 64),
		model.NewSprite("tile", 32, 32),
		model.NewSprite("icon", 16, 16),
		model.NewSprite("bar", 120, 8),
	}
}

func TestBuild_PlacesAllSprites(t *testing.T) {
	layout, err := Build(model.AtlasSettings{Spacing: 2}, testSprites())

	require.NoError(t, err)
	assert.Len(t, layout.Placements, 4)
	assert.NoError(t, Verify(layout))

	for _, p := range layout.Placements {
		assert.GreaterOrEqual(t, p.X, 0)
		assert.GreaterOrEqual(t, p.Y, 0)
		assert.LessOrEqual(t, p.X+p.Width, layout.Width)
		assert.LessOrEqual(t, p.Y+p.Height, layout.Height)
	}
}

func TestBuild_PowerOfTwoDimensions(t *testing.T) {
	layout, err := Build(model.AtlasSettings{PowerOfTwo: true}, testSprites())

	require.NoError(t, err)
	for _, dim := range []int{layout.Width, layout.Height} {
		assert.Zero(t, dim&(dim-1), "dimension %d is not a power of two", dim)
		assert.Positive(t, dim)
	}
}

func TestBuild_EmptySpriteList(t *testing.T) {
	layout, err := Build(model.DefaultSettings(), nil)

	require.NoError(t, err)
	assert.Empty(t, layout.Placements)
	assert.Zero(t, layout.Width)
	assert.Zero(t, layout.Height)
}

func TestVerify_ReportsOverlap(t *testing.T) {
	layout := model.AtlasLayout{
		Width:  100,
		Height: 100,
		Placements: []model.PlacedSprite{
			{Sprite: model.Sprite{Name: "a"}, X: 0, Y: 0, Width: 10, Height: 10},
			{Sprite: model.Sprite{Name: "b"}, X: 5, Y: 5, Width: 10, Height: 10},
		},
	}

	err := Verify(layout)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"a"`)
	assert.Contains(t, err.Error(), `"b"`)
}

// writeTestPNG writes a solid-color PNG and returns its path.
func writeTestPNG(t *testing.T, dir, name string, w, h int, c color.Color) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
	return path
}

func TestLoadSprites_ReadsDimensions(t *testing.T) {
	dir := t.TempDir()
	red := writeTestPNG(t, dir, "red.png", 20, 10, color.RGBA{R: 255, A: 255})
	blue := writeTestPNG(t, dir, "blue.png", 8, 8, color.RGBA{B: 255, A: 255})

	sprites, images, err := LoadSprites([]string{red, blue})

	require.NoError(t, err)
	require.Len(t, sprites, 2)
	assert.Equal(t, "red", sprites[0].Name)
	assert.Equal(t, 20, sprites[0].Width)
	assert.Equal(t, 10, sprites[0].Height)
	assert.Contains(t, images, "blue")
}

func TestLoadSprites_DuplicateNameRejected(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "sub")
	require.NoError(t, os.Mkdir(sub, 0755))
	a := writeTestPNG(t, dir, "dup.png", 4, 4, color.White)
	b := writeTestPNG(t, sub, "dup.png", 4, 4, color.White)

	_, _, err := LoadSprites([]string{a, b})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate sprite name")
}

func TestCompose_BlitsSpritesAtPlacements(t *testing.T) {
	dir := t.TempDir()
	red := writeTestPNG(t, dir, "red.png", 4, 4, color.RGBA{R: 255, A: 255})
	blue := writeTestPNG(t, dir, "blue.png", 4, 4, color.RGBA{B: 255, A: 255})

	sprites, images, err := LoadSprites([]string{red, blue})
	require.NoError(t, err)

	layout, err := Build(model.AtlasSettings{Spacing: 2}, sprites)
	require.NoError(t, err)

	sheet, err := Compose(layout, images)
	require.NoError(t, err)
	assert.Equal(t, layout.Width, sheet.Bounds().Dx())
	assert.Equal(t, layout.Height, sheet.Bounds().Dy())

	redPlaced, ok := layout.Find("red")
	require.True(t, ok)
	r, _, _, a := sheet.At(redPlaced.X, redPlaced.Y).RGBA()
	assert.Equal(t, uint32(0xffff), r)
	assert.Equal(t, uint32(0xffff), a)
}

func TestCompose_MissingPixelsFails(t *testing.T) {
	layout := model.AtlasLayout{
		Width:  16,
		Height: 16,
		Placements: []model.PlacedSprite{
			{Sprite: model.Sprite{Name: "ghost"}, Width: 8, Height: 8},
		},
	}

	_, err := Compose(layout, map[string]image.Image{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ghost")
}

func TestWritePNG_CreatesFile(t *testing.T) {
	dir := t.TempDir()
	red := writeTestPNG(t, dir, "red.png", 4, 4, color.RGBA{R: 255, A: 255})

	sprites, images, err := LoadSprites([]string{red})
	require.NoError(t, err)
	layout, err := Build(model.DefaultSettings(), sprites)
	require.NoError(t, err)

	out := filepath.Join(dir, "atlas.png")
	require.NoError(t, WritePNG(out, layout, images))

	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}
