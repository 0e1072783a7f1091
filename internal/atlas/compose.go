package atlas

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	// Register decoders for the sprite formats the loader accepts.
	_ "image/gif"
	_ "image/jpeg"

	"github.com/piwi3910/atlaspack/internal/model"
)

// LoadSprites reads each image file, decodes it, and returns one
// sprite per file together with the decoded pixels keyed by sprite
// name. The sprite name is the file name without its extension.
func LoadSprites(paths []string) ([]model.Sprite, map[string]image.Image, error) {
	sprites := make([]model.Sprite, 0, len(paths))
	images := make(map[string]image.Image, len(paths))

	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open sprite %q: %w", path, err)
		}
		img, _, err := image.Decode(f)
		f.Close()
		if err != nil {
			return nil, nil, fmt.Errorf("cannot decode sprite %q: %w", path, err)
		}

		name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		if _, exists := images[name]; exists {
			return nil, nil, fmt.Errorf("duplicate sprite name %q", name)
		}

		bounds := img.Bounds()
		sprite := model.NewSprite(name, bounds.Dx(), bounds.Dy())
		sprite.Path = path

		sprites = append(sprites, sprite)
		images[name] = img
	}

	return sprites, images, nil
}

// Compose blits every placed sprite into a single RGBA atlas image of
// the layout's dimensions. The layout guarantees destination
// rectangles never overlap, so this is a plain sequence of copies.
func Compose(layout model.AtlasLayout, images map[string]image.Image) (*image.RGBA, error) {
	sheet := image.NewRGBA(image.Rect(0, 0, layout.Width, layout.Height))

	for _, p := range layout.Placements {
		src, ok := images[p.Sprite.Name]
		if !ok {
			return nil, fmt.Errorf("no pixels for sprite %q", p.Sprite.Name)
		}
		dst := image.Rect(p.X, p.Y, p.X+p.Width, p.Y+p.Height)
		draw.Draw(sheet, dst, src, src.Bounds().Min, draw.Src)
	}

	return sheet, nil
}

// WritePNG composes the atlas and writes it to path as a PNG.
func WritePNG(path string, layout model.AtlasLayout, images map[string]image.Image) error {
	sheet, err := Compose(layout, images)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create atlas file: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, sheet); err != nil {
		return fmt.Errorf("cannot encode atlas: %w", err)
	}
	return nil
}
