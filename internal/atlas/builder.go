// Package atlas builds sprite-sheet layouts and images from sprite
// collections, bridging the project model and the core packing
// library.
package atlas

import (
	"fmt"

	"github.com/piwi3910/atlaspack"
	"github.com/piwi3910/atlaspack/internal/model"
)

// Build packs the given sprites into a single atlas layout. The
// returned placements follow packing order, not input order.
func Build(settings model.AtlasSettings, sprites []model.Sprite) (model.AtlasLayout, error) {
	return buildWithConfig(atlaspack.Config[int]{
		Spacing:    settings.Spacing,
		PowerOfTwo: settings.PowerOfTwo,
		MinWidth:   settings.MinWidth,
	}, sprites)
}

func buildWithConfig(cfg atlaspack.Config[int], sprites []model.Sprite) (model.AtlasLayout, error) {
	boxes := make([]atlaspack.Box[int, model.Sprite], len(sprites))
	for i, s := range sprites {
		boxes[i] = atlaspack.NewBox(s.Width, s.Height, s)
	}

	packed, err := atlaspack.Pack(cfg, boxes)
	if err != nil {
		return model.AtlasLayout{}, fmt.Errorf("packing failed: %w", err)
	}

	layout := model.AtlasLayout{
		Width:      packed.Width,
		Height:     packed.Height,
		Placements: make([]model.PlacedSprite, len(packed.Boxes)),
	}
	for i, b := range packed.Boxes {
		layout.Placements[i] = model.PlacedSprite{
			Sprite: b.Data,
			X:      b.X,
			Y:      b.Y,
			Width:  b.Width,
			Height: b.Height,
		}
	}
	return layout, nil
}

// Verify runs the overlap detector over a layout and returns an error
// naming the first colliding sprite pair, or nil for a valid layout.
func Verify(layout model.AtlasLayout) error {
	rects := make([]atlaspack.Rect[int], len(layout.Placements))
	for i, p := range layout.Placements {
		rects[i] = atlaspack.Rect[int]{X: p.X, Y: p.Y, Width: p.Width, Height: p.Height}
	}

	pairs := atlaspack.Intersections(rects)
	if len(pairs) == 0 {
		return nil
	}

	first := pairs[0]
	return fmt.Errorf("%d overlapping sprite pair(s); first: %q and %q",
		len(pairs), layout.Placements[first.A].Sprite.Name, layout.Placements[first.B].Sprite.Name)
}
