package cli

import (
	"path/filepath"
	"testing"

	"github.com/piwi3910/atlaspack/internal/model"
)

func TestSaveAndLoadLayout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "atlas.json")

	layout := model.AtlasLayout{
		Width:  128,
		Height: 64,
		Placements: []model.PlacedSprite{
			{
				Sprite: model.Sprite{ID: "s1", Name: "hero", Width: 64, Height: 64},
				X:      0, Y: 0, Width: 64, Height: 64,
			},
		},
	}

	if err := saveLayout(path, layout); err != nil {
		t.Fatalf("saveLayout failed: %v", err)
	}

	loaded, err := loadLayout(path)
	if err != nil {
		t.Fatalf("loadLayout failed: %v", err)
	}
	if loaded.Width != 128 || loaded.Height != 64 {
		t.Errorf("unexpected dimensions: %dx%d", loaded.Width, loaded.Height)
	}
	if len(loaded.Placements) != 1 {
		t.Fatalf("expected 1 placement, got %d", len(loaded.Placements))
	}
	if loaded.Placements[0].Sprite.Name != "hero" {
		t.Errorf("expected sprite 'hero', got %q", loaded.Placements[0].Sprite.Name)
	}
}

func TestLoadLayoutMissingFile(t *testing.T) {
	if _, err := loadLayout(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("expected error for missing layout file, got nil")
	}
}
