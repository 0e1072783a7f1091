package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/piwi3910/atlaspack/internal/model"
)

// saveLayout writes a layout to path as indented JSON.
func saveLayout(path string, layout model.AtlasLayout) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(layout, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// loadLayout reads a layout JSON file.
func loadLayout(path string) (model.AtlasLayout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.AtlasLayout{}, fmt.Errorf("cannot read layout file: %w", err)
	}
	var layout model.AtlasLayout
	if err := json.Unmarshal(data, &layout); err != nil {
		return model.AtlasLayout{}, fmt.Errorf("cannot parse layout file: %w", err)
	}
	return layout, nil
}
