package project

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/piwi3910/atlaspack/internal/model"
)

// DefaultLibraryPath returns the default file path for the shared
// sprite library, ~/.atlaspack/library.json.
func DefaultLibraryPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".atlaspack", "library.json"), nil
}

// SaveLibrary writes the sprite library to the specified JSON file.
// It creates parent directories if they do not exist.
func SaveLibrary(path string, lib model.SpriteLibrary) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(lib, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadLibrary reads the sprite library from the specified JSON file.
// If the file does not exist, it returns an empty library and saves it.
func LoadLibrary(path string) (model.SpriteLibrary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			lib := model.DefaultLibrary()
			if saveErr := SaveLibrary(path, lib); saveErr != nil {
				return lib, saveErr
			}
			return lib, nil
		}
		return model.SpriteLibrary{}, err
	}
	var lib model.SpriteLibrary
	if err := json.Unmarshal(data, &lib); err != nil {
		return model.SpriteLibrary{}, err
	}
	return lib, nil
}

// LoadOrCreateLibrary loads the sprite library from the default path.
// If the file does not exist, it creates an empty one.
func LoadOrCreateLibrary() (model.SpriteLibrary, string, error) {
	path, err := DefaultLibraryPath()
	if err != nil {
		return model.DefaultLibrary(), "", err
	}
	lib, err := LoadLibrary(path)
	return lib, path, err
}

// ImportLibrary imports a sprite library from a user-specified JSON
// file, merging it with the existing library. Duplicate IDs are
// skipped.
func ImportLibrary(path string, existing model.SpriteLibrary) (model.SpriteLibrary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return existing, err
	}
	var imported model.SpriteLibrary
	if err := json.Unmarshal(data, &imported); err != nil {
		return existing, err
	}

	ids := make(map[string]bool, len(existing.Sprites))
	for _, s := range existing.Sprites {
		ids[s.ID] = true
	}
	for _, s := range imported.Sprites {
		if !ids[s.ID] {
			existing.Sprites = append(existing.Sprites, s)
			ids[s.ID] = true
		}
	}

	return existing, nil
}
