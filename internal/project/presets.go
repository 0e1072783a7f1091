package project

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/piwi3910/atlaspack/internal/model"
)

// DefaultPresetsPath returns the default file path for custom
// settings presets.
func DefaultPresetsPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "atlaspack", "presets.json"), nil
}

// SaveCustomPresets saves custom presets to a JSON file.
func SaveCustomPresets(path string, presets []model.SettingsPreset) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(presets, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadCustomPresets loads custom presets from a JSON file.
// Returns an empty slice if the file does not exist.
func LoadCustomPresets(path string) ([]model.SettingsPreset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []model.SettingsPreset{}, nil
		}
		return nil, err
	}

	var presets []model.SettingsPreset
	if err := json.Unmarshal(data, &presets); err != nil {
		return nil, err
	}

	// Ensure loaded presets are not marked as built-in
	for i := range presets {
		presets[i].IsBuiltIn = false
	}
	return presets, nil
}

// SaveCustomPresetsToDefault saves custom presets to the default path.
func SaveCustomPresetsToDefault(presets []model.SettingsPreset) error {
	path, err := DefaultPresetsPath()
	if err != nil {
		return err
	}
	return SaveCustomPresets(path, presets)
}

// LoadCustomPresetsFromDefault loads custom presets from the default path.
func LoadCustomPresetsFromDefault() ([]model.SettingsPreset, error) {
	path, err := DefaultPresetsPath()
	if err != nil {
		return nil, err
	}
	return LoadCustomPresets(path)
}

// ExportPreset exports a single preset to a JSON file (for sharing).
func ExportPreset(path string, preset model.SettingsPreset) error {
	preset.IsBuiltIn = false
	data, err := json.MarshalIndent(preset, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ImportPreset imports a single preset from a JSON file.
func ImportPreset(path string) (model.SettingsPreset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.SettingsPreset{}, err
	}

	var preset model.SettingsPreset
	if err := json.Unmarshal(data, &preset); err != nil {
		return model.SettingsPreset{}, err
	}

	preset.IsBuiltIn = false
	if preset.Name == "" {
		return model.SettingsPreset{}, errors.New("imported preset has no name")
	}
	return preset, nil
}
