package model

// SettingsPreset is a named packing configuration. Built-in presets
// ship with the application; custom presets are saved by the user and
// can be exported for sharing.
type SettingsPreset struct {
	Name      string        `json:"name"`
	Settings  AtlasSettings `json:"settings"`
	IsBuiltIn bool          `json:"is_built_in,omitempty"`
}

// BuiltInPresets returns the presets that ship with the application.
func BuiltInPresets() []SettingsPreset {
	return []SettingsPreset{
		{
			Name:      "GPU Texture",
			Settings:  AtlasSettings{Spacing: 2, PowerOfTwo: true, MinWidth: 0},
			IsBuiltIn: true,
		},
		{
			Name:      "Tight Packing",
			Settings:  AtlasSettings{Spacing: 0, PowerOfTwo: false, MinWidth: 0},
			IsBuiltIn: true,
		},
		{
			Name:      "Tileset",
			Settings:  AtlasSettings{Spacing: 1, PowerOfTwo: true, MinWidth: 256},
			IsBuiltIn: true,
		},
	}
}

// FindPreset returns the preset with the given name from the combined
// built-in and custom preset lists. Custom presets shadow built-ins.
func FindPreset(name string, custom []SettingsPreset) (SettingsPreset, bool) {
	for _, p := range custom {
		if p.Name == name {
			return p, true
		}
	}
	for _, p := range BuiltInPresets() {
		if p.Name == name {
			return p, true
		}
	}
	return SettingsPreset{}, false
}
