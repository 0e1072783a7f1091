package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpriteLibraryAddRemoveFind(t *testing.T) {
	lib := DefaultLibrary()
	assert.Empty(t, lib.Sprites)

	s1 := NewSprite("hero", 64, 64)
	s2 := NewSprite("coin", 16, 16)
	lib.Add(s1)
	lib.Add(s2)
	assert.Len(t, lib.Sprites, 2)

	found, ok := lib.Find(s2.ID)
	require.True(t, ok)
	assert.Equal(t, "coin", found.Name)

	assert.True(t, lib.Remove(s1.ID))
	assert.False(t, lib.Remove(s1.ID))
	assert.Len(t, lib.Sprites, 1)

	_, ok = lib.Find(s1.ID)
	assert.False(t, ok)
}

func TestBuiltInPresets(t *testing.T) {
	presets := BuiltInPresets()
	require.NotEmpty(t, presets)
	for _, p := range presets {
		assert.True(t, p.IsBuiltIn, "preset %q should be built-in", p.Name)
		assert.NotEmpty(t, p.Name)
	}
}

func TestFindPreset(t *testing.T) {
	custom := []SettingsPreset{
		{Name: "My Preset", Settings: AtlasSettings{Spacing: 5}},
	}

	p, ok := FindPreset("My Preset", custom)
	require.True(t, ok)
	assert.Equal(t, 5, p.Settings.Spacing)
	assert.False(t, p.IsBuiltIn)

	p, ok = FindPreset("GPU Texture", custom)
	require.True(t, ok)
	assert.True(t, p.IsBuiltIn)
	assert.True(t, p.Settings.PowerOfTwo)

	_, ok = FindPreset("does not exist", custom)
	assert.False(t, ok)
}

func TestFindPresetCustomShadowsBuiltIn(t *testing.T) {
	custom := []SettingsPreset{
		{Name: "GPU Texture", Settings: AtlasSettings{Spacing: 8}},
	}

	p, ok := FindPreset("GPU Texture", custom)
	require.True(t, ok)
	assert.Equal(t, 8, p.Settings.Spacing)
	assert.False(t, p.IsBuiltIn)
}
