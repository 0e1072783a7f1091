package model

import "github.com/google/uuid"

// Sprite represents a single rectangular asset to be packed into an
// atlas. Width and Height are in pixels. Path is optional: sprites
// imported from a manifest carry dimensions only, while sprites loaded
// from image files keep their source path for composition.
type Sprite struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Path   string `json:"path,omitempty"`
	Width  int    `json:"width"`  // px
	Height int    `json:"height"` // px
}

// NewSprite creates a new Sprite with a generated ID.
func NewSprite(name string, w, h int) Sprite {
	return Sprite{
		ID:     uuid.New().String()[:8],
		Name:   name,
		Width:  w,
		Height: h,
	}
}

// AtlasSettings holds packing configuration for an atlas build.
type AtlasSettings struct {
	Spacing    int  `json:"spacing"`      // Minimum gap between sprites in px
	PowerOfTwo bool `json:"power_of_two"` // Round atlas dimensions up to powers of two
	MinWidth   int  `json:"min_width"`    // Floor on the atlas width in px
}

// DefaultSettings returns the settings applied to new projects.
func DefaultSettings() AtlasSettings {
	return AtlasSettings{
		Spacing:    2,
		PowerOfTwo: true,
		MinWidth:   0,
	}
}

// PlacedSprite represents a sprite positioned within the atlas.
type PlacedSprite struct {
	Sprite Sprite `json:"sprite"`
	X      int    `json:"x"` // px from the left atlas edge
	Y      int    `json:"y"` // px from the top atlas edge
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// AtlasLayout is a finished packing: the atlas dimensions and every
// sprite placement.
type AtlasLayout struct {
	Width      int            `json:"width"`
	Height     int            `json:"height"`
	Placements []PlacedSprite `json:"placements"`
}

// UsedArea returns the total area covered by placed sprites.
func (l AtlasLayout) UsedArea() int {
	var total int
	for _, p := range l.Placements {
		total += p.Width * p.Height
	}
	return total
}

// TotalArea returns the atlas area.
func (l AtlasLayout) TotalArea() int {
	return l.Width * l.Height
}

// Efficiency returns the usage percentage.
func (l AtlasLayout) Efficiency() float64 {
	ta := l.TotalArea()
	if ta == 0 {
		return 0
	}
	return (float64(l.UsedArea()) / float64(ta)) * 100.0
}

// Find returns the placement of the sprite with the given name, or
// false when the layout does not contain it.
func (l AtlasLayout) Find(name string) (PlacedSprite, bool) {
	for _, p := range l.Placements {
		if p.Sprite.Name == name {
			return p, true
		}
	}
	return PlacedSprite{}, false
}

// Project ties everything together for save/load.
type Project struct {
	Name     string        `json:"name"`
	Sprites  []Sprite      `json:"sprites"`
	Settings AtlasSettings `json:"settings"`
	Layout   *AtlasLayout  `json:"layout,omitempty"`
}

func NewProject() Project {
	return Project{
		Name:     "Untitled",
		Sprites:  []Sprite{},
		Settings: DefaultSettings(),
	}
}
