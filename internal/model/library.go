package model

// SpriteLibrary is a user-wide collection of reusable sprites, kept
// separately from any single project so frequently used assets can be
// pulled into new atlases without re-importing.
type SpriteLibrary struct {
	Sprites []Sprite `json:"sprites"`
}

// DefaultLibrary returns an empty library.
func DefaultLibrary() SpriteLibrary {
	return SpriteLibrary{Sprites: []Sprite{}}
}

// Add appends a sprite to the library.
func (l *SpriteLibrary) Add(s Sprite) {
	l.Sprites = append(l.Sprites, s)
}

// Remove deletes the sprite with the given ID. It returns true when a
// sprite was removed.
func (l *SpriteLibrary) Remove(id string) bool {
	for i, s := range l.Sprites {
		if s.ID == id {
			l.Sprites = append(l.Sprites[:i], l.Sprites[i+1:]...)
			return true
		}
	}
	return false
}

// Find returns the sprite with the given ID.
func (l SpriteLibrary) Find(id string) (Sprite, bool) {
	for _, s := range l.Sprites {
		if s.ID == id {
			return s, true
		}
	}
	return Sprite{}, false
}
