package model

import (
	"time"

	"github.com/google/uuid"
)

// ProjectTemplate represents a reusable project configuration that
// captures sprites and settings but not a built layout.
type ProjectTemplate struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	CreatedAt   string        `json:"created_at"`
	UpdatedAt   string        `json:"updated_at"`
	Sprites     []Sprite      `json:"sprites"`
	Settings    AtlasSettings `json:"settings"`
}

// NewProjectTemplate creates a new template from the given project
// data. It copies sprites and settings but intentionally excludes any
// built layout.
func NewProjectTemplate(name, description string, sprites []Sprite, settings AtlasSettings) ProjectTemplate {
	now := time.Now().UTC().Format(time.RFC3339)
	tmpl := ProjectTemplate{
		ID:          uuid.New().String()[:8],
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
		Settings:    settings,
	}
	tmpl.Sprites = append(tmpl.Sprites, sprites...)
	return tmpl
}

// ApplyToProject creates a fresh project from the template.
func (t ProjectTemplate) ApplyToProject() Project {
	p := NewProject()
	p.Name = t.Name
	p.Sprites = append(p.Sprites, t.Sprites...)
	p.Settings = t.Settings
	return p
}

// TemplateStore holds all saved templates.
type TemplateStore struct {
	Templates []ProjectTemplate `json:"templates"`
}

// NewTemplateStore returns an empty store.
func NewTemplateStore() TemplateStore {
	return TemplateStore{Templates: []ProjectTemplate{}}
}

// Add appends a template to the store.
func (s *TemplateStore) Add(t ProjectTemplate) {
	s.Templates = append(s.Templates, t)
}

// Remove deletes the template with the given ID. Returns true if a
// template was removed.
func (s *TemplateStore) Remove(id string) bool {
	for i, t := range s.Templates {
		if t.ID == id {
			s.Templates = append(s.Templates[:i], s.Templates[i+1:]...)
			return true
		}
	}
	return false
}

// Find returns the template with the given ID.
func (s *TemplateStore) Find(id string) (ProjectTemplate, bool) {
	for _, t := range s.Templates {
		if t.ID == id {
			return t, true
		}
	}
	return ProjectTemplate{}, false
}
