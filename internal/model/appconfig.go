package model

// AppConfig holds application-wide preferences and default settings.
type AppConfig struct {
	// Default packing settings applied to new projects
	DefaultSpacing    int  `json:"default_spacing"`
	DefaultPowerOfTwo bool `json:"default_power_of_two"`
	DefaultMinWidth   int  `json:"default_min_width"`

	// Application preferences
	RecentProjects []string `json:"recent_projects"`
}

// DefaultAppConfig returns an AppConfig populated with defaults
// matching the values from DefaultSettings().
func DefaultAppConfig() AppConfig {
	defaults := DefaultSettings()
	return AppConfig{
		DefaultSpacing:    defaults.Spacing,
		DefaultPowerOfTwo: defaults.PowerOfTwo,
		DefaultMinWidth:   defaults.MinWidth,
		RecentProjects:    []string{},
	}
}

// ApplyToSettings copies the default values from AppConfig into an
// AtlasSettings struct. This is used when creating a new project so it
// inherits the user's saved defaults.
func (c AppConfig) ApplyToSettings(s *AtlasSettings) {
	s.Spacing = c.DefaultSpacing
	s.PowerOfTwo = c.DefaultPowerOfTwo
	s.MinWidth = c.DefaultMinWidth
}

// AddRecentProject inserts path at the front of the recent list,
// removing duplicates and capping the list at ten entries.
func (c *AppConfig) AddRecentProject(path string) {
	recent := []string{path}
	for _, p := range c.RecentProjects {
		if p != path && len(recent) < 10 {
			recent = append(recent, p)
		}
	}
	c.RecentProjects = recent
}
