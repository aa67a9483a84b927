package models

// DefaultDisplayName greets users who never set a name.
const DefaultDisplayName = "Athlete"

// UserSettings holds user preferences.
type UserSettings struct {
	Theme       string `json:"theme"`
	DisplayName string `json:"displayName"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() UserSettings {
	return UserSettings{
		Theme:       "light",
		DisplayName: DefaultDisplayName,
	}
}

// Normalize replaces invalid or missing values with defaults.
func (s UserSettings) Normalize() UserSettings {
	if s.Theme != "light" && s.Theme != "dark" {
		s.Theme = "light"
	}
	if s.DisplayName == "" {
		s.DisplayName = DefaultDisplayName
	}
	return s
}
