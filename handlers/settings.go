package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
)

// HandleGetSettings returns settings as JSON.
func (d *Deps) HandleGetSettings(w http.ResponseWriter, r *http.Request) {
	jsonOK(w, d.Settings.Get(r.Context()))
}

// UpdateSettingsRequest is the JSON body for PUT settings.
type UpdateSettingsRequest struct {
	Theme       *string `json:"theme"`
	DisplayName *string `json:"displayName"`
}

// HandleUpdateSettings saves settings changes.
func (d *Deps) HandleUpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req UpdateSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	settings := d.Settings.Get(r.Context())

	if req.Theme != nil {
		if *req.Theme != "light" && *req.Theme != "dark" {
			jsonError(w, "theme must be 'light' or 'dark'", http.StatusBadRequest)
			return
		}
		settings.Theme = *req.Theme
	}

	if req.DisplayName != nil {
		name := strings.TrimSpace(*req.DisplayName)
		if name == "" || utf8.RuneCountInString(name) > 30 {
			jsonError(w, "displayName must be 1-30 characters", http.StatusBadRequest)
			return
		}
		settings.DisplayName = name
	}

	if err := d.Settings.Save(r.Context(), settings); err != nil {
		d.logger().Error("could not save settings", zap.Error(err))
		jsonError(w, "Failed to save settings", http.StatusInternalServerError)
		return
	}

	jsonOK(w, map[string]any{"success": true})
}
