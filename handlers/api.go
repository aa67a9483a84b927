package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/LianHaeming/workoutplanner/models"
	"github.com/LianHaeming/workoutplanner/planner"
)

// HandleGetSchedule returns the whole schedule as JSON.
func (d *Deps) HandleGetSchedule(w http.ResponseWriter, r *http.Request) {
	jsonOK(w, d.Planner.Schedule())
}

// HandleGetCatalog returns the exercise catalog.
func (d *Deps) HandleGetCatalog(w http.ResponseWriter, r *http.Request) {
	jsonOK(w, d.Planner.Catalog())
}

// HandleGetSummary returns the seven day cards and week totals.
func (d *Deps) HandleGetSummary(w http.ResponseWriter, r *http.Request) {
	jsonOK(w, d.Planner.Schedule().Week())
}

// AddExerciseRequest is the JSON body for POST exercise.
type AddExerciseRequest struct {
	Category string `json:"category"`
	Name     string `json:"name"`
}

// HandleAddExercise plans a catalog exercise on a day.
func (d *Deps) HandleAddExercise(w http.ResponseWriter, r *http.Request) {
	day, ok := pathDay(w, r)
	if !ok {
		return
	}

	var req AddExerciseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if !d.Planner.Catalog().Contains(req.Category, req.Name) {
		jsonError(w, "Exercise is not in the catalog", http.StatusBadRequest)
		return
	}

	entry, err := d.Planner.AddExercise(r.Context(), day, req.Category, req.Name)
	if !d.commandResult(w, err) {
		return
	}
	jsonOK(w, map[string]any{"success": true, "persisted": err == nil, "exercise": entry})
}

// HandleDeleteExercise removes an entry from a day.
func (d *Deps) HandleDeleteExercise(w http.ResponseWriter, r *http.Request) {
	day, id, ok := pathEntry(w, r)
	if !ok {
		return
	}
	err := d.Planner.RemoveExercise(r.Context(), day, id)
	if !d.commandResult(w, err) {
		return
	}
	jsonOK(w, map[string]any{"success": true, "persisted": err == nil})
}

// HandleToggleExercise flips an entry's completed flag.
func (d *Deps) HandleToggleExercise(w http.ResponseWriter, r *http.Request) {
	day, id, ok := pathEntry(w, r)
	if !ok {
		return
	}
	err := d.Planner.ToggleComplete(r.Context(), day, id)
	if !d.commandResult(w, err) {
		return
	}
	resp := map[string]any{"success": true, "persisted": err == nil}
	if e, found := d.Planner.Schedule().Find(day, id); found {
		resp["exercise"] = e
	}
	jsonOK(w, resp)
}

// PatchExerciseRequest is the JSON body for PATCH exercise. Value is the
// raw text from the input; unparseable numbers become 0.
type PatchExerciseRequest struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

// HandlePatchExercise sets one numeric field of an entry.
func (d *Deps) HandlePatchExercise(w http.ResponseWriter, r *http.Request) {
	day, id, ok := pathEntry(w, r)
	if !ok {
		return
	}

	var req PatchExerciseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	field, ok := models.ParseField(req.Field)
	if !ok {
		jsonError(w, "field must be one of sets, reps, duration", http.StatusBadRequest)
		return
	}

	err := d.Planner.UpdateField(r.Context(), day, id, field, req.Value)
	if !d.commandResult(w, err) {
		return
	}
	resp := map[string]any{"success": true, "persisted": err == nil}
	if e, found := d.Planner.Schedule().Find(day, id); found {
		resp["exercise"] = e
	}
	jsonOK(w, resp)
}

// HandleHealth reports liveness.
func (d *Deps) HandleHealth(w http.ResponseWriter, r *http.Request) {
	jsonOK(w, map[string]string{"status": "ok"})
}

// commandResult reports whether the response should carry on as a success.
// Persist failures still succeed since the in-memory state moved on.
func (d *Deps) commandResult(w http.ResponseWriter, err error) bool {
	if err == nil || errors.Is(err, planner.ErrPersist) {
		return true
	}
	jsonError(w, "Command failed", http.StatusInternalServerError)
	return false
}

func pathDay(w http.ResponseWriter, r *http.Request) (models.Day, bool) {
	day, ok := models.ParseDay(chi.URLParam(r, "day"))
	if !ok {
		jsonError(w, "Unknown day", http.StatusNotFound)
	}
	return day, ok
}

func pathEntry(w http.ResponseWriter, r *http.Request) (models.Day, int64, bool) {
	day, ok := pathDay(w, r)
	if !ok {
		return "", 0, false
	}
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		jsonError(w, "Exercise not found", http.StatusNotFound)
		return "", 0, false
	}
	return day, id, true
}

func jsonOK(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(data)
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
