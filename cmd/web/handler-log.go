package main

import (
	"net/http"

	"github.com/cantalusto/gym-craft-app/internal/workout"
)

func (app *application) logGET(w http.ResponseWriter, r *http.Request) {
	entries, err := app.workoutService.Log(r.Context())
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	if entries == nil {
		entries = []workout.SetLogEntry{}
	}
	writeJSON(w, http.StatusOK, entries)
}

func (app *application) logPOST(w http.ResponseWriter, r *http.Request) {
	var entry workout.SetLogEntry
	if !readJSON(w, r, &entry) {
		return
	}
	if entry.ExerciseName == "" {
		badRequest(w, "exercise name is required")
		return
	}
	stored, err := app.workoutService.LogSet(r.Context(), entry)
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, stored)
}

// workoutIDScope reads the optional workoutId query parameter. Absent means
// sets logged outside any workout.
func workoutIDScope(r *http.Request) *string {
	if id := r.URL.Query().Get("workoutId"); id != "" {
		return &id
	}
	return nil
}

func (app *application) suggestionsGET(w http.ResponseWriter, r *http.Request) {
	const defaultLimit = 5
	suggestions, err := app.workoutService.SuggestedWeights(
		r.Context(),
		r.PathValue("name"),
		workoutIDScope(r),
		workout.RepRange(r.URL.Query().Get("repRange")),
		parseQueryInt(r, "limit", defaultLimit),
	)
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, suggestions)
}

func (app *application) recordGET(w http.ResponseWriter, r *http.Request) {
	record, ok, err := app.workoutService.PersonalRecord(r.Context(), r.PathValue("name"), workoutIDScope(r))
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	if !ok {
		notFound(w)
		return
	}
	writeJSON(w, http.StatusOK, record)
}
