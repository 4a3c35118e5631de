package main

import (
	"net/http"

	"github.com/cantalusto/gym-craft-app/internal/workout"
)

func (app *application) scheduleGET(w http.ResponseWriter, r *http.Request) {
	days, err := app.workoutService.Schedule(r.Context())
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, days)
}

func (app *application) scheduleAddPOST(w http.ResponseWriter, r *http.Request) {
	var entry workout.ScheduleEntry
	if !readJSON(w, r, &entry) {
		return
	}
	if entry.Title == "" {
		badRequest(w, "entry title is required")
		return
	}
	if err := app.workoutService.AddScheduleEntry(r.Context(), r.PathValue("day"), entry); err != nil {
		app.serverError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (app *application) scheduleRemoveDELETE(w http.ResponseWriter, r *http.Request) {
	index, ok := parseIntParam(w, r, "index")
	if !ok {
		return
	}
	if err := app.workoutService.RemoveScheduleEntry(r.Context(), r.PathValue("day"), index); err != nil {
		app.serverError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
