package main

import (
	"net/http"

	"github.com/cantalusto/gym-craft-app/internal/workout"
)

func (app *application) planDraftPOST(w http.ResponseWriter, r *http.Request) {
	var req workout.PlanRequest
	if !readJSON(w, r, &req) {
		return
	}
	plan := app.workoutService.DraftPlan(r.Context(), req)
	writeJSON(w, http.StatusOK, map[string][]workout.PlanDay{"days": plan})
}

func (app *application) planImportPOST(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Days []workout.PlanDay `json:"days"`
	}
	if !readJSON(w, r, &req) {
		return
	}
	if len(req.Days) == 0 {
		badRequest(w, "plan has no days")
		return
	}
	first, err := app.workoutService.ImportPlan(r.Context(), req.Days)
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, first)
}
