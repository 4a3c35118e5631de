package main

import (
	"net/http"

	"github.com/cantalusto/gym-craft-app/internal/errors"
	"github.com/cantalusto/gym-craft-app/internal/workout"
)

func (app *application) workoutsGET(w http.ResponseWriter, r *http.Request) {
	workouts, err := app.workoutService.Workouts(r.Context())
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	if workouts == nil {
		workouts = []workout.Workout{}
	}
	writeJSON(w, http.StatusOK, workouts)
}

func (app *application) workoutSavePOST(w http.ResponseWriter, r *http.Request) {
	var candidate workout.Workout
	if !readJSON(w, r, &candidate) {
		return
	}
	if candidate.Name == "" {
		badRequest(w, "workout name is required")
		return
	}
	saved, err := app.workoutService.SaveWorkout(r.Context(), candidate)
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

func (app *application) workoutGET(w http.ResponseWriter, r *http.Request) {
	found, err := app.workoutService.Workout(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, workout.ErrNotFound) {
			notFound(w)
			return
		}
		app.serverError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, found)
}

func (app *application) workoutDELETE(w http.ResponseWriter, r *http.Request) {
	if err := app.workoutService.DeleteWorkout(r.Context(), r.PathValue("id")); err != nil {
		app.serverError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (app *application) workoutStatsGET(w http.ResponseWriter, r *http.Request) {
	stats, err := app.workoutService.Stats(r.Context(), r.PathValue("id"))
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
