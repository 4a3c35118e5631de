package main

import (
	"net/http"

	"github.com/cantalusto/gym-craft-app/internal/workout"
)

// preferences is the wire shape of GET and PUT /api/preferences. PUT fields
// are optional so a client can change one preference at a time.
type preferences struct {
	Unit               *workout.Unit       `json:"unit,omitempty"`
	Increments         *workout.Increments `json:"increments,omitempty"`
	DefaultRestSeconds *int                `json:"defaultRestSeconds,omitempty"`
}

func (app *application) preferencesGET(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	unit, err := app.workoutService.Unit(ctx)
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	increments, err := app.workoutService.Increments(ctx)
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	rest, err := app.workoutService.DefaultRestSeconds(ctx)
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, preferences{
		Unit:               &unit,
		Increments:         &increments,
		DefaultRestSeconds: &rest,
	})
}

func (app *application) preferencesPUT(w http.ResponseWriter, r *http.Request) {
	var prefs preferences
	if !readJSON(w, r, &prefs) {
		return
	}
	ctx := r.Context()
	if prefs.Unit != nil {
		if err := app.workoutService.SetUnit(ctx, *prefs.Unit); err != nil {
			app.serverError(w, r, err)
			return
		}
	}
	if prefs.Increments != nil {
		if err := app.workoutService.SetIncrements(ctx, *prefs.Increments); err != nil {
			app.serverError(w, r, err)
			return
		}
	}
	if prefs.DefaultRestSeconds != nil {
		if err := app.workoutService.SetDefaultRestSeconds(ctx, *prefs.DefaultRestSeconds); err != nil {
			app.serverError(w, r, err)
			return
		}
	}
	app.preferencesGET(w, r)
}
