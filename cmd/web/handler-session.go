package main

import (
	"net/http"

	"github.com/cantalusto/gym-craft-app/internal/errors"
	"github.com/cantalusto/gym-craft-app/internal/workout"
)

func (app *application) sessionStartPOST(w http.ResponseWriter, r *http.Request) {
	var req struct {
		WorkoutID string `json:"workoutId"`
	}
	if !readJSON(w, r, &req) {
		return
	}
	if err := app.workoutService.StartSession(r.Context(), req.WorkoutID); err != nil {
		if errors.Is(err, workout.ErrNotFound) {
			notFound(w)
			return
		}
		app.serverError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, app.workoutService.Session().Snapshot())
}

func (app *application) sessionGET(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, app.workoutService.Session().Snapshot())
}

func (app *application) sessionFinishSetPOST(w http.ResponseWriter, r *http.Request) {
	result, err := app.workoutService.Session().FinishCurrentSetAndRest(r.Context())
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, struct {
		workout.SetResult
		Session workout.SessionSnapshot `json:"session"`
	}{SetResult: result, Session: app.workoutService.Session().Snapshot()})
}

func (app *application) sessionSkipRestPOST(w http.ResponseWriter, _ *http.Request) {
	engine := app.workoutService.Session()
	engine.SkipRest()
	writeJSON(w, http.StatusOK, engine.Snapshot())
}

// sessionAdjustWeightPOST nudges the upcoming set's weight. The client sends
// either an explicit deltaKg or a direction, in which case the stored
// increment for the current display unit applies.
func (app *application) sessionAdjustWeightPOST(w http.ResponseWriter, r *http.Request) {
	var req struct {
		DeltaKg   *float64 `json:"deltaKg,omitempty"`
		Direction string   `json:"direction,omitempty"`
	}
	if !readJSON(w, r, &req) {
		return
	}

	var deltaKg float64
	switch {
	case req.DeltaKg != nil:
		deltaKg = *req.DeltaKg
	case req.Direction == "up" || req.Direction == "down":
		increments, err := app.workoutService.Increments(r.Context())
		if err != nil {
			app.serverError(w, r, err)
			return
		}
		unit, err := app.workoutService.Unit(r.Context())
		if err != nil {
			app.serverError(w, r, err)
			return
		}
		deltaKg = increments.Kg
		if unit == workout.UnitLb {
			deltaKg = workout.LbToKg(increments.Lb)
		}
		if req.Direction == "down" {
			deltaKg = -deltaKg
		}
	default:
		badRequest(w, "deltaKg or direction is required")
		return
	}

	weight, applied, err := app.workoutService.Session().AdjustCurrentSetWeight(r.Context(), deltaKg)
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"weightKg": weight, "applied": applied})
}

func (app *application) sessionExercisesPUT(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Exercises []workout.Exercise `json:"exercises"`
	}
	if !readJSON(w, r, &req) {
		return
	}
	if err := app.workoutService.Session().EditExercises(r.Context(), req.Exercises); err != nil {
		app.serverError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, app.workoutService.Session().Snapshot())
}

func (app *application) sessionEndPOST(w http.ResponseWriter, _ *http.Request) {
	engine := app.workoutService.Session()
	engine.End()
	writeJSON(w, http.StatusOK, engine.Snapshot())
}
