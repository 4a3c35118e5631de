package main

import (
	"net/http"
)

func (app *application) routes() *http.ServeMux {
	mux := http.NewServeMux()

	api := func(next http.Handler) http.Handler {
		return app.recoverPanic(app.logRequest(noCache(app.timeout(next))))
	}
	handle := func(pattern string, h http.HandlerFunc) {
		mux.Handle(pattern, api(h))
	}

	handle("GET /api/workouts", app.workoutsGET)
	handle("POST /api/workouts", app.workoutSavePOST)
	handle("GET /api/workouts/{id}", app.workoutGET)
	handle("DELETE /api/workouts/{id}", app.workoutDELETE)
	handle("GET /api/workouts/{id}/stats", app.workoutStatsGET)

	handle("GET /api/schedule", app.scheduleGET)
	handle("POST /api/schedule/{day}", app.scheduleAddPOST)
	handle("DELETE /api/schedule/{day}/{index}", app.scheduleRemoveDELETE)

	handle("GET /api/log", app.logGET)
	handle("POST /api/log", app.logPOST)
	handle("GET /api/exercises/{name}/suggestions", app.suggestionsGET)
	handle("GET /api/exercises/{name}/record", app.recordGET)

	handle("GET /api/reports/weekly", app.reportWeeklyGET)
	handle("GET /api/reports/week/{year}/{week}", app.reportISOWeekGET)
	handle("GET /api/reports/monthly/{year}/{month}", app.reportMonthlyGET)

	handle("GET /api/preferences", app.preferencesGET)
	handle("PUT /api/preferences", app.preferencesPUT)

	handle("POST /api/plan/draft", app.planDraftPOST)
	handle("POST /api/plan/import", app.planImportPOST)

	handle("POST /api/session/start", app.sessionStartPOST)
	handle("GET /api/session", app.sessionGET)
	handle("POST /api/session/finish-set", app.sessionFinishSetPOST)
	handle("POST /api/session/skip-rest", app.sessionSkipRestPOST)
	handle("POST /api/session/adjust-weight", app.sessionAdjustWeightPOST)
	handle("PUT /api/session/exercises", app.sessionExercisesPUT)
	handle("POST /api/session/end", app.sessionEndPOST)

	handle("GET /api/healthy", app.healthy)

	return mux
}
