package main

import (
	"net/http"
	"time"

	"github.com/cantalusto/gym-craft-app/internal/workout"
)

// writeReport renders a report as JSON, or as plain text with ?format=text.
func writeReport(w http.ResponseWriter, r *http.Request, report workout.Report) {
	if r.URL.Query().Get("format") == "text" {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte(report.FormatText()))
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (app *application) reportWeeklyGET(w http.ResponseWriter, r *http.Request) {
	offset := parseQueryInt(r, "offset", 0)
	report, err := app.workoutService.WeeklyReport(r.Context(), time.Now(), offset)
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	writeReport(w, r, report)
}

func (app *application) reportISOWeekGET(w http.ResponseWriter, r *http.Request) {
	year, ok := parseIntParam(w, r, "year")
	if !ok {
		return
	}
	week, ok := parseIntParam(w, r, "week")
	if !ok {
		return
	}
	if week < 1 || week > 53 {
		badRequest(w, "week must be between 1 and 53")
		return
	}
	report, err := app.workoutService.ISOWeekReport(r.Context(), year, week)
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	writeReport(w, r, report)
}

func (app *application) reportMonthlyGET(w http.ResponseWriter, r *http.Request) {
	year, ok := parseIntParam(w, r, "year")
	if !ok {
		return
	}
	month, ok := parseIntParam(w, r, "month")
	if !ok {
		return
	}
	if month < 1 || month > 12 {
		badRequest(w, "month must be between 1 and 12")
		return
	}
	report, err := app.workoutService.MonthlyReport(r.Context(), year, time.Month(month))
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	writeReport(w, r, report)
}
