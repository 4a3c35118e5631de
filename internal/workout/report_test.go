package workout

import (
	"strings"
	"testing"
	"time"
)

func TestISOWeekKnownDates(t *testing.T) {
	tests := []struct {
		date     time.Time
		year     int
		week     int
	}{
		{time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC), 2024, 1},
		{time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC), 2023, 52},
		{time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC), 2020, 53},
		{time.Date(2024, 3, 10, 23, 59, 0, 0, time.UTC), 2024, 10},
	}
	for _, tt := range tests {
		year, week := ISOWeek(tt.date)
		if year != tt.year || week != tt.week {
			t.Errorf("ISOWeek(%s) = %d-W%d, want %d-W%d", tt.date.Format(dateLayout), year, week, tt.year, tt.week)
		}
	}
}

func TestISOWeekStart(t *testing.T) {
	tests := []struct {
		year  int
		week  int
		start time.Time
	}{
		{2024, 1, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		{2023, 1, time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC)},
		{2024, 10, time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		if got := isoWeekStart(tt.year, tt.week); !got.Equal(tt.start) {
			t.Errorf("isoWeekStart(%d, %d) = %s, want %s", tt.year, tt.week, got, tt.start)
		}
	}
}

func TestISOWeekReportRange(t *testing.T) {
	entries := []SetLogEntry{
		{Timestamp: time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC), ExerciseName: "Squat", Reps: 5, WeightKg: 100},
		{Timestamp: time.Date(2024, 1, 7, 20, 0, 0, 0, time.UTC), ExerciseName: "Squat", Reps: 5, WeightKg: 100},
		{Timestamp: time.Date(2024, 1, 8, 8, 0, 0, 0, time.UTC), ExerciseName: "Squat", Reps: 5, WeightKg: 100},
	}

	report := ISOWeekReport(entries, 2024, 1)
	if report.Year != 2024 || report.Week != 1 {
		t.Errorf("expected week metadata, got %d-W%d", report.Year, report.Week)
	}
	if report.Total.Sets != 2 {
		t.Errorf("expected 2 sets inside the week, got %d", report.Total.Sets)
	}
	// Jan 8 is the Monday of the next week; had it leaked in, the Monday
	// bucket would count two sets.
	if got := report.Days["Monday"].Sets; got != 1 {
		t.Errorf("expected 1 set in the Monday bucket, got %d", got)
	}
	if got := report.Days["Sunday"].Sets; got != 1 {
		t.Errorf("expected 1 set in the Sunday bucket, got %d", got)
	}
}

func TestWeeklyReportTrailingWindow(t *testing.T) {
	now := time.Date(2024, 3, 10, 15, 0, 0, 0, time.UTC)
	entries := []SetLogEntry{
		{Timestamp: time.Date(2024, 3, 4, 8, 0, 0, 0, time.UTC), ExerciseName: "Squat", Reps: 5, WeightKg: 100},
		{Timestamp: time.Date(2024, 3, 10, 8, 0, 0, 0, time.UTC), ExerciseName: "Squat", Reps: 5, WeightKg: 100},
		{Timestamp: time.Date(2024, 3, 3, 8, 0, 0, 0, time.UTC), ExerciseName: "Squat", Reps: 5, WeightKg: 100},
	}

	report := WeeklyReport(entries, now, 0)
	if report.Total.Sets != 2 {
		t.Errorf("expected the window Mar 4 to Mar 10, got %d sets", report.Total.Sets)
	}

	previous := WeeklyReport(entries, now, -1)
	if previous.Total.Sets != 1 {
		t.Errorf("expected 1 set in the previous window, got %d", previous.Total.Sets)
	}
	if got := dayKey(previous.RangeEnd); got != "2024-03-03" {
		t.Errorf("expected previous window to end Mar 3, got %s", got)
	}
}

func TestMonthlyReportCalendarBuckets(t *testing.T) {
	entries := []SetLogEntry{
		{Timestamp: time.Date(2024, 1, 31, 23, 0, 0, 0, time.UTC), ExerciseName: "Squat", Reps: 5, WeightKg: 100},
		{Timestamp: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), ExerciseName: "Squat", Reps: 5, WeightKg: 100},
		{Timestamp: time.Date(2024, 2, 29, 12, 0, 0, 0, time.UTC), ExerciseName: "Squat", Reps: 5, WeightKg: 100},
	}

	report := MonthlyReport(entries, 2024, time.February)
	if report.Total.Sets != 2 {
		t.Errorf("expected 2 sets in February, got %d", report.Total.Sets)
	}
	if _, ok := report.Days["2024-02-29"]; !ok {
		t.Error("leap day missing from the report")
	}
}

func TestReportVolume(t *testing.T) {
	entries := []SetLogEntry{
		{Timestamp: day(4), ExerciseName: "Bench Press", Reps: 5, WeightKg: 100},
		{Timestamp: day(4), ExerciseName: "Bench Press", Reps: 3, WeightKg: 80},
		{Timestamp: day(5), ExerciseName: "Squat", Reps: 4, WeightKg: 50},
	}

	report := WeeklyReport(entries, day(10), 0)
	if report.Total.VolumeKg != 940 {
		t.Errorf("expected 940 kg volume, got %v", report.Total.VolumeKg)
	}
	if got := report.Days["Monday"].Exercises["Bench Press"]; got != 2 {
		t.Errorf("expected 2 bench press sets on Monday, got %d", got)
	}
}

func TestReportFormatText(t *testing.T) {
	entries := []SetLogEntry{
		{Timestamp: day(4), ExerciseName: "Bench Press", Reps: 5, WeightKg: 100},
	}
	text := WeeklyReport(entries, day(10), 0).FormatText()
	if !strings.Contains(text, "Monday: 1 sets, 5 reps, 500.0 kg volume") {
		t.Errorf("day line missing:\n%s", text)
	}
	if !strings.Contains(text, "total: 1 sets, 5 reps, 500.0 kg volume") {
		t.Errorf("total line missing:\n%s", text)
	}
}
