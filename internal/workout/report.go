package workout

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// dateLayout keys monthly report buckets. All bucketing happens on the UTC
// calendar date so a report never shifts with the server timezone.
const dateLayout = "2006-01-02"

// ReportBucket aggregates the sets of one calendar day.
type ReportBucket struct {
	Sets      int            `json:"sets"`
	Reps      int            `json:"reps"`
	VolumeKg  float64        `json:"volumeKg"`
	Exercises map[string]int `json:"exercises"`
}

// Report is an aggregation of the performance log over a date range,
// bucketed per day. Weekly reports key buckets by weekday label, monthly
// reports by calendar date. Volume is weight times reps summed in
// kilograms.
type Report struct {
	RangeStart time.Time               `json:"rangeStart"`
	RangeEnd   time.Time               `json:"rangeEnd"`
	Year       int                     `json:"year,omitempty"`
	Week       int                     `json:"week,omitempty"`
	Days       map[string]ReportBucket `json:"days"`
	Total      ReportBucket            `json:"total"`

	// orderedKeys holds every bucket key of the range in chronological
	// order, used for text rendering. Weekday labels do not sort
	// lexicographically so map iteration cannot recover the order.
	orderedKeys []string
}

func dayKey(t time.Time) string {
	return t.UTC().Format(dateLayout)
}

// weekdayKey labels the buckets of weekly reports. The seven-day ranges
// those reports cover make the label unambiguous within one report.
func weekdayKey(t time.Time) string {
	return t.UTC().Weekday().String()
}

func buildReport(entries []SetLogEntry, start, end time.Time, keyFn func(time.Time) string) Report {
	report := Report{
		RangeStart: start,
		RangeEnd:   end,
		Days:       make(map[string]ReportBucket),
		Total:      ReportBucket{Exercises: make(map[string]int)},
	}
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		report.orderedKeys = append(report.orderedKeys, keyFn(d))
	}
	startKey, endKey := dayKey(start), dayKey(end)
	for _, e := range entries {
		date := dayKey(e.Timestamp)
		if date < startKey || date > endKey {
			continue
		}
		key := keyFn(e.Timestamp)
		bucket, ok := report.Days[key]
		if !ok {
			bucket = ReportBucket{Exercises: make(map[string]int)}
		}
		addSet(&bucket, e)
		report.Days[key] = bucket
		addSet(&report.Total, e)
	}
	return report
}

func addSet(b *ReportBucket, e SetLogEntry) {
	b.Sets++
	b.Reps += e.Reps
	b.VolumeKg += e.WeightKg * float64(e.Reps)
	b.Exercises[e.ExerciseName]++
}

// WeeklyReport aggregates the trailing seven-day window ending at now plus
// offset weeks. Offset zero is the window ending today; negative offsets
// step back one window at a time.
func WeeklyReport(entries []SetLogEntry, now time.Time, offset int) Report {
	end := midnightUTC(now).AddDate(0, 0, offset*7)
	start := end.AddDate(0, 0, -6)
	return buildReport(entries, start, end, weekdayKey)
}

// ISOWeekReport aggregates one ISO-8601 week, Monday through Sunday.
func ISOWeekReport(entries []SetLogEntry, year, week int) Report {
	start := isoWeekStart(year, week)
	end := start.AddDate(0, 0, 6)
	report := buildReport(entries, start, end, weekdayKey)
	report.Year = year
	report.Week = week
	return report
}

// MonthlyReport aggregates one calendar month.
func MonthlyReport(entries []SetLogEntry, year int, month time.Month) Report {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)
	return buildReport(entries, start, end, dayKey)
}

// ISOWeek returns the ISO-8601 year and week number of t: shift to the
// Thursday of t's week, then count seven-day blocks since that year's
// January 1st.
func ISOWeek(t time.Time) (year, week int) {
	d := midnightUTC(t)
	thursday := d.AddDate(0, 0, 4-isoWeekday(d))
	jan1 := time.Date(thursday.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	days := thursday.Sub(jan1).Hours() / 24
	return thursday.Year(), int(math.Ceil((days + 1) / 7))
}

// isoWeekStart returns the Monday beginning the given ISO week: January 1st
// advanced by whole weeks, then snapped to the nearest Monday.
func isoWeekStart(year, week int) time.Time {
	simple := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, (week-1)*7)
	wd := int(simple.Weekday())
	if wd <= 4 {
		return simple.AddDate(0, 0, 1-wd)
	}
	return simple.AddDate(0, 0, 8-wd)
}

// isoWeekday maps Monday to 1 through Sunday to 7.
func isoWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}

func midnightUTC(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// FormatText renders the report as a plain-text summary, one line per
// training day in chronological order.
func (r Report) FormatText() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s to %s\n", dayKey(r.RangeStart), dayKey(r.RangeEnd))
	for _, key := range r.orderedKeys {
		bucket, ok := r.Days[key]
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "%s: %d sets, %d reps, %.1f kg volume\n", key, bucket.Sets, bucket.Reps, bucket.VolumeKg)
	}
	fmt.Fprintf(&b, "total: %d sets, %d reps, %.1f kg volume\n", r.Total.Sets, r.Total.Reps, r.Total.VolumeKg)
	return b.String()
}
