package workout

import (
	"strings"
)

// Analytics functions are pure over the performance log. They take the full
// entry slice so callers decide when to hit storage.

// Suggestions returns recent weights for an exercise, most recent first,
// capped at limit.
//
// When scope is non-nil only sets logged against that workout count, and a
// nil scope matches only sets logged outside any workout. repRange narrows
// the result to sets in that band; the zero RepRange matches every set.
func Suggestions(entries []SetLogEntry, exerciseName string, scope *string, repRange RepRange, limit int) []Suggestion {
	if limit <= 0 {
		return []Suggestion{}
	}
	var matched []SetLogEntry
	for _, e := range entries {
		if !strings.EqualFold(e.ExerciseName, exerciseName) {
			continue
		}
		if !sameScope(e.WorkoutID, scope) {
			continue
		}
		if !repRange.Contains(e.Reps) {
			continue
		}
		matched = append(matched, e)
	}
	if len(matched) > limit {
		matched = matched[len(matched)-limit:]
	}
	suggestions := make([]Suggestion, 0, len(matched))
	for i := len(matched) - 1; i >= 0; i-- {
		suggestions = append(suggestions, Suggestion{Date: matched[i].Timestamp, WeightKg: matched[i].WeightKg})
	}
	return suggestions
}

func sameScope(entryID, scope *string) bool {
	if scope == nil {
		return entryID == nil
	}
	return entryID != nil && *entryID == *scope
}

// Record returns the personal record for an exercise: the heaviest logged
// set, with ties resolved in favor of the earliest entry so a record date
// never drifts when the same weight is repeated. A nil workoutID considers
// the whole log; otherwise only sets from that workout count.
//
// ok is false when the exercise has no matching history.
func Record(entries []SetLogEntry, exerciseName string, workoutID *string) (PersonalRecord, bool) {
	var record PersonalRecord
	found := false
	for _, e := range entries {
		if !strings.EqualFold(e.ExerciseName, exerciseName) {
			continue
		}
		if workoutID != nil && (e.WorkoutID == nil || *e.WorkoutID != *workoutID) {
			continue
		}
		if !found || e.WeightKg > record.WeightKg {
			record = PersonalRecord{WeightKg: e.WeightKg, Reps: e.Reps, Date: e.Timestamp}
			found = true
		}
	}
	return record, found
}

// ExerciseStats summarizes one exercise's history within a workout.
type ExerciseStats struct {
	PRKg          float64 `json:"prKg"`
	TotalVolumeKg float64 `json:"totalVolumeKg"`
	Sets          int     `json:"sets"`
}

// WorkoutStats aggregates the log per exercise for one workout: personal
// record, lifetime volume and set count.
func WorkoutStats(entries []SetLogEntry, workoutID string) map[string]ExerciseStats {
	stats := make(map[string]ExerciseStats)
	for _, e := range entries {
		if e.WorkoutID == nil || *e.WorkoutID != workoutID {
			continue
		}
		s := stats[e.ExerciseName]
		if e.WeightKg > s.PRKg {
			s.PRKg = e.WeightKg
		}
		s.TotalVolumeKg += e.WeightKg * float64(e.Reps)
		s.Sets++
		stats[e.ExerciseName] = s
	}
	return stats
}
