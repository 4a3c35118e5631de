// Package workout contains the core of the tracker: the workout and schedule
// model, the append-only performance log with its analytics, and the session
// engine that drives a user through an exercise plan.
package workout

import (
	"math"
	"time"
)

// Unit is the display unit for weights. Weights are always stored in
// kilograms; pounds exist only at the input/output boundary.
type Unit string

const (
	UnitKg Unit = "kg"
	UnitLb Unit = "lb"
)

// lbPerKg is the conversion factor applied at presentation boundaries.
const lbPerKg = 2.20462

// KgToLb converts a weight in kilograms to pounds for display.
func KgToLb(kg float64) float64 {
	return kg * lbPerKg
}

// LbToKg converts user input in pounds back to the canonical kilograms.
func LbToKg(lb float64) float64 {
	return lb / lbPerKg
}

// DefaultRestSeconds is used whenever a rest duration is missing or invalid.
const DefaultRestSeconds = 60

// Exercise is one entry of a workout plan: how many sets to perform, the rep
// target per set and the rest between sets.
//
// WeightPerSet always has exactly Sets elements; every mutation of Sets goes
// through SetSetsCount which restores the invariant.
type Exercise struct {
	ID           string    `json:"id,omitempty"`
	Name         string    `json:"name"`
	Sets         int       `json:"sets"`
	TargetReps   int       `json:"reps"`
	RestSeconds  int       `json:"rest"`
	BaseWeightKg float64   `json:"weight"`
	WeightPerSet []float64 `json:"weightPerSet,omitempty"`
}

// EnsureWeights repairs WeightPerSet when it is absent or mis-sized relative
// to Sets by filling every slot with BaseWeightKg.
func (e *Exercise) EnsureWeights() {
	sets := e.Sets
	if sets < 1 {
		sets = 1
	}
	if len(e.WeightPerSet) == sets {
		return
	}
	weights := make([]float64, sets)
	for i := range weights {
		weights[i] = e.BaseWeightKg
	}
	e.WeightPerSet = weights
}

// SetSetsCount changes the number of sets and resizes WeightPerSet:
// truncated from the tail or padded with BaseWeightKg, never reordered.
func (e *Exercise) SetSetsCount(sets int) {
	if sets < 0 {
		sets = 0
	}
	e.Sets = sets
	switch {
	case len(e.WeightPerSet) > sets:
		e.WeightPerSet = e.WeightPerSet[:sets]
	case len(e.WeightPerSet) < sets:
		for len(e.WeightPerSet) < sets {
			e.WeightPerSet = append(e.WeightPerSet, e.BaseWeightKg)
		}
	}
}

// WeightForSet returns the weight for the given 1-based set index, repairing
// WeightPerSet first when needed. Out-of-range indices are clamped.
func (e *Exercise) WeightForSet(setIndex int) float64 {
	e.EnsureWeights()
	idx := setIndex - 1
	if idx < 0 {
		idx = 0
	}
	if idx > len(e.WeightPerSet)-1 {
		idx = len(e.WeightPerSet) - 1
	}
	return e.WeightPerSet[idx]
}

// EffectiveRestSeconds returns the rest to apply after a set, falling back to
// the given default when the exercise has no usable rest value.
func (e *Exercise) EffectiveRestSeconds(defaultRest int) int {
	if e.RestSeconds > 0 {
		return e.RestSeconds
	}
	if defaultRest > 0 {
		return defaultRest
	}
	return DefaultRestSeconds
}

// Workout is a named, ordered exercise plan. The ID is assigned on creation
// and stable for the workout's lifetime.
type Workout struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Exercises []Exercise `json:"exercises"`
}

// ScheduleEntry links a workout into a calendar day.
type ScheduleEntry struct {
	Title     string `json:"title"`
	WorkoutID string `json:"workoutId"`
}

// ScheduleDay holds the planned workouts for one weekday.
type ScheduleDay struct {
	Day     string          `json:"day"`
	Entries []ScheduleEntry `json:"entries"`
}

// Weekdays lists the schedule days in order, week starting Monday.
func Weekdays() []string {
	return []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}
}

// SetLogEntry is one performed set in the append-only performance log.
// Entries are never mutated or deleted; every derived statistic is a pure
// function over the log, so editing an entry in place would silently
// desynchronize reports.
//
// ExerciseName, not an exercise ID, is the join key so that history survives
// renamed or recreated exercises. WorkoutID is nil for sets logged outside
// any saved workout.
type SetLogEntry struct {
	Timestamp    time.Time `json:"date"`
	WorkoutID    *string   `json:"workoutId"`
	ExerciseName string    `json:"exerciseName"`
	SetIndex     int       `json:"setIndex"`
	Reps         int       `json:"reps"`
	WeightKg     float64   `json:"weightKg"`
}

// normalized coerces missing or out-of-range fields to safe defaults.
func (e SetLogEntry) normalized(now time.Time) SetLogEntry {
	if e.Timestamp.IsZero() {
		e.Timestamp = now
	}
	if e.SetIndex < 1 {
		e.SetIndex = 1
	}
	if e.Reps < 0 {
		e.Reps = 0
	}
	if e.WeightKg < 0 || math.IsNaN(e.WeightKg) || math.IsInf(e.WeightKg, 0) {
		e.WeightKg = 0
	}
	return e
}

// PersonalRecord is the heaviest logged set for an exercise. Derived, never
// stored.
type PersonalRecord struct {
	WeightKg float64   `json:"weightKg"`
	Reps     int       `json:"reps"`
	Date     time.Time `json:"date"`
}

// Suggestion is a recent weight used for an exercise, offered as a starting
// point for the next set.
type Suggestion struct {
	Date     time.Time `json:"date"`
	WeightKg float64   `json:"weightKg"`
}

// RepRange is one of the fixed repetition bands used to filter weight
// suggestions by training intent.
type RepRange string

const (
	RepRangeStrength    RepRange = "1-5"
	RepRangeHypertrophy RepRange = "6-12"
	RepRangeEndurance   RepRange = "13+"
)

// Contains reports whether reps falls into the band. The zero RepRange
// matches everything.
func (r RepRange) Contains(reps int) bool {
	switch r {
	case RepRangeStrength:
		return reps >= 1 && reps <= 5
	case RepRangeHypertrophy:
		return reps >= 6 && reps <= 12
	case RepRangeEndurance:
		return reps >= 13
	default:
		return true
	}
}

// Increments are the step sizes applied by the in-session weight +/-
// controls, one per display unit.
type Increments struct {
	Kg float64 `json:"kg"`
	Lb float64 `json:"lb"`
}

// DefaultIncrements returns the step sizes used when none are stored.
func DefaultIncrements() Increments {
	return Increments{Kg: 2.5, Lb: 5}
}

// roundTenth rounds a weight to one decimal, the resolution of the weight
// adjustment controls.
func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
