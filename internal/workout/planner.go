package workout

import (
	"context"
	"fmt"
	"strings"
)

// PlanRequest describes what kind of weekly plan to draft.
type PlanRequest struct {
	Goal         string   `json:"goal"`
	DaysPerWeek  int      `json:"daysPerWeek"`
	MuscleGroups []string `json:"muscleGroups"`
}

// PlanExercise is one drafted exercise before it becomes part of a saved
// workout.
type PlanExercise struct {
	Name        string `json:"name"`
	Sets        int    `json:"sets"`
	Reps        int    `json:"reps"`
	RestSeconds int    `json:"rest"`
}

// PlanDay assigns a muscle group and its exercises to a weekday.
type PlanDay struct {
	Day         string         `json:"day"`
	MuscleGroup string         `json:"muscleGroup"`
	Exercises   []PlanExercise `json:"exercises"`
}

// Training goals. Anything unrecognized is treated as aesthetics.
const (
	GoalStrength   = "strength"
	GoalAesthetics = "aesthetics"
)

// exerciseCatalog backs the local planner, three movements per muscle group.
var exerciseCatalog = map[string][]string{
	"chest":     {"Bench Press", "Incline Dumbbell Press", "Cable Fly"},
	"back":      {"Deadlift", "Barbell Row", "Lat Pulldown"},
	"legs":      {"Squat", "Romanian Deadlift", "Leg Press"},
	"shoulders": {"Overhead Press", "Lateral Raise", "Face Pull"},
	"arms":      {"Barbell Curl", "Triceps Pushdown", "Hammer Curl"},
	"core":      {"Plank", "Hanging Leg Raise", "Cable Crunch"},
}

// defaultMuscleGroups orders the rotation used when the request names none.
var defaultMuscleGroups = []string{"chest", "back", "legs", "shoulders", "arms", "core"}

// LocalPlan drafts a weekly plan without any external service. Muscle
// groups rotate round-robin over the requested training days, and the goal
// fixes the set scheme: strength gets 5x5 with long rests, aesthetics gets
// 3x10 with short rests.
func LocalPlan(req PlanRequest) []PlanDay {
	days := req.DaysPerWeek
	if days < 1 {
		days = 3
	}
	if days > len(Weekdays()) {
		days = len(Weekdays())
	}
	groups := req.MuscleGroups
	if len(groups) == 0 {
		groups = defaultMuscleGroups
	}

	sets, reps, rest := 3, 10, 60
	if strings.EqualFold(req.Goal, GoalStrength) {
		sets, reps, rest = 5, 5, 120
	}

	weekdays := Weekdays()
	plan := make([]PlanDay, 0, days)
	for i := 0; i < days; i++ {
		group := groups[i%len(groups)]
		day := PlanDay{Day: weekdays[i], MuscleGroup: group}
		names, ok := exerciseCatalog[strings.ToLower(group)]
		if !ok {
			names = []string{titleCase(group) + " Machine", titleCase(group) + " Isolation"}
		}
		for _, name := range names {
			day.Exercises = append(day.Exercises, PlanExercise{Name: name, Sets: sets, Reps: reps, RestSeconds: rest})
		}
		plan = append(plan, day)
	}
	return plan
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// ImportPlan saves every drafted day as a workout and schedules it on its
// weekday. It returns the first saved workout so callers can jump straight
// into it.
func (s *Service) ImportPlan(ctx context.Context, plan []PlanDay) (Workout, error) {
	var first Workout
	for i, day := range plan {
		w := Workout{Name: fmt.Sprintf("%s • %s", day.Day, titleCase(day.MuscleGroup))}
		for _, pe := range day.Exercises {
			exercise := Exercise{
				Name:        pe.Name,
				Sets:        pe.Sets,
				TargetReps:  pe.Reps,
				RestSeconds: pe.RestSeconds,
			}
			exercise.EnsureWeights()
			w.Exercises = append(w.Exercises, exercise)
		}
		saved, err := s.workouts.Save(ctx, w)
		if err != nil {
			return Workout{}, fmt.Errorf("import plan day %s: %w", day.Day, err)
		}
		if err := s.schedule.AddEntry(ctx, day.Day, ScheduleEntry{Title: saved.Name, WorkoutID: saved.ID}); err != nil {
			return Workout{}, fmt.Errorf("schedule plan day %s: %w", day.Day, err)
		}
		if i == 0 {
			first = saved
		}
	}
	return first, nil
}
