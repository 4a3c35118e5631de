package workout

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// workoutRepository persists the workout list under a single document.
type workoutRepository struct {
	kv KV
}

func (r workoutRepository) List(ctx context.Context) ([]Workout, error) {
	var workouts []Workout
	if _, err := loadJSON(ctx, r.kv, keyWorkouts, &workouts); err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}
	return workouts, nil
}

func (r workoutRepository) Get(ctx context.Context, id string) (Workout, error) {
	workouts, err := r.List(ctx)
	if err != nil {
		return Workout{}, err
	}
	for _, w := range workouts {
		if w.ID == id {
			return w, nil
		}
	}
	return Workout{}, fmt.Errorf("get workout %s: %w", id, ErrNotFound)
}

// Save upserts a workout and returns the stored version.
//
// Matching by ID replaces the stored workout. Otherwise a case-insensitive
// name match merges: the candidate's exercises are appended to the existing
// workout so that saving "Push Day" twice grows one workout instead of
// creating a duplicate. With no match at all the workout is created under a
// fresh ID.
func (r workoutRepository) Save(ctx context.Context, candidate Workout) (Workout, error) {
	for i := range candidate.Exercises {
		candidate.Exercises[i].EnsureWeights()
	}
	workouts, err := r.List(ctx)
	if err != nil {
		return Workout{}, err
	}

	saved := candidate
	switch idx := r.match(workouts, candidate); {
	case idx >= 0 && candidate.ID != "" && workouts[idx].ID == candidate.ID:
		workouts[idx] = candidate
	case idx >= 0:
		workouts[idx].Exercises = append(workouts[idx].Exercises, candidate.Exercises...)
		saved = workouts[idx]
	default:
		saved.ID = uuid.NewString()
		workouts = append(workouts, saved)
	}

	if err := storeJSON(ctx, r.kv, keyWorkouts, workouts); err != nil {
		return Workout{}, fmt.Errorf("save workout: %w", err)
	}
	return saved, nil
}

// match finds the index to merge the candidate into, preferring an ID match
// over a case-insensitive name match. Returns -1 when nothing matches.
func (workoutRepository) match(workouts []Workout, candidate Workout) int {
	if candidate.ID != "" {
		for i, w := range workouts {
			if w.ID == candidate.ID {
				return i
			}
		}
	}
	for i, w := range workouts {
		if strings.EqualFold(w.Name, candidate.Name) {
			return i
		}
	}
	return -1
}

// Delete removes a workout by ID. Deleting an unknown ID is a no-op; the
// performance log keeps any sets recorded against the workout.
func (r workoutRepository) Delete(ctx context.Context, id string) error {
	workouts, err := r.List(ctx)
	if err != nil {
		return err
	}
	kept := workouts[:0]
	for _, w := range workouts {
		if w.ID != id {
			kept = append(kept, w)
		}
	}
	if err := storeJSON(ctx, r.kv, keyWorkouts, kept); err != nil {
		return fmt.Errorf("delete workout: %w", err)
	}
	return nil
}
