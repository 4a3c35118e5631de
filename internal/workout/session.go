package workout

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// SessionState is the lifecycle of a workout session.
type SessionState string

const (
	StateNotStarted SessionState = "not_started"
	StateActive     SessionState = "active"
	StateResting    SessionState = "resting"
	StateCompleted  SessionState = "completed"
)

// SessionEngine drives a user through a workout: it tracks the current
// exercise and set, logs finished sets to the performance log and runs the
// rest countdown between sets. While resting the engine stays at the
// just-finished set; it advances when the countdown reaches zero or the
// rest is skipped.
//
// All methods are safe for concurrent use. Calling an operation in a state
// where it does not apply is a silent no-op; only persistence failures
// surface as errors, and a failed persist leaves the in-memory session
// untouched.
type SessionEngine struct {
	mu       sync.Mutex
	logs     logRepository
	workouts workoutRepository
	prefs    preferenceRepository
	logger   *slog.Logger

	// autoTick runs the wall-clock countdown goroutine. Tests disable it
	// and call Tick directly.
	autoTick bool

	state         SessionState
	workout       Workout
	exerciseIndex int // 0-based
	setIndex      int // 1-based
	restRemaining int

	// generation invalidates stale countdown goroutines: each new or
	// cancelled countdown bumps it, and a goroutine only ticks while its
	// own generation is current. This guarantees at most one live
	// countdown and makes a skipped rest impossible to double-advance.
	generation int
	stopTimer  chan struct{}
}

// SessionSnapshot is a point-in-time view of the engine for rendering.
type SessionSnapshot struct {
	State           SessionState `json:"state"`
	Workout         Workout      `json:"workout"`
	ExerciseIndex   int          `json:"exerciseIndex"`
	SetIndex        int          `json:"setIndex"`
	RestRemaining   int          `json:"restRemaining"`
	CurrentExercise *Exercise    `json:"currentExercise,omitempty"`
	CurrentWeightKg float64      `json:"currentWeightKg"`
}

// SetResult reports what happened when a set was finished. Logged is false
// when the call was a no-op.
type SetResult struct {
	Logged bool           `json:"logged"`
	Entry  SetLogEntry    `json:"entry"`
	NewPR  bool           `json:"newPR"`
	Record PersonalRecord `json:"record"`
}

// Start begins a session for the given workout at its first set. It applies
// only when no session is running, and a workout without exercises cannot
// be started.
func (s *SessionEngine) Start(w Workout) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateActive || s.state == StateResting {
		return
	}
	if len(w.Exercises) == 0 {
		return
	}
	for i := range w.Exercises {
		w.Exercises[i].EnsureWeights()
	}
	s.workout = w
	s.exerciseIndex = 0
	s.setIndex = 1
	s.restRemaining = 0
	s.state = StateActive
	s.logger.Info("session started", slog.String("workout", w.Name), slog.Int("exercises", len(w.Exercises)))
}

// FinishCurrentSetAndRest logs the current set at the exercise's target
// reps and the weight planned for it, then enters the rest period. The
// result carries a new-record signal when the logged weight strictly beats
// the exercise's record within this workout.
//
// Outside the active state this is a no-op with a zero SetResult.
func (s *SessionEngine) FinishCurrentSetAndRest(ctx context.Context) (SetResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateActive {
		return SetResult{}, nil
	}

	exercise := &s.workout.Exercises[s.exerciseIndex]
	entry := SetLogEntry{
		WorkoutID:    &s.workout.ID,
		ExerciseName: exercise.Name,
		SetIndex:     s.setIndex,
		Reps:         exercise.TargetReps,
		WeightKg:     exercise.WeightForSet(s.setIndex),
	}

	before, err := s.logs.List(ctx)
	if err != nil {
		return SetResult{}, fmt.Errorf("finish set: %w", err)
	}
	prior, hadPrior := Record(before, exercise.Name, &s.workout.ID)

	stored, err := s.logs.Append(ctx, entry)
	if err != nil {
		return SetResult{}, fmt.Errorf("finish set: %w", err)
	}

	result := SetResult{Logged: true, Entry: stored, Record: prior}
	if !hadPrior || stored.WeightKg > prior.WeightKg {
		result.NewPR = true
		result.Record = PersonalRecord{WeightKg: stored.WeightKg, Reps: stored.Reps, Date: stored.Timestamp}
	}

	s.state = StateResting
	s.restRemaining = exercise.EffectiveRestSeconds(s.defaultRest(ctx))
	s.startCountdownLocked()
	return result, nil
}

// advanceLocked moves to the next set or exercise, or completes the
// session. Invoked on every exit from the rest period. Caller holds the
// lock.
func (s *SessionEngine) advanceLocked() {
	exercise := s.workout.Exercises[s.exerciseIndex]
	switch {
	case s.setIndex < exercise.Sets:
		s.setIndex++
		s.state = StateActive
	case s.exerciseIndex < len(s.workout.Exercises)-1:
		s.exerciseIndex++
		s.setIndex = 1
		s.state = StateActive
	default:
		s.state = StateCompleted
		s.logger.Info("session completed", slog.String("workout", s.workout.Name))
	}
}

func (s *SessionEngine) defaultRest(ctx context.Context) int {
	rest, err := s.prefs.DefaultRestSeconds(ctx)
	if err != nil {
		return DefaultRestSeconds
	}
	return rest
}

// Tick advances the rest countdown by one second, moving to the next set
// when it reaches zero. Outside the resting state it does nothing.
func (s *SessionEngine) Tick() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tickLocked()
}

func (s *SessionEngine) tickLocked() {
	if s.state != StateResting {
		return
	}
	s.restRemaining--
	if s.restRemaining <= 0 {
		s.restRemaining = 0
		s.cancelCountdownLocked()
		s.advanceLocked()
	}
}

// SkipRest ends the rest period immediately and advances.
func (s *SessionEngine) SkipRest() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateResting {
		return
	}
	s.restRemaining = 0
	s.cancelCountdownLocked()
	s.advanceLocked()
}

// AdjustCurrentSetWeight changes the weight of the current set by delta
// kilograms, clamped at zero and rounded to a tenth, and persists the
// workout. When the persist fails the in-memory weight is left unchanged.
// It applies while active or resting; otherwise it returns the zero weight
// and false.
func (s *SessionEngine) AdjustCurrentSetWeight(ctx context.Context, deltaKg float64) (float64, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateActive && s.state != StateResting {
		return 0, false, nil
	}
	exercise := &s.workout.Exercises[s.exerciseIndex]
	exercise.EnsureWeights()
	idx := s.setIndex - 1
	previous := exercise.WeightPerSet[idx]
	weight := roundTenth(previous + deltaKg)
	if weight < 0 {
		weight = 0
	}
	exercise.WeightPerSet[idx] = weight
	if _, err := s.workouts.Save(ctx, s.workout); err != nil {
		exercise.WeightPerSet[idx] = previous
		return 0, false, fmt.Errorf("adjust weight: %w", err)
	}
	return weight, true, nil
}

// EditExercises replaces the session's exercise list mid-workout and
// persists it. Editing is blocked while resting so the countdown can never
// land on a set that no longer exists. The current position is clamped into
// the new list; an empty list completes the session. A failed persist
// leaves the session unchanged.
func (s *SessionEngine) EditExercises(ctx context.Context, exercises []Exercise) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateActive {
		return nil
	}
	for i := range exercises {
		exercises[i].EnsureWeights()
	}

	candidate := s.workout
	candidate.Exercises = exercises
	if _, err := s.workouts.Save(ctx, candidate); err != nil {
		return fmt.Errorf("edit exercises: %w", err)
	}

	s.workout = candidate
	if len(exercises) == 0 {
		s.state = StateCompleted
		s.cancelCountdownLocked()
		return nil
	}
	if s.exerciseIndex > len(exercises)-1 {
		s.exerciseIndex = len(exercises) - 1
	}
	if sets := exercises[s.exerciseIndex].Sets; s.setIndex > sets {
		s.setIndex = sets
	}
	if s.setIndex < 1 {
		s.setIndex = 1
	}
	return nil
}

// End aborts the session regardless of progress and returns to the idle
// state. Already-logged sets stay in the performance log.
func (s *SessionEngine) End() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateNotStarted {
		return
	}
	s.state = StateNotStarted
	s.restRemaining = 0
	s.cancelCountdownLocked()
	s.logger.Info("session ended", slog.String("workout", s.workout.Name))
}

// Snapshot returns the current session view. While resting the position
// still points at the just-finished set.
func (s *SessionEngine) Snapshot() SessionSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := SessionSnapshot{
		State:         s.state,
		Workout:       s.workout,
		ExerciseIndex: s.exerciseIndex,
		SetIndex:      s.setIndex,
		RestRemaining: s.restRemaining,
	}
	if snap.State == "" {
		snap.State = StateNotStarted
	}
	if (s.state == StateActive || s.state == StateResting) && s.exerciseIndex < len(s.workout.Exercises) {
		exercise := s.workout.Exercises[s.exerciseIndex]
		snap.CurrentExercise = &exercise
		snap.CurrentWeightKg = exercise.WeightForSet(s.setIndex)
	}
	return snap
}

// startCountdownLocked replaces any running countdown with a fresh one.
// Caller holds the lock.
func (s *SessionEngine) startCountdownLocked() {
	s.cancelCountdownLocked()
	if !s.autoTick {
		return
	}
	s.stopTimer = make(chan struct{})
	gen := s.generation
	stop := s.stopTimer
	go s.runCountdown(gen, stop)
}

func (s *SessionEngine) runCountdown(gen int, stop <-chan struct{}) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			s.mu.Lock()
			if s.generation != gen {
				s.mu.Unlock()
				return
			}
			s.tickLocked()
			s.mu.Unlock()
		}
	}
}

// cancelCountdownLocked invalidates the running countdown, if any. Caller
// holds the lock.
func (s *SessionEngine) cancelCountdownLocked() {
	s.generation++
	if s.stopTimer != nil {
		close(s.stopTimer)
		s.stopTimer = nil
	}
}
