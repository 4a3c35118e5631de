package workout

import (
	"context"
	"testing"
	"time"

	"github.com/cantalusto/gym-craft-app/internal/testhelpers"
)

// newTestEngine builds an engine with the countdown goroutine disabled so
// tests drive time through Tick.
func newTestEngine(t *testing.T, kv *fakeKV) *SessionEngine {
	t.Helper()
	return &SessionEngine{
		logs:     logRepository{kv: kv, now: time.Now},
		workouts: workoutRepository{kv: kv},
		prefs:    preferenceRepository{kv: kv},
		logger:   testhelpers.NewLogger(testhelpers.NewWriter(t)),
	}
}

func benchSquatWorkout(t *testing.T, kv *fakeKV) Workout {
	t.Helper()
	repo := workoutRepository{kv: kv}
	return mustSave(t, repo, Workout{
		Name: "Push Day",
		Exercises: []Exercise{
			{Name: "Bench Press", Sets: 2, TargetReps: 8, RestSeconds: 2, BaseWeightKg: 60},
			{Name: "Squat", Sets: 1, TargetReps: 5, RestSeconds: 2, BaseWeightKg: 100},
		},
	})
}

func finishSet(t *testing.T, engine *SessionEngine) SetResult {
	t.Helper()
	result, err := engine.FinishCurrentSetAndRest(context.Background())
	if err != nil {
		t.Fatalf("finish set: %v", err)
	}
	return result
}

func TestSessionVisitsEverySetInOrder(t *testing.T) {
	kv := newFakeKV()
	engine := newTestEngine(t, kv)
	engine.Start(benchSquatWorkout(t, kv))

	type position struct {
		exercise string
		set      int
	}
	var visited []position
	for engine.Snapshot().State != StateCompleted {
		snap := engine.Snapshot()
		if snap.State == StateResting {
			engine.SkipRest()
			continue
		}
		visited = append(visited, position{snap.CurrentExercise.Name, snap.SetIndex})
		finishSet(t, engine)
	}

	want := []position{
		{"Bench Press", 1},
		{"Bench Press", 2},
		{"Squat", 1},
	}
	if len(visited) != len(want) {
		t.Fatalf("visited %v, want %v", visited, want)
	}
	for i := range want {
		if visited[i] != want[i] {
			t.Errorf("step %d: visited %v, want %v", i, visited[i], want[i])
		}
	}
}

func TestSessionStartRequiresExercises(t *testing.T) {
	kv := newFakeKV()
	engine := newTestEngine(t, kv)

	engine.Start(Workout{ID: "empty", Name: "Empty"})
	if got := engine.Snapshot().State; got != StateNotStarted {
		t.Errorf("starting an empty workout changed state to %s", got)
	}
}

func TestSessionLogsSetsAgainstWorkout(t *testing.T) {
	kv := newFakeKV()
	engine := newTestEngine(t, kv)
	w := benchSquatWorkout(t, kv)
	engine.Start(w)

	result := finishSet(t, engine)
	if !result.Logged {
		t.Fatal("expected the set to be logged")
	}
	if result.Entry.WorkoutID == nil || *result.Entry.WorkoutID != w.ID {
		t.Errorf("expected entry scoped to workout %s, got %+v", w.ID, result.Entry)
	}
	if result.Entry.WeightKg != 60 || result.Entry.SetIndex != 1 || result.Entry.Reps != 8 {
		t.Errorf("unexpected entry %+v", result.Entry)
	}
	if !result.NewPR {
		t.Error("first logged set should be a record")
	}
}

func TestSessionRecordDetection(t *testing.T) {
	kv := newFakeKV()
	engine := newTestEngine(t, kv)
	w := benchSquatWorkout(t, kv)

	// The standing record only counts when it was set in the same workout.
	logs := logRepository{kv: kv, now: time.Now}
	if _, err := logs.Append(context.Background(), SetLogEntry{WorkoutID: &w.ID, ExerciseName: "Bench Press", Reps: 5, WeightKg: 80}); err != nil {
		t.Fatalf("seed log: %v", err)
	}

	engine.Start(w)
	result := finishSet(t, engine)
	if result.NewPR {
		t.Errorf("60 kg should not beat the 80 kg record, got %+v", result)
	}
	if result.Record.WeightKg != 80 {
		t.Errorf("expected the standing record, got %+v", result.Record)
	}
}

func TestSessionCountdownAndTick(t *testing.T) {
	kv := newFakeKV()
	engine := newTestEngine(t, kv)
	engine.Start(benchSquatWorkout(t, kv))

	finishSet(t, engine)
	snap := engine.Snapshot()
	if snap.State != StateResting || snap.RestRemaining != 2 {
		t.Fatalf("expected a 2 second rest, got %+v", snap)
	}
	if snap.SetIndex != 1 {
		t.Errorf("resting should stay at the finished set, got %+v", snap)
	}

	engine.Tick()
	if got := engine.Snapshot().RestRemaining; got != 1 {
		t.Errorf("expected 1 second left, got %d", got)
	}
	engine.Tick()
	snap = engine.Snapshot()
	if snap.State != StateActive || snap.SetIndex != 2 || snap.RestRemaining != 0 {
		t.Errorf("expected the rest to end at set 2, got %+v", snap)
	}

	// A stale tick after the rest ended must not advance anything.
	engine.Tick()
	if got := engine.Snapshot(); got.State != StateActive || got.SetIndex != 2 {
		t.Errorf("tick outside rest changed state: %+v", got)
	}
}

func TestSessionSkipRestIsIdempotent(t *testing.T) {
	kv := newFakeKV()
	engine := newTestEngine(t, kv)
	engine.Start(benchSquatWorkout(t, kv))

	finishSet(t, engine)
	engine.SkipRest()
	engine.SkipRest()
	snap := engine.Snapshot()
	if snap.State != StateActive || snap.SetIndex != 2 {
		t.Errorf("expected to sit at bench press set 2, got %+v", snap)
	}
}

func TestSessionSingleSetWorkoutCompletes(t *testing.T) {
	kv := newFakeKV()
	engine := newTestEngine(t, kv)
	repo := workoutRepository{kv: kv}
	w := mustSave(t, repo, Workout{Name: "Quick", Exercises: []Exercise{{Name: "Squat", Sets: 1, RestSeconds: 1, BaseWeightKg: 100}}})

	engine.Start(w)
	finishSet(t, engine)
	if got := engine.Snapshot().State; got != StateResting {
		t.Fatalf("the final set still rests before completion, got %s", got)
	}
	engine.Tick()
	if got := engine.Snapshot().State; got != StateCompleted {
		t.Errorf("expected completion after the final rest, got %s", got)
	}
	// Finishing again is a no-op.
	result := finishSet(t, engine)
	if result.Logged {
		t.Error("finishing a completed session logged a set")
	}
}

func TestSessionStartWhileRunningIsNoOp(t *testing.T) {
	kv := newFakeKV()
	engine := newTestEngine(t, kv)
	w := benchSquatWorkout(t, kv)
	engine.Start(w)
	finishSet(t, engine)

	engine.Start(w)
	snap := engine.Snapshot()
	if snap.State != StateResting || snap.SetIndex != 1 {
		t.Errorf("restart clobbered a running session: %+v", snap)
	}
}

func TestSessionAdjustWeightClampsAndRounds(t *testing.T) {
	kv := newFakeKV()
	engine := newTestEngine(t, kv)
	w := benchSquatWorkout(t, kv)
	engine.Start(w)

	weight, ok, err := engine.AdjustCurrentSetWeight(context.Background(), 2.5)
	if err != nil || !ok {
		t.Fatalf("adjust weight: %v ok=%v", err, ok)
	}
	if weight != 62.5 {
		t.Errorf("expected 62.5, got %v", weight)
	}

	weight, ok, err = engine.AdjustCurrentSetWeight(context.Background(), -1000)
	if err != nil || !ok {
		t.Fatalf("adjust weight: %v ok=%v", err, ok)
	}
	if weight != 0 {
		t.Errorf("expected clamp at zero, got %v", weight)
	}

	// Adjustments persist through the workout store.
	stored, err := workoutRepository{kv: kv}.Get(context.Background(), w.ID)
	if err != nil {
		t.Fatalf("get workout: %v", err)
	}
	if got := stored.Exercises[0].WeightPerSet[0]; got != 0 {
		t.Errorf("expected persisted weight 0, got %v", got)
	}
}

func TestSessionAdjustWeightRoundsToTenth(t *testing.T) {
	kv := newFakeKV()
	engine := newTestEngine(t, kv)
	engine.Start(benchSquatWorkout(t, kv))

	weight, ok, err := engine.AdjustCurrentSetWeight(context.Background(), 1.11)
	if err != nil || !ok {
		t.Fatalf("adjust weight: %v ok=%v", err, ok)
	}
	if weight != 61.1 {
		t.Errorf("expected 61.1, got %v", weight)
	}
}

func TestSessionAdjustWeightRollsBackOnSaveFailure(t *testing.T) {
	kv := newFakeKV()
	engine := newTestEngine(t, kv)
	engine.Start(benchSquatWorkout(t, kv))

	kv.failSet = true
	if _, _, err := engine.AdjustCurrentSetWeight(context.Background(), 2.5); err == nil {
		t.Fatal("expected a save failure")
	}
	kv.failSet = false
	if got := engine.Snapshot().CurrentWeightKg; got != 60 {
		t.Errorf("failed save left the in-memory weight at %v", got)
	}
}

func TestSessionEditExercisesBlockedWhileResting(t *testing.T) {
	kv := newFakeKV()
	engine := newTestEngine(t, kv)
	engine.Start(benchSquatWorkout(t, kv))
	finishSet(t, engine)

	if err := engine.EditExercises(context.Background(), []Exercise{{Name: "Cable Fly", Sets: 3}}); err != nil {
		t.Fatalf("edit while resting should be a silent no-op, got %v", err)
	}
	snap := engine.Snapshot()
	if snap.Workout.Exercises[0].Name != "Bench Press" {
		t.Errorf("edit applied while resting: %+v", snap.Workout.Exercises)
	}
}

func TestSessionEditExercisesClampsPosition(t *testing.T) {
	kv := newFakeKV()
	engine := newTestEngine(t, kv)
	engine.Start(benchSquatWorkout(t, kv))
	finishSet(t, engine)
	engine.SkipRest() // now at bench press set 2

	if err := engine.EditExercises(context.Background(), []Exercise{{Name: "Bench Press", Sets: 1, BaseWeightKg: 60}}); err != nil {
		t.Fatalf("edit exercises: %v", err)
	}
	snap := engine.Snapshot()
	if snap.ExerciseIndex != 0 || snap.SetIndex != 1 {
		t.Errorf("expected position clamped to the shrunk plan, got %+v", snap)
	}
}

func TestSessionEndReturnsToIdle(t *testing.T) {
	kv := newFakeKV()
	engine := newTestEngine(t, kv)
	w := benchSquatWorkout(t, kv)
	engine.Start(w)
	finishSet(t, engine)

	engine.End()
	snap := engine.Snapshot()
	if snap.State != StateNotStarted || snap.RestRemaining != 0 {
		t.Errorf("expected an idle session, got %+v", snap)
	}
	engine.Tick()
	if got := engine.Snapshot().State; got != StateNotStarted {
		t.Errorf("tick revived an ended session: %s", got)
	}

	// Logged sets survive the abort, and a fresh session can start.
	logs, err := logRepository{kv: kv, now: time.Now}.List(context.Background())
	if err != nil {
		t.Fatalf("list log: %v", err)
	}
	if len(logs) != 1 {
		t.Errorf("expected the logged set to survive, got %d entries", len(logs))
	}
	engine.Start(w)
	if got := engine.Snapshot().State; got != StateActive {
		t.Errorf("expected a restart after end, got %s", got)
	}
}
