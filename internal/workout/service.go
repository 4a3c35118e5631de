package workout

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Service is the façade over workouts, the schedule, the performance log,
// preferences, reports and the session engine. Handlers talk to this type
// only.
type Service struct {
	logger   *slog.Logger
	workouts workoutRepository
	schedule scheduleRepository
	logs     logRepository
	prefs    preferenceRepository
	planner  *planGenerator
	session  *SessionEngine
}

// NewService wires the service on top of a key/value store. openaiAPIKey
// may be empty, in which case plan drafting always uses the local planner.
func NewService(kv KV, logger *slog.Logger, openaiAPIKey string) *Service {
	s := &Service{
		logger:   logger,
		workouts: workoutRepository{kv: kv},
		schedule: scheduleRepository{kv: kv},
		logs:     logRepository{kv: kv, now: time.Now},
		prefs:    preferenceRepository{kv: kv},
		planner:  newPlanGenerator(openaiAPIKey, logger),
	}
	s.session = &SessionEngine{
		logs:     s.logs,
		workouts: s.workouts,
		prefs:    s.prefs,
		logger:   logger,
		autoTick: true,
	}
	return s
}

func (s *Service) Workouts(ctx context.Context) ([]Workout, error) {
	return s.workouts.List(ctx)
}

func (s *Service) Workout(ctx context.Context, id string) (Workout, error) {
	return s.workouts.Get(ctx, id)
}

func (s *Service) SaveWorkout(ctx context.Context, w Workout) (Workout, error) {
	return s.workouts.Save(ctx, w)
}

func (s *Service) DeleteWorkout(ctx context.Context, id string) error {
	return s.workouts.Delete(ctx, id)
}

func (s *Service) Schedule(ctx context.Context) ([]ScheduleDay, error) {
	return s.schedule.Get(ctx)
}

func (s *Service) AddScheduleEntry(ctx context.Context, day string, entry ScheduleEntry) error {
	return s.schedule.AddEntry(ctx, day, entry)
}

func (s *Service) RemoveScheduleEntry(ctx context.Context, day string, index int) error {
	return s.schedule.RemoveEntry(ctx, day, index)
}

func (s *Service) Log(ctx context.Context) ([]SetLogEntry, error) {
	return s.logs.List(ctx)
}

// LogSet appends a performed set outside any running session.
func (s *Service) LogSet(ctx context.Context, entry SetLogEntry) (SetLogEntry, error) {
	return s.logs.Append(ctx, entry)
}

// SuggestedWeights returns recent weights for an exercise, newest first.
func (s *Service) SuggestedWeights(ctx context.Context, exerciseName string, scope *string, repRange RepRange, limit int) ([]Suggestion, error) {
	entries, err := s.logs.List(ctx)
	if err != nil {
		return nil, err
	}
	return Suggestions(entries, exerciseName, scope, repRange, limit), nil
}

// PersonalRecord returns the heaviest set logged for an exercise. A nil
// workoutID considers the full history.
func (s *Service) PersonalRecord(ctx context.Context, exerciseName string, workoutID *string) (PersonalRecord, bool, error) {
	entries, err := s.logs.List(ctx)
	if err != nil {
		return PersonalRecord{}, false, err
	}
	record, ok := Record(entries, exerciseName, workoutID)
	return record, ok, nil
}

// Stats summarizes per-exercise history for one workout.
func (s *Service) Stats(ctx context.Context, workoutID string) (map[string]ExerciseStats, error) {
	entries, err := s.logs.List(ctx)
	if err != nil {
		return nil, err
	}
	return WorkoutStats(entries, workoutID), nil
}

func (s *Service) WeeklyReport(ctx context.Context, now time.Time, offset int) (Report, error) {
	entries, err := s.logs.List(ctx)
	if err != nil {
		return Report{}, err
	}
	return WeeklyReport(entries, now, offset), nil
}

func (s *Service) ISOWeekReport(ctx context.Context, year, week int) (Report, error) {
	entries, err := s.logs.List(ctx)
	if err != nil {
		return Report{}, err
	}
	return ISOWeekReport(entries, year, week), nil
}

func (s *Service) MonthlyReport(ctx context.Context, year int, month time.Month) (Report, error) {
	entries, err := s.logs.List(ctx)
	if err != nil {
		return Report{}, err
	}
	return MonthlyReport(entries, year, month), nil
}

func (s *Service) Unit(ctx context.Context) (Unit, error) {
	return s.prefs.Unit(ctx)
}

func (s *Service) SetUnit(ctx context.Context, unit Unit) error {
	return s.prefs.SetUnit(ctx, unit)
}

func (s *Service) Increments(ctx context.Context) (Increments, error) {
	return s.prefs.Increments(ctx)
}

func (s *Service) SetIncrements(ctx context.Context, inc Increments) error {
	return s.prefs.SetIncrements(ctx, inc)
}

func (s *Service) DefaultRestSeconds(ctx context.Context) (int, error) {
	return s.prefs.DefaultRestSeconds(ctx)
}

func (s *Service) SetDefaultRestSeconds(ctx context.Context, rest int) error {
	return s.prefs.SetDefaultRestSeconds(ctx, rest)
}

// DraftPlan drafts a weekly plan. With an API key configured it asks the
// model first and falls back to the local planner on any failure, so
// drafting never depends on the network being up.
func (s *Service) DraftPlan(ctx context.Context, req PlanRequest) []PlanDay {
	if s.planner != nil {
		plan, err := s.planner.Generate(ctx, req)
		if err == nil {
			return plan
		}
		s.logger.WarnContext(ctx, "plan generation fell back to local planner", slog.Any("error", err))
	}
	return LocalPlan(req)
}

// Session exposes the single session engine.
func (s *Service) Session() *SessionEngine {
	return s.session
}

// StartSession loads a workout by ID and starts a session for it.
func (s *Service) StartSession(ctx context.Context, workoutID string) error {
	w, err := s.workouts.Get(ctx, workoutID)
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	s.session.Start(w)
	return nil
}
