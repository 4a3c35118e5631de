package workout

import (
	"context"
	"fmt"
)

// scheduleRepository persists the weekly schedule, a fixed list of seven
// days starting Monday.
type scheduleRepository struct {
	kv KV
}

func (r scheduleRepository) Get(ctx context.Context) ([]ScheduleDay, error) {
	var days []ScheduleDay
	ok, err := loadJSON(ctx, r.kv, keySchedule, &days)
	if err != nil {
		return nil, fmt.Errorf("get schedule: %w", err)
	}
	if !ok || len(days) != len(Weekdays()) {
		return defaultSchedule(), nil
	}
	return days, nil
}

func (r scheduleRepository) Set(ctx context.Context, days []ScheduleDay) error {
	if err := storeJSON(ctx, r.kv, keySchedule, days); err != nil {
		return fmt.Errorf("set schedule: %w", err)
	}
	return nil
}

// AddEntry appends a workout to the named day. Unknown day names are a
// no-op.
func (r scheduleRepository) AddEntry(ctx context.Context, day string, entry ScheduleEntry) error {
	days, err := r.Get(ctx)
	if err != nil {
		return err
	}
	found := false
	for i := range days {
		if days[i].Day == day {
			days[i].Entries = append(days[i].Entries, entry)
			found = true
			break
		}
	}
	if !found {
		return nil
	}
	return r.Set(ctx, days)
}

// RemoveEntry deletes the entry at position index of the named day.
// Out-of-range indices and unknown days are no-ops.
func (r scheduleRepository) RemoveEntry(ctx context.Context, day string, index int) error {
	days, err := r.Get(ctx)
	if err != nil {
		return err
	}
	for i := range days {
		if days[i].Day != day {
			continue
		}
		if index < 0 || index >= len(days[i].Entries) {
			return nil
		}
		days[i].Entries = append(days[i].Entries[:index], days[i].Entries[index+1:]...)
		return r.Set(ctx, days)
	}
	return nil
}

func defaultSchedule() []ScheduleDay {
	names := Weekdays()
	days := make([]ScheduleDay, len(names))
	for i, name := range names {
		days[i] = ScheduleDay{Day: name, Entries: []ScheduleEntry{}}
	}
	return days
}
