package workout

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/cantalusto/gym-craft-app/internal/errors"
)

// ErrNotFound is returned when a workout lookup by ID matches nothing.
var ErrNotFound = errors.NewSentinel("workout not found")

// KV is the persistence port. Each key holds one JSON document; reads of an
// absent key report ok=false rather than an error. internal/sqlite satisfies
// this interface.
type KV interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
}

// Storage keys. These are part of the on-disk format and must not change.
const (
	keyWorkouts           = "gc_workouts"
	keySchedule           = "gc_schedule"
	keySessions           = "gc_sessions"
	keyUnit               = "gc_unit"
	keyIncrements         = "gc_session_increment"
	keyDefaultRestSeconds = "gc_default_rest_seconds"
)

// loadJSON reads and decodes the document at key. ok is false when the key
// is absent, in which case out is left untouched.
func loadJSON(ctx context.Context, kv KV, key string, out any) (bool, error) {
	raw, ok, err := kv.Get(ctx, key)
	if err != nil {
		return false, fmt.Errorf("get %s: %w", key, err)
	}
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

// storeJSON encodes v and writes it at key.
func storeJSON(ctx context.Context, kv KV, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := kv.Set(ctx, key, string(raw)); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}
