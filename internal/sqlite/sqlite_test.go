package sqlite_test

import (
	"testing"

	"github.com/cantalusto/gym-craft-app/internal/sqlite"
	"github.com/cantalusto/gym-craft-app/internal/testhelpers"
)

func newTestDatabase(t *testing.T) *sqlite.Database {
	t.Helper()
	logger := testhelpers.NewLogger(testhelpers.NewWriter(t))
	db, err := sqlite.NewDatabase(t.Context(), ":memory:", logger)
	if err != nil {
		t.Fatalf("NewDatabase: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("Close: %v", err)
		}
	})
	return db
}

func TestGetAbsentKey(t *testing.T) {
	db := newTestDatabase(t)

	value, ok, err := db.Get(t.Context(), "gc_workouts")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if ok {
		t.Errorf("expected absent key, got value %q", value)
	}
}

func TestSetGetRoundTrip(t *testing.T) {
	db := newTestDatabase(t)
	ctx := t.Context()

	payload := `[{"id":"w1","name":"Push day","exercises":[]}]`
	if err := db.Set(ctx, "gc_workouts", payload); err != nil {
		t.Fatalf("Set: %v", err)
	}

	value, ok, err := db.Get(ctx, "gc_workouts")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !ok {
		t.Fatal("expected key to be present")
	}
	if value != payload {
		t.Errorf("Get = %q, want %q", value, payload)
	}
}

func TestSetOverwrites(t *testing.T) {
	db := newTestDatabase(t)
	ctx := t.Context()

	if err := db.Set(ctx, "gc_unit", "kg"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := db.Set(ctx, "gc_unit", "lb"); err != nil {
		t.Fatalf("Set overwrite: %v", err)
	}

	value, ok, err := db.Get(ctx, "gc_unit")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !ok || value != "lb" {
		t.Errorf("Get = %q, %v; want %q, true", value, ok, "lb")
	}
}

func TestCollectionsAreIndependent(t *testing.T) {
	db := newTestDatabase(t)
	ctx := t.Context()

	if err := db.Set(ctx, "gc_unit", "kg"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := db.Set(ctx, "gc_sessions", "[]"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	value, ok, err := db.Get(ctx, "gc_unit")
	if err != nil || !ok || value != "kg" {
		t.Errorf("gc_unit = %q, %v, %v; want kg, true, nil", value, ok, err)
	}
	value, ok, err = db.Get(ctx, "gc_sessions")
	if err != nil || !ok || value != "[]" {
		t.Errorf("gc_sessions = %q, %v, %v; want [], true, nil", value, ok, err)
	}
}
