package workout

import (
	"context"
	"fmt"
	"time"
)

// logRepository persists the append-only performance log. Entries are only
// ever appended; order is the order of logging.
type logRepository struct {
	kv  KV
	now func() time.Time
}

func (r logRepository) List(ctx context.Context) ([]SetLogEntry, error) {
	var entries []SetLogEntry
	if _, err := loadJSON(ctx, r.kv, keySessions, &entries); err != nil {
		return nil, fmt.Errorf("list log: %w", err)
	}
	return entries, nil
}

// Append normalizes and stores one performed set and returns it as stored.
func (r logRepository) Append(ctx context.Context, entry SetLogEntry) (SetLogEntry, error) {
	entries, err := r.List(ctx)
	if err != nil {
		return SetLogEntry{}, err
	}
	entry = entry.normalized(r.now())
	entries = append(entries, entry)
	if err := storeJSON(ctx, r.kv, keySessions, entries); err != nil {
		return SetLogEntry{}, fmt.Errorf("append log: %w", err)
	}
	return entry, nil
}
