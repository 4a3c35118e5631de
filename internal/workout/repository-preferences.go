package workout

import (
	"context"
	"fmt"
)

// preferenceRepository persists display and session preferences. Every read
// coerces invalid stored values back to the documented default, so a
// corrupted preference can never take the rest of the app down.
type preferenceRepository struct {
	kv KV
}

func (r preferenceRepository) Unit(ctx context.Context) (Unit, error) {
	raw, ok, err := r.kv.Get(ctx, keyUnit)
	if err != nil {
		return "", fmt.Errorf("get unit: %w", err)
	}
	if !ok || (Unit(raw) != UnitKg && Unit(raw) != UnitLb) {
		return UnitKg, nil
	}
	return Unit(raw), nil
}

func (r preferenceRepository) SetUnit(ctx context.Context, unit Unit) error {
	if unit != UnitKg && unit != UnitLb {
		unit = UnitKg
	}
	if err := r.kv.Set(ctx, keyUnit, string(unit)); err != nil {
		return fmt.Errorf("set unit: %w", err)
	}
	return nil
}

func (r preferenceRepository) Increments(ctx context.Context) (Increments, error) {
	inc := DefaultIncrements()
	if _, err := loadJSON(ctx, r.kv, keyIncrements, &inc); err != nil {
		return Increments{}, fmt.Errorf("get increments: %w", err)
	}
	if inc.Kg <= 0 {
		inc.Kg = DefaultIncrements().Kg
	}
	if inc.Lb <= 0 {
		inc.Lb = DefaultIncrements().Lb
	}
	return inc, nil
}

func (r preferenceRepository) SetIncrements(ctx context.Context, inc Increments) error {
	if inc.Kg <= 0 {
		inc.Kg = DefaultIncrements().Kg
	}
	if inc.Lb <= 0 {
		inc.Lb = DefaultIncrements().Lb
	}
	if err := storeJSON(ctx, r.kv, keyIncrements, inc); err != nil {
		return fmt.Errorf("set increments: %w", err)
	}
	return nil
}

func (r preferenceRepository) DefaultRestSeconds(ctx context.Context) (int, error) {
	var rest int
	ok, err := loadJSON(ctx, r.kv, keyDefaultRestSeconds, &rest)
	if err != nil {
		return 0, fmt.Errorf("get default rest: %w", err)
	}
	if !ok || rest <= 0 {
		return DefaultRestSeconds, nil
	}
	return rest, nil
}

func (r preferenceRepository) SetDefaultRestSeconds(ctx context.Context, rest int) error {
	if rest <= 0 {
		rest = DefaultRestSeconds
	}
	if err := storeJSON(ctx, r.kv, keyDefaultRestSeconds, rest); err != nil {
		return fmt.Errorf("set default rest: %w", err)
	}
	return nil
}
