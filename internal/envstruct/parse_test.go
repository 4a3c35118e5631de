package envstruct_test

import (
	"testing"

	"github.com/cantalusto/gym-craft-app/internal/envstruct"
	"github.com/google/go-cmp/cmp"
)

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		val, ok := env[key]
		return val, ok
	}
}

func TestPopulate(t *testing.T) {
	type config struct {
		Addr           string `env:"TEST_ADDR" envDefault:"localhost:0"`
		SqliteURL      string `env:"TEST_SQLITE_URL"`
		TimeoutSeconds int    `env:"TEST_TIMEOUT_SECONDS" envDefault:"5"`
	}

	tests := []struct {
		name    string
		env     map[string]string
		want    config
		wantErr bool
	}{
		{
			name: "all set",
			env: map[string]string{
				"TEST_ADDR":            "localhost:8080",
				"TEST_SQLITE_URL":      ":memory:",
				"TEST_TIMEOUT_SECONDS": "30",
			},
			want: config{Addr: "localhost:8080", SqliteURL: ":memory:", TimeoutSeconds: 30},
		},
		{
			name: "defaults applied",
			env:  map[string]string{"TEST_SQLITE_URL": "./app.sqlite3"},
			want: config{Addr: "localhost:0", SqliteURL: "./app.sqlite3", TimeoutSeconds: 5},
		},
		{
			name:    "missing without default",
			env:     map[string]string{},
			wantErr: true,
		},
		{
			name: "non-numeric int",
			env: map[string]string{
				"TEST_SQLITE_URL":      ":memory:",
				"TEST_TIMEOUT_SECONDS": "soon",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cfg config
			err := envstruct.Populate(&cfg, lookupFrom(tt.env))
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("Populate: %v", err)
			}
			if diff := cmp.Diff(tt.want, cfg); diff != "" {
				t.Errorf("config mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPopulateRejectsNonStruct(t *testing.T) {
	var s string
	if err := envstruct.Populate(&s, lookupFrom(nil)); err == nil {
		t.Error("expected error for non-struct pointer")
	}
	if err := envstruct.Populate(struct{}{}, lookupFrom(nil)); err == nil {
		t.Error("expected error for non-pointer")
	}
}
