package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"github.com/cantalusto/gym-craft-app/internal/envstruct"
	"github.com/cantalusto/gym-craft-app/internal/errors"
	"github.com/cantalusto/gym-craft-app/internal/logging"
	"github.com/cantalusto/gym-craft-app/internal/sqlite"
	"github.com/cantalusto/gym-craft-app/internal/workout"
)

type application struct {
	logger         *slog.Logger
	workoutService *workout.Service
	requestTimeout int
}

type config struct {
	// Addr is the address to listen on. It's possible to choose the address dynamically with localhost:0.
	Addr string `env:"GYMCRAFT_ADDR" envDefault:"localhost:8081"`
	// SqliteURL is the URL to the SQLite database. You can use ":memory:" for an ethereal in-memory database.
	SqliteURL string `env:"GYMCRAFT_SQLITE_URL" envDefault:"./gymcraft.sqlite3"`
	// OpenAIAPIKey enables AI plan drafting. Leave empty to always use the local planner.
	OpenAIAPIKey string `env:"GYMCRAFT_OPENAI_API_KEY" envDefault:""`
	// RequestTimeoutSeconds bounds request handling, including plan drafting calls.
	RequestTimeoutSeconds int `env:"GYMCRAFT_REQUEST_TIMEOUT_SECONDS" envDefault:"30"`
}

func run(ctx context.Context, logger *slog.Logger, lookupEnv func(string) (string, bool)) error {
	var (
		cancel context.CancelFunc
		err    error
	)

	ctx, cancel = signal.NotifyContext(ctx, os.Interrupt)
	defer cancel()

	var cfg config
	if err = envstruct.Populate(&cfg, lookupEnv); err != nil {
		return errors.Wrap(err, "populate config")
	}

	db, err := sqlite.NewDatabase(ctx, cfg.SqliteURL, logger)
	if err != nil {
		return errors.Wrap(err, "open db", slog.String("url", cfg.SqliteURL))
	}
	logger.LogAttrs(ctx, slog.LevelInfo, "connected to db")

	app := application{
		logger:         logger,
		workoutService: workout.NewService(db, logger, cfg.OpenAIAPIKey),
		requestTimeout: cfg.RequestTimeoutSeconds,
	}

	if err = app.configureAndStartServer(ctx, cfg.Addr, app.routes()); err != nil {
		return errors.Wrap(err, "start server")
	}
	return nil
}

func main() {
	ctx := context.Background()
	loggerHandler := logging.NewContextHandler(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		AddSource:   false,
		Level:       slog.LevelDebug,
		ReplaceAttr: nil,
	}))
	logger := slog.New(loggerHandler)
	if err := run(ctx, logger, os.LookupEnv); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "failure starting application", errors.SlogError(err))
		os.Exit(1)
	}
}
