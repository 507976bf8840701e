package integration_test

import (
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/movie-theater-api/internal/app"
	"github.com/metinatakli/movie-theater-api/internal/repository"
	appvalidator "github.com/metinatakli/movie-theater-api/internal/validator"
)

type TestApp struct {
	App *app.Application
	DB  *pgxpool.Pool
}

func newTestApp(cfg app.Config) (*TestApp, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	validator := appvalidator.NewValidator()

	db, err := app.NewDatabasePool(cfg)
	if err != nil {
		return nil, err
	}

	movieRepo := repository.NewPostgresMovieRepository(db)

	application, err := app.NewApp(
		cfg,
		logger,
		db,
		validator,
		movieRepo,
	)
	if err != nil {
		db.Close()
		return nil, err
	}

	return &TestApp{
		App: application,
		DB:  db,
	}, nil
}
