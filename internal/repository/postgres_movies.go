package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/movie-theater-api/internal/domain"
	"github.com/shopspring/decimal"
)

type PostgresMovieRepository struct {
	db *pgxpool.Pool
}

func NewPostgresMovieRepository(db *pgxpool.Pool) *PostgresMovieRepository {
	return &PostgresMovieRepository{
		db: db,
	}
}

func (p *PostgresMovieRepository) Count(ctx context.Context) (int, error) {
	var count int

	err := p.db.QueryRow(ctx, `SELECT count(*) FROM movies`).Scan(&count)
	if err != nil {
		return 0, err
	}

	return count, nil
}

func (p *PostgresMovieRepository) GetAll(ctx context.Context, pagination domain.Pagination) ([]*domain.Movie, error) {
	query := `
		SELECT id, name, date, score, overview
		FROM movies
		ORDER BY id DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := p.db.Query(ctx, query, pagination.Limit(), pagination.Offset())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	movies := []*domain.Movie{}

	for rows.Next() {
		var movie domain.Movie

		err := rows.Scan(
			&movie.ID,
			&movie.Name,
			&movie.Date,
			&movie.Score,
			&movie.Overview,
		)
		if err != nil {
			return nil, err
		}

		movies = append(movies, &movie)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return movies, nil
}

func (p *PostgresMovieRepository) GetById(ctx context.Context, id int) (*domain.Movie, error) {
	query := `
		SELECT
			m.id,
			m.name,
			m.date,
			m.score,
			m.overview,
			m.status,
			m.budget,
			m.revenue,
			c.id,
			c.code,
			c.name
		FROM movies m
		JOIN countries c ON c.id = m.country_id
		WHERE m.id = $1
	`

	var (
		movie   domain.Movie
		budget  pgtype.Numeric
		revenue pgtype.Numeric
	)

	err := p.db.QueryRow(ctx, query, id).Scan(
		&movie.ID,
		&movie.Name,
		&movie.Date,
		&movie.Score,
		&movie.Overview,
		&movie.Status,
		&budget,
		&revenue,
		&movie.Country.ID,
		&movie.Country.Code,
		&movie.Country.Name,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	movie.Budget = fromNumeric(budget)
	movie.Revenue = fromNumeric(revenue)

	movie.Genres, err = genresRelation.getByMovieId(ctx, p.db, id)
	if err != nil {
		return nil, err
	}

	movie.Actors, err = actorsRelation.getByMovieId(ctx, p.db, id)
	if err != nil {
		return nil, err
	}

	movie.Languages, err = languagesRelation.getByMovieId(ctx, p.db, id)
	if err != nil {
		return nil, err
	}

	return &movie, nil
}

// Create stores the movie together with its country, genres, actors and
// languages in a single transaction. Related rows are looked up by natural key
// and created when missing. On success every id in movie is populated.
func (p *PostgresMovieRepository) Create(ctx context.Context, movie *domain.Movie) error {
	return runInTx(ctx, p.db, func(tx pgx.Tx) error {
		var exists bool

		err := tx.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM movies WHERE name = $1 AND date = $2)`,
			movie.Name,
			movie.Date).Scan(&exists)
		if err != nil {
			return err
		}

		if exists {
			return domain.ErrMovieAlreadyExists
		}

		country, err := getOrCreateCountry(ctx, tx, movie.Country.Code)
		if err != nil {
			return classifyError(err)
		}
		movie.Country = country

		query := `
			INSERT INTO movies (name, date, score, overview, status, budget, revenue, country_id)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING id
		`

		err = tx.QueryRow(ctx,
			query,
			movie.Name,
			movie.Date,
			movie.Score,
			movie.Overview,
			movie.Status,
			toNumeric(movie.Budget),
			toNumeric(movie.Revenue),
			movie.Country.ID).Scan(&movie.ID)
		if err != nil {
			return classifyError(err)
		}

		err = genresRelation.attach(ctx, tx, movie.ID, movie.Genres)
		if err != nil {
			return classifyError(err)
		}

		err = actorsRelation.attach(ctx, tx, movie.ID, movie.Actors)
		if err != nil {
			return classifyError(err)
		}

		err = languagesRelation.attach(ctx, tx, movie.ID, movie.Languages)
		if err != nil {
			return classifyError(err)
		}

		return nil
	})
}

// Update applies only the fields set in update.
func (p *PostgresMovieRepository) Update(ctx context.Context, id int, update domain.MovieUpdate) error {
	if update.IsEmpty() {
		return p.ensureExists(ctx, id)
	}

	query, args := buildUpdateQuery(id, update)

	tag, err := p.db.Exec(ctx, query, args...)
	if err != nil {
		return classifyError(err)
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}

// Delete removes the movie and its memberships. Countries, genres, actors and
// languages are shared and stay in place.
func (p *PostgresMovieRepository) Delete(ctx context.Context, id int) error {
	tag, err := p.db.Exec(ctx, `DELETE FROM movies WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}

func (p *PostgresMovieRepository) ensureExists(ctx context.Context, id int) error {
	var exists bool

	err := p.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM movies WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return err
	}

	if !exists {
		return domain.ErrRecordNotFound
	}

	return nil
}

func buildUpdateQuery(id int, update domain.MovieUpdate) (string, []any) {
	var (
		sets []string
		args []any
	)

	set := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if update.Name != nil {
		set("name", *update.Name)
	}
	if update.Date != nil {
		set("date", *update.Date)
	}
	if update.Score != nil {
		set("score", *update.Score)
	}
	if update.Overview != nil {
		set("overview", *update.Overview)
	}
	if update.Status != nil {
		set("status", *update.Status)
	}
	if update.Budget != nil {
		set("budget", toNumeric(*update.Budget))
	}
	if update.Revenue != nil {
		set("revenue", toNumeric(*update.Revenue))
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE movies SET %s WHERE id = $%d", strings.Join(sets, ", "), len(args))

	return query, args
}

// classifyError maps constraint violations to domain errors.
func classifyError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		if pgErr.ConstraintName == "movies_name_date_key" {
			return domain.ErrMovieAlreadyExists
		}
		return err
	case pgerrcode.CheckViolation,
		pgerrcode.NumericValueOutOfRange,
		pgerrcode.StringDataRightTruncationDataException,
		pgerrcode.InvalidDatetimeFormat,
		pgerrcode.DatetimeFieldOverflow:
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, pgErr.Message)
	default:
		return err
	}
}

func toNumeric(d decimal.Decimal) pgtype.Numeric {
	return pgtype.Numeric{
		Int:   d.Coefficient(),
		Exp:   d.Exponent(),
		Valid: true,
	}
}

func fromNumeric(n pgtype.Numeric) decimal.Decimal {
	if !n.Valid || n.Int == nil {
		return decimal.Zero
	}

	return decimal.NewFromBigInt(n.Int, n.Exp)
}
