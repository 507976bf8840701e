package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/metinatakli/movie-theater-api/internal/domain"
)

// relation describes a many-to-many link between movies and a table of
// entities keyed by a unique name.
type relation struct {
	table      string
	joinTable  string
	joinColumn string
}

var (
	genresRelation    = relation{table: "genres", joinTable: "movies_genres", joinColumn: "genre_id"}
	actorsRelation    = relation{table: "actors", joinTable: "movies_actors", joinColumn: "actor_id"}
	languagesRelation = relation{table: "languages", joinTable: "movies_languages", joinColumn: "language_id"}
)

// getOrCreateCountry returns the country with the given code, inserting it first
// if needed. The unique index on code makes this safe under concurrent writers:
// the no-op update lets RETURNING yield the existing row.
func getOrCreateCountry(ctx context.Context, q querier, code string) (domain.Country, error) {
	query := `
		INSERT INTO countries (code)
		VALUES ($1)
		ON CONFLICT (code) DO UPDATE SET code = EXCLUDED.code
		RETURNING id, code, name
	`

	var country domain.Country

	err := q.QueryRow(ctx, query, code).Scan(&country.ID, &country.Code, &country.Name)
	if err != nil {
		return domain.Country{}, fmt.Errorf("resolve country %q: %w", code, err)
	}

	return country, nil
}

func (rel relation) getOrCreate(ctx context.Context, q querier, name string) (domain.NamedEntity, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (name)
		VALUES ($1)
		ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		RETURNING id, name
	`, rel.table)

	var entity domain.NamedEntity

	err := q.QueryRow(ctx, query, name).Scan(&entity.ID, &entity.Name)
	if err != nil {
		return domain.NamedEntity{}, fmt.Errorf("resolve %s %q: %w", rel.table, name, err)
	}

	return entity, nil
}

// attach resolves every entity by name and links it to the movie. The
// entities are updated in place with their ids.
func (rel relation) attach(ctx context.Context, tx pgx.Tx, movieID int, entities []domain.NamedEntity) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (movie_id, %s)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`, rel.joinTable, rel.joinColumn)

	for i := range entities {
		entity, err := rel.getOrCreate(ctx, tx, entities[i].Name)
		if err != nil {
			return err
		}

		_, err = tx.Exec(ctx, query, movieID, entity.ID)
		if err != nil {
			return err
		}

		entities[i] = entity
	}

	return nil
}

func (rel relation) getByMovieId(ctx context.Context, q querier, movieID int) ([]domain.NamedEntity, error) {
	query := fmt.Sprintf(`
		SELECT e.id, e.name
		FROM %s e
		JOIN %s j ON j.%s = e.id
		WHERE j.movie_id = $1
		ORDER BY e.id
	`, rel.table, rel.joinTable, rel.joinColumn)

	rows, err := q.Query(ctx, query, movieID)
	if err != nil {
		return nil, err
	}

	return pgx.CollectRows(rows, pgx.RowToStructByPos[domain.NamedEntity])
}
