package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type Movie struct {
	ID        int
	Name      string
	Date      time.Time
	Score     float64
	Overview  string
	Status    string
	Budget    decimal.Decimal
	Revenue   decimal.Decimal
	Country   Country
	Genres    []NamedEntity
	Actors    []NamedEntity
	Languages []NamedEntity
}

type Country struct {
	ID   int
	Code string
	Name *string
}

// NamedEntity is a genre, actor or language row. Name is its natural key.
type NamedEntity struct {
	ID   int
	Name string
}

// MovieUpdate holds the fields of a partial update. A nil field is left untouched.
type MovieUpdate struct {
	Name     *string
	Date     *time.Time
	Score    *float64
	Overview *string
	Status   *string
	Budget   *decimal.Decimal
	Revenue  *decimal.Decimal
}

func (u MovieUpdate) IsEmpty() bool {
	return u.Name == nil &&
		u.Date == nil &&
		u.Score == nil &&
		u.Overview == nil &&
		u.Status == nil &&
		u.Budget == nil &&
		u.Revenue == nil
}

// NewNamedEntities builds unsaved entities from names, dropping repeated names
// while keeping first-seen order.
func NewNamedEntities(names []string) []NamedEntity {
	seen := make(map[string]struct{}, len(names))
	entities := make([]NamedEntity, 0, len(names))

	for _, name := range names {
		if _, ok := seen[name]; ok {
			continue
		}

		seen[name] = struct{}{}
		entities = append(entities, NamedEntity{Name: name})
	}

	return entities
}

type MovieRepository interface {
	Count(ctx context.Context) (int, error)
	GetAll(ctx context.Context, pagination Pagination) ([]*Movie, error)
	GetById(ctx context.Context, id int) (*Movie, error)
	Create(ctx context.Context, movie *Movie) error
	Update(ctx context.Context, id int, update MovieUpdate) error
	Delete(ctx context.Context, id int) error
}
