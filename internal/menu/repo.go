package menu

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrUnavailable = errors.New("menu store unavailable")

type Repository interface {
	List(ctx context.Context) ([]Item, error)
}

type PGRepo struct{ db *pgxpool.Pool }

// NewPGRepo accepts a nil pool; List then reports ErrUnavailable and the
// provider falls back to the sample catalog.
func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

func (r *PGRepo) List(ctx context.Context) ([]Item, error) {
	if r.db == nil {
		return nil, ErrUnavailable
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `
		SELECT id, name, price, category
		FROM menu_items
		ORDER BY position
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Item
	for rows.Next() {
		var it Item
		if err := rows.Scan(&it.ID, &it.Name, &it.Price, &it.Category); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}
