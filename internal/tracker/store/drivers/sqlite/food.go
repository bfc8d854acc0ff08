package sqlite

import (
	"context"
	"time"

	"github.com/fitnesslabs/fittrack/internal/tracker/domain"
)

type foodEntriesRepo struct {
	q dbtx
}

const foodColumns = `id, client_id, food_item, quantity, date, created_at, updated_at`

func scanFoodEntry(row interface{ Scan(...any) error }) (domain.FoodEntry, error) {
	var e domain.FoodEntry
	err := row.Scan(&e.ID, &e.ClientID, &e.FoodItem, &e.Quantity, &e.Date, &e.CreatedAt, &e.UpdatedAt)
	return e, err
}

func (r *foodEntriesRepo) CreateFoodEntry(ctx context.Context, e domain.FoodEntry) error {
	now := time.Now().UTC()
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO food_consumption (id, client_id, food_item, quantity, date, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.ClientID, e.FoodItem, e.Quantity, e.Date, now, now)
	return mapConstraint(err)
}

func (r *foodEntriesRepo) ListFoodEntriesByClient(
	ctx context.Context,
	clientID string,
) ([]domain.FoodEntry, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT `+foodColumns+` FROM food_consumption
		 WHERE client_id = ? ORDER BY date DESC, id DESC`, clientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.FoodEntry
	for rows.Next() {
		e, err := scanFoodEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
