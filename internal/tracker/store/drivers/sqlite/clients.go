package sqlite

import (
	"context"
	"time"

	"github.com/fitnesslabs/fittrack/internal/tracker/domain"
)

type clientsRepo struct {
	q dbtx
}

// Reads join the backing user so the caller gets the login name without a
// second query.
const clientColumns = `c.id, c.user_id, u.username, c.first_name, c.last_name, c.dob, c.created_at, c.updated_at`

const clientFrom = ` FROM clients c JOIN users u ON u.id = c.user_id`

func scanClient(row interface{ Scan(...any) error }) (domain.Client, error) {
	var c domain.Client
	err := row.Scan(&c.ID, &c.UserID, &c.Username, &c.FirstName, &c.LastName, &c.DOB, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

func (r *clientsRepo) GetClientByID(ctx context.Context, id string) (domain.Client, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT `+clientColumns+clientFrom+` WHERE c.id = ?`, id)
	c, err := scanClient(row)
	if err != nil {
		return domain.Client{}, mapNotFound(err)
	}
	return c, nil
}

func (r *clientsRepo) GetClientByUserID(ctx context.Context, userID string) (domain.Client, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT `+clientColumns+clientFrom+` WHERE c.user_id = ?`, userID)
	c, err := scanClient(row)
	if err != nil {
		return domain.Client{}, mapNotFound(err)
	}
	return c, nil
}

func (r *clientsRepo) ListClients(ctx context.Context) ([]domain.Client, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT `+clientColumns+clientFrom+` ORDER BY c.created_at DESC, c.id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var clients []domain.Client
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, err
		}
		clients = append(clients, c)
	}
	return clients, rows.Err()
}

func (r *clientsRepo) CreateClient(ctx context.Context, c domain.Client) error {
	now := time.Now().UTC()
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO clients (id, user_id, first_name, last_name, dob, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.UserID, c.FirstName, c.LastName, c.DOB, now, now)
	return mapConstraint(err)
}

func (r *clientsRepo) DeleteClient(ctx context.Context, clientID string) (int64, error) {
	res, err := r.q.ExecContext(ctx, `DELETE FROM clients WHERE id = ?`, clientID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
