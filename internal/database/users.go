package database

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/SimoSabev/sortex/internal/models"
)

type EnsureUserParams struct {
	ID          string
	Email       string
	DisplayName *string
}

// EnsureUser creates the user row on first contact and returns the current
// row either way. The insert is a single-statement upsert so concurrent
// first-time requests for the same identity cannot create duplicates or
// surface a unique-violation to the caller.
func (q *Queries) EnsureUser(ctx context.Context, arg EnsureUserParams) (*models.User, error) {
	insert := `
		INSERT INTO users (id, email, display_name)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO NOTHING
	`
	if _, err := q.db.Exec(ctx, insert, arg.ID, arg.Email, arg.DisplayName); err != nil {
		return nil, err
	}

	return q.GetUserByID(ctx, arg.ID)
}

func (q *Queries) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	query := `
		SELECT id, email, display_name, points, created_at
		FROM users
		WHERE id = $1
	`
	var user models.User

	err := q.db.QueryRow(ctx, query, id).Scan(
		&user.ID,
		&user.Email,
		&user.DisplayName,
		&user.Points,
		&user.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &user, nil
}

// AddPoints credits delta points to a user with an atomic in-place add, so
// concurrent uploads by the same user never lose an increment. It returns
// the new balance.
func (q *Queries) AddPoints(ctx context.Context, userID string, delta int) (int64, error) {
	query := `
		UPDATE users
		SET points = points + $1
		WHERE id = $2
		RETURNING points
	`
	var newPoints int64
	err := q.db.QueryRow(ctx, query, delta, userID).Scan(&newPoints)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ErrUserNotFound
		}
		return 0, err
	}
	return newPoints, nil
}

var ErrUserNotFound = errors.New("user not found")
