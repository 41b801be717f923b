package database

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/SimoSabev/sortex/internal/models"
)

var ErrOwnerMissing = errors.New("upload owner does not exist")

type CreateUploadParams struct {
	ID            uuid.UUID
	UserID        string
	FileName      string
	FileURL       string
	FileType      string
	FileSize      int64
	RecyclingType *string
	PointsEarned  int
}

func (q *Queries) CreateUpload(ctx context.Context, arg CreateUploadParams) (*models.Upload, error) {
	query := `
		INSERT INTO uploads (id, user_id, file_name, file_url, file_type, file_size, recycling_type, points_earned)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, user_id, file_name, file_url, file_type, file_size, recycling_type, points_earned, uploaded_at
	`
	row := q.db.QueryRow(ctx, query,
		arg.ID,
		arg.UserID,
		arg.FileName,
		arg.FileURL,
		arg.FileType,
		arg.FileSize,
		arg.RecyclingType,
		arg.PointsEarned,
	)

	var upload models.Upload
	err := row.Scan(
		&upload.ID,
		&upload.UserID,
		&upload.FileName,
		&upload.FileURL,
		&upload.FileType,
		&upload.FileSize,
		&upload.RecyclingType,
		&upload.PointsEarned,
		&upload.UploadedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, ErrOwnerMissing
		}
		return nil, err
	}

	return &upload, nil
}

func (q *Queries) ListUploadsByUser(ctx context.Context, userID string, limit int) ([]models.Upload, error) {
	query := `
		SELECT id, user_id, file_name, file_url, file_type, file_size, recycling_type, points_earned, uploaded_at
		FROM uploads
		WHERE user_id = $1
		ORDER BY uploaded_at DESC
		LIMIT $2
	`
	rows, err := q.db.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var uploads []models.Upload
	for rows.Next() {
		var upload models.Upload
		err := rows.Scan(
			&upload.ID,
			&upload.UserID,
			&upload.FileName,
			&upload.FileURL,
			&upload.FileType,
			&upload.FileSize,
			&upload.RecyclingType,
			&upload.PointsEarned,
			&upload.UploadedAt,
		)
		if err != nil {
			return nil, err
		}
		uploads = append(uploads, upload)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	if uploads == nil {
		return []models.Upload{}, nil
	}

	return uploads, nil
}

func (q *Queries) CountUploadsByUser(ctx context.Context, userID string) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM uploads WHERE user_id = $1`
	err := q.db.QueryRow(ctx, query, userID).Scan(&count)
	return count, err
}

type RecordUploadResult struct {
	Upload    *models.Upload
	NewPoints int64
}

// RecordUpload inserts the upload row and credits the owner's balance in one
// transaction. Either both effects land or neither does; the caller is
// responsible for cleaning up the stored binary when this fails.
func (s *Store) RecordUpload(ctx context.Context, arg CreateUploadParams) (*RecordUploadResult, error) {
	var result RecordUploadResult

	err := s.ExecTx(ctx, func(q *Queries) error {
		upload, err := q.CreateUpload(ctx, arg)
		if err != nil {
			return err
		}

		newPoints, err := q.AddPoints(ctx, arg.UserID, arg.PointsEarned)
		if err != nil {
			return err
		}

		result.Upload = upload
		result.NewPoints = newPoints
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishEvent(ctx, arg.UserID, "points_credited", map[string]interface{}{
		"upload_id":     result.Upload.ID,
		"points_earned": arg.PointsEarned,
		"new_points":    result.NewPoints,
	})

	return &result, nil
}
