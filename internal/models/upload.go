package models

import (
	"time"

	"github.com/google/uuid"
)

type Upload struct {
	ID            uuid.UUID `json:"id"`
	UserID        string    `json:"user_id"`
	FileName      string    `json:"file_name"`
	FileURL       string    `json:"file_url"`
	FileType      string    `json:"file_type"`
	FileSize      int64     `json:"file_size"`
	RecyclingType *string   `json:"recycling_type,omitempty"`
	PointsEarned  int       `json:"points_earned"`
	UploadedAt    time.Time `json:"uploaded_at"`
}
