package models

import "time"

type User struct {
	ID          string    `json:"id" db:"id"`
	Email       string    `json:"email" db:"email"`
	DisplayName *string   `json:"display_name,omitempty" db:"display_name"`
	Points      int64     `json:"points" db:"points"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
