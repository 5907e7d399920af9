package entity

import (
	"time"
)

// User owns a collection of movies. Name is the only caller-supplied
// field; everything else is assigned by the repository on insert.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
