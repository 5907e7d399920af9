package entity

import (
	"time"
)

// Movie is a title on a user's shelf. Director, Year and PosterURL are
// only ever written by a successful metadata lookup; their zero values
// mean "never enriched".
type Movie struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Title     string    `json:"title"`
	Director  string    `json:"director,omitempty"`
	Year      int       `json:"year,omitempty"`
	PosterURL string    `json:"poster_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Enrichment is one consistent lookup result. It is applied to a movie
// as a unit so the three fields never diverge from each other.
type Enrichment struct {
	Director  string
	Year      int
	PosterURL string
}

// Apply overwrites all enrichment fields together.
func (m *Movie) Apply(e Enrichment) {
	m.Director = e.Director
	m.Year = e.Year
	m.PosterURL = e.PosterURL
}
