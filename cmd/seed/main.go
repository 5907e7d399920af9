package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/movieshelf/movieshelf/config"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	name := "Demo User"

	var userID string
	err = db.QueryRow(`SELECT id FROM users WHERE name = $1 LIMIT 1`, name).Scan(&userID)
	if err == sql.ErrNoRows {
		err = db.QueryRow(`
			INSERT INTO users (name) VALUES ($1)
			RETURNING id
		`, name).Scan(&userID)
	}
	if err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: id=%s name=%s\n", userID, name)

	movies := []struct {
		title     string
		director  string
		year      int
		posterURL string
	}{
		{"Inception", "Christopher Nolan", 2010, "https://m.media-amazon.com/images/M/inception.jpg"},
		{"Spirited Away", "Hayao Miyazaki", 2001, ""},
		{"Some Obscure Short", "", 0, ""},
	}

	for _, mv := range movies {
		var exists bool
		if err := db.QueryRow(`
			SELECT EXISTS (SELECT 1 FROM movies WHERE user_id = $1 AND title = $2)
		`, userID, mv.title).Scan(&exists); err != nil {
			log.Fatalf("failed to check movie %q: %v", mv.title, err)
		}
		if exists {
			continue
		}

		var movieID string
		if err := db.QueryRow(`
			INSERT INTO movies (user_id, title, director, year, poster_url)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id
		`, userID, mv.title, mv.director, mv.year, mv.posterURL).Scan(&movieID); err != nil {
			log.Fatalf("failed to seed movie %q: %v", mv.title, err)
		}
		fmt.Printf("seeded movie: id=%s title=%s\n", movieID, mv.title)
	}
}
