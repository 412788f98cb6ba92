//go:build ignore

package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
)

// Creates a user account. Usage:
//
//	go run scripts/utilities/create_user.go user@example.com password
func main() {
	if len(os.Args) != 3 {
		log.Fatal("usage: create_user.go <email> <password>")
	}
	email, password := os.Args[1], os.Args[2]

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL not set")
	}

	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("failed to ping database: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	id := uuid.New().String()
	_, err = db.Exec(
		"INSERT INTO users (id, email, password_hash, created_at) VALUES ($1, $2, $3, $4)",
		id, email, string(hash), time.Now(),
	)
	if err != nil {
		log.Fatalf("failed to insert user: %v", err)
	}

	fmt.Printf("✓ Created user %s (%s)\n", email, id)
}
