package models

import "time"

// User is an account owner. Only the fields the auth layer needs live here;
// profile and billing data belong to other services.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
