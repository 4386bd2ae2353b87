package config

import (
	"os"
)

// Store captures persistence configuration for the review charge reference
// store. The rules core performs no other I/O.
type Store struct {
	DatabaseURL string
}

// FromEnv builds a Store config from environment variables so wiring code
// stays lean.
func FromEnv() Store {
	dsn := os.Getenv("WATERBILLING_DATABASE_URL")
	if dsn == "" {
		dsn = "postgres://localhost:5432/waterbilling?sslmode=disable"
	}
	return Store{DatabaseURL: dsn}
}
