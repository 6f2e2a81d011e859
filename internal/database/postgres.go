package database

import (
	"database/sql"
	"log"
	"time"

	_ "github.com/lib/pq"
)

var PostgresDB *sql.DB

// ConnectPostgres connects to PostgreSQL database
func ConnectPostgres(postgresURI string) error {
	var err error

	PostgresDB, err = sql.Open("postgres", postgresURI)
	if err != nil {
		return err
	}

	// Set connection pool settings
	PostgresDB.SetMaxOpenConns(25)
	PostgresDB.SetMaxIdleConns(5)
	PostgresDB.SetConnMaxLifetime(5 * time.Minute)

	// Test connection
	if err = PostgresDB.Ping(); err != nil {
		return err
	}

	log.Println("✅ Connected to PostgreSQL")

	// Initialize tables
	if err = InitPostgresTables(); err != nil {
		return err
	}

	return nil
}

// postgresSchema is idempotent and runs on every startup. Usernames are
// stored lowercased; the unique index on LOWER(username) makes uniqueness
// case-insensitive even if a mixed-case value sneaks in.
var postgresSchema = []string{
	// Accounts
	`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			username VARCHAR(30) NOT NULL UNIQUE,
			password_hash VARCHAR(255) NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT NOW(),
			is_active BOOLEAN NOT NULL DEFAULT TRUE
		)`,

	// Health profiles: exactly one row per user, demographics nullable
	`CREATE TABLE IF NOT EXISTS profiles (
			user_id UUID PRIMARY KEY,
			name VARCHAR(255) NOT NULL DEFAULT '',
			age INTEGER,
			date_of_birth DATE,
			gender VARCHAR(10),
			weight_kg DOUBLE PRECISION,
			height_cm DOUBLE PRECISION,
			substance_use TEXT,
			history TEXT,
			updated_at TIMESTAMP NOT NULL DEFAULT NOW()
		)`,

	// Uploaded report metadata; file bytes live in the blob store under blob_key
	`CREATE TABLE IF NOT EXISTS reports (
			id UUID PRIMARY KEY,
			user_id UUID NOT NULL,
			file_name VARCHAR(255) NOT NULL,
			blob_key TEXT NOT NULL,
			file_url TEXT NOT NULL,
			report_date DATE NOT NULL,
			notes TEXT,
			created_at TIMESTAMP NOT NULL
		)`,

	`CREATE UNIQUE INDEX IF NOT EXISTS idx_users_username_lower ON users(LOWER(username))`,
	`CREATE INDEX IF NOT EXISTS idx_reports_user_id ON reports(user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_reports_user_created ON reports(user_id, created_at DESC, id DESC)`,
}

// InitPostgresTables creates all necessary tables if they don't exist
func InitPostgresTables() error {
	for _, query := range postgresSchema {
		if _, err := PostgresDB.Exec(query); err != nil {
			return err
		}
	}

	log.Println("✅ PostgreSQL tables initialized")
	return nil
}

// DisconnectPostgres closes the PostgreSQL connection
func DisconnectPostgres() error {
	if PostgresDB != nil {
		return PostgresDB.Close()
	}
	return nil
}
