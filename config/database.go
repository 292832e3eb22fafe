package config

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/glebarez/go-sqlite"
)

var DB *sql.DB

// InitDB opens the SQLite store configured via DB_PATH
func InitDB() error {
	return OpenDB(GetEnv("DB_PATH", "./store.db"))
}

// OpenDB connects to the given SQLite database and makes sure both
// tables exist. Tests pass ":memory:".
func OpenDB(dsn string) error {
	var err error
	DB, err = sql.Open("sqlite", dsn)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	if err = DB.Ping(); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	DB.SetMaxOpenConns(25)
	DB.SetMaxIdleConns(25)
	DB.SetConnMaxLifetime(5 * time.Minute)

	return createTables()
}

func createTables() error {
	_, err := DB.Exec(`
		CREATE TABLE IF NOT EXISTS movies (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL,
			overview TEXT NOT NULL,
			year INTEGER NOT NULL,
			rating REAL NOT NULL,
			category TEXT NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create movies table: %w", err)
	}

	_, err = DB.Exec(`
		CREATE TABLE IF NOT EXISTS computers (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			brand TEXT NOT NULL,
			model TEXT NOT NULL,
			color TEXT NOT NULL,
			processor TEXT NOT NULL,
			ram INTEGER NOT NULL,
			storage INTEGER NOT NULL,
			price REAL NOT NULL,
			category TEXT NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create computers table: %w", err)
	}

	return nil
}
