// Copyright (c) 2026 Mergington High School.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/mergington/activities/cliparse"
	"github.com/mergington/activities/db"
)

// SetupTestDB creates a fresh in-memory sqlite database with the full schema.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	// A second connection would see a different empty :memory: database.
	conn.SetMaxOpenConns(1)
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// SeedDefault loads the built-in Mergington catalog into the database.
func SeedDefault(t *testing.T, conn *sql.DB) {
	t.Helper()

	if err := db.Seed(conn, db.DefaultSeed()); err != nil {
		t.Fatalf("Failed to seed database: %v", err)
	}
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Mode:         cliparse.ModeServe,
		Port:         8000,
		DatabaseURL:  ":memory:",
		DatabaseType: "sqlite",
	}
}

// CreateTestActivity inserts an activity with the given capacity and returns
// its name.
func CreateTestActivity(t *testing.T, conn *sql.DB, name string, maxParticipants int) string {
	t.Helper()

	var seq int
	if err := conn.QueryRow("SELECT COUNT(*) FROM activity").Scan(&seq); err != nil {
		t.Fatalf("Failed to count activities: %v", err)
	}

	_, err := conn.Exec(`
		INSERT INTO activity (name, description, schedule, max_participants, seq)
		VALUES ($1, 'Test activity', 'Mondays, 3:30 PM', $2, $3)
	`, name, maxParticipants, seq)
	if err != nil {
		t.Fatalf("Failed to create test activity: %v", err)
	}

	return name
}

// AddTestParticipant signs an email up for an activity directly in the store.
func AddTestParticipant(t *testing.T, conn *sql.DB, activity, email string) {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO participant (id, activity_name, email, signed_up_at)
		VALUES ($1, $2, $3, $4)
	`, uuid.NewString(), activity, email, time.Now())
	if err != nil {
		t.Fatalf("Failed to add test participant: %v", err)
	}
}
