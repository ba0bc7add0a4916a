// Copyright (c) 2026 Mergington High School.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open in-memory database: %v", err)
	}
	conn.SetMaxOpenConns(1)
	t.Cleanup(func() { conn.Close() })

	if err := CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}
	return conn
}

func TestSeedDefault(t *testing.T) {
	conn := openTestDB(t)

	if err := Seed(conn, DefaultSeed()); err != nil {
		t.Fatalf("Seed failed: %v", err)
	}

	var activities int
	if err := conn.QueryRow("SELECT COUNT(*) FROM activity").Scan(&activities); err != nil {
		t.Fatalf("Count query failed: %v", err)
	}
	if activities != 3 {
		t.Errorf("Expected 3 activities, got %d", activities)
	}

	var chessRoster int
	err := conn.QueryRow(
		"SELECT COUNT(*) FROM participant WHERE activity_name = $1", "Chess Club",
	).Scan(&chessRoster)
	if err != nil {
		t.Fatalf("Roster query failed: %v", err)
	}
	if chessRoster != 2 {
		t.Errorf("Expected 2 Chess Club participants, got %d", chessRoster)
	}
}

func TestSeedIsIdempotent(t *testing.T) {
	conn := openTestDB(t)

	if err := Seed(conn, DefaultSeed()); err != nil {
		t.Fatalf("First seed failed: %v", err)
	}
	if err := Seed(conn, DefaultSeed()); err != nil {
		t.Fatalf("Second seed failed: %v", err)
	}

	var count int
	if err := conn.QueryRow("SELECT COUNT(*) FROM participant").Scan(&count); err != nil {
		t.Fatalf("Count query failed: %v", err)
	}
	if count != 4 {
		t.Errorf("Expected 4 participants after double seed, got %d", count)
	}
}

func TestLoadSeedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "activities.yaml")
	content := `activities:
  - name: Drama Club
    description: Stage plays and improv
    schedule: Mondays, 4:00 PM - 5:30 PM
    max_participants: 15
    participants:
      - olivia@mergington.edu
  - name: Robotics
    description: Build and program robots
    schedule: Wednesdays, 3:30 PM - 5:00 PM
    max_participants: 10
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write seed file: %v", err)
	}

	seed, err := LoadSeedFile(path)
	if err != nil {
		t.Fatalf("LoadSeedFile failed: %v", err)
	}
	if len(seed) != 2 {
		t.Fatalf("Expected 2 seed activities, got %d", len(seed))
	}
	if seed[0].Name != "Drama Club" || seed[0].MaxParticipants != 15 {
		t.Errorf("Unexpected first activity: %+v", seed[0])
	}
	if len(seed[0].Participants) != 1 || seed[0].Participants[0] != "olivia@mergington.edu" {
		t.Errorf("Unexpected roster: %v", seed[0].Participants)
	}
}

func TestLoadSeedFileErrors(t *testing.T) {
	if _, err := LoadSeedFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Expected error for missing file")
	}

	empty := filepath.Join(t.TempDir(), "empty.yaml")
	if err := os.WriteFile(empty, []byte("activities: []\n"), 0o644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}
	if _, err := LoadSeedFile(empty); err == nil {
		t.Error("Expected error for empty activity list")
	}
}
