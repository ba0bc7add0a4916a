// Copyright (c) 2026 Mergington High School.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Placeholders are $n in strictly ascending order throughout this module;
// both lib/pq and modernc.org/sqlite accept that form.
const schema = `
-- Activities
CREATE TABLE IF NOT EXISTS activity (
    name TEXT PRIMARY KEY,
    description TEXT NOT NULL,
    schedule TEXT NOT NULL,
    max_participants INTEGER NOT NULL CHECK (max_participants >= 0),
    seq INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_activity_seq ON activity(seq);

-- Participants
CREATE TABLE IF NOT EXISTS participant (
    id TEXT PRIMARY KEY,
    activity_name TEXT NOT NULL REFERENCES activity(name) ON DELETE CASCADE,
    email TEXT NOT NULL,
    signed_up_at TIMESTAMP NOT NULL,
    UNIQUE (activity_name, email)
);

CREATE INDEX IF NOT EXISTS idx_participant_activity ON participant(activity_name);
`
