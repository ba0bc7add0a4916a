// Copyright (c) 2026 Mergington High School.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// SeedActivity describes one activity to load at startup.
type SeedActivity struct {
	Name            string   `yaml:"name"`
	Description     string   `yaml:"description"`
	Schedule        string   `yaml:"schedule"`
	MaxParticipants int      `yaml:"max_participants"`
	Participants    []string `yaml:"participants"`
}

// LoadSeedFile reads a YAML seed file:
//
//	activities:
//	  - name: Chess Club
//	    description: Learn strategies and compete in chess tournaments
//	    schedule: Fridays, 3:30 PM - 5:00 PM
//	    max_participants: 12
//	    participants:
//	      - michael@mergington.edu
func LoadSeedFile(path string) ([]SeedActivity, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	var doc struct {
		Activities []SeedActivity `yaml:"activities"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}
	if len(doc.Activities) == 0 {
		return nil, fmt.Errorf("seed file %s contains no activities", path)
	}

	return doc.Activities, nil
}

// DefaultSeed returns the built-in activity catalog.
func DefaultSeed() []SeedActivity {
	return []SeedActivity{
		{
			Name:            "Chess Club",
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
		},
		{
			Name:            "Programming Class",
			Description:     "Learn programming fundamentals and build software projects",
			Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
		},
		{
			Name:            "Science Club",
			Description:     "Conduct experiments and explore scientific concepts",
			Schedule:        "Tuesdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 20,
			Participants:    []string{},
		},
	}
}

// Seed inserts the given activities and their rosters. Activities that
// already exist are left untouched, so restarting the server does not
// duplicate or reset data.
func Seed(db *sql.DB, activities []SeedActivity) error {
	for i, a := range activities {
		var exists int
		err := db.QueryRow("SELECT COUNT(*) FROM activity WHERE name = $1", a.Name).Scan(&exists)
		if err != nil {
			return fmt.Errorf("failed to check activity %q: %w", a.Name, err)
		}
		if exists > 0 {
			continue
		}

		_, err = db.Exec(`
			INSERT INTO activity (name, description, schedule, max_participants, seq)
			VALUES ($1, $2, $3, $4, $5)
		`, a.Name, a.Description, a.Schedule, a.MaxParticipants, i)
		if err != nil {
			return fmt.Errorf("failed to insert activity %q: %w", a.Name, err)
		}

		for _, email := range a.Participants {
			_, err = db.Exec(`
				INSERT INTO participant (id, activity_name, email, signed_up_at)
				VALUES ($1, $2, $3, $4)
			`, uuid.NewString(), a.Name, email, time.Now())
			if err != nil {
				return fmt.Errorf("failed to insert participant %q for %q: %w", email, a.Name, err)
			}
		}
	}

	return nil
}
