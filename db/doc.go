// Copyright (c) 2026 Mergington High School.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db provides schema creation and seed data for the activities store.

# Schema

Two tables: activity (keyed by name, with a seq column preserving catalog
order) and participant (one row per signup, unique per activity+email).

	db.CreateSchema(conn)

# Seeding

The server seeds the catalog at startup. With no --seed flag the built-in
Mergington catalog is used; otherwise activities are loaded from a YAML
file:

	seed, err := db.LoadSeedFile("activities.yaml")
	err = db.Seed(conn, seed)

Seeding is idempotent: activities already present are skipped.
*/
package db
