// Copyright (c) 2026 Mergington High School.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Mergington activities system.

Students browse extracurricular activities, sign up with their school email,
and unregister. The state lives server-side; the browser front-end re-fetches
the whole catalog after every change.

# Serving the API

	go run . serve -p 8000

Or with environment variables (a .env file works too):

	PORT=8000 DATABASE_TYPE=sqlite DATABASE_URL=activities.db go run .

By default the server seeds a sqlite database with the built-in catalog;
pass --seed activities.yaml for a custom one, or DATABASE_TYPE=postgres
with a DATABASE_URL for a shared deployment.

# Browsing

	go run . browse -a http://localhost:8000

Starts the interactive terminal front-end against a running server.

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers for the activities API
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Wire types, including the order-preserving activity collection
  - db: Schema creation and catalog seeding
  - cliparse: Configuration parsing
  - client: Typed API client
  - ui: The front-end (renderer, signup/unregister handlers, status area)

See package documentation for each component.
*/
package main
