// Copyright (c) 2026 Mergington High School.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse parses CLI flags and environment variables into a Config.

Flags win over environment variables; a .env file in the working directory
fills in unset environment variables via godotenv.

Settings:

  - mode (first argument): serve (default) or browse
  - PORT (-p): server port, default 8000
  - DATABASE_TYPE (-t): sqlite (default) or postgres
  - DATABASE_URL (-d): connection string; defaults to activities.db for sqlite,
    required for postgres
  - SEED_FILE (--seed): YAML activity catalog; built-in catalog when unset
  - API_URL (-a): base URL the browse mode talks to; defaults to
    http://localhost:PORT
*/
package cliparse
