// Copyright (c) 2026 Mergington High School.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package client is the typed HTTP client for the activities API.

	c := client.New("http://localhost:8000")
	list, err := c.Activities(ctx)
	msg, err := c.Signup(ctx, "Chess Club", "john@mergington.edu")
	msg, err := c.Unregister(ctx, "Chess Club", "john@mergington.edu")

Activity names are percent-encoded into the path and emails into the query
string, so names with spaces and emails with + work unchanged.

Errors come in two kinds. A non-2xx response becomes *APIError carrying the
server's detail string; anything else (connection refused, timeout, bad
JSON) is a plain error. The UI shows APIError details verbatim and a generic
message for the rest.
*/
package client
