// Copyright (c) 2026 Mergington High School.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the HTTP routes for the activities API using the
Go 1.22+ method and pattern syntax of net/http.ServeMux.

	GET    /health
	GET    /activities
	POST   /activities/{name}/signup
	DELETE /activities/{name}/unregister
	GET    /

Activity names containing spaces or other reserved characters arrive
percent-encoded; ServeMux decodes the {name} segment before handlers read it
with r.PathValue.
*/
package router
