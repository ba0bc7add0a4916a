// Copyright (c) 2026 Mergington High School.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and response helpers.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /activities", middleware.WithLogging(handler))

Logs request start (method, path, remote) and completion (duration_ms).

# CORS Middleware

The original web front-end is served separately, so the API allows
cross-origin requests:

	server := http.Server{
		Handler: middleware.CORS(mux),
	}

# JSON Helpers

JSONResponse writes any value as JSON with a status code. DetailResponse
writes the {"detail": ...} error envelope every failing endpoint uses.
*/
package middleware
