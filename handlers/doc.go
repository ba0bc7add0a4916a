// Copyright (c) 2026 Mergington High School.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the activities API.

ActivityHandler is created via a constructor that accepts *sql.DB and Config:

	h := handlers.NewActivityHandler(db, cfg)

# Endpoints

	GET    /activities                        → ListActivities
	POST   /activities/{name}/signup?email=   → Signup
	DELETE /activities/{name}/unregister?email= → Unregister

Signup rejects unknown activities (404), duplicate signups (400) and full
activities (400). Unregister rejects unknown activities (404) and students
who are not on the roster (400). Every failure uses the {"detail": ...}
envelope; successes use {"message": ...}.

Activity names appear percent-encoded in the path and are decoded by the
router before reaching handlers via r.PathValue.
*/
package handlers
