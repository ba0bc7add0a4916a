// Copyright (c) 2026 Mergington High School.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/mergington/activities/cliparse"
	"github.com/mergington/activities/handlers"
	"github.com/mergington/activities/middleware"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	activityHandler := handlers.NewActivityHandler(db, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Activities
	mux.HandleFunc("GET /activities", middleware.WithLogging(activityHandler.ListActivities))
	mux.HandleFunc("POST /activities/{name}/signup", middleware.WithLogging(activityHandler.Signup))
	mux.HandleFunc("DELETE /activities/{name}/unregister", middleware.WithLogging(activityHandler.Unregister))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("mergington activities API v1"))
	})

	return mux
}
