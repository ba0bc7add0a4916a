// Copyright (c) 2026 Mergington High School.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/mergington/activities/cliparse"
	"github.com/mergington/activities/middleware"
	"github.com/mergington/activities/models"
)

type ActivityHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewActivityHandler(db *sql.DB, cfg cliparse.Config) *ActivityHandler {
	return &ActivityHandler{db: db, cfg: cfg}
}

// ListActivities handles GET /activities.
// The response is a JSON object keyed by activity name, in catalog order,
// with each roster in signup order.
func (h *ActivityHandler) ListActivities(w http.ResponseWriter, r *http.Request) {
	rows, err := h.db.Query(`
		SELECT name, description, schedule, max_participants
		FROM activity
		ORDER BY seq
	`)
	if err != nil {
		slog.Error("failed to query activities", "error", err)
		middleware.DetailResponse(w, http.StatusInternalServerError, "Failed to load activities")
		return
	}
	defer rows.Close()

	list := models.ActivityList{}
	index := map[string]int{}
	for rows.Next() {
		var name string
		var a models.Activity
		if err := rows.Scan(&name, &a.Description, &a.Schedule, &a.MaxParticipants); err != nil {
			slog.Error("failed to scan activity", "error", err)
			middleware.DetailResponse(w, http.StatusInternalServerError, "Failed to load activities")
			return
		}
		a.Participants = []string{}
		index[name] = len(list)
		list = append(list, models.NamedActivity{Name: name, Activity: a})
	}
	if err := rows.Err(); err != nil {
		slog.Error("failed to iterate activities", "error", err)
		middleware.DetailResponse(w, http.StatusInternalServerError, "Failed to load activities")
		return
	}

	prows, err := h.db.Query(`
		SELECT activity_name, email
		FROM participant
		ORDER BY activity_name, signed_up_at, id
	`)
	if err != nil {
		slog.Error("failed to query participants", "error", err)
		middleware.DetailResponse(w, http.StatusInternalServerError, "Failed to load activities")
		return
	}
	defer prows.Close()

	for prows.Next() {
		var activityName, email string
		if err := prows.Scan(&activityName, &email); err != nil {
			slog.Error("failed to scan participant", "error", err)
			middleware.DetailResponse(w, http.StatusInternalServerError, "Failed to load activities")
			return
		}
		if i, ok := index[activityName]; ok {
			list[i].Activity.Participants = append(list[i].Activity.Participants, email)
		}
	}
	if err := prows.Err(); err != nil {
		slog.Error("failed to iterate participants", "error", err)
		middleware.DetailResponse(w, http.StatusInternalServerError, "Failed to load activities")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, list)
}

// Signup handles POST /activities/{name}/signup?email=...
func (h *ActivityHandler) Signup(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	email := r.URL.Query().Get("email")
	if email == "" {
		middleware.DetailResponse(w, http.StatusBadRequest, "Email is required")
		return
	}

	var maxParticipants int
	err := h.db.QueryRow("SELECT max_participants FROM activity WHERE name = $1", name).Scan(&maxParticipants)
	if errors.Is(err, sql.ErrNoRows) {
		middleware.DetailResponse(w, http.StatusNotFound, "Activity not found")
		return
	}
	if err != nil {
		slog.Error("failed to query activity", "activity", name, "error", err)
		middleware.DetailResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	var signedUp int
	err = h.db.QueryRow(
		"SELECT COUNT(*) FROM participant WHERE activity_name = $1 AND email = $2",
		name, email,
	).Scan(&signedUp)
	if err != nil {
		slog.Error("failed to check existing signup", "activity", name, "error", err)
		middleware.DetailResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if signedUp > 0 {
		middleware.DetailResponse(w, http.StatusBadRequest, "Student is already signed up")
		return
	}

	var roster int
	err = h.db.QueryRow(
		"SELECT COUNT(*) FROM participant WHERE activity_name = $1", name,
	).Scan(&roster)
	if err != nil {
		slog.Error("failed to count roster", "activity", name, "error", err)
		middleware.DetailResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if roster >= maxParticipants {
		middleware.DetailResponse(w, http.StatusBadRequest, "Activity is full")
		return
	}

	_, err = h.db.Exec(`
		INSERT INTO participant (id, activity_name, email, signed_up_at)
		VALUES ($1, $2, $3, $4)
	`, uuid.NewString(), name, email, time.Now())
	if err != nil {
		slog.Error("failed to insert participant", "activity", name, "error", err)
		middleware.DetailResponse(w, http.StatusInternalServerError, "Failed to sign up")
		return
	}

	slog.Info("student signed up", "activity", name, "email", email)

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{
		Message: fmt.Sprintf("Signed up %s for %s", email, name),
	})
}

// Unregister handles DELETE /activities/{name}/unregister?email=...
func (h *ActivityHandler) Unregister(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	email := r.URL.Query().Get("email")
	if email == "" {
		middleware.DetailResponse(w, http.StatusBadRequest, "Email is required")
		return
	}

	var exists int
	err := h.db.QueryRow("SELECT COUNT(*) FROM activity WHERE name = $1", name).Scan(&exists)
	if err != nil {
		slog.Error("failed to query activity", "activity", name, "error", err)
		middleware.DetailResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if exists == 0 {
		middleware.DetailResponse(w, http.StatusNotFound, "Activity not found")
		return
	}

	res, err := h.db.Exec(
		"DELETE FROM participant WHERE activity_name = $1 AND email = $2",
		name, email,
	)
	if err != nil {
		slog.Error("failed to delete participant", "activity", name, "error", err)
		middleware.DetailResponse(w, http.StatusInternalServerError, "Failed to unregister")
		return
	}
	removed, err := res.RowsAffected()
	if err != nil {
		slog.Error("failed to read rows affected", "activity", name, "error", err)
		middleware.DetailResponse(w, http.StatusInternalServerError, "Failed to unregister")
		return
	}
	if removed == 0 {
		middleware.DetailResponse(w, http.StatusBadRequest, "Student is not signed up for this activity")
		return
	}

	slog.Info("student unregistered", "activity", name, "email", email)

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{
		Message: fmt.Sprintf("Unregistered %s from %s", email, name),
	})
}
