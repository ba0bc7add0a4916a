// Copyright (c) 2026 Mergington High School.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ui

import (
	"bytes"
	"context"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mergington/activities/client"
	"github.com/mergington/activities/middleware"
	"github.com/mergington/activities/router"
	"github.com/mergington/activities/testutil"
)

// TestFullWorkflow drives the real controller against the real API server:
// load, sign up, duplicate rejection, unregister, re-load.
func TestFullWorkflow(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SeedDefault(t, db)

	srv := httptest.NewServer(middleware.CORS(router.NewRouter(db, testutil.GetTestConfig())))
	defer srv.Close()

	api := client.New(srv.URL)

	var buf bytes.Buffer
	status, timers := newTestStatus()
	confirmed := true
	ctrl := NewController(api, NewTermView(&buf), status, func(activity, email string) bool {
		return confirmed
	}, nil)

	ctx := context.Background()

	// Step 1: initial load shows the seeded catalog.
	ctrl.Refresh(ctx)
	require.Equal(t, []string{"Chess Club", "Programming Class", "Science Club"},
		ctrl.Activities().Names())
	science, _ := ctrl.Activities().Get("Science Club")
	assert.Empty(t, science.Participants)
	assert.Contains(t, buf.String(), "(no participants yet)")

	// Step 2: sign up for Science Club.
	form := SignupForm{Email: "workflow@mergington.edu", Activity: "Science Club"}
	ctrl.Signup(ctx, &form)

	text, kind, visible := status.Current()
	require.True(t, visible)
	assert.Equal(t, "Signed up workflow@mergington.edu for Science Club", text)
	assert.Equal(t, Success, kind)
	assert.Empty(t, form.Email)

	science, _ = ctrl.Activities().Get("Science Club")
	assert.Equal(t, []string{"workflow@mergington.edu"}, science.Participants)

	// Step 3: the same signup again is rejected with the server's detail.
	form = SignupForm{Email: "workflow@mergington.edu", Activity: "Science Club"}
	ctrl.Signup(ctx, &form)

	text, kind, _ = status.Current()
	assert.Equal(t, "Student is already signed up", text)
	assert.Equal(t, Error, kind)
	assert.Equal(t, "workflow@mergington.edu", form.Email)

	// Step 4: declined confirmation leaves the roster alone.
	confirmed = false
	ctrl.Unregister(ctx, "Science Club", "workflow@mergington.edu")
	science, _ = ctrl.Activities().Get("Science Club")
	assert.Len(t, science.Participants, 1)

	// Step 5: confirmed unregister empties the roster again.
	confirmed = true
	ctrl.Unregister(ctx, "Science Club", "workflow@mergington.edu")

	text, kind, _ = status.Current()
	assert.Equal(t, "Unregistered workflow@mergington.edu from Science Club", text)
	assert.Equal(t, Success, kind)

	science, _ = ctrl.Activities().Get("Science Club")
	assert.Empty(t, science.Participants)

	// Step 6: every shown message scheduled a five-second hide.
	for i := range timers.callbacks {
		timers.fire(i)
	}
	_, _, visible = status.Current()
	assert.False(t, visible)
}

// TestUnknownActivityDetailShownVerbatim exercises the 404 path end to end.
func TestUnknownActivityDetailShownVerbatim(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SeedDefault(t, db)

	srv := httptest.NewServer(router.NewRouter(db, testutil.GetTestConfig()))
	defer srv.Close()

	var buf bytes.Buffer
	status, _ := newTestStatus()
	ctrl := NewController(client.New(srv.URL), NewTermView(&buf), status,
		func(activity, email string) bool { return true }, nil)

	form := SignupForm{Email: "x@mergington.edu", Activity: "Knitting Circle"}
	ctrl.Signup(context.Background(), &form)

	text, kind, _ := status.Current()
	assert.Equal(t, "Activity not found", text)
	assert.Equal(t, Error, kind)
}
