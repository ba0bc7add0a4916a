// Copyright (c) 2026 Mergington High School.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivitiesPreservesServerOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/activities", r.URL.Path)
		assert.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"Zebra Club": {"description": "z", "schedule": "Mon", "max_participants": 5, "participants": []},
			"Art Club": {"description": "a", "schedule": "Tue", "max_participants": 3, "participants": ["x@y"]}
		}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	list, err := c.Activities(context.Background())
	require.NoError(t, err)

	require.Len(t, list, 2)
	assert.Equal(t, []string{"Zebra Club", "Art Club"}, list.Names())
	assert.Equal(t, []string{"x@y"}, list[1].Activity.Participants)
}

func TestSignupEncodesNameAndEmail(t *testing.T) {
	var gotPath, gotEmail string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		gotEmail = r.URL.Query().Get("email")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"message": "Signed up a+b@mergington.edu for Chess Club"}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	msg, err := c.Signup(context.Background(), "Chess Club", "a+b@mergington.edu")
	require.NoError(t, err)

	assert.Equal(t, "/activities/Chess%20Club/signup", gotPath)
	assert.Equal(t, "a+b@mergington.edu", gotEmail)
	assert.Equal(t, "Signed up a+b@mergington.edu for Chess Club", msg)
}

func TestUnregisterUsesDelete(t *testing.T) {
	var gotMethod string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"message": "Unregistered x@y from Chess Club"}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	msg, err := c.Unregister(context.Background(), "Chess Club", "x@y")
	require.NoError(t, err)

	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "Unregistered x@y from Chess Club", msg)
}

func TestServerErrorBecomesAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"detail": "Student is already signed up"}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.Signup(context.Background(), "Chess Club", "x@y")
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "Student is already signed up", apiErr.Detail)
}

func TestServerErrorWithoutDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream exploded"))
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.Unregister(context.Background(), "Chess Club", "x@y")

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.Empty(t, apiErr.Detail)
}

func TestNetworkErrorIsNotAPIError(t *testing.T) {
	// Point at a server that has already shut down.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := New(srv.URL)
	_, err := c.Activities(context.Background())
	require.Error(t, err)

	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr))
}

func TestActivitiesParseFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.Activities(context.Background())
	require.Error(t, err)

	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr))
}
