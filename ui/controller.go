// Copyright (c) 2026 Mergington High School.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ui

import (
	"context"
	"errors"
	"log/slog"

	"github.com/mergington/activities/client"
	"github.com/mergington/activities/models"
)

// API is the slice of the activities client the controller needs.
type API interface {
	Activities(ctx context.Context) (models.ActivityList, error)
	Signup(ctx context.Context, activity, email string) (string, error)
	Unregister(ctx context.Context, activity, email string) (string, error)
}

// ConfirmFunc asks the user to approve removing email from activity.
type ConfirmFunc func(activity, email string) bool

// SignupForm holds the pending signup input. It is cleared only after a
// successful signup; a rejected request leaves the user's input in place.
type SignupForm struct {
	Email    string
	Activity string
}

func (f *SignupForm) Reset() {
	f.Email = ""
	f.Activity = ""
}

// fallbackDetail is shown when the server rejects a request without saying
// why.
const fallbackDetail = "An error occurred"

// Controller drives the refresh/mutation cycle: every successful mutation is
// followed by a full re-fetch and redraw, so the rendered state can only
// diverge from the server during a round-trip. All dependencies are
// injected.
type Controller struct {
	api     API
	view    View
	status  *Status
	confirm ConfirmFunc
	logger  *slog.Logger

	current models.ActivityList
}

func NewController(api API, view View, status *Status, confirm ConfirmFunc, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{api: api, view: view, status: status, confirm: confirm, logger: logger}
}

// Refresh fetches the collection and redraws the whole view. A fetch or
// parse failure renders a static notice and is logged; it is never returned
// to the caller.
func (c *Controller) Refresh(ctx context.Context) {
	list, err := c.api.Activities(ctx)
	if err != nil {
		c.logger.Error("failed to load activities", "error", err)
		c.view.RenderLoadFailure()
		return
	}
	c.current = list
	c.view.RenderActivities(list)
}

// Activities returns the collection as of the last successful refresh.
func (c *Controller) Activities() models.ActivityList {
	return c.current
}

// Signup submits the form. On success the confirmation message is shown, the
// form is cleared, and the list is re-fetched. A server rejection shows the
// server's detail and leaves both the form and the list alone.
func (c *Controller) Signup(ctx context.Context, form *SignupForm) {
	msg, err := c.api.Signup(ctx, form.Activity, form.Email)
	if err != nil {
		var apiErr *client.APIError
		if errors.As(err, &apiErr) {
			detail := apiErr.Detail
			if detail == "" {
				detail = fallbackDetail
			}
			c.status.Set(detail, Error)
			return
		}
		c.logger.Error("signup request failed", "activity", form.Activity, "error", err)
		c.status.Set("Failed to sign up. Please try again.", Error)
		return
	}

	c.status.Set(msg, Success)
	form.Reset()
	c.Refresh(ctx)
}

// Unregister asks for confirmation, then removes email from activity. If the
// user declines, no request is sent. Only a successful removal triggers a
// refresh.
func (c *Controller) Unregister(ctx context.Context, activity, email string) {
	if !c.confirm(activity, email) {
		return
	}

	msg, err := c.api.Unregister(ctx, activity, email)
	if err != nil {
		var apiErr *client.APIError
		if errors.As(err, &apiErr) {
			detail := apiErr.Detail
			if detail == "" {
				detail = fallbackDetail
			}
			c.status.Set(detail, Error)
			return
		}
		c.logger.Error("unregister request failed", "activity", activity, "error", err)
		c.status.Set("Failed to unregister. Please try again.", Error)
		return
	}

	c.status.Set(msg, Success)
	c.Refresh(ctx)
}
