// Copyright (c) 2026 Mergington High School.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/mergington/activities/models"
)

// APIError is a failure the server reported with a non-2xx status. Detail is
// the server's explanation and may be empty. Transport failures are returned
// as plain wrapped errors instead, so callers can tell the two apart with
// errors.As.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("server returned %d", e.StatusCode)
}

// Client talks to the activities API.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a Client for the API at baseURL.
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
	}
}

// Activities fetches the full activity collection in server order.
func (c *Client) Activities(ctx context.Context) (models.ActivityList, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/activities", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch activities: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, c.apiError(resp)
	}

	var list models.ActivityList
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return nil, fmt.Errorf("failed to parse activities: %w", err)
	}
	return list, nil
}

// Signup registers email for the named activity and returns the server's
// confirmation message.
func (c *Client) Signup(ctx context.Context, activity, email string) (string, error) {
	return c.mutate(ctx, http.MethodPost, activity, "signup", email)
}

// Unregister removes email from the named activity and returns the server's
// confirmation message.
func (c *Client) Unregister(ctx context.Context, activity, email string) (string, error) {
	return c.mutate(ctx, http.MethodDelete, activity, "unregister", email)
}

func (c *Client) mutate(ctx context.Context, method, activity, action, email string) (string, error) {
	q := url.Values{}
	q.Set("email", email)
	endpoint := fmt.Sprintf("%s/activities/%s/%s?%s",
		c.baseURL, url.PathEscape(activity), action, q.Encode())

	req, err := http.NewRequestWithContext(ctx, method, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", c.apiError(resp)
	}

	var msg models.MessageResponse
	if err := json.NewDecoder(resp.Body).Decode(&msg); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}
	return msg.Message, nil
}

// apiError builds an APIError from a non-2xx response. An unreadable or
// non-JSON body just leaves Detail empty.
func (c *Client) apiError(resp *http.Response) error {
	var detail models.DetailResponse
	_ = json.NewDecoder(resp.Body).Decode(&detail)
	return &APIError{StatusCode: resp.StatusCode, Detail: detail.Detail}
}
