// Copyright (c) 2026 Mergington High School.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ui

import (
	"sync"
	"time"
)

// Kind classifies a status message.
type Kind string

const (
	Success Kind = "success"
	Error   Kind = "error"
)

// hideAfter is how long a status message stays visible.
const hideAfter = 5 * time.Second

// Status is the transient message area. It owns a single hide timer: setting
// a new message cancels the pending hide before scheduling a fresh one, so a
// quick second message can never be hidden early by the first message's
// timer.
type Status struct {
	mu      sync.Mutex
	text    string
	kind    Kind
	visible bool
	cancel  func()

	schedule func(time.Duration, func()) func()
}

// NewStatus creates a Status backed by real timers.
func NewStatus() *Status {
	return &Status{
		schedule: func(d time.Duration, f func()) func() {
			t := time.AfterFunc(d, f)
			return func() { t.Stop() }
		},
	}
}

// Set shows a message immediately and schedules it to hide after five
// seconds.
func (s *Status) Set(text string, kind Kind) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		s.cancel()
	}
	s.text = text
	s.kind = kind
	s.visible = true
	s.cancel = s.schedule(hideAfter, s.Hide)
}

// Hide makes the message area invisible. Hiding an already-hidden area is a
// no-op.
func (s *Status) Hide() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.visible = false
}

// Current returns the message, its kind, and whether it is visible.
func (s *Status) Current() (string, Kind, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.text, s.kind, s.visible
}
