// Copyright (c) 2026 Mergington High School.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ui

import (
	"fmt"
	"io"

	"github.com/mergington/activities/models"
)

// View renders the activity collection. Every render is a full redraw from
// the latest server response; nothing is patched incrementally.
type View interface {
	RenderActivities(list models.ActivityList)
	RenderLoadFailure()
}

// TermView draws activity cards as plain text.
type TermView struct {
	w io.Writer
}

func NewTermView(w io.Writer) *TermView {
	return &TermView{w: w}
}

// RenderActivities draws one card per activity, numbered in server order,
// with the roster numbered in signup order.
func (v *TermView) RenderActivities(list models.ActivityList) {
	fmt.Fprintln(v.w)
	if len(list) == 0 {
		fmt.Fprintln(v.w, "No activities available.")
		return
	}

	for i, e := range list {
		a := e.Activity
		fmt.Fprintf(v.w, "[%d] %s\n", i+1, e.Name)
		fmt.Fprintf(v.w, "    %s\n", a.Description)
		fmt.Fprintf(v.w, "    Schedule: %s\n", a.Schedule)
		fmt.Fprintf(v.w, "    Spots left: %d of %d\n", a.SpotsLeft(), a.MaxParticipants)
		fmt.Fprintln(v.w, "    Participants:")
		if len(a.Participants) == 0 {
			fmt.Fprintln(v.w, "      (no participants yet)")
		} else {
			for j, p := range a.Participants {
				fmt.Fprintf(v.w, "      %d. %s\n", j+1, p)
			}
		}
	}
}

// RenderLoadFailure replaces the whole list with a static failure notice.
func (v *TermView) RenderLoadFailure() {
	fmt.Fprintln(v.w)
	fmt.Fprintln(v.w, "Failed to load activities. Please try again later.")
}
