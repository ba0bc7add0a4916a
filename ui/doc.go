// Copyright (c) 2026 Mergington High School.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package ui implements the activity browser front-end.

# Refresh Cycle

Controller is the heart of the package: it fetches the activity collection,
hands it to a View for a full redraw, and re-fetches after every successful
mutation. There is no incremental updating; correctness comes from
reconstruction.

	ctrl := ui.NewController(api, view, status, confirm, logger)
	ctrl.Refresh(ctx)
	ctrl.Signup(ctx, &form)
	ctrl.Unregister(ctx, "Chess Club", "michael@mergington.edu")

# Error Surface

Three failure kinds, all non-fatal and all surfaced through Status:

  - load failure: the view renders a static notice
  - server rejection (*client.APIError): the server's detail is shown
    verbatim, or a generic fallback when absent
  - transport failure: a generic "try again" message, logged

# Status Messages

Status shows each message for five seconds. It owns exactly one hide timer;
a new message cancels the previous timer so it always gets the full window.

# Terminal Front-End

Browser wraps the controller in a line-oriented command loop (list, signup,
unregister with a y/N confirmation, quit) and prints the status line while
it is visible.
*/
package ui
