// Copyright (c) 2026 Mergington High School.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
)

// Browser is the interactive terminal front-end. It owns the input loop and
// translates commands into controller calls; the controller owns all
// request/refresh behavior.
type Browser struct {
	ctrl   *Controller
	status *Status
	in     *bufio.Scanner
	out    io.Writer
	form   SignupForm
}

func NewBrowser(api API, in io.Reader, out io.Writer, logger *slog.Logger) *Browser {
	b := &Browser{
		status: NewStatus(),
		in:     bufio.NewScanner(in),
		out:    out,
	}
	b.ctrl = NewController(api, NewTermView(out), b.status, b.confirmRemoval, logger)
	return b
}

// Run loads the activity list and processes commands until quit or EOF.
func (b *Browser) Run(ctx context.Context) error {
	fmt.Fprintln(b.out, "Mergington High School activities")
	fmt.Fprintln(b.out, `Type "help" for commands.`)
	b.ctrl.Refresh(ctx)

	for {
		b.printStatus()
		fmt.Fprint(b.out, "> ")
		if !b.in.Scan() {
			return b.in.Err()
		}

		fields := strings.Fields(b.in.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "quit", "exit":
			return nil
		case "help":
			b.printHelp()
		case "list", "refresh":
			b.ctrl.Refresh(ctx)
		case "signup":
			b.signup(ctx, fields[1:])
		case "unregister":
			b.unregister(ctx, fields[1:])
		default:
			fmt.Fprintf(b.out, "Unknown command %q. Type \"help\" for commands.\n", fields[0])
		}
	}
}

func (b *Browser) signup(ctx context.Context, args []string) {
	if len(args) != 2 {
		fmt.Fprintln(b.out, "Usage: signup <activity#> <email>")
		return
	}

	name, ok := b.resolveActivity(args[0])
	if !ok {
		return
	}

	b.form.Activity = name
	b.form.Email = args[1]
	b.ctrl.Signup(ctx, &b.form)
}

func (b *Browser) unregister(ctx context.Context, args []string) {
	if len(args) != 2 {
		fmt.Fprintln(b.out, "Usage: unregister <activity#> <participant#>")
		return
	}

	name, ok := b.resolveActivity(args[0])
	if !ok {
		return
	}

	activity, _ := b.ctrl.Activities().Get(name)
	idx, err := strconv.Atoi(args[1])
	if err != nil || idx < 1 || idx > len(activity.Participants) {
		fmt.Fprintf(b.out, "No participant %q in %s.\n", args[1], name)
		return
	}

	b.ctrl.Unregister(ctx, name, activity.Participants[idx-1])
}

// resolveActivity maps a 1-based card number from the last rendered list to
// an activity name.
func (b *Browser) resolveActivity(arg string) (string, bool) {
	list := b.ctrl.Activities()
	idx, err := strconv.Atoi(arg)
	if err != nil || idx < 1 || idx > len(list) {
		fmt.Fprintf(b.out, "No activity %q. Use the number shown by list.\n", arg)
		return "", false
	}
	return list[idx-1].Name, true
}

func (b *Browser) confirmRemoval(activity, email string) bool {
	fmt.Fprintf(b.out, "Remove %s from %s? [y/N] ", email, activity)
	if !b.in.Scan() {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(b.in.Text()))
	return answer == "y" || answer == "yes"
}

func (b *Browser) printStatus() {
	text, kind, visible := b.status.Current()
	if visible {
		fmt.Fprintf(b.out, "[%s] %s\n", kind, text)
	}
}

func (b *Browser) printHelp() {
	fmt.Fprintln(b.out, "Commands:")
	fmt.Fprintln(b.out, "  list                              refresh and show all activities")
	fmt.Fprintln(b.out, "  signup <activity#> <email>        sign up for an activity")
	fmt.Fprintln(b.out, "  unregister <activity#> <participant#>  remove a participant")
	fmt.Fprintln(b.out, "  quit")
}
