// Package ui renders the staff and guest screens on a terminal. It holds
// only transient state (the cart being built, the active category); every
// durable mutation goes through the application services.
package ui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/hothifafawaz/restoflow/pkg/app"
)

type UI struct {
	app *app.App
	in  *bufio.Scanner
	out io.Writer
}

func New(a *app.App, in io.Reader, out io.Writer) *UI {
	return &UI{app: a, in: bufio.NewScanner(in), out: out}
}

// Run drives the screen loop until the user quits or input ends. The
// guest screen is the landing screen by default; staff reach their
// screens through it, the way the original floor tablet works.
func (u *UI) Run(ctx context.Context, startWithStaff bool) error {
	if !startWithStaff {
		if quit := u.customerScreen(ctx); quit {
			return nil
		}
	}

	for {
		u.printf("\n=== RestoFlow staff ===\n")
		u.printf("1) floor   2) kitchen   3) menu editor   4) history   c) guest screen   q) quit\n")
		switch u.prompt("select") {
		case "1":
			u.floorScreen(ctx)
		case "2":
			u.kitchenScreen()
		case "3":
			u.menuScreen()
		case "4":
			u.historyScreen()
		case "c":
			if quit := u.customerScreen(ctx); quit {
				return nil
			}
		case "q":
			return nil
		}
	}
}

func (u *UI) printf(format string, args ...any) {
	fmt.Fprintf(u.out, format, args...)
}

// prompt reads one trimmed line; end of input behaves like quitting.
func (u *UI) prompt(label string) string {
	u.printf("%s> ", label)
	if !u.in.Scan() {
		return "q"
	}
	return strings.TrimSpace(u.in.Text())
}

func shortID(id uuid.UUID) string {
	s := id.String()
	return s[len(s)-4:]
}
