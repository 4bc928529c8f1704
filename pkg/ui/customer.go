package ui

import (
	"context"
	"strconv"
	"strings"

	"github.com/hothifafawaz/restoflow/pkg/domain/model"
)

// customerScreen is the guest-facing flow: pick a table, browse by
// category, build a cart, place the order, or ask the menu assistant.
// Returns true when the user quit the application entirely.
func (u *UI) customerScreen(ctx context.Context) bool {
	for {
		tables, err := u.app.Tables.ListTables()
		if err != nil {
			u.printf("error: %v\n", err)
			return false
		}

		u.printf("\n=== Welcome to RestoFlow ===\n")
		u.printf("pick your table to get started:  ")
		for _, table := range tables {
			u.printf("%d ", table.ID)
		}
		u.printf("\n(staff=staff screens, q=quit)\n")

		input := u.prompt("table")
		switch input {
		case "q":
			return true
		case "staff":
			return false
		}

		id, err := strconv.Atoi(input)
		if err != nil {
			u.printf("pick a table number\n")
			continue
		}
		if _, err := u.app.Tables.Find(id); err != nil {
			u.printf("error: %v\n", err)
			continue
		}

		if quit := u.guestSession(ctx, id); quit {
			return true
		}
	}
}

func (u *UI) guestSession(ctx context.Context, tableID int) bool {
	cart := model.NewCart()
	activeCategory := model.Starter

	for {
		u.printf("\n-- Table %d | %s --\n", tableID, activeCategory)

		if order, err := u.app.Orders.OpenOrderForTable(tableID); err == nil {
			u.printf("your order: %d items, total %.2f [%s]\n", len(order.Lines), order.Total, order.Status)
		}

		items, err := u.app.Catalog.ItemsByCategory(activeCategory)
		if err != nil {
			u.printf("error: %v\n", err)
			return false
		}
		for _, item := range items {
			u.printf("  %-36s %-24s %8.2f\n", item.ID, item.Name, item.Price)
			u.printf("      %s\n", item.Description)
		}

		if !cart.Empty() {
			u.printf("cart:\n")
			for _, line := range cart.Lines() {
				u.printf("  %dx %-28s %8.2f\n", line.Quantity, line.Name, line.LineTotal())
			}
			u.printf("  cart total %8.2f\n", cart.Total())
		}

		u.printf("commands: 1-4=category  a <id>=add  x <id>=remove  ask=assistant  order=place order  b=back  q=quit\n")
		input := u.prompt("guest")
		cmd, arg, _ := strings.Cut(input, " ")

		switch cmd {
		case "q":
			return true
		case "b":
			return false
		case "1", "2", "3", "4":
			n, _ := strconv.Atoi(cmd)
			activeCategory = model.Category(n - 1)
		case "a":
			item, err := u.app.Catalog.Find(arg)
			if err != nil {
				u.printf("unknown item %q\n", arg)
				continue
			}
			cart.Add(*item, "")
		case "x":
			cart.Remove(arg)
		case "ask":
			question := u.prompt("your question")
			if question == "" || question == "q" {
				continue
			}
			u.printf("assistant: %s\n", u.app.AnswerMenuQuestion(ctx, question))
		case "order":
			order, err := u.app.SelfOrder(tableID, cart)
			if err != nil {
				u.printf("error: %v\n", err)
				continue
			}
			u.printf("order placed! %d items, total %.2f\n", len(order.Lines), order.Total)
		}
	}
}
