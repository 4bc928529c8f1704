package ui

import (
	"context"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/hothifafawaz/restoflow/pkg/domain/model"
)

func (u *UI) floorScreen(ctx context.Context) {
	for {
		tables, err := u.app.Tables.ListTables()
		if err != nil {
			u.printf("error: %v\n", err)
			return
		}

		u.printf("\n-- Floor --\n")
		for _, table := range tables {
			u.printf("%d) %-9s %s\n", table.ID, table.Name, table.Status)
		}

		input := u.prompt("table # (b=back)")
		if input == "b" || input == "q" {
			return
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
		u.tableSession(ctx, id)
	}
}

// tableSession is the waiter's per-table screen: the open order on top,
// the cart in progress below, and the send/pay actions.
func (u *UI) tableSession(ctx context.Context, tableID int) {
	cart := model.NewCart()

	for {
		u.printf("\n-- Table %d --\n", tableID)

		open, err := u.app.Orders.OpenOrderForTable(tableID)
		if err == nil {
			u.printf("in the kitchen (%s):\n", open.Status)
			for _, line := range open.Lines {
				u.printf("  %dx %-28s %8.2f\n", line.Quantity, line.Name, line.LineTotal())
			}
			u.printf("  subtotal %8.2f\n", open.Total)
		}

		if !cart.Empty() {
			u.printf("new items:\n")
			for _, line := range cart.Lines() {
				u.printf("  %dx %-28s %8.2f\n", line.Quantity, line.Name, line.LineTotal())
			}
		}
		grand := cart.Total()
		if open != nil && err == nil {
			grand += open.Total
		}
		u.printf("grand total %8.2f\n", grand)

		u.printf("commands: m=menu  a <id>=add  - <id>=less  x <id>=drop  ai=chef tip  send  pay  reserve  free  b=back\n")
		input := u.prompt("table")
		cmd, arg, _ := strings.Cut(input, " ")

		switch cmd {
		case "b", "q":
			return
		case "m":
			u.printMenu()
		case "a":
			item, err := u.app.Catalog.Find(arg)
			if err != nil {
				u.printf("unknown item %q\n", arg)
				continue
			}
			cart.Add(*item, "")
		case "-":
			cart.Decrement(arg)
		case "x":
			cart.Remove(arg)
		case "ai":
			category := u.prompt("category (Starter/Main/Dessert/Drink)")
			u.printf("chef: %s\n", u.app.PairingSuggestion(ctx, cart, category))
		case "send":
			order, err := u.app.SubmitCart(ctx, tableID, cart)
			if err != nil {
				u.printf("error: %v\n", err)
				continue
			}
			u.printf("sent to kitchen, order #%s total %.2f\n", shortID(order.ID), order.Total)
		case "pay":
			if err := u.app.Orders.Checkout(tableID); err != nil {
				u.printf("error: %v\n", err)
				continue
			}
			u.printf("table %d closed\n", tableID)
			return
		case "reserve":
			if err := u.app.Tables.Reserve(tableID); err != nil {
				u.printf("error: %v\n", err)
			}
		case "free":
			if err := u.app.Tables.ClearReservation(tableID); err != nil {
				u.printf("error: %v\n", err)
			}
		}
	}
}

func (u *UI) kitchenScreen() {
	for {
		active, err := u.app.Orders.ActiveOrders()
		if err != nil {
			u.printf("error: %v\n", err)
			return
		}

		u.printf("\n-- Kitchen --\n")
		if len(active) == 0 {
			u.printf("all clear, no active orders\n")
		}
		ids := make([]uuid.UUID, len(active))
		for i, order := range active {
			ids[i] = order.ID
			u.printf("%d) table %d  #%s  [%s]\n", i+1, order.TableID, shortID(order.ID), order.Status)
			for _, line := range order.Lines {
				u.printf("   %dx %s\n", line.Quantity, line.Name)
			}
			if order.AdvisoryNote != "" {
				u.printf("   note: %s\n", order.AdvisoryNote)
			}
		}

		input := u.prompt("s <n>=start  r <n>=ready  d <n>=delivered  b=back")
		cmd, arg, _ := strings.Cut(input, " ")
		if cmd == "b" || cmd == "q" {
			return
		}

		n, err := strconv.Atoi(arg)
		if err != nil || n < 1 || n > len(ids) {
			u.printf("pick an order number\n")
			continue
		}
		orderID := ids[n-1]

		switch cmd {
		case "s":
			err = u.app.Orders.AdvanceStatus(orderID, model.Preparing)
		case "r":
			err = u.app.Orders.AdvanceStatus(orderID, model.Ready)
		case "d":
			err = u.app.Orders.MarkDelivered(orderID)
		default:
			continue
		}
		if err != nil {
			u.printf("error: %v\n", err)
		}
	}
}

func (u *UI) menuScreen() {
	for {
		u.printf("\n-- Menu editor --\n")
		u.printMenu()

		input := u.prompt("add  del <id>  b=back")
		cmd, arg, _ := strings.Cut(input, " ")

		switch cmd {
		case "b", "q":
			return
		case "add":
			u.addMenuItem()
		case "del":
			if err := u.app.Catalog.RemoveItem(arg); err != nil {
				u.printf("error: %v\n", err)
			}
		}
	}
}

// addMenuItem collects the new item fields. The price is parsed here, at
// the data-entry boundary: a malformed or negative number never reaches
// the store.
func (u *UI) addMenuItem() {
	name := u.prompt("name")
	description := u.prompt("description")

	priceText := u.prompt("price")
	price, err := strconv.ParseFloat(priceText, 64)
	if err != nil || price < 0 {
		u.printf("price must be a non-negative number\n")
		return
	}

	u.printf("categories: 1) Starter  2) Main  3) Dessert  4) Drink\n")
	catNum, err := strconv.Atoi(u.prompt("category"))
	if err != nil || catNum < 1 || catNum > 4 {
		u.printf("pick a category 1-4\n")
		return
	}
	category := model.Category(catNum - 1)

	imageURL := u.prompt("image url")
	if imageURL == "" {
		imageURL = "https://picsum.photos/200/200"
	}

	item, err := u.app.Catalog.AddItem(name, description, price, category, imageURL)
	if err != nil {
		u.printf("error: %v\n", err)
		return
	}
	u.printf("added %s (%s)\n", item.Name, item.ID)
}

func (u *UI) historyScreen() {
	paid, err := u.app.Orders.PaidOrders()
	if err != nil {
		u.printf("error: %v\n", err)
		return
	}
	revenue, err := u.app.Orders.Revenue()
	if err != nil {
		u.printf("error: %v\n", err)
		return
	}

	u.printf("\n-- History --\nrevenue: %.2f\n", revenue)
	if len(paid) == 0 {
		u.printf("no completed orders yet\n")
	}
	for _, order := range paid {
		names := make([]string, 0, len(order.Lines))
		for _, line := range order.Lines {
			names = append(names, line.Name)
		}
		u.printf("#%s  table %d  %s  %-50s %8.2f\n",
			shortID(order.ID), order.TableID,
			order.CreatedAt.Format("15:04"), strings.Join(names, ", "), order.Total)
	}
	u.prompt("enter=back")
}

func (u *UI) printMenu() {
	items, err := u.app.Catalog.Items()
	if err != nil {
		u.printf("error: %v\n", err)
		return
	}
	for _, category := range model.Categories() {
		u.printf("[%s]\n", category)
		for _, item := range items {
			if item.Category != category {
				continue
			}
			u.printf("  %-36s %-24s %8.2f\n", item.ID, item.Name, item.Price)
		}
	}
}
