package tests

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hothifafawaz/restoflow/pkg/domain/model"
	"github.com/hothifafawaz/restoflow/pkg/domain/service"
)

func setupOrders(t *testing.T) (service.OrderService, *mockOrderRepository, *mockTableRepository, *mockEventDispatcher) {
	orders := newMockOrders()
	tables := newMockTables(1, 2, 3)
	dispatcher := &mockEventDispatcher{}
	svc := service.NewOrderService(orders, tables, dispatcher)
	return svc, orders, tables, dispatcher
}

func line(itemID, name string, price float64, quantity int) model.OrderLine {
	return model.OrderLine{ItemID: itemID, Name: name, Price: price, Quantity: quantity}
}

func TestPlaceOrderOnEmptyTable(t *testing.T) {
	svc, orders, tables, dispatcher := setupOrders(t)

	order, err := svc.PlaceOrder(1, []model.OrderLine{
		line("3", "Grilled Ribeye Steak", 750, 1),
	}, "a fine choice")

	require.NoError(t, err)
	require.NotNil(t, order)
	assert.Equal(t, model.Pending, order.Status)
	assert.Equal(t, 750.0, order.Total)
	assert.Equal(t, "a fine choice", order.AdvisoryNote)
	assert.Len(t, orders.seq, 1)

	table := tables.store[1]
	assert.Equal(t, model.TableOccupied, table.Status)
	assert.Equal(t, order.ID, table.CurrentOrderID)

	require.Len(t, dispatcher.events, 1)
	placed, ok := dispatcher.events[0].(model.OrderPlaced)
	require.True(t, ok)
	assert.Equal(t, order.ID, placed.OrderID)
}

func TestPlaceOrderValidation(t *testing.T) {
	svc, _, _, dispatcher := setupOrders(t)

	t.Run("empty line list", func(t *testing.T) {
		_, err := svc.PlaceOrder(1, nil, "")
		assert.ErrorIs(t, err, service.ErrEmptyOrder)
	})

	t.Run("non-positive quantity", func(t *testing.T) {
		_, err := svc.PlaceOrder(1, []model.OrderLine{line("1", "Soup", 180, 0)}, "")
		assert.ErrorIs(t, err, service.ErrInvalidQuantity)
	})

	t.Run("unknown table", func(t *testing.T) {
		_, err := svc.PlaceOrder(42, []model.OrderLine{line("1", "Soup", 180, 1)}, "")
		assert.ErrorIs(t, err, model.ErrTableNotFound)
	})

	assert.Empty(t, dispatcher.events)
}

func TestPlaceOrderAppendsToOpenOrder(t *testing.T) {
	svc, orders, _, dispatcher := setupOrders(t)

	first, err := svc.PlaceOrder(1, []model.OrderLine{line("3", "Steak", 750, 1)}, "first note")
	require.NoError(t, err)

	// Kitchen makes progress, then the table orders again.
	require.NoError(t, svc.AdvanceStatus(first.ID, model.Ready))
	dispatcher.Reset()

	second, err := svc.PlaceOrder(1, []model.OrderLine{line("6", "Tiramisu", 180, 1)}, "")
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID, "must append to the open order, not create a new one")
	assert.Len(t, orders.seq, 1, "ledger size unchanged")
	assert.Len(t, second.Lines, 2)
	assert.Equal(t, 930.0, second.Total)
	assert.Equal(t, model.Pending, second.Status, "new ticket resets kitchen progress")
	assert.Equal(t, "first note", second.AdvisoryNote, "note retained when none supplied")

	require.Len(t, dispatcher.events, 1)
	appended, ok := dispatcher.events[0].(model.OrderItemsAppended)
	require.True(t, ok)
	assert.Equal(t, 1, appended.NewLines)

	t.Run("note replaced when a new one is supplied", func(t *testing.T) {
		third, err := svc.PlaceOrder(1, []model.OrderLine{line("9", "Lemonade", 90, 1)}, "fresh note")
		require.NoError(t, err)
		assert.Equal(t, "fresh note", third.AdvisoryNote)
	})

	t.Run("same item across submissions stays a separate line", func(t *testing.T) {
		fourth, err := svc.PlaceOrder(1, []model.OrderLine{line("6", "Tiramisu", 180, 1)}, "")
		require.NoError(t, err)
		assert.Len(t, fourth.Lines, 4, "no cross-submission merging")
	})
}

func TestAdvanceStatus(t *testing.T) {
	svc, orders, _, dispatcher := setupOrders(t)
	order, err := svc.PlaceOrder(2, []model.OrderLine{line("5", "Risotto", 450, 1)}, "")
	require.NoError(t, err)
	dispatcher.Reset()

	require.NoError(t, svc.AdvanceStatus(order.ID, model.Preparing))
	assert.Equal(t, model.Preparing, orders.store[order.ID].Status)

	require.Len(t, dispatcher.events, 1)
	changed, ok := dispatcher.events[0].(model.OrderStatusChanged)
	require.True(t, ok)
	assert.Equal(t, model.Pending, changed.OldStatus)
	assert.Equal(t, model.Preparing, changed.NewStatus)

	t.Run("overwrite is unconditional", func(t *testing.T) {
		require.NoError(t, svc.AdvanceStatus(order.ID, model.Pending))
		assert.Equal(t, model.Pending, orders.store[order.ID].Status)
	})

	t.Run("unknown order", func(t *testing.T) {
		err := svc.AdvanceStatus(uuid.New(), model.Ready)
		assert.ErrorIs(t, err, model.ErrOrderNotFound)
	})
}

func TestMarkDelivered(t *testing.T) {
	svc, orders, _, _ := setupOrders(t)
	order, err := svc.PlaceOrder(2, []model.OrderLine{line("5", "Risotto", 450, 1)}, "")
	require.NoError(t, err)

	require.NoError(t, svc.MarkDelivered(order.ID))
	assert.Equal(t, model.Delivered, orders.store[order.ID].Status)

	t.Run("paid orders cannot be delivered", func(t *testing.T) {
		require.NoError(t, svc.Checkout(2))
		err := svc.MarkDelivered(order.ID)
		assert.ErrorIs(t, err, service.ErrOrderClosed)
	})
}

func TestCheckout(t *testing.T) {
	svc, orders, tables, dispatcher := setupOrders(t)
	order, err := svc.PlaceOrder(1, []model.OrderLine{line("4", "Paella", 680, 1)}, "")
	require.NoError(t, err)
	dispatcher.Reset()

	require.NoError(t, svc.Checkout(1))

	assert.Equal(t, model.Paid, orders.store[order.ID].Status)
	table := tables.store[1]
	assert.Equal(t, model.TableEmpty, table.Status)
	assert.False(t, table.HasOpenOrder())

	require.Len(t, dispatcher.events, 1)
	checked, ok := dispatcher.events[0].(model.TableCheckedOut)
	require.True(t, ok)
	assert.Equal(t, 680.0, checked.Total)

	t.Run("second checkout is a no-op", func(t *testing.T) {
		dispatcher.Reset()
		require.NoError(t, svc.Checkout(1))
		assert.Empty(t, dispatcher.events)
	})

	t.Run("unknown table", func(t *testing.T) {
		err := svc.Checkout(42)
		assert.ErrorIs(t, err, model.ErrTableNotFound)
	})
}

func TestTotalsAlwaysMatchLines(t *testing.T) {
	svc, orders, _, _ := setupOrders(t)

	_, err := svc.PlaceOrder(1, []model.OrderLine{line("1", "Soup", 180, 2), line("8", "Mocktail", 120, 1)}, "")
	require.NoError(t, err)
	_, err = svc.PlaceOrder(1, []model.OrderLine{line("7", "Souffle", 200, 3)}, "")
	require.NoError(t, err)

	for _, order := range orders.store {
		assert.Equal(t, order.LinesTotal(), order.Total)
	}
}

func TestRevenueOverPaidOrders(t *testing.T) {
	svc, _, _, _ := setupOrders(t)

	_, err := svc.PlaceOrder(1, []model.OrderLine{line("3", "Steak", 750, 1)}, "")
	require.NoError(t, err)
	_, err = svc.PlaceOrder(2, []model.OrderLine{line("6", "Tiramisu", 180, 2)}, "")
	require.NoError(t, err)
	_, err = svc.PlaceOrder(3, []model.OrderLine{line("9", "Lemonade", 90, 1)}, "")
	require.NoError(t, err)

	require.NoError(t, svc.Checkout(1))
	require.NoError(t, svc.Checkout(2))
	// table 3 stays open and must not count.

	revenue, err := svc.Revenue()
	require.NoError(t, err)
	assert.Equal(t, 1110.0, revenue)

	paid, err := svc.PaidOrders()
	require.NoError(t, err)
	var linesTotal float64
	for _, order := range paid {
		linesTotal += order.LinesTotal()
	}
	assert.Equal(t, revenue, linesTotal)
}

func TestActiveOrdersExcludesClosed(t *testing.T) {
	svc, _, _, _ := setupOrders(t)

	first, err := svc.PlaceOrder(1, []model.OrderLine{line("1", "Soup", 180, 1)}, "")
	require.NoError(t, err)
	_, err = svc.PlaceOrder(2, []model.OrderLine{line("2", "Bruschetta", 220, 1)}, "")
	require.NoError(t, err)
	_, err = svc.PlaceOrder(3, []model.OrderLine{line("5", "Risotto", 450, 1)}, "")
	require.NoError(t, err)

	require.NoError(t, svc.MarkDelivered(first.ID))
	require.NoError(t, svc.Checkout(3))

	active, err := svc.ActiveOrders()
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, 2, active[0].TableID)
}

// Full table-1 session: steak, then dessert, kitchen progress, payment.
func TestFullServiceScenario(t *testing.T) {
	svc, orders, tables, _ := setupOrders(t)

	order, err := svc.PlaceOrder(1, []model.OrderLine{line("3", "Grilled Ribeye Steak", 750, 1)}, "")
	require.NoError(t, err)
	assert.Equal(t, model.Pending, order.Status)
	assert.Equal(t, 750.0, order.Total)
	assert.Equal(t, model.TableOccupied, tables.store[1].Status)

	order, err = svc.PlaceOrder(1, []model.OrderLine{line("6", "Tiramisu", 180, 1)}, "")
	require.NoError(t, err)
	assert.Len(t, order.Lines, 2)
	assert.Equal(t, 930.0, order.Total)
	assert.Equal(t, model.Pending, order.Status)

	require.NoError(t, svc.AdvanceStatus(order.ID, model.Preparing))
	require.NoError(t, svc.AdvanceStatus(order.ID, model.Ready))

	require.NoError(t, svc.Checkout(1))
	assert.Equal(t, model.Paid, orders.store[order.ID].Status)
	assert.Equal(t, 930.0, orders.store[order.ID].Total)
	assert.Equal(t, model.TableEmpty, tables.store[1].Status)

	revenue, err := svc.Revenue()
	require.NoError(t, err)
	assert.Equal(t, 930.0, revenue)
}

func TestOpenOrderForTable(t *testing.T) {
	svc, _, _, _ := setupOrders(t)

	_, err := svc.OpenOrderForTable(1)
	assert.ErrorIs(t, err, model.ErrOrderNotFound)

	placed, err := svc.PlaceOrder(1, []model.OrderLine{line("1", "Soup", 180, 1)}, "")
	require.NoError(t, err)

	open, err := svc.OpenOrderForTable(1)
	require.NoError(t, err)
	assert.Equal(t, placed.ID, open.ID)
}
