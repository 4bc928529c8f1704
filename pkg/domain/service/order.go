package service

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/hothifafawaz/restoflow/pkg/common/domain"
	"github.com/hothifafawaz/restoflow/pkg/domain/model"
)

var (
	ErrEmptyOrder      = errors.New("cannot place an order with no line items")
	ErrInvalidQuantity = errors.New("line quantity must be a positive integer")
	ErrOrderClosed     = errors.New("order is already paid")
)

// OrderService is the transition engine for orders and the order-driven
// side of table state. All mutations are synchronous; callers that want
// advisory text gather it before invoking PlaceOrder.
type OrderService interface {
	PlaceOrder(tableID int, lines []model.OrderLine, advisoryNote string) (*model.Order, error)
	AdvanceStatus(orderID uuid.UUID, newStatus model.OrderStatus) error
	MarkDelivered(orderID uuid.UUID) error
	Checkout(tableID int) error

	OpenOrderForTable(tableID int) (*model.Order, error)
	ActiveOrders() ([]model.Order, error)
	PaidOrders() ([]model.Order, error)
	Revenue() (float64, error)
}

func NewOrderService(orders model.OrderRepository, tables model.TableRepository, dispatcher domain.EventDispatcher) OrderService {
	return &orderService{orders: orders, tables: tables, dispatcher: dispatcher}
}

type orderService struct {
	orders     model.OrderRepository
	tables     model.TableRepository
	dispatcher domain.EventDispatcher
}

// PlaceOrder submits lines for a table. A table with no open order gets a
// fresh Pending order and becomes Occupied; a table with an open order has
// the lines appended to it and its status reset to Pending, since a new
// ticket means the kitchen must re-triage. The advisory note is replaced
// only when a new one is supplied.
func (s *orderService) PlaceOrder(tableID int, lines []model.OrderLine, advisoryNote string) (*model.Order, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyOrder
	}
	for _, line := range lines {
		if line.Quantity <= 0 {
			return nil, ErrInvalidQuantity
		}
	}

	table, err := s.tables.Find(tableID)
	if err != nil {
		return nil, err
	}

	if table.HasOpenOrder() {
		return s.appendToOpenOrder(table, lines, advisoryNote)
	}
	return s.openNewOrder(table, lines, advisoryNote)
}

func (s *orderService) openNewOrder(table *model.Table, lines []model.OrderLine, advisoryNote string) (*model.Order, error) {
	orderID, err := s.orders.NextID()
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	order := &model.Order{
		ID:           orderID,
		TableID:      table.ID,
		Lines:        append([]model.OrderLine(nil), lines...),
		Status:       model.Pending,
		AdvisoryNote: advisoryNote,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	order.Total = order.LinesTotal()

	if err := s.orders.Create(order); err != nil {
		return nil, err
	}

	table.Status = model.TableOccupied
	table.CurrentOrderID = orderID
	if err := s.tables.Update(table); err != nil {
		return nil, err
	}

	_ = s.dispatcher.Dispatch(model.OrderPlaced{OrderID: orderID, TableID: table.ID, Total: order.Total})
	return order, nil
}

func (s *orderService) appendToOpenOrder(table *model.Table, lines []model.OrderLine, advisoryNote string) (*model.Order, error) {
	order, err := s.orders.Find(table.CurrentOrderID)
	if err != nil {
		return nil, err
	}

	order.Lines = append(order.Lines, lines...)
	order.Total = order.LinesTotal()
	order.Status = model.Pending
	if advisoryNote != "" {
		order.AdvisoryNote = advisoryNote
	}
	order.UpdatedAt = time.Now().UTC()

	if err := s.orders.Update(order); err != nil {
		return nil, err
	}

	// Keep the table consistent with the order just touched.
	if table.Status != model.TableOccupied {
		table.Status = model.TableOccupied
		if err := s.tables.Update(table); err != nil {
			return nil, err
		}
	}

	_ = s.dispatcher.Dispatch(model.OrderItemsAppended{
		OrderID:  order.ID,
		TableID:  table.ID,
		NewLines: len(lines),
		Total:    order.Total,
	})
	return order, nil
}

// AdvanceStatus overwrites the order's status regardless of its current
// value. The calling surfaces only ever drive Pending → Preparing → Ready;
// that forward-only pattern is a convention, not something enforced here.
func (s *orderService) AdvanceStatus(orderID uuid.UUID, newStatus model.OrderStatus) error {
	order, err := s.orders.Find(orderID)
	if err != nil {
		return err
	}

	oldStatus := order.Status
	order.Status = newStatus
	order.UpdatedAt = time.Now().UTC()
	if err := s.orders.Update(order); err != nil {
		return err
	}

	_ = s.dispatcher.Dispatch(model.OrderStatusChanged{OrderID: orderID, OldStatus: oldStatus, NewStatus: newStatus})
	return nil
}

// MarkDelivered is the only path into the Delivered status. Paid orders
// are terminal and cannot be delivered after the fact.
func (s *orderService) MarkDelivered(orderID uuid.UUID) error {
	order, err := s.orders.Find(orderID)
	if err != nil {
		return err
	}
	if order.Status == model.Paid {
		return ErrOrderClosed
	}

	order.Status = model.Delivered
	order.UpdatedAt = time.Now().UTC()
	if err := s.orders.Update(order); err != nil {
		return err
	}

	_ = s.dispatcher.Dispatch(model.OrderDelivered{OrderID: orderID})
	return nil
}

// Checkout closes out a table: its open order becomes Paid and the table
// returns to Empty. A table with no open order is a no-op.
func (s *orderService) Checkout(tableID int) error {
	table, err := s.tables.Find(tableID)
	if err != nil {
		return err
	}
	if !table.HasOpenOrder() {
		return nil
	}

	order, err := s.orders.Find(table.CurrentOrderID)
	if err != nil {
		return err
	}

	order.Status = model.Paid
	order.UpdatedAt = time.Now().UTC()
	if err := s.orders.Update(order); err != nil {
		return err
	}

	table.Status = model.TableEmpty
	table.CurrentOrderID = uuid.Nil
	if err := s.tables.Update(table); err != nil {
		return err
	}

	_ = s.dispatcher.Dispatch(model.TableCheckedOut{TableID: tableID, OrderID: order.ID, Total: order.Total})
	return nil
}

func (s *orderService) OpenOrderForTable(tableID int) (*model.Order, error) {
	table, err := s.tables.Find(tableID)
	if err != nil {
		return nil, err
	}
	if !table.HasOpenOrder() {
		return nil, model.ErrOrderNotFound
	}
	return s.orders.Find(table.CurrentOrderID)
}

// ActiveOrders returns the kitchen board: every order still being worked,
// oldest first.
func (s *orderService) ActiveOrders() ([]model.Order, error) {
	all, err := s.orders.List()
	if err != nil {
		return nil, err
	}

	active := make([]model.Order, 0, len(all))
	for _, order := range all {
		if order.Status != model.Paid && order.Status != model.Delivered {
			active = append(active, order)
		}
	}
	return active, nil
}

func (s *orderService) PaidOrders() ([]model.Order, error) {
	all, err := s.orders.List()
	if err != nil {
		return nil, err
	}

	paid := make([]model.Order, 0, len(all))
	for _, order := range all {
		if order.Status == model.Paid {
			paid = append(paid, order)
		}
	}
	return paid, nil
}

// Revenue is the sum of totals over Paid orders.
func (s *orderService) Revenue() (float64, error) {
	paid, err := s.PaidOrders()
	if err != nil {
		return 0, err
	}

	var revenue float64
	for _, order := range paid {
		revenue += order.Total
	}
	return revenue, nil
}
