package model

import "github.com/google/uuid"

type MenuItemAdded struct {
	ItemID string
	Name   string
}

func (e MenuItemAdded) Type() string { return "MenuItemAdded" }

type MenuItemRemoved struct {
	ItemID string
}

func (e MenuItemRemoved) Type() string { return "MenuItemRemoved" }

type OrderPlaced struct {
	OrderID uuid.UUID
	TableID int
	Total   float64
}

func (e OrderPlaced) Type() string { return "OrderPlaced" }

type OrderItemsAppended struct {
	OrderID  uuid.UUID
	TableID  int
	NewLines int
	Total    float64
}

func (e OrderItemsAppended) Type() string { return "OrderItemsAppended" }

type OrderStatusChanged struct {
	OrderID   uuid.UUID
	OldStatus OrderStatus
	NewStatus OrderStatus
}

func (e OrderStatusChanged) Type() string { return "OrderStatusChanged" }

type OrderDelivered struct {
	OrderID uuid.UUID
}

func (e OrderDelivered) Type() string { return "OrderDelivered" }

type TableCheckedOut struct {
	TableID int
	OrderID uuid.UUID
	Total   float64
}

func (e TableCheckedOut) Type() string { return "TableCheckedOut" }

type ReservationPlaced struct {
	TableID int
}

func (e ReservationPlaced) Type() string { return "ReservationPlaced" }

type ReservationCleared struct {
	TableID int
}

func (e ReservationCleared) Type() string { return "ReservationCleared" }
