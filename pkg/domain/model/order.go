package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrOrderNotFound = errors.New("order not found")

type OrderStatus int

const (
	Pending OrderStatus = iota
	Preparing
	Ready
	Delivered
	Paid
)

func (s OrderStatus) String() string {
	switch s {
	case Pending:
		return "Pending"
	case Preparing:
		return "Preparing"
	case Ready:
		return "Ready"
	case Delivered:
		return "Delivered"
	case Paid:
		return "Paid"
	default:
		return "Unknown"
	}
}

// OrderLine is a denormalized snapshot of a catalog item at order time.
// Deleting the source menu item later does not affect lines already taken.
type OrderLine struct {
	ItemID   string
	Name     string
	Price    float64
	Quantity int
	Note     string
}

func (l OrderLine) LineTotal() float64 {
	return l.Price * float64(l.Quantity)
}

// Order is the running ticket for one table. Lines are append-only once
// submitted; Total must always equal the recomputed sum over Lines.
type Order struct {
	ID           uuid.UUID
	TableID      int
	Lines        []OrderLine
	Status       OrderStatus
	Total        float64
	AdvisoryNote string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Open reports whether the order still belongs to an active table session.
func (o *Order) Open() bool {
	return o.Status != Paid
}

func (o *Order) LinesTotal() float64 {
	var total float64
	for _, line := range o.Lines {
		total += line.LineTotal()
	}
	return total
}

type OrderRepository interface {
	NextID() (uuid.UUID, error)
	Create(order *Order) error
	Find(id uuid.UUID) (*Order, error)
	Update(order *Order) error
	List() ([]Order, error)
}
