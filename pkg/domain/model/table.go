package model

import (
	"errors"

	"github.com/google/uuid"
)

var ErrTableNotFound = errors.New("table not found")

type TableStatus int

const (
	TableEmpty TableStatus = iota
	TableOccupied
	TableReserved
)

func (s TableStatus) String() string {
	switch s {
	case TableEmpty:
		return "Empty"
	case TableOccupied:
		return "Occupied"
	case TableReserved:
		return "Reserved"
	default:
		return "Unknown"
	}
}

// Table is one of the fixed, pre-seeded seats of the restaurant. Tables are
// never created or destroyed after seeding; only their status and open-order
// reference change. CurrentOrderID is uuid.Nil when no order is open.
type Table struct {
	ID             int
	Name           string
	Status         TableStatus
	CurrentOrderID uuid.UUID
}

func (t *Table) HasOpenOrder() bool {
	return t.CurrentOrderID != uuid.Nil
}

type TableRepository interface {
	Find(id int) (*Table, error)
	Update(table *Table) error
	List() ([]Table, error)
}
