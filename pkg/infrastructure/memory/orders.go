package memory

import (
	"errors"

	"github.com/google/uuid"

	"github.com/hothifafawaz/restoflow/pkg/domain/model"
)

// OrderRepository is the session ledger: every order ever created, in
// creation order. Orders are never deleted, only transitioned.
type OrderRepository struct {
	byID  map[uuid.UUID]*model.Order
	order []uuid.UUID
}

var _ model.OrderRepository = &OrderRepository{}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{byID: make(map[uuid.UUID]*model.Order)}
}

func (r *OrderRepository) NextID() (uuid.UUID, error) {
	return uuid.NewRandom()
}

func (r *OrderRepository) Create(order *model.Order) error {
	if _, exists := r.byID[order.ID]; exists {
		return errors.New("order with this ID already exists")
	}
	r.byID[order.ID] = cloneOrder(order)
	r.order = append(r.order, order.ID)
	return nil
}

func (r *OrderRepository) Find(id uuid.UUID) (*model.Order, error) {
	order, ok := r.byID[id]
	if !ok {
		return nil, model.ErrOrderNotFound
	}
	return cloneOrder(order), nil
}

func (r *OrderRepository) Update(order *model.Order) error {
	if _, ok := r.byID[order.ID]; !ok {
		return model.ErrOrderNotFound
	}
	r.byID[order.ID] = cloneOrder(order)
	return nil
}

func (r *OrderRepository) List() ([]model.Order, error) {
	out := make([]model.Order, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, *cloneOrder(r.byID[id]))
	}
	return out, nil
}

// cloneOrder copies the line slice too, so callers can never alias the
// stored ledger entry.
func cloneOrder(order *model.Order) *model.Order {
	clone := *order
	clone.Lines = append([]model.OrderLine(nil), order.Lines...)
	return &clone
}
