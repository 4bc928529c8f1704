package tests

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/hothifafawaz/restoflow/pkg/common/domain"
	"github.com/hothifafawaz/restoflow/pkg/domain/model"
)

var _ model.CatalogRepository = &mockCatalogRepository{}

type mockCatalogRepository struct {
	items []model.MenuItem
}

func (m *mockCatalogRepository) Create(item *model.MenuItem) error {
	m.items = append(m.items, *item)
	return nil
}

func (m *mockCatalogRepository) Remove(id string) error {
	for i := range m.items {
		if m.items[i].ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return model.ErrMenuItemNotFound
}

func (m *mockCatalogRepository) Find(id string) (*model.MenuItem, error) {
	for i := range m.items {
		if m.items[i].ID == id {
			clone := m.items[i]
			return &clone, nil
		}
	}
	return nil, model.ErrMenuItemNotFound
}

func (m *mockCatalogRepository) List() ([]model.MenuItem, error) {
	out := make([]model.MenuItem, len(m.items))
	copy(out, m.items)
	return out, nil
}

var _ model.TableRepository = &mockTableRepository{}

type mockTableRepository struct {
	store map[int]*model.Table
}

func newMockTables(ids ...int) *mockTableRepository {
	repo := &mockTableRepository{store: make(map[int]*model.Table)}
	for _, id := range ids {
		repo.store[id] = &model.Table{ID: id, Name: fmt.Sprintf("Table %d", id), Status: model.TableEmpty}
	}
	return repo
}

func (m *mockTableRepository) Find(id int) (*model.Table, error) {
	table, ok := m.store[id]
	if !ok {
		return nil, model.ErrTableNotFound
	}
	clone := *table
	return &clone, nil
}

func (m *mockTableRepository) Update(table *model.Table) error {
	if _, ok := m.store[table.ID]; !ok {
		return model.ErrTableNotFound
	}
	clone := *table
	m.store[table.ID] = &clone
	return nil
}

func (m *mockTableRepository) List() ([]model.Table, error) {
	out := make([]model.Table, 0, len(m.store))
	for _, table := range m.store {
		out = append(out, *table)
	}
	return out, nil
}

var _ model.OrderRepository = &mockOrderRepository{}

type mockOrderRepository struct {
	store map[uuid.UUID]*model.Order
	seq   []uuid.UUID
}

func newMockOrders() *mockOrderRepository {
	return &mockOrderRepository{store: make(map[uuid.UUID]*model.Order)}
}

func (m *mockOrderRepository) NextID() (uuid.UUID, error) {
	return uuid.NewRandom()
}

func (m *mockOrderRepository) Create(order *model.Order) error {
	if _, exists := m.store[order.ID]; exists {
		return errors.New("order with this ID already exists")
	}
	m.store[order.ID] = cloneOrder(order)
	m.seq = append(m.seq, order.ID)
	return nil
}

func (m *mockOrderRepository) Find(id uuid.UUID) (*model.Order, error) {
	order, ok := m.store[id]
	if !ok {
		return nil, model.ErrOrderNotFound
	}
	return cloneOrder(order), nil
}

func (m *mockOrderRepository) Update(order *model.Order) error {
	if _, ok := m.store[order.ID]; !ok {
		return model.ErrOrderNotFound
	}
	m.store[order.ID] = cloneOrder(order)
	return nil
}

func (m *mockOrderRepository) List() ([]model.Order, error) {
	out := make([]model.Order, 0, len(m.seq))
	for _, id := range m.seq {
		out = append(out, *cloneOrder(m.store[id]))
	}
	return out, nil
}

func cloneOrder(order *model.Order) *model.Order {
	clone := *order
	clone.Lines = append([]model.OrderLine(nil), order.Lines...)
	return &clone
}

var _ domain.EventDispatcher = &mockEventDispatcher{}

type mockEventDispatcher struct {
	events []domain.Event
}

func (m *mockEventDispatcher) Dispatch(event domain.Event) error {
	m.events = append(m.events, event)
	return nil
}

func (m *mockEventDispatcher) Reset() {
	m.events = nil
}
