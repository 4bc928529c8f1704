package memory

import (
	"github.com/hothifafawaz/restoflow/pkg/domain/model"
)

// CatalogRepository keeps menu items in insertion order, the order the
// menu editor shows them in. Not safe for concurrent use; the application
// has a single seat of control.
type CatalogRepository struct {
	items []model.MenuItem
}

var _ model.CatalogRepository = &CatalogRepository{}

func NewCatalogRepository(seed ...model.MenuItem) *CatalogRepository {
	repo := &CatalogRepository{items: make([]model.MenuItem, 0, len(seed))}
	repo.items = append(repo.items, seed...)
	return repo
}

func (r *CatalogRepository) Create(item *model.MenuItem) error {
	r.items = append(r.items, *item)
	return nil
}

func (r *CatalogRepository) Remove(id string) error {
	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return model.ErrMenuItemNotFound
}

func (r *CatalogRepository) Find(id string) (*model.MenuItem, error) {
	for i := range r.items {
		if r.items[i].ID == id {
			clone := r.items[i]
			return &clone, nil
		}
	}
	return nil, model.ErrMenuItemNotFound
}

func (r *CatalogRepository) List() ([]model.MenuItem, error) {
	out := make([]model.MenuItem, len(r.items))
	copy(out, r.items)
	return out, nil
}
