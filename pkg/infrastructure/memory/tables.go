package memory

import (
	"sort"

	"github.com/hothifafawaz/restoflow/pkg/domain/model"
)

// TableRepository holds the fixed table set. Tables are only ever mutated,
// never added or removed after seeding.
type TableRepository struct {
	tables map[int]*model.Table
}

var _ model.TableRepository = &TableRepository{}

func NewTableRepository(seed ...model.Table) *TableRepository {
	repo := &TableRepository{tables: make(map[int]*model.Table, len(seed))}
	for _, table := range seed {
		clone := table
		repo.tables[table.ID] = &clone
	}
	return repo
}

func (r *TableRepository) Find(id int) (*model.Table, error) {
	table, ok := r.tables[id]
	if !ok {
		return nil, model.ErrTableNotFound
	}
	clone := *table
	return &clone, nil
}

func (r *TableRepository) Update(table *model.Table) error {
	if _, ok := r.tables[table.ID]; !ok {
		return model.ErrTableNotFound
	}
	clone := *table
	r.tables[table.ID] = &clone
	return nil
}

func (r *TableRepository) List() ([]model.Table, error) {
	out := make([]model.Table, 0, len(r.tables))
	for _, table := range r.tables {
		out = append(out, *table)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
