package service

import (
	"errors"

	"github.com/hothifafawaz/restoflow/pkg/common/domain"
	"github.com/hothifafawaz/restoflow/pkg/domain/model"
)

var ErrTableHasOpenOrder = errors.New("table has an open order")

// TableService exposes the manual side of table state: listing and the
// Reserved toggle. Occupied and Empty are driven exclusively by the order
// transition engine.
type TableService interface {
	ListTables() ([]model.Table, error)
	Find(id int) (*model.Table, error)
	Reserve(id int) error
	ClearReservation(id int) error
}

func NewTableService(repo model.TableRepository, dispatcher domain.EventDispatcher) TableService {
	return &tableService{repo: repo, dispatcher: dispatcher}
}

type tableService struct {
	repo       model.TableRepository
	dispatcher domain.EventDispatcher
}

func (s *tableService) ListTables() ([]model.Table, error) {
	return s.repo.List()
}

func (s *tableService) Find(id int) (*model.Table, error) {
	return s.repo.Find(id)
}

func (s *tableService) Reserve(id int) error {
	table, err := s.repo.Find(id)
	if err != nil {
		return err
	}
	if table.HasOpenOrder() {
		return ErrTableHasOpenOrder
	}
	if table.Status == model.TableReserved {
		return nil
	}

	table.Status = model.TableReserved
	if err := s.repo.Update(table); err != nil {
		return err
	}

	_ = s.dispatcher.Dispatch(model.ReservationPlaced{TableID: id})
	return nil
}

func (s *tableService) ClearReservation(id int) error {
	table, err := s.repo.Find(id)
	if err != nil {
		return err
	}
	if table.Status != model.TableReserved {
		return nil
	}

	table.Status = model.TableEmpty
	if err := s.repo.Update(table); err != nil {
		return err
	}

	_ = s.dispatcher.Dispatch(model.ReservationCleared{TableID: id})
	return nil
}
