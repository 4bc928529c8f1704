package service

import (
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/hothifafawaz/restoflow/pkg/common/domain"
	"github.com/hothifafawaz/restoflow/pkg/domain/model"
)

var (
	ErrNegativePrice    = errors.New("item price cannot be negative")
	ErrInvalidCategory  = errors.New("unknown menu category")
	ErrMissingItemField = errors.New("name, description and image reference are required")
)

type CatalogService interface {
	AddItem(name, description string, price float64, category model.Category, imageURL string) (*model.MenuItem, error)
	RemoveItem(id string) error
	Find(id string) (*model.MenuItem, error)
	Items() ([]model.MenuItem, error)
	ItemsByCategory(category model.Category) ([]model.MenuItem, error)
}

func NewCatalogService(repo model.CatalogRepository, dispatcher domain.EventDispatcher) CatalogService {
	return &catalogService{repo: repo, dispatcher: dispatcher}
}

type catalogService struct {
	repo       model.CatalogRepository
	dispatcher domain.EventDispatcher
}

func (s *catalogService) AddItem(name, description string, price float64, category model.Category, imageURL string) (*model.MenuItem, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(description) == "" || strings.TrimSpace(imageURL) == "" {
		return nil, ErrMissingItemField
	}
	if price < 0 {
		return nil, ErrNegativePrice
	}
	if !category.Valid() {
		return nil, ErrInvalidCategory
	}

	item := &model.MenuItem{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
		Price:       price,
		Category:    category,
		ImageURL:    imageURL,
	}

	if err := s.repo.Create(item); err != nil {
		return nil, err
	}

	_ = s.dispatcher.Dispatch(model.MenuItemAdded{ItemID: item.ID, Name: item.Name})
	return item, nil
}

// RemoveItem deletes the catalog entry with the given id. Removing an
// unknown id is a no-op, not an error. Lines already taken on open orders
// are snapshots and stay untouched.
func (s *catalogService) RemoveItem(id string) error {
	if err := s.repo.Remove(id); err != nil {
		if errors.Is(err, model.ErrMenuItemNotFound) {
			return nil
		}
		return err
	}

	_ = s.dispatcher.Dispatch(model.MenuItemRemoved{ItemID: id})
	return nil
}

func (s *catalogService) Find(id string) (*model.MenuItem, error) {
	return s.repo.Find(id)
}

func (s *catalogService) Items() ([]model.MenuItem, error) {
	return s.repo.List()
}

func (s *catalogService) ItemsByCategory(category model.Category) ([]model.MenuItem, error) {
	items, err := s.repo.List()
	if err != nil {
		return nil, err
	}

	filtered := make([]model.MenuItem, 0, len(items))
	for _, item := range items {
		if item.Category == category {
			filtered = append(filtered, item)
		}
	}
	return filtered, nil
}
