package model

import "errors"

var ErrMenuItemNotFound = errors.New("menu item not found")

type Category int

const (
	Starter Category = iota
	Main
	Dessert
	Drink
)

func (c Category) String() string {
	switch c {
	case Starter:
		return "Starter"
	case Main:
		return "Main"
	case Dessert:
		return "Dessert"
	case Drink:
		return "Drink"
	default:
		return "Unknown"
	}
}

func (c Category) Valid() bool {
	return c >= Starter && c <= Drink
}

// Categories returns all categories in menu order.
func Categories() []Category {
	return []Category{Starter, Main, Dessert, Drink}
}

// MenuItem is a catalog entry. There is no update-in-place: edits are
// modeled as remove + add by callers.
type MenuItem struct {
	ID          string
	Name        string
	Description string
	Price       float64
	Category    Category
	ImageURL    string
}

type CatalogRepository interface {
	Create(item *MenuItem) error
	Remove(id string) error
	Find(id string) (*MenuItem, error)
	List() ([]MenuItem, error)
}
