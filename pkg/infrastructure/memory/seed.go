package memory

import (
	"fmt"

	"github.com/hothifafawaz/restoflow/pkg/domain/model"
)

const tableCount = 9

// SeedCatalog returns the opening menu: nine items across the four
// categories. Seeded items keep small literal ids; items added later
// through the menu editor get uuids.
func SeedCatalog() []model.MenuItem {
	return []model.MenuItem{
		{
			ID:          "1",
			Name:        "Truffle Mushroom Soup",
			Description: "Creamy wild mushroom soup finished with black truffle oil and fresh herbs.",
			Price:       180,
			Category:    model.Starter,
			ImageURL:    "https://picsum.photos/200/200?random=1",
		},
		{
			ID:          "2",
			Name:        "Bruschetta Trio",
			Description: "Grilled sourdough topped with tomato basil, olive tapenade and honeyed ricotta.",
			Price:       220,
			Category:    model.Starter,
			ImageURL:    "https://picsum.photos/200/200?random=2",
		},
		{
			ID:          "3",
			Name:        "Grilled Ribeye Steak",
			Description: "300g dry-aged ribeye served with garlic butter and roasted vegetables.",
			Price:       750,
			Category:    model.Main,
			ImageURL:    "https://picsum.photos/200/200?random=3",
		},
		{
			ID:          "4",
			Name:        "Seafood Paella",
			Description: "Traditional saffron rice with prawns, mussels, calamari and sausage.",
			Price:       680,
			Category:    model.Main,
			ImageURL:    "https://picsum.photos/200/200?random=4",
		},
		{
			ID:          "5",
			Name:        "Wild Mushroom Risotto",
			Description: "Slow-cooked Arborio rice with porcini mushrooms and parmesan.",
			Price:       450,
			Category:    model.Main,
			ImageURL:    "https://picsum.photos/200/200?random=5",
		},
		{
			ID:          "6",
			Name:        "Tiramisu",
			Description: "Classic Italian dessert of espresso-soaked ladyfingers and mascarpone cream.",
			Price:       180,
			Category:    model.Dessert,
			ImageURL:    "https://picsum.photos/200/200?random=6",
		},
		{
			ID:          "7",
			Name:        "Chocolate Souffle",
			Description: "Warm molten chocolate cake served with vanilla ice cream.",
			Price:       200,
			Category:    model.Dessert,
			ImageURL:    "https://picsum.photos/200/200?random=7",
		},
		{
			ID:          "8",
			Name:        "Signature Mocktail",
			Description: "A refreshing blend of passion fruit, mint and lime soda.",
			Price:       120,
			Category:    model.Drink,
			ImageURL:    "https://picsum.photos/200/200?random=8",
		},
		{
			ID:          "9",
			Name:        "Homemade Lemonade",
			Description: "Lightly sweetened natural lemonade served with fresh mint.",
			Price:       90,
			Category:    model.Drink,
			ImageURL:    "https://picsum.photos/200/200?random=9",
		},
	}
}

// SeedTables returns the fixed floor plan: nine empty tables numbered 1-9.
func SeedTables() []model.Table {
	tables := make([]model.Table, 0, tableCount)
	for i := 1; i <= tableCount; i++ {
		tables = append(tables, model.Table{
			ID:     i,
			Name:   fmt.Sprintf("Table %d", i),
			Status: model.TableEmpty,
		})
	}
	return tables
}
