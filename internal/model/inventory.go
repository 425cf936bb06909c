package model

// Category is an open enumeration of menu groupings.
type Category string

const (
	CategoryCoffee   Category = "Coffee"
	CategoryFood     Category = "Food"
	CategoryBeverage Category = "Beverage"
)

// KnownCategories lists the categories offered by default in the menu editor.
var KnownCategories = []Category{CategoryCoffee, CategoryFood, CategoryBeverage}

// MenuItem represents a sellable product. Price is in the smallest currency unit.
type MenuItem struct {
	ID          int64    `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Price       int64    `json:"price" yaml:"price"`
	Category    Category `json:"category" yaml:"category"`
	Image       string   `json:"image" yaml:"image"`
	Stock       int      `json:"stock" yaml:"stock"`
	Ingredients []string `json:"ingredients" yaml:"ingredients"`
}

// MenuItemPatch carries a partial update; nil fields are left untouched.
type MenuItemPatch struct {
	Name        *string   `json:"name"`
	Price       *int64    `json:"price"`
	Category    *Category `json:"category"`
	Image       *string   `json:"image"`
	Stock       *int      `json:"stock"`
	Ingredients []string  `json:"ingredients"`
}

// StockItem represents a raw ingredient tracked by quantity.
// Ingredient names on menu items refer to StockItem.Name loosely, without integrity checks.
type StockItem struct {
	ID       int64  `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	Quantity int    `json:"quantity" yaml:"quantity"`
	Unit     string `json:"unit" yaml:"unit"`
	MinStock int    `json:"min_stock" yaml:"min_stock"`
}

// IsLow reports whether the item is at or below its minimum threshold.
func (s StockItem) IsLow() bool {
	return s.Quantity <= s.MinStock
}

// StockItemPatch carries a partial update. Quantity is absolute, Delta is applied after it.
type StockItemPatch struct {
	Name     *string `json:"name"`
	Quantity *int    `json:"quantity"`
	Delta    *int    `json:"delta"`
	Unit     *string `json:"unit"`
	MinStock *int    `json:"min_stock"`
}
