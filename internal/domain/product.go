package domain

// Product represents a catalog item. ProductID is the allocated string
// identifier (prefix + zero-padded serial), not a surrogate key.
type Product struct {
	ProductID   string  `json:"product_id" db:"product_id"`
	Name        string  `json:"name" db:"name"`
	Category    string  `json:"category" db:"category"`
	Subcategory string  `json:"subcategory" db:"subcategory"`
	Occasion    string  `json:"occasion" db:"occasion"`
	Price       float64 `json:"price" db:"price"`
	Stock       int     `json:"stock" db:"stock"`
	Size        string  `json:"size,omitempty" db:"size"`
	Image       string  `json:"image" db:"image"`

	// Sizes holds the distinct sizes available for products sharing this
	// product's name and category. Populated on detail lookups only.
	Sizes []string `json:"sizes,omitempty"`
}

// Category is a (category, subcategory) pair with a representative image.
// Subcategory names are globally unique.
type Category struct {
	CategoryName    string `json:"category_name" db:"category_name"`
	SubcategoryName string `json:"subcategory_name" db:"subcategory_name"`
	Image           string `json:"image" db:"image"`
}

// CategoryGroup is the listing shape: one category with all of its
// subcategories and a single representative image.
type CategoryGroup struct {
	CategoryName  string   `json:"category_name"`
	Image         string   `json:"image"`
	Subcategories []string `json:"subcategories"`
}

// Occasion groups products by value equality on their occasion attribute.
type Occasion struct {
	Name string `json:"name" db:"name"`
}

// OccasionCount is an occasion with the number of products carrying it.
// Occasions with no products appear with a zero count.
type OccasionCount struct {
	Name         string `json:"name"`
	ProductCount int    `json:"productCount"`
}

// SizeCount is one size bucket within a category, with the number of
// products offered in that size.
type SizeCount struct {
	Size  string `json:"size"`
	Count int    `json:"count"`
}
