package domain

type Category struct {
	ID        string `db:"id"`
	Name      string `db:"name"`
	Slug      string `db:"slug"`
	CreatedAt string `db:"created_at"`
	UpdatedAt string `db:"updated_at"`
}

type Product struct {
	ID          string `db:"id"`
	CategoryID  string `db:"category_id"`
	Name        string `db:"name"`
	Description string `db:"description"`
	Price       int64  `db:"price"` // whole rupees
	ImageURL    string `db:"image_url"`
	Active      bool   `db:"active"`
	CreatedAt   string `db:"created_at"`
	UpdatedAt   string `db:"updated_at"`
}

type Variant struct {
	ID        string `db:"id"`
	ProductID string `db:"product_id"`
	Size      string `db:"size"` // S | M | L | XL | XXL
	Color     string `db:"color"`
	Stock     int    `db:"stock"`
}

// ProductView is a product joined with its category name and variants,
// the shape the listing page filters over.
type ProductView struct {
	Product
	CategoryName string    `db:"category_name"`
	Variants     []Variant `db:"-"`
}
