package repos

import (
	"threadline/internal/domain"

	"github.com/jmoiron/sqlx"
)

type ProductRepo struct{ db *sqlx.DB }

func NewProductRepo(db *sqlx.DB) *ProductRepo { return &ProductRepo{db: db} }

// ListViews returns all active products with their category name and
// variants attached, the working set the listing page filters over.
func (r *ProductRepo) ListViews() ([]domain.ProductView, error) {
	var prods []domain.ProductView
	err := r.db.Select(&prods, `
	  SELECT
	    p.id, p.category_id, p.name, p.description, p.price, COALESCE(p.image_url,'') AS image_url,
	    p.active, p.created_at, COALESCE(p.updated_at,'') AS updated_at,
	    c.name AS category_name
	  FROM products p
	  JOIN categories c ON c.id = p.category_id
	  WHERE p.active = 1
	  ORDER BY p.created_at DESC, p.id
	`)
	if err != nil {
		return nil, err
	}

	var variants []domain.Variant
	if err := r.db.Select(&variants, `
	  SELECT id, product_id, size, color, stock FROM product_variants ORDER BY size, color
	`); err != nil {
		return nil, err
	}

	byProduct := map[string][]domain.Variant{}
	for _, v := range variants {
		byProduct[v.ProductID] = append(byProduct[v.ProductID], v)
	}
	for i := range prods {
		prods[i].Variants = byProduct[prods[i].ID]
	}
	return prods, nil
}

func (r *ProductRepo) Get(id string) (domain.Product, error) {
	var p domain.Product
	err := r.db.Get(&p, `
	  SELECT id, category_id, name, description, price, COALESCE(image_url,'') AS image_url,
	         active, created_at, COALESCE(updated_at,'') AS updated_at
	  FROM products
	  WHERE id = ?
	`, id)
	return p, err
}

func (r *ProductRepo) Variants(productID string) ([]domain.Variant, error) {
	var out []domain.Variant
	err := r.db.Select(&out, `
	  SELECT id, product_id, size, color, stock
	  FROM product_variants
	  WHERE product_id = ?
	  ORDER BY size, color
	`, productID)
	return out, err
}

// FindVariant resolves the exact (size, color) unit of a product.
func (r *ProductRepo) FindVariant(productID, size, color string) (domain.Variant, error) {
	var v domain.Variant
	err := r.db.Get(&v, `
	  SELECT id, product_id, size, color, stock
	  FROM product_variants
	  WHERE product_id = ? AND size = ? AND color = ?
	`, productID, size, color)
	return v, err
}

// Create inserts a product and its variants in one transaction.
func (r *ProductRepo) Create(p domain.Product, variants []domain.Variant) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`
	  INSERT INTO products(id, category_id, name, description, price, image_url, active)
	  VALUES(?,?,?,?,?,?,1)
	`, p.ID, p.CategoryID, p.Name, p.Description, p.Price, p.ImageURL); err != nil {
		return err
	}
	for _, v := range variants {
		if _, err := tx.Exec(`
		  INSERT INTO product_variants(id, product_id, size, color, stock)
		  VALUES(?,?,?,?,?)
		`, v.ID, p.ID, v.Size, v.Color, v.Stock); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// Delete removes a product; variants cascade.
func (r *ProductRepo) Delete(id string) error {
	_, err := r.db.Exec(`DELETE FROM products WHERE id = ?`, id)
	return err
}

func (r *ProductRepo) UpdateStock(variantID string, stock int) error {
	_, err := r.db.Exec(`UPDATE product_variants SET stock = ? WHERE id = ?`, stock, variantID)
	return err
}

func (r *ProductRepo) Count() (int, error) {
	var n int
	err := r.db.Get(&n, `SELECT COUNT(*) FROM products WHERE active = 1`)
	return n, err
}
