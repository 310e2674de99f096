package repos

import (
	"github.com/jmoiron/sqlx"
)

type CartRepo struct{ db *sqlx.DB }

func NewCartRepo(db *sqlx.DB) *CartRepo { return &CartRepo{db: db} }

// CartRow is a cart line joined with its variant and product for display.
type CartRow struct {
	VariantID string `db:"variant_id"`
	ProductID string `db:"product_id"`
	Name      string `db:"name"`
	Size      string `db:"size"`
	Color     string `db:"color"`
	ImageURL  string `db:"image_url"`
	Quantity  int    `db:"quantity"`
	Price     int64  `db:"price"`
}

// AddItem upserts a cart line keyed on (user, variant). An existing line has
// its quantity incremented atomically; a new line starts at qty.
func (r *CartRepo) AddItem(userID, variantID string, qty int) error {
	_, err := r.db.Exec(`
		INSERT INTO cart_items(user_id, variant_id, quantity, created_at)
		VALUES(?,?,?,CURRENT_TIMESTAMP)
		ON CONFLICT(user_id, variant_id) DO UPDATE
		SET quantity = cart_items.quantity + excluded.quantity, updated_at = CURRENT_TIMESTAMP
	`, userID, variantID, qty)
	return err
}

// SetQuantity overwrites a line's quantity. Callers route qty < 1 to Remove.
func (r *CartRepo) SetQuantity(userID, variantID string, qty int) error {
	_, err := r.db.Exec(`
		UPDATE cart_items SET quantity = ?, updated_at = CURRENT_TIMESTAMP
		WHERE user_id = ? AND variant_id = ?
	`, qty, userID, variantID)
	return err
}

func (r *CartRepo) Remove(userID, variantID string) error {
	_, err := r.db.Exec(`DELETE FROM cart_items WHERE user_id = ? AND variant_id = ?`, userID, variantID)
	return err
}

func (r *CartRepo) Items(userID string) ([]CartRow, error) {
	rows := []CartRow{}
	err := r.db.Select(&rows, `
	  SELECT ci.variant_id, p.id AS product_id, p.name, v.size, v.color,
	         COALESCE(p.image_url,'') AS image_url, ci.quantity, p.price
	  FROM cart_items ci
	  JOIN product_variants v ON v.id = ci.variant_id
	  JOIN products p ON p.id = v.product_id
	  WHERE ci.user_id = ?
	  ORDER BY p.name, v.size, v.color
	`, userID)
	return rows, err
}

func (r *CartRepo) Clear(userID string) error {
	_, err := r.db.Exec(`DELETE FROM cart_items WHERE user_id = ?`, userID)
	return err
}
