package repos

import (
	"threadline/internal/domain"

	"github.com/jmoiron/sqlx"
)

type OrderRepo struct{ db *sqlx.DB }

func NewOrderRepo(db *sqlx.DB) *OrderRepo { return &OrderRepo{db: db} }

// Create inserts an order header and its line snapshots in one transaction.
func (r *OrderRepo) Create(o domain.Order, lines []domain.OrderLine) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`
	  INSERT INTO orders(id, user_id, customer_name, status, total_amount, created_at)
	  VALUES(?,?,?,?,?,CURRENT_TIMESTAMP)
	`, o.ID, o.UserID, o.CustomerName, o.Status, o.TotalAmount); err != nil {
		return err
	}
	for _, l := range lines {
		if _, err := tx.Exec(`
		  INSERT INTO order_items(order_id, product_name, size, color, quantity, price)
		  VALUES(?,?,?,?,?,?)
		`, o.ID, l.ProductName, l.Size, l.Color, l.Quantity, l.Price); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (r *OrderRepo) Get(orderID string) (domain.Order, []domain.OrderLine, error) {
	var o domain.Order
	if err := r.db.Get(&o, `
		SELECT id, COALESCE(user_id,'') AS user_id, COALESCE(customer_name,'') AS customer_name,
		       status, total_amount, created_at
		FROM orders WHERE id = ?
	`, orderID); err != nil {
		return domain.Order{}, nil, err
	}
	lines, err := r.Lines(orderID)
	if err != nil {
		return domain.Order{}, nil, err
	}
	return o, lines, nil
}

func (r *OrderRepo) Lines(orderID string) ([]domain.OrderLine, error) {
	var out []domain.OrderLine
	err := r.db.Select(&out, `
		SELECT order_id, product_name, size, color, quantity, price
		FROM order_items
		WHERE order_id = ?
		ORDER BY product_name
	`, orderID)
	return out, err
}

func (r *OrderRepo) ListLatest(limit int) ([]domain.Order, error) {
	if limit <= 0 {
		limit = 100
	}
	var out []domain.Order
	err := r.db.Select(&out, `
		SELECT id, COALESCE(user_id,'') AS user_id, COALESCE(customer_name,'') AS customer_name,
		       status, total_amount, created_at
		FROM orders
		ORDER BY datetime(created_at) DESC
		LIMIT ?
	`, limit)
	return out, err
}

func (r *OrderRepo) ListByUser(userID string) ([]domain.Order, error) {
	var out []domain.Order
	err := r.db.Select(&out, `
		SELECT id, COALESCE(user_id,'') AS user_id, COALESCE(customer_name,'') AS customer_name,
		       status, total_amount, created_at
		FROM orders
		WHERE user_id = ?
		ORDER BY datetime(created_at) DESC
	`, userID)
	return out, err
}

func (r *OrderRepo) Status(orderID string) (string, error) {
	var s string
	err := r.db.Get(&s, `SELECT status FROM orders WHERE id = ?`, orderID)
	return s, err
}

func (r *OrderRepo) UpdateStatus(id, status string) error {
	_, err := r.db.Exec(`UPDATE orders SET status = ? WHERE id = ?`, status, id)
	return err
}

// CountAndRevenue returns the order count and the revenue over all
// non-cancelled orders, for the admin dashboard.
func (r *OrderRepo) CountAndRevenue() (int, int64, error) {
	var n int
	if err := r.db.Get(&n, `SELECT COUNT(*) FROM orders`); err != nil {
		return 0, 0, err
	}
	var revenue int64
	if err := r.db.Get(&revenue, `
		SELECT COALESCE(SUM(total_amount),0) FROM orders WHERE status != 'cancelled'
	`); err != nil {
		return 0, 0, err
	}
	return n, revenue, nil
}
