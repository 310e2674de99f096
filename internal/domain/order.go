package domain

const (
	StatusPending   = "pending"
	StatusPaid      = "paid"
	StatusShipped   = "shipped"
	StatusDelivered = "delivered"
	StatusCancelled = "cancelled"
)

// Statuses in the order an admin would walk them.
var Statuses = []string{StatusPending, StatusPaid, StatusShipped, StatusDelivered, StatusCancelled}

type Order struct {
	ID           string `db:"id"`
	UserID       string `db:"user_id"`
	CustomerName string `db:"customer_name"`
	Status       string `db:"status"`
	TotalAmount  int64  `db:"total_amount"`
	CreatedAt    string `db:"created_at"`
}

// OrderLine is a snapshot of a cart line at order time. Product and variant
// data is copied in so historical orders survive later catalog edits.
type OrderLine struct {
	OrderID     string `db:"order_id"`
	ProductName string `db:"product_name"`
	Size        string `db:"size"`
	Color       string `db:"color"`
	Quantity    int    `db:"quantity"`
	Price       int64  `db:"price"`
}

func ValidStatus(s string) bool {
	for _, v := range Statuses {
		if v == s {
			return true
		}
	}
	return false
}

// transitions: pending -> paid -> shipped -> delivered, with cancelled
// reachable from pending or paid only.
var transitions = map[string][]string{
	StatusPending: {StatusPaid, StatusCancelled},
	StatusPaid:    {StatusShipped, StatusCancelled},
	StatusShipped: {StatusDelivered},
}

// CanTransition reports whether an order may move from one status to another.
// Setting the same status again is a no-op and allowed.
func CanTransition(from, to string) bool {
	if from == to {
		return ValidStatus(to)
	}
	for _, v := range transitions[from] {
		if v == to {
			return true
		}
	}
	return false
}
