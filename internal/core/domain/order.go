package domain

import "time"

// Order statuses mirror the API's enum. PATCHing anything else is rejected
// client-side before the request goes out.
const (
	OrderPending    = "pending"
	OrderProcessing = "processing"
	OrderCompleted  = "completed"
	OrderCancelled  = "cancelled"
)

// OrderStatuses lists the valid statuses in display order.
var OrderStatuses = []string{OrderPending, OrderProcessing, OrderCompleted, OrderCancelled}

// ValidOrderStatus reports whether s is one of the API's order statuses.
func ValidOrderStatus(s string) bool {
	for _, v := range OrderStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// OrderItem is a single line of an order.
type OrderItem struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// Order is a customer purchase.
type Order struct {
	ID           string      `json:"_id"`
	CustomerID   string      `json:"customerId,omitempty"`
	CustomerName string      `json:"customerName"`
	Total        float64     `json:"total"`
	Status       string      `json:"status"`
	Items        []OrderItem `json:"items"`
	CreatedAt    time.Time   `json:"createdAt,omitempty"`
}
