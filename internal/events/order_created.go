package events

import "time"

// OrderCreated is emitted after a successful checkout so downstream
// consumers (fulfillment, analytics) can pick the order up.
type OrderCreated struct {
	EventType   string      `json:"eventType"`
	OrderID     string      `json:"orderId"`
	SessionID   string      `json:"sessionId"`
	TotalAmount float64     `json:"totalAmount"`
	Items       []OrderItem `json:"items"`
	Timestamp   time.Time   `json:"timestamp"`
}

type OrderItem struct {
	ProductID string  `json:"productId"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}
