package order

import "time"

// Item carries the quantity and the unit price captured at checkout
// time. The price is a snapshot: later catalog price changes never
// touch it.
type Item struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Image     string  `json:"image"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

type Order struct {
	ID              string    `json:"orderId"`
	SessionID       string    `json:"sessionId"`
	Items           []Item    `json:"items"`
	TotalAmount     float64   `json:"totalAmount"`
	ShippingAddress string    `json:"shippingAddress"`
	PaymentMethod   string    `json:"paymentMethod"`
	Status          Status    `json:"status"`
	PaymentStatus   Status    `json:"paymentStatus"`
	CreatedAt       time.Time `json:"createdAt"`
}
