package cart

import "time"

// Item is a cart line with its product resolved, matching what the
// storefront renders (id, name, price, image, description).
type Item struct {
	ProductID   string  `json:"productId"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Quantity    int     `json:"quantity"`
}

type Cart struct {
	ID        string    `json:"cartId"`
	SessionID string    `json:"sessionId"`
	Items     []Item    `json:"items"`
	UpdatedAt time.Time `json:"updatedAt"`
}
