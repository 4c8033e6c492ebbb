package order

type Status string

const (
	StatusPending Status = "pending"
	// Terminal states exist in the schema for later flows (payment,
	// fulfillment) but nothing in this service transitions into them yet.
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)
