package models

import "time"

// CartItem embeds a product snapshot so the line stays stable even if the
// catalog entry is later edited or removed.
type CartItem struct {
	Product
	Quantity int `json:"quantity"`
}

// Order statuses. A user may only cancel while Placed; the admin console
// overwrites the status directly.
const (
	StatusPlaced    = "Placed"
	StatusShipped   = "Shipped"
	StatusDelivered = "Delivered"
	StatusCancelled = "Cancelled"
)

// PaymentCOD is the only supported payment method.
const PaymentCOD = "COD"

// Order is immutable after creation except for Status. Total is computed
// once at creation and never recomputed.
type Order struct {
	ID            string     `json:"id"`
	UserID        string     `json:"userId"`
	Items         []CartItem `json:"items"`
	Subtotal      float64    `json:"subtotal"`
	Shipping      float64    `json:"shipping"`
	Tax           float64    `json:"tax"`
	Total         float64    `json:"total"`
	Address       string     `json:"address"`
	Status        string     `json:"status"`
	PaymentMethod string     `json:"paymentMethod"`
	CreatedAt     time.Time  `json:"createdAt"`
}
