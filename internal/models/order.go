// internal/models/order.go
package models

import "time"

// Order is synthesized from the cart at checkout. Amount is frozen at
// creation time and never recomputed.
type Order struct {
	ID           string      `json:"id"`
	CustomerName string      `json:"customer_name"`
	Amount       int64       `json:"amount"`
	Status       OrderStatus `json:"status"`
	Date         time.Time   `json:"date"`
	Type         OrderType   `json:"type"`
}
