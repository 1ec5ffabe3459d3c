// Package queue defines message payloads exchanged over the message broker.
package queue

// SaleCompletedEvent is published after a sale's stock decrement commits.
// It carries enough information for downstream consumers to log, audit, or
// feed analytics without querying the primary database.
type SaleCompletedEvent struct {
	ProductID    uint64 `json:"product_id"`
	ProductName  string `json:"product_name"`
	QuantitySold int64  `json:"quantity_sold"`
	NewStock     int64  `json:"new_stock"`
	SoldBy       string `json:"sold_by"`
	OccurredAt   string `json:"occurred_at"`
}
