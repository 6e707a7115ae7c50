package models

import "time"

// Product represents a catalog entry. DateModified is server-assigned and
// refreshed on every mutation.
type Product struct {
	ID           int       `json:"product_id"`
	Name         string    `json:"product_name"`
	Description  string    `json:"description"`
	Quantity     int       `json:"quantity"`
	Price        float64   `json:"price"`
	DateModified time.Time `json:"date_modified"`
}
