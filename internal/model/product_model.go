package model

import "time"

// Product is a catalog entry. Wire names match the storefront JSON ("_id", "image").
type Product struct {
	ID        string     `json:"_id"`
	Name      string     `json:"name"`
	Category  string     `json:"category"`
	Cost      int64      `json:"cost"`
	Rating    int        `json:"rating"`
	Image     string     `json:"image"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}
