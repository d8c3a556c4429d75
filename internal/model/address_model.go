package model

// Address is a saved shipping address.
type Address struct {
	ID      string `json:"_id"`
	Address string `json:"address"`
}
