package repository

import "errors"

var (
	ErrProductNotFound     = errors.New("product not found")
	ErrUserNotFound        = errors.New("user not found")
	ErrUsernameTaken       = errors.New("username is already taken")
	ErrAddressNotFound     = errors.New("address not found")
	ErrCartEmpty           = errors.New("cart is empty")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrTopUpNotFound       = errors.New("top-up not found")
)
