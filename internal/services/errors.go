package services

import "errors"

// Messages are returned to API clients verbatim.
var (
	ErrUsernameRequired = errors.New("Username is a required field")
	ErrUsernameTooShort = errors.New("Username must be at least 6 characters")
	ErrPasswordTooShort = errors.New("Password must be at least 6 characters")
	ErrUsernameTaken    = errors.New("Username is already taken")
	ErrUnknownUsername  = errors.New("Username does not exist")
	ErrWrongPassword    = errors.New("Password is incorrect")
	ErrUserNotFound     = errors.New("User not found")

	ErrProductNotFound  = errors.New("Product not found")
	ErrNoProductsFound  = errors.New("No products found")
	ErrProductNotInDB   = errors.New("Product doesn't exist in database")
	ErrProductRequired  = errors.New("productId is required")
	ErrCartEmpty        = errors.New("Cart is empty")
	ErrAddressNotSet    = errors.New("Address not set")
	ErrAddressNotFound  = errors.New("Address not found")
	ErrAddressTooShort  = errors.New("Address must be at least 20 characters")
	ErrAddressTooLong   = errors.New("Address must be at most 128 characters")
	ErrInsufficientFund = errors.New("Wallet balance not sufficient to place order")

	ErrInvalidAmount    = errors.New("Top-up amount must be positive")
	ErrPaymentsDisabled = errors.New("Payments are not configured")
	ErrTopUpNotFound    = errors.New("Top-up not found")
	ErrInvalidSignature = errors.New("invalid signature")
	ErrAmountMismatch   = errors.New("gross amount does not match top-up")
	ErrMissingTopUpRef  = errors.New("missing order_id")
)
