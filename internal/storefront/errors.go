package storefront

import (
	"errors"
	"fmt"
	"strings"
)

// User-facing messages.
const (
	MsgLoginToAdd       = "Login to add an item to the Cart"
	MsgAlreadyInCart    = "Item already in cart. Use the cart sidebar to update quantity or remove item"
	MsgErrorAddingCart  = "Error adding to cart"
	MsgCartFetchFailed  = "Couldn't fetch cart details"
	MsgBackendDown      = "Something went wrong. Check that the backend is running, reachable and returns valid JSON."
	MsgLoginForCheckout = "You must login to access Checkout page"
	MsgLowBalance       = "You do not have enough balance in your wallet for this purchase"
	MsgNoAddresses      = "Please add a new address before proceeding."
	MsgNoSelection      = "Please select one shipping address to proceed"
	MsgOrderPlaced      = "Order placed successfully"
	MsgOrderFailed      = "Order could not be placed"
	MsgLoggedIn         = "Logged in successfully"
	MsgRegistered       = "Registered successfully"
	MsgLoggedOut        = "Logged out successfully"
	MsgEmptyAddress     = "Please enter an address"
)

var (
	ErrNotLoggedIn      = errors.New("not logged in")
	ErrAlreadyInCart    = errors.New("item already in cart")
	ErrUsernameRequired = errors.New("Username is a required field")
	ErrUsernameTooShort = errors.New("Username must be at least 6 characters")
	ErrPasswordRequired = errors.New("Password is a required field")
	ErrPasswordTooShort = errors.New("Password must be at least 6 characters")
	ErrPasswordMismatch = errors.New("Passwords do not match")
	ErrEmptyAddress     = errors.New("address is empty")
	ErrUnknownAddress   = errors.New("address is not in the address book")
)

// ValidationError reports the blocking checkout signals that stopped a
// submission.
type ValidationError struct {
	Signals []Signal
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Signals))
	for _, s := range e.Signals {
		names = append(names, string(s))
	}
	return fmt.Sprintf("checkout blocked: %s", strings.Join(names, ", "))
}
