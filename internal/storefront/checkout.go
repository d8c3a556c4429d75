package storefront

import (
	"context"
	"fmt"

	"github.com/manohar12-max/Qkart-Ecommerce-Application/internal/model"
)

type Signal string

const (
	SignalNotLoggedIn         Signal = "not_logged_in"
	SignalInsufficientBalance Signal = "insufficient_balance"
	SignalNoAddresses         Signal = "no_addresses"
	SignalNoSelection         Signal = "no_selection"
)

// Blocking reports whether the signal prevents checkout. SignalNoAddresses
// is advisory; with no addresses SignalNoSelection blocks anyway.
func (s Signal) Blocking() bool {
	return s != SignalNoAddresses
}

func (s Signal) Message() string {
	switch s {
	case SignalNotLoggedIn:
		return MsgLoginForCheckout
	case SignalInsufficientBalance:
		return MsgLowBalance
	case SignalNoAddresses:
		return MsgNoAddresses
	case SignalNoSelection:
		return MsgNoSelection
	}
	return string(s)
}

type ValidationResult struct {
	OK      bool
	Signals []Signal
}

// AddressSelection is the address state checkout needs.
type AddressSelection interface {
	Addresses() []model.Address
	Selected() string
}

// Validate runs the checkout guards in order. An insufficient balance
// stops evaluation immediately. Every raised signal is sent to n as a
// warning.
func Validate(sess *Session, items []model.CartItem, book AddressSelection, n Notifier) ValidationResult {
	n = orDiscard(n)
	var res ValidationResult
	raise := func(s Signal) {
		res.Signals = append(res.Signals, s)
		n.Notify(LevelWarning, s.Message())
	}

	if !sess.LoggedIn() {
		raise(SignalNotLoggedIn)
		return res
	}
	if sess.Balance < TotalValue(items) {
		raise(SignalInsufficientBalance)
		return res
	}
	if len(book.Addresses()) == 0 {
		raise(SignalNoAddresses)
	}
	if book.Selected() == "" {
		raise(SignalNoSelection)
	}

	res.OK = true
	for _, s := range res.Signals {
		if s.Blocking() {
			res.OK = false
		}
	}
	return res
}

type Checkout struct {
	api      CheckoutAPI
	notifier Notifier
}

func NewCheckout(api CheckoutAPI, n Notifier) *Checkout {
	return &Checkout{api: api, notifier: orDiscard(n)}
}

// Submit validates and places the order for the selected address. It is
// a single request with no retry.
//
// On success the session balance becomes the backend's post-checkout
// balance. If the backend omits it the cart total is deducted locally and
// the balance is marked provisional.
func (c *Checkout) Submit(ctx context.Context, sess *Session, items []model.CartItem, book AddressSelection) (*model.CheckoutResponse, error) {
	res := Validate(sess, items, book, c.notifier)
	if !res.OK {
		return nil, &ValidationError{Signals: res.Signals}
	}

	resp, err := c.api.Checkout(ctx, sess.Token, book.Selected())
	if err != nil {
		c.notifier.Notify(LevelError, MsgOrderFailed)
		return nil, fmt.Errorf("checkout: %w", err)
	}

	if resp.Balance != nil {
		sess.Balance = *resp.Balance
		sess.BalanceProvisional = false
	} else {
		sess.Balance -= TotalValue(items)
		sess.BalanceProvisional = true
	}
	c.notifier.Notify(LevelSuccess, MsgOrderPlaced)
	return resp, nil
}
