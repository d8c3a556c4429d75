package storefront

import (
	"context"
	"fmt"
	"sync"

	"github.com/manohar12-max/Qkart-Ecommerce-Application/internal/model"
)

type options struct {
	preventDuplicate bool
}

type Option func(*options)

// PreventDuplicate rejects the change when the product already has a
// line with a positive quantity. Used when adding from the product list.
func PreventDuplicate() Option {
	return func(o *options) { o.preventDuplicate = true }
}

// Cart holds the reconciled cart for one session.
//
// Network calls run without the lock held, so concurrent changes are not
// deduplicated: the last response to arrive wins.
type Cart struct {
	api      CartAPI
	notifier Notifier

	mu       sync.Mutex
	products []model.Product
	items    []model.CartItem
}

func NewCart(api CartAPI, n Notifier) *Cart {
	return &Cart{api: api, notifier: orDiscard(n)}
}

// SetCatalog replaces the products used to reconcile cart lines.
func (c *Cart) SetCatalog(products []model.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.products = products
	if c.items != nil {
		c.items = Reconcile(linesOf(c.items), c.products)
	}
}

// Items returns a copy of the current items, nil when nothing is loaded.
func (c *Cart) Items() []model.CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.items == nil {
		return nil
	}
	return append([]model.CartItem(nil), c.items...)
}

// Load fetches the cart. Without a session the cart is empty and no call
// is made.
func (c *Cart) Load(ctx context.Context, sess *Session) ([]model.CartItem, error) {
	if !sess.LoggedIn() {
		c.replace(nil)
		return nil, nil
	}
	lines, err := c.api.Cart(ctx, sess.Token)
	if err != nil {
		c.notifier.Notify(LevelError, MsgCartFetchFailed)
		c.replace(nil)
		return nil, fmt.Errorf("fetch cart: %w", err)
	}
	if lines == nil {
		lines = []model.CartLine{}
	}
	return c.replace(lines), nil
}

func (c *Cart) replace(lines []model.CartLine) []model.CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = Reconcile(lines, c.products)
	if c.items == nil {
		return nil
	}
	return append([]model.CartItem(nil), c.items...)
}

// Quantity is the current quantity of productID, 0 when absent.
func (c *Cart) Quantity(productID string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, it := range c.items {
		if it.ProductID == productID {
			return it.Qty
		}
	}
	return 0
}

// SetQuantity upserts productID with qty and re-reconciles with the
// backend's answer. qty <= 0 removes the line; removing twice is fine.
func (c *Cart) SetQuantity(ctx context.Context, sess *Session, productID string, qty int, opts ...Option) error {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if !sess.LoggedIn() {
		c.notifier.Notify(LevelWarning, MsgLoginToAdd)
		return ErrNotLoggedIn
	}
	if qty < 0 {
		qty = 0
	}
	if o.preventDuplicate && c.Quantity(productID) > 0 {
		c.notifier.Notify(LevelWarning, MsgAlreadyInCart)
		return ErrAlreadyInCart
	}

	lines, err := c.api.SetCartQuantity(ctx, sess.Token, productID, qty)
	if err != nil {
		c.notifier.Notify(LevelWarning, MsgErrorAddingCart)
		return fmt.Errorf("set quantity of %s: %w", productID, err)
	}
	if lines == nil {
		lines = []model.CartLine{}
	}
	c.replace(lines)
	return nil
}

// Add puts one unit of a product not yet in the cart.
func (c *Cart) Add(ctx context.Context, sess *Session, productID string) error {
	return c.SetQuantity(ctx, sess, productID, 1, PreventDuplicate())
}

func (c *Cart) Increment(ctx context.Context, sess *Session, productID string) error {
	return c.SetQuantity(ctx, sess, productID, c.Quantity(productID)+1)
}

// Decrement lowers the quantity by one; at 1 it removes the line.
func (c *Cart) Decrement(ctx context.Context, sess *Session, productID string) error {
	return c.SetQuantity(ctx, sess, productID, c.Quantity(productID)-1)
}

func (c *Cart) Remove(ctx context.Context, sess *Session, productID string) error {
	return c.SetQuantity(ctx, sess, productID, 0)
}

func linesOf(items []model.CartItem) []model.CartLine {
	lines := make([]model.CartLine, 0, len(items))
	for _, it := range items {
		lines = append(lines, model.CartLine{ProductID: it.ProductID, Qty: it.Qty})
	}
	return lines
}
