package storefront

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"github.com/manohar12-max/Qkart-Ecommerce-Application/external/qkart"
	"github.com/manohar12-max/Qkart-Ecommerce-Application/internal/model"
)

var errBoom = errors.New("connection refused")

type note struct {
	Level Level
	Msg   string
}

type recorder struct {
	mu    sync.Mutex
	notes []note
}

func (r *recorder) Notify(level Level, msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notes = append(r.notes, note{level, msg})
}

func (r *recorder) messages() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.notes))
	for _, n := range r.notes {
		out = append(out, n.Msg)
	}
	return out
}

// fakeAPI is an in-memory backend for one user.
type fakeAPI struct {
	mu        sync.Mutex
	calls     map[string]int
	lines     []model.CartLine
	addresses []model.Address
	balance   *int64
	fail      error
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{calls: map[string]int{}}
}

func (f *fakeAPI) hit(name string) error {
	f.calls[name]++
	return f.fail
}

func (f *fakeAPI) count(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[name]
}

func (f *fakeAPI) Products(context.Context) ([]model.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.hit("products"); err != nil {
		return nil, err
	}
	return catalog, nil
}

func (f *fakeAPI) Search(_ context.Context, value string) ([]model.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.hit("search"); err != nil {
		return nil, err
	}
	if value == "none" {
		return []model.Product{}, nil
	}
	return catalog[:1], nil
}

func (f *fakeAPI) Cart(context.Context, string) ([]model.CartLine, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.hit("cart"); err != nil {
		return nil, err
	}
	return append([]model.CartLine{}, f.lines...), nil
}

func (f *fakeAPI) SetCartQuantity(_ context.Context, _ string, productID string, qty int) ([]model.CartLine, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.hit("upsert"); err != nil {
		return nil, err
	}
	for i := range f.lines {
		if f.lines[i].ProductID == productID {
			if qty == 0 {
				f.lines = append(f.lines[:i:i], f.lines[i+1:]...)
			} else {
				f.lines[i].Qty = qty
			}
			return append([]model.CartLine{}, f.lines...), nil
		}
	}
	if qty > 0 {
		f.lines = append(f.lines, model.CartLine{ProductID: productID, Qty: qty})
	}
	return append([]model.CartLine{}, f.lines...), nil
}

func (f *fakeAPI) Checkout(_ context.Context, _ string, addressID string) (*model.CheckoutResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.hit("checkout"); err != nil {
		return nil, err
	}
	f.lines = nil
	return &model.CheckoutResponse{Success: true, OrderID: "o-" + addressID, Balance: f.balance}, nil
}

func (f *fakeAPI) Addresses(context.Context, string) ([]model.Address, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.hit("addresses"); err != nil {
		return nil, err
	}
	return append([]model.Address{}, f.addresses...), nil
}

func (f *fakeAPI) AddAddress(_ context.Context, _ string, address string) ([]model.Address, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.hit("add-address"); err != nil {
		return nil, err
	}
	f.addresses = append(f.addresses, model.Address{ID: "a" + string(rune('0'+len(f.addresses)+1)), Address: address})
	return append([]model.Address{}, f.addresses...), nil
}

func (f *fakeAPI) DeleteAddress(_ context.Context, _ string, id string) ([]model.Address, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.hit("delete-address"); err != nil {
		return nil, err
	}
	for i := range f.addresses {
		if f.addresses[i].ID == id {
			f.addresses = append(f.addresses[:i:i], f.addresses[i+1:]...)
			return append([]model.Address{}, f.addresses...), nil
		}
	}
	return nil, &qkart.APIError{StatusCode: http.StatusBadRequest, Message: "Address not found"}
}

func (f *fakeAPI) Login(_ context.Context, username, password string) (*model.LoginResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.hit("login"); err != nil {
		return nil, err
	}
	if password != "learnbydoing" {
		return nil, &qkart.APIError{StatusCode: http.StatusBadRequest, Message: "Password is incorrect"}
	}
	return &model.LoginResponse{Success: true, Token: "tok", Username: username, Balance: 5000}, nil
}

func (f *fakeAPI) Register(_ context.Context, username, _ string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.hit("register"); err != nil {
		return err
	}
	if username == "taken.user" {
		return &qkart.APIError{StatusCode: http.StatusBadRequest, Message: "Username is already taken"}
	}
	return nil
}

func (f *fakeAPI) Logout(context.Context, string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.hit("logout")
}

var catalog = []model.Product{
	{ID: "p1", Name: "iPhone XR", Category: "Phones", Cost: 100, Rating: 4, Image: "iphone.png"},
	{ID: "p2", Name: "Basketball", Category: "Sports", Cost: 50, Rating: 5, Image: "ball.png"},
}

func loggedIn(balance int64) *Session {
	return &Session{Token: "tok", Username: "crio.do", Balance: balance}
}
