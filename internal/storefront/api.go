package storefront

import (
	"context"

	"github.com/manohar12-max/Qkart-Ecommerce-Application/internal/model"
)

// The backend calls the workflow needs. *qkart.Client implements all of
// them.

type CatalogAPI interface {
	Products(ctx context.Context) ([]model.Product, error)
	Search(ctx context.Context, value string) ([]model.Product, error)
}

type CartAPI interface {
	Cart(ctx context.Context, token string) ([]model.CartLine, error)
	SetCartQuantity(ctx context.Context, token, productID string, qty int) ([]model.CartLine, error)
}

type CheckoutAPI interface {
	Checkout(ctx context.Context, token, addressID string) (*model.CheckoutResponse, error)
}

type AddressAPI interface {
	Addresses(ctx context.Context, token string) ([]model.Address, error)
	AddAddress(ctx context.Context, token, address string) ([]model.Address, error)
	DeleteAddress(ctx context.Context, token, id string) ([]model.Address, error)
}

type AuthAPI interface {
	Login(ctx context.Context, username, password string) (*model.LoginResponse, error)
	Register(ctx context.Context, username, password string) error
	Logout(ctx context.Context, token string) error
}
