package services

import (
	"context"

	"github.com/manohar12-max/Qkart-Ecommerce-Application/internal/model"
)

// The services depend on these method sets so that the Postgres
// repositories and the in-memory store are interchangeable.

type ProductRepo interface {
	List(ctx context.Context) ([]model.Product, error)
	GetByID(ctx context.Context, id string) (*model.Product, error)
	Search(ctx context.Context, value string) ([]model.Product, error)
	Categories(ctx context.Context) ([]string, error)
}

type UserRepo interface {
	CreateUser(ctx context.Context, u *model.User) error
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	GetByID(ctx context.Context, id string) (*model.User, error)
}

type CartRepo interface {
	GetLines(ctx context.Context, userID string) ([]model.CartLine, error)
	UpsertLine(ctx context.Context, userID, productID string, qty int) error
	Checkout(ctx context.Context, userID, addressID string) (*model.Order, int64, error)
}

type AddressRepo interface {
	List(ctx context.Context, userID string) ([]model.Address, error)
	Add(ctx context.Context, userID, address string) (*model.Address, error)
	Delete(ctx context.Context, userID, addressID string) error
	Exists(ctx context.Context, userID, addressID string) (bool, error)
}

type TopUpRepo interface {
	CreatePending(ctx context.Context, t *model.WalletTopUp) error
	GetByID(ctx context.Context, id string) (*model.WalletTopUp, error)
	MarkPaid(ctx context.Context, id, providerRef string, payload []byte) (bool, int64, error)
	MarkFailed(ctx context.Context, id string, payload []byte) error
}

type OrderRepo interface {
	ListByUser(ctx context.Context, userID string) ([]model.Order, error)
}
