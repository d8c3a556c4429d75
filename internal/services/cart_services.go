package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/manohar12-max/Qkart-Ecommerce-Application/internal/model"
	"github.com/manohar12-max/Qkart-Ecommerce-Application/internal/repository"
)

type CartService struct {
	Carts     CartRepo
	Products  ProductRepo
	Addresses AddressRepo
}

func NewCartService(cr CartRepo, pr ProductRepo, ar AddressRepo) *CartService {
	return &CartService{Carts: cr, Products: pr, Addresses: ar}
}

// Get returns the user's cart lines. An unknown user has an empty cart.
func (s *CartService) Get(ctx context.Context, userID string) ([]model.CartLine, error) {
	return s.Carts.GetLines(ctx, userID)
}

// Upsert sets the quantity of productID and returns the resulting cart.
// qty <= 0 removes the line and is idempotent, so removal does not check
// the catalog.
func (s *CartService) Upsert(ctx context.Context, userID, productID string, qty int) ([]model.CartLine, error) {
	if productID == "" {
		return nil, ErrProductRequired
	}
	if qty < 0 {
		qty = 0
	}
	if qty > 0 {
		if _, err := s.Products.GetByID(ctx, productID); err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return nil, ErrProductNotInDB
			}
			return nil, err
		}
	}
	if err := s.Carts.UpsertLine(ctx, userID, productID, qty); err != nil {
		return nil, fmt.Errorf("upsert cart line: %w", err)
	}
	return s.Carts.GetLines(ctx, userID)
}

// Checkout charges the cart to the wallet and ships it to addressID.
// It returns the recorded order and the post-checkout balance.
func (s *CartService) Checkout(ctx context.Context, userID, addressID string) (*model.Order, int64, error) {
	if addressID == "" {
		return nil, 0, ErrAddressNotSet
	}
	ok, err := s.Addresses.Exists(ctx, userID, addressID)
	if err != nil {
		return nil, 0, err
	}
	if !ok {
		return nil, 0, ErrAddressNotFound
	}

	order, balance, err := s.Carts.Checkout(ctx, userID, addressID)
	switch {
	case errors.Is(err, repository.ErrCartEmpty):
		return nil, 0, ErrCartEmpty
	case errors.Is(err, repository.ErrInsufficientBalance):
		return nil, 0, ErrInsufficientFund
	case errors.Is(err, repository.ErrUserNotFound):
		return nil, 0, ErrUserNotFound
	case err != nil:
		return nil, 0, fmt.Errorf("checkout: %w", err)
	}
	return order, balance, nil
}
