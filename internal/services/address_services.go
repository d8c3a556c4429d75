package services

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/manohar12-max/Qkart-Ecommerce-Application/internal/model"
	"github.com/manohar12-max/Qkart-Ecommerce-Application/internal/repository"
)

const (
	MinAddressLen = 20
	MaxAddressLen = 128
)

type AddressService struct {
	Repo AddressRepo
}

func NewAddressService(r AddressRepo) *AddressService {
	return &AddressService{Repo: r}
}

func (s *AddressService) List(ctx context.Context, userID string) ([]model.Address, error) {
	return s.Repo.List(ctx, userID)
}

// Add stores address and returns the user's full address list. Length
// bounds count characters, not bytes.
func (s *AddressService) Add(ctx context.Context, userID, address string) ([]model.Address, error) {
	address = strings.TrimSpace(address)
	n := utf8.RuneCountInString(address)
	if n < MinAddressLen {
		return nil, ErrAddressTooShort
	}
	if n > MaxAddressLen {
		return nil, ErrAddressTooLong
	}
	if _, err := s.Repo.Add(ctx, userID, address); err != nil {
		return nil, err
	}
	return s.Repo.List(ctx, userID)
}

// Delete removes addressID and returns the remaining addresses.
func (s *AddressService) Delete(ctx context.Context, userID, addressID string) ([]model.Address, error) {
	if err := s.Repo.Delete(ctx, userID, addressID); err != nil {
		if errors.Is(err, repository.ErrAddressNotFound) {
			return nil, ErrAddressNotFound
		}
		return nil, err
	}
	return s.Repo.List(ctx, userID)
}
