package services

import (
	"context"
	"errors"

	"github.com/manohar12-max/Qkart-Ecommerce-Application/internal/model"
	"github.com/manohar12-max/Qkart-Ecommerce-Application/internal/repository"
)

type UserService struct {
	Users UserRepo
}

func NewUserService(u UserRepo) *UserService {
	return &UserService{Users: u}
}

// Me returns the caller's username and current wallet balance.
func (s *UserService) Me(ctx context.Context, userID string) (*model.Profile, error) {
	u, err := s.Users.GetByID(ctx, userID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &model.Profile{Username: u.Username, Balance: u.WalletMoney}, nil
}
