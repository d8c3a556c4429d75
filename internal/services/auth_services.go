package services

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/manohar12-max/Qkart-Ecommerce-Application/internal/model"
	"github.com/manohar12-max/Qkart-Ecommerce-Application/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	MinUsernameLen = 6
	MinPasswordLen = 6
)

type AuthService struct {
	Users              UserRepo
	DefaultWalletMoney int64
}

func NewAuthService(u UserRepo, defaultWalletMoney int64) *AuthService {
	return &AuthService{Users: u, DefaultWalletMoney: defaultWalletMoney}
}

func (s *AuthService) validateUsername(username string) error {
	if username == "" {
		return ErrUsernameRequired
	}
	if utf8.RuneCountInString(username) < MinUsernameLen {
		return ErrUsernameTooShort
	}
	return nil
}

func (s *AuthService) validatePassword(pw string) error {
	if utf8.RuneCountInString(pw) < MinPasswordLen {
		return ErrPasswordTooShort
	}
	return nil
}

// Register creates a user with the default wallet balance.
func (s *AuthService) Register(ctx context.Context, username, password string) (*model.User, error) {
	username = strings.TrimSpace(username)
	if err := s.validateUsername(username); err != nil {
		return nil, err
	}
	if err := s.validatePassword(password); err != nil {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u := &model.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: string(hash),
		WalletMoney:  s.DefaultWalletMoney,
		CreatedAt:    time.Now(),
	}
	if err := s.Users.CreateUser(ctx, u); err != nil {
		if errors.Is(err, repository.ErrUsernameTaken) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}
	u.PasswordHash = ""
	return u, nil
}

// Login checks the password and returns the user without its hash.
func (s *AuthService) Login(ctx context.Context, username, password string) (*model.User, error) {
	u, err := s.Users.GetByUsername(ctx, strings.TrimSpace(username))
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, ErrUnknownUsername
	}
	if err != nil {
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, ErrWrongPassword
	}
	u.PasswordHash = ""
	return u, nil
}
