package repository

import (
	"context"
	"errors"

	"github.com/manohar12-max/Qkart-Ecommerce-Application/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const pgUniqueViolation = "23505"

type AuthRepository struct {
	DB *pgxpool.Pool
}

func NewAuthRepository(db *pgxpool.Pool) *AuthRepository {
	return &AuthRepository{DB: db}
}

// CreateUser inserts u. A duplicate username yields ErrUsernameTaken.
func (r *AuthRepository) CreateUser(ctx context.Context, u *model.User) error {
	query := `INSERT INTO users (id, username, passwordhash, walletmoney, created_at) VALUES ($1, $2, $3, $4, $5)`
	_, err := r.DB.Exec(ctx, query, u.ID, u.Username, u.PasswordHash, u.WalletMoney, u.CreatedAt)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return ErrUsernameTaken
	}
	return err
}

func (r *AuthRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	var u model.User
	query := `SELECT id, username, passwordhash, walletmoney, created_at FROM users WHERE username=$1`
	err := r.DB.QueryRow(ctx, query, username).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.WalletMoney, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *AuthRepository) GetByID(ctx context.Context, id string) (*model.User, error) {
	var u model.User
	query := `SELECT id, username, walletmoney, created_at FROM users WHERE id=$1`
	err := r.DB.QueryRow(ctx, query, id).Scan(&u.ID, &u.Username, &u.WalletMoney, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}
