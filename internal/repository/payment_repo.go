package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/manohar12-max/Qkart-Ecommerce-Application/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PaymentRepository struct {
	DB *pgxpool.Pool
}

func NewPaymentRepository(db *pgxpool.Pool) *PaymentRepository {
	return &PaymentRepository{DB: db}
}

func (r *PaymentRepository) CreatePending(ctx context.Context, t *model.WalletTopUp) error {
	q := `
		INSERT INTO wallet_topups
			(id, userid, amount, status, provider, providerref, providerpayload, created_at)
		VALUES
			($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.DB.Exec(ctx, q,
		t.ID, t.UserID, t.Amount, model.TopUpPending, t.Provider, t.ProviderRef, t.ProviderPayload, t.CreatedAt,
	)
	return err
}

func (r *PaymentRepository) GetByID(ctx context.Context, id string) (*model.WalletTopUp, error) {
	var t model.WalletTopUp
	q := `
		SELECT id, userid, amount, status, provider, providerref, providerpayload, created_at, paid_at
		FROM wallet_topups
		WHERE id=$1
	`
	err := r.DB.QueryRow(ctx, q, id).Scan(
		&t.ID,
		&t.UserID,
		&t.Amount,
		&t.Status,
		&t.Provider,
		&t.ProviderRef,
		&t.ProviderPayload,
		&t.CreatedAt,
		&t.PaidAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrTopUpNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// MarkPaid settles a pending top-up and credits the wallet in one
// transaction. A top-up that is no longer pending is left untouched and
// credited is false.
func (r *PaymentRepository) MarkPaid(ctx context.Context, id, providerRef string, payload []byte) (credited bool, balance int64, err error) {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return false, 0, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	var userID string
	var amount int64
	err = tx.QueryRow(ctx, `
		UPDATE wallet_topups
		SET status=$2,
		    providerref=$3,
		    providerpayload=$4,
		    paid_at=$5
		WHERE id=$1 AND status=$6
		RETURNING userid, amount
	`, id, model.TopUpPaid, providerRef, payload, time.Now(), model.TopUpPending).Scan(&userID, &amount)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, 0, nil
	}
	if err != nil {
		return false, 0, err
	}

	err = tx.QueryRow(ctx,
		`UPDATE users SET walletmoney = walletmoney + $1 WHERE id=$2 RETURNING walletmoney`,
		amount, userID,
	).Scan(&balance)
	if err != nil {
		return false, 0, fmt.Errorf("credit wallet: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return false, 0, fmt.Errorf("commit tx: %w", err)
	}
	return true, balance, nil
}

func (r *PaymentRepository) MarkFailed(ctx context.Context, id string, payload []byte) error {
	_, err := r.DB.Exec(ctx, `
		UPDATE wallet_topups
		SET status=$2,
		    providerpayload=$3
		WHERE id=$1
		  AND status=$4
	`, id, model.TopUpFailed, payload, model.TopUpPending)
	return err
}
