package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/manohar12-max/Qkart-Ecommerce-Application/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CartRepository struct {
	DB *pgxpool.Pool
}

func NewCartRepository(db *pgxpool.Pool) *CartRepository {
	return &CartRepository{DB: db}
}

// GetLines returns the user's cart lines in insertion order.
func (r *CartRepository) GetLines(ctx context.Context, userID string) ([]model.CartLine, error) {
	query := `SELECT productid, qty FROM cartitems WHERE userid=$1 ORDER BY created_at, productid`
	rows, err := r.DB.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lines := []model.CartLine{}
	for rows.Next() {
		var l model.CartLine
		if err := rows.Scan(&l.ProductID, &l.Qty); err != nil {
			return nil, err
		}
		lines = append(lines, l)
	}
	return lines, rows.Err()
}

// UpsertLine sets the quantity of productID in the user's cart.
// qty <= 0 deletes the line; deleting a missing line is not an error.
func (r *CartRepository) UpsertLine(ctx context.Context, userID, productID string, qty int) error {
	if qty <= 0 {
		_, err := r.DB.Exec(ctx, `DELETE FROM cartitems WHERE userid=$1 AND productid=$2`, userID, productID)
		return err
	}
	query := `
		INSERT INTO cartitems (userid, productid, qty, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (userid, productid)
		DO UPDATE SET qty = EXCLUDED.qty
	`
	_, err := r.DB.Exec(ctx, query, userID, productID, qty, time.Now())
	return err
}

type pricedLine struct {
	line model.CartLine
	cost int64
}

func (r *CartRepository) pricedLinesTx(ctx context.Context, tx pgx.Tx, userID string) ([]pricedLine, error) {
	query := `
		SELECT ci.productid, ci.qty, p.cost
		FROM cartitems ci
		JOIN products p ON p.id = ci.productid
		WHERE ci.userid=$1
		ORDER BY ci.created_at, ci.productid
	`
	rows, err := tx.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []pricedLine
	for rows.Next() {
		var pl pricedLine
		if err := rows.Scan(&pl.line.ProductID, &pl.line.Qty, &pl.cost); err != nil {
			return nil, err
		}
		out = append(out, pl)
	}
	return out, rows.Err()
}

// Checkout charges the cart total to the user's wallet, records the order
// and empties the cart in one transaction. The user row is locked so that
// concurrent checkouts cannot overdraw the wallet.
func (r *CartRepository) Checkout(ctx context.Context, userID, addressID string) (*model.Order, int64, error) {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	var wallet int64
	err = tx.QueryRow(ctx, `SELECT walletmoney FROM users WHERE id=$1 FOR UPDATE`, userID).Scan(&wallet)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, 0, ErrUserNotFound
	}
	if err != nil {
		return nil, 0, err
	}

	priced, err := r.pricedLinesTx(ctx, tx, userID)
	if err != nil {
		return nil, 0, err
	}
	if len(priced) == 0 {
		return nil, 0, ErrCartEmpty
	}

	order := &model.Order{
		ID:        uuid.NewString(),
		UserID:    userID,
		AddressID: addressID,
		Items:     make([]model.CartLine, 0, len(priced)),
		CreatedAt: time.Now(),
	}
	for _, pl := range priced {
		order.Items = append(order.Items, pl.line)
		order.Total += int64(pl.line.Qty) * pl.cost
	}
	if wallet < order.Total {
		return nil, 0, ErrInsufficientBalance
	}

	var balance int64
	err = tx.QueryRow(ctx,
		`UPDATE users SET walletmoney = walletmoney - $1 WHERE id=$2 RETURNING walletmoney`,
		order.Total, userID,
	).Scan(&balance)
	if err != nil {
		return nil, 0, fmt.Errorf("charge wallet: %w", err)
	}

	items, err := json.Marshal(order.Items)
	if err != nil {
		return nil, 0, err
	}
	_, err = tx.Exec(ctx,
		`INSERT INTO orders (id, userid, addressid, total, items, created_at) VALUES ($1, $2, $3, $4, $5, $6)`,
		order.ID, userID, addressID, order.Total, items, order.CreatedAt,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("record order: %w", err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM cartitems WHERE userid=$1`, userID); err != nil {
		return nil, 0, fmt.Errorf("empty cart: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, 0, fmt.Errorf("commit tx: %w", err)
	}
	return order, balance, nil
}
