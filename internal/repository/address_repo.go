package repository

import (
	"context"
	"time"

	"github.com/manohar12-max/Qkart-Ecommerce-Application/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AddressRepository struct {
	DB *pgxpool.Pool
}

func NewAddressRepository(db *pgxpool.Pool) *AddressRepository {
	return &AddressRepository{DB: db}
}

// List returns the user's addresses, oldest first.
func (r *AddressRepository) List(ctx context.Context, userID string) ([]model.Address, error) {
	query := `SELECT id, address FROM addresses WHERE userid=$1 ORDER BY created_at, id`
	rows, err := r.DB.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Address{}
	for rows.Next() {
		var a model.Address
		if err := rows.Scan(&a.ID, &a.Address); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *AddressRepository) Add(ctx context.Context, userID, address string) (*model.Address, error) {
	a := &model.Address{ID: uuid.NewString(), Address: address}
	query := `INSERT INTO addresses (id, userid, address, created_at) VALUES ($1, $2, $3, $4)`
	if _, err := r.DB.Exec(ctx, query, a.ID, userID, a.Address, time.Now()); err != nil {
		return nil, err
	}
	return a, nil
}

func (r *AddressRepository) Delete(ctx context.Context, userID, addressID string) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM addresses WHERE id=$1 AND userid=$2`, addressID, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrAddressNotFound
	}
	return nil
}

func (r *AddressRepository) Exists(ctx context.Context, userID, addressID string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM addresses WHERE id=$1 AND userid=$2)`
	if err := r.DB.QueryRow(ctx, query, addressID, userID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}
