package services

import (
	"context"

	"github.com/manohar12-max/Qkart-Ecommerce-Application/internal/model"
)

type OrderService struct {
	Orders OrderRepo
}

func NewOrderService(r OrderRepo) *OrderService {
	return &OrderService{Orders: r}
}

// History lists the orders the user has placed, newest first.
func (s *OrderService) History(ctx context.Context, userID string) ([]model.Order, error) {
	return s.Orders.ListByUser(ctx, userID)
}
