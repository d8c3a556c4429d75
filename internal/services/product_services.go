package services

import (
	"context"
	"errors"
	"strings"

	"github.com/manohar12-max/Qkart-Ecommerce-Application/internal/model"
	"github.com/manohar12-max/Qkart-Ecommerce-Application/internal/repository"
)

type ProductService struct {
	Repo ProductRepo
}

func NewProductService(r ProductRepo) *ProductService {
	return &ProductService{Repo: r}
}

func (s *ProductService) List(ctx context.Context) ([]model.Product, error) {
	return s.Repo.List(ctx)
}

func (s *ProductService) Get(ctx context.Context, id string) (*model.Product, error) {
	p, err := s.Repo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrProductNotFound) {
		return nil, ErrProductNotFound
	}
	return p, err
}

// Search matches value against product name and category. An empty value
// lists everything; a search with no match returns ErrNoProductsFound.
func (s *ProductService) Search(ctx context.Context, value string) ([]model.Product, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return s.Repo.List(ctx)
	}
	products, err := s.Repo.Search(ctx, value)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, ErrNoProductsFound
	}
	return products, nil
}

func (s *ProductService) Categories(ctx context.Context) ([]string, error) {
	return s.Repo.Categories(ctx)
}
