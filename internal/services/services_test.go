package services

import (
	"testing"

	"github.com/manohar12-max/Qkart-Ecommerce-Application/internal/model"
	"github.com/manohar12-max/Qkart-Ecommerce-Application/internal/repository"
)

var testCatalog = []model.Product{
	{ID: "p1", Name: "iPhone XR", Category: "Phones", Cost: 100, Rating: 4},
	{ID: "p2", Name: "Basketball", Category: "Sports", Cost: 50, Rating: 5},
}

func newStore(t *testing.T) *repository.MemoryStore {
	t.Helper()
	s := repository.NewMemoryStore()
	s.SeedProducts(testCatalog)
	return s
}
