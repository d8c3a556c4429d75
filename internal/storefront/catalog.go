package storefront

import (
	"context"

	"github.com/manohar12-max/Qkart-Ecommerce-Application/internal/model"
)

type Catalog struct {
	api      CatalogAPI
	notifier Notifier
}

func NewCatalog(api CatalogAPI, n Notifier) *Catalog {
	return &Catalog{api: api, notifier: orDiscard(n)}
}

// Products fetches the full catalog. On failure the user is told the
// backend is unreachable and the result is empty.
func (c *Catalog) Products(ctx context.Context) ([]model.Product, error) {
	products, err := c.api.Products(ctx)
	if err != nil {
		c.notifier.Notify(LevelError, MsgBackendDown)
		return []model.Product{}, err
	}
	return products, nil
}

// Search never fails: no match and backend errors both give an empty list.
func (c *Catalog) Search(ctx context.Context, text string) []model.Product {
	products, err := c.api.Search(ctx, text)
	if err != nil || products == nil {
		return []model.Product{}
	}
	return products
}
