package application

import (
	"context"

	"github.com/ByeoliKim/star-shop/internal/store/domain"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 50
)

type CatalogCase struct {
	catalog domain.CatalogRepository
}

func NewCatalogCase(catalog domain.CatalogRepository) *CatalogCase {
	return &CatalogCase{
		catalog: catalog,
	}
}

// ListProducts returns one catalog page. Out-of-range paging values fall
// back to defaults instead of failing.
func (cc *CatalogCase) ListProducts(ctx context.Context, page, limit int) (domain.CatalogPage, error) {
	if page < 1 {
		page = defaultPage
	}
	if limit < 1 || limit > maxLimit {
		limit = defaultLimit
	}

	products, err := cc.catalog.ListProducts(ctx, page, limit)
	if err != nil {
		return domain.CatalogPage{}, err
	}

	return domain.CatalogPage{
		Items: products,
		Page:  page,
		Limit: limit,
		// a short page means there is nothing after it
		HasNext: len(products) == limit,
	}, nil
}
