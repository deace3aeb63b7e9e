package postgres

import (
	"context"
	"fmt"

	"github.com/ByeoliKim/star-shop/internal/pkg/database"
	"github.com/ByeoliKim/star-shop/internal/store/domain"
	"github.com/google/uuid"
)

type CatalogRepository struct {
	querier database.Querier
}

func NewCatalogRepository(querier database.Querier) *CatalogRepository {
	return &CatalogRepository{
		querier: querier,
	}
}

func (cr *CatalogRepository) GetProducts(ctx context.Context, productIDs []uuid.UUID) ([]domain.ProductInfo, error) {
	findProductsSQL := `SELECT id, name, original_price, discount_rate FROM products WHERE id = ANY($1)`

	rows, err := cr.querier.Query(ctx, findProductsSQL, productIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to find products: %w", err)
	}
	defer rows.Close()

	found := make(map[uuid.UUID]domain.ProductInfo, len(productIDs))
	for rows.Next() {
		var info domain.ProductInfo
		if err := rows.Scan(&info.ID, &info.Name, &info.OriginalPrice, &info.DiscountRate); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}

		found[info.ID] = info
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read products: %w", err)
	}

	var missing []uuid.UUID
	products := make([]domain.ProductInfo, 0, len(productIDs))

	// keep request order so callers can report per-id results
	for _, id := range productIDs {
		info, ok := found[id]
		if !ok {
			missing = append(missing, id)
			continue
		}

		products = append(products, info)
	}

	if len(missing) > 0 {
		return nil, &domain.ProductNotFoundError{
			Msg:        fmt.Sprintf("%d requested product(s) not found", len(missing)),
			ProductIDs: missing,
		}
	}

	return products, nil
}

func (cr *CatalogRepository) ListProducts(ctx context.Context, page, limit int) ([]domain.Product, error) {
	listProductsSQL := `
		SELECT id, category, name, description, image_path, original_price, discount_rate, created_at
		FROM products
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`

	rows, err := cr.querier.Query(ctx, listProductsSQL, limit, (page-1)*limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var p domain.Product
		err := rows.Scan(&p.ID, &p.Category, &p.Name, &p.Description, &p.ImagePath,
			&p.OriginalPrice, &p.DiscountRate, &p.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}

		p.SalePrice = domain.CalcSalePrice(p.OriginalPrice, p.DiscountRate)
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read products: %w", err)
	}

	return products, nil
}
