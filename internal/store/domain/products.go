package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type CatalogRepository interface {
	// GetProducts resolves every requested id to its pricing info.
	// If any id does not exist, it returns ProductNotFoundError listing
	// the unresolved ids.
	GetProducts(ctx context.Context, productIDs []uuid.UUID) ([]ProductInfo, error)

	// ListProducts returns one catalog page ordered by newest first.
	ListProducts(ctx context.Context, page, limit int) ([]Product, error)
}

// ProductInfo is the pricing view of a product used during checkout.
type ProductInfo struct {
	ID            uuid.UUID
	Name          string
	OriginalPrice int64
	DiscountRate  int
}

func (p ProductInfo) SalePrice() int64 {
	return CalcSalePrice(p.OriginalPrice, p.DiscountRate)
}

// Product is the full catalog entry. Read-only for this service.
type Product struct {
	ID            uuid.UUID `json:"id"`
	Category      string    `json:"category"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	ImagePath     string    `json:"imagePath"`
	OriginalPrice int64     `json:"originalPrice"`
	DiscountRate  int       `json:"discountRate"`
	SalePrice     int64     `json:"salePrice"`
	CreatedAt     time.Time `json:"createdAt"`
}

type CatalogPage struct {
	Items   []Product `json:"items"`
	Page    int       `json:"page"`
	Limit   int       `json:"limit"`
	HasNext bool      `json:"hasNext"`
}
