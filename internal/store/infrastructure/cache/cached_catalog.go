package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	pkgcache "github.com/ByeoliKim/star-shop/internal/pkg/cache"
	"github.com/ByeoliKim/star-shop/internal/pkg/logging"
	"github.com/ByeoliKim/star-shop/internal/store/domain"
	"github.com/google/uuid"
)

// CachedCatalog caches catalog listing pages in front of the real
// repository. Checkout price resolution always goes to the database, so a
// stale page can never change what a purchase is charged.
type CachedCatalog struct {
	inner  domain.CatalogRepository
	cache  pkgcache.Cache
	ttl    time.Duration
	logger logging.Logger
}

func NewCachedCatalog(inner domain.CatalogRepository, cache pkgcache.Cache, ttl time.Duration, logger logging.Logger) *CachedCatalog {
	return &CachedCatalog{
		inner:  inner,
		cache:  cache,
		ttl:    ttl,
		logger: logger,
	}
}

func (cc *CachedCatalog) GetProducts(ctx context.Context, productIDs []uuid.UUID) ([]domain.ProductInfo, error) {
	return cc.inner.GetProducts(ctx, productIDs)
}

func (cc *CachedCatalog) ListProducts(ctx context.Context, page, limit int) ([]domain.Product, error) {
	key := fmt.Sprintf("products:page:%d:%d", page, limit)

	cached, err := cc.cache.Get(ctx, key)
	if err == nil {
		var products []domain.Product
		if err := json.Unmarshal(cached, &products); err == nil {
			return products, nil
		}

		// unreadable entry, drop it and fall through to the database
		_ = cc.cache.Delete(ctx, key)
	} else if err != pkgcache.ErrCacheMiss {
		cc.logger.Warn("catalog cache read failed", "error", err.Error())
	}

	products, err := cc.inner.ListProducts(ctx, page, limit)
	if err != nil {
		return nil, err
	}

	if encoded, err := json.Marshal(products); err == nil {
		if err := cc.cache.Set(ctx, key, encoded, cc.ttl); err != nil {
			cc.logger.Warn("catalog cache write failed", "error", err.Error())
		}
	}

	return products, nil
}
