package domain

import (
	"context"
	"fmt"

	"github.com/ByeoliKim/star-shop/internal/pkg/database"
	"github.com/google/uuid"
)

type Purchaser interface {
	// ProcessPurchase debits total from the user's cash and appends one
	// ownership record per product id, all within the caller's transaction.
	ProcessPurchase(ctx context.Context, executor database.Executor, userID uuid.UUID, total int64, productIDs []uuid.UUID) error
}

// PurchaseRequest is a normalized checkout request: the acting user plus a
// non-empty, de-duplicated list of product ids.
type PurchaseRequest struct {
	UserID     uuid.UUID
	ProductIDs []uuid.UUID
}

type PurchaseResult struct {
	NewCash             int64
	PurchasedProductIDs []uuid.UUID
}

// NormalizePurchaseRequest validates a raw checkout request and produces the
// normalized form. Repeated ids within one request collapse to the first
// occurrence; order is otherwise preserved. No ledger is touched here.
func NormalizePurchaseRequest(userID uuid.UUID, rawProductIDs []string) (PurchaseRequest, error) {
	if userID == uuid.Nil {
		return PurchaseRequest{}, &InvalidArgumentsError{Msg: "user id is required"}
	}

	if len(rawProductIDs) == 0 {
		return PurchaseRequest{}, &InvalidArgumentsError{Msg: "no products to purchase"}
	}

	seen := make(map[uuid.UUID]struct{}, len(rawProductIDs))
	productIDs := make([]uuid.UUID, 0, len(rawProductIDs))

	for _, raw := range rawProductIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return PurchaseRequest{}, &InvalidArgumentsError{Msg: fmt.Sprintf("invalid product id %q", raw)}
		}

		if _, ok := seen[id]; ok {
			continue
		}

		seen[id] = struct{}{}
		productIDs = append(productIDs, id)
	}

	return PurchaseRequest{
		UserID:     userID,
		ProductIDs: productIDs,
	}, nil
}
