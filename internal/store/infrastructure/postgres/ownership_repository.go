package postgres

import (
	"context"
	"fmt"

	"github.com/ByeoliKim/star-shop/internal/pkg/database"
	"github.com/google/uuid"
)

type OwnershipRepository struct {
	querier database.Querier
}

func NewOwnershipRepository(querier database.Querier) *OwnershipRepository {
	return &OwnershipRepository{
		querier: querier,
	}
}

func (or *OwnershipRepository) GetOwnedAmong(ctx context.Context, querier database.Querier, userID uuid.UUID, productIDs []uuid.UUID) ([]uuid.UUID, error) {
	sql := `SELECT product_id FROM user_owned_products WHERE user_id = $1 AND product_id = ANY($2)`

	rows, err := querier.Query(ctx, sql, userID, productIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to check owned products: %w", err)
	}
	defer rows.Close()

	var owned []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan owned product: %w", err)
		}

		owned = append(owned, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read owned products: %w", err)
	}

	return owned, nil
}

func (or *OwnershipRepository) GetOwnedProductIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	sql := `SELECT product_id FROM user_owned_products WHERE user_id = $1 ORDER BY purchased_at`

	rows, err := or.querier.Query(ctx, sql, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch owned products: %w", err)
	}
	defer rows.Close()

	var owned []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan owned product: %w", err)
		}

		owned = append(owned, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read owned products: %w", err)
	}

	return owned, nil
}
