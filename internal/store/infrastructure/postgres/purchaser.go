package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/ByeoliKim/star-shop/internal/pkg/database"
	"github.com/ByeoliKim/star-shop/internal/store/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolationCode = "23505"

type PurchaseProcessor struct{}

func NewPurchaseProcessor() *PurchaseProcessor {
	return &PurchaseProcessor{}
}

// ProcessPurchase debits the user's cash and appends the ownership records
// using the caller's transaction executor. The conditional cash update never
// lets the balance go negative even if the pre-flight check was raced; a
// unique violation on (user_id, product_id) means another request granted
// one of the products first and aborts the whole transaction.
func (pp *PurchaseProcessor) ProcessPurchase(ctx context.Context, executor database.Executor, userID uuid.UUID, total int64, productIDs []uuid.UUID) error {
	updateCashSQL := `UPDATE user_profiles SET cash = cash - $1 WHERE id = $2 AND cash >= $1`
	tag, err := executor.Exec(ctx, updateCashSQL, total, userID)
	if err != nil {
		return fmt.Errorf("failed to update user cash: %w", err)
	} else if tag.RowsAffected() == 0 {
		return &domain.InsufficientBalanceError{Msg: "insufficient cash"}
	}

	insertOwnedSQL := `INSERT INTO user_owned_products (user_id, product_id) SELECT $1, unnest($2::uuid[])`
	_, err = executor.Exec(ctx, insertOwnedSQL, userID, productIDs)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return &domain.PurchaseConflictError{Msg: "product was purchased concurrently"}
		}

		return fmt.Errorf("failed to insert ownership records: %w", err)
	}

	return nil
}
