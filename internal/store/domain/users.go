package domain

import (
	"context"

	"github.com/ByeoliKim/star-shop/internal/pkg/database"
	"github.com/google/uuid"
)

// StartCash is granted once when a user's profile is first observed.
const StartCash int64 = 10000

type ProfilesRepository interface {
	// EnsureProfileCreated lazily creates the user's profile with startCash.
	// Creating an already-existing profile is a no-op.
	EnsureProfileCreated(ctx context.Context, userID uuid.UUID, startCash int64) error

	// LockAndGetUserCash reads the user's cash under a row lock held for the
	// rest of the surrounding transaction. Same-user checkouts serialize on
	// this lock.
	LockAndGetUserCash(ctx context.Context, querier database.Querier, userID uuid.UUID) (int64, error)

	// GetUserCash reads the current cash without locking.
	GetUserCash(ctx context.Context, userID uuid.UUID) (int64, error)
}

type OwnershipRepository interface {
	// GetOwnedAmong returns the subset of productIDs the user already owns.
	GetOwnedAmong(ctx context.Context, querier database.Querier, userID uuid.UUID, productIDs []uuid.UUID) ([]uuid.UUID, error)

	// GetOwnedProductIDs returns every product the user owns.
	GetOwnedProductIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}

// UserState is the display view of a user: current cash plus owned products.
type UserState struct {
	Cash     int64
	OwnedIDs []uuid.UUID
}
