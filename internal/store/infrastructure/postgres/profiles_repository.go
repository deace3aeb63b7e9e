package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/ByeoliKim/star-shop/internal/pkg/database"
	"github.com/ByeoliKim/star-shop/internal/store/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ProfilesRepository struct {
	executor database.QueryExecuter
}

func NewProfilesRepository(executor database.QueryExecuter) *ProfilesRepository {
	return &ProfilesRepository{
		executor: executor,
	}
}

func (pr *ProfilesRepository) EnsureProfileCreated(ctx context.Context, userID uuid.UUID, startCash int64) error {
	sql := `INSERT INTO user_profiles (id, cash) VALUES ($1, $2) ON CONFLICT (id) DO NOTHING`

	_, err := pr.executor.Exec(ctx, sql, userID, startCash)
	return err
}

func (pr *ProfilesRepository) LockAndGetUserCash(ctx context.Context, querier database.Querier, userID uuid.UUID) (int64, error) {
	lockProfileSQL := `SELECT cash FROM user_profiles WHERE id = $1 FOR UPDATE`

	var cash int64
	err := querier.QueryRow(ctx, lockProfileSQL, userID).Scan(&cash)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, &domain.UserNotFoundError{Msg: fmt.Sprintf("user %s not found", userID)}
		}

		return 0, fmt.Errorf("failed to lock profile row: %w", err)
	}

	return cash, nil
}

func (pr *ProfilesRepository) GetUserCash(ctx context.Context, userID uuid.UUID) (int64, error) {
	sql := `SELECT cash FROM user_profiles WHERE id = $1`

	var cash int64
	err := pr.executor.QueryRow(ctx, sql, userID).Scan(&cash)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, &domain.UserNotFoundError{Msg: fmt.Sprintf("user %s not found", userID)}
		}

		return 0, fmt.Errorf("failed to read user cash: %w", err)
	}

	return cash, nil
}
