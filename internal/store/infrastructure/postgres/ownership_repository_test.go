package postgres

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOwnershipRepository_GetOwnedAmong(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	idA := uuid.New()
	idB := uuid.New()

	t.Run("returns owned subset", func(t *testing.T) {
		t.Parallel()

		mock, err := pgxmock.NewConn()
		require.NoError(t, err)
		defer mock.Close(context.Background())

		rows := pgxmock.NewRows([]string{"product_id"}).AddRow(idB)
		mock.ExpectQuery("SELECT").
			WithArgs(userID, []uuid.UUID{idA, idB}).
			WillReturnRows(rows)

		repo := NewOwnershipRepository(mock)
		owned, err := repo.GetOwnedAmong(context.Background(), mock, userID, []uuid.UUID{idA, idB})
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{idB}, owned)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("nothing owned", func(t *testing.T) {
		t.Parallel()

		mock, err := pgxmock.NewConn()
		require.NoError(t, err)
		defer mock.Close(context.Background())

		mock.ExpectQuery("SELECT").
			WithArgs(userID, []uuid.UUID{idA}).
			WillReturnRows(pgxmock.NewRows([]string{"product_id"}))

		repo := NewOwnershipRepository(mock)
		owned, err := repo.GetOwnedAmong(context.Background(), mock, userID, []uuid.UUID{idA})
		require.NoError(t, err)
		assert.Empty(t, owned)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestOwnershipRepository_GetOwnedProductIDs(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	idA := uuid.New()
	idB := uuid.New()

	mock, err := pgxmock.NewConn()
	require.NoError(t, err)
	defer mock.Close(context.Background())

	rows := pgxmock.NewRows([]string{"product_id"}).
		AddRow(idA).
		AddRow(idB)
	mock.ExpectQuery("SELECT").
		WithArgs(userID).
		WillReturnRows(rows)

	repo := NewOwnershipRepository(mock)
	owned, err := repo.GetOwnedProductIDs(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{idA, idB}, owned)

	assert.NoError(t, mock.ExpectationsWereMet())
}
