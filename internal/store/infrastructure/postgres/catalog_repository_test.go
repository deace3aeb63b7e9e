package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/ByeoliKim/star-shop/internal/store/domain"
	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogRepository_GetProducts(t *testing.T) {
	t.Parallel()

	idA := uuid.New()
	idB := uuid.New()

	t.Run("all products resolve in request order", func(t *testing.T) {
		t.Parallel()

		mock, err := pgxmock.NewConn()
		require.NoError(t, err)
		defer mock.Close(context.Background())

		// database returns rows in arbitrary order
		rows := pgxmock.NewRows([]string{"id", "name", "original_price", "discount_rate"}).
			AddRow(idB, "star-guardian-skin", int64(1350), 20).
			AddRow(idA, "poro-icon", int64(250), 0)
		mock.ExpectQuery("SELECT").
			WithArgs([]uuid.UUID{idA, idB}).
			WillReturnRows(rows)

		repo := NewCatalogRepository(mock)
		products, err := repo.GetProducts(context.Background(), []uuid.UUID{idA, idB})
		require.NoError(t, err)

		require.Len(t, products, 2)
		assert.Equal(t, idA, products[0].ID)
		assert.Equal(t, int64(250), products[0].SalePrice())
		assert.Equal(t, idB, products[1].ID)
		assert.Equal(t, int64(1080), products[1].SalePrice())

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing ids are reported", func(t *testing.T) {
		t.Parallel()

		mock, err := pgxmock.NewConn()
		require.NoError(t, err)
		defer mock.Close(context.Background())

		rows := pgxmock.NewRows([]string{"id", "name", "original_price", "discount_rate"}).
			AddRow(idA, "poro-icon", int64(250), 0)
		mock.ExpectQuery("SELECT").
			WithArgs([]uuid.UUID{idA, idB}).
			WillReturnRows(rows)

		repo := NewCatalogRepository(mock)
		_, err = repo.GetProducts(context.Background(), []uuid.UUID{idA, idB})

		var notFound *domain.ProductNotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, []uuid.UUID{idB}, notFound.ProductIDs)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("query error", func(t *testing.T) {
		t.Parallel()

		mock, err := pgxmock.NewConn()
		require.NoError(t, err)
		defer mock.Close(context.Background())

		mock.ExpectQuery("SELECT").
			WithArgs([]uuid.UUID{idA}).
			WillReturnError(assert.AnError)

		repo := NewCatalogRepository(mock)
		_, err = repo.GetProducts(context.Background(), []uuid.UUID{idA})
		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestCatalogRepository_ListProducts(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewConn()
	require.NoError(t, err)
	defer mock.Close(context.Background())

	id := uuid.New()
	createdAt := time.Now()

	rows := pgxmock.NewRows([]string{"id", "category", "name", "description", "image_path", "original_price", "discount_rate", "created_at"}).
		AddRow(id, "skin", "star-guardian-skin", "limited skin", "/images/sg.png", int64(1350), 20, createdAt)
	mock.ExpectQuery("SELECT").
		WithArgs(10, 10).
		WillReturnRows(rows)

	repo := NewCatalogRepository(mock)
	products, err := repo.ListProducts(context.Background(), 2, 10)
	require.NoError(t, err)

	require.Len(t, products, 1)
	assert.Equal(t, id, products[0].ID)
	assert.Equal(t, "skin", products[0].Category)
	assert.Equal(t, int64(1080), products[0].SalePrice)
	assert.Equal(t, createdAt, products[0].CreatedAt)

	assert.NoError(t, mock.ExpectationsWereMet())
}
