package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	httpmocks "github.com/ByeoliKim/star-shop/gen/mocks/http"
	"github.com/ByeoliKim/star-shop/internal/pkg/logging"
	"github.com/ByeoliKim/star-shop/internal/pkg/metrics"
	"github.com/ByeoliKim/star-shop/internal/store/domain"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T, userID uuid.UUID, handler *StoreHandler) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	identity := func(c *gin.Context) {
		c.Set(userIDContextKey, userID)
		c.Next()
	}

	return NewRouter(handler, identity, handler.metrics)
}

func newTestHandler(
	purchases PurchaseService,
	states UserStateService,
	catalog CatalogService,
) *StoreHandler {
	storeMetrics := metrics.NewStoreMetrics(prometheus.NewRegistry())
	return NewStoreHandler(purchases, states, catalog, storeMetrics, logging.NopLogger)
}

func TestStoreHandler_Checkout(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	idA := uuid.New()
	idB := uuid.New()

	type mocks struct {
		purchases *httpmocks.MockPurchaseService
	}

	type testCase struct {
		name string
		body string

		prepareFn func(t *testing.T, m *mocks)

		expectedStatus int
		expectedReason string
	}

	tests := []testCase{
		{
			name: "successful checkout",
			body: fmt.Sprintf(`{"productIds": ["%s", "%s"]}`, idA, idB),
			prepareFn: func(t *testing.T, m *mocks) {
				m.purchases.EXPECT().
					Checkout(gomock.Any(), domain.PurchaseRequest{UserID: userID, ProductIDs: []uuid.UUID{idA, idB}}).
					Return(domain.PurchaseResult{NewCash: 500, PurchasedProductIDs: []uuid.UUID{idA, idB}}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "duplicate ids are normalized before the service call",
			body: fmt.Sprintf(`{"productIds": ["%s", "%s", "%s"]}`, idA, idB, idA),
			prepareFn: func(t *testing.T, m *mocks) {
				m.purchases.EXPECT().
					Checkout(gomock.Any(), domain.PurchaseRequest{UserID: userID, ProductIDs: []uuid.UUID{idA, idB}}).
					Return(domain.PurchaseResult{NewCash: 500, PurchasedProductIDs: []uuid.UUID{idA, idB}}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "malformed json",
			body:           `{"productIds": `,
			prepareFn:      func(t *testing.T, m *mocks) {},
			expectedStatus: http.StatusBadRequest,
			expectedReason: ReasonInvalidRequest,
		},
		{
			name:           "empty product list",
			body:           `{"productIds": []}`,
			prepareFn:      func(t *testing.T, m *mocks) {},
			expectedStatus: http.StatusBadRequest,
			expectedReason: ReasonInvalidRequest,
		},
		{
			name:           "non uuid product id",
			body:           `{"productIds": ["plush-poro"]}`,
			prepareFn:      func(t *testing.T, m *mocks) {},
			expectedStatus: http.StatusBadRequest,
			expectedReason: ReasonInvalidRequest,
		},
		{
			name: "unknown item",
			body: fmt.Sprintf(`{"productIds": ["%s"]}`, idA),
			prepareFn: func(t *testing.T, m *mocks) {
				m.purchases.EXPECT().Checkout(gomock.Any(), gomock.Any()).
					Return(domain.PurchaseResult{}, &domain.ProductNotFoundError{Msg: "not found", ProductIDs: []uuid.UUID{idA}})
			},
			expectedStatus: http.StatusBadRequest,
			expectedReason: ReasonUnknownItem,
		},
		{
			name: "already owned",
			body: fmt.Sprintf(`{"productIds": ["%s"]}`, idA),
			prepareFn: func(t *testing.T, m *mocks) {
				m.purchases.EXPECT().Checkout(gomock.Any(), gomock.Any()).
					Return(domain.PurchaseResult{}, &domain.AlreadyOwnedError{Msg: "owned", ProductIDs: []uuid.UUID{idA}})
			},
			expectedStatus: http.StatusConflict,
			expectedReason: ReasonAlreadyOwned,
		},
		{
			name: "insufficient funds",
			body: fmt.Sprintf(`{"productIds": ["%s"]}`, idA),
			prepareFn: func(t *testing.T, m *mocks) {
				m.purchases.EXPECT().Checkout(gomock.Any(), gomock.Any()).
					Return(domain.PurchaseResult{}, &domain.InsufficientBalanceError{Msg: "insufficient cash"})
			},
			expectedStatus: http.StatusBadRequest,
			expectedReason: ReasonInsufficientFunds,
		},
		{
			name: "conflict",
			body: fmt.Sprintf(`{"productIds": ["%s"]}`, idA),
			prepareFn: func(t *testing.T, m *mocks) {
				m.purchases.EXPECT().Checkout(gomock.Any(), gomock.Any()).
					Return(domain.PurchaseResult{}, &domain.PurchaseConflictError{Msg: "conflict"})
			},
			expectedStatus: http.StatusConflict,
			expectedReason: ReasonConflictRetry,
		},
		{
			name: "unexpected error",
			body: fmt.Sprintf(`{"productIds": ["%s"]}`, idA),
			prepareFn: func(t *testing.T, m *mocks) {
				m.purchases.EXPECT().Checkout(gomock.Any(), gomock.Any()).
					Return(domain.PurchaseResult{}, assert.AnError)
			},
			expectedStatus: http.StatusInternalServerError,
			expectedReason: ReasonInternalError,
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := &mocks{purchases: httpmocks.NewMockPurchaseService(ctrl)}
			tt.prepareFn(t, m)

			handler := newTestHandler(
				m.purchases,
				httpmocks.NewMockUserStateService(ctrl),
				httpmocks.NewMockCatalogService(ctrl),
			)
			router := newTestRouter(t, userID, handler)

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/checkout", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)

			var response map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))

			if tt.expectedReason != "" {
				assert.Equal(t, false, response["ok"])
				assert.Equal(t, tt.expectedReason, response["reason"])
			} else {
				assert.Equal(t, true, response["ok"])
				assert.Equal(t, float64(500), response["newBalance"])
				assert.Len(t, response["purchasedItemIds"], 2)
			}
		})
	}
}

func TestStoreHandler_Checkout_ReportsOwnedDetails(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	ownedID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	purchases := httpmocks.NewMockPurchaseService(ctrl)
	purchases.EXPECT().Checkout(gomock.Any(), gomock.Any()).
		Return(domain.PurchaseResult{}, &domain.AlreadyOwnedError{Msg: "owned", ProductIDs: []uuid.UUID{ownedID}})

	handler := newTestHandler(purchases, httpmocks.NewMockUserStateService(ctrl), httpmocks.NewMockCatalogService(ctrl))
	router := newTestRouter(t, userID, handler)

	rec := httptest.NewRecorder()
	body := fmt.Sprintf(`{"productIds": ["%s"]}`, ownedID)
	req := httptest.NewRequest(http.MethodPost, "/api/checkout", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusConflict, rec.Code)

	var response struct {
		Details struct {
			OwnedProductIDs []uuid.UUID `json:"ownedProductIds"`
		} `json:"details"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, []uuid.UUID{ownedID}, response.Details.OwnedProductIDs)
}

func TestStoreHandler_GetUserState(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	ownedID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	states := httpmocks.NewMockUserStateService(ctrl)
	states.EXPECT().GetUserState(gomock.Any(), userID).
		Return(domain.UserState{Cash: 8200, OwnedIDs: []uuid.UUID{ownedID}}, nil)

	handler := newTestHandler(httpmocks.NewMockPurchaseService(ctrl), states, httpmocks.NewMockCatalogService(ctrl))
	router := newTestRouter(t, userID, handler)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/me/state", nil)
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var response map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, true, response["ok"])
	assert.Equal(t, float64(8200), response["cash"])
	assert.Len(t, response["ownedIds"], 1)
}

func TestStoreHandler_ListProducts(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	catalog := httpmocks.NewMockCatalogService(ctrl)
	catalog.EXPECT().ListProducts(gomock.Any(), 2, 5).
		Return(domain.CatalogPage{
			Items:   []domain.Product{{ID: uuid.New(), Name: "poro-icon", OriginalPrice: 250, SalePrice: 250}},
			Page:    2,
			Limit:   5,
			HasNext: false,
		}, nil)

	handler := newTestHandler(httpmocks.NewMockPurchaseService(ctrl), httpmocks.NewMockUserStateService(ctrl), catalog)
	router := newTestRouter(t, uuid.New(), handler)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/products?page=2&limit=5", nil)
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var response map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, true, response["ok"])
	assert.Equal(t, float64(2), response["page"])
	assert.Equal(t, false, response["hasNext"])
	assert.Len(t, response["items"], 1)
}
