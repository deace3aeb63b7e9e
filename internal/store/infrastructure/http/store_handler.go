package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/ByeoliKim/star-shop/internal/pkg/logging"
	"github.com/ByeoliKim/star-shop/internal/pkg/metrics"
	"github.com/ByeoliKim/star-shop/internal/store/domain"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Failure reasons returned to clients. Every known failure maps to exactly
// one of these; "internal_error" is reserved for the unexpected.
const (
	ReasonInvalidRequest    = "invalid_request"
	ReasonUnknownItem       = "unknown_item"
	ReasonAlreadyOwned      = "already_owned"
	ReasonInsufficientFunds = "insufficient_funds"
	ReasonConflictRetry     = "conflict_retry"
	ReasonInternalError     = "internal_error"
)

type PurchaseService interface {
	Checkout(ctx context.Context, req domain.PurchaseRequest) (domain.PurchaseResult, error)
}

type UserStateService interface {
	GetUserState(ctx context.Context, userID uuid.UUID) (domain.UserState, error)
}

type CatalogService interface {
	ListProducts(ctx context.Context, page, limit int) (domain.CatalogPage, error)
}

type checkoutRequestBody struct {
	ProductIDs []string `json:"productIds"`
}

type StoreHandler struct {
	purchases PurchaseService
	states    UserStateService
	catalog   CatalogService
	metrics   *metrics.StoreMetrics
	logger    logging.Logger
}

func NewStoreHandler(
	purchases PurchaseService,
	states UserStateService,
	catalog CatalogService,
	storeMetrics *metrics.StoreMetrics,
	logger logging.Logger,
) *StoreHandler {
	return &StoreHandler{
		purchases: purchases,
		states:    states,
		catalog:   catalog,
		metrics:   storeMetrics,
		logger:    logger,
	}
}

func (h *StoreHandler) Checkout(c *gin.Context) {
	userID, ok := UserIDFromContext(c)
	if !ok {
		h.failCheckout(c, http.StatusInternalServerError, ReasonInternalError, "user id not found in context", nil)
		return
	}

	var body checkoutRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		h.failCheckout(c, http.StatusBadRequest, ReasonInvalidRequest, "invalid request body", nil)
		return
	}

	req, err := domain.NormalizePurchaseRequest(userID, body.ProductIDs)
	if err != nil {
		h.failCheckout(c, http.StatusBadRequest, ReasonInvalidRequest, err.Error(), nil)
		return
	}

	result, err := h.purchases.Checkout(c.Request.Context(), req)
	if err != nil {
		h.handleCheckoutError(c, err)
		return
	}

	h.metrics.Checkouts.WithLabelValues("ok").Inc()

	c.JSON(http.StatusOK, gin.H{
		"ok":               true,
		"newBalance":       result.NewCash,
		"purchasedItemIds": result.PurchasedProductIDs,
	})
}

func (h *StoreHandler) GetUserState(c *gin.Context) {
	userID, ok := UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "reason": ReasonInternalError, "message": "user id not found in context"})
		return
	}

	state, err := h.states.GetUserState(c.Request.Context(), userID)
	if err != nil {
		h.logger.Error("failed to load user state", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "reason": ReasonInternalError, "message": "internal error"})
		return
	}

	ownedIDs := state.OwnedIDs
	if ownedIDs == nil {
		ownedIDs = []uuid.UUID{}
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":       true,
		"cash":     state.Cash,
		"ownedIds": ownedIDs,
	})
}

func (h *StoreHandler) ListProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	catalogPage, err := h.catalog.ListProducts(c.Request.Context(), page, limit)
	if err != nil {
		h.logger.Error("failed to list products", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "reason": ReasonInternalError, "message": "internal error"})
		return
	}

	items := catalogPage.Items
	if items == nil {
		items = []domain.Product{}
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":      true,
		"page":    catalogPage.Page,
		"limit":   catalogPage.Limit,
		"items":   items,
		"hasNext": catalogPage.HasNext,
	})
}

func (h *StoreHandler) handleCheckoutError(c *gin.Context, err error) {
	var notFound *domain.ProductNotFoundError
	if errors.As(err, &notFound) {
		h.failCheckout(c, http.StatusBadRequest, ReasonUnknownItem, "some requested products do not exist",
			gin.H{"unknownProductIds": notFound.ProductIDs})
		return
	}

	var alreadyOwned *domain.AlreadyOwnedError
	if errors.As(err, &alreadyOwned) {
		h.failCheckout(c, http.StatusConflict, ReasonAlreadyOwned, "some requested products are already owned",
			gin.H{"ownedProductIds": alreadyOwned.ProductIDs})
		return
	}

	switch {
	case errors.Is(err, &domain.InvalidArgumentsError{}):
		h.failCheckout(c, http.StatusBadRequest, ReasonInvalidRequest, err.Error(), nil)
	case errors.Is(err, &domain.InsufficientBalanceError{}):
		h.failCheckout(c, http.StatusBadRequest, ReasonInsufficientFunds, "not enough cash for this purchase", nil)
	case errors.Is(err, &domain.PurchaseConflictError{}):
		h.failCheckout(c, http.StatusConflict, ReasonConflictRetry, "purchase lost a race, safe to retry", nil)
	default:
		h.logger.Error("checkout failed", "error", err.Error())
		h.failCheckout(c, http.StatusInternalServerError, ReasonInternalError, "internal error", nil)
	}
}

func (h *StoreHandler) failCheckout(c *gin.Context, status int, reason, message string, details gin.H) {
	h.metrics.Checkouts.WithLabelValues(reason).Inc()

	body := gin.H{
		"ok":      false,
		"reason":  reason,
		"message": message,
	}
	if details != nil {
		body["details"] = details
	}

	c.JSON(status, body)
}
