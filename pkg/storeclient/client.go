// Package storeclient is a small HTTP client for the star-shop store API.
// It keeps a local Mirror of the user's balance and inventory that is
// reconciled exclusively from server responses.
package storeclient

import (
	"context"
	"fmt"
	"strconv"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

type CheckoutResult struct {
	Ok               bool        `json:"ok"`
	NewBalance       int64       `json:"newBalance"`
	PurchasedItemIDs []uuid.UUID `json:"purchasedItemIds"`
	Reason           string      `json:"reason"`
	Message          string      `json:"message"`
}

type UserState struct {
	Ok       bool        `json:"ok"`
	Cash     int64       `json:"cash"`
	OwnedIDs []uuid.UUID `json:"ownedIds"`
}

type CatalogItem struct {
	ID            uuid.UUID `json:"id"`
	Category      string    `json:"category"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	ImagePath     string    `json:"imagePath"`
	OriginalPrice int64     `json:"originalPrice"`
	DiscountRate  int       `json:"discountRate"`
	SalePrice     int64     `json:"salePrice"`
}

type CatalogPage struct {
	Ok      bool          `json:"ok"`
	Page    int           `json:"page"`
	Limit   int           `json:"limit"`
	Items   []CatalogItem `json:"items"`
	HasNext bool          `json:"hasNext"`
}

type Client struct {
	http   *resty.Client
	mirror *Mirror
}

// New creates a client bound to one user's bearer token.
func New(baseURL, token string) *Client {
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetAuthToken(token)

	return &Client{
		http:   httpClient,
		mirror: NewMirror(),
	}
}

func (c *Client) Mirror() *Mirror {
	return c.mirror
}

// Checkout attempts to purchase the given products. A failed checkout is not
// an error at this level: the server's verdict comes back in the result, and
// the mirror is only advanced when the purchase actually committed.
func (c *Client) Checkout(ctx context.Context, productIDs []uuid.UUID) (CheckoutResult, error) {
	ids := make([]string, 0, len(productIDs))
	for _, id := range productIDs {
		ids = append(ids, id.String())
	}

	var result CheckoutResult
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]any{"productIds": ids}).
		SetResult(&result).
		SetError(&result).
		Post("/api/checkout")
	if err != nil {
		return CheckoutResult{}, fmt.Errorf("checkout request failed: %w", err)
	}

	if result.Ok {
		c.mirror.ApplyPurchase(result.NewBalance, result.PurchasedItemIDs)
	} else if result.Reason == "" {
		return CheckoutResult{}, fmt.Errorf("unexpected checkout response: status %d", resp.StatusCode())
	}

	return result, nil
}

// LoadState fetches the authoritative balance and inventory and reconciles
// the mirror with it.
func (c *Client) LoadState(ctx context.Context) (UserState, error) {
	var state UserState
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&state).
		Get("/api/me/state")
	if err != nil {
		return UserState{}, fmt.Errorf("state request failed: %w", err)
	}
	if !resp.IsSuccess() || !state.Ok {
		return UserState{}, fmt.Errorf("unexpected state response: status %d", resp.StatusCode())
	}

	c.mirror.Reconcile(state.Cash, state.OwnedIDs)

	return state, nil
}

// ListProducts fetches one catalog page.
func (c *Client) ListProducts(ctx context.Context, page, limit int) (CatalogPage, error) {
	var catalogPage CatalogPage
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("page", strconv.Itoa(page)).
		SetQueryParam("limit", strconv.Itoa(limit)).
		SetResult(&catalogPage).
		Get("/api/products")
	if err != nil {
		return CatalogPage{}, fmt.Errorf("products request failed: %w", err)
	}
	if !resp.IsSuccess() || !catalogPage.Ok {
		return CatalogPage{}, fmt.Errorf("unexpected products response: status %d", resp.StatusCode())
	}

	return catalogPage, nil
}
