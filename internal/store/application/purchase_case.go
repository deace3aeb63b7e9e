package application

import (
	"context"

	"github.com/ByeoliKim/star-shop/internal/pkg/database"
	"github.com/ByeoliKim/star-shop/internal/pkg/logging"
	"github.com/ByeoliKim/star-shop/internal/store/domain"
)

// PurchaseCase runs one checkout end to end: price resolution, ownership and
// affordability checks, then the atomic debit-and-grant commit.
type PurchaseCase struct {
	catalog   domain.CatalogRepository
	profiles  domain.ProfilesRepository
	ownership domain.OwnershipRepository
	purchaser domain.Purchaser
	txManager database.TxManager
	logger    logging.Logger
}

func NewPurchaseCase(
	catalog domain.CatalogRepository,
	profiles domain.ProfilesRepository,
	ownership domain.OwnershipRepository,
	purchaser domain.Purchaser,
	txManager database.TxManager,
	logger logging.Logger,
) *PurchaseCase {
	return &PurchaseCase{
		catalog:   catalog,
		profiles:  profiles,
		ownership: ownership,
		purchaser: purchaser,
		txManager: txManager,
		logger:    logger,
	}
}

// Checkout purchases every product in the normalized request, or nothing.
//
// Prices are always resolved server-side from the catalog; a client-submitted
// total is never trusted. The FOR UPDATE lock on the profile row serializes
// same-user checkouts for the whole check-then-commit sequence, so the owned
// check, the affordability check and the commit all observe the same state.
// Requests from different users lock different rows and do not contend.
func (pc *PurchaseCase) Checkout(ctx context.Context, req domain.PurchaseRequest) (domain.PurchaseResult, error) {
	products, err := pc.catalog.GetProducts(ctx, req.ProductIDs)
	if err != nil {
		return domain.PurchaseResult{}, err
	}

	var total int64
	for _, product := range products {
		total += product.SalePrice()
	}

	err = pc.profiles.EnsureProfileCreated(ctx, req.UserID, domain.StartCash)
	if err != nil {
		return domain.PurchaseResult{}, err
	}

	var newCash int64
	err = pc.txManager.WithinTransaction(ctx, func(ctx context.Context, executor database.QueryExecuter) error {
		cash, err := pc.profiles.LockAndGetUserCash(ctx, executor, req.UserID)
		if err != nil {
			return err
		}

		owned, err := pc.ownership.GetOwnedAmong(ctx, executor, req.UserID, req.ProductIDs)
		if err != nil {
			return err
		}

		if len(owned) > 0 {
			return &domain.AlreadyOwnedError{
				Msg:        "request contains already owned products",
				ProductIDs: owned,
			}
		}

		if cash < total {
			return &domain.InsufficientBalanceError{Msg: "insufficient cash"}
		}

		err = pc.purchaser.ProcessPurchase(ctx, executor, req.UserID, total, req.ProductIDs)
		if err != nil {
			return err
		}

		newCash = cash - total
		return nil
	})
	if err != nil {
		return domain.PurchaseResult{}, err
	}

	pc.logger.Info("checkout committed",
		"userId", req.UserID.String(), "products", len(req.ProductIDs), "total", total)

	return domain.PurchaseResult{
		NewCash:             newCash,
		PurchasedProductIDs: req.ProductIDs,
	}, nil
}
