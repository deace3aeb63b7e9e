package application

import (
	"context"

	"github.com/ByeoliKim/star-shop/internal/store/domain"
	"github.com/google/uuid"
)

// UserStateCase reads the display view of a user: current cash and owned
// products. Profiles are created lazily on first access, funded with the
// starting grant.
type UserStateCase struct {
	profiles  domain.ProfilesRepository
	ownership domain.OwnershipRepository
}

func NewUserStateCase(profiles domain.ProfilesRepository, ownership domain.OwnershipRepository) *UserStateCase {
	return &UserStateCase{
		profiles:  profiles,
		ownership: ownership,
	}
}

func (uc *UserStateCase) GetUserState(ctx context.Context, userID uuid.UUID) (domain.UserState, error) {
	err := uc.profiles.EnsureProfileCreated(ctx, userID, domain.StartCash)
	if err != nil {
		return domain.UserState{}, err
	}

	cash, err := uc.profiles.GetUserCash(ctx, userID)
	if err != nil {
		return domain.UserState{}, err
	}

	owned, err := uc.ownership.GetOwnedProductIDs(ctx, userID)
	if err != nil {
		return domain.UserState{}, err
	}

	return domain.UserState{
		Cash:     cash,
		OwnedIDs: owned,
	}, nil
}
