package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePurchaseRequest(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	idA := uuid.New()
	idB := uuid.New()

	type testCase struct {
		name          string
		userID        uuid.UUID
		rawProductIDs []string

		expectedIDs []uuid.UUID
		expectedErr error
	}

	tests := []testCase{
		{
			name:          "valid request",
			userID:        userID,
			rawProductIDs: []string{idA.String(), idB.String()},
			expectedIDs:   []uuid.UUID{idA, idB},
		},
		{
			name:          "duplicates collapse to first occurrence",
			userID:        userID,
			rawProductIDs: []string{idA.String(), idB.String(), idA.String()},
			expectedIDs:   []uuid.UUID{idA, idB},
		},
		{
			name:          "empty list",
			userID:        userID,
			rawProductIDs: nil,
			expectedErr:   &InvalidArgumentsError{},
		},
		{
			name:          "non uuid value",
			userID:        userID,
			rawProductIDs: []string{idA.String(), "plush-poro"},
			expectedErr:   &InvalidArgumentsError{},
		},
		{
			name:          "missing user id",
			userID:        uuid.Nil,
			rawProductIDs: []string{idA.String()},
			expectedErr:   &InvalidArgumentsError{},
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req, err := NormalizePurchaseRequest(tt.userID, tt.rawProductIDs)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.userID, req.UserID)
			assert.Equal(t, tt.expectedIDs, req.ProductIDs)
		})
	}
}
