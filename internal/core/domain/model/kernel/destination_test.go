package kernel_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDestination(t *testing.T) {
	t.Run("valid destination", func(t *testing.T) {
		dest, err := kernel.NewDestination("72 Le Thanh Ton", 1442, "20308", 202)

		require.NoError(t, err)
		require.NoError(t, dest.Validate())
		assert.Equal(t, "72 Le Thanh Ton", dest.Address())
		assert.Equal(t, 1442, dest.DistrictID())
		assert.Equal(t, "20308", dest.WardCode())
		assert.Equal(t, 202, dest.ProvinceID())
	})

	t.Run("validation failures", func(t *testing.T) {
		testCases := []struct {
			name       string
			address    string
			districtID int
			wardCode   string
			provinceID int
			wantErr    error
		}{
			{"empty address", "", 1442, "20308", 202, errs.ErrValueIsRequired},
			{"zero district", "72 Le Thanh Ton", 0, "20308", 202, errs.ErrValueIsInvalid},
			{"negative district", "72 Le Thanh Ton", -5, "20308", 202, errs.ErrValueIsInvalid},
			{"empty ward code", "72 Le Thanh Ton", 1442, "", 202, errs.ErrValueIsRequired},
			{"zero province", "72 Le Thanh Ton", 1442, "20308", 0, errs.ErrValueIsInvalid},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := kernel.NewDestination(tc.address, tc.districtID, tc.wardCode, tc.provinceID)
				require.ErrorIs(t, err, tc.wantErr)
			})
		}
	})
}

func TestDestination_Validate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var dest kernel.Destination
		require.ErrorIs(t, dest.Validate(), errs.ErrValueIsRequired)
	})
}

func TestDestination_IsEqual(t *testing.T) {
	a, err := kernel.NewDestination("72 Le Thanh Ton", 1442, "20308", 202)
	require.NoError(t, err)
	b, err := kernel.NewDestination("72 Le Thanh Ton", 1442, "20308", 202)
	require.NoError(t, err)
	c, err := kernel.NewDestination("72 Le Thanh Ton", 1442, "20309", 202)
	require.NoError(t, err)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}
