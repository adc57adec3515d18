package discount_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/discount"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func save10(t *testing.T) *discount.Discount {
	t.Helper()
	// SAVE10: 10%, cap 5000, min order 30000
	d, err := discount.NewDiscount(
		kernel.NewUUID(), "save10", 10, 5000, 30000, 100,
		time.Now().Add(-24*time.Hour), time.Now().Add(24*time.Hour),
	)
	require.NoError(t, err)
	return d
}

func TestNormalizeCode(t *testing.T) {
	assert.Equal(t, "SAVE10", discount.NormalizeCode(" save10 "))
	assert.Equal(t, "TET2026", discount.NormalizeCode("tet2026"))
}

func TestNewDiscount(t *testing.T) {
	t.Run("code is normalized", func(t *testing.T) {
		d := save10(t)
		assert.Equal(t, "SAVE10", d.Code())
		assert.True(t, d.IsActive())
		assert.Zero(t, d.UsedCount())
	})

	t.Run("validation failures", func(t *testing.T) {
		id := kernel.NewUUID()
		window := func() (time.Time, time.Time) {
			return time.Now().Add(-time.Hour), time.Now().Add(time.Hour)
		}
		start, end := window()

		_, err := discount.NewDiscount(id, "", 10, 0, 0, 0, start, end)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = discount.NewDiscount(id, "X", 0, 0, 0, 0, start, end)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

		_, err = discount.NewDiscount(id, "X", 101, 0, 0, 0, start, end)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

		_, err = discount.NewDiscount(id, "X", 10, 0, 0, 0, end, start)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestDiscount_Eligibility(t *testing.T) {
	now := time.Now()

	t.Run("eligible", func(t *testing.T) {
		require.NoError(t, save10(t).Eligibility(65000, now))
	})

	t.Run("inactive code", func(t *testing.T) {
		d, err := discount.RestoreDiscount(
			kernel.NewUUID(), "SAVE10", 10, 5000, 30000, 100, 0,
			now.Add(-time.Hour), now.Add(time.Hour), false,
		)
		require.NoError(t, err)
		require.ErrorIs(t, d.Eligibility(65000, now), discount.ErrInactive)
	})

	t.Run("outside validity window", func(t *testing.T) {
		d, err := discount.NewDiscount(
			kernel.NewUUID(), "EXPIRED", 10, 0, 0, 0,
			now.Add(-48*time.Hour), now.Add(-24*time.Hour),
		)
		require.NoError(t, err)
		require.ErrorIs(t, d.Eligibility(65000, now), discount.ErrOutsideWindow)
	})

	t.Run("usage exhausted", func(t *testing.T) {
		d, err := discount.RestoreDiscount(
			kernel.NewUUID(), "SAVE10", 10, 5000, 30000, 100, 100,
			now.Add(-time.Hour), now.Add(time.Hour), true,
		)
		require.NoError(t, err)
		require.ErrorIs(t, d.Eligibility(65000, now), discount.ErrUsageExhausted)
	})

	t.Run("below minimum order", func(t *testing.T) {
		require.ErrorIs(t, save10(t).Eligibility(29999, now), discount.ErrBelowMinimum)
	})

	t.Run("unlimited usage ignores used count", func(t *testing.T) {
		d, err := discount.RestoreDiscount(
			kernel.NewUUID(), "FREEBIE", 5, 0, 0, 0, 9999,
			now.Add(-time.Hour), now.Add(time.Hour), true,
		)
		require.NoError(t, err)
		require.NoError(t, d.Eligibility(1000, now))
	})

	t.Run("repeated calls never mutate state", func(t *testing.T) {
		d := save10(t)
		for range 5 {
			_ = d.Eligibility(65000, now)
		}
		assert.Zero(t, d.UsedCount())
	})
}

func TestDiscount_AmountFor(t *testing.T) {
	t.Run("raw percentage below cap", func(t *testing.T) {
		// 10% of 40000 = 4000 < cap 5000
		assert.Equal(t, int64(4000), save10(t).AmountFor(40000))
	})

	t.Run("capped amount", func(t *testing.T) {
		// 10% of 65000 = 6500, capped at 5000
		assert.Equal(t, int64(5000), save10(t).AmountFor(65000))
	})

	t.Run("uncapped uses raw percentage", func(t *testing.T) {
		d, err := discount.NewDiscount(
			kernel.NewUUID(), "RAW", 10, 0, 0, 0,
			time.Now().Add(-time.Hour), time.Now().Add(time.Hour),
		)
		require.NoError(t, err)
		assert.Equal(t, int64(6500), d.AmountFor(65000))
	})
}
