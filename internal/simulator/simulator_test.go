package simulator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dharmasatrya/travelsim/internal/latency"
	"github.com/dharmasatrya/travelsim/internal/models"
	"github.com/dharmasatrya/travelsim/internal/random"
)

func testOptions(seed int64) Options {
	return Options{
		Random:        random.New(seed),
		SearchLatency: latency.Disabled(),
		VerifyLatency: latency.Disabled(),
	}
}

func ptr[T any](v T) *T { return &v }

func TestUniqueID(t *testing.T) {
	used := map[string]struct{}{}

	id, err := uniqueID(used, func() string { return "AA1000" })
	require.NoError(t, err)
	assert.Equal(t, "AA1000", id)

	_, err = uniqueID(used, func() string { return "AA1000" })
	assert.ErrorIs(t, err, ErrIDSpaceExhausted)

	calls := 0
	id, err = uniqueID(used, func() string {
		calls++
		if calls < 3 {
			return "AA1000"
		}
		return "AA1001"
	})
	require.NoError(t, err)
	assert.Equal(t, "AA1001", id)
	assert.Equal(t, 3, calls)
}

func TestRunVerify_Branches(t *testing.T) {
	src := random.New(11)
	counts := map[string]int{}

	for i := 0; i < 2000; i++ {
		v, err := runVerify(context.Background(), src, latency.Disabled(), flightVerifyPolicy, "AA1234-2024-11-09", 100)
		require.NoError(t, err)
		assert.Equal(t, "AA1234-2024-11-09", v.OfferID)

		switch {
		case !v.Available:
			counts["unavailable"]++
			assert.Equal(t, "Flight no longer available", v.Reason)
			assert.False(t, v.PriceChanged)
			assert.Nil(t, v.NewPrice)
			assert.Nil(t, v.Price)
		case v.PriceChanged:
			counts["changed"]++
			require.NotNil(t, v.NewPrice)
			require.NotNil(t, v.OriginalPrice)
			assert.Equal(t, 100.0, *v.OriginalPrice)
			assert.GreaterOrEqual(t, *v.NewPrice, 80.0)
			assert.LessOrEqual(t, *v.NewPrice, 130.0)
			assert.Nil(t, v.Price)
			assert.Empty(t, v.Reason)
		default:
			counts["unchanged"]++
			require.NotNil(t, v.Price)
			assert.Equal(t, 100.0, *v.Price)
			assert.Nil(t, v.NewPrice)
		}
	}

	assert.InDelta(t, 400, counts["unavailable"], 100)
	assert.InDelta(t, 320, counts["changed"], 100)
	assert.InDelta(t, 1280, counts["unchanged"], 150)
}

func TestRunVerify_InvalidInput(t *testing.T) {
	_, err := runVerify(context.Background(), random.New(1), latency.Disabled(), hotelVerifyPolicy, "", 10)
	assert.ErrorIs(t, err, models.ErrInvalidRequest)

	_, err = runVerify(context.Background(), random.New(1), latency.Disabled(), hotelVerifyPolicy, "HIL1234", 0)
	assert.ErrorIs(t, err, models.ErrInvalidExpectedPrice)
}
