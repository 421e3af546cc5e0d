package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoomTotal(t *testing.T) {
	assert.Equal(t, 14600.0, RoomTotal([]float64{2800, 4500}, 2))
	assert.Equal(t, 7300.0, RoomTotal([]float64{2800, 4500}, 0), "days clamp to 1")
	assert.Equal(t, 0.0, RoomTotal(nil, 3))
}

func TestHoursSinceCeil(t *testing.T) {
	now := time.Date(2025, 5, 10, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, 1, HoursSince(now.Add(-1*time.Minute), now))
	assert.Equal(t, 2, HoursSince(now.Add(-61*time.Minute), now))
	assert.Equal(t, 24, HoursSince(now.Add(-24*time.Hour), now))
	assert.Equal(t, 0, HoursSince(now.Add(time.Hour), now), "future check-in")
	assert.Equal(t, 0, HoursSince(time.Time{}, now), "zero time")
}

func TestExtraChargeOneHourLate(t *testing.T) {
	now := time.Date(2025, 5, 10, 12, 0, 0, 0, time.UTC)
	got := ExtraCharge(now.Add(-25*time.Hour), 1, now, DefaultHourlyLateFee)

	assert.Equal(t, 24, got.BookedHours)
	assert.Equal(t, 25, got.HoursStayed)
	assert.Equal(t, 1, got.ExtraHours)
	assert.Equal(t, DefaultHourlyLateFee, got.ExtraCharge)
}

func TestExtraChargeWithinBooking(t *testing.T) {
	now := time.Date(2025, 5, 10, 12, 0, 0, 0, time.UTC)
	got := ExtraCharge(now.Add(-30*time.Hour), 2, now, DefaultHourlyLateFee)

	assert.Equal(t, 0, got.ExtraHours)
	assert.Equal(t, 0.0, got.ExtraCharge)
}

func TestParseOverride(t *testing.T) {
	v, err := ParseOverride("")
	require.NoError(t, err)
	assert.Nil(t, v)

	v, err = ParseOverride(" 5000 ")
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.Equal(t, 5000.0, *v)

	v, err = ParseOverride("0")
	require.NoError(t, err)
	assert.Nil(t, v)

	_, err = ParseOverride("abc")
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = ParseOverride("NaN")
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestGST(t *testing.T) {
	assert.Equal(t, 1800.0, GST(10000, DefaultGSTRate))
	assert.Equal(t, 0.0, GST(10000, 0))
}
