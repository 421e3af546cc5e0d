package services

import (
	"context"
	"testing"
	"time"

	"resort-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateStayOccupiesRooms(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	ids := env.seedRooms(t, 2800, 4500)

	stay, err := env.stays.CreateStay(ctx, GuestInfo{Name: " Ravi Kumar ", Address: "Kochi", IDProof: "AADHAAR 1234"}, []uint{ids[1], ids[0], ids[1]}, 2, nil)
	require.NoError(t, err)

	assert.Equal(t, "Ravi Kumar", stay.GuestName)
	assert.Equal(t, models.StayCheckedIn, stay.Status)
	assert.Equal(t, []uint{ids[1], ids[0]}, stay.RoomIDs(), "duplicates collapse, order kept")
	assert.Equal(t, 14600.0, stay.BaseAmount)
	assert.False(t, stay.BaseOverridden)
	assert.True(t, stay.CheckInAt.Equal(checkInTime))

	assert.Equal(t, models.RoomOccupied, env.roomStatus(t, ids[0]))
	assert.Equal(t, models.RoomOccupied, env.roomStatus(t, ids[1]))
	assertOccupancyInvariant(t, env)
}

func TestCreateStayBaseOverride(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	ids := env.seedRooms(t, 2800)

	stay, err := env.stays.CreateStay(ctx, GuestInfo{Name: "Meera"}, ids, 1, floatPtr(2000))
	require.NoError(t, err)
	assert.Equal(t, 2000.0, stay.BaseAmount)
	assert.True(t, stay.BaseOverridden)
}

func TestCreateStayValidation(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	ids := env.seedRooms(t, 2800)

	_, err := env.stays.CreateStay(ctx, GuestInfo{Name: "  "}, ids, 1, nil)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = env.stays.CreateStay(ctx, GuestInfo{Name: "Meera"}, ids, 0, nil)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = env.stays.CreateStay(ctx, GuestInfo{Name: "Meera"}, []uint{}, 1, nil)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = env.stays.CreateStay(ctx, GuestInfo{Name: "Meera"}, []uint{999}, 1, nil)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.Equal(t, models.RoomFree, env.roomStatus(t, ids[0]))
}

func TestCreateStayRollsBackOnBusyRoom(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	ids := env.seedRooms(t, 2800, 4500)
	_, err := env.rooms.SetStatus(ctx, ids[1], models.RoomMaintenance)
	require.NoError(t, err)

	_, err = env.stays.CreateStay(ctx, GuestInfo{Name: "Meera"}, ids, 1, nil)
	assert.ErrorIs(t, err, ErrInvalidSelection)

	assert.Equal(t, models.RoomFree, env.roomStatus(t, ids[0]), "first room must not stay occupied")
	active, err := env.stays.ListActive(ctx)
	require.NoError(t, err)
	assert.Empty(t, active)
}

func TestCloseStayTwice(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	ids := env.seedRooms(t, 2800)
	stay, err := env.stays.CreateStay(ctx, GuestInfo{Name: "Meera"}, ids, 1, nil)
	require.NoError(t, err)

	first := CloseResult{CheckOutAt: checkInTime.Add(25 * time.Hour), ExtraHours: 1, ExtraCharge: 200, TotalCharge: 3000, PaymentMethod: "cash"}
	closed, err := env.stays.CloseStay(ctx, stay.ID, first)
	require.NoError(t, err)
	assert.Equal(t, models.StayCheckedOut, closed.Status)
	assert.Equal(t, 3000.0, closed.TotalCharge)

	_, err = env.stays.CloseStay(ctx, stay.ID, CloseResult{CheckOutAt: checkInTime.Add(48 * time.Hour), ExtraHours: 24, ExtraCharge: 4800, TotalCharge: 7600})
	assert.ErrorIs(t, err, ErrInvalidState)

	got, err := env.stays.GetStay(ctx, stay.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.ExtraHours)
	assert.Equal(t, 200.0, got.ExtraCharge)
	assert.Equal(t, 3000.0, got.TotalCharge)
	require.NotNil(t, got.CheckOutAt)
	assert.True(t, got.CheckOutAt.Equal(first.CheckOutAt))

	_, err = env.stays.CloseStay(ctx, 12345, first)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListActiveAndHistory(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	ids := env.seedRooms(t, 2800, 4500)

	a, err := env.stays.CreateStay(ctx, GuestInfo{Name: "A"}, ids[:1], 1, nil)
	require.NoError(t, err)
	_, err = env.stays.CreateStay(ctx, GuestInfo{Name: "B"}, ids[1:], 1, nil)
	require.NoError(t, err)
	_, err = env.checkout.Checkout(ctx, a.ID, CheckoutRequest{Confirm: true})
	require.NoError(t, err)

	active, err := env.stays.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "B", active[0].GuestName)

	history, err := env.stays.ListHistory(ctx)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "A", history[0].GuestName)

	_, err = env.stays.GetStay(ctx, 999)
	assert.ErrorIs(t, err, ErrNotFound)
}
