package services

import (
	"context"
	"testing"

	"resort-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetStatusManualTransitions(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	id := env.seedRooms(t, 2800)[0]

	room, err := env.rooms.SetStatus(ctx, id, models.RoomMaintenance)
	require.NoError(t, err)
	assert.Equal(t, models.RoomMaintenance, room.Status)

	room, err = env.rooms.SetStatus(ctx, id, models.RoomFree)
	require.NoError(t, err)
	assert.Equal(t, models.RoomFree, room.Status)
	assert.Equal(t, models.RoomFree, env.roomStatus(t, id))
}

func TestSetStatusRejectsOccupiedTransitions(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	ids := env.seedRooms(t, 2800)

	_, err := env.rooms.SetStatus(ctx, ids[0], models.RoomOccupied)
	assert.ErrorIs(t, err, ErrInvalidState)

	_, err = env.stays.CreateStay(ctx, GuestInfo{Name: "Asha"}, ids, 1, nil)
	require.NoError(t, err)

	_, err = env.rooms.SetStatus(ctx, ids[0], models.RoomFree)
	assert.ErrorIs(t, err, ErrInvalidState)
	_, err = env.rooms.SetStatus(ctx, ids[0], models.RoomMaintenance)
	assert.ErrorIs(t, err, ErrInvalidState)
	assert.Equal(t, models.RoomOccupied, env.roomStatus(t, ids[0]))
	assertOccupancyInvariant(t, env)
}

func TestSetStatusErrors(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	id := env.seedRooms(t, 2800)[0]

	_, err := env.rooms.SetStatus(ctx, 404, models.RoomMaintenance)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = env.rooms.SetStatus(ctx, id, models.RoomStatus("broken"))
	assert.ErrorIs(t, err, ErrValidation)

	// free -> housekeeping skips a stay
	_, err = env.rooms.SetStatus(ctx, id, models.RoomHousekeeping)
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestMarkCleaned(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	id := env.seedRooms(t, 2800)[0]

	_, err := env.rooms.MarkCleaned(ctx, id)
	assert.ErrorIs(t, err, ErrInvalidState, "a free room has nothing to clean")

	require.NoError(t, env.store.Rooms().Update(ctx, id, map[string]interface{}{"status": models.RoomHousekeeping}))
	hk, err := env.rooms.ListHousekeeping(ctx)
	require.NoError(t, err)
	require.Len(t, hk, 1)

	room, err := env.rooms.MarkCleaned(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, models.RoomFree, room.Status)

	hk, err = env.rooms.ListHousekeeping(ctx)
	require.NoError(t, err)
	assert.Empty(t, hk)
}

func TestProvisionRooms(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	n, err := env.rooms.ProvisionRooms(ctx, 33)
	require.NoError(t, err)
	assert.Equal(t, 33, n)

	rooms, err := env.rooms.ListRooms(ctx, "")
	require.NoError(t, err)
	require.Len(t, rooms, 33)
	assert.Equal(t, "Room 1", rooms[0].RoomNumber)
	assert.Equal(t, "Deluxe", rooms[0].Category)
	assert.Equal(t, 2800.0, rooms[0].PricePerDay)
	assert.Equal(t, "Deluxe", rooms[10].Category)
	assert.Equal(t, "Executive", rooms[11].Category)
	assert.Equal(t, "Suite", rooms[32].Category)
	assert.Equal(t, 6800.0, rooms[32].PricePerDay)
	for _, r := range rooms {
		assert.Equal(t, models.RoomFree, r.Status)
	}

	n, err = env.rooms.ProvisionRooms(ctx, 33)
	require.NoError(t, err)
	assert.Zero(t, n, "inventory is only seeded once")
}

func TestListRoomsByStatus(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	ids := env.seedRooms(t, 2800, 4500, 6800)
	_, err := env.rooms.SetStatus(ctx, ids[1], models.RoomMaintenance)
	require.NoError(t, err)

	free, err := env.rooms.ListRooms(ctx, models.RoomFree)
	require.NoError(t, err)
	assert.Len(t, free, 2)

	_, err = env.rooms.ListRooms(ctx, "nope")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestSaveCategory(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	_, err := env.rooms.SaveCategory(ctx, models.RoomCategory{Name: "  ", BasePrice: 100})
	assert.ErrorIs(t, err, ErrValidation)
	_, err = env.rooms.SaveCategory(ctx, models.RoomCategory{Name: "Villa", BasePrice: -1})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = env.rooms.SaveCategory(ctx, models.RoomCategory{Name: "Villa", BasePrice: 9000})
	require.NoError(t, err)
	_, err = env.rooms.SaveCategory(ctx, models.RoomCategory{Name: "Villa", BasePrice: 9500})
	require.NoError(t, err)

	cats, err := env.rooms.ListCategories(ctx)
	require.NoError(t, err)
	require.Len(t, cats, 1)
	assert.Equal(t, 9500.0, cats[0].BasePrice)
}
