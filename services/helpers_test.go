package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"resort-backend/models"
	"resort-backend/repository"
	"resort-backend/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var checkInTime = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

type testEnv struct {
	store    *repository.GormStore
	rooms    *RoomService
	stays    *StayService
	sessions *SessionService
	checkout *CheckoutService
	accounts *AccountService
}

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(models.All()...))
	return db
}

func newTestEnv(t *testing.T) *testEnv {
	store := repository.NewGormStore(setupTestDB(t))
	stays := NewStayService(store)
	stays.Now = func() time.Time { return checkInTime }
	accounts := NewAccountService(store)
	checkout := NewCheckoutService(store, accounts, 200, 18)
	checkout.Now = func() time.Time { return checkInTime.Add(25 * time.Hour) }

	return &testEnv{
		store:    store,
		rooms:    NewRoomService(store),
		stays:    stays,
		sessions: NewSessionService(store, storage.NewMemorySelectionStore(), stays),
		checkout: checkout,
		accounts: accounts,
	}
}

// seedRooms creates one room per price, all free, and returns their ids.
func (e *testEnv) seedRooms(t *testing.T, prices ...float64) []uint {
	rooms := make([]models.Room, 0, len(prices))
	for i, p := range prices {
		rooms = append(rooms, models.Room{
			RoomNumber:  fmt.Sprintf("Room %d", i+1),
			Category:    "Deluxe",
			PricePerDay: p,
			Status:      models.RoomFree,
		})
	}
	require.NoError(t, e.store.Rooms().Create(context.Background(), rooms))
	ids := make([]uint, 0, len(rooms))
	for _, r := range rooms {
		ids = append(ids, r.ID)
	}
	return ids
}

func (e *testEnv) roomStatus(t *testing.T, id uint) models.RoomStatus {
	r, err := e.store.Rooms().Get(context.Background(), id)
	require.NoError(t, err)
	return r.Status
}

func floatPtr(v float64) *float64 { return &v }

// assertOccupancyInvariant checks that a room is occupied exactly when one
// checked-in stay holds it.
func assertOccupancyInvariant(t *testing.T, e *testEnv) {
	ctx := context.Background()
	rooms, err := e.store.Rooms().List(ctx, repository.RoomFilter{})
	require.NoError(t, err)
	active, err := e.store.Stays().List(ctx, repository.StayFilter{Status: models.StayCheckedIn})
	require.NoError(t, err)

	holders := map[uint]int{}
	for _, s := range active {
		for _, id := range s.RoomIDs() {
			holders[id]++
		}
	}
	for _, r := range rooms {
		if r.Status == models.RoomOccupied {
			assert.Equal(t, 1, holders[r.ID], "occupied room %s must belong to exactly one active stay", r.RoomNumber)
		} else {
			assert.Zero(t, holders[r.ID], "room %s is %s but held by an active stay", r.RoomNumber, r.Status)
		}
	}
}
