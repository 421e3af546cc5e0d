// Package repository is the persistence collaborator of the resort core.
// Services receive a Store and never reach for a global database handle.
package repository

import (
	"context"
	"errors"

	"resort-backend/models"
)

var (
	ErrNotFound = errors.New("record_not_found")
	// ErrConflict means a conditional update found the row in another state.
	ErrConflict = errors.New("record_conflict")
)

type RoomFilter struct {
	Status models.RoomStatus
	IDs    []uint
}

type StayFilter struct {
	Status models.StayStatus
}

type AccountFilter struct {
	Search string
}

type RoomRepository interface {
	List(ctx context.Context, filter RoomFilter) ([]models.Room, error)
	Get(ctx context.Context, id uint) (models.Room, error)
	Update(ctx context.Context, id uint, fields map[string]interface{}) error
	Create(ctx context.Context, rooms []models.Room) error
	Count(ctx context.Context) (int64, error)
	// CompareAndSetStatus moves a room to "to" only when it is in one of "from".
	CompareAndSetStatus(ctx context.Context, id uint, from []models.RoomStatus, to models.RoomStatus) error
}

type StayRepository interface {
	List(ctx context.Context, filter StayFilter) ([]models.Stay, error)
	Get(ctx context.Context, id uint) (models.Stay, error)
	Insert(ctx context.Context, stay *models.Stay) error
	Update(ctx context.Context, id uint, fields map[string]interface{}) error
	// CloseIfActive applies fields only while the stay is still checked-in.
	CloseIfActive(ctx context.Context, id uint, fields map[string]interface{}) error
}

type AccountRepository interface {
	Insert(ctx context.Context, entry *models.AccountEntry) error
	List(ctx context.Context, filter AccountFilter) ([]models.AccountEntry, error)
}

type CategoryRepository interface {
	List(ctx context.Context) ([]models.RoomCategory, error)
	Upsert(ctx context.Context, category *models.RoomCategory) error
}

type SettingsRepository interface {
	// Get returns the zero profile when none has been saved.
	Get(ctx context.Context) (models.ResortSetting, error)
	Save(ctx context.Context, setting *models.ResortSetting) error
}

type Store interface {
	Rooms() RoomRepository
	Stays() StayRepository
	Accounts() AccountRepository
	Categories() CategoryRepository
	Settings() SettingsRepository
	// Transaction runs fn against a Store bound to one database transaction.
	Transaction(ctx context.Context, fn func(tx Store) error) error
}
