package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"resort-backend/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{DB: db}
}

func (s *GormStore) Rooms() RoomRepository          { return gormRooms{db: s.DB} }
func (s *GormStore) Stays() StayRepository          { return gormStays{db: s.DB} }
func (s *GormStore) Accounts() AccountRepository    { return gormAccounts{db: s.DB} }
func (s *GormStore) Categories() CategoryRepository { return gormCategories{db: s.DB} }
func (s *GormStore) Settings() SettingsRepository   { return gormSettings{db: s.DB} }

func (s *GormStore) Transaction(ctx context.Context, fn func(tx Store) error) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormStore{DB: tx})
	})
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// ---------------------------
// rooms
// ---------------------------

type gormRooms struct{ db *gorm.DB }

func (r gormRooms) List(ctx context.Context, filter RoomFilter) ([]models.Room, error) {
	q := r.db.WithContext(ctx).Model(&models.Room{})
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if len(filter.IDs) > 0 {
		q = q.Where("id IN ?", filter.IDs)
	}

	var rooms []models.Room
	if err := q.Order("id ASC").Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}
	return rooms, nil
}

func (r gormRooms) Get(ctx context.Context, id uint) (models.Room, error) {
	var room models.Room
	if err := r.db.WithContext(ctx).First(&room, id).Error; err != nil {
		return room, notFound(err)
	}
	return room, nil
}

func (r gormRooms) Update(ctx context.Context, id uint, fields map[string]interface{}) error {
	res := r.db.WithContext(ctx).Model(&models.Room{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return fmt.Errorf("failed to update room %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return r.missingOr(ctx, id, nil)
	}
	return nil
}

func (r gormRooms) Create(ctx context.Context, rooms []models.Room) error {
	if len(rooms) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&rooms).Error
}

func (r gormRooms) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Room{}).Count(&n).Error
	return n, err
}

func (r gormRooms) CompareAndSetStatus(ctx context.Context, id uint, from []models.RoomStatus, to models.RoomStatus) error {
	res := r.db.WithContext(ctx).Model(&models.Room{}).
		Where("id = ? AND status IN ?", id, from).
		Updates(map[string]interface{}{"status": to})
	if res.Error != nil {
		return fmt.Errorf("failed to update room %d status: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return r.missingOr(ctx, id, ErrConflict)
	}
	return nil
}

// missingOr tells an unknown id apart from a row that did not match the condition.
func (r gormRooms) missingOr(ctx context.Context, id uint, otherwise error) error {
	var n int64
	if err := r.db.WithContext(ctx).Model(&models.Room{}).Where("id = ?", id).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return otherwise
}

// ---------------------------
// stays
// ---------------------------

type gormStays struct{ db *gorm.DB }

func (r gormStays) preloaded(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Rooms", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Preload("Rooms.Room")
}

func (r gormStays) List(ctx context.Context, filter StayFilter) ([]models.Stay, error) {
	q := r.preloaded(ctx)
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}

	var stays []models.Stay
	if err := q.Order("id DESC").Find(&stays).Error; err != nil {
		return nil, fmt.Errorf("failed to list stays: %w", err)
	}
	for i := range stays {
		if stays[i].Rooms == nil {
			stays[i].Rooms = []models.StayRoom{}
		}
	}
	return stays, nil
}

func (r gormStays) Get(ctx context.Context, id uint) (models.Stay, error) {
	var stay models.Stay
	if err := r.preloaded(ctx).First(&stay, id).Error; err != nil {
		return stay, notFound(err)
	}
	return stay, nil
}

func (r gormStays) Insert(ctx context.Context, stay *models.Stay) error {
	if err := r.db.WithContext(ctx).Create(stay).Error; err != nil {
		return fmt.Errorf("failed to create stay: %w", err)
	}
	return nil
}

func (r gormStays) Update(ctx context.Context, id uint, fields map[string]interface{}) error {
	res := r.db.WithContext(ctx).Model(&models.Stay{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return fmt.Errorf("failed to update stay %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return r.missingOr(ctx, id, nil)
	}
	return nil
}

func (r gormStays) CloseIfActive(ctx context.Context, id uint, fields map[string]interface{}) error {
	res := r.db.WithContext(ctx).Model(&models.Stay{}).
		Where("id = ? AND status = ?", id, models.StayCheckedIn).
		Updates(fields)
	if res.Error != nil {
		return fmt.Errorf("failed to close stay %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return r.missingOr(ctx, id, ErrConflict)
	}
	return nil
}

func (r gormStays) missingOr(ctx context.Context, id uint, otherwise error) error {
	var n int64
	if err := r.db.WithContext(ctx).Model(&models.Stay{}).Where("id = ?", id).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return otherwise
}

// ---------------------------
// accounts
// ---------------------------

type gormAccounts struct{ db *gorm.DB }

func (r gormAccounts) Insert(ctx context.Context, entry *models.AccountEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r gormAccounts) List(ctx context.Context, filter AccountFilter) ([]models.AccountEntry, error) {
	q := r.db.WithContext(ctx).Model(&models.AccountEntry{})
	if s := strings.ToLower(strings.TrimSpace(filter.Search)); s != "" {
		if id, err := strconv.ParseUint(s, 10, 64); err == nil {
			q = q.Where("LOWER(guest_name) LIKE ? OR guest_id = ?", "%"+s+"%", id)
		} else {
			q = q.Where("LOWER(guest_name) LIKE ?", "%"+s+"%")
		}
	}

	var entries []models.AccountEntry
	if err := q.Order("id DESC").Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return entries, nil
}

// ---------------------------
// categories
// ---------------------------

type gormCategories struct{ db *gorm.DB }

func (r gormCategories) List(ctx context.Context) ([]models.RoomCategory, error) {
	var out []models.RoomCategory
	err := r.db.WithContext(ctx).Order("base_price ASC").Find(&out).Error
	return out, err
}

func (r gormCategories) Upsert(ctx context.Context, category *models.RoomCategory) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"base_price", "description", "updated_at"}),
		}).
		Create(category).Error
}

// ---------------------------
// resort settings
// ---------------------------

type gormSettings struct{ db *gorm.DB }

func (r gormSettings) Get(ctx context.Context) (models.ResortSetting, error) {
	var setting models.ResortSetting
	err := r.db.WithContext(ctx).Order("id ASC").First(&setting).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.ResortSetting{}, nil
	}
	return setting, err
}

// Save keeps a single row: the first save creates it, later saves update it.
func (r gormSettings) Save(ctx context.Context, setting *models.ResortSetting) error {
	current, err := r.Get(ctx)
	if err != nil {
		return err
	}
	setting.ID = current.ID
	if current.ID != 0 {
		setting.CreatedAt = current.CreatedAt
	}
	return r.db.WithContext(ctx).Save(setting).Error
}
