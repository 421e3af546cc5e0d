package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"sort"
	"strings"

	"resort-backend/models"
	"resort-backend/pricing"
	"resort-backend/repository"
)

// RoomService owns the room inventory and its status machine.
type RoomService struct {
	Store repository.Store
}

func NewRoomService(store repository.Store) *RoomService {
	return &RoomService{Store: store}
}

func (s *RoomService) ListRooms(ctx context.Context, status models.RoomStatus) ([]models.Room, error) {
	if status != "" && !status.Valid() {
		return nil, validationf("unknown room status %q", status)
	}
	var rooms []models.Room
	err := readWithRetry(ctx, func() error {
		var err error
		rooms, err = s.Store.Rooms().List(ctx, repository.RoomFilter{Status: status})
		return err
	})
	if rooms == nil {
		rooms = []models.Room{}
	}
	return rooms, err
}

func (s *RoomService) ListHousekeeping(ctx context.Context) ([]models.Room, error) {
	return s.ListRooms(ctx, models.RoomHousekeeping)
}

func (s *RoomService) GetRoom(ctx context.Context, id uint) (models.Room, error) {
	var room models.Room
	err := readWithRetry(ctx, func() error {
		var err error
		room, err = s.Store.Rooms().Get(ctx, id)
		return err
	})
	return room, fromRepo(err, "room", id)
}

// SetStatus applies a manual operator transition. occupied is reserved for
// check-in and checkout and can be neither entered nor left from here.
func (s *RoomService) SetStatus(ctx context.Context, id uint, status models.RoomStatus) (models.Room, error) {
	if !status.Valid() {
		return models.Room{}, validationf("unknown room status %q", status)
	}
	if status == models.RoomOccupied {
		return models.Room{}, fmt.Errorf("%w: rooms become occupied only through check-in", ErrInvalidState)
	}

	room, err := s.Store.Rooms().Get(ctx, id)
	if err != nil {
		return room, fromRepo(err, "room", id)
	}
	if room.Status == status {
		return room, nil
	}
	if room.Status == models.RoomOccupied {
		return room, fmt.Errorf("%w: room %s is occupied, check the guest out first", ErrInvalidState, room.RoomNumber)
	}
	if !models.CanTransition(room.Status, status) {
		return room, fmt.Errorf("%w: room %s cannot go from %s to %s", ErrInvalidState, room.RoomNumber, room.Status, status)
	}

	if err := s.Store.Rooms().CompareAndSetStatus(ctx, id, []models.RoomStatus{room.Status}, status); err != nil {
		return room, fromRepo(err, "room", id)
	}
	log.Printf("✅ Room %s: %s -> %s", room.RoomNumber, room.Status, status)
	room.Status = status
	return room, nil
}

// MarkCleaned confirms housekeeping is done and frees the room.
func (s *RoomService) MarkCleaned(ctx context.Context, id uint) (models.Room, error) {
	room, err := s.Store.Rooms().Get(ctx, id)
	if err != nil {
		return room, fromRepo(err, "room", id)
	}
	if room.Status != models.RoomHousekeeping {
		return room, fmt.Errorf("%w: room %s is %s, not awaiting housekeeping", ErrInvalidState, room.RoomNumber, room.Status)
	}
	if err := s.Store.Rooms().CompareAndSetStatus(ctx, id, []models.RoomStatus{models.RoomHousekeeping}, models.RoomFree); err != nil {
		return room, fromRepo(err, "room", id)
	}
	log.Printf("🧹 Room %s cleaned", room.RoomNumber)
	room.Status = models.RoomFree
	return room, nil
}

// occupyRooms moves every room free -> occupied inside tx.
// A room that is no longer free makes the whole selection invalid.
func occupyRooms(ctx context.Context, tx repository.Store, rooms []models.Room) error {
	for _, r := range rooms {
		err := tx.Rooms().CompareAndSetStatus(ctx, r.ID, []models.RoomStatus{models.RoomFree}, models.RoomOccupied)
		switch {
		case err == nil:
		case errors.Is(err, repository.ErrConflict):
			return fmt.Errorf("%w: room %s is no longer free", ErrInvalidSelection, r.RoomNumber)
		default:
			return fromRepo(err, "room", r.ID)
		}
	}
	return nil
}

// releaseRooms moves every room occupied -> housekeeping inside tx.
func releaseRooms(ctx context.Context, tx repository.Store, ids []uint) error {
	for _, id := range ids {
		err := tx.Rooms().CompareAndSetStatus(ctx, id, []models.RoomStatus{models.RoomOccupied}, models.RoomHousekeeping)
		if errors.Is(err, repository.ErrConflict) {
			return fmt.Errorf("%w: room %d is not occupied", ErrInvalidState, id)
		}
		if err != nil {
			return fromRepo(err, "room", id)
		}
	}
	return nil
}

// ---------------------------
// provisioning & categories
// ---------------------------

// ProvisionRooms creates the fixed inventory when the room table is empty,
// spreading rooms evenly across categories from cheapest to dearest.
// It returns how many rooms were created.
func (s *RoomService) ProvisionRooms(ctx context.Context, count int) (int, error) {
	if count < 1 {
		return 0, validationf("room count must be at least 1")
	}
	existing, err := s.Store.Rooms().Count(ctx)
	if err != nil {
		return 0, err
	}
	if existing > 0 {
		return 0, nil
	}

	cats, err := s.ensureCategories(ctx)
	if err != nil {
		return 0, err
	}

	perCategory := int(math.Ceil(float64(count) / float64(len(cats))))
	rooms := make([]models.Room, 0, count)
	for i := 0; i < count; i++ {
		c := cats[i/perCategory]
		rooms = append(rooms, models.Room{
			RoomNumber:  fmt.Sprintf("Room %d", i+1),
			Category:    c.Name,
			PricePerDay: c.BasePrice,
			Status:      models.RoomFree,
		})
	}
	if err := s.Store.Rooms().Create(ctx, rooms); err != nil {
		return 0, fmt.Errorf("failed to provision rooms: %w", err)
	}
	log.Printf("✅ Provisioned %d rooms across %d categories", len(rooms), len(cats))
	return len(rooms), nil
}

func (s *RoomService) ensureCategories(ctx context.Context) ([]models.RoomCategory, error) {
	cats, err := s.Store.Categories().List(ctx)
	if err != nil {
		return nil, err
	}
	if len(cats) > 0 {
		return cats, nil
	}

	for name, price := range pricing.BasePrices {
		c := models.RoomCategory{Name: name, BasePrice: price}
		if err := s.Store.Categories().Upsert(ctx, &c); err != nil {
			return nil, fmt.Errorf("failed to seed category %s: %w", name, err)
		}
		cats = append(cats, c)
	}
	sort.Slice(cats, func(i, j int) bool { return cats[i].BasePrice < cats[j].BasePrice })
	return cats, nil
}

func (s *RoomService) ListCategories(ctx context.Context) ([]models.RoomCategory, error) {
	var cats []models.RoomCategory
	err := readWithRetry(ctx, func() error {
		var err error
		cats, err = s.Store.Categories().List(ctx)
		return err
	})
	if cats == nil {
		cats = []models.RoomCategory{}
	}
	return cats, err
}

// SaveCategory creates or reprices a category. Existing rooms keep their rate.
func (s *RoomService) SaveCategory(ctx context.Context, c models.RoomCategory) (models.RoomCategory, error) {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return c, validationf("category name is required")
	}
	if !pricing.ValidAmount(c.BasePrice) || c.BasePrice == 0 {
		return c, validationf("base price must be a positive number")
	}
	if err := s.Store.Categories().Upsert(ctx, &c); err != nil {
		return c, fmt.Errorf("failed to save category: %w", err)
	}
	return c, nil
}
