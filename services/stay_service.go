package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"resort-backend/models"
	"resort-backend/pricing"
	"resort-backend/repository"
)

type GuestInfo struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	IDProof string `json:"idProof"`
}

// CloseResult is what checkout writes onto a stay.
type CloseResult struct {
	CheckOutAt    time.Time
	ExtraHours    int
	ExtraCharge   float64
	TotalCharge   float64
	GSTAmount     float64
	GSTIN         string
	PaymentMethod string
}

// StayService is the ledger of check-ins and check-outs.
type StayService struct {
	Store repository.Store
	Now   func() time.Time
}

func NewStayService(store repository.Store) *StayService {
	return &StayService{Store: store, Now: time.Now}
}

func (s *StayService) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

// CreateStay checks a guest into roomIDs. Rooms are marked occupied and the
// stay is inserted in one transaction; on any error neither happens.
func (s *StayService) CreateStay(ctx context.Context, guest GuestInfo, roomIDs []uint, bookedDays int, baseOverride *float64) (models.Stay, error) {
	var stay models.Stay
	err := s.Store.Transaction(ctx, func(tx repository.Store) error {
		var err error
		stay, err = s.createStay(ctx, tx, guest, roomIDs, bookedDays, baseOverride)
		return err
	})
	if err != nil {
		return models.Stay{}, err
	}
	log.Printf("✅ Stay %d checked in: %s, rooms %v", stay.ID, stay.GuestName, stay.RoomIDs())
	return stay, nil
}

func (s *StayService) createStay(ctx context.Context, tx repository.Store, guest GuestInfo, roomIDs []uint, bookedDays int, baseOverride *float64) (models.Stay, error) {
	guest.Name = strings.TrimSpace(guest.Name)
	if guest.Name == "" {
		return models.Stay{}, validationf("guest name is required")
	}
	if bookedDays < 1 {
		return models.Stay{}, validationf("booked days must be at least 1")
	}
	if baseOverride != nil && !pricing.ValidAmount(*baseOverride) {
		return models.Stay{}, validationf("price override must be a number")
	}
	ids := uniqueIDs(roomIDs)
	if len(ids) == 0 {
		return models.Stay{}, validationf("select at least one room")
	}

	found, err := tx.Rooms().List(ctx, repository.RoomFilter{IDs: ids})
	if err != nil {
		return models.Stay{}, err
	}
	byID := make(map[uint]models.Room, len(found))
	for _, r := range found {
		byID[r.ID] = r
	}

	rooms := make([]models.Room, 0, len(ids))
	prices := make([]float64, 0, len(ids))
	for _, id := range ids {
		r, ok := byID[id]
		if !ok {
			return models.Stay{}, fmt.Errorf("%w: room %d", ErrNotFound, id)
		}
		if r.Status != models.RoomFree {
			return models.Stay{}, fmt.Errorf("%w: room %s is %s", ErrInvalidSelection, r.RoomNumber, r.Status)
		}
		rooms = append(rooms, r)
		prices = append(prices, r.PricePerDay)
	}

	if err := occupyRooms(ctx, tx, rooms); err != nil {
		return models.Stay{}, err
	}

	stay := models.Stay{
		GuestName:    guest.Name,
		GuestAddress: strings.TrimSpace(guest.Address),
		IDProof:      strings.TrimSpace(guest.IDProof),
		CheckInAt:    s.now(),
		BookedDays:   bookedDays,
		BaseAmount:   pricing.RoomTotal(prices, bookedDays),
		Status:       models.StayCheckedIn,
	}
	if baseOverride != nil && *baseOverride > 0 {
		stay.BaseAmount = *baseOverride
		stay.BaseOverridden = true
	}
	for i, r := range rooms {
		stay.Rooms = append(stay.Rooms, models.StayRoom{RoomID: r.ID, Position: i, PricePerDay: r.PricePerDay})
	}

	if err := tx.Stays().Insert(ctx, &stay); err != nil {
		return models.Stay{}, err
	}
	for i := range stay.Rooms {
		stay.Rooms[i].Room = rooms[i]
		stay.Rooms[i].Room.Status = models.RoomOccupied
	}
	return stay, nil
}

// CloseStay marks a checked-in stay as checked out. Room statuses are left to
// the caller; use CheckoutService for the full checkout.
func (s *StayService) CloseStay(ctx context.Context, id uint, result CloseResult) (models.Stay, error) {
	var stay models.Stay
	err := s.Store.Transaction(ctx, func(tx repository.Store) error {
		var err error
		stay, err = closeStay(ctx, tx, id, result)
		return err
	})
	return stay, err
}

func closeStay(ctx context.Context, tx repository.Store, id uint, result CloseResult) (models.Stay, error) {
	if result.ExtraHours < 0 || !pricing.ValidAmount(result.ExtraCharge) || !pricing.ValidAmount(result.TotalCharge) {
		return models.Stay{}, validationf("checkout amounts must be non-negative numbers")
	}
	if result.CheckOutAt.IsZero() {
		result.CheckOutAt = time.Now()
	}

	err := tx.Stays().CloseIfActive(ctx, id, map[string]interface{}{
		"status":         models.StayCheckedOut,
		"check_out_at":   result.CheckOutAt,
		"extra_hours":    result.ExtraHours,
		"extra_charge":   result.ExtraCharge,
		"total_charge":   result.TotalCharge,
		"gst_amount":     result.GSTAmount,
		"gstin":          result.GSTIN,
		"payment_method": result.PaymentMethod,
	})
	if errors.Is(err, repository.ErrConflict) {
		return models.Stay{}, fmt.Errorf("%w: stay %d is already checked out", ErrInvalidState, id)
	}
	if err != nil {
		return models.Stay{}, fromRepo(err, "stay", id)
	}

	stay, err := tx.Stays().Get(ctx, id)
	return stay, fromRepo(err, "stay", id)
}

func (s *StayService) GetStay(ctx context.Context, id uint) (models.Stay, error) {
	var stay models.Stay
	err := readWithRetry(ctx, func() error {
		var err error
		stay, err = s.Store.Stays().Get(ctx, id)
		return err
	})
	return stay, fromRepo(err, "stay", id)
}

func (s *StayService) ListActive(ctx context.Context) ([]models.Stay, error) {
	return s.list(ctx, models.StayCheckedIn)
}

func (s *StayService) ListHistory(ctx context.Context) ([]models.Stay, error) {
	return s.list(ctx, models.StayCheckedOut)
}

func (s *StayService) list(ctx context.Context, status models.StayStatus) ([]models.Stay, error) {
	var stays []models.Stay
	err := readWithRetry(ctx, func() error {
		var err error
		stays, err = s.Store.Stays().List(ctx, repository.StayFilter{Status: status})
		return err
	})
	if stays == nil {
		stays = []models.Stay{}
	}
	return stays, err
}

// uniqueIDs drops zero and repeated ids, keeping first-seen order.
func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if id == 0 {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
