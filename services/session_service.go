package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"resort-backend/models"
	"resort-backend/pricing"
	"resort-backend/repository"
	"resort-backend/storage"

	"github.com/google/uuid"
)

// Selection is an operator's tentative room pick.
type Selection struct {
	SessionID string        `json:"sessionId"`
	Rooms     []models.Room `json:"rooms"`
	// Dropped lists rooms removed because they stopped being free.
	Dropped []uint `json:"dropped,omitempty"`
}

func (s Selection) RoomIDs() []uint {
	ids := make([]uint, 0, len(s.Rooms))
	for _, r := range s.Rooms {
		ids = append(ids, r.ID)
	}
	return ids
}

type Quote struct {
	Days       int      `json:"days"`
	Computed   float64  `json:"computed"`
	Override   *float64 `json:"override,omitempty"`
	Total      float64  `json:"total"`
	Overridden bool     `json:"overridden"`
}

// SessionService turns a room selection into a stay.
type SessionService struct {
	Store      repository.Store
	Selections storage.SelectionStore
	Stays      *StayService
}

func NewSessionService(store repository.Store, selections storage.SelectionStore, stays *StayService) *SessionService {
	return &SessionService{Store: store, Selections: selections, Stays: stays}
}

func (s *SessionService) Open(ctx context.Context) (Selection, error) {
	id := uuid.NewString()
	if err := s.Selections.Clear(ctx, id); err != nil {
		return Selection{}, err
	}
	return Selection{SessionID: id, Rooms: []models.Room{}}, nil
}

func checkSession(session string) error {
	if _, err := uuid.Parse(strings.TrimSpace(session)); err != nil {
		return validationf("invalid session id %q", session)
	}
	return nil
}

// ToggleRoom removes roomID from the selection, or adds it when the room is free.
func (s *SessionService) ToggleRoom(ctx context.Context, session string, roomID uint) (Selection, error) {
	if err := checkSession(session); err != nil {
		return Selection{}, err
	}

	room, err := s.Store.Rooms().Get(ctx, roomID)
	if err != nil {
		return Selection{}, fromRepo(err, "room", roomID)
	}
	on, err := s.Selections.Toggle(ctx, session, roomID)
	if err != nil {
		return Selection{}, err
	}
	if on && room.Status != models.RoomFree {
		if err := s.Selections.Remove(ctx, session, roomID); err != nil {
			log.Printf("⚠️ failed to undo selection of room %d: %v", roomID, err)
		}
		return Selection{}, fmt.Errorf("%w: room %s is %s", ErrInvalidSelection, room.RoomNumber, room.Status)
	}
	return s.Selection(ctx, session)
}

// Selection returns the selected rooms, pruning any that are no longer free.
func (s *SessionService) Selection(ctx context.Context, session string) (Selection, error) {
	if err := checkSession(session); err != nil {
		return Selection{}, err
	}

	ids, err := s.Selections.Members(ctx, session)
	if err != nil {
		return Selection{}, err
	}
	sel := Selection{SessionID: session, Rooms: []models.Room{}}
	if len(ids) == 0 {
		return sel, nil
	}

	var rooms []models.Room
	err = readWithRetry(ctx, func() error {
		var err error
		rooms, err = s.Store.Rooms().List(ctx, repository.RoomFilter{IDs: ids})
		return err
	})
	if err != nil {
		return Selection{}, err
	}
	byID := make(map[uint]models.Room, len(rooms))
	for _, r := range rooms {
		byID[r.ID] = r
	}

	for _, id := range ids {
		r, ok := byID[id]
		if !ok || r.Status != models.RoomFree {
			sel.Dropped = append(sel.Dropped, id)
			continue
		}
		sel.Rooms = append(sel.Rooms, r)
	}
	if len(sel.Dropped) > 0 {
		log.Printf("⚠️ session %s: dropping rooms %v that are no longer free", session, sel.Dropped)
		if err := s.Selections.Remove(ctx, session, sel.Dropped...); err != nil {
			return Selection{}, err
		}
	}
	return sel, nil
}

// ComputeTotal prices the selection. A positive override wins outright.
func (s *SessionService) ComputeTotal(ctx context.Context, session string, days int, override *float64) (Quote, error) {
	sel, err := s.Selection(ctx, session)
	if err != nil {
		return Quote{}, err
	}
	return quote(sel.Rooms, days, override), nil
}

func quote(rooms []models.Room, days int, override *float64) Quote {
	if days < 1 {
		days = 1
	}
	prices := make([]float64, 0, len(rooms))
	for _, r := range rooms {
		prices = append(prices, r.PricePerDay)
	}
	q := Quote{Days: days, Computed: pricing.RoomTotal(prices, days)}
	q.Total = q.Computed
	if override != nil && pricing.ValidAmount(*override) && *override > 0 {
		q.Override = override
		q.Total = *override
		q.Overridden = true
	}
	return q
}

// ConfirmCheckIn creates a stay for the selection. The selection is cleared
// only on success; on any error it and the rooms are left untouched.
func (s *SessionService) ConfirmCheckIn(ctx context.Context, session string, guest GuestInfo, days int, override *float64) (models.Stay, error) {
	if strings.TrimSpace(guest.Name) == "" {
		return models.Stay{}, validationf("guest name is required")
	}
	if days < 1 {
		return models.Stay{}, validationf("days must be at least 1")
	}

	sel, err := s.Selection(ctx, session)
	if err != nil {
		return models.Stay{}, err
	}
	if len(sel.Dropped) > 0 {
		return models.Stay{}, fmt.Errorf("%w: rooms %v are no longer free and were removed from the selection", ErrInvalidSelection, sel.Dropped)
	}
	if len(sel.Rooms) == 0 {
		return models.Stay{}, validationf("no rooms selected")
	}

	stay, err := s.Stays.CreateStay(ctx, guest, sel.RoomIDs(), days, override)
	if err != nil {
		return models.Stay{}, err
	}

	if err := s.Selections.Clear(ctx, session); err != nil {
		log.Printf("⚠️ stay %d created but session %s was not cleared: %v", stay.ID, session, err)
	}
	return stay, nil
}

func (s *SessionService) Cancel(ctx context.Context, session string) error {
	if err := checkSession(session); err != nil {
		return err
	}
	return s.Selections.Clear(ctx, session)
}
