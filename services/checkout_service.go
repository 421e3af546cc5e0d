package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"resort-backend/models"
	"resort-backend/pricing"
	"resort-backend/repository"

	"gorm.io/datatypes"
)

// Overrides are the operator's manual amounts. Total beats ExtraCharge.
type Overrides struct {
	ExtraCharge *float64 `json:"extraCharge"`
	Total       *float64 `json:"total"`
	IncludeGST  bool     `json:"includeGst"`
	GSTIN       string   `json:"gstin"`
}

type RoomCharge struct {
	RoomID      uint    `json:"roomId"`
	RoomNumber  string  `json:"roomNumber"`
	PricePerDay float64 `json:"pricePerDay"`
	Amount      float64 `json:"amount"`
	// Estimated is set when the room's own rate was unknown and the base
	// amount was split evenly.
	Estimated bool `json:"estimated"`
}

type Bill struct {
	StayID     uint      `json:"stayId"`
	CheckInAt  time.Time `json:"checkInAt"`
	BookedDays int       `json:"bookedDays"`

	BookedHours int `json:"bookedHours"`
	HoursStayed int `json:"hoursStayed"`
	ExtraHours  int `json:"extraHours"`

	DefaultExtraCharge float64      `json:"defaultExtraCharge"`
	AppliedExtraCharge float64      `json:"appliedExtraCharge"`
	BaseTotal          float64      `json:"baseTotal"`
	PerRoom            []RoomCharge `json:"perRoom"`

	ComputedTotal   float64 `json:"computedTotal"`
	TotalOverridden bool    `json:"totalOverridden"`

	GSTRate    float64 `json:"gstRate"`
	GSTAmount  float64 `json:"gstAmount"`
	GSTIN      string  `json:"gstin,omitempty"`
	GrandTotal float64 `json:"grandTotal"`

	// Resort is the business profile printed on the bill, when one is saved.
	Resort *models.ResortSetting `json:"resort,omitempty"`
}

type CheckoutRequest struct {
	// Confirm must be true; an unconfirmed request only gets a ValidationError.
	Confirm       bool
	Overrides     Overrides
	PaymentMethod string
}

type CheckoutResult struct {
	Stay models.Stay `json:"stay"`
	Bill Bill        `json:"bill"`
	// Warning is set when the finance record could not be written.
	Warning string `json:"warning,omitempty"`
}

// FinanceRecorder receives one record per completed checkout.
type FinanceRecorder interface {
	Record(ctx context.Context, entry *models.AccountEntry) error
}

type CheckoutService struct {
	Store     repository.Store
	Finance   FinanceRecorder
	HourlyFee float64
	GSTRate   float64
	Now       func() time.Time
}

func NewCheckoutService(store repository.Store, finance FinanceRecorder, hourlyFee, gstRate float64) *CheckoutService {
	return &CheckoutService{
		Store:     store,
		Finance:   finance,
		HourlyFee: hourlyFee,
		GSTRate:   gstRate,
		Now:       time.Now,
	}
}

func (s *CheckoutService) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

// ComputeBill prices an active stay as of now. It writes nothing.
func (s *CheckoutService) ComputeBill(ctx context.Context, stayID uint, ov Overrides) (Bill, error) {
	if err := checkOverrides(ov); err != nil {
		return Bill{}, err
	}
	var stay models.Stay
	err := readWithRetry(ctx, func() error {
		var err error
		stay, err = s.Store.Stays().Get(ctx, stayID)
		return err
	})
	if err != nil {
		return Bill{}, fromRepo(err, "stay", stayID)
	}
	if !stay.Active() {
		return Bill{}, fmt.Errorf("%w: stay %d is already checked out", ErrInvalidState, stayID)
	}
	b := s.bill(stay, ov, s.now())
	b.Resort = resortProfile(ctx, s.Store)
	return b, nil
}

// resortProfile is decoration only; a failed lookup leaves the bill without it.
func resortProfile(ctx context.Context, store repository.Store) *models.ResortSetting {
	setting, err := store.Settings().Get(ctx)
	if err != nil {
		log.Printf("⚠️ resort profile unavailable: %v", err)
		return nil
	}
	if setting.ID == 0 {
		return nil
	}
	return &setting
}

func checkOverrides(ov Overrides) error {
	if ov.ExtraCharge != nil && !pricing.ValidAmount(*ov.ExtraCharge) {
		return validationf("extra charge override must be a non-negative number")
	}
	if ov.Total != nil && (!pricing.ValidAmount(*ov.Total) || *ov.Total == 0) {
		return validationf("total override must be a positive number")
	}
	return nil
}

func (s *CheckoutService) bill(stay models.Stay, ov Overrides, now time.Time) Bill {
	extra := pricing.ExtraCharge(stay.CheckInAt, stay.BookedDays, now, s.HourlyFee)

	b := Bill{
		StayID:             stay.ID,
		CheckInAt:          stay.CheckInAt,
		BookedDays:         stay.BookedDays,
		BookedHours:        extra.BookedHours,
		HoursStayed:        extra.HoursStayed,
		ExtraHours:         extra.ExtraHours,
		DefaultExtraCharge: extra.ExtraCharge,
		AppliedExtraCharge: extra.ExtraCharge,
		BaseTotal:          stay.BaseAmount,
		PerRoom:            perRoom(stay),
		GSTRate:            s.GSTRate,
	}
	if ov.ExtraCharge != nil {
		b.AppliedExtraCharge = *ov.ExtraCharge
	}
	b.ComputedTotal = b.BaseTotal + b.AppliedExtraCharge
	if ov.Total != nil {
		b.ComputedTotal = *ov.Total
		b.TotalOverridden = true
	}

	b.GrandTotal = b.ComputedTotal
	if ov.IncludeGST {
		b.GSTAmount = pricing.GST(b.ComputedTotal, s.GSTRate)
		b.GSTIN = strings.TrimSpace(ov.GSTIN)
		b.GrandTotal = pricing.Round2(b.ComputedTotal + b.GSTAmount)
	}
	return b
}

// perRoom splits the base amount by each room's rate when every rate is
// known, otherwise evenly as baseAmount / bookedDays / roomCount per day.
func perRoom(stay models.Stay) []RoomCharge {
	out := make([]RoomCharge, 0, len(stay.Rooms))
	if len(stay.Rooms) == 0 {
		return out
	}

	sum := 0.0
	known := true
	for _, sr := range stay.Rooms {
		if sr.PricePerDay <= 0 {
			known = false
			break
		}
		sum += sr.PricePerDay
	}

	days := stay.BookedDays
	if days < 1 {
		days = 1
	}
	evenDaily := stay.BaseAmount / float64(days) / float64(len(stay.Rooms))

	allocated := 0.0
	for i, sr := range stay.Rooms {
		rc := RoomCharge{RoomID: sr.RoomID, RoomNumber: sr.Room.RoomNumber}
		if known {
			rc.PricePerDay = sr.PricePerDay
			rc.Amount = pricing.Round2(stay.BaseAmount * sr.PricePerDay / sum)
		} else {
			rc.PricePerDay = pricing.Round2(evenDaily)
			rc.Amount = pricing.Round2(evenDaily * float64(days))
			rc.Estimated = true
		}
		// the last room absorbs rounding so the shares add up to the base
		if i == len(stay.Rooms)-1 {
			rc.Amount = pricing.Round2(stay.BaseAmount - allocated)
		}
		allocated += rc.Amount
		out = append(out, rc)
	}
	return out
}

// Checkout closes the stay and sends its rooms to housekeeping in one
// transaction, then hands the finance record to Finance. A failed finance
// write is logged and reported as a warning; the checkout stays committed.
func (s *CheckoutService) Checkout(ctx context.Context, stayID uint, req CheckoutRequest) (CheckoutResult, error) {
	if !req.Confirm {
		return CheckoutResult{}, validationf("checkout must be confirmed")
	}
	if err := checkOverrides(req.Overrides); err != nil {
		return CheckoutResult{}, err
	}
	method, err := normalizePaymentMethod(req.PaymentMethod)
	if err != nil {
		return CheckoutResult{}, err
	}

	var res CheckoutResult
	now := s.now()
	err = s.Store.Transaction(ctx, func(tx repository.Store) error {
		stay, err := tx.Stays().Get(ctx, stayID)
		if err != nil {
			return fromRepo(err, "stay", stayID)
		}
		if !stay.Active() {
			return fmt.Errorf("%w: stay %d is already checked out", ErrInvalidState, stayID)
		}

		bill := s.bill(stay, req.Overrides, now)
		closed, err := closeStay(ctx, tx, stayID, CloseResult{
			CheckOutAt:    now,
			ExtraHours:    bill.ExtraHours,
			ExtraCharge:   bill.AppliedExtraCharge,
			TotalCharge:   bill.ComputedTotal,
			GSTAmount:     bill.GSTAmount,
			GSTIN:         bill.GSTIN,
			PaymentMethod: method,
		})
		if err != nil {
			return err
		}
		if err := releaseRooms(ctx, tx, stay.RoomIDs()); err != nil {
			return err
		}
		bill.Resort = resortProfile(ctx, tx)
		res = CheckoutResult{Stay: closed, Bill: bill}
		return nil
	})
	if err != nil {
		return CheckoutResult{}, err
	}
	log.Printf("✅ Stay %d checked out, total %.2f", stayID, res.Bill.ComputedTotal)

	if s.Finance != nil {
		entry := financeEntry(res.Stay, res.Bill, method)
		if err := s.Finance.Record(ctx, entry); err != nil {
			log.Printf("⚠️ finance record for stay %d not saved: %v", stayID, err)
			res.Warning = fmt.Sprintf("checkout completed but the finance record was not saved: %v", err)
		}
	}
	return res, nil
}

func financeEntry(stay models.Stay, bill Bill, method string) *models.AccountEntry {
	ids := stay.RoomIDs()
	entry := &models.AccountEntry{
		StayID:        stay.ID,
		GuestName:     stay.GuestName,
		BaseAmount:    bill.BaseTotal,
		ExtraHours:    bill.ExtraHours,
		ExtraCharge:   bill.AppliedExtraCharge,
		GSTAmount:     bill.GSTAmount,
		TotalAmount:   bill.ComputedTotal,
		PaymentMethod: method,
	}
	if len(ids) > 0 {
		entry.RoomID = ids[0]
	}
	if raw, err := json.Marshal(ids); err == nil {
		entry.RoomIDs = datatypes.JSON(raw)
	}
	if raw, err := json.Marshal(bill.PerRoom); err == nil {
		entry.Breakdown = datatypes.JSON(raw)
	}
	return entry
}

func normalizePaymentMethod(m string) (string, error) {
	m = strings.ToLower(strings.TrimSpace(m))
	if m == "" {
		return models.DefaultPaymentMethod, nil
	}
	for _, v := range models.PaymentMethods {
		if v == m {
			return m, nil
		}
	}
	return "", validationf("unknown payment method %q", m)
}
