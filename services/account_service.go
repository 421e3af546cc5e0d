package services

import (
	"context"
	"strings"

	"resort-backend/models"
	"resort-backend/pricing"
	"resort-backend/repository"
)

type RevenueSummary struct {
	Count   int                   `json:"count"`
	Total   float64               `json:"total"`
	Average float64               `json:"average"`
	Entries []models.AccountEntry `json:"entries"`
}

type GSTRow struct {
	EntryID   uint    `json:"entryId"`
	GuestName string  `json:"guestName"`
	Amount    float64 `json:"amount"`
	GST       float64 `json:"gst"`
}

type GSTReport struct {
	Rate         float64  `json:"rate"`
	TotalRevenue float64  `json:"totalRevenue"`
	TotalGST     float64  `json:"totalGst"`
	NetIncome    float64  `json:"netIncome"`
	Rows         []GSTRow `json:"rows"`
}

// AccountService is the finance ledger fed by checkouts.
type AccountService struct {
	Store repository.Store
}

func NewAccountService(store repository.Store) *AccountService {
	return &AccountService{Store: store}
}

// Record implements FinanceRecorder.
func (s *AccountService) Record(ctx context.Context, entry *models.AccountEntry) error {
	if entry == nil {
		return validationf("empty account entry")
	}
	entry.GuestName = strings.TrimSpace(entry.GuestName)
	if !pricing.ValidAmount(entry.TotalAmount) || !pricing.ValidAmount(entry.BaseAmount) ||
		!pricing.ValidAmount(entry.ExtraCharge) || entry.ExtraHours < 0 {
		return validationf("account amounts must be non-negative numbers")
	}
	method, err := normalizePaymentMethod(entry.PaymentMethod)
	if err != nil {
		return err
	}
	entry.PaymentMethod = method
	return s.Store.Accounts().Insert(ctx, entry)
}

func (s *AccountService) List(ctx context.Context, search string) ([]models.AccountEntry, error) {
	var entries []models.AccountEntry
	err := readWithRetry(ctx, func() error {
		var err error
		entries, err = s.Store.Accounts().List(ctx, repository.AccountFilter{Search: search})
		return err
	})
	if entries == nil {
		entries = []models.AccountEntry{}
	}
	return entries, err
}

func (s *AccountService) Revenue(ctx context.Context, search string) (RevenueSummary, error) {
	entries, err := s.List(ctx, search)
	if err != nil {
		return RevenueSummary{}, err
	}
	sum := RevenueSummary{Count: len(entries), Entries: entries}
	for _, e := range entries {
		sum.Total += e.TotalAmount
	}
	sum.Total = pricing.Round2(sum.Total)
	if sum.Count > 0 {
		sum.Average = pricing.Round2(sum.Total / float64(sum.Count))
	}
	return sum, nil
}

// GSTReport applies rate to every recorded amount; net income is revenue minus GST.
func (s *AccountService) GSTReport(ctx context.Context, rate float64) (GSTReport, error) {
	if !pricing.ValidAmount(rate) || rate > 100 {
		return GSTReport{}, validationf("gst rate must be between 0 and 100")
	}
	entries, err := s.List(ctx, "")
	if err != nil {
		return GSTReport{}, err
	}

	rep := GSTReport{Rate: rate, Rows: make([]GSTRow, 0, len(entries))}
	for _, e := range entries {
		g := pricing.GST(e.TotalAmount, rate)
		rep.TotalRevenue += e.TotalAmount
		rep.TotalGST += g
		rep.Rows = append(rep.Rows, GSTRow{EntryID: e.ID, GuestName: e.GuestName, Amount: e.TotalAmount, GST: g})
	}
	rep.TotalRevenue = pricing.Round2(rep.TotalRevenue)
	rep.TotalGST = pricing.Round2(rep.TotalGST)
	rep.NetIncome = pricing.Round2(rep.TotalRevenue - rep.TotalGST)
	return rep, nil
}
