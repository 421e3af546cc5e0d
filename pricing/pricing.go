// Package pricing holds the stay cost and late checkout arithmetic.
// Everything here is pure: callers pass "now" explicitly.
package pricing

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultHourlyLateFee = 200.0
	DefaultGSTRate       = 18.0
	DefaultRoomCount     = 33
)

// BasePrices is the per-day rate of each room category at provisioning time.
var BasePrices = map[string]float64{
	"Deluxe":    2800,
	"Executive": 4500,
	"Suite":     6800,
}

var ErrInvalidAmount = errors.New("invalid_amount")

// Extra is the late checkout computation for one stay.
type Extra struct {
	BookedHours int     `json:"bookedHours"`
	HoursStayed int     `json:"hoursStayed"`
	ExtraHours  int     `json:"extraHours"`
	ExtraCharge float64 `json:"extraCharge"`
}

// RoomTotal sums the daily rates and multiplies by days (at least 1).
func RoomTotal(pricesPerDay []float64, days int) float64 {
	if days < 1 {
		days = 1
	}
	sum := 0.0
	for _, p := range pricesPerDay {
		if math.IsNaN(p) || math.IsInf(p, 0) {
			continue
		}
		sum += p
	}
	return sum * float64(days)
}

// HoursSince counts every started hour between t and now as a full hour.
func HoursSince(t, now time.Time) int {
	if t.IsZero() || !now.After(t) {
		return 0
	}
	return int(math.Ceil(now.Sub(t).Hours()))
}

func ExtraCharge(checkIn time.Time, bookedDays int, now time.Time, hourlyFee float64) Extra {
	if bookedDays < 1 {
		bookedDays = 1
	}
	if math.IsNaN(hourlyFee) || hourlyFee < 0 {
		hourlyFee = 0
	}

	stayed := HoursSince(checkIn, now)
	booked := bookedDays * 24
	extra := stayed - booked
	if extra < 0 {
		extra = 0
	}

	return Extra{
		BookedHours: booked,
		HoursStayed: stayed,
		ExtraHours:  extra,
		ExtraCharge: float64(extra) * hourlyFee,
	}
}

// ParseOverride reads an operator-typed amount. Blank input and non-positive
// values mean "no override"; anything that is not a number is rejected.
func ParseOverride(raw string) (*float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, fmt.Errorf("%w: %q is not a number", ErrInvalidAmount, raw)
	}
	if v <= 0 {
		return nil, nil
	}
	return &v, nil
}

// ValidAmount reports whether v can be used as a money override.
func ValidAmount(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}

func GST(amount, ratePercent float64) float64 {
	if ratePercent <= 0 || !ValidAmount(amount) {
		return 0
	}
	return Round2(amount * ratePercent / 100)
}

func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
