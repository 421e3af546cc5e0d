package models

import (
	"time"
)

type RoomStatus string

const (
	RoomFree         RoomStatus = "free"
	RoomOccupied     RoomStatus = "occupied"
	RoomMaintenance  RoomStatus = "maintenance"
	RoomHousekeeping RoomStatus = "housekeeping"
)

var RoomStatuses = []RoomStatus{RoomFree, RoomOccupied, RoomMaintenance, RoomHousekeeping}

func (s RoomStatus) Valid() bool {
	for _, v := range RoomStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// roomTransitions lists the allowed next states of each room status.
// occupied is only entered by check-in and only left by check-out.
var roomTransitions = map[RoomStatus][]RoomStatus{
	RoomFree:         {RoomOccupied, RoomMaintenance},
	RoomOccupied:     {RoomHousekeeping},
	RoomHousekeeping: {RoomFree, RoomMaintenance},
	RoomMaintenance:  {RoomFree},
}

func CanTransition(from, to RoomStatus) bool {
	for _, next := range roomTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// PredecessorsOf returns every status that may move to "to".
func PredecessorsOf(to RoomStatus) []RoomStatus {
	out := []RoomStatus{}
	for _, from := range RoomStatuses {
		if CanTransition(from, to) {
			out = append(out, from)
		}
	}
	return out
}

type Room struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	RoomNumber  string     `gorm:"column:room_number;uniqueIndex;type:varchar(50)" json:"roomNumber"`
	Category    string     `gorm:"column:category;type:varchar(50);index" json:"category"`
	PricePerDay float64    `gorm:"column:price_per_day" json:"pricePerDay"`
	Status      RoomStatus `gorm:"column:status;type:varchar(20);index;default:free" json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
