package models

import (
	"time"
)

type StayStatus string

const (
	StayCheckedIn  StayStatus = "checked-in"
	StayCheckedOut StayStatus = "checked-out"
)

// Stay is one guest's occupancy across one or more rooms. Rows are never deleted.
type Stay struct {
	ID uint `gorm:"primaryKey" json:"id"`

	GuestName    string `gorm:"size:255" json:"guestName"`
	GuestAddress string `gorm:"type:text" json:"guestAddress"`
	IDProof      string `gorm:"column:id_proof;size:255" json:"idProof"`

	Rooms []StayRoom `gorm:"foreignKey:StayID" json:"rooms"`

	CheckInAt      time.Time  `gorm:"column:check_in_at" json:"checkInAt"`
	BookedDays     int        `gorm:"column:booked_days" json:"bookedDays"`
	BaseAmount     float64    `gorm:"column:base_amount" json:"baseAmount"`
	BaseOverridden bool       `gorm:"column:base_overridden;default:false" json:"baseOverridden"`
	Status         StayStatus `gorm:"column:status;type:varchar(20);index" json:"status"`

	CheckOutAt    *time.Time `gorm:"column:check_out_at" json:"checkOutAt,omitempty"`
	ExtraHours    int        `gorm:"column:extra_hours" json:"extraHours"`
	ExtraCharge   float64    `gorm:"column:extra_charge" json:"extraCharge"`
	TotalCharge   float64    `gorm:"column:total_charge" json:"totalCharge"`
	GSTAmount     float64    `gorm:"column:gst_amount" json:"gstAmount"`
	GSTIN         string     `gorm:"column:gstin;size:20" json:"gstin,omitempty"`
	PaymentMethod string     `gorm:"column:payment_method;size:32" json:"paymentMethod,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// StayRoom fixes a room into a stay, in check-in order, with the rate it was sold at.
type StayRoom struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	StayID      uint    `gorm:"index;column:stay_id" json:"stayId"`
	RoomID      uint    `gorm:"index;column:room_id" json:"roomId"`
	Position    int     `gorm:"column:position" json:"position"`
	PricePerDay float64 `gorm:"column:price_per_day" json:"pricePerDay"`

	Room Room `gorm:"foreignKey:RoomID;references:ID" json:"room,omitempty"`
}

func (s Stay) RoomIDs() []uint {
	ids := make([]uint, 0, len(s.Rooms))
	for _, r := range s.Rooms {
		ids = append(ids, r.RoomID)
	}
	return ids
}

func (s Stay) Active() bool {
	return s.Status == StayCheckedIn
}
