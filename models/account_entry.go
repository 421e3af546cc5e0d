package models

import (
	"time"

	"gorm.io/datatypes"
)

const DefaultPaymentMethod = "cash"

var PaymentMethods = []string{"cash", "card", "upi", "bank_transfer"}

// AccountEntry is the finance record written after a checkout.
type AccountEntry struct {
	ID uint `gorm:"primaryKey" json:"id"`

	StayID    uint           `gorm:"index;column:guest_id" json:"guestId"`
	GuestName string         `gorm:"size:255" json:"guestName"`
	RoomID    uint           `gorm:"index;column:room_id" json:"roomId"`
	RoomIDs   datatypes.JSON `gorm:"column:room_ids" json:"roomIds,omitempty"`

	BaseAmount    float64 `gorm:"column:base_amount" json:"baseAmount"`
	ExtraHours    int     `gorm:"column:extra_hours" json:"extraHours"`
	ExtraCharge   float64 `gorm:"column:extra_charge" json:"extraCharge"`
	GSTAmount     float64 `gorm:"column:gst_amount" json:"gstAmount"`
	TotalAmount   float64 `gorm:"column:total_amount" json:"totalAmount"`
	PaymentMethod string  `gorm:"column:payment_method;size:32" json:"paymentMethod"`

	Breakdown datatypes.JSON `gorm:"column:breakdown" json:"breakdown,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}
