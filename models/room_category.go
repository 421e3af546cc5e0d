package models

import (
	"time"
)

// RoomCategory carries the default daily rate copied onto rooms at provisioning.
type RoomCategory struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"uniqueIndex;size:50" json:"name"`
	BasePrice   float64 `json:"basePrice"`
	Description string  `gorm:"type:text" json:"description"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
