package entity

import (
	"time"
)

// DinnerGroup เกิดตอน join ครั้งแรก และต้องหายไปเมื่อสมาชิกคนสุดท้ายออก
// (no soft delete — an empty group must not linger in the table)
type DinnerGroup struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`

	RestaurantID string     `gorm:"not null;index" json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	Attendees []Attendee `json:"attendees"`
}
