package entity

import (
	"time"
)

// Restaurant ร้านจาก Google Places — ID คือ place_id (คงที่ข้าม refresh)
type Restaurant struct {
	ID          string  `gorm:"primaryKey" json:"id"`
	Name        string  `json:"name"`
	Address     string  `json:"address"`
	CuisineType string  `gorm:"not null;default:Other" json:"cuisineType"`
	PriceLevel  int     `json:"priceLevel"` // 0-4, 0 = unknown
	Rating      float64 `json:"rating"`     // 0 = unknown
	Lat         float64 `gorm:"index" json:"lat"`
	Lng         float64 `gorm:"index" json:"lng"`
	PhotoURL    string  `json:"photoUrl,omitempty"`
	MapsURL     string  `json:"mapsUrl"`
	WebsiteURL  string  `json:"websiteUrl,omitempty"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	// Relations — preload เฉพาะตอนจำเป็น
	DinnerGroups []DinnerGroup `json:"dinnerGroups,omitempty"`
}
