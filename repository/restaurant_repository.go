// repository/restaurant_repository.go
package repository

import (
	"math"

	"github.com/devneill/dinnernotonyourown-10/entity"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RestaurantRepository struct {
	DB *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{DB: db}
}

// Upsert เขียนทับตาม place id — UPDATE ล้วน ๆ ไม่แตะกลุ่ม/สมาชิกที่ผูกอยู่
func (r *RestaurantRepository) Upsert(rest *entity.Restaurant) error {
	return r.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"name", "address", "cuisine_type", "price_level", "rating",
			"lat", "lng", "photo_url", "maps_url", "website_url", "updated_at",
		}),
	}).Create(rest).Error
}

// ดึงร้านตาม place id พร้อมกลุ่มและสมาชิก
func (r *RestaurantRepository) FindByID(id string) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	err := r.DB.
		Preload("DinnerGroups.Attendees").
		First(&rest, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &rest, nil
}

// FindByLocation กรองด้วย bounding box โดยประมาณ (1 องศา lat ≈ 111 km,
// ความกว้างองศา lng หดตาม cos ของ lat) — ไม่ใช่รัศมีวงกลมจริง จุดที่อยู่
// ในกล่องแต่นอกวงกลมก็หลุดมาได้ เป็น approximation ที่ตั้งใจ
func (r *RestaurantRepository) FindByLocation(lat, lng, radius, minRating float64, maxPrice int) ([]entity.Restaurant, error) {
	latDegrees := radius / 111000
	lngDegrees := radius / (111000 * math.Cos(lat*math.Pi/180))

	q := r.DB.
		Where("lat BETWEEN ? AND ?", lat-latDegrees, lat+latDegrees).
		Where("lng BETWEEN ? AND ?", lng-lngDegrees, lng+lngDegrees)

	if minRating > 0 {
		q = q.Where("rating >= ?", minRating)
	}
	if maxPrice > 0 {
		q = q.Where("price_level <= ?", maxPrice)
	}

	var rests []entity.Restaurant
	err := q.Preload("DinnerGroups.Attendees").Find(&rests).Error
	return rests, err
}
