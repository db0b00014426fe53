// services/restaurant_service.go
package services

import (
	"github.com/devneill/dinnernotonyourown-10/entity"
	"github.com/devneill/dinnernotonyourown-10/repository"
)

// RestaurantService อ่านจาก DB อย่างเดียว — ของสดต้องผ่าน PlacesService
type RestaurantService struct {
	Repo *repository.RestaurantRepository
}

func NewRestaurantService(repo *repository.RestaurantRepository) *RestaurantService {
	return &RestaurantService{Repo: repo}
}

type LocationQuery struct {
	Lat       float64
	Lng       float64
	Radius    float64 // meters, 0 = default 2000
	MinRating float64 // 0 = not set
	MaxPrice  int     // 0 = not set
}

// ดึงร้านตามพิกัด (bounding box) + เงื่อนไข rating/ราคา
func (s *RestaurantService) ListByLocation(q LocationQuery) ([]entity.Restaurant, error) {
	if q.Radius <= 0 {
		q.Radius = defaultRadius
	}
	return s.Repo.FindByLocation(q.Lat, q.Lng, q.Radius, q.MinRating, q.MaxPrice)
}

// ดึงร้านเดี่ยวตาม place id
func (s *RestaurantService) Get(id string) (*entity.Restaurant, error) {
	return s.Repo.FindByID(id)
}
