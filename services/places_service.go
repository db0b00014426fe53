// services/places_service.go
package services

import (
	"context"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/devneill/dinnernotonyourown-10/entity"
	"github.com/devneill/dinnernotonyourown-10/pkg/cache"
	"github.com/devneill/dinnernotonyourown-10/places"
	"github.com/devneill/dinnernotonyourown-10/repository"

	bcache "github.com/bool64/cache"
)

const (
	defaultRadius    = 2000 // meters
	defaultPlaceType = "restaurant"

	searchCacheTTL   = 24 * time.Hour
	searchCacheSWR   = 1 * time.Hour
	searchCacheItems = 512

	detailCacheTTL   = 7 * 24 * time.Hour
	detailCacheItems = 4096
)

// Google place type → ชื่อ cuisine ที่โชว์ (ไม่เจอ = Other)
var cuisineTypeMap = map[string]string{
	"restaurant":            "Other",
	"cafe":                  "Cafe",
	"bar":                   "Bar",
	"meal_takeaway":         "Takeaway",
	"meal_delivery":         "Delivery",
	"bakery":                "Bakery",
	"food":                  "Other",
	"japanese_restaurant":   "Japanese",
	"chinese_restaurant":    "Chinese",
	"italian_restaurant":    "Italian",
	"mexican_restaurant":    "Mexican",
	"thai_restaurant":       "Thai",
	"indian_restaurant":     "Indian",
	"vietnamese_restaurant": "Vietnamese",
	"korean_restaurant":     "Korean",
	"french_restaurant":     "French",
	"american_restaurant":   "American",
	"steakhouse":            "Steakhouse",
	"seafood_restaurant":    "Seafood",
	"sushi_restaurant":      "Sushi",
	"pizza_restaurant":      "Pizza",
	"fast_food_restaurant":  "Fast Food",
	"vegetarian_restaurant": "Vegetarian",
	"vegan_restaurant":      "Vegan",
}

type NearbySearchParams struct {
	Lat       float64
	Lng       float64
	Radius    int     // 0 = default 2000
	Type      string  // "" = restaurant
	MinPrice  int     // 0 = not set
	MaxPrice  int     // 0 = not set
	Keyword   string
	MinRating float64 // กรองฝั่งเราหลัง normalize — Google ไม่มี filter นี้
}

// cacheKey — field ถูก serialize ตามลำดับตายตัว parameter ชุดเดียวกัน
// ได้ key เดียวกันเสมอ (MinRating ไม่อยู่ใน key เพราะเป็น post-filter)
func (p NearbySearchParams) cacheKey() []byte {
	var b strings.Builder
	b.WriteString("nearby-restaurants:")
	b.WriteString(strconv.FormatFloat(p.Lat, 'f', -1, 64))
	b.WriteString(",")
	b.WriteString(strconv.FormatFloat(p.Lng, 'f', -1, 64))
	b.WriteString("|r=")
	b.WriteString(strconv.Itoa(p.Radius))
	b.WriteString("|t=")
	b.WriteString(p.Type)
	b.WriteString("|p=")
	b.WriteString(strconv.Itoa(p.MinPrice))
	b.WriteString("-")
	b.WriteString(strconv.Itoa(p.MaxPrice))
	b.WriteString("|k=")
	b.WriteString(p.Keyword)
	return []byte(b.String())
}

// PlacesService ดึงร้านจาก Google ผ่าน cache แล้ว upsert ลง DB
type PlacesService struct {
	Client *places.Client
	Repo   *repository.RestaurantRepository

	searchCache *bcache.FailoverOf[[]entity.Restaurant]
	detailCache *bcache.FailoverOf[places.Details]
}

func NewPlacesService(client *places.Client, repo *repository.RestaurantRepository) *PlacesService {
	return &PlacesService{
		Client: client,
		Repo:   repo,
		searchCache: cache.New[[]entity.Restaurant](cache.Options{
			Name:         "nearby-restaurants",
			TTL:          searchCacheTTL,
			MaxStaleness: searchCacheSWR,
			MaxItems:     searchCacheItems,
		}),
		detailCache: cache.New[places.Details](cache.Options{
			Name:       "place-details",
			TTL:        detailCacheTTL,
			MaxItems:   detailCacheItems,
			SyncUpdate: true, // ไม่มี stale-while-revalidate ฝั่ง details
		}),
	}
}

// NearbyRestaurants คืนร้านใกล้จุดที่ขอ (cache ก่อน ไม่มีค่อยยิง Google)
func (s *PlacesService) NearbyRestaurants(ctx context.Context, p NearbySearchParams) ([]entity.Restaurant, error) {
	if p.Radius <= 0 {
		p.Radius = defaultRadius
	}
	if p.Type == "" {
		p.Type = defaultPlaceType
	}
	if p.MaxPrice > 0 && p.MinPrice == 0 {
		p.MinPrice = 1 // มี max ต้องมี min ให้ price band ครบ
	}

	rests, err := s.searchCache.Get(ctx, p.cacheKey(), func(ctx context.Context) ([]entity.Restaurant, error) {
		return s.fetchAndStore(ctx, p)
	})
	if err != nil {
		return nil, err
	}

	if p.MinRating > 0 {
		filtered := make([]entity.Restaurant, 0, len(rests))
		for _, r := range rests {
			if r.Rating >= p.MinRating {
				filtered = append(filtered, r)
			}
		}
		rests = filtered
	}
	return rests, nil
}

func (s *PlacesService) fetchAndStore(ctx context.Context, p NearbySearchParams) ([]entity.Restaurant, error) {
	found, err := s.Client.NearbySearch(ctx, places.NearbySearchRequest{
		Lat:      p.Lat,
		Lng:      p.Lng,
		Radius:   p.Radius,
		Type:     p.Type,
		MinPrice: p.MinPrice,
		MaxPrice: p.MaxPrice,
		Keyword:  p.Keyword,
	})
	if err != nil {
		return nil, err
	}

	rests := make([]entity.Restaurant, 0, len(found))
	for _, pl := range found {
		details, err := s.placeDetails(ctx, pl.PlaceID)
		if err != nil {
			// details พังร้านเดียว อย่าลาก batch ทั้งชุดพังตาม
			log.Printf("place details %s failed: %v", pl.PlaceID, err)
			details = places.Details{}
		}

		rest := entity.Restaurant{
			ID:          pl.PlaceID,
			Name:        pl.Name,
			Address:     pl.Vicinity,
			CuisineType: extractCuisineType(pl.Types),
			PriceLevel:  pl.PriceLevel,
			Rating:      pl.Rating,
			Lat:         pl.Geometry.Location.Lat,
			Lng:         pl.Geometry.Location.Lng,
			MapsURL:     places.MapsURL(pl.PlaceID),
			WebsiteURL:  details.Website,
		}
		if len(pl.Photos) > 0 {
			rest.PhotoURL = s.Client.PhotoURL(pl.Photos[0].PhotoReference)
		}

		if err := s.Repo.Upsert(&rest); err != nil {
			return nil, err
		}
		rests = append(rests, rest)
	}
	return rests, nil
}

func (s *PlacesService) placeDetails(ctx context.Context, placeID string) (places.Details, error) {
	key := []byte("place-details:" + placeID)
	return s.detailCache.Get(ctx, key, func(ctx context.Context) (places.Details, error) {
		return s.Client.Details(ctx, placeID)
	})
}

// ไล่ type ตามลำดับจาก Google แล้วคืนตัวแรกที่อยู่ในตาราง
func extractCuisineType(types []string) string {
	for _, t := range types {
		if cuisine, ok := cuisineTypeMap[t]; ok {
			return cuisine
		}
	}
	return "Other"
}
