package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCacheKeyDeterministic(t *testing.T) {
	a := NearbySearchParams{Lat: 37.7749, Lng: -122.4194, Radius: 2000, Type: "restaurant", MaxPrice: 3, Keyword: "pizza"}
	// field คนละลำดับ ค่าเท่ากัน — key ต้องตรงกัน
	b := NearbySearchParams{Keyword: "pizza", MaxPrice: 3, Type: "restaurant", Radius: 2000, Lng: -122.4194, Lat: 37.7749}

	assert.Equal(t, a.cacheKey(), b.cacheKey())
}

func TestCacheKeyIgnoresMinRating(t *testing.T) {
	a := NearbySearchParams{Lat: 1, Lng: 2, Radius: 2000}
	b := a
	b.MinRating = 4.5

	// MinRating เป็น post-filter — ใช้ cache entry เดิม
	assert.Equal(t, a.cacheKey(), b.cacheKey())
}

func TestCacheKeySeparatesDifferentSearches(t *testing.T) {
	a := NearbySearchParams{Lat: 1, Lng: 2, Radius: 2000}
	b := a
	b.Keyword = "ramen"
	c := a
	c.Radius = 500

	assert.NotEqual(t, a.cacheKey(), b.cacheKey())
	assert.NotEqual(t, a.cacheKey(), c.cacheKey())
}

func TestExtractCuisineType(t *testing.T) {
	tests := []struct {
		name  string
		types []string
		want  string
	}{
		{"first match wins", []string{"italian_restaurant", "cafe"}, "Italian"},
		{"skips unknown prefix types", []string{"point_of_interest", "thai_restaurant"}, "Thai"},
		{"generic restaurant maps to Other", []string{"restaurant"}, "Other"},
		{"no match at all", []string{"park"}, "Other"},
		{"empty", nil, "Other"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractCuisineType(tt.types))
		})
	}
}
