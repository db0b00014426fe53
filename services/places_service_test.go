package services_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/devneill/dinnernotonyourown-10/entity"
	"github.com/devneill/dinnernotonyourown-10/places"
	"github.com/devneill/dinnernotonyourown-10/repository"
	"github.com/devneill/dinnernotonyourown-10/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const nearbyFixture = `{"status":"OK","results":[
	{"place_id":"abc123","name":"Trattoria Uno","vicinity":"1 Via Roma",
	 "types":["italian_restaurant","restaurant"],"price_level":2,"rating":4.5,
	 "geometry":{"location":{"lat":37.7751,"lng":-122.4183}},
	 "photos":[{"photo_reference":"photoref1"}]},
	{"place_id":"def456","name":"Mystery Diner","vicinity":"2 Main St",
	 "types":["point_of_interest"],"rating":3,
	 "geometry":{"location":{"lat":37.7747,"lng":-122.4201}}}
]}`

const detailsFixture = `{"status":"OK","result":{"website":"https://trattoria.example","url":"https://maps.google.com/?cid=1"}}`

type placesEnv struct {
	db         *gorm.DB
	svc        *services.PlacesService
	nearbyHits int
	detailHits int
	lastQuery  url.Values

	nearbyBody  string
	detailsBody string
}

func newPlacesEnv(t *testing.T) *placesEnv {
	t.Helper()

	env := &placesEnv{
		db:          setupTestDB(t),
		nearbyBody:  nearbyFixture,
		detailsBody: detailsFixture,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/nearbysearch/json", func(w http.ResponseWriter, r *http.Request) {
		env.nearbyHits++
		env.lastQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(env.nearbyBody))
	})
	mux.HandleFunc("/details/json", func(w http.ResponseWriter, r *http.Request) {
		env.detailHits++
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(env.detailsBody))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	client := places.NewClient("test-key")
	client.BaseURL = srv.URL
	env.svc = services.NewPlacesService(client, repository.NewRestaurantRepository(env.db))
	return env
}

func (e *placesEnv) search(t *testing.T, p services.NearbySearchParams) []entity.Restaurant {
	t.Helper()
	rests, err := e.svc.NearbyRestaurants(context.Background(), p)
	require.NoError(t, err)
	return rests
}

func baseParams() services.NearbySearchParams {
	return services.NearbySearchParams{Lat: 37.7749, Lng: -122.4194, Radius: 2000}
}

func TestNearbyRestaurantsNormalizesAndStores(t *testing.T) {
	env := newPlacesEnv(t)

	rests := env.search(t, baseParams())
	require.Len(t, rests, 2)

	r := rests[0]
	assert.Equal(t, "abc123", r.ID)
	assert.Equal(t, "Trattoria Uno", r.Name)
	assert.Equal(t, "1 Via Roma", r.Address)
	assert.Equal(t, "Italian", r.CuisineType)
	assert.Equal(t, 2, r.PriceLevel)
	assert.Equal(t, 4.5, r.Rating)
	assert.Contains(t, r.MapsURL, "abc123")
	assert.Contains(t, r.PhotoURL, "maxwidth=400")
	assert.Contains(t, r.PhotoURL, "photoref1")
	assert.Equal(t, "https://trattoria.example", r.WebsiteURL)

	// type ที่ไม่อยู่ในตาราง + ไม่มี price → Other / 0
	assert.Equal(t, "Other", rests[1].CuisineType)
	assert.Equal(t, 0, rests[1].PriceLevel)
	assert.Empty(t, rests[1].PhotoURL)

	var stored int64
	require.NoError(t, env.db.Model(&entity.Restaurant{}).Count(&stored).Error)
	assert.EqualValues(t, 2, stored)
}

func TestNearbyRestaurantsServedFromCache(t *testing.T) {
	env := newPlacesEnv(t)

	env.search(t, baseParams())
	env.search(t, baseParams())
	assert.Equal(t, 1, env.nearbyHits)

	// parameter ต่างกันคือคนละ entry
	p := baseParams()
	p.Keyword = "pizza"
	env.search(t, p)
	assert.Equal(t, 2, env.nearbyHits)
}

func TestRepeatedSearchUpsertsWithoutDuplicates(t *testing.T) {
	env := newPlacesEnv(t)
	env.search(t, baseParams())

	// service ใหม่ = cache เปล่า → fetch + upsert รอบสอง
	client := places.NewClient("test-key")
	client.BaseURL = env.svc.Client.BaseURL
	fresh := services.NewPlacesService(client, repository.NewRestaurantRepository(env.db))
	_, err := fresh.NearbyRestaurants(context.Background(), baseParams())
	require.NoError(t, err)
	assert.Equal(t, 2, env.nearbyHits)

	var stored int64
	require.NoError(t, env.db.Model(&entity.Restaurant{}).Count(&stored).Error)
	assert.EqualValues(t, 2, stored)
}

func TestDetailFailureDegradesSinglePlaceOnly(t *testing.T) {
	env := newPlacesEnv(t)
	env.detailsBody = `{"status":"NOT_FOUND"}`

	rests := env.search(t, baseParams())
	require.Len(t, rests, 2)
	assert.Empty(t, rests[0].WebsiteURL)
	assert.Equal(t, "Italian", rests[0].CuisineType)
}

func TestNearbyRestaurantsRemoteError(t *testing.T) {
	env := newPlacesEnv(t)
	env.nearbyBody = `{"status":"REQUEST_DENIED"}`

	_, err := env.svc.NearbyRestaurants(context.Background(), baseParams())
	var remoteErr *places.RemoteServiceError
	require.ErrorAs(t, err, &remoteErr)
	assert.Equal(t, "REQUEST_DENIED", remoteErr.Status)
}

func TestNearbyRestaurantsZeroResults(t *testing.T) {
	env := newPlacesEnv(t)
	env.nearbyBody = `{"status":"ZERO_RESULTS"}`

	rests := env.search(t, baseParams())
	assert.Empty(t, rests)
}

func TestMinRatingFilteredAfterFetch(t *testing.T) {
	env := newPlacesEnv(t)

	p := baseParams()
	p.MinRating = 4
	rests := env.search(t, p)
	require.Len(t, rests, 1)
	assert.Equal(t, "abc123", rests[0].ID)

	// ทั้งสองร้านอยู่ใน cache entry เดียวกัน — filter ไม่ไปถึง Google
	assert.Equal(t, 1, env.nearbyHits)
	assert.Empty(t, env.lastQuery.Get("minrating"))
}

func TestMaxPriceImpliesMinPrice(t *testing.T) {
	env := newPlacesEnv(t)

	p := baseParams()
	p.MaxPrice = 3
	env.search(t, p)

	assert.Equal(t, "1", env.lastQuery.Get("minprice"))
	assert.Equal(t, "3", env.lastQuery.Get("maxprice"))
	assert.Equal(t, "2000", env.lastQuery.Get("radius"))
	assert.Equal(t, "restaurant", env.lastQuery.Get("type"))
}
