package places

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const (
	defaultBaseURL = "https://maps.googleapis.com/maps/api/place"
	photoMaxWidth  = "400"

	StatusOK          = "OK"
	StatusZeroResults = "ZERO_RESULTS"
)

// RemoteServiceError สถานะไม่ OK จาก Google Places (หรือ transport พัง)
type RemoteServiceError struct {
	Status string
	Err    error
}

func (e *RemoteServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("google places: %s: %v", e.Status, e.Err)
	}
	return "google places: " + e.Status
}

func (e *RemoteServiceError) Unwrap() error { return e.Err }

// Client เรียก Google Places Web Service
// BaseURL เปลี่ยนได้สำหรับ test (httptest)
type Client struct {
	APIKey  string
	BaseURL string
	HTTP    *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		APIKey:  apiKey,
		BaseURL: defaultBaseURL,
		HTTP:    &http.Client{Timeout: 10 * time.Second},
	}
}

type NearbySearchRequest struct {
	Lat      float64
	Lng      float64
	Radius   int
	Type     string
	MinPrice int // 0 = not set
	MaxPrice int // 0 = not set
	Keyword  string
}

type Place struct {
	PlaceID    string   `json:"place_id"`
	Name       string   `json:"name"`
	Vicinity   string   `json:"vicinity"`
	Types      []string `json:"types"`
	PriceLevel int      `json:"price_level"`
	Rating     float64  `json:"rating"`
	Geometry   struct {
		Location struct {
			Lat float64 `json:"lat"`
			Lng float64 `json:"lng"`
		} `json:"location"`
	} `json:"geometry"`
	Photos []struct {
		PhotoReference string `json:"photo_reference"`
	} `json:"photos"`
}

type Details struct {
	Website string `json:"website"`
	URL     string `json:"url"`
}

type nearbyResponse struct {
	Status  string  `json:"status"`
	Results []Place `json:"results"`
}

type detailsResponse struct {
	Status string  `json:"status"`
	Result Details `json:"result"`
}

// NearbySearch ค้นหาร้านรอบจุดที่กำหนด
func (c *Client) NearbySearch(ctx context.Context, req NearbySearchRequest) ([]Place, error) {
	q := url.Values{}
	q.Set("location", formatFloat(req.Lat)+","+formatFloat(req.Lng))
	q.Set("radius", strconv.Itoa(req.Radius))
	if req.Type != "" {
		q.Set("type", req.Type)
	}
	if req.MinPrice > 0 {
		q.Set("minprice", strconv.Itoa(req.MinPrice))
	}
	if req.MaxPrice > 0 {
		q.Set("maxprice", strconv.Itoa(req.MaxPrice))
	}
	if req.Keyword != "" {
		q.Set("keyword", req.Keyword)
	}
	q.Set("key", c.APIKey)

	var out nearbyResponse
	if err := c.getJSON(ctx, "/nearbysearch/json", q, &out); err != nil {
		return nil, err
	}
	if out.Status != StatusOK && out.Status != StatusZeroResults {
		return nil, &RemoteServiceError{Status: out.Status}
	}
	return out.Results, nil
}

// Details ดึง website/url ของร้าน (field อื่นไม่ขอ ประหยัดโควต้า)
func (c *Client) Details(ctx context.Context, placeID string) (Details, error) {
	q := url.Values{}
	q.Set("place_id", placeID)
	q.Set("fields", "website,url")
	q.Set("key", c.APIKey)

	var out detailsResponse
	if err := c.getJSON(ctx, "/details/json", q, &out); err != nil {
		return Details{}, err
	}
	if out.Status != StatusOK {
		return Details{}, &RemoteServiceError{Status: out.Status}
	}
	return out.Result, nil
}

// PhotoURL สร้างลิงก์รูปจาก photo_reference — ไม่ต้องยิง API
func (c *Client) PhotoURL(photoReference string) string {
	q := url.Values{}
	q.Set("maxwidth", photoMaxWidth)
	q.Set("photo_reference", photoReference)
	q.Set("key", c.APIKey)
	return c.BaseURL + "/photo?" + q.Encode()
}

// MapsURL ลิงก์ Google Maps ของร้าน
func MapsURL(placeID string) string {
	return "https://www.google.com/maps/place/?q=place_id:" + placeID
}

func (c *Client) getJSON(ctx context.Context, path string, q url.Values, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return err
	}
	res, err := c.HTTP.Do(req)
	if err != nil {
		return &RemoteServiceError{Status: "TRANSPORT_ERROR", Err: err}
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return &RemoteServiceError{Status: res.Status}
	}
	if err := json.NewDecoder(res.Body).Decode(v); err != nil {
		return &RemoteServiceError{Status: "BAD_RESPONSE", Err: err}
	}
	return nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
