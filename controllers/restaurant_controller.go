// controllers/restaurant_controller.go
package controllers

import (
	"errors"
	"log"

	"github.com/devneill/dinnernotonyourown-10/pkg/resp"
	"github.com/devneill/dinnernotonyourown-10/places"
	"github.com/devneill/dinnernotonyourown-10/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type RestaurantController struct {
	Places  *services.PlacesService
	Service *services.RestaurantService
	Groups  *services.DinnerGroupService
}

func NewRestaurantController(placesSvc *services.PlacesService, restSvc *services.RestaurantService, groupSvc *services.DinnerGroupService) *RestaurantController {
	return &RestaurantController{Places: placesSvc, Service: restSvc, Groups: groupSvc}
}

type locationQuery struct {
	Lat       float64 `form:"lat" binding:"required,gte=-90,lte=90"`
	Lng       float64 `form:"lng" binding:"required,gte=-180,lte=180"`
	Radius    int     `form:"radius" binding:"omitempty,gt=0"`
	MinRating float64 `form:"minRating" binding:"omitempty,gte=0,lte=5"`
	MaxPrice  int     `form:"maxPrice" binding:"omitempty,gte=1,lte=4"`
	Keyword   string  `form:"keyword"`
}

// ====== ค้นร้านใกล้ตัวผ่าน Google (upsert ลง DB ให้ด้วย) ======
func (ctl *RestaurantController) Nearby(c *gin.Context) {
	var q locationQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		resp.BadRequest(c, "invalid search parameters")
		return
	}

	rests, err := ctl.Places.NearbyRestaurants(c.Request.Context(), services.NearbySearchParams{
		Lat:       q.Lat,
		Lng:       q.Lng,
		Radius:    q.Radius,
		MaxPrice:  q.MaxPrice,
		Keyword:   q.Keyword,
		MinRating: q.MinRating,
	})
	if err != nil {
		var remoteErr *places.RemoteServiceError
		if errors.As(err, &remoteErr) {
			log.Printf("places upstream failed: %v", err)
			resp.BadGateway(c, "places service unavailable")
			return
		}
		log.Printf("nearby search failed: %v", err)
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, rests)
}

// ====== ดูร้านที่เก็บไว้แล้วตามพิกัด ======
func (ctl *RestaurantController) List(c *gin.Context) {
	var q locationQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		resp.BadRequest(c, "invalid search parameters")
		return
	}

	rests, err := ctl.Service.ListByLocation(services.LocationQuery{
		Lat:       q.Lat,
		Lng:       q.Lng,
		Radius:    float64(q.Radius),
		MinRating: q.MinRating,
		MaxPrice:  q.MaxPrice,
	})
	if err != nil {
		log.Printf("list restaurants failed: %v", err)
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, rests)
}

// ====== ดูร้านเดี่ยว ======
func (ctl *RestaurantController) Detail(c *gin.Context) {
	r, err := ctl.Service.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "restaurant not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, r)
}

// ====== กลุ่มกินข้าวของร้านนี้ ======
func (ctl *RestaurantController) DinnerGroups(c *gin.Context) {
	groups, err := ctl.Groups.ListByRestaurant(c.Param("id"))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, groups)
}
