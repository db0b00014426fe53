// controllers/dinner_group_controller.go
package controllers

import (
	"errors"
	"log"

	"github.com/devneill/dinnernotonyourown-10/pkg/resp"
	"github.com/devneill/dinnernotonyourown-10/services"
	"github.com/devneill/dinnernotonyourown-10/utils"

	"github.com/gin-gonic/gin"
)

type DinnerGroupController struct {
	Service *services.DinnerGroupService
}

func NewDinnerGroupController(s *services.DinnerGroupService) *DinnerGroupController {
	return &DinnerGroupController{Service: s}
}

type joinReq struct {
	RestaurantID string `json:"restaurantId" binding:"required"`
	Notes        string `json:"notes"`
}

// ====== Join สร้างกลุ่มใหม่ที่ร้านนั้น ======
func (ctl *DinnerGroupController) Join(c *gin.Context) {
	userID := utils.CurrentUserID(c)

	var req joinReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "invalid join parameters")
		return
	}

	group, err := ctl.Service.Join(userID, req.RestaurantID, req.Notes)
	if err != nil {
		if errors.Is(err, services.ErrAlreadyMember) {
			resp.Conflict(c, err.Error())
			return
		}
		log.Printf("join dinner group failed: %v", err)
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, group)
}

// ====== Leave ออกจากกลุ่มปัจจุบัน ======
func (ctl *DinnerGroupController) Leave(c *gin.Context) {
	userID := utils.CurrentUserID(c)

	att, err := ctl.Service.Leave(userID)
	if err != nil {
		if errors.Is(err, services.ErrNotMember) {
			resp.NotFound(c, err.Error())
			return
		}
		log.Printf("leave dinner group failed: %v", err)
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, att)
}
