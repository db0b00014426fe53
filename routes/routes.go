package routes

import (
	"github.com/devneill/dinnernotonyourown-10/configs"
	"github.com/devneill/dinnernotonyourown-10/controllers"
	"github.com/devneill/dinnernotonyourown-10/middlewares"
	"github.com/devneill/dinnernotonyourown-10/places"
	"github.com/devneill/dinnernotonyourown-10/repository"
	"github.com/devneill/dinnernotonyourown-10/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	restRepo := repository.NewRestaurantRepository(db)
	groupRepo := repository.NewDinnerGroupRepository(db)

	// Services
	placesClient := places.NewClient(cfg.GooglePlacesAPIKey)
	placesSvc := services.NewPlacesService(placesClient, restRepo)
	restSvc := services.NewRestaurantService(restRepo)
	groupSvc := services.NewDinnerGroupService(db, groupRepo)

	// Controllers
	restCtrl := controllers.NewRestaurantController(placesSvc, restSvc, groupSvc)
	groupCtrl := controllers.NewDinnerGroupController(groupSvc)

	// Public/User
	r.GET("/restaurants", restCtrl.List)
	r.GET("/restaurants/:id", restCtrl.Detail)
	r.GET("/restaurants/:id/dinner-groups", restCtrl.DinnerGroups)

	// ต้องล็อกอิน
	auth := r.Group("/", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		auth.GET("/nearby-restaurants", restCtrl.Nearby)
		auth.POST("/dinner-groups", groupCtrl.Join)
		auth.DELETE("/dinner-groups/attendance", groupCtrl.Leave)
	}
}
