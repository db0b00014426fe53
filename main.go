package main

import (
	"fmt"
	"log"

	"github.com/devneill/dinnernotonyourown-10/configs"
	"github.com/devneill/dinnernotonyourown-10/middlewares"
	"github.com/devneill/dinnernotonyourown-10/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg)
	db := configs.DB()

	// migrate
	configs.SetupDatabase()

	// HTTP
	r := gin.Default()

	// ✅ Enable CORS
	r.Use(middlewares.CORSMiddleware())

	// ✅ Register API routes
	routes.RegisterRoutes(r, db, cfg)

	// ✅ Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("🚀 Server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
