package main

import (
	"log"
	"strconv"

	"podium/config"
	"podium/controllers"
	"podium/routes"
	"podium/services"
	"podium/websocket"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load the configuration from the specified YAML file
	cfg, err := config.LoadConfig("./config/config.yml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	svc := services.NewPracticeService(cfg)
	defer svc.Close()

	router := setupRouter(svc)
	port := strconv.Itoa(cfg.Server.Port)
	log.Printf("Server starting on port %s (analyzer mode: %s)", port, svc.Mode())

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func setupRouter(svc *services.PracticeService) *gin.Engine {
	router := gin.Default()

	// Set trusted proxies (adjust as needed)
	router.SetTrustedProxies([]string{"127.0.0.1", "localhost"})

	// Configure CORS for the frontend dev server (e.g. localhost:5173 for Vite)
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))
	router.OPTIONS("/*path", func(c *gin.Context) { c.Status(204) })

	pc := controllers.NewPracticeController(svc)
	th := websocket.NewTimerHandler(svc)
	routes.SetupPracticeRoutes(router, pc, th)

	return router
}
