package routes

import (
	"podium/controllers"
	"podium/websocket"

	"github.com/gin-gonic/gin"
)

// SetupPracticeRoutes wires the practice flow onto the router
func SetupPracticeRoutes(router *gin.Engine, pc *controllers.PracticeController, th *websocket.TimerHandler) {
	app := router.Group("/app")
	{
		app.GET("/state", pc.GetAppState)
		app.POST("/navigate", pc.Navigate)
		app.POST("/mode", pc.SetMode)
	}

	practice := router.Group("/practice")
	{
		practice.POST("/start", pc.StartPractice)
		practice.POST("/timer/start", pc.StartTimer)
		practice.POST("/timer/stop", pc.StopTimer)
		practice.POST("/submit", pc.Submit)
	}

	router.GET("/session", pc.GetSession)
	router.GET("/ws/timer", th.Stream)
}
