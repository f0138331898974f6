package routes

import (
	"Quizdom/controllers"
	"Quizdom/services/game"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, svc *game.Service) {
	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/")

	api.GET("/ping", controllers.Ping)

	api.POST("/create-room", controllers.CreateRoom(svc))

	api.POST("/join-room/:room_id", controllers.JoinRoom(svc))

	api.POST("/start-quiz", controllers.StartQuiz(svc))

	api.GET("/room-status/:room_id", controllers.GetRoomStatus(svc))

	api.POST("/update-score", controllers.UpdateScore(svc))

	api.POST("/submit-answer", controllers.SubmitAnswer(svc))

	api.GET("/leaderboard/:room_id", controllers.GetLeaderboard(svc))
}
