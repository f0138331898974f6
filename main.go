package main

import (
	"log"
	"os"

	"Quizdom/config"
	_ "Quizdom/config/swagger"
	"Quizdom/middleware"
	"Quizdom/routes"
	"Quizdom/services/game"
	"Quizdom/services/questions"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

// @title Quizdom API
// @version 1.0
// @description Gin-Gonic server for the Quizdom multiplayer trivia-room API
// @BasePath /
func main() {
	godotenv.Load()
	log.Println("Setting up server...")

	if os.Getenv("PROD") == "true" {
		gin.SetMode(gin.ReleaseMode)
	}

	store, err := config.NewSnapshotStore()
	if err != nil {
		log.Fatalf("Error setting up snapshot store: %v", err)
	}

	provider := questions.NewOpenRouterProvider(os.Getenv("OPENROUTER_API_KEY"))
	if model := os.Getenv("OPENROUTER_MODEL"); model != "" {
		provider.Model = model
	}

	svc, err := game.NewService(store, provider)
	if err != nil {
		log.Fatalf("Error loading game state: %v", err)
	}

	r := gin.Default()

	middleware.SetUpMiddleware(r)

	routes.SetupRoutes(r, svc)

	// Configure port
	port := os.Getenv("PORT")
	if port == "" && os.Getenv("USE_HTTPS") == "true" {
		port = "443"
	} else if port == "" {
		port = "8080"
	}

	if os.Getenv("USE_HTTPS") == "true" {
		certFile := os.Getenv("CERT_FILE")
		keyFile := os.Getenv("KEY_FILE")

		if err := r.RunTLS(":"+port, certFile, keyFile); err != nil {
			log.Fatalf("Error starting server: %v", err)
		}
	} else {
		if err := r.Run(":" + port); err != nil {
			log.Fatalf("Error starting server: %v", err)
		}
	}
}
