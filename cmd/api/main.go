package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/tracking-jobs/backend/internal/database"
	"github.com/tracking-jobs/backend/internal/handlers"
	"github.com/tracking-jobs/backend/internal/services"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}

	// 2. Database Connection + Migrations
	db := database.Connect()

	// 3. Optional AI Extractor
	// The server runs fine without it; /jobs/extract reports unavailable.
	llmService, err := services.NewLLMService(context.Background())
	if err != nil {
		log.Printf("⚠️  AI extractor disabled: %v", err)
		llmService = nil
	} else {
		log.Println("✅ Gemini extractor connected successfully.")
	}

	// 4. Router, CORS & Routes
	r := handlers.NewRouter(db, llmService)

	// 5. Serve
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🚀 Server starting on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
