package main

import (
	"log"
	"net/http"
	"os"

	"rentwheels/internal/config"
	"rentwheels/internal/logger"
	"rentwheels/internal/middleware"
	"rentwheels/internal/routes"
)

func main() {
	// Initialize structured logging to file
	logger.Setup()

	// Connect to the database; the handle is injected into the router wiring
	db := config.InitDB()

	r := routes.SetupRouter(db)

	// Wrap with CORS
	handler := middleware.EnableCORS(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Println("🚀 Server running at :" + port)
	log.Fatal(http.ListenAndServe("0.0.0.0:"+port, handler))
}
