package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"tourism-backend/config"
	"tourism-backend/controllers"
	"tourism-backend/routes"
	"tourism-backend/services"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}

	db, err := config.ConnectDatabase()
	if err != nil {
		log.Fatalf("❌ Database connect failed: %v", err)
	}
	log.Println("✅ Database connection established and migrations applied")

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	baseURL := config.EnvOrDefault("PUBLIC_BASE_URL", "http://localhost:"+port)

	// Initialize services
	hotelService := services.NewHotelService(db)
	hotelQueryService := services.NewHotelQueryService(db, baseURL)
	roomService := services.NewRoomService(db)
	lookupService := services.NewLookupService(db)

	// Initialize controllers
	hotelController := controllers.NewHotelController(hotelService, hotelQueryService, lookupService)
	roomController := controllers.NewRoomController(roomService)
	lookupController := controllers.NewLookupController(lookupService)

	router := routes.SetupRouter(hotelController, roomController, lookupController)

	addr := ":" + port
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
		// useful timeouts
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("🚀 Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe(): %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with timeout
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("⚠️  Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
