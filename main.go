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

	"resort-backend/config"
	"resort-backend/controllers"
	"resort-backend/repository"
	"resort-backend/routes"
	"resort-backend/services"
	"resort-backend/validations"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}
	settings := config.LoadSettings()

	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("❌ Database connect failed: %v", err)
	}
	db := config.DB
	if db == nil {
		log.Fatal("❌ config.DB is nil after ConnectDatabase()")
	}
	if err := config.SeedDatabase(context.Background(), settings.RoomCount); err != nil {
		log.Fatalf("❌ %v", err)
	}
	log.Println("✅ Database connection established and migrations applied.")

	if err := validations.RegisterCustomValidators(); err != nil {
		log.Fatalf("❌ %v", err)
	}

	// Initialize services
	store := repository.NewGormStore(db)
	roomService := services.NewRoomService(store)
	stayService := services.NewStayService(store)
	accountService := services.NewAccountService(store)
	checkoutService := services.NewCheckoutService(store, accountService, settings.HourlyLateFee, settings.GSTRate)
	sessionService := services.NewSessionService(store, config.NewSelectionStore(context.Background(), settings), stayService)

	// Initialize controllers
	roomController := controllers.NewRoomController(roomService)
	sessionController := controllers.NewSessionController(sessionService)
	stayController := controllers.NewStayController(stayService, checkoutService)
	accountController := controllers.NewAccountController(accountService, settings.GSTRate)
	settingsController := controllers.NewSettingsController(services.NewSettingsService(store))

	router := routes.SetupRouter(roomController, sessionController, stayController, accountController, settingsController)

	addr := ":" + settings.Port
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
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
