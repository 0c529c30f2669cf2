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

	"xplore-backend/config"
	"xplore-backend/controllers"
	"xplore-backend/routes"
	"xplore-backend/services"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println(".env not found or couldn't load it; continuing with environment variables")
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("ERROR: JWT_SECRET environment variable is not set. Cannot sign admin sessions.")
	}

	// CRM endpoint is optional: without it leads are only persisted
	crmEndpoint := os.Getenv("CRM_WEBHOOK_URL")
	if crmEndpoint == "" {
		log.Println("CRM_WEBHOOK_URL not set; quote requests will not be forwarded")
	}

	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("Database connect failed: %v", err)
	}
	db := config.DB
	if db == nil {
		log.Fatal("config.DB is nil after ConnectDatabase()")
	}
	log.Println("Database connection established and migrations applied")

	storage := services.NewLocalStorage("uploads", "/uploads")

	// Initialize services
	spaceService := services.NewSpaceService(db, storage)
	propertyService := services.NewPropertyService(db)
	catalogService := services.NewCatalogService(db)
	leadService := services.NewLeadService(db, crmEndpoint)

	// Initialize controllers
	spaceController := controllers.NewSpaceController(spaceService, propertyService)
	propertyController := controllers.NewPropertyController(propertyService)
	catalogController := controllers.NewCatalogController(catalogService)
	quoteController := controllers.NewQuoteController(leadService)
	authController := controllers.NewAuthController(jwtSecret)

	router := routes.SetupRouter(
		spaceController,
		propertyController,
		catalogController,
		quoteController,
		authController,
		jwtSecret,
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped gracefully")
}
