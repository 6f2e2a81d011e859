package main

import (
	"context"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"github.com/KeertanaGupta/Keertana-Mediprior/internal/config"
	"github.com/KeertanaGupta/Keertana-Mediprior/internal/database"
	"github.com/KeertanaGupta/Keertana-Mediprior/internal/handlers"
	"github.com/KeertanaGupta/Keertana-Mediprior/internal/middleware"
	"github.com/KeertanaGupta/Keertana-Mediprior/internal/routes"
	"github.com/KeertanaGupta/Keertana-Mediprior/internal/services"
)

func main() {
	// Load env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	cfg := config.Load()

	// Connect to PostgreSQL (accounts always live here)
	log.Printf("Connecting to PostgreSQL...")
	if err := database.ConnectPostgres(cfg.PostgresURI); err != nil {
		log.Fatal("Failed to connect to PostgreSQL:", err)
	}
	defer database.DisconnectPostgres()

	// Connect to Redis (sessions + rate limiting)
	log.Printf("Connecting to Redis...")
	if err := database.ConnectRedis(cfg.RedisURI); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}
	defer database.DisconnectRedis()

	// Pick the metadata backend for profiles and reports
	var (
		profileStore services.ProfileStore
		reportStore  services.ReportStore
	)
	if cfg.UseMongo() {
		log.Printf("Connecting to MongoDB (metadata backend)...")
		if err := database.Connect(cfg.MongoURI); err != nil {
			log.Fatal("Failed to connect to MongoDB:", err)
		}
		defer database.Disconnect()

		if err := database.EnsureMetadataIndexes(context.Background()); err != nil {
			log.Printf("⚠️  WARNING: failed to ensure MongoDB metadata indexes: %v", err)
		} else {
			log.Println("✅ MongoDB metadata indexes ensured")
		}

		profileStore = services.NewMongoProfileStore(database.DB)
		reportStore = services.NewMongoReportStore(database.DB)
		log.Println("✅ Metadata backend: MongoDB")
	} else {
		profileStore = services.NewPostgresProfileStore(database.PostgresDB)
		reportStore = services.NewPostgresReportStore(database.PostgresDB)
		log.Println("✅ Metadata backend: PostgreSQL")
	}

	// Initialize the Cloudinary blob store
	if cfg.CloudinaryName == "" || cfg.CloudinaryAPIKey == "" || cfg.CloudinaryAPISecret == "" {
		log.Fatal("Cloudinary credentials not found. Report uploads need CLOUDINARY_CLOUD_NAME, CLOUDINARY_API_KEY and CLOUDINARY_API_SECRET")
	}
	blobStore, err := services.NewCloudinaryBlobStore(cfg.CloudinaryName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
	if err != nil {
		log.Fatal("Failed to initialize Cloudinary:", err)
	}
	log.Println("✅ Cloudinary blob store initialized")

	// Wire handlers
	handlers.InitProfileStore(profileStore)
	handlers.InitReportPipeline(services.NewIngestor(blobStore, reportStore), reportStore)
	handlers.InitAggregator(services.NewAggregator(profileStore, reportStore))
	handlers.InitDeviceSync(services.NewDeviceSync())

	// Setup router
	r := chi.NewRouter()
	r.Use(middleware.CORS(cfg.AllowedOrigins))
	r.Use(middleware.RateLimitMiddleware)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	routes.SetupRoutes(r)

	log.Println("📋 Registered routes:")
	log.Println("  GET  /health")
	log.Println("  POST /api/auth/signup")
	log.Println("  POST /api/auth/signin")
	log.Println("  POST /api/auth/signout")
	log.Println("  GET  /api/auth/me")
	log.Println("  GET  /api/profile")
	log.Println("  PUT  /api/profile")
	log.Println("  POST /api/reports")
	log.Println("  GET  /api/reports")
	log.Println("  GET  /api/dashboard")
	log.Println("  GET  /api/vitals")
	log.Println("  POST /api/device/connect")
	log.Println("  GET  /ws/vitals")

	log.Printf("🚀 MediPrior backend running on :%s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
