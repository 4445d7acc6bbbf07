package main

import (
	"context"
	"log"
	"os"
	"time"

	"glycoscan/internal/auth"
	"glycoscan/internal/db"
	"glycoscan/internal/food"
	"glycoscan/internal/llm"
	"glycoscan/internal/middleware"
	"glycoscan/internal/scan"
	"glycoscan/internal/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"JWT_SECRET",
		"DATABASE_URL",
		"GEMINI_API_KEY",
		"GEMINI_MODEL",
		"R2_ACCESS_KEY",
		"R2_SECRET_KEY",
		"R2_BUCKET_NAME",
		"R2_ENDPOINT",
		"R2_PUBLIC_BASE_URL",
	}

	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("Missing env var: %s", k)
		}
	}

	// ───────────────────────── DB ─────────────────────────
	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	// ───────────────────────── GIN ─────────────────────────
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:8081"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// ───────────────────────── STORAGE ─────────────────────────
	r2Client, err := storage.NewR2Client(context.Background())
	if err != nil {
		log.Fatal("R2 init failed:", err)
	}

	// ───────────────────────── SCAN STORE ─────────────────────────
	limits := scan.LimitsForProfile(os.Getenv("HISTORY_PROFILE"))

	var backend scan.Backend
	switch os.Getenv("HISTORY_BACKEND") {
	case "sqlite":
		path := os.Getenv("HISTORY_DB_PATH")
		if path == "" {
			path = "glycoscan.db"
		}
		backend, err = scan.NewSQLiteBackend(path)
		if err != nil {
			log.Fatal("SQLite init failed:", err)
		}
	case "memory":
		backend = scan.NewMemoryBackend()
	default:
		backend = scan.NewPostgresBackend(pgDB)
	}

	scanStore := scan.NewStore(backend, limits)
	if err := scanStore.Init(context.Background()); err != nil {
		log.Fatal("Scan store init failed:", err)
	}
	defer scanStore.Close()

	// ───────────────────────── SERVICES ─────────────────────────
	catalog := food.DefaultCatalog()
	gemini := llm.NewGeminiClient()
	scanService := scan.NewService(gemini, catalog, scanStore)

	userRepo := auth.NewPostgresUserRepository(pgDB)
	authService := auth.NewService(userRepo)

	// ───────────────────────── HANDLERS ─────────────────────────
	authHandler := auth.NewHandler(authService)
	foodHandler := food.NewHandler(catalog)
	scanHandler := scan.NewHandler(scanService, scanStore, r2Client)

	// ───────────────────────── AUTH ROUTES ─────────────────────────
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
	}

	// ───────────────────────── FOOD ROUTES ─────────────────────────
	foods := r.Group("/foods")
	{
		foods.GET("/search", foodHandler.Search)
		foods.GET("/:id", foodHandler.Get)
		foods.GET("/:id/similar", foodHandler.Similar)
		foods.GET("/:id/alternatives", foodHandler.Alternatives)
	}

	// ───────────────────────── SCAN ROUTES ─────────────────────────
	scans := r.Group("/scans")
	scans.Use(middleware.AuthMiddleware())
	{
		scans.POST("/image", scanHandler.AnalyzeImage)
		scans.POST("/text", scanHandler.AnalyzeText)
		scans.GET("/history", scanHandler.History)
		scans.GET("/recent", scanHandler.RecentScans)
		scans.DELETE("/history/:id", scanHandler.RemoveFromHistory)
		scans.DELETE("/history", scanHandler.ClearHistory)
	}

	// Health Check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Println("Server running on http://localhost:" + port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
