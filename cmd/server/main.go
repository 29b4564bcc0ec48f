package main

import (
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"

	"gym_crm_backend/internal/router"
	"gym_crm_backend/internal/services"
	"gym_crm_backend/internal/storage"
	"gym_crm_backend/internal/store"
	"gym_crm_backend/pkg/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

// newBackend builds the persistence backend selected by STORAGE_DRIVER.
// The file driver is the default and needs no external services.
func newBackend() (storage.Backend, error) {
	driver := utils.Getenv("STORAGE_DRIVER", "file")
	switch driver {
	case "postgres":
		return storage.NewPostgresBackend(
			utils.Getenv("DB_HOST", "localhost"),
			utils.Getenv("DB_PORT", "5432"),
			utils.Getenv("DB_USER", "gym_crm_user"),
			utils.Getenv("DB_PASSWORD", "gym_crm_password"),
			utils.Getenv("DB_NAME", "gym_crm_db"),
			utils.Getenv("DB_SSLMODE", "disable"),
		)
	case "redis":
		db, err := strconv.Atoi(utils.Getenv("REDIS_DB", "0"))
		if err != nil {
			db = 0
		}
		return storage.NewRedisBackend(
			utils.Getenv("REDIS_ADDR", "localhost:6379"),
			utils.Getenv("REDIS_PASSWORD", ""),
			db,
		)
	default:
		return storage.NewFileBackend(utils.Getenv("DATA_DIR", "./data"))
	}
}

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	// Initialize Logger
	utils.InitLogger()

	backend, err := newBackend()
	if err != nil {
		utils.LogError(err, "Failed to initialize storage backend")
		log.Fatalf("Failed to initialize storage backend: %v", err)
	}
	utils.LogInfo("Storage backend initialized", map[string]interface{}{
		"driver": utils.Getenv("STORAGE_DRIVER", "file"),
	})

	gymStore, err := store.New(backend)
	if err != nil {
		utils.LogError(err, "Failed to load domain store")
		log.Fatalf("Failed to load domain store: %v", err)
	}

	authService, err := services.NewAuthService(
		utils.Getenv("ADMIN_USERNAME", "admin"),
		utils.Getenv("ADMIN_PASSWORD", "admin123"),
	)
	if err != nil {
		utils.LogError(err, "Failed to initialize auth service")
		log.Fatalf("Failed to initialize auth service: %v", err)
	}

	engine := gin.Default()

	// Add GinLogger middleware for request logging
	engine.Use(utils.GinLogger())

	// CORS configuration
	corsAllowedOriginsEnv := os.Getenv("CORS_ALLOWED_ORIGINS")
	var allowedOrigins []string
	if corsAllowedOriginsEnv != "" {
		allowedOrigins = strings.Split(corsAllowedOriginsEnv, ",")
	} else {
		allowedOrigins = []string{"http://localhost:3000", "http://localhost:5173"} // Default origins
	}

	config := cors.DefaultConfig()
	config.AllowOrigins = allowedOrigins
	config.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	config.AllowCredentials = true
	engine.Use(cors.New(config))

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	// Setup all application routes
	router.Setup(engine, gymStore, authService)

	// Server port configuration
	port := utils.Getenv("PORT", "8080")
	utils.LogInfo("Server starting", map[string]interface{}{"port": port})

	if err := engine.Run(":" + port); err != nil {
		utils.LogError(err, "Failed to start server")
		log.Fatalf("Failed to start server: %v", err)
	}
}
