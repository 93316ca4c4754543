package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"lolinsights/api/cache"
	"lolinsights/api/modules"
	"lolinsights/api/routes"
	"lolinsights/fetcher/assets"
	"lolinsights/fetcher/requests"
	"lolinsights/pkg/config"
	"lolinsights/pkg/logger"
	"lolinsights/pkg/redis"

	"github.com/joho/godotenv"
)

func main() {
	// Load the environment variables if not running on Docker.
	if os.Getenv("ENVIRONMENT") != "docker" {
		err := godotenv.Load()
		if err != nil {
			log.Fatal("Error loading .env file")
		}
	}

	config.LoadEnv()

	appLogger, err := logger.CreateLogger()
	if err != nil {
		log.Fatalf("Couldn't create the logger: %v", err)
	}

	redisClient := redis.GetClient()
	defer redisClient.Close()

	memCache := cache.NewMemCache()
	defer memCache.Close()

	deps := &modules.ModuleDependencies{
		Catalog:  assets.CreateCatalogCache(redisClient),
		Limiter:  requests.CreateRateLimiter(),
		Logger:   appLogger,
		MemCache: memCache,
		Redis:    redisClient,
	}

	// Create a module with all necessary handlers.
	module := modules.NewModule(deps)

	// Periodically flush the log file to the bucket.
	go uploadLogs(appLogger)

	// Create a new router with the routes setup.
	router := routes.NewRouter(module.Router)
	router.SetupRoutes(
		module.ProfileHandler,
		module.AssetsHandler,
	)

	// Start the server.
	router.Run(":8080")
}

// Upload the accumulated logs every hour.
func uploadLogs(appLogger *logger.Logger) {
	ticker := time.NewTicker(1 * time.Hour)
	defer ticker.Stop()

	for range ticker.C {
		objectKey := fmt.Sprintf("api/%s.log", time.Now().Format("2006-01-02-15-04"))
		if err := appLogger.UploadToS3Bucket(objectKey); err != nil {
			log.Printf("Couldn't send the log to s3: %v", err)

			// Clean the file in the case it was a S3 error and not a file error.
			appLogger.CleanFile()
		} else {
			log.Printf("Successfully sent log to s3 with key: %s", objectKey)
		}
	}
}
