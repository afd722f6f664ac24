package main

import (
	"os"
	"strconv"
	"time"

	dbadapter "emojifeed/internal/adapters/database"
	directoryadapter "emojifeed/internal/adapters/directory"
	"emojifeed/internal/adapters/httpapi"
	redisadapter "emojifeed/internal/adapters/redis"
	"emojifeed/internal/config"
	"emojifeed/internal/core/post"
	postapp "emojifeed/internal/core/post/service"
	profileapp "emojifeed/internal/core/profile/service"

	"go.uber.org/zap"
)

func main() {
	config.InitLogger()
	config.Init()

	config.InitDB()

	if err := config.DB.AutoMigrate(&post.Post{}); err != nil {
		config.Logger.Fatal("Error during migrations:", zap.Error(err))
	}
	config.Logger.Info("✅ Database migrations completed")

	config.InitRedis()

	defer closeResources(config.Logger)

	config.Logger.Info("App is running...")

	postRepo := dbadapter.NewPostRepositoryDatabase()
	directory := directoryadapter.NewClient(
		os.Getenv("DIRECTORY_BASE_URL"),
		os.Getenv("DIRECTORY_API_TOKEN"),
		time.Duration(envInt("DIRECTORY_TIMEOUT_SECONDS", 30))*time.Second,
	)
	limiter := redisadapter.NewRateLimiterRedis(
		config.RedisClient,
		int64(envInt("RATE_LIMIT", 10)),
		time.Duration(envInt("RATE_WINDOW_SECONDS", 60))*time.Second,
	)

	postSvc := postapp.NewPostService(postRepo, directory, config.Logger)
	profileSvc := profileapp.NewProfileService(directory)
	r := httpapi.SetupRoutes(postSvc, profileSvc, limiter)

	if err := r.Run(":" + os.Getenv("APP_PORT")); err != nil {
		config.Logger.Fatal("Server failed to start:", zap.Error(err))
	}
}

func envInt(name string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(name))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

// closeResources closes the Redis and database connections
func closeResources(logger *zap.Logger) {
	if err := config.RedisClient.Close(); err != nil {
		logger.Error("Error closing Redis connection:", zap.Error(err))
	}

	sqlDB, err := config.DB.DB()
	if err != nil {
		logger.Error("Error getting raw DB:", zap.Error(err))
		return
	}

	if err := sqlDB.Close(); err != nil {
		logger.Error("Error closing database connection:", zap.Error(err))
	}
}
