package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"storysprout/pkg/config"
	"storysprout/pkg/jwt"
	"storysprout/pkg/logger"
	"storysprout/pkg/middleware"
	"storysprout/pkg/s3"
	adminHTTP "storysprout/services/admin/internal/controller/http"
	"storysprout/services/admin/internal/repo/persistent"
	"storysprout/services/admin/internal/usecase"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "storysprout/services/admin/docs" // Swagger docs
)

func Run(cfg *config.Config, log *logger.Logger, db *gorm.DB, redisClient *redis.Client, s3Client *s3.Client) {
	// Initialize repositories
	storyRepo := persistent.NewStoryRepository(db)
	videoRepo := persistent.NewVideoRepository(db)
	trendingRepo := persistent.NewTrendingRepository(db)
	postRepo := persistent.NewAdminPostRepository(db)
	userRepo := persistent.NewAdminUserRepository(db)

	// Initialize use cases
	jwtService := jwt.NewService(cfg.JWTSecret)
	storyUseCase := usecase.NewStoryUseCase(storyRepo, s3Client, log)
	videoUseCase := usecase.NewVideoUseCase(videoRepo, s3Client, log)
	trendingUseCase := usecase.NewTrendingUseCase(trendingRepo, log)
	postUseCase := usecase.NewPostUseCase(postRepo, s3Client, log)
	analyticsUseCase := usecase.NewAnalyticsUseCase(storyRepo, videoRepo, trendingRepo, postRepo, redisClient, log)
	authUseCase := usecase.NewAuthUseCase(userRepo, jwtService, log)

	// Initialize HTTP handlers
	storyHandler := adminHTTP.NewStoryHandler(storyUseCase, log)
	videoHandler := adminHTTP.NewVideoHandler(videoUseCase, log)
	trendingHandler := adminHTTP.NewTrendingHandler(trendingUseCase, log)
	postHandler := adminHTTP.NewPostHandler(postUseCase, log)
	analyticsHandler := adminHTTP.NewAnalyticsHandler(analyticsUseCase, log)
	authHandler := adminHTTP.NewAuthHandler(authUseCase, log)

	// Setup router
	r := gin.Default()

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000", "*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")
	api.Use(middleware.RateLimitMiddleware(redisClient, 60, time.Minute))

	// Auth routes that work without a session
	api.POST("/auth/login", authHandler.Login)
	api.GET("/auth/recovery-questions", authHandler.RecoveryQuestions)
	api.POST("/auth/reset-password", authHandler.ResetPassword)

	// Everything else requires a valid token
	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(jwtService))

	{
		protected.POST("/auth/change-password", authHandler.ChangePassword)

		protected.POST("/stories", storyHandler.CreateStory)
		protected.GET("/stories", storyHandler.ListStories)
		protected.GET("/stories/:id", storyHandler.GetStory)
		protected.PUT("/stories/:id", storyHandler.UpdateStory)
		protected.DELETE("/stories/:id", storyHandler.DeleteStory)
		protected.PATCH("/stories/:id/featured", storyHandler.ToggleFeatured)
		protected.PATCH("/stories/:id/disabled", storyHandler.ToggleDisabled)

		protected.POST("/videos", videoHandler.CreateVideo)
		protected.GET("/videos", videoHandler.ListVideos)
		protected.GET("/videos/:id", videoHandler.GetVideo)
		protected.PUT("/videos/:id", videoHandler.UpdateVideo)
		protected.DELETE("/videos/:id", videoHandler.DeleteVideo)
		protected.PATCH("/videos/:id/featured", videoHandler.ToggleFeatured)
		protected.PATCH("/videos/:id/disabled", videoHandler.ToggleDisabled)

		protected.POST("/trending", trendingHandler.CreateTrending)
		protected.GET("/trending", trendingHandler.ListTrending)
		protected.GET("/trending/:id", trendingHandler.GetTrending)
		protected.PUT("/trending/:id", trendingHandler.UpdateTrending)
		protected.DELETE("/trending/:id", trendingHandler.DeleteTrending)
		protected.PATCH("/trending/:id/active", trendingHandler.ToggleActive)

		protected.POST("/posts", postHandler.CreatePost)
		protected.GET("/posts", postHandler.ListPosts)
		protected.GET("/posts/:id", postHandler.GetPost)
		protected.PUT("/posts/:id", postHandler.UpdatePost)
		protected.DELETE("/posts/:id", postHandler.DeletePost)
		protected.PATCH("/posts/:id/featured", postHandler.ToggleFeatured)
		protected.PATCH("/posts/:id/disabled", postHandler.ToggleDisabled)

		protected.GET("/analytics/dashboard", analyticsHandler.GetDashboardStats)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		log.Info("Admin service starting on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down admin service...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Close database connection
	sqlDB, err := db.DB()
	if err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Error("Error closing database: %v", err)
		}
	}

	// Close Redis connection
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Error closing Redis: %v", err)
		}
	}

	// Shutdown server
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
		panic(err)
	}

	log.Info("Admin service exited")
}
