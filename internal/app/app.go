package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	arenaHTTP "snake-arena/internal/controller/http"
	"snake-arena/internal/repo/cache"
	"snake-arena/internal/repo/memory"
	"snake-arena/internal/repo/persistent"
	"snake-arena/internal/usecase"
	redisCache "snake-arena/pkg/cache"
	"snake-arena/pkg/config"
	"snake-arena/pkg/database"
	"snake-arena/pkg/jwt"
	"snake-arena/pkg/logger"
	"snake-arena/pkg/middleware"
	"snake-arena/pkg/queue"
	"snake-arena/pkg/s3"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

type App struct {
	cfg         *config.Config
	log         *logger.Logger
	db          *gorm.DB
	redisClient *redis.Client
	s3Client    *s3.Client
	jwtService  *jwt.Service
	queueClient *queue.Client
	liveGames   *memory.LiveGameStore
	httpServer  *http.Server
}

func NewApp(cfg *config.Config) (*App, error) {
	log := logger.New()

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		return nil, err
	}

	redisClient, err := redisCache.NewRedisClient(cfg)
	if err != nil {
		log.Error("Failed to connect to redis: %v (rank cache and rate limiting disabled)", err)
		redisClient = nil
	}

	s3Client, err := s3.NewClient(cfg)
	if err != nil {
		log.Error("Failed to create S3 client: %v", err)
		return nil, err
	}

	queueClient, err := queue.NewRabbitMQClient(cfg, log)
	if err != nil {
		log.Error("Failed to connect to RabbitMQ: %v (continuing without queue)", err)
		queueClient = nil
	}

	jwtService := jwt.NewService(cfg.JWTSecret)

	liveGames := memory.NewLiveGameStore()
	liveGames.SeedDemoGames()

	return &App{
		cfg:         cfg,
		log:         log,
		db:          db,
		redisClient: redisClient,
		s3Client:    s3Client,
		jwtService:  jwtService,
		queueClient: queueClient,
		liveGames:   liveGames,
	}, nil
}

func (a *App) Run() error {
	// Initialize repositories
	userRepo := persistent.NewUserRepository(a.db)
	leaderboardRepo := persistent.NewLeaderboardRepository(a.db)

	// The rank cache answers nothing until warmed with every stored high
	// score; stats reads fall back to SQL counts in the meantime.
	rankCache := cache.NewRankCache(a.redisClient)
	if a.redisClient != nil {
		if scores, err := userRepo.HighScores(); err != nil {
			a.log.Error("Failed to load high scores for rank cache: %v", err)
		} else if err := rankCache.Warm(context.Background(), scores); err != nil {
			a.log.Error("Failed to warm rank cache: %v", err)
		}
	}

	// Initialize use cases
	authUseCase := usecase.NewAuthUseCase(userRepo, a.jwtService, a.log)
	leaderboardUseCase := usecase.NewLeaderboardUseCase(
		leaderboardRepo,
		userRepo,
		rankCache,
		a.queueClient,
		a.log,
	)
	liveGameUseCase := usecase.NewLiveGameUseCase(a.liveGames)
	userUseCase := usecase.NewUserUseCase(userRepo, rankCache, a.s3Client, a.log)

	// Initialize HTTP handlers
	authHandler := arenaHTTP.NewAuthHandler(authUseCase)
	leaderboardHandler := arenaHTTP.NewLeaderboardHandler(leaderboardUseCase)
	liveGameHandler := arenaHTTP.NewLiveGameHandler(liveGameUseCase)
	userHandler := arenaHTTP.NewUserHandler(userUseCase)

	// Setup router
	r := gin.Default()

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	requireAuth := middleware.AuthMiddleware(a.jwtService)

	auth := r.Group("/auth")
	if a.redisClient != nil {
		// Brute-force protection on the credential endpoints
		auth.Use(middleware.RateLimitMiddleware(a.redisClient, 20, time.Minute))
	}
	{
		auth.POST("/signup", authHandler.SignUp)
		auth.POST("/login", authHandler.Login)
		auth.POST("/logout", authHandler.Logout)
		auth.GET("/me", requireAuth, authHandler.Me)
	}

	leaderboard := r.Group("/leaderboard")
	{
		leaderboard.GET("", leaderboardHandler.List)
		leaderboard.POST("/submit", requireAuth, leaderboardHandler.Submit)
	}

	liveGames := r.Group("/live-games")
	{
		liveGames.GET("", liveGameHandler.List)
		liveGames.GET("/:id", liveGameHandler.Get)
		liveGames.POST("/:id/join", liveGameHandler.Join)
		liveGames.POST("/:id/leave", liveGameHandler.Leave)
	}

	users := r.Group("/users")
	{
		users.PATCH("/profile", requireAuth, userHandler.UpdateProfile)
		users.POST("/avatar", requireAuth, userHandler.UploadAvatar)
		users.GET("/:id/stats", userHandler.GetStats)
	}

	// Create HTTP server
	a.httpServer = &http.Server{
		Addr:    ":" + a.cfg.ServerPort,
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		a.log.Info("Snake Arena API starting on port %s", a.cfg.ServerPort)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	return nil
}

func (a *App) Wait() {
	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	a.log.Info("Shutting down...")
}

func (a *App) Shutdown() error {
	// The context is used to inform the server it has 5 seconds to finish
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Close database connection
	sqlDB, err := a.db.DB()
	if err == nil {
		if err := sqlDB.Close(); err != nil {
			a.log.Error("Error closing database: %v", err)
		}
	}

	// Close Redis connection
	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.log.Error("Error closing Redis: %v", err)
		}
	}

	// Close RabbitMQ connection
	if a.queueClient != nil {
		a.queueClient.Close()
	}

	// Shutdown server
	if err := a.httpServer.Shutdown(ctx); err != nil {
		a.log.Error("Server forced to shutdown: %v", err)
		return err
	}

	a.log.Info("Server exited")
	return nil
}
