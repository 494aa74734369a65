package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/litmart/litmart-backend/internal/config"
	"github.com/litmart/litmart-backend/internal/handler"
	"github.com/litmart/litmart-backend/internal/middleware"
	"github.com/litmart/litmart-backend/internal/migration"
	"github.com/litmart/litmart-backend/internal/repository"
	"github.com/litmart/litmart-backend/internal/service"
	"github.com/litmart/litmart-backend/internal/ws"
	pkgcache "github.com/litmart/litmart-backend/pkg/cache"
	"github.com/litmart/litmart-backend/pkg/jwt"
	pkglogger "github.com/litmart/litmart-backend/pkg/logger"
	pkgredis "github.com/litmart/litmart-backend/pkg/redis"
)

// @title           LitMart Backend API
// @version         1.0
// @description     Online bookstore backend with promotional event engine
//
// @license.name    MIT
//
// @host            localhost:8080
// @BasePath        /api/v1
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT Authorization header using the Bearer scheme. Example: "Bearer {token}"

// getConfigPath returns config file path based on APP_ENV environment variable
func getConfigPath() string {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "local"
	}
	return fmt.Sprintf("configs/config.%s.yaml", env)
}

func main() {
	dotenvFiles := config.LoadDotEnv()

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "local"
	}
	pkglogger.InitStructured(env)
	pkglogger.Info("APP_ENV=%s, loaded env files: %v", env, dotenvFiles)

	configPath := getConfigPath()
	pkglogger.Info("Loading config from: %s", configPath)
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	config.LogResolved(cfg)

	db, err := initDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	pkglogger.Info("Connected to MySQL")

	if err := migration.Run(db); err != nil {
		pkglogger.Warn("Migration warning: %v", err)
	}

	redisClient, err := pkgredis.NewClient(
		cfg.Redis.Host,
		cfg.Redis.Port,
		cfg.Redis.Password,
		cfg.Redis.DB,
		cfg.Redis.PoolSize,
	)
	if err != nil {
		pkglogger.Warn("Failed to connect to Redis: %v (continuing without Redis)", err)
		redisClient = nil
	} else {
		pkglogger.Info("Connected to Redis")
	}

	cacheService := pkgcache.NewService(redisClient)

	// WebSocket hub (notifications + chat push)
	wsHub := ws.NewHub(redisClient)
	go wsHub.Run()

	jwtManager := jwt.NewManager(
		cfg.JWT.Secret,
		time.Duration(cfg.JWT.ExpiresIn),
		time.Duration(cfg.JWT.RefreshIn),
	)

	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	// CORS
	allowOrigins := cfg.CORS.AllowOrigins
	if allowOrigins == "" {
		allowOrigins = "http://localhost:3000"
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     splitAndTrim(allowOrigins, ","),
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		AllowCredentials: true,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		ExposeHeaders:    []string{"X-Request-ID"},
		MaxAge:           86400,
	}))

	router.Use(middleware.Metrics())
	router.Use(middleware.RequestLogger())

	// Prometheus metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "litmart-backend",
			"time":    time.Now().Unix(),
		})
	})

	// Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Repositories
	memberRepo := repository.NewMemberRepository(db)
	bookRepo := repository.NewBookRepository(db)
	cartRepo := repository.NewCartRepository(db)
	shippingRepo := repository.NewShippingRepository(db)
	billRepo := repository.NewBillRepository(db)
	eventRepo := repository.NewEventRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	chatRepo := repository.NewChatRepository(db)

	// Services
	notificationSvc := service.NewNotificationService(notificationRepo, wsHub)
	authSvc := service.NewAuthService(memberRepo, jwtManager)
	bookSvc := service.NewBookService(bookRepo, cacheService)
	cartSvc := service.NewCartService(cartRepo, bookRepo)
	eventSvc := service.NewEventService(eventRepo, cacheService)
	checkoutSvc := service.NewCheckoutService(eventSvc, bookRepo, shippingRepo, billRepo, cartRepo, notificationSvc)
	billSvc := service.NewBillService(billRepo, shippingRepo, notificationSvc)
	paymentSvc := service.NewPaymentService(paymentRepo, billRepo, notificationSvc)
	chatSvc := service.NewChatService(chatRepo, memberRepo, wsHub)

	// Handlers
	authHandler := handler.NewAuthHandler(authSvc)
	bookHandler := handler.NewBookHandler(bookSvc)
	cartHandler := handler.NewCartHandler(cartSvc)
	eventHandler := handler.NewEventHandler(eventSvc)
	checkoutHandler := handler.NewCheckoutHandler(checkoutSvc)
	billHandler := handler.NewBillHandler(billSvc)
	paymentHandler := handler.NewPaymentHandler(paymentSvc)
	notificationHandler := handler.NewNotificationHandler(notificationSvc)
	chatHandler := handler.NewChatHandler(chatSvc)
	wsHandler := handler.NewWSHandler(wsHub)

	api := router.Group("/api/v1")

	// Public routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/refresh", authHandler.Refresh)
	api.GET("/books", bookHandler.ListBooks)
	api.GET("/books/:id", bookHandler.GetBook)
	api.GET("/events/current", eventHandler.GetCurrentEvent)
	api.GET("/shipping-methods", billHandler.ListShippingMethods)

	// Authenticated routes
	authed := api.Group("")
	authed.Use(middleware.JWTAuth(jwtManager))
	{
		authed.GET("/auth/me", authHandler.Me)

		authed.GET("/cart", cartHandler.GetCart)
		authed.DELETE("/cart", cartHandler.ClearCart)
		authed.POST("/cart/items", cartHandler.AddItem)
		authed.PUT("/cart/items/:id", cartHandler.UpdateItem)
		authed.DELETE("/cart/items/:id", cartHandler.RemoveItem)

		authed.POST("/checkout/preview", checkoutHandler.Preview)
		authed.POST("/checkout", checkoutHandler.Checkout)

		authed.GET("/bills", billHandler.ListBills)
		authed.GET("/bills/:id", billHandler.GetBill)
		authed.POST("/bills/:id/cancel", billHandler.CancelBill)
		authed.GET("/bills/:id/payment", paymentHandler.GetBillPayment)
		authed.POST("/payments", paymentHandler.CreatePayment)

		authed.GET("/notifications", notificationHandler.ListNotifications)
		authed.GET("/notifications/unread-count", notificationHandler.GetUnreadCount)
		authed.POST("/notifications/:id/read", notificationHandler.MarkAsRead)
		authed.POST("/notifications/read-all", notificationHandler.MarkAllAsRead)

		authed.GET("/chat/messages", chatHandler.GetHistory)
		authed.POST("/chat/messages", chatHandler.SendMessage)

		authed.GET("/ws", wsHandler.Connect)
	}

	// Admin routes
	admin := api.Group("/admin")
	admin.Use(middleware.JWTAuth(jwtManager))
	admin.Use(middleware.RequireAdmin())
	{
		admin.GET("/events", eventHandler.ListEvents)
		admin.POST("/events", eventHandler.CreateEvent)
		admin.GET("/events/:id", eventHandler.GetEvent)
		admin.PUT("/events/:id", eventHandler.UpdateEvent)
		admin.DELETE("/events/:id", eventHandler.DeleteEvent)
		admin.GET("/events/:id/logs", eventHandler.ListEventLogs)

		admin.POST("/books", bookHandler.CreateBook)
		admin.PUT("/books/:id", bookHandler.UpdateBook)
		admin.DELETE("/books/:id", bookHandler.DeleteBook)

		admin.PUT("/bills/:id/status", billHandler.UpdateBillStatus)

		admin.POST("/payments/:id/confirm", paymentHandler.ConfirmPayment)
		admin.POST("/payments/:id/fail", paymentHandler.FailPayment)

		admin.GET("/chat/:memberId/messages", chatHandler.GetMemberHistory)
		admin.POST("/chat/:memberId/messages", chatHandler.SendStaffMessage)
	}

	// Keep the DB connection gauge fresh
	go func() {
		ticker := time.NewTicker(15 * time.Second)
		defer ticker.Stop()
		for range ticker.C {
			if sqlDB, err := db.DB(); err == nil {
				middleware.SetDBConnectionsActive(float64(sqlDB.Stats().OpenConnections))
			}
		}
	}()

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	pkglogger.Info("Starting server on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func initDB(cfg *config.Config) (*gorm.DB, error) {
	mysqlCfg, err := mysqldriver.ParseDSN(cfg.Database.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to parse DSN: %w", err)
	}

	gormLogLevel := gormlogger.Warn
	if cfg.Server.Env == "local" || cfg.Server.Env == "development" {
		gormLogLevel = gormlogger.Info
	}

	db, err := gorm.Open(mysql.Open(mysqlCfg.FormatDSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormLogLevel),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	return db, nil
}

// splitAndTrim splits a string by delimiter and drops empty parts
func splitAndTrim(s, delimiter string) []string {
	parts := []string{}
	for _, part := range strings.Split(s, delimiter) {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}
