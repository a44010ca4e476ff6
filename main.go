package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Greendayy/Ali-Express/config"
	"github.com/Greendayy/Ali-Express/controllers"
	"github.com/Greendayy/Ali-Express/database"
	"github.com/Greendayy/Ali-Express/guard"
	"github.com/Greendayy/Ali-Express/logger"
	"github.com/Greendayy/Ali-Express/metrics"
	"github.com/Greendayy/Ali-Express/middleware"
	"github.com/Greendayy/Ali-Express/models"
	"github.com/Greendayy/Ali-Express/repository"
	"github.com/Greendayy/Ali-Express/routes"
	"github.com/Greendayy/Ali-Express/services"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config: ", err)
	}

	zapLogger, err := logger.New(cfg.Env)
	if err != nil {
		log.Fatal("Failed to initialize logger: ", err)
	}
	defer zapLogger.Sync()
	zap.ReplaceGlobals(zapLogger)

	db, err := database.Connect(cfg)
	if err != nil {
		zap.L().Fatal("Failed to connect to database", zap.Error(err))
	}
	if err := db.AutoMigrate(&models.Address{}, &models.Product{}); err != nil {
		zap.L().Fatal("Failed to migrate models", zap.Error(err))
	}

	// --- Dependency wiring ---

	addressRepo := repository.NewGormAddressRepo(db)
	productRepo := repository.NewGormProductRepo(db)
	stripeSvc := services.NewStripeService(cfg.StripeSecretKey)
	identitySvc := services.NewIdentityService(cfg.IdentityJWTSecret)
	policy := guard.NewPolicy(cfg.ProtectedPaths, cfg.AuthRedirect)

	addressController := &controllers.AddressController{
		Repo:    addressRepo,
		Logger:  zapLogger,
		Timeout: cfg.GatewayTimeout,
	}
	productController := &controllers.ProductController{
		Repo:    productRepo,
		Logger:  zapLogger,
		Timeout: cfg.GatewayTimeout,
	}
	paymentController := &controllers.PaymentController{
		Gateway: stripeSvc,
		Logger:  zapLogger,
		Timeout: cfg.GatewayTimeout,
	}
	navigationController := &controllers.NavigationController{
		Policy:   policy,
		Sessions: identitySvc,
	}

	// --- HTTP server & middleware ---

	registry := prometheus.NewRegistry()
	collector := metrics.NewCollector(registry)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(zapLogger))
	r.Use(collector.Middleware())
	r.Use(middleware.RateLimit(rate.Every(time.Minute/100), 50))
	r.Use(guard.Middleware(policy, identitySvc))

	routes.RegisterRoutes(r, addressController, productController, paymentController, navigationController)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})
	r.GET("/metrics", gin.WrapH(metrics.Handler(registry)))

	// --- Graceful shutdown ---

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		zap.L().Info("Storefront service starting", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zap.L().Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zap.L().Info("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zap.L().Error("Forced shutdown", zap.Error(err))
	}
}
