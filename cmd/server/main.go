package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/parthbuilds/shubhaKuteer2/config"
	"github.com/parthbuilds/shubhaKuteer2/internal/api"
	"github.com/parthbuilds/shubhaKuteer2/internal/auth"
	"github.com/parthbuilds/shubhaKuteer2/internal/images"
	"github.com/parthbuilds/shubhaKuteer2/internal/payment"
	"github.com/parthbuilds/shubhaKuteer2/internal/ratelimit"
	"github.com/parthbuilds/shubhaKuteer2/internal/router"
	"github.com/parthbuilds/shubhaKuteer2/internal/service"
	"github.com/parthbuilds/shubhaKuteer2/internal/store"
	"github.com/parthbuilds/shubhaKuteer2/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {

	cfg := config.Load()

	if err := util.InitLogger(cfg.Server.Env); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer util.SyncLogger()

	logger := util.GetLogger()
	logger.Info("Starting shubhakuteer API")

	tp, err := util.InitTracer("shubhakuteer-api", cfg.Observ.JaegerEndpoint)
	if err != nil {
		log.Fatalf("Failed to initialize tracer: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(ctx); err != nil {
			log.Printf("Error shutting down tracer: %v", err)
		}
	}()

	db, err := store.NewStore(cfg.Database.DSN())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	log.Println("Database connected")

	// The rate-limit counters live in Redis so replicas share one window.
	// Without Redis configured each process counts on its own.
	var counters ratelimit.CounterStore
	if cfg.Redis.Addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer client.Close()
		counters = ratelimit.NewRedisStore(client)
		log.Println("Redis rate-limit store initialized")
	} else {
		counters = ratelimit.NewMemoryStore()
		log.Println("In-memory rate-limit store initialized")
	}

	window := time.Duration(cfg.RateLimit.WindowMS) * time.Millisecond
	authLimiter := ratelimit.NewLimiter(counters, window, int64(cfg.RateLimit.AuthMaxRequests))
	generalLimiter := ratelimit.NewLimiter(counters, window, int64(cfg.RateLimit.MaxRequests))

	tokens := auth.NewTokens(cfg.Auth.JWTSecret)
	gateway := payment.NewRazorpayGateway(cfg.Razorpay.KeyID, cfg.Razorpay.KeySecret)
	orderService := service.NewOrderService(db, gateway, cfg.Razorpay.KeyID, logger)

	var imageStore images.Store
	if cfg.Cloudinary.URL != "" {
		imageStore, err = images.NewCloudinaryStore(cfg.Cloudinary.URL)
		if err != nil {
			log.Fatalf("Failed to initialize Cloudinary: %v", err)
		}
		log.Println("Cloudinary initialized")
	} else {
		logger.Warn("CLOUDINARY_URL not set, image deletion disabled")
	}

	handler := api.NewHandler(db, tokens, orderService, imageStore, logger, cfg.Server.Env)

	rateRules := []router.RateRule{
		{Pattern: "/api/auth/register", Exact: true, Limiter: limiterFunc(authLimiter)},
		{Pattern: "/api/auth/login", Exact: true, Limiter: limiterFunc(authLimiter)},
		{Pattern: "/api/", Limiter: limiterFunc(generalLimiter)},
	}

	dispatcher := router.NewDispatcher(handler.Routes(), rateRules, cfg.Server.Env)

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Logger(), gin.Recovery(), prometheusMiddleware())
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))
	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	engine.NoRoute(dispatcher.GinHandler())

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: engine,
	}

	go func() {
		log.Printf("Starting HTTP server on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server exited", zap.String("env", cfg.Server.Env))
}

// limiterFunc adapts a counter-backed limiter to the dispatcher, which keys
// on client IP and carries no request context of its own.
func limiterFunc(l *ratelimit.Limiter) router.LimiterFunc {
	return func(key string) (bool, int64) {
		return l.Allow(context.Background(), key)
	}
}

// prometheusMiddleware collects HTTP metrics
func prometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Writer.Status())

		util.HTTPRequestDuration.WithLabelValues(
			c.Request.Method,
			c.Request.URL.Path,
			status,
		).Observe(duration)

		util.HTTPRequestsTotal.WithLabelValues(
			c.Request.Method,
			c.Request.URL.Path,
			status,
		).Inc()
	}
}
