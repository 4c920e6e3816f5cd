// File: legato/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"legato/config"
	"legato/database"
	bookingRepo "legato/database/repository/booking"
	documentRepo "legato/database/repository/document"
	profileRepo "legato/database/repository/profile"
	reviewRepo "legato/database/repository/review"
	todoRepo "legato/database/repository/todo"
	"legato/handlers"
	"legato/middleware"
	"legato/routes"
	"legato/services/auth"
	"legato/services/session"
	"legato/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	// Identity provider: Firebase when credentials are configured, the
	// in-memory provider otherwise (development mode).
	var idp auth.IdentityProvider
	if config.AppConfig.FirebaseCredentialsFile != "" {
		utils.FirebaseInit()
		idp = auth.NewFirebaseProvider(utils.AuthClient, config.AppConfig.FirebaseWebAPIKey)
	} else {
		logger.Sugar().Warn("main: no Firebase credentials configured, using in-memory identity provider")
		idp = auth.NewMemoryProvider()
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	profiles := profileRepo.NewMongoProfileRepo()
	bookings := bookingRepo.NewMongoBookingRepo()
	todos := todoRepo.NewMongoTodoRepo()
	documents := documentRepo.NewMongoDocumentRepo()
	reviews := reviewRepo.NewMongoReviewRepo()

	// services.
	authService := &auth.DefaultAuthService{
		IDP:     idp,
		Profile: profiles,
	}
	issuer := session.NewIssuer()
	mirror := session.NewRedisRoleMirror(utils.GetSessionCacheClient())

	observer := session.NewObserver(authService, mirror)
	observer.Start()
	defer observer.Stop()

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Auth:      handlers.NewAuthHandler(authService, issuer, logger),
		Lawyer:    handlers.NewLawyerHandler(profiles, reviews, utils.GetCacheClient(), logger),
		Booking:   handlers.NewBookingHandler(bookings, profiles, logger),
		Dashboard: handlers.NewDashboardHandler(todos, documents, reviews, logger),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor([]*redis.Client{utils.GetCacheClient(), utils.GetSessionCacheClient()}, database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
