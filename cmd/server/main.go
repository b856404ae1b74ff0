package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"rideform/internal/config"
	"rideform/internal/handlers"
	"rideform/internal/middleware"
	"rideform/internal/repositories/mongodb"
	"rideform/internal/services"
	"rideform/pkg/database"
	"rideform/pkg/logger"
	"rideform/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger, err := logger.NewLogger(&logger.Config{Level: cfg.App.LogLevel})
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}

	db, err := database.NewMongoDB(&database.Config{
		URI:            cfg.Database.URI,
		Database:       cfg.Database.Database,
		MaxPoolSize:    cfg.Database.MaxPoolSize,
		MinPoolSize:    cfg.Database.MinPoolSize,
		ConnectTimeout: cfg.Database.ConnectTimeout,
		SocketTimeout:  cfg.Database.SocketTimeout,
	})
	if err != nil {
		appLogger.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer db.Close()

	repo := mongodb.NewRideRequestRepository(db.Collection(cfg.Database.Collection))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := repo.EnsureIndexes(ctx); err != nil {
		cancel()
		appLogger.Fatalf("Failed to create indexes: %v", err)
	}
	cancel()

	notifier, err := services.NewTelegramNotifier(cfg.Telegram, appLogger)
	if err != nil {
		appLogger.Fatalf("Failed to init notifier: %v", err)
	}

	requestService := services.NewRequestService(repo, notifier, cfg.Security.DeleteToken, appLogger)
	handler := handlers.NewRideRequestHandler(requestService, appLogger)

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(middleware.RecoveryMiddleware(appLogger))
	router.Use(middleware.CORSMiddleware())

	routes.SetupRideRequestRoutes(router, handler)

	// The public form. Unmatched paths fall through to static files so "/"
	// serves index.html.
	router.NoRoute(gin.WrapH(http.FileServer(http.Dir(cfg.App.StaticDir))))

	addr := fmt.Sprintf("%s:%d", cfg.App.Host, cfg.App.Port)
	srv := &http.Server{Addr: addr, Handler: router}

	appLogger.Infof("Starting server on %s", addr)
	if cfg.App.TLSCert != "" {
		err = srv.ListenAndServeTLS(cfg.App.TLSCert, cfg.App.TLSKey)
	} else {
		err = srv.ListenAndServe()
	}
	if err != nil && err != http.ErrServerClosed {
		appLogger.Fatalf("Server stopped: %v", err)
	}
}
