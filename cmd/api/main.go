package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mcpitc/mcpitc-backend/api/routes"
	"github.com/mcpitc/mcpitc-backend/internal/config"
	"github.com/mcpitc/mcpitc-backend/internal/handlers"
	"github.com/mcpitc/mcpitc-backend/internal/repositories"
	mongorepo "github.com/mcpitc/mcpitc-backend/internal/repositories/mongodb"
	"github.com/mcpitc/mcpitc-backend/internal/services"
	"github.com/mcpitc/mcpitc-backend/pkg/jwt"
	"github.com/mcpitc/mcpitc-backend/pkg/mongodb"
	"github.com/sirupsen/logrus"
)

const shutdownTimeout = 5 * time.Second

func main() {
	cfg, err := config.Load(".")
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}
	logger := config.NewLogger(cfg)

	if err := run(cfg, logger); err != nil {
		logger.Fatal(err)
	}
	logger.Info("Server exiting")
}

// run wires the application and serves until SIGINT/SIGTERM or a listener
// failure. Deferred cleanup runs in both cases.
func run(cfg *config.Config, logger *logrus.Logger) error {
	if cfg.Server.Environment.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	mongoClient, err := mongodb.NewClient(context.Background(), cfg.MongoDB.ConnectionURI())
	if err != nil {
		return fmt.Errorf("connect to MongoDB: %w", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := mongoClient.Disconnect(ctx); err != nil {
			logger.WithError(err).Error("Error disconnecting from MongoDB")
		}
	}()
	logger.Info("Pinged your deployment. Connected to MongoDB")

	db := mongoClient.Database(cfg.MongoDB.Database)

	indexCtx, cancelIndexes := context.WithTimeout(context.Background(), 30*time.Second)
	if err := mongorepo.EnsureIndexes(indexCtx, db); err != nil {
		// A pre-existing duplicate blocks the unique index; keep serving and rely on the service check.
		logger.WithError(err).Warn("Failed to ensure indexes")
	}
	cancelIndexes()

	// Repositories
	var (
		userRepo        repositories.UserRepository                 = mongorepo.NewUserRepository(db)
		eventRepo       repositories.EventRepository                = mongorepo.NewEventRepository(db)
		segmentRepo     repositories.SegmentRepository              = mongorepo.NewSegmentRepository(db)
		blogRepo        repositories.BlogRepository                 = mongorepo.NewBlogRepository(db)
		applicationRepo repositories.ExecutiveApplicationRepository = mongorepo.NewExecutiveApplicationRepository(db)
		recruitmentRepo repositories.RecruitmentRepository          = mongorepo.NewRecruitmentRepository(db)
	)

	tokens, err := jwt.NewSessionTokenService(cfg.JWT.Secret, time.Duration(cfg.JWT.TTLDays)*24*time.Hour)
	if err != nil {
		return fmt.Errorf("create token service: %w", err)
	}

	// Services
	userService := services.NewUserService(userRepo)
	authService := services.NewAuthService(tokens)
	eventService := services.NewEventService(eventRepo)
	segmentService := services.NewSegmentService(segmentRepo)
	blogService := services.NewBlogService(blogRepo)
	applicationService := services.NewApplicationService(applicationRepo)
	recruitmentService := services.NewRecruitmentService(recruitmentRepo)
	statsService := services.NewStatsService(userRepo, eventRepo, segmentRepo, blogRepo, applicationRepo)

	handlerDeps := routes.HandlerDependencies{
		AuthHandler:        handlers.NewAuthHandler(authService, cfg.Server.Environment.IsProduction(), logger),
		UserHandler:        handlers.NewUserHandler(userService),
		EventHandler:       handlers.NewEventHandler(eventService),
		SegmentHandler:     handlers.NewSegmentHandler(segmentService),
		BlogHandler:        handlers.NewBlogHandler(blogService),
		ApplicationHandler: handlers.NewApplicationHandler(applicationService),
		RecruitmentHandler: handlers.NewRecruitmentHandler(recruitmentService),
		StatsHandler:       handlers.NewStatsHandler(statsService, mongoClient),
		Tokens:             tokens,
		Admins:             userService,
	}

	router := routes.SetupRouter(cfg, handlerDeps, logger)

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.WithFields(logrus.Fields{
		"port":        cfg.Server.Port,
		"environment": cfg.Server.Environment,
	}).Info("Server starting")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return serve(ctx, srv, logger)
}

// serve runs srv until ctx is done, then shuts it down gracefully. A listener
// failure is returned to the caller instead of exiting in place.
func serve(ctx context.Context, srv *http.Server, logger *logrus.Logger) error {
	listenErr := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			listenErr <- err
		}
		close(listenErr)
	}()

	select {
	case err, ok := <-listenErr:
		if ok {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	return nil
}
