// Package main is the entry point for the Task Tracker API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/task-tracker/backend/config"
	"github.com/task-tracker/backend/internal/application/adapter"
	"github.com/task-tracker/backend/internal/application/usecase/auth"
	"github.com/task-tracker/backend/internal/application/usecase/task"
	"github.com/task-tracker/backend/internal/infra/db"
	"github.com/task-tracker/backend/internal/infra/server/router"
	"github.com/task-tracker/backend/internal/integration/adapters"
	"github.com/task-tracker/backend/internal/integration/email"
	"github.com/task-tracker/backend/internal/integration/email/templates"
	"github.com/task-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/task-tracker/backend/internal/integration/entrypoint/middleware"
	"github.com/task-tracker/backend/internal/integration/persistence"
	"github.com/task-tracker/backend/internal/integration/persistence/model"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration. Fails fast when JWT_SECRET is missing.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("Starting Task Tracker API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	// Initialize database connection
	var database *db.Database
	var dbHealthChecker func() bool

	database, err = db.NewPostgresConnection(&cfg.Database)
	if err != nil {
		slog.Warn("Database connection failed, running without database",
			"error", err,
		)
		database = nil
		dbHealthChecker = func() bool { return false }
	} else {
		// Run database migrations
		if err := database.AutoMigrate(
			&model.UserModel{},
			&model.TaskModel{},
			&model.EmailQueueModel{},
		); err != nil {
			slog.Error("Failed to run database migrations", "error", err)
			os.Exit(1)
		}
		slog.Info("Database migrations completed successfully")

		dbHealthChecker = database.HealthCheck
		defer func() {
			if err := database.Close(); err != nil {
				slog.Error("Failed to close database connection", "error", err)
			}
		}()
	}

	// Create health controller with database health checker
	healthController := controller.NewHealthController(dbHealthChecker)

	// Root context drives the email worker shutdown
	rootCtx, rootCancel := context.WithCancel(context.Background())
	defer rootCancel()

	// Create controllers and middleware (only if database is available)
	var authController *controller.AuthController
	var taskController *controller.TaskController
	var loginRateLimiter *middleware.RateLimiter
	var authMiddleware *middleware.AuthMiddleware

	if database != nil {
		// Create repositories
		userRepo := persistence.NewUserRepository(database.DB())
		taskRepo := persistence.NewTaskRepository(database.DB())
		emailQueueRepo := persistence.NewEmailQueueRepository(database.DB())

		// Create adapters/services
		passwordService := adapters.NewPasswordService()
		tokenService := adapters.NewTokenService(cfg.JWT.Secret, cfg.JWT.TokenExpiry)

		// Email pipeline is optional: without an API key registration still
		// works, welcome emails are just not queued.
		var emailService adapter.EmailService
		if cfg.Email.ResendAPIKey != "" {
			emailService = email.NewService(emailQueueRepo, cfg.Email.AppBaseURL)

			if cfg.Email.WorkerEnabled {
				renderer, err := templates.NewRenderer()
				if err != nil {
					slog.Error("Failed to initialize email templates", "error", err)
					os.Exit(1)
				}

				sender := email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
				worker := email.NewWorker(emailQueueRepo, sender, renderer, email.WorkerConfig{
					PollInterval: cfg.Email.PollInterval,
					BatchSize:    cfg.Email.BatchSize,
				})
				go worker.Start(rootCtx)
			}
		} else {
			slog.Info("Email pipeline disabled, RESEND_API_KEY not set")
		}

		// Create auth use cases
		registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, emailService)
		loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)

		// Create task use cases
		listTasksUseCase := task.NewListTasksUseCase(taskRepo)
		createTaskUseCase := task.NewCreateTaskUseCase(taskRepo)
		updateTaskUseCase := task.NewUpdateTaskUseCase(taskRepo)
		deleteTaskUseCase := task.NewDeleteTaskUseCase(taskRepo)

		// Create controllers
		authController = controller.NewAuthController(registerUseCase, loginUseCase)
		taskController = controller.NewTaskController(
			listTasksUseCase,
			createTaskUseCase,
			updateTaskUseCase,
			deleteTaskUseCase,
		)

		// Create middleware
		loginRateLimiter = middleware.NewRateLimiter()
		authMiddleware = middleware.NewAuthMiddleware(tokenService)

		slog.Info("Auth and Task systems initialized successfully")
	} else {
		slog.Warn("Auth and Task systems not initialized due to missing database connection")
	}

	// Setup router
	r := router.NewRouter(healthController, authController, taskController, loginRateLimiter, authMiddleware)
	engine := r.Setup(cfg.Server.Environment)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")
	rootCancel()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}
