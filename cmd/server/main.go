package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/eaglebank/eagle-bank-api/internal/adapter/http/controller"
	"github.com/eaglebank/eagle-bank-api/internal/adapter/http/middleware"
	"github.com/eaglebank/eagle-bank-api/internal/adapter/http/router"
	"github.com/eaglebank/eagle-bank-api/internal/adapter/repository/postgres"
	"github.com/eaglebank/eagle-bank-api/internal/config"
	"github.com/eaglebank/eagle-bank-api/internal/logger"
	"github.com/eaglebank/eagle-bank-api/internal/usecase/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	startupCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := postgres.Open(startupCtx, cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()

	if err := postgres.RunMigrations(startupCtx, db, cfg.MigrationsDir); err != nil {
		log.Fatalf("run migrations: %v", err)
	}

	userRepo := postgres.NewUserRepository(db)
	accountRepo := postgres.NewAccountRepository(db)
	transactionRepo := postgres.NewTransactionRepository(db)

	authService := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	userService := services.NewUserService(userRepo, accountRepo)
	accountService := services.NewAccountService(accountRepo, transactionRepo)
	transactionService := services.NewTransactionService(accountRepo, transactionRepo)

	authMiddleware := middleware.JWTAuth(cfg.JWTSecret)
	mux := router.New(
		controller.NewAuthController(authService),
		controller.NewUserController(userService),
		controller.NewAccountController(accountService),
		controller.NewTransactionController(transactionService),
		authMiddleware,
	)

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server starting", logger.Fields{
			"port": cfg.HTTPPort,
		})
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			log.Fatalf("listen and serve: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", err, nil)
		return
	}

	logger.Info("server stopped", nil)
}
