package main

import (
	"context"
	"log"
	"net/http"

	_ "kodbank/docs" // swagger docs

	"github.com/labstack/echo/v4"

	"kodbank/internal/auth"
	"kodbank/internal/cache"
	"kodbank/internal/config"
	"kodbank/internal/db"
	"kodbank/internal/handler"
	"kodbank/internal/middleware"
	"kodbank/internal/model"
	"kodbank/internal/repository"
	"kodbank/internal/router"
	"kodbank/internal/service"
)

// @title KodBank API
// @version 1.0
// @description Bank demo API with credential authentication, server-side session tokens and balance lookup.
// @host localhost:5000
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the session token.
func main() {
	cfg := config.Load()

	e := echo.New()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Run migrations: users first so the token table's foreign key resolves.
	if err := gormDB.AutoMigrate(&model.User{}, &model.UserToken{}); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	tokenRepo := repository.NewTokenRepository(gormDB)

	// Expired rows are invisible to validation; purging at boot just keeps
	// the table from growing unbounded.
	if n, err := tokenRepo.DeleteExpired(context.Background()); err != nil {
		log.Printf("purge expired tokens: %v", err)
	} else if n > 0 {
		log.Printf("purged %d expired session tokens", n)
	}

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret, cfg.SessionTTL)
	guard := middleware.NewSessionGuard(jwtService, tokenRepo)

	// Initialize services
	authService := service.NewAuthService(userRepo, tokenRepo, jwtService)
	userService := service.NewUserService(userRepo, cacheClient)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService, cfg)
	userHandler := handler.NewUserHandler(userService)

	// Register routes
	router.Register(e, cfg, guard, authHandler, userHandler)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
