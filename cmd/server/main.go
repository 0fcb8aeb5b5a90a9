package main

import (
	"context"
	"log"
	"net/http"
	"os"

	_ "emlak/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"emlak/internal/auth"
	"emlak/internal/cache"
	"emlak/internal/config"
	"emlak/internal/db"
	"emlak/internal/handler"
	"emlak/internal/model"
	"emlak/internal/repository"
	"emlak/internal/router"
	"emlak/internal/service"
)

// @title Real Estate Listings API
// @version 1.0
// @description Property listing catalog with a JWT-protected admin panel.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.New(cfg)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		tables := []interface{}{
			&model.Image{},
			&model.Property{},
			&model.Admin{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.Admin{},
		&model.Property{},
		&model.Image{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	adminRepo := repository.NewAdminRepository(gormDB)
	propertyRepo := repository.NewPropertyRepository(gormDB)

	// Initialize services
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	authService := service.NewAuthService(adminRepo, jwtService)
	propertyService := service.NewPropertyService(propertyRepo, cacheClient)

	// Seed the configured admin when none exists
	if err := authService.EnsureAdmin(context.Background(), cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Fatalf("seed admin: %v", err)
	}

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	propertyHandler := handler.NewPropertyHandler(propertyService)
	adminPropertyHandler := handler.NewAdminPropertyHandler(propertyService)

	// Register routes
	router.Register(
		e,
		cfg,
		authHandler,
		propertyHandler,
		adminPropertyHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
