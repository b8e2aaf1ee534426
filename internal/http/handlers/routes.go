package handlers

import (
	"venuehours/internal/auth"
	"venuehours/internal/http/middleware"
	"venuehours/internal/repo"
	"venuehours/internal/services"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// SetupRoutes sets up all API routes
func SetupRoutes(api *echo.Group, database *gorm.DB) {
	venueRepo := repo.NewVenueRepository(database)
	ownerRepo := repo.NewOwnerRepository(database)

	authService := auth.NewService(ownerRepo)
	hoursService := services.NewVenueHoursService(venueRepo)

	authHandler := NewAuthHandler(authService, venueRepo, ownerRepo)
	venueHandler := NewVenueHandler(venueRepo, hoursService)

	// Auth routes (no authentication required)
	authGroup := api.Group("/auth")
	authGroup.POST("/login", authHandler.Login)
	authGroup.POST("/register", authHandler.Register)

	// Public venue routes: listings, detail badge, rendered hours
	api.GET("/venues", venueHandler.List)
	api.GET("/venues/:id", venueHandler.GetByID)
	api.GET("/venues/:id/availability", venueHandler.GetAvailability)

	// Owner routes (require authentication and venue ownership)
	ownerGroup := api.Group("/venues/:id")
	ownerGroup.Use(middleware.JWTAuth(authService))
	ownerGroup.Use(middleware.RequireVenueAccess())
	ownerGroup.GET("/schedule", venueHandler.GetSchedule)
	ownerGroup.PUT("/schedule", venueHandler.UpdateSchedule)
	ownerGroup.PUT("/hours-text", venueHandler.UpdateHoursText)
}
