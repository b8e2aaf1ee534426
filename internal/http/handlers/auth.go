package handlers

import (
	"net/http"

	"venuehours/internal/auth"
	"venuehours/internal/repo"
	"venuehours/pkg/models"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// AuthHandler serves owner authentication and registration
type AuthHandler struct {
	authService *auth.Service
	venueRepo   *repo.VenueRepository
	ownerRepo   *repo.OwnerRepository
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *auth.Service, venueRepo *repo.VenueRepository, ownerRepo *repo.OwnerRepository) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		venueRepo:   venueRepo,
		ownerRepo:   ownerRepo,
	}
}

// Login authenticates an owner
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	response, err := h.authService.Login(req)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid credentials")
	}

	return c.JSON(http.StatusOK, response)
}

// RegisterRequest is the payload for creating a venue with its first owner
type RegisterRequest struct {
	VenueName  string `json:"venue_name" validate:"required"`
	VenueSlug  string `json:"venue_slug" validate:"required"`
	OwnerName  string `json:"owner_name" validate:"required"`
	OwnerEmail string `json:"owner_email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=8"`
}

// Register creates a venue and its owner account. The venue starts without
// stored hours; the detail view shows "Hours not available" until the owner
// saves a schedule.
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	hash, err := h.authService.HashPassword(req.Password)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to create account")
	}

	venue := &models.Venue{
		Name:     req.VenueName,
		Slug:     req.VenueSlug,
		IsActive: true,
	}
	if err := h.venueRepo.Create(venue); err != nil {
		return echo.NewHTTPError(http.StatusConflict, "venue slug already in use")
	}

	owner := &models.Owner{
		VenueID:  venue.ID,
		Email:    req.OwnerEmail,
		Password: hash,
		Name:     req.OwnerName,
		IsActive: true,
	}
	if err := h.ownerRepo.Create(owner); err != nil {
		return echo.NewHTTPError(http.StatusConflict, "owner email already in use")
	}

	log.Info().Str("venue_id", venue.ID.String()).Str("slug", venue.Slug).Msg("Venue registered")

	response, err := h.authService.Login(models.LoginRequest{Email: req.OwnerEmail, Password: req.Password})
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "account created but login failed")
	}

	return c.JSON(http.StatusCreated, response)
}
