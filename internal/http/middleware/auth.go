package middleware

import (
	"net/http"
	"strings"

	"venuehours/internal/auth"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// JWTAuth middleware validates owner JWT tokens
func JWTAuth(authService *auth.Service) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Missing authorization header")
			}

			if !strings.HasPrefix(authHeader, "Bearer ") {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid authorization header format")
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Missing token")
			}

			claims, err := authService.ValidateToken(tokenString)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
			}

			c.Set("claims", claims)
			c.Set("owner_id", claims.OwnerID)
			c.Set("venue_id", claims.VenueID)
			c.Set("owner_email", claims.Email)

			return next(c)
		}
	}
}

// RequireVenueAccess ensures the authenticated owner manages the venue named
// in the :id path parameter.
func RequireVenueAccess() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			venueID, ok := c.Get("venue_id").(uuid.UUID)
			if !ok {
				return echo.NewHTTPError(http.StatusForbidden, "Venue access not resolved")
			}

			pathID, err := uuid.Parse(c.Param("id"))
			if err != nil {
				return echo.NewHTTPError(http.StatusBadRequest, "Invalid venue ID")
			}

			if pathID != venueID {
				return echo.NewHTTPError(http.StatusForbidden, "Not allowed to manage this venue")
			}

			return next(c)
		}
	}
}
