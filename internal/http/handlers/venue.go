package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"venuehours/internal/hours"
	"venuehours/internal/repo"
	"venuehours/internal/services"
	"venuehours/pkg/models"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// VenueHandler serves venue listings and the operating-hours endpoints
type VenueHandler struct {
	venueRepo    *repo.VenueRepository
	hoursService *services.VenueHoursService
}

// NewVenueHandler creates a new venue handler
func NewVenueHandler(venueRepo *repo.VenueRepository, hoursService *services.VenueHoursService) *VenueHandler {
	return &VenueHandler{
		venueRepo:    venueRepo,
		hoursService: hoursService,
	}
}

// venueDetail is the detail-view payload: the venue plus its live status
type venueDetail struct {
	Venue        models.Venue       `json:"venue"`
	Availability hours.Availability `json:"availability"`
}

// List returns active venues with pagination
func (h *VenueHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	if page < 1 {
		page = 1
	}
	perPage, _ := strconv.Atoi(c.QueryParam("per_page"))
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	result, err := h.venueRepo.List(page, perPage)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to list venues")
	}
	return c.JSON(http.StatusOK, result)
}

// GetByID returns a venue with its current availability
func (h *VenueHandler) GetByID(c echo.Context) error {
	id, err := parseVenueID(c)
	if err != nil {
		return err
	}

	venue, err := h.venueRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "venue not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to load venue")
	}

	availability, err := h.hoursService.GetAvailability(id, time.Now())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to compute availability")
	}

	return c.JSON(http.StatusOK, venueDetail{Venue: *venue, Availability: *availability})
}

// GetAvailability returns the live open/closed status badge payload
func (h *VenueHandler) GetAvailability(c echo.Context) error {
	id, err := parseVenueID(c)
	if err != nil {
		return err
	}

	availability, err := h.hoursService.GetAvailability(id, time.Now())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "venue not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to compute availability")
	}

	return c.JSON(http.StatusOK, availability)
}

// GetSchedule returns the normalized weekly schedule for the editing surface
func (h *VenueHandler) GetSchedule(c echo.Context) error {
	id, err := parseVenueID(c)
	if err != nil {
		return err
	}

	schedule, err := h.hoursService.GetSchedule(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "venue not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to load schedule")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"schedule":     schedule,
		"display_text": hours.DisplayText(schedule),
	})
}

// UpdateSchedule validates and saves a structured weekly schedule
func (h *VenueHandler) UpdateSchedule(c echo.Context) error {
	id, err := parseVenueID(c)
	if err != nil {
		return err
	}

	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid schedule payload")
	}

	// Strict structural check: anything short of a full weekly schedule is
	// rejected here instead of being silently replaced by the default.
	stored := hours.Classify(body)
	if stored.Kind != hours.KindStructured {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid schedule payload")
	}
	schedule := stored.Schedule

	if err := h.hoursService.UpdateSchedule(id, schedule); err != nil {
		var invalid *services.InvalidScheduleError
		if errors.As(err, &invalid) {
			return echo.NewHTTPError(http.StatusUnprocessableEntity, invalid.Reason)
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to save schedule")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"schedule":     schedule,
		"display_text": hours.DisplayText(schedule),
	})
}

// UpdateHoursText saves a legacy free-text hours description
func (h *VenueHandler) UpdateHoursText(c echo.Context) error {
	id, err := parseVenueID(c)
	if err != nil {
		return err
	}

	var request struct {
		Text string `json:"text"`
	}
	if err := c.Bind(&request); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	if err := h.hoursService.SetLegacyText(id, request.Text); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to save hours text")
	}

	return c.NoContent(http.StatusNoContent)
}

func parseVenueID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, "invalid venue ID")
	}
	return id, nil
}
