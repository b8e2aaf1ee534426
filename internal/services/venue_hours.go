package services

import (
	"encoding/json"
	"fmt"
	"time"

	"venuehours/internal/hours"
	"venuehours/internal/repo"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// InvalidScheduleError reports a schedule the owner must fix before saving.
// The reason is the validator's message, shown to the owner as-is.
type InvalidScheduleError struct {
	Reason string
}

func (e *InvalidScheduleError) Error() string {
	return e.Reason
}

// VenueHoursService bridges venue storage and the hours engine. The stored
// hours value stays opaque here: it is read and written verbatim, and only
// the engine interprets it.
type VenueHoursService struct {
	venueRepo *repo.VenueRepository
}

// NewVenueHoursService creates a new venue hours service
func NewVenueHoursService(venueRepo *repo.VenueRepository) *VenueHoursService {
	return &VenueHoursService{venueRepo: venueRepo}
}

// GetAvailability computes the live open/closed payload for a venue at the
// given wall-clock time.
func (s *VenueHoursService) GetAvailability(venueID uuid.UUID, now time.Time) (*hours.Availability, error) {
	venue, err := s.venueRepo.GetByID(venueID)
	if err != nil {
		return nil, err
	}

	availability := hours.Evaluate(rawHours(venue.HoursRaw), now)
	return &availability, nil
}

// GetSchedule returns the venue's schedule for the editing surface. Legacy
// or missing values come back as the default schedule, so the editor always
// starts from a valid week.
func (s *VenueHoursService) GetSchedule(venueID uuid.UUID) (hours.WeeklySchedule, error) {
	venue, err := s.venueRepo.GetByID(venueID)
	if err != nil {
		return hours.WeeklySchedule{}, err
	}
	return hours.Normalize(rawHours(venue.HoursRaw)), nil
}

// UpdateSchedule validates and persists a structured weekly schedule.
// A range violation is returned as *InvalidScheduleError and nothing is
// written.
func (s *VenueHoursService) UpdateSchedule(venueID uuid.UUID, schedule hours.WeeklySchedule) error {
	if err := hours.Validate(schedule); err != nil {
		return &InvalidScheduleError{Reason: err.Error()}
	}

	encoded, err := json.Marshal(schedule)
	if err != nil {
		return fmt.Errorf("failed to encode schedule: %w", err)
	}

	raw := string(encoded)
	if err := s.venueRepo.UpdateHours(venueID, &raw); err != nil {
		return fmt.Errorf("failed to save schedule: %w", err)
	}

	log.Info().Str("venue_id", venueID.String()).Msg("Venue schedule updated")
	return nil
}

// SetLegacyText stores a free-text hours description. Empty text clears the
// stored hours entirely.
func (s *VenueHoursService) SetLegacyText(venueID uuid.UUID, text string) error {
	var raw *string
	if text != "" {
		encoded, err := json.Marshal(text)
		if err != nil {
			return fmt.Errorf("failed to encode hours text: %w", err)
		}
		value := string(encoded)
		raw = &value
	}

	if err := s.venueRepo.UpdateHours(venueID, raw); err != nil {
		return fmt.Errorf("failed to save hours text: %w", err)
	}

	log.Info().Str("venue_id", venueID.String()).Bool("cleared", raw == nil).Msg("Venue hours text updated")
	return nil
}

func rawHours(stored *string) []byte {
	if stored == nil {
		return nil
	}
	return []byte(*stored)
}
