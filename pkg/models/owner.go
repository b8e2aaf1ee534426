package models

import (
	"time"

	"github.com/google/uuid"
)

// Owner represents a venue owner who can edit operating hours
type Owner struct {
	BaseModel
	VenueID     uuid.UUID  `gorm:"type:uuid;index;not null" json:"venue_id"`
	Email       string     `gorm:"unique;not null" json:"email" validate:"required,email"`
	Password    string     `gorm:"not null" json:"-"`
	Name        string     `gorm:"not null" json:"name" validate:"required"`
	IsActive    bool       `gorm:"default:true" json:"is_active"`
	LastLoginAt *time.Time `json:"last_login_at"`
}

// LoginRequest is the payload for owner login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the issued token and the owner profile
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
	Owner       Owner  `json:"owner"`
}
