package repo

import (
	"time"

	"venuehours/pkg/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OwnerRepository handles owner data access
type OwnerRepository struct {
	db *gorm.DB
}

// NewOwnerRepository creates a new owner repository
func NewOwnerRepository(db *gorm.DB) *OwnerRepository {
	return &OwnerRepository{db: db}
}

// GetByID gets an owner by ID
func (r *OwnerRepository) GetByID(id uuid.UUID) (*models.Owner, error) {
	var owner models.Owner
	if err := r.db.Where("id = ?", id).First(&owner).Error; err != nil {
		return nil, err
	}
	return &owner, nil
}

// GetByEmail gets an active owner by email
func (r *OwnerRepository) GetByEmail(email string) (*models.Owner, error) {
	var owner models.Owner
	if err := r.db.Where("email = ? AND is_active = true", email).First(&owner).Error; err != nil {
		return nil, err
	}
	return &owner, nil
}

// Create creates a new owner
func (r *OwnerRepository) Create(owner *models.Owner) error {
	return r.db.Create(owner).Error
}

// UpdateLastLogin records a successful login
func (r *OwnerRepository) UpdateLastLogin(id uuid.UUID) error {
	now := time.Now()
	return r.db.Model(&models.Owner{}).Where("id = ?", id).Update("last_login_at", &now).Error
}
