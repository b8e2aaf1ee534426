package repo

import (
	"venuehours/pkg/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VenueRepository handles venue data access
type VenueRepository struct {
	db *gorm.DB
}

// NewVenueRepository creates a new venue repository
func NewVenueRepository(db *gorm.DB) *VenueRepository {
	return &VenueRepository{db: db}
}

// GetByID gets a venue by ID
func (r *VenueRepository) GetByID(id uuid.UUID) (*models.Venue, error) {
	var venue models.Venue
	if err := r.db.Where("id = ?", id).First(&venue).Error; err != nil {
		return nil, err
	}
	return &venue, nil
}

// GetBySlug gets a venue by its public slug
func (r *VenueRepository) GetBySlug(slug string) (*models.Venue, error) {
	var venue models.Venue
	if err := r.db.Where("slug = ?", slug).First(&venue).Error; err != nil {
		return nil, err
	}
	return &venue, nil
}

// Create creates a new venue
func (r *VenueRepository) Create(venue *models.Venue) error {
	return r.db.Create(venue).Error
}

// Update updates a venue
func (r *VenueRepository) Update(venue *models.Venue) error {
	return r.db.Save(venue).Error
}

// UpdateHours replaces only the stored hours value of a venue. A nil value
// clears the hours entirely.
func (r *VenueRepository) UpdateHours(id uuid.UUID, raw *string) error {
	return r.db.Model(&models.Venue{}).Where("id = ?", id).Update("hours_raw", raw).Error
}

// List gets active venues with pagination, ordered by name
func (r *VenueRepository) List(page, perPage int) (*models.PaginationResult[models.Venue], error) {
	var venues []models.Venue
	var total int64

	query := r.db.Model(&models.Venue{}).Where("is_active = true")
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	offset := (page - 1) * perPage
	if err := query.Order("name ASC").Offset(offset).Limit(perPage).Find(&venues).Error; err != nil {
		return nil, err
	}

	totalPages := int((total + int64(perPage) - 1) / int64(perPage))
	return &models.PaginationResult[models.Venue]{
		Data:       venues,
		Total:      total,
		Page:       page,
		PerPage:    perPage,
		TotalPages: totalPages,
	}, nil
}
