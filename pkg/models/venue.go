package models

// Venue represents a business location whose operating hours are served by
// the API. HoursRaw is the opaque stored hours value: either a structured
// weekly schedule as JSON, a legacy free-text description (bare or wrapped
// in {"text": ...}), or NULL when the owner never set hours. It is persisted
// verbatim and only ever interpreted by the hours engine.
type Venue struct {
	BaseModel
	Name     string  `gorm:"not null" json:"name" validate:"required"`
	Slug     string  `gorm:"unique;not null;index" json:"slug" validate:"required"`
	Phone    string  `json:"phone"`
	Address  string  `json:"address"`
	HoursRaw *string `gorm:"column:hours_raw;type:text" json:"-"`
	IsActive bool    `gorm:"default:true" json:"is_active"`
}
