package repository

import (
	"gorm.io/gorm"

	"github.com/JulianBerardinelli/ballershub/app/models"
)

// playerProfileRepository implements the PlayerProfileRepository interface
type playerProfileRepository struct {
	db *gorm.DB
}

// NewPlayerProfileRepository creates a new player profile repository instance
func NewPlayerProfileRepository(db *gorm.DB) PlayerProfileRepository {
	return &playerProfileRepository{db: db}
}

// Create creates a new player profile in the database
func (r *playerProfileRepository) Create(profile *models.PlayerProfile) error {
	return r.db.Create(profile).Error
}

// GetByID retrieves a profile by its ID
func (r *playerProfileRepository) GetByID(id uint) (*models.PlayerProfile, error) {
	var profile models.PlayerProfile
	err := r.db.First(&profile, id).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// GetBySlug retrieves a profile by its public slug
func (r *playerProfileRepository) GetBySlug(slug string) (*models.PlayerProfile, error) {
	var profile models.PlayerProfile
	err := r.db.Where("slug = ?", slug).First(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// ExistsForApplication reports whether a profile was already materialized for
// the application. Backstop for the idempotent-approval invariant.
func (r *playerProfileRepository) ExistsForApplication(applicationID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.PlayerProfile{}).
		Where("application_id = ?", applicationID).
		Count(&count).Error
	return count > 0, err
}

// ListSlugsWithPrefix returns every profile slug starting with the prefix
func (r *playerProfileRepository) ListSlugsWithPrefix(prefix string) ([]string, error) {
	var slugs []string
	err := r.db.Model(&models.PlayerProfile{}).
		Where("slug LIKE ?", prefix+"%").
		Pluck("slug", &slugs).Error
	return slugs, err
}

// Update updates an existing profile in the database
func (r *playerProfileRepository) Update(profile *models.PlayerProfile) error {
	return r.db.Save(profile).Error
}
