package repository

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/JulianBerardinelli/ballershub/app/models"
)

// applicationRepository implements the ApplicationRepository interface
type applicationRepository struct {
	db *gorm.DB
}

// NewApplicationRepository creates a new application repository instance
func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

// Create creates a new application in the database
func (r *applicationRepository) Create(app *models.PlayerApplication) error {
	return r.db.Create(app).Error
}

// GetByID retrieves an application by its ID
func (r *applicationRepository) GetByID(id uint) (*models.PlayerApplication, error) {
	var app models.PlayerApplication
	err := r.db.First(&app, id).Error
	if err != nil {
		return nil, err
	}
	return &app, nil
}

// GetByUUID retrieves an application by its public reference
func (r *applicationRepository) GetByUUID(uuid string) (*models.PlayerApplication, error) {
	var app models.PlayerApplication
	err := r.db.Where("uuid = ?", uuid).First(&app).Error
	if err != nil {
		return nil, err
	}
	return &app, nil
}

// FindPendingByUser returns the newest pending application for the user, or nil
func (r *applicationRepository) FindPendingByUser(userID uint) (*models.PlayerApplication, error) {
	var app models.PlayerApplication
	err := r.db.
		Where("user_id = ? AND status = ?", userID, models.ApplicationStatusPending).
		Order("created_at DESC").
		First(&app).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &app, nil
}

// Update updates an existing application in the database
func (r *applicationRepository) Update(app *models.PlayerApplication) error {
	return r.db.Save(app).Error
}

// MarkReviewed flips a pending application to the given terminal status.
// The status predicate makes the check-then-transition atomic: of two
// concurrent reviewers exactly one update matches a row.
func (r *applicationRepository) MarkReviewed(id uint, status string, reviewerID uint, at time.Time) (bool, error) {
	res := r.db.Model(&models.PlayerApplication{}).
		Where("id = ? AND status = ?", id, models.ApplicationStatusPending).
		Updates(map[string]interface{}{
			"status":              status,
			"reviewed_by_user_id": reviewerID,
			"reviewed_at":         at,
			"updated_at":          at,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// ListByStatus retrieves a paginated list of applications in the given status
func (r *applicationRepository) ListByStatus(status string, offset, limit int) ([]models.PlayerApplication, error) {
	var apps []models.PlayerApplication
	err := r.db.
		Where("status = ?", status).
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&apps).Error
	return apps, err
}

// CountByStatus returns the number of applications in the given status
func (r *applicationRepository) CountByStatus(status string) (int64, error) {
	var count int64
	err := r.db.Model(&models.PlayerApplication{}).Where("status = ?", status).Count(&count).Error
	return count, err
}
