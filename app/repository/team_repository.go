package repository

import (
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/JulianBerardinelli/ballershub/app/models"
)

// teamRepository implements the TeamRepository interface
type teamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new team repository instance
func NewTeamRepository(db *gorm.DB) TeamRepository {
	return &teamRepository{db: db}
}

// Create creates a new team in the database
func (r *teamRepository) Create(team *models.Team) error {
	return r.db.Create(team).Error
}

// GetByID retrieves a team by its ID
func (r *teamRepository) GetByID(id uint) (*models.Team, error) {
	var team models.Team
	err := r.db.First(&team, id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetBySlug retrieves a team by its unique slug
func (r *teamRepository) GetBySlug(slug string) (*models.Team, error) {
	var team models.Team
	err := r.db.Where("slug = ?", slug).First(&team).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// FindByNameFold matches the trimmed name case-insensitively, exact match
// first, then substring. Ordered so exact hits win for the resolver.
func (r *teamRepository) FindByNameFold(name string) ([]models.Team, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, nil
	}
	var teams []models.Team
	err := r.db.
		Where("LOWER(name) = LOWER(?)", trimmed).
		Order("created_at ASC").
		Find(&teams).Error
	if err != nil {
		return nil, err
	}
	if len(teams) > 0 {
		return teams, nil
	}
	pattern := "%" + trimmed + "%"
	err = r.db.
		Where("name LIKE ?", pattern).
		Order("created_at ASC").
		Find(&teams).Error
	return teams, err
}

// ListSlugsWithPrefix returns every slug starting with the given prefix
func (r *teamRepository) ListSlugsWithPrefix(prefix string) ([]string, error) {
	var slugs []string
	err := r.db.Model(&models.Team{}).
		Where("slug LIKE ?", prefix+"%").
		Pluck("slug", &slugs).Error
	return slugs, err
}

// Update updates an existing team in the database
func (r *teamRepository) Update(team *models.Team) error {
	return r.db.Save(team).Error
}

// MarkStatus stamps the team with a review decision
func (r *teamRepository) MarkStatus(id uint, status string, reviewerID uint, at time.Time) error {
	res := r.db.Model(&models.Team{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":              status,
			"reviewed_by_user_id": reviewerID,
			"reviewed_at":         at,
			"updated_at":          at,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// SearchApproved searches approved public teams by name or alias substring
func (r *teamRepository) SearchApproved(query string, limit int) ([]models.Team, error) {
	var teams []models.Team
	pattern := "%" + strings.TrimSpace(query) + "%"
	err := r.db.
		Where("status = ? AND visibility = ?", models.TeamStatusApproved, models.VisibilityPublic).
		Where("name LIKE ? OR slug LIKE ?", pattern, pattern).
		Order("featured DESC, name ASC").
		Limit(limit).
		Find(&teams).Error
	return teams, err
}
