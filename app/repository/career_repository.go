package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/JulianBerardinelli/ballershub/app/models"
)

// careerProposalRepository implements the CareerProposalRepository interface
type careerProposalRepository struct {
	db *gorm.DB
}

// NewCareerProposalRepository creates a new career proposal repository instance
func NewCareerProposalRepository(db *gorm.DB) CareerProposalRepository {
	return &careerProposalRepository{db: db}
}

// GetByID retrieves a career item proposal by its ID
func (r *careerProposalRepository) GetByID(id uint) (*models.CareerItemProposal, error) {
	var item models.CareerItemProposal
	err := r.db.First(&item, id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// ListByApplication retrieves all proposals belonging to an application
func (r *careerProposalRepository) ListByApplication(applicationID uint) ([]models.CareerItemProposal, error) {
	var items []models.CareerItemProposal
	err := r.db.
		Where("application_id = ?", applicationID).
		Order("created_at ASC").
		Find(&items).Error
	return items, err
}

// ListPendingByApplication retrieves the proposals still awaiting review
func (r *careerProposalRepository) ListPendingByApplication(applicationID uint) ([]models.CareerItemProposal, error) {
	var items []models.CareerItemProposal
	err := r.db.
		Where("application_id = ? AND status = ?", applicationID, models.CareerItemStatusPending).
		Order("created_at ASC").
		Find(&items).Error
	return items, err
}

// ReplaceForApplication swaps the full proposal set of an application in one
// transaction so a failed insert cannot leave a half-written batch behind.
func (r *careerProposalRepository) ReplaceForApplication(applicationID uint, items []models.CareerItemProposal) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("application_id = ?", applicationID).
			Delete(&models.CareerItemProposal{}).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return nil
		}
		for i := range items {
			items[i].ApplicationID = applicationID
		}
		return tx.Create(&items).Error
	})
}

// Update updates an existing proposal in the database
func (r *careerProposalRepository) Update(item *models.CareerItemProposal) error {
	return r.db.Save(item).Error
}

// MarkStatus stamps the proposal with a review decision
func (r *careerProposalRepository) MarkStatus(id uint, status string, reviewerID uint, at time.Time) error {
	res := r.db.Model(&models.CareerItemProposal{}).
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
