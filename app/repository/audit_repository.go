package repository

import (
	"gorm.io/gorm"

	"github.com/JulianBerardinelli/ballershub/app/models"
)

// auditLogRepository implements the AuditLogRepository interface
type auditLogRepository struct {
	db *gorm.DB
}

// NewAuditLogRepository creates a new audit log repository instance
func NewAuditLogRepository(db *gorm.DB) AuditLogRepository {
	return &auditLogRepository{db: db}
}

// Append writes one audit entry. Entries are never updated or deleted.
func (r *auditLogRepository) Append(entry *models.AuditLog) error {
	return r.db.Create(entry).Error
}

// ListBySubject retrieves the newest audit entries for one subject row
func (r *auditLogRepository) ListBySubject(subjectTable string, subjectID uint, limit int) ([]models.AuditLog, error) {
	var entries []models.AuditLog
	err := r.db.
		Where("subject_table = ? AND subject_id = ?", subjectTable, subjectID).
		Order("created_at DESC").
		Limit(limit).
		Find(&entries).Error
	return entries, err
}
