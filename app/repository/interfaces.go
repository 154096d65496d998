package repository

import (
	"time"

	"github.com/JulianBerardinelli/ballershub/app/models"
)

// UserRepository defines the interface for user-related database operations
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Update(user *models.User) error
	List(offset, limit int) ([]models.User, error)
	Count() (int64, error)
}

// ApplicationRepository defines the interface for player application operations
type ApplicationRepository interface {
	Create(app *models.PlayerApplication) error
	GetByID(id uint) (*models.PlayerApplication, error)
	GetByUUID(uuid string) (*models.PlayerApplication, error)
	// FindPendingByUser returns the newest pending application for the user,
	// or nil when none exists.
	FindPendingByUser(userID uint) (*models.PlayerApplication, error)
	Update(app *models.PlayerApplication) error
	// MarkReviewed transitions the row out of pending with a conditional
	// update. It reports false when no pending row matched, which is how a
	// concurrent reviewer losing the race observes the conflict.
	MarkReviewed(id uint, status string, reviewerID uint, at time.Time) (bool, error)
	ListByStatus(status string, offset, limit int) ([]models.PlayerApplication, error)
	CountByStatus(status string) (int64, error)
}

// CareerProposalRepository defines the interface for career item proposal operations
type CareerProposalRepository interface {
	GetByID(id uint) (*models.CareerItemProposal, error)
	ListByApplication(applicationID uint) ([]models.CareerItemProposal, error)
	ListPendingByApplication(applicationID uint) ([]models.CareerItemProposal, error)
	// ReplaceForApplication deletes every proposal of the application and
	// inserts the given batch in its place.
	ReplaceForApplication(applicationID uint, items []models.CareerItemProposal) error
	Update(item *models.CareerItemProposal) error
	MarkStatus(id uint, status string, reviewerID uint, at time.Time) error
}

// TeamRepository defines the interface for team registry operations
type TeamRepository interface {
	Create(team *models.Team) error
	GetByID(id uint) (*models.Team, error)
	GetBySlug(slug string) (*models.Team, error)
	// FindByNameFold matches the exact name case-insensitively, then falls
	// back to a substring match.
	FindByNameFold(name string) ([]models.Team, error)
	ListSlugsWithPrefix(prefix string) ([]string, error)
	Update(team *models.Team) error
	MarkStatus(id uint, status string, reviewerID uint, at time.Time) error
	SearchApproved(query string, limit int) ([]models.Team, error)
}

// PlayerProfileRepository defines the interface for public profile operations
type PlayerProfileRepository interface {
	Create(profile *models.PlayerProfile) error
	GetByID(id uint) (*models.PlayerProfile, error)
	GetBySlug(slug string) (*models.PlayerProfile, error)
	ExistsForApplication(applicationID uint) (bool, error)
	ListSlugsWithPrefix(prefix string) ([]string, error)
	Update(profile *models.PlayerProfile) error
}

// SubscriptionRepository defines the interface for entitlement rows
type SubscriptionRepository interface {
	// Upsert inserts the subscription or updates the existing row for the
	// same user. It never creates a second row per user.
	Upsert(sub *models.Subscription) error
	GetByUserID(userID uint) (*models.Subscription, error)
}

// AuditLogRepository defines the interface for the append-only audit trail
type AuditLogRepository interface {
	Append(entry *models.AuditLog) error
	ListBySubject(subjectTable string, subjectID uint, limit int) ([]models.AuditLog, error)
}
