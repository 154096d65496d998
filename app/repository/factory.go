package repository

import (
	"sync"

	"gorm.io/gorm"
)

// Repositories bundles every repository interface for dependency injection.
type Repositories struct {
	User          UserRepository
	Application   ApplicationRepository
	CareerItem    CareerProposalRepository
	Team          TeamRepository
	PlayerProfile PlayerProfileRepository
	Subscription  SubscriptionRepository
	AuditLog      AuditLogRepository
}

// NewRepositories creates all repositories bound to the given database handle
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		User:          NewUserRepository(db),
		Application:   NewApplicationRepository(db),
		CareerItem:    NewCareerProposalRepository(db),
		Team:          NewTeamRepository(db),
		PlayerProfile: NewPlayerProfileRepository(db),
		Subscription:  NewSubscriptionRepository(db),
		AuditLog:      NewAuditLogRepository(db),
	}
}

// Factory manages repository instances and ensures they are singletons
type Factory struct {
	db    *gorm.DB
	repos *Repositories
	once  sync.Once
}

// NewFactory creates a new repository factory
func NewFactory(db *gorm.DB) *Factory {
	return &Factory{
		db: db,
	}
}

// GetRepositories returns a singleton instance of all repositories
func (f *Factory) GetRepositories() *Repositories {
	f.once.Do(func() {
		f.repos = NewRepositories(f.db)
	})
	return f.repos
}

// WithTransaction runs fn against transaction-scoped repositories. The
// transaction commits when fn returns nil and rolls back otherwise, so a
// multi-entity write either lands completely or not at all.
func (f *Factory) WithTransaction(fn func(repos *Repositories) error) error {
	return f.db.Transaction(func(tx *gorm.DB) error {
		return fn(NewRepositories(tx))
	})
}

var (
	globalFactory *Factory
	globalOnce    sync.Once
)

// InitGlobalFactory initializes the process-wide factory once
func InitGlobalFactory(db *gorm.DB) {
	globalOnce.Do(func() {
		globalFactory = NewFactory(db)
	})
}

// GetGlobalFactory returns the process-wide factory
func GetGlobalFactory() *Factory {
	return globalFactory
}
