// Package review drives the pending/approved/rejected lifecycle across
// applications, career proposals and teams. Every entry point re-verifies
// the caller's admin role against the users table; client-side role claims
// are never trusted.
package review

import (
	"fmt"
	"time"

	"github.com/JulianBerardinelli/ballershub/app/repository"
	"github.com/JulianBerardinelli/ballershub/internal/pkg/apperrors"
)

// Service is the approval orchestrator.
type Service struct {
	repos *repository.Repositories
	txn   func(fn func(repos *repository.Repositories) error) error
	now   func() time.Time
}

// NewService creates the orchestrator on top of the repository factory.
func NewService(f *repository.Factory) *Service {
	return &Service{
		repos: f.GetRepositories(),
		txn:   f.WithTransaction,
		now:   time.Now,
	}
}

// requireAdmin re-checks the reviewer's role on every call.
func (s *Service) requireAdmin(reviewerID uint) error {
	if reviewerID == 0 {
		return apperrors.ErrUnauthorized
	}
	user, err := s.repos.User.GetByID(reviewerID)
	if err != nil {
		if repository.IsNotFound(err) {
			return apperrors.ErrForbidden
		}
		return fmt.Errorf("reviewer lookup failed: %w", err)
	}
	if !user.IsAdmin() {
		return apperrors.ErrForbidden
	}
	return nil
}
