package review

import (
	"fmt"

	"github.com/JulianBerardinelli/ballershub/app/models"
	"github.com/JulianBerardinelli/ballershub/app/repository"
	"github.com/JulianBerardinelli/ballershub/internal/pkg/apperrors"
)

// PersonalInfoUpdate is the admin correction surface for an application's
// self-reported data, used to fix typos before approval.
type PersonalInfoUpdate struct {
	FullName    *string   `json:"full_name,omitempty"`
	Nationality *[]string `json:"nationality,omitempty"`
	Positions   *[]string `json:"positions,omitempty"`
	HeightCm    *int      `json:"height_cm,omitempty"`
	WeightKg    *int      `json:"weight_kg,omitempty"`
}

// UpdatePersonalInfo edits a pending application in place. Reviewed
// applications are immutable; corrections after approval belong on the
// profile instead.
func (s *Service) UpdatePersonalInfo(applicationID uint, update PersonalInfoUpdate, reviewerID uint) error {
	if err := s.requireAdmin(reviewerID); err != nil {
		return err
	}

	app, err := s.repos.Application.GetByID(applicationID)
	if err != nil {
		if repository.IsNotFound(err) {
			return apperrors.NotFoundf("application %d", applicationID)
		}
		return fmt.Errorf("application load failed: %w", err)
	}
	if !app.IsPending() {
		return fmt.Errorf("%w: application %d is no longer pending", apperrors.ErrInvalidState, applicationID)
	}

	if update.FullName != nil {
		app.FullName = *update.FullName
	}
	if update.Nationality != nil {
		app.Nationality = *update.Nationality
	}
	if update.Positions != nil {
		app.Positions = *update.Positions
	}
	if update.HeightCm != nil {
		app.HeightCm = update.HeightCm
	}
	if update.WeightKg != nil {
		app.WeightKg = update.WeightKg
	}

	if err := app.Validate(); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	return s.txn(func(repos *repository.Repositories) error {
		if err := repos.Application.Update(app); err != nil {
			return fmt.Errorf("application update failed: %w", err)
		}
		return repos.AuditLog.Append(&models.AuditLog{
			UserID:       reviewerID,
			Action:       models.AuditActionApplicationUpdate,
			SubjectTable: "player_applications",
			SubjectID:    app.ID,
		})
	})
}
