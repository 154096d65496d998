package review

import (
	"fmt"

	"github.com/JulianBerardinelli/ballershub/app/models"
	"github.com/JulianBerardinelli/ballershub/app/repository"
	"github.com/JulianBerardinelli/ballershub/internal/pkg/apperrors"
	"github.com/JulianBerardinelli/ballershub/internal/pkg/entitlements"
	"github.com/JulianBerardinelli/ballershub/internal/pkg/slugify"
)

// ApproveApplication approves a pending application and materializes its
// public side effects: the player profile and the entitlement row. The whole
// cascade is one transaction; the status transition itself is a conditional
// update, so of two concurrent approvals one loses and observes
// ErrInvalidState. A repeated call on an approved application is rejected
// the same way, never re-executed.
func (s *Service) ApproveApplication(applicationID, reviewerID uint) (uint, error) {
	if err := s.requireAdmin(reviewerID); err != nil {
		return 0, err
	}

	app, err := s.repos.Application.GetByID(applicationID)
	if err != nil {
		if repository.IsNotFound(err) {
			return 0, apperrors.NotFoundf("application %d", applicationID)
		}
		return 0, fmt.Errorf("application load failed: %w", err)
	}
	if !app.IsPending() {
		return 0, fmt.Errorf("%w: application %d is %s", apperrors.ErrInvalidState, applicationID, app.Status)
	}

	// Prefer the registry name over whatever free text the applicant typed.
	clubName := app.CurrentClub
	if app.CurrentTeamID != nil {
		team, err := s.repos.Team.GetByID(*app.CurrentTeamID)
		if err != nil && !repository.IsNotFound(err) {
			return 0, fmt.Errorf("team load failed: %w", err)
		}
		if team != nil {
			clubName = team.Name
		}
	}

	fullName := app.FullName
	if fullName == "" {
		fullName = "Player"
	}

	var profileID uint
	err = s.txn(func(repos *repository.Repositories) error {
		exists, err := repos.PlayerProfile.ExistsForApplication(app.ID)
		if err != nil {
			return fmt.Errorf("profile lookup failed: %w", err)
		}
		if exists {
			return fmt.Errorf("%w: application %d already has a profile", apperrors.ErrInvalidState, app.ID)
		}

		slug, err := slugify.EnsureUnique(
			slugify.Slugify(fullName, "player"),
			repos.PlayerProfile.ListSlugsWithPrefix,
		)
		if err != nil {
			return err
		}

		profile := &models.PlayerProfile{
			UserID:        app.UserID,
			ApplicationID: app.ID,
			Slug:          slug,
			FullName:      fullName,
			Nationality:   app.Nationality,
			Positions:     app.Positions,
			CurrentClub:   clubName,
			CurrentTeamID: app.CurrentTeamID,
			Visibility:    models.VisibilityPublic,
			Status:        models.PlayerStatusApproved,
		}
		if err := repos.PlayerProfile.Create(profile); err != nil {
			return fmt.Errorf("profile insert failed: %w", err)
		}

		if err := repos.Subscription.Upsert(entitlements.DefaultSubscription(app.UserID)); err != nil {
			return fmt.Errorf("subscription upsert failed: %w", err)
		}

		ok, err := repos.Application.MarkReviewed(app.ID, models.ApplicationStatusApproved, reviewerID, s.now())
		if err != nil {
			return fmt.Errorf("application update failed: %w", err)
		}
		if !ok {
			// someone else reviewed it between our load and this update
			return fmt.Errorf("%w: application %d is no longer pending", apperrors.ErrInvalidState, app.ID)
		}

		if err := repos.AuditLog.Append(&models.AuditLog{
			UserID:       reviewerID,
			Action:       models.AuditActionApplicationApprove,
			SubjectTable: "player_applications",
			SubjectID:    app.ID,
			Meta:         map[string]string{"profile_slug": slug},
		}); err != nil {
			return fmt.Errorf("audit insert failed: %w", err)
		}

		profileID = profile.ID
		return nil
	})
	if err != nil {
		return 0, err
	}
	return profileID, nil
}
