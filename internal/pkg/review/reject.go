package review

import (
	"fmt"

	"github.com/JulianBerardinelli/ballershub/app/models"
	"github.com/JulianBerardinelli/ballershub/app/repository"
	"github.com/JulianBerardinelli/ballershub/internal/pkg/apperrors"
)

// RejectApplication closes a pending application without creating a profile.
// Like approval it uses the conditional status update, so only one reviewer
// can win.
func (s *Service) RejectApplication(applicationID, reviewerID uint, reason string) error {
	if err := s.requireAdmin(reviewerID); err != nil {
		return err
	}

	if _, err := s.repos.Application.GetByID(applicationID); err != nil {
		if repository.IsNotFound(err) {
			return apperrors.NotFoundf("application %d", applicationID)
		}
		return fmt.Errorf("application load failed: %w", err)
	}

	now := s.now()
	return s.txn(func(repos *repository.Repositories) error {
		ok, err := repos.Application.MarkReviewed(applicationID, models.ApplicationStatusRejected, reviewerID, now)
		if err != nil {
			return fmt.Errorf("application reject failed: %w", err)
		}
		if !ok {
			return fmt.Errorf("%w: application %d is no longer pending", apperrors.ErrInvalidState, applicationID)
		}

		entry := &models.AuditLog{
			UserID:       reviewerID,
			Action:       models.AuditActionApplicationReject,
			SubjectTable: "player_applications",
			SubjectID:    applicationID,
		}
		if reason != "" {
			entry.Meta = map[string]string{"reason": reason}
		}
		return repos.AuditLog.Append(entry)
	})
}

// RejectCareerItem marks a single proposal rejected. Rejected rows stay on
// the application for the audit trail; they are simply never materialized.
func (s *Service) RejectCareerItem(itemID, reviewerID uint) error {
	if err := s.requireAdmin(reviewerID); err != nil {
		return err
	}

	if _, err := s.repos.CareerItem.GetByID(itemID); err != nil {
		if repository.IsNotFound(err) {
			return apperrors.NotFoundf("career item %d", itemID)
		}
		return fmt.Errorf("career item load failed: %w", err)
	}

	now := s.now()
	return s.txn(func(repos *repository.Repositories) error {
		if err := repos.CareerItem.MarkStatus(itemID, models.CareerItemStatusRejected, reviewerID, now); err != nil {
			return fmt.Errorf("career item reject failed: %w", err)
		}
		return repos.AuditLog.Append(&models.AuditLog{
			UserID:       reviewerID,
			Action:       models.AuditActionCareerItemReject,
			SubjectTable: "career_item_proposals",
			SubjectID:    itemID,
		})
	})
}

// ApproveTeam promotes a registry entry to approved, making it eligible for
// public search and direct selection at intake.
func (s *Service) ApproveTeam(teamID, reviewerID uint) error {
	return s.reviewTeam(teamID, reviewerID, models.TeamStatusApproved, models.AuditActionTeamApprove)
}

// RejectTeam marks a registry entry rejected. Career items already linked to
// it keep their link; the team just never surfaces publicly.
func (s *Service) RejectTeam(teamID, reviewerID uint) error {
	return s.reviewTeam(teamID, reviewerID, models.TeamStatusRejected, models.AuditActionTeamReject)
}

func (s *Service) reviewTeam(teamID, reviewerID uint, status, action string) error {
	if err := s.requireAdmin(reviewerID); err != nil {
		return err
	}

	if _, err := s.repos.Team.GetByID(teamID); err != nil {
		if repository.IsNotFound(err) {
			return apperrors.NotFoundf("team %d", teamID)
		}
		return fmt.Errorf("team load failed: %w", err)
	}

	now := s.now()
	return s.txn(func(repos *repository.Repositories) error {
		if err := repos.Team.MarkStatus(teamID, status, reviewerID, now); err != nil {
			return fmt.Errorf("team review failed: %w", err)
		}
		return repos.AuditLog.Append(&models.AuditLog{
			UserID:       reviewerID,
			Action:       action,
			SubjectTable: "teams",
			SubjectID:    teamID,
		})
	})
}
