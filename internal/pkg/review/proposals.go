package review

import (
	"fmt"
	"strconv"

	"github.com/JulianBerardinelli/ballershub/app/models"
	"github.com/JulianBerardinelli/ballershub/app/repository"
	"github.com/JulianBerardinelli/ballershub/internal/pkg/apperrors"
	"github.com/JulianBerardinelli/ballershub/internal/pkg/career"
	"github.com/JulianBerardinelli/ballershub/internal/pkg/teams"
)

// AcceptSummary reports what a bulk acceptance did.
type AcceptSummary struct {
	CreatedTeams  int `json:"created_teams"`
	AcceptedItems int `json:"accepted_items"`
}

// AcceptAllCareerProposals accepts every pending career proposal of an
// application. Items already linked to a team are accepted as they are;
// unresolved clubs go through the team resolver with a dedup scope covering
// the whole batch, so repeated club names inside one application collapse to
// a single new pending team. The batch is one transaction.
func (s *Service) AcceptAllCareerProposals(applicationID, reviewerID uint) (AcceptSummary, error) {
	var summary AcceptSummary

	if err := s.requireAdmin(reviewerID); err != nil {
		return summary, err
	}

	if _, err := s.repos.Application.GetByID(applicationID); err != nil {
		if repository.IsNotFound(err) {
			return summary, apperrors.NotFoundf("application %d", applicationID)
		}
		return summary, fmt.Errorf("application load failed: %w", err)
	}

	items, err := s.repos.CareerItem.ListPendingByApplication(applicationID)
	if err != nil {
		return summary, fmt.Errorf("proposal load failed: %w", err)
	}
	if len(items) == 0 {
		return summary, nil
	}

	now := s.now()
	err = s.txn(func(repos *repository.Repositories) error {
		resolver := teams.NewResolver(repos.Team)

		for i := range items {
			item := &items[i]

			if !item.HasTeam() {
				name := item.ProposedTeamName
				if name == "" {
					name = item.Club
				}
				teamID, created, err := resolver.Resolve(teams.ClubRef{
					Name:              name,
					Country:           item.ProposedTeamCountry,
					CountryCode:       item.ProposedTeamCountryCode,
					Category:          item.Division,
					ExternalURL:       item.ProposedTeamURL,
					RequestedByUserID: item.CreatedByUserID,
					ApplicationID:     applicationID,
					CareerItemID:      item.ID,
				})
				if err != nil {
					return fmt.Errorf("career item %d: %w", item.ID, err)
				}
				item.TeamID = &teamID
				item.ClearProposedTeam()
				if created {
					item.MaterializedAt = &now
					summary.CreatedTeams++
				}
			}

			item.Status = models.CareerItemStatusAccepted
			item.ReviewedByUserID = &reviewerID
			item.ReviewedAt = &now
			if err := repos.CareerItem.Update(item); err != nil {
				return fmt.Errorf("career item %d update failed: %w", item.ID, err)
			}
			summary.AcceptedItems++
		}

		return repos.AuditLog.Append(&models.AuditLog{
			UserID:       reviewerID,
			Action:       models.AuditActionCareerAcceptAll,
			SubjectTable: "player_applications",
			SubjectID:    applicationID,
			Meta: map[string]string{
				"created_teams":  strconv.Itoa(summary.CreatedTeams),
				"accepted_items": strconv.Itoa(summary.AcceptedItems),
			},
		})
	})
	if err != nil {
		return AcceptSummary{}, err
	}
	return summary, nil
}

// CareerItemUpdate is the admin edit of a proposal's own fields. It replaces
// the three editable columns wholesale.
type CareerItemUpdate struct {
	StartYear *int   `json:"start_year"`
	EndYear   *int   `json:"end_year"`
	Division  string `json:"division"`
}

// UpdateCareerItem edits a proposal directly, bypassing the resolver. Years
// are re-validated and auto-corrected server side; overlap against sibling
// rows is deliberately not re-checked here.
func (s *Service) UpdateCareerItem(itemID uint, update CareerItemUpdate, reviewerID uint) error {
	if err := s.requireAdmin(reviewerID); err != nil {
		return err
	}

	item, err := s.repos.CareerItem.GetByID(itemID)
	if err != nil {
		if repository.IsNotFound(err) {
			return apperrors.NotFoundf("career item %d", itemID)
		}
		return fmt.Errorf("career item load failed: %w", err)
	}

	start, end := career.NormalizeRange(update.StartYear, update.EndYear)
	if errs := career.ValidateYears(start, end); len(errs) > 0 {
		return fmt.Errorf("%w: %v", apperrors.ErrValidation, errs[0])
	}

	item.StartYear, item.EndYear = start, end
	item.Division = update.Division

	return s.txn(func(repos *repository.Repositories) error {
		if err := repos.CareerItem.Update(item); err != nil {
			return fmt.Errorf("career item update failed: %w", err)
		}
		return repos.AuditLog.Append(&models.AuditLog{
			UserID:       reviewerID,
			Action:       models.AuditActionCareerItemUpdate,
			SubjectTable: "career_item_proposals",
			SubjectID:    item.ID,
		})
	})
}

// LinkCareerItemTeam attaches an existing team to a proposal and clears its
// proposed descriptor, keeping the two mutually exclusive.
func (s *Service) LinkCareerItemTeam(itemID, teamID, reviewerID uint) error {
	if err := s.requireAdmin(reviewerID); err != nil {
		return err
	}

	item, err := s.repos.CareerItem.GetByID(itemID)
	if err != nil {
		if repository.IsNotFound(err) {
			return apperrors.NotFoundf("career item %d", itemID)
		}
		return fmt.Errorf("career item load failed: %w", err)
	}

	if _, err := s.repos.Team.GetByID(teamID); err != nil {
		if repository.IsNotFound(err) {
			return apperrors.NotFoundf("team %d", teamID)
		}
		return fmt.Errorf("team load failed: %w", err)
	}

	item.TeamID = &teamID
	item.ClearProposedTeam()

	return s.txn(func(repos *repository.Repositories) error {
		if err := repos.CareerItem.Update(item); err != nil {
			return fmt.Errorf("career item update failed: %w", err)
		}
		return repos.AuditLog.Append(&models.AuditLog{
			UserID:       reviewerID,
			Action:       models.AuditActionCareerItemUpdate,
			SubjectTable: "career_item_proposals",
			SubjectID:    item.ID,
			Meta:         map[string]string{"team_id": strconv.FormatUint(uint64(teamID), 10)},
		})
	})
}

// CreateTeamFromProposal materializes the proposal's club as a pending team
// without accepting the row itself. Idempotent for items that already carry
// a team.
func (s *Service) CreateTeamFromProposal(itemID, reviewerID uint) (uint, error) {
	if err := s.requireAdmin(reviewerID); err != nil {
		return 0, err
	}

	item, err := s.repos.CareerItem.GetByID(itemID)
	if err != nil {
		if repository.IsNotFound(err) {
			return 0, apperrors.NotFoundf("career item %d", itemID)
		}
		return 0, fmt.Errorf("career item load failed: %w", err)
	}
	if item.HasTeam() {
		return *item.TeamID, nil
	}

	name := item.ProposedTeamName
	if name == "" {
		name = item.Club
	}

	var teamID uint
	now := s.now()
	err = s.txn(func(repos *repository.Repositories) error {
		id, created, err := teams.NewResolver(repos.Team).Resolve(teams.ClubRef{
			Name:              name,
			Country:           item.ProposedTeamCountry,
			CountryCode:       item.ProposedTeamCountryCode,
			Category:          item.Division,
			ExternalURL:       item.ProposedTeamURL,
			RequestedByUserID: item.CreatedByUserID,
			ApplicationID:     item.ApplicationID,
			CareerItemID:      item.ID,
		})
		if err != nil {
			return err
		}

		item.TeamID = &id
		item.ClearProposedTeam()
		if created {
			item.MaterializedAt = &now
		}
		if err := repos.CareerItem.Update(item); err != nil {
			return fmt.Errorf("career item update failed: %w", err)
		}
		teamID = id
		return nil
	})
	if err != nil {
		return 0, err
	}
	return teamID, nil
}
