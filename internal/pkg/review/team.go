package review

import (
	"fmt"
	"strings"

	"github.com/JulianBerardinelli/ballershub/app/models"
	"github.com/JulianBerardinelli/ballershub/app/repository"
	"github.com/JulianBerardinelli/ballershub/internal/pkg/apperrors"
	"github.com/JulianBerardinelli/ballershub/internal/pkg/slugify"
)

// TeamUpdate is the admin edit surface of a registry entry. Nil pointers
// leave the column untouched; empty strings clear it.
type TeamUpdate struct {
	Name        *string   `json:"name,omitempty"`
	Country     *string   `json:"country,omitempty"`
	CountryCode *string   `json:"country_code,omitempty"`
	Category    *string   `json:"category,omitempty"`
	Kind        *string   `json:"kind,omitempty"`
	Visibility  *string   `json:"visibility,omitempty"`
	ExternalURL *string   `json:"external_url,omitempty"`
	AltNames    *[]string `json:"alt_names,omitempty"`
	Featured    *bool     `json:"featured,omitempty"`
}

// UpdateTeam applies an admin edit. The slug is regenerated only when the
// name actually changes, so existing profile links stay stable across
// cosmetic edits.
func (s *Service) UpdateTeam(teamID uint, update TeamUpdate, reviewerID uint) (*models.Team, error) {
	if err := s.requireAdmin(reviewerID); err != nil {
		return nil, err
	}

	team, err := s.repos.Team.GetByID(teamID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apperrors.NotFoundf("team %d", teamID)
		}
		return nil, fmt.Errorf("team load failed: %w", err)
	}

	renamed := false
	if update.Name != nil && *update.Name != team.Name {
		if strings.TrimSpace(*update.Name) == "" {
			return nil, fmt.Errorf("%w: team name cannot be empty", apperrors.ErrValidation)
		}
		team.Name = strings.TrimSpace(*update.Name)
		renamed = true
	}
	if update.Country != nil {
		team.Country = *update.Country
	}
	if update.CountryCode != nil {
		team.CountryCode = strings.ToUpper(*update.CountryCode)
	}
	if update.Category != nil {
		team.Category = *update.Category
	}
	if update.Kind != nil {
		team.Kind = *update.Kind
	}
	if update.Visibility != nil {
		team.Visibility = *update.Visibility
	}
	if update.ExternalURL != nil {
		team.ExternalURL = *update.ExternalURL
	}
	if update.AltNames != nil {
		team.AltNames = *update.AltNames
	}
	if update.Featured != nil {
		team.Featured = *update.Featured
	}

	if err := team.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	err = s.txn(func(repos *repository.Repositories) error {
		if renamed {
			slug, err := slugify.EnsureUnique(slugify.Slugify(team.Name, "team"), repos.Team.ListSlugsWithPrefix)
			if err != nil {
				return fmt.Errorf("slug generation failed: %w", err)
			}
			team.Slug = slug
		}
		if err := repos.Team.Update(team); err != nil {
			return fmt.Errorf("team update failed: %w", err)
		}
		return repos.AuditLog.Append(&models.AuditLog{
			UserID:       reviewerID,
			Action:       models.AuditActionTeamUpdate,
			SubjectTable: "teams",
			SubjectID:    team.ID,
			Meta:         map[string]string{"slug": team.Slug},
		})
	})
	if err != nil {
		return nil, err
	}
	return team, nil
}
