// Package teams maps free-text club references onto the canonical team
// registry. A reference either names an existing team directly or carries a
// display name with optional country metadata; unresolved names materialize
// as new pending teams.
package teams

import (
	"fmt"
	"strings"

	"github.com/JulianBerardinelli/ballershub/app/models"
	"github.com/JulianBerardinelli/ballershub/app/repository"
	"github.com/JulianBerardinelli/ballershub/internal/pkg/slugify"
)

// ClubRef is one club reference to resolve. When TeamID is set the rest of
// the descriptor is ignored; otherwise Name is required and the provenance
// fields are recorded on any team created from it.
type ClubRef struct {
	TeamID      *uint
	Name        string
	Country     string
	CountryCode string
	Category    string
	ExternalURL string

	RequestedByUserID uint
	ApplicationID     uint
	CareerItemID      uint
}

// Resolver resolves club references against the registry. Its dedup map is
// scoped to one instance: proposals naming the same club inside a batch
// resolve to the single team the first of them created. Not safe for
// concurrent use; callers run one resolver per review operation.
type Resolver struct {
	repo    repository.TeamRepository
	created map[string]uint
}

// NewResolver creates a resolver with an empty batch scope.
func NewResolver(repo repository.TeamRepository) *Resolver {
	return &Resolver{
		repo:    repo,
		created: make(map[string]uint),
	}
}

// Resolve returns the id of the existing or newly created team and whether a
// team was created. No other row is touched; any lookup or insert error
// aborts resolution for this reference only.
func (r *Resolver) Resolve(ref ClubRef) (uint, bool, error) {
	if ref.TeamID != nil && *ref.TeamID != 0 {
		team, err := r.repo.GetByID(*ref.TeamID)
		if err != nil {
			if repository.IsNotFound(err) {
				return 0, false, fmt.Errorf("team %d not found", *ref.TeamID)
			}
			return 0, false, fmt.Errorf("team lookup failed: %w", err)
		}
		return team.ID, false, nil
	}

	name := strings.TrimSpace(ref.Name)
	if name == "" {
		return 0, false, fmt.Errorf("club reference has neither team id nor name")
	}
	key := strings.ToLower(name)

	if id, ok := r.created[key]; ok {
		return id, false, nil
	}

	if id, err := r.findExisting(name); err != nil {
		return 0, false, err
	} else if id != 0 {
		r.created[key] = id
		return id, false, nil
	}

	id, err := r.create(name, ref)
	if err != nil {
		return 0, false, err
	}
	r.created[key] = id
	return id, true, nil
}

// findExisting tries the normalized slug first, then a case-insensitive name
// match. Returns 0 when the club is unknown.
func (r *Resolver) findExisting(name string) (uint, error) {
	slug := slugify.Slugify(name, "team")

	team, err := r.repo.GetBySlug(slug)
	if err != nil && !repository.IsNotFound(err) {
		return 0, fmt.Errorf("team slug lookup failed: %w", err)
	}
	if team != nil {
		return team.ID, nil
	}

	matches, err := r.repo.FindByNameFold(name)
	if err != nil {
		return 0, fmt.Errorf("team name lookup failed: %w", err)
	}
	if len(matches) > 0 {
		return matches[0].ID, nil
	}
	return 0, nil
}

func (r *Resolver) create(name string, ref ClubRef) (uint, error) {
	slug, err := slugify.EnsureUnique(slugify.Slugify(name, "team"), r.repo.ListSlugsWithPrefix)
	if err != nil {
		return 0, err
	}

	team := &models.Team{
		Slug:        slug,
		Name:        name,
		Country:     ref.Country,
		CountryCode: strings.ToUpper(ref.CountryCode),
		Category:    ref.Category,
		Kind:        models.TeamKindClub,
		Visibility:  models.VisibilityPublic,
		// Always pending: user-proposed clubs stay out of the approved
		// registry until an admin reviews them.
		Status:      models.TeamStatusPending,
		CrestKey:    models.TeamDefaultCrest,
		ExternalURL: ref.ExternalURL,
	}
	if ref.RequestedByUserID != 0 {
		team.RequestedByUserID = &ref.RequestedByUserID
	}
	if ref.ApplicationID != 0 {
		team.RequestedInApplicationID = &ref.ApplicationID
	}
	if ref.CareerItemID != 0 {
		team.RequestedFromCareerItemID = &ref.CareerItemID
	}

	if err := r.repo.Create(team); err != nil {
		return 0, fmt.Errorf("team insert failed: %w", err)
	}
	return team.ID, nil
}
