package teams

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/JulianBerardinelli/ballershub/app/models"
)

// fakeTeamRepo is an in-memory TeamRepository.
type fakeTeamRepo struct {
	teams  map[uint]*models.Team
	nextID uint
	fail   error
}

func newFakeTeamRepo(seed ...*models.Team) *fakeTeamRepo {
	r := &fakeTeamRepo{teams: make(map[uint]*models.Team), nextID: 1}
	for _, t := range seed {
		cp := *t
		if cp.ID == 0 {
			cp.ID = r.nextID
		}
		if cp.ID >= r.nextID {
			r.nextID = cp.ID + 1
		}
		r.teams[cp.ID] = &cp
	}
	return r
}

func (r *fakeTeamRepo) Create(team *models.Team) error {
	if r.fail != nil {
		return r.fail
	}
	team.ID = r.nextID
	r.nextID++
	cp := *team
	r.teams[cp.ID] = &cp
	return nil
}

func (r *fakeTeamRepo) GetByID(id uint) (*models.Team, error) {
	if t, ok := r.teams[id]; ok {
		cp := *t
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeTeamRepo) GetBySlug(slug string) (*models.Team, error) {
	for _, t := range r.teams {
		if t.Slug == slug {
			cp := *t
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeTeamRepo) FindByNameFold(name string) ([]models.Team, error) {
	var out []models.Team
	for _, t := range r.teams {
		if strings.EqualFold(t.Name, strings.TrimSpace(name)) {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (r *fakeTeamRepo) ListSlugsWithPrefix(prefix string) ([]string, error) {
	var out []string
	for _, t := range r.teams {
		if strings.HasPrefix(t.Slug, prefix) {
			out = append(out, t.Slug)
		}
	}
	return out, nil
}

func (r *fakeTeamRepo) Update(team *models.Team) error {
	cp := *team
	r.teams[cp.ID] = &cp
	return nil
}

func (r *fakeTeamRepo) MarkStatus(id uint, status string, reviewerID uint, at time.Time) error {
	t, ok := r.teams[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	t.Status = status
	t.ReviewedByUserID = &reviewerID
	t.ReviewedAt = &at
	return nil
}

func (r *fakeTeamRepo) SearchApproved(query string, limit int) ([]models.Team, error) {
	var out []models.Team
	for _, t := range r.teams {
		if t.Status == models.TeamStatusApproved && strings.Contains(strings.ToLower(t.Name), strings.ToLower(query)) {
			out = append(out, *t)
		}
	}
	return out, nil
}

func TestResolve_DirectTeamID(t *testing.T) {
	t.Parallel()

	repo := newFakeTeamRepo(&models.Team{ID: 7, Name: "Boca Juniors", Slug: "boca-juniors"})
	id := uint(7)

	teamID, created, err := NewResolver(repo).Resolve(ClubRef{TeamID: &id})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, uint(7), teamID)
}

func TestResolve_DirectTeamIDMissing(t *testing.T) {
	t.Parallel()

	repo := newFakeTeamRepo()
	id := uint(99)

	_, _, err := NewResolver(repo).Resolve(ClubRef{TeamID: &id})
	assert.Error(t, err)
}

func TestResolve_MatchesBySlug(t *testing.T) {
	t.Parallel()

	repo := newFakeTeamRepo(&models.Team{Name: "CA River Plate", Slug: "river-plate-fc"})

	teamID, created, err := NewResolver(repo).Resolve(ClubRef{Name: "River Plate FC"})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, uint(1), teamID)
}

func TestResolve_MatchesByNameFold(t *testing.T) {
	t.Parallel()

	repo := newFakeTeamRepo(&models.Team{Name: "River Plate FC", Slug: "ca-river-plate"})

	teamID, created, err := NewResolver(repo).Resolve(ClubRef{Name: "river plate fc"})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, uint(1), teamID)
}

func TestResolve_CreatesPendingTeamWithProvenance(t *testing.T) {
	t.Parallel()

	repo := newFakeTeamRepo()

	teamID, created, err := NewResolver(repo).Resolve(ClubRef{
		Name:              "River Plate FC",
		Country:           "Argentina",
		CountryCode:       "ar",
		RequestedByUserID: 5,
		ApplicationID:     11,
		CareerItemID:      23,
	})
	require.NoError(t, err)
	assert.True(t, created)

	team, err := repo.GetByID(teamID)
	require.NoError(t, err)
	assert.Equal(t, "river-plate-fc", team.Slug)
	assert.Equal(t, models.TeamStatusPending, team.Status)
	assert.Equal(t, "AR", team.CountryCode)
	require.NotNil(t, team.RequestedByUserID)
	assert.Equal(t, uint(5), *team.RequestedByUserID)
	require.NotNil(t, team.RequestedInApplicationID)
	assert.Equal(t, uint(11), *team.RequestedInApplicationID)
	require.NotNil(t, team.RequestedFromCareerItemID)
	assert.Equal(t, uint(23), *team.RequestedFromCareerItemID)
}

func TestResolve_BatchDedupByNormalizedName(t *testing.T) {
	t.Parallel()

	repo := newFakeTeamRepo()
	resolver := NewResolver(repo)

	first, created, err := resolver.Resolve(ClubRef{Name: "Club X"})
	require.NoError(t, err)
	assert.True(t, created)

	second, created, err := resolver.Resolve(ClubRef{Name: "club x"})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first, second)

	third, created, err := resolver.Resolve(ClubRef{Name: "CLUB X"})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first, third)

	assert.Len(t, repo.teams, 1)
}

func TestResolve_SeparateResolversDoNotShareScope(t *testing.T) {
	t.Parallel()

	repo := newFakeTeamRepo()

	first, _, err := NewResolver(repo).Resolve(ClubRef{Name: "Club X"})
	require.NoError(t, err)

	// a second batch finds the committed row instead of creating a twin
	second, created, err := NewResolver(repo).Resolve(ClubRef{Name: "Club X"})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first, second)
}

func TestResolve_EmptyReference(t *testing.T) {
	t.Parallel()

	_, _, err := NewResolver(newFakeTeamRepo()).Resolve(ClubRef{Name: "   "})
	assert.Error(t, err)
}

func TestResolve_InsertFailureSurfaces(t *testing.T) {
	t.Parallel()

	repo := newFakeTeamRepo()
	repo.fail = assert.AnError

	_, _, err := NewResolver(repo).Resolve(ClubRef{Name: "Club X"})
	assert.ErrorIs(t, err, assert.AnError)
}
