package review

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JulianBerardinelli/ballershub/app/models"
	"github.com/JulianBerardinelli/ballershub/internal/pkg/apperrors"
)

func TestAcceptAllMaterializesProposedClub(t *testing.T) {
	store := newFakeStore()
	adminID := store.seedAdmin()
	userID := store.seedUser()
	appID := store.seedApplication(userID)
	itemID := store.seedCareerItem(appID, userID, func(i *models.CareerItemProposal) {
		i.Club = "River Plate FC"
		i.ProposedTeamName = "River Plate FC"
		i.ProposedTeamCountry = "Argentina"
		i.ProposedTeamCountryCode = "ar"
	})
	svc := newTestService(store)

	summary, err := svc.AcceptAllCareerProposals(appID, adminID)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.CreatedTeams)
	assert.Equal(t, 1, summary.AcceptedItems)

	item := store.items[itemID]
	assert.Equal(t, models.CareerItemStatusAccepted, item.Status)
	require.NotNil(t, item.TeamID)
	assert.Empty(t, item.ProposedTeamName)
	assert.NotNil(t, item.MaterializedAt)
	require.NotNil(t, item.ReviewedByUserID)
	assert.Equal(t, adminID, *item.ReviewedByUserID)

	team := store.teams[*item.TeamID]
	require.NotNil(t, team)
	assert.Equal(t, "river-plate-fc", team.Slug)
	assert.Equal(t, "River Plate FC", team.Name)
	assert.Equal(t, models.TeamStatusPending, team.Status)
	assert.Equal(t, "AR", team.CountryCode)
	require.NotNil(t, team.RequestedByUserID)
	assert.Equal(t, userID, *team.RequestedByUserID)
	require.NotNil(t, team.RequestedInApplicationID)
	assert.Equal(t, appID, *team.RequestedInApplicationID)
}

func TestAcceptAllDedupsRepeatedClubNames(t *testing.T) {
	store := newFakeStore()
	adminID := store.seedAdmin()
	userID := store.seedUser()
	appID := store.seedApplication(userID)
	for _, name := range []string{"Club X", "club x", "CLUB X"} {
		store.seedCareerItem(appID, userID, func(i *models.CareerItemProposal) {
			i.Club = name
		})
	}
	svc := newTestService(store)

	summary, err := svc.AcceptAllCareerProposals(appID, adminID)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.CreatedTeams)
	assert.Equal(t, 3, summary.AcceptedItems)

	ids := make(map[uint]bool)
	for _, item := range store.items {
		require.NotNil(t, item.TeamID)
		ids[*item.TeamID] = true
	}
	assert.Len(t, ids, 1)
	assert.Len(t, store.teams, 1)
}

func TestAcceptAllKeepsLinkedTeams(t *testing.T) {
	store := newFakeStore()
	adminID := store.seedAdmin()
	userID := store.seedUser()
	teamID := store.seedTeam("Boca Juniors", "boca-juniors", models.TeamStatusApproved)
	appID := store.seedApplication(userID)
	itemID := store.seedCareerItem(appID, userID, func(i *models.CareerItemProposal) {
		i.Club = "Boca Juniors"
		i.TeamID = &teamID
	})
	svc := newTestService(store)

	summary, err := svc.AcceptAllCareerProposals(appID, adminID)
	require.NoError(t, err)
	assert.Equal(t, 0, summary.CreatedTeams)
	assert.Equal(t, 1, summary.AcceptedItems)

	item := store.items[itemID]
	assert.Equal(t, models.CareerItemStatusAccepted, item.Status)
	assert.Equal(t, teamID, *item.TeamID)
	assert.Nil(t, item.MaterializedAt)
	assert.Len(t, store.teams, 1)
}

func TestAcceptAllReusesExistingRegistryEntry(t *testing.T) {
	store := newFakeStore()
	adminID := store.seedAdmin()
	userID := store.seedUser()
	teamID := store.seedTeam("Rosario Central", "rosario-central", models.TeamStatusApproved)
	appID := store.seedApplication(userID)
	itemID := store.seedCareerItem(appID, userID, func(i *models.CareerItemProposal) {
		i.Club = "rosario central"
	})
	svc := newTestService(store)

	summary, err := svc.AcceptAllCareerProposals(appID, adminID)
	require.NoError(t, err)
	assert.Equal(t, 0, summary.CreatedTeams)
	assert.Equal(t, 1, summary.AcceptedItems)
	assert.Equal(t, teamID, *store.items[itemID].TeamID)
	assert.Nil(t, store.items[itemID].MaterializedAt)
}

func TestAcceptAllWithoutPendingItems(t *testing.T) {
	store := newFakeStore()
	adminID := store.seedAdmin()
	userID := store.seedUser()
	appID := store.seedApplication(userID)
	svc := newTestService(store)

	summary, err := svc.AcceptAllCareerProposals(appID, adminID)
	require.NoError(t, err)
	assert.Zero(t, summary.CreatedTeams)
	assert.Zero(t, summary.AcceptedItems)
	assert.Empty(t, store.audits)
}

func TestAcceptAllUnknownApplication(t *testing.T) {
	store := newFakeStore()
	adminID := store.seedAdmin()
	svc := newTestService(store)

	_, err := svc.AcceptAllCareerProposals(999, adminID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestUpdateCareerItemNormalizesInvertedRange(t *testing.T) {
	store := newFakeStore()
	adminID := store.seedAdmin()
	userID := store.seedUser()
	appID := store.seedApplication(userID)
	itemID := store.seedCareerItem(appID, userID, func(i *models.CareerItemProposal) {
		i.Club = "Club X"
	})
	svc := newTestService(store)

	start, end := 2021, 2015
	err := svc.UpdateCareerItem(itemID, CareerItemUpdate{StartYear: &start, EndYear: &end, Division: "Primera"}, adminID)
	require.NoError(t, err)

	item := store.items[itemID]
	assert.Equal(t, 2015, *item.StartYear)
	assert.Equal(t, 2021, *item.EndYear)
	assert.Equal(t, "Primera", item.Division)
}

func TestUpdateCareerItemRejectsImplausibleYear(t *testing.T) {
	store := newFakeStore()
	adminID := store.seedAdmin()
	userID := store.seedUser()
	appID := store.seedApplication(userID)
	itemID := store.seedCareerItem(appID, userID, func(i *models.CareerItemProposal) {
		i.Club = "Club X"
	})
	svc := newTestService(store)

	year := 1890
	err := svc.UpdateCareerItem(itemID, CareerItemUpdate{StartYear: &year}, adminID)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	err = svc.UpdateCareerItem(itemID, CareerItemUpdate{}, adminID)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestLinkCareerItemTeamClearsDescriptor(t *testing.T) {
	store := newFakeStore()
	adminID := store.seedAdmin()
	userID := store.seedUser()
	teamID := store.seedTeam("Vélez Sarsfield", "velez-sarsfield", models.TeamStatusApproved)
	appID := store.seedApplication(userID)
	itemID := store.seedCareerItem(appID, userID, func(i *models.CareerItemProposal) {
		i.Club = "Velez"
		i.ProposedTeamName = "Velez"
		i.ProposedTeamCountry = "Argentina"
	})
	svc := newTestService(store)

	err := svc.LinkCareerItemTeam(itemID, teamID, adminID)
	require.NoError(t, err)

	item := store.items[itemID]
	require.NotNil(t, item.TeamID)
	assert.Equal(t, teamID, *item.TeamID)
	assert.Empty(t, item.ProposedTeamName)
	assert.Empty(t, item.ProposedTeamCountry)
	assert.Equal(t, models.CareerItemStatusPending, item.Status)
}

func TestLinkCareerItemTeamUnknownTeam(t *testing.T) {
	store := newFakeStore()
	adminID := store.seedAdmin()
	userID := store.seedUser()
	appID := store.seedApplication(userID)
	itemID := store.seedCareerItem(appID, userID, func(i *models.CareerItemProposal) {
		i.Club = "Club X"
	})
	svc := newTestService(store)

	err := svc.LinkCareerItemTeam(itemID, 999, adminID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCreateTeamFromProposal(t *testing.T) {
	store := newFakeStore()
	adminID := store.seedAdmin()
	userID := store.seedUser()
	appID := store.seedApplication(userID)
	itemID := store.seedCareerItem(appID, userID, func(i *models.CareerItemProposal) {
		i.Club = "Newell's Old Boys"
	})
	svc := newTestService(store)

	teamID, err := svc.CreateTeamFromProposal(itemID, adminID)
	require.NoError(t, err)
	require.NotZero(t, teamID)

	team := store.teams[teamID]
	assert.Equal(t, "newell-s-old-boys", team.Slug)
	assert.Equal(t, models.TeamStatusPending, team.Status)

	item := store.items[itemID]
	assert.Equal(t, models.CareerItemStatusPending, item.Status)
	assert.NotNil(t, item.MaterializedAt)

	// repeated call returns the already linked team
	again, err := svc.CreateTeamFromProposal(itemID, adminID)
	require.NoError(t, err)
	assert.Equal(t, teamID, again)
	assert.Len(t, store.teams, 1)
}
