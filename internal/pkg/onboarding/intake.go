// Package onboarding turns the multi-step application form into canonical
// application and career-proposal rows. It never writes to the team
// registry: proposed clubs stay on the application until review.
package onboarding

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/JulianBerardinelli/ballershub/app/models"
	"github.com/JulianBerardinelli/ballershub/app/repository"
	"github.com/JulianBerardinelli/ballershub/internal/pkg/apperrors"
	"github.com/JulianBerardinelli/ballershub/internal/pkg/career"
)

// Club selection modes of the football step.
const (
	ClubModeApproved = "approved"
	ClubModeNew      = "new"
	ClubModeFree     = "free"
)

// Nationality is one country the applicant claims.
type Nationality struct {
	Code string `json:"code" validate:"required,len=2"`
	Name string `json:"name" validate:"required,max=100"`
}

// Position is the primary role plus secondary positions.
type Position struct {
	Role string   `json:"role" validate:"required,oneof=ARQ DEF MID DEL"`
	Subs []string `json:"subs" validate:"max=4,dive,max=30"`
}

// PersonalStep is step one of the form.
type PersonalStep struct {
	FullName      string        `json:"full_name" validate:"required,min=2,max=200"`
	Nationalities []Nationality `json:"nationalities" validate:"required,min=1,max=3,dive"`
	BirthDate     string        `json:"birth_date" validate:"omitempty,datetime=2006-01-02"`
	Position      Position      `json:"position"`
	HeightCm      *int          `json:"height_cm" validate:"omitempty,gte=120,lte=230"`
	WeightKg      *int          `json:"weight_kg" validate:"omitempty,gte=40,lte=160"`
}

// ClubSelection is the applicant's current club: an approved registry team,
// a proposed new club, or nothing for free agents.
type ClubSelection struct {
	Mode        string `json:"mode" validate:"required,oneof=approved new free"`
	TeamID      *uint  `json:"team_id"`
	TeamName    string `json:"team_name" validate:"max=200"`
	Name        string `json:"name" validate:"max=200"`
	Country     string `json:"country" validate:"max=100"`
	CountryCode string `json:"country_code" validate:"omitempty,len=2"`
	ExternalURL string `json:"external_url" validate:"omitempty,url,max=255"`
}

// ProposedClub carries the descriptor of an unresolved club on a career row.
type ProposedClub struct {
	Country     string `json:"country" validate:"max=100"`
	CountryCode string `json:"country_code" validate:"omitempty,len=2"`
	ExternalURL string `json:"external_url" validate:"omitempty,url,max=255"`
}

// CareerRow is one claimed stint as submitted.
type CareerRow struct {
	Club      string        `json:"club" validate:"required,max=200"`
	Division  string        `json:"division" validate:"max=100"`
	StartYear *int          `json:"start_year"`
	EndYear   *int          `json:"end_year"`
	TeamID    *uint         `json:"team_id"`
	Proposed  *ProposedClub `json:"proposed"`
	Confirmed bool          `json:"confirmed"`
}

// FootballStep is step two of the form.
type FootballStep struct {
	FreeAgent        bool           `json:"free_agent"`
	Team             *ClubSelection `json:"team"`
	Career           []CareerRow    `json:"career" validate:"max=40,dive"`
	TransfermarktURL string         `json:"transfermarkt_url" validate:"omitempty,url,max=255"`
	BesoccerURL      string         `json:"besoccer_url" validate:"omitempty,url,max=255"`
	SocialURL        string         `json:"social_url" validate:"omitempty,url,max=255"`
}

// KYCRefs are the object keys of the uploaded identity documents.
type KYCRefs struct {
	IDDocKey  string `json:"id_doc_key" validate:"required,max=255"`
	SelfieKey string `json:"selfie_key" validate:"required,max=255"`
}

// SubmitRequest is the flattened two-step payload.
type SubmitRequest struct {
	Personal PersonalStep `json:"personal"`
	Football FootballStep `json:"football"`
	KYC      KYCRefs      `json:"kyc"`
}

// SubmitResult identifies the application the submission resolved to, which
// on a duplicate submission is the already-pending one.
type SubmitResult struct {
	ApplicationID uint   `json:"application_id"`
	UUID          string `json:"uuid"`
}

// Service is the submission intake.
type Service struct {
	repos    *repository.Repositories
	txn      func(fn func(repos *repository.Repositories) error) error
	validate *validator.Validate
}

// NewService creates the intake service on top of the repository factory.
func NewService(f *repository.Factory) *Service {
	return &Service{
		repos:    f.GetRepositories(),
		txn:      f.WithTransaction,
		validate: validator.New(),
	}
}

// Submit assembles the form payload into one application plus its career
// proposals. At most one pending application may exist per user: a duplicate
// submission returns the existing id with ErrAlreadyPending and writes
// nothing. Application insert, proposal batch and audit entry land in a
// single transaction.
func (s *Service) Submit(userID uint, req SubmitRequest) (SubmitResult, error) {
	if userID == 0 {
		return SubmitResult{}, apperrors.ErrUnauthorized
	}
	if err := s.validate.Struct(req); err != nil {
		return SubmitResult{}, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	if err := validateClubSelection(req.Football); err != nil {
		return SubmitResult{}, err
	}

	existing, err := s.repos.Application.FindPendingByUser(userID)
	if err != nil {
		return SubmitResult{}, fmt.Errorf("pending lookup failed: %w", err)
	}
	if existing != nil {
		return SubmitResult{ApplicationID: existing.ID, UUID: existing.UUID}, apperrors.ErrAlreadyPending
	}

	app := buildApplication(userID, req)
	proposals := buildProposals(userID, req.Football.Career)

	var result SubmitResult
	err = s.txn(func(repos *repository.Repositories) error {
		if err := repos.Application.Create(app); err != nil {
			return fmt.Errorf("application insert failed: %w", err)
		}
		if err := repos.CareerItem.ReplaceForApplication(app.ID, proposals); err != nil {
			return fmt.Errorf("career proposals insert failed: %w", err)
		}
		if err := repos.AuditLog.Append(&models.AuditLog{
			UserID:       userID,
			Action:       models.AuditActionApplicationSubmit,
			SubjectTable: "player_applications",
			SubjectID:    app.ID,
			Meta:         map[string]string{"status": models.ApplicationStatusPending},
		}); err != nil {
			return fmt.Errorf("audit insert failed: %w", err)
		}
		result = SubmitResult{ApplicationID: app.ID, UUID: app.UUID}
		return nil
	})
	if err != nil {
		return SubmitResult{}, err
	}
	return result, nil
}

// validateClubSelection enforces the mode-specific required fields the
// struct tags cannot express.
func validateClubSelection(step FootballStep) error {
	if step.Team == nil || step.FreeAgent {
		return nil
	}
	switch step.Team.Mode {
	case ClubModeApproved:
		if step.Team.TeamID == nil || *step.Team.TeamID == 0 {
			return apperrors.Validationf("approved club selection requires a team id")
		}
	case ClubModeNew:
		if strings.TrimSpace(step.Team.Name) == "" {
			return apperrors.Validationf("proposed club requires a name")
		}
	}
	return nil
}

func buildApplication(userID uint, req SubmitRequest) *models.PlayerApplication {
	names := make([]string, 0, len(req.Personal.Nationalities))
	codes := make([]string, 0, len(req.Personal.Nationalities))
	for _, n := range req.Personal.Nationalities {
		names = append(names, n.Name)
		codes = append(codes, strings.ToUpper(n.Code))
	}

	positions := append([]string{req.Personal.Position.Role}, req.Personal.Position.Subs...)

	app := &models.PlayerApplication{
		UserID:           userID,
		PlanRequested:    models.PlanFree,
		Status:           models.ApplicationStatusPending,
		FullName:         req.Personal.FullName,
		Nationality:      names,
		Positions:        positions,
		HeightCm:         req.Personal.HeightCm,
		WeightKg:         req.Personal.WeightKg,
		TransfermarktURL: req.Football.TransfermarktURL,
		IDDocKey:         req.KYC.IDDocKey,
		SelfieKey:        req.KYC.SelfieKey,
		Notes: models.ApplicationNotes{
			BirthDate:        req.Personal.BirthDate,
			HeightCm:         req.Personal.HeightCm,
			WeightKg:         req.Personal.WeightKg,
			NationalityCodes: codes,
			SocialURL:        req.Football.SocialURL,
			CareerDraft:      draftRows(req.Football.Career),
			IntakeVersion:    "onboarding_v2",
		},
	}

	if req.Football.BesoccerURL != "" {
		app.ExternalProfileURL = req.Football.BesoccerURL
	} else {
		app.ExternalProfileURL = req.Football.SocialURL
	}

	isFree := req.Football.FreeAgent || (req.Football.Team != nil && req.Football.Team.Mode == ClubModeFree)
	app.FreeAgent = isFree
	if isFree || req.Football.Team == nil {
		return app
	}

	switch req.Football.Team.Mode {
	case ClubModeApproved:
		app.CurrentTeamID = req.Football.Team.TeamID
		app.CurrentClub = req.Football.Team.TeamName
	case ClubModeNew:
		app.ProposedTeamName = req.Football.Team.Name
		app.ProposedTeamCountry = req.Football.Team.Country
		app.ProposedTeamCountryCode = strings.ToUpper(req.Football.Team.CountryCode)
		app.ProposedTeamURL = req.Football.Team.ExternalURL
		app.CurrentClub = req.Football.Team.Name
	}
	return app
}

// buildProposals mirrors the club reference exclusivity on every row: a row
// with a team id carries no proposed descriptor and vice versa.
func buildProposals(userID uint, rows []CareerRow) []models.CareerItemProposal {
	proposals := make([]models.CareerItemProposal, 0, len(rows))
	for _, row := range rows {
		start, end := career.NormalizeRange(row.StartYear, row.EndYear)

		item := models.CareerItemProposal{
			Club:            row.Club,
			Division:        row.Division,
			StartYear:       start,
			EndYear:         end,
			Status:          models.CareerItemStatusPending,
			CreatedByUserID: userID,
		}

		if row.TeamID != nil && *row.TeamID != 0 {
			item.TeamID = row.TeamID
		} else {
			item.ProposedTeamName = row.Club
			if row.Proposed != nil {
				item.ProposedTeamCountry = row.Proposed.Country
				item.ProposedTeamCountryCode = strings.ToUpper(row.Proposed.CountryCode)
				item.ProposedTeamURL = row.Proposed.ExternalURL
			}
		}

		proposals = append(proposals, item)
	}
	return proposals
}

func draftRows(rows []CareerRow) []models.CareerDraftItem {
	draft := make([]models.CareerDraftItem, 0, len(rows))
	for _, row := range rows {
		draft = append(draft, models.CareerDraftItem{
			Club:      row.Club,
			Division:  row.Division,
			StartYear: row.StartYear,
			EndYear:   row.EndYear,
			TeamID:    row.TeamID,
			Confirmed: row.Confirmed,
		})
	}
	return draft
}
