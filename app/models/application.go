package models

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ApplicationStatusPending  = "pending"
	ApplicationStatusApproved = "approved"
	ApplicationStatusRejected = "rejected"
)

const (
	PlanFree    = "free"
	PlanPro     = "pro"
	PlanProPlus = "pro_plus"
)

// ApplicationNotes carries the intake fields that have no dedicated column.
// It is stored as a JSON document on the application row.
type ApplicationNotes struct {
	BirthDate        string            `json:"birth_date,omitempty"`
	HeightCm         *int              `json:"height_cm,omitempty"`
	WeightKg         *int              `json:"weight_kg,omitempty"`
	NationalityCodes []string          `json:"nationality_codes,omitempty"`
	SocialURL        string            `json:"social_url,omitempty"`
	CareerDraft      []CareerDraftItem `json:"career_draft,omitempty"`
	IntakeVersion    string            `json:"intake_version,omitempty"`
}

// CareerDraftItem preserves the raw career rows exactly as submitted,
// before any admin review touched them.
type CareerDraftItem struct {
	Club      string `json:"club"`
	Division  string `json:"division,omitempty"`
	StartYear *int   `json:"start_year,omitempty"`
	EndYear   *int   `json:"end_year,omitempty"`
	TeamID    *uint  `json:"team_id,omitempty"`
	Confirmed bool   `json:"confirmed,omitempty"`
}

// PlayerApplication is one user's request to become a listed athlete.
// At most one pending row may exist per user; the intake service enforces that.
type PlayerApplication struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	UUID          string `gorm:"type:char(36) CHARACTER SET utf8 COLLATE utf8_bin;uniqueIndex;not null" json:"uuid"`
	UserID        uint   `gorm:"not null;index" json:"user_id"`
	PlanRequested string `gorm:"type:varchar(20);not null;default:'free'" json:"plan_requested" validate:"oneof=free pro pro_plus"`

	FullName           string           `gorm:"type:varchar(200)" json:"full_name" validate:"max=200"`
	Nationality        []string         `gorm:"serializer:json" json:"nationality"`
	Positions          []string         `gorm:"serializer:json" json:"positions"`
	HeightCm           *int             `json:"height_cm,omitempty"`
	WeightKg           *int             `json:"weight_kg,omitempty"`
	CurrentClub        string           `gorm:"type:varchar(200)" json:"current_club"`
	FreeAgent          bool             `gorm:"default:false" json:"free_agent"`
	CurrentTeamID      *uint            `gorm:"index" json:"current_team_id,omitempty"`
	TransfermarktURL   string           `gorm:"type:varchar(255)" json:"transfermarkt_url" validate:"omitempty,url,max=255"`
	ExternalProfileURL string           `gorm:"type:varchar(255)" json:"external_profile_url" validate:"omitempty,url,max=255"`
	IDDocKey           string           `gorm:"type:varchar(255)" json:"-"`
	SelfieKey          string           `gorm:"type:varchar(255)" json:"-"`
	Notes              ApplicationNotes `gorm:"serializer:json" json:"notes"`

	// Populated only when the applicant proposed a club that is not in the
	// registry yet. Team creation is deferred to review time.
	ProposedTeamName        string `gorm:"type:varchar(200)" json:"proposed_team_name,omitempty"`
	ProposedTeamCountry     string `gorm:"type:varchar(100)" json:"proposed_team_country,omitempty"`
	ProposedTeamCountryCode string `gorm:"type:char(2)" json:"proposed_team_country_code,omitempty" validate:"omitempty,len=2"`
	ProposedTeamURL         string `gorm:"type:varchar(255)" json:"proposed_team_url,omitempty" validate:"omitempty,url,max=255"`

	Status           string     `gorm:"type:varchar(20);not null;default:'pending';index" json:"status" validate:"oneof=pending approved rejected"`
	ReviewedByUserID *uint      `json:"reviewed_by_user_id,omitempty"`
	ReviewedAt       *time.Time `gorm:"type:timestamp;default:null" json:"reviewed_at,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	CurrentTeam *Team `gorm:"foreignKey:CurrentTeamID" json:"current_team,omitempty"`
}

func (a *PlayerApplication) Validate() error {
	v := validator.New()

	return v.Struct(a)
}

// BeforeCreate assigns the public reference before the row is written.
func (a *PlayerApplication) BeforeCreate(tx *gorm.DB) error {
	if a.UUID == "" {
		a.UUID = uuid.New().String()
	}
	return nil
}

// IsPending reports whether the application is still awaiting review.
func (a *PlayerApplication) IsPending() bool {
	return a.Status == ApplicationStatusPending
}
