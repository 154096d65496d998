package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	TeamStatusPending  = "pending"
	TeamStatusApproved = "approved"
	TeamStatusRejected = "rejected"
)

const (
	TeamKindClub     = "club"
	TeamKindAcademy  = "academy"
	TeamKindNational = "national"
)

const (
	VisibilityPublic  = "public"
	VisibilityPrivate = "private"
)

const TeamDefaultCrest = "/images/team-default.svg"

// Team is a canonical club record. Rows enter the registry either through a
// direct admin action or when review materializes a proposed club; in both
// cases they start out pending until an admin approves them.
type Team struct {
	ID          uint     `gorm:"primaryKey" json:"id"`
	Slug        string   `gorm:"type:varchar(80);uniqueIndex;not null" json:"slug" validate:"required,max=80"`
	Name        string   `gorm:"type:varchar(200);not null" json:"name" validate:"required,max=200"`
	Country     string   `gorm:"type:varchar(100)" json:"country,omitempty"`
	CountryCode string   `gorm:"type:char(2)" json:"country_code,omitempty" validate:"omitempty,len=2"`
	Category    string   `gorm:"type:varchar(100)" json:"category,omitempty"`
	Kind        string   `gorm:"type:varchar(20);not null;default:'club'" json:"kind" validate:"oneof=club academy national"`
	Visibility  string   `gorm:"type:varchar(20);not null;default:'public'" json:"visibility" validate:"oneof=public private"`
	Status      string   `gorm:"type:varchar(20);not null;default:'pending';index" json:"status" validate:"oneof=pending approved rejected"`
	AltNames    []string `gorm:"serializer:json" json:"alt_names,omitempty"`
	CrestKey    string   `gorm:"type:varchar(255);not null;default:'/images/team-default.svg'" json:"crest_key"`
	ExternalURL string   `gorm:"type:varchar(255)" json:"external_url,omitempty" validate:"omitempty,url,max=255"`
	Featured    bool     `gorm:"default:false" json:"featured"`

	// Provenance for admin traceability: who asked for this club and from where.
	RequestedByUserID         *uint `json:"requested_by_user_id,omitempty"`
	RequestedInApplicationID  *uint `json:"requested_in_application_id,omitempty"`
	RequestedFromCareerItemID *uint `json:"requested_from_career_item_id,omitempty"`

	ReviewedByUserID *uint      `json:"reviewed_by_user_id,omitempty"`
	ReviewedAt       *time.Time `gorm:"type:timestamp;default:null" json:"reviewed_at,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (t *Team) Validate() error {
	v := validator.New()

	return v.Struct(t)
}
