package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	PlayerStatusApproved = "approved"
	PlayerStatusRejected = "rejected"
)

// PlayerProfile is the public record materialized when an application is
// approved. Exactly one profile may exist per application.
type PlayerProfile struct {
	ID            uint     `gorm:"primaryKey" json:"id"`
	UserID        uint     `gorm:"not null;index" json:"user_id"`
	ApplicationID uint     `gorm:"not null;uniqueIndex" json:"application_id"`
	Slug          string   `gorm:"type:varchar(80);uniqueIndex;not null" json:"slug" validate:"required,max=80"`
	FullName      string   `gorm:"type:varchar(200);not null" json:"full_name" validate:"required,max=200"`
	Nationality   []string `gorm:"serializer:json" json:"nationality,omitempty"`
	Positions     []string `gorm:"serializer:json" json:"positions,omitempty"`
	CurrentClub   string   `gorm:"type:varchar(200)" json:"current_club,omitempty"`
	CurrentTeamID *uint    `gorm:"index" json:"current_team_id,omitempty"`
	Bio           string   `gorm:"type:text" json:"bio,omitempty" validate:"max=2000"`
	Visibility    string   `gorm:"type:varchar(20);not null;default:'public'" json:"visibility" validate:"oneof=public private"`
	Status        string   `gorm:"type:varchar(20);not null;default:'approved'" json:"status" validate:"oneof=approved rejected"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	CurrentTeam *Team `gorm:"foreignKey:CurrentTeamID" json:"current_team,omitempty"`
}

func (p *PlayerProfile) Validate() error {
	v := validator.New()

	return v.Struct(p)
}
