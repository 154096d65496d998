package models

import "time"

const (
	CareerItemStatusPending  = "pending"
	CareerItemStatusAccepted = "accepted"
	CareerItemStatusRejected = "rejected"
)

// CareerItemProposal is one claimed stint at a club, belonging to exactly one
// application. Either TeamID or the Proposed* descriptor is set, never both:
// the descriptor only survives until review links or materializes a team.
type CareerItemProposal struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	ApplicationID uint   `gorm:"not null;index" json:"application_id"`
	Club          string `gorm:"type:varchar(200);not null" json:"club"`
	Division      string `gorm:"type:varchar(100)" json:"division,omitempty"`
	StartYear     *int   `json:"start_year,omitempty"`
	EndYear       *int   `json:"end_year,omitempty"`

	TeamID *uint `gorm:"index" json:"team_id,omitempty"`

	ProposedTeamName        string `gorm:"type:varchar(200)" json:"proposed_team_name,omitempty"`
	ProposedTeamCountry     string `gorm:"type:varchar(100)" json:"proposed_team_country,omitempty"`
	ProposedTeamCountryCode string `gorm:"type:char(2)" json:"proposed_team_country_code,omitempty"`
	ProposedTeamURL         string `gorm:"type:varchar(255)" json:"proposed_team_url,omitempty"`

	Status           string     `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	ReviewedByUserID *uint      `json:"reviewed_by_user_id,omitempty"`
	ReviewedAt       *time.Time `gorm:"type:timestamp;default:null" json:"reviewed_at,omitempty"`
	MaterializedAt   *time.Time `gorm:"type:timestamp;default:null" json:"materialized_at,omitempty"`

	CreatedByUserID uint      `gorm:"not null" json:"created_by_user_id"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Team *Team `gorm:"foreignKey:TeamID" json:"team,omitempty"`
}

// HasTeam reports whether the row already references a canonical team.
func (c *CareerItemProposal) HasTeam() bool {
	return c.TeamID != nil && *c.TeamID != 0
}

// ClearProposedTeam drops the free-text descriptor once a team is attached.
func (c *CareerItemProposal) ClearProposedTeam() {
	c.ProposedTeamName = ""
	c.ProposedTeamCountry = ""
	c.ProposedTeamCountryCode = ""
	c.ProposedTeamURL = ""
}
