package models

import "time"

// Audit actions recorded by the engine. Append-only, never mutated.
const (
	AuditActionApplicationSubmit  = "player_apply_submit"
	AuditActionApplicationApprove = "application_approve"
	AuditActionApplicationReject  = "application_reject"
	AuditActionApplicationUpdate  = "application_update"
	AuditActionCareerAcceptAll    = "career_accept_all"
	AuditActionCareerItemReject   = "career_item_reject"
	AuditActionCareerItemUpdate   = "career_item_update"
	AuditActionTeamApprove        = "team_approve"
	AuditActionTeamReject         = "team_reject"
	AuditActionTeamUpdate         = "team_update"
)

type AuditLog struct {
	ID           uint              `gorm:"primaryKey" json:"id"`
	UserID       uint              `gorm:"not null;index" json:"user_id"`
	Action       string            `gorm:"type:varchar(100);not null;index" json:"action"`
	SubjectTable string            `gorm:"type:varchar(100);not null;index:idx_audit_subject,priority:1" json:"subject_table"`
	SubjectID    uint              `gorm:"not null;index:idx_audit_subject,priority:2" json:"subject_id"`
	Meta         map[string]string `gorm:"serializer:json" json:"meta,omitempty"`
	CreatedAt    time.Time         `gorm:"autoCreateTime" json:"created_at"`
}
