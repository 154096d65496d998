package models

import "time"

const (
	SubscriptionStatusActive   = "active"
	SubscriptionStatusPaused   = "paused"
	SubscriptionStatusCanceled = "canceled"
)

// PlanLimits is the typed feature-limit document attached to a subscription.
type PlanLimits struct {
	MaxPhotos            int    `json:"max_photos"`
	MaxVideos            int    `json:"max_videos"`
	ReviewsEnabled       bool   `json:"reviews_enabled"`
	CanInviteReviews     bool   `json:"can_invite_reviews"`
	MaxActiveInvitations int    `json:"max_active_invitations"`
	StatsByYearEnabled   bool   `json:"stats_by_year_enabled"`
	BrandingAdsVisible   bool   `json:"branding_ads_visible"`
	BrandingPartner      string `json:"branding_partner"`
}

// Subscription maps a user to a plan and its limits. Keyed by user id:
// review upserts it on approval and never creates a second row per user.
type Subscription struct {
	ID     uint       `gorm:"primaryKey" json:"id"`
	UserID uint       `gorm:"not null;uniqueIndex" json:"user_id"`
	Plan   string     `gorm:"type:varchar(20);not null;default:'free'" json:"plan"`
	Status string     `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
	Limits PlanLimits `gorm:"serializer:json" json:"limits"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
