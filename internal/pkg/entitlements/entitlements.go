package entitlements

import (
	"strings"

	"github.com/JulianBerardinelli/ballershub/app/models"
)

type Plan string

const (
	PlanFree    Plan = "free"
	PlanPro     Plan = "pro"
	PlanProPlus Plan = "pro_plus"
)

// LimitsFor returns the feature limits granted by a plan.
func LimitsFor(plan Plan) models.PlanLimits {
	switch plan {
	case PlanProPlus:
		return models.PlanLimits{
			MaxPhotos:            50,
			MaxVideos:            20,
			ReviewsEnabled:       true,
			CanInviteReviews:     true,
			MaxActiveInvitations: 10,
			StatsByYearEnabled:   true,
			BrandingAdsVisible:   false,
			BrandingPartner:      "",
		}
	case PlanPro:
		return models.PlanLimits{
			MaxPhotos:            10,
			MaxVideos:            5,
			ReviewsEnabled:       true,
			CanInviteReviews:     false,
			MaxActiveInvitations: 0,
			StatsByYearEnabled:   true,
			BrandingAdsVisible:   true,
			BrandingPartner:      "service",
		}
	default:
		return models.PlanLimits{
			MaxPhotos:            0,
			MaxVideos:            1,
			ReviewsEnabled:       false,
			CanInviteReviews:     false,
			MaxActiveInvitations: 0,
			StatsByYearEnabled:   false,
			BrandingAdsVisible:   true,
			BrandingPartner:      "service",
		}
	}
}

// ParsePlan folds an arbitrary plan string onto a known plan, free when the
// input is not recognized.
func ParsePlan(s string) Plan {
	switch Plan(strings.ToLower(strings.TrimSpace(s))) {
	case PlanPro:
		return PlanPro
	case PlanProPlus:
		return PlanProPlus
	default:
		return PlanFree
	}
}

// DefaultSubscription builds the entitlement row review upserts on approval.
func DefaultSubscription(userID uint) *models.Subscription {
	return &models.Subscription{
		UserID: userID,
		Plan:   string(PlanFree),
		Status: models.SubscriptionStatusActive,
		Limits: LimitsFor(PlanFree),
	}
}
