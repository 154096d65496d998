package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/JulianBerardinelli/ballershub/app/models"
	"github.com/JulianBerardinelli/ballershub/app/repository"
	"github.com/JulianBerardinelli/ballershub/internal/pkg/career"
)

// HandleGetPlayerProfile returns a public player profile by slug.
func HandleGetPlayerProfile(c *fiber.Ctx) error {
	slug := c.Params("slug")

	repos := repository.GetGlobalFactory().GetRepositories()
	profile, err := repos.PlayerProfile.GetBySlug(slug)
	if err != nil || profile.Visibility != models.VisibilityPublic || profile.Status != models.PlayerStatusApproved {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not_found", "message": "player not found"})
	}

	// Accepted career rows only; pending and rejected proposals stay private.
	items, err := repos.CareerItem.ListByApplication(profile.ApplicationID)
	if err != nil {
		return writeEngineError(c, err)
	}
	rows := make([]models.CareerItemProposal, 0, len(items))
	for _, item := range items {
		if item.Status == models.CareerItemStatusAccepted {
			rows = append(rows, item)
		}
	}
	rows = career.SortCareer(rows, func(item models.CareerItemProposal) career.Span {
		return career.Span{StartYear: item.StartYear, EndYear: item.EndYear}
	})

	return c.JSON(fiber.Map{
		"profile": profile,
		"career":  rows,
	})
}
