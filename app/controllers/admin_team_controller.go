package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/JulianBerardinelli/ballershub/app/models"
	"github.com/JulianBerardinelli/ballershub/internal/pkg/review"
	"github.com/JulianBerardinelli/ballershub/internal/pkg/usercontext"
)

// HandleAdminTeamApprove promotes a pending registry entry to approved.
func HandleAdminTeamApprove(c *fiber.Ctx) error {
	teamID, err := paramID(c, "id")
	if err != nil {
		return writeEngineError(c, err)
	}

	if err := reviewService().ApproveTeam(teamID, usercontext.GetUserID(c)); err != nil {
		return writeEngineError(c, err)
	}

	return c.JSON(fiber.Map{"team_id": teamID, "status": models.TeamStatusApproved})
}

// HandleAdminTeamReject rejects a registry entry.
func HandleAdminTeamReject(c *fiber.Ctx) error {
	teamID, err := paramID(c, "id")
	if err != nil {
		return writeEngineError(c, err)
	}

	if err := reviewService().RejectTeam(teamID, usercontext.GetUserID(c)); err != nil {
		return writeEngineError(c, err)
	}

	return c.JSON(fiber.Map{"team_id": teamID, "status": models.TeamStatusRejected})
}

// HandleAdminTeamUpdate edits a registry entry. Renaming regenerates the slug.
func HandleAdminTeamUpdate(c *fiber.Ctx) error {
	teamID, err := paramID(c, "id")
	if err != nil {
		return writeEngineError(c, err)
	}

	var update review.TeamUpdate
	if err := c.BodyParser(&update); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad_request", "message": "invalid JSON body"})
	}

	team, err := reviewService().UpdateTeam(teamID, update, usercontext.GetUserID(c))
	if err != nil {
		return writeEngineError(c, err)
	}

	return c.JSON(team)
}
