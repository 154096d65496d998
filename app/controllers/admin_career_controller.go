package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/JulianBerardinelli/ballershub/internal/pkg/review"
	"github.com/JulianBerardinelli/ballershub/internal/pkg/usercontext"
)

// HandleAdminCareerAcceptAll accepts every pending career proposal of an
// application, materializing any still-unresolved clubs as pending teams.
func HandleAdminCareerAcceptAll(c *fiber.Ctx) error {
	appID, err := paramID(c, "id")
	if err != nil {
		return writeEngineError(c, err)
	}

	summary, err := reviewService().AcceptAllCareerProposals(appID, usercontext.GetUserID(c))
	if err != nil {
		return writeEngineError(c, err)
	}

	return c.JSON(fiber.Map{
		"application_id": appID,
		"created_teams":  summary.CreatedTeams,
		"accepted_items": summary.AcceptedItems,
	})
}

// HandleAdminCareerItemUpdate edits the years or division of one proposal.
func HandleAdminCareerItemUpdate(c *fiber.Ctx) error {
	itemID, err := paramID(c, "id")
	if err != nil {
		return writeEngineError(c, err)
	}

	var update review.CareerItemUpdate
	if err := c.BodyParser(&update); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad_request", "message": "invalid JSON body"})
	}

	if err := reviewService().UpdateCareerItem(itemID, update, usercontext.GetUserID(c)); err != nil {
		return writeEngineError(c, err)
	}

	return c.JSON(fiber.Map{"career_item_id": itemID})
}

// HandleAdminCareerItemReject rejects a single proposal.
func HandleAdminCareerItemReject(c *fiber.Ctx) error {
	itemID, err := paramID(c, "id")
	if err != nil {
		return writeEngineError(c, err)
	}

	if err := reviewService().RejectCareerItem(itemID, usercontext.GetUserID(c)); err != nil {
		return writeEngineError(c, err)
	}

	return c.JSON(fiber.Map{"career_item_id": itemID, "status": "rejected"})
}

type linkTeamRequest struct {
	TeamID uint `json:"team_id"`
}

// HandleAdminCareerItemLinkTeam attaches an existing registry team to a
// proposal.
func HandleAdminCareerItemLinkTeam(c *fiber.Ctx) error {
	itemID, err := paramID(c, "id")
	if err != nil {
		return writeEngineError(c, err)
	}

	var req linkTeamRequest
	if err := c.BodyParser(&req); err != nil || req.TeamID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad_request", "message": "team_id required"})
	}

	if err := reviewService().LinkCareerItemTeam(itemID, req.TeamID, usercontext.GetUserID(c)); err != nil {
		return writeEngineError(c, err)
	}

	return c.JSON(fiber.Map{"career_item_id": itemID, "team_id": req.TeamID})
}

// HandleAdminCareerItemCreateTeam materializes the proposal's club as a
// pending team without accepting the item.
func HandleAdminCareerItemCreateTeam(c *fiber.Ctx) error {
	itemID, err := paramID(c, "id")
	if err != nil {
		return writeEngineError(c, err)
	}

	teamID, err := reviewService().CreateTeamFromProposal(itemID, usercontext.GetUserID(c))
	if err != nil {
		return writeEngineError(c, err)
	}

	return c.JSON(fiber.Map{"career_item_id": itemID, "team_id": teamID})
}
