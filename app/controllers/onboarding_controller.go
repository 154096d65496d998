package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/JulianBerardinelli/ballershub/app/repository"
	"github.com/JulianBerardinelli/ballershub/internal/pkg/apperrors"
	"github.com/JulianBerardinelli/ballershub/internal/pkg/onboarding"
	"github.com/JulianBerardinelli/ballershub/internal/pkg/usercontext"
)

// HandleOnboardingSubmit accepts the full application form. A duplicate
// submission answers 409 with the id of the application already in review.
func HandleOnboardingSubmit(c *fiber.Ctx) error {
	userID := usercontext.GetUserID(c)

	var req onboarding.SubmitRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad_request", "message": "invalid JSON body"})
	}

	svc := onboarding.NewService(repository.GetGlobalFactory())
	result, err := svc.Submit(userID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrAlreadyPending) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error":          "already_pending",
				"message":        "you already have a request in review",
				"application_id": result.ApplicationID,
				"uuid":           result.UUID,
			})
		}
		return writeEngineError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"application_id": result.ApplicationID,
		"uuid":           result.UUID,
		"status":         "pending",
	})
}
