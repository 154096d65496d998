package controllers

import (
	"errors"
	"sync"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/JulianBerardinelli/ballershub/app/models"
	"github.com/JulianBerardinelli/ballershub/app/repository"
	"github.com/JulianBerardinelli/ballershub/internal/pkg/review"
	"github.com/JulianBerardinelli/ballershub/internal/pkg/storage"
	"github.com/JulianBerardinelli/ballershub/internal/pkg/usercontext"
)

func reviewService() *review.Service {
	return review.NewService(repository.GetGlobalFactory())
}

// HandleAdminApplicationList lists applications by status, newest last.
func HandleAdminApplicationList(c *fiber.Ctx) error {
	status := c.Query("status", models.ApplicationStatusPending)
	offset := c.QueryInt("offset", 0)
	limit := c.QueryInt("limit", 50)
	if limit > 200 {
		limit = 200
	}

	repos := repository.GetGlobalFactory().GetRepositories()
	apps, err := repos.Application.ListByStatus(status, offset, limit)
	if err != nil {
		return writeEngineError(c, err)
	}
	total, err := repos.Application.CountByStatus(status)
	if err != nil {
		return writeEngineError(c, err)
	}

	return c.JSON(fiber.Map{
		"applications": apps,
		"total":        total,
	})
}

// HandleAdminApplicationApprove approves a pending application, creating the
// public profile and the free subscription.
func HandleAdminApplicationApprove(c *fiber.Ctx) error {
	appID, err := paramID(c, "id")
	if err != nil {
		return writeEngineError(c, err)
	}

	profileID, err := reviewService().ApproveApplication(appID, usercontext.GetUserID(c))
	if err != nil {
		return writeEngineError(c, err)
	}

	return c.JSON(fiber.Map{
		"application_id": appID,
		"profile_id":     profileID,
		"status":         models.ApplicationStatusApproved,
	})
}

type rejectRequest struct {
	Reason string `json:"reason"`
}

// HandleAdminApplicationReject closes a pending application.
func HandleAdminApplicationReject(c *fiber.Ctx) error {
	appID, err := paramID(c, "id")
	if err != nil {
		return writeEngineError(c, err)
	}

	var req rejectRequest
	_ = c.BodyParser(&req)

	if err := reviewService().RejectApplication(appID, usercontext.GetUserID(c), req.Reason); err != nil {
		return writeEngineError(c, err)
	}

	return c.JSON(fiber.Map{
		"application_id": appID,
		"status":         models.ApplicationStatusRejected,
	})
}

// HandleAdminApplicationPersonalInfo corrects self-reported fields on a
// pending application.
func HandleAdminApplicationPersonalInfo(c *fiber.Ctx) error {
	appID, err := paramID(c, "id")
	if err != nil {
		return writeEngineError(c, err)
	}

	var update review.PersonalInfoUpdate
	if err := c.BodyParser(&update); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad_request", "message": "invalid JSON body"})
	}

	if err := reviewService().UpdatePersonalInfo(appID, update, usercontext.GetUserID(c)); err != nil {
		return writeEngineError(c, err)
	}

	return c.JSON(fiber.Map{"application_id": appID})
}

var (
	kycClient     *storage.Client
	kycClientErr  error
	kycClientOnce sync.Once
)

func getKYCClient() (*storage.Client, error) {
	kycClientOnce.Do(func() {
		cfg, err := storage.LoadConfig()
		if err != nil {
			kycClientErr = err
			return
		}
		if !cfg.IsEnabled() {
			kycClientErr = errors.New("KYC storage is disabled")
			return
		}
		kycClient, kycClientErr = storage.NewClient(cfg)
	})
	return kycClient, kycClientErr
}

// HandleAdminApplicationKYC returns short-lived download URLs for the
// applicant's identity documents.
func HandleAdminApplicationKYC(c *fiber.Ctx) error {
	appID, err := paramID(c, "id")
	if err != nil {
		return writeEngineError(c, err)
	}

	repos := repository.GetGlobalFactory().GetRepositories()
	app, err := repos.Application.GetByID(appID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not_found", "message": "application not found"})
		}
		return writeEngineError(c, err)
	}

	client, err := getKYCClient()
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "dependency_failure", "message": err.Error()})
	}

	idDocURL, err := client.PresignGet(c.Context(), app.IDDocKey)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "dependency_failure", "message": "presign failed"})
	}
	selfieURL, err := client.PresignGet(c.Context(), app.SelfieKey)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "dependency_failure", "message": "presign failed"})
	}

	return c.JSON(fiber.Map{
		"id_doc_url":  idDocURL,
		"selfie_url":  selfieURL,
		"expires_in":  int(storage.PresignTTL.Seconds()),
		"application": app.ID,
	})
}

// HandleAdminApplicationAudit lists the audit trail of an application.
func HandleAdminApplicationAudit(c *fiber.Ctx) error {
	appID, err := paramID(c, "id")
	if err != nil {
		return writeEngineError(c, err)
	}

	repos := repository.GetGlobalFactory().GetRepositories()
	entries, err := repos.AuditLog.ListBySubject("player_applications", appID, 100)
	if err != nil {
		return writeEngineError(c, err)
	}

	return c.JSON(fiber.Map{"entries": entries})
}
