package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/JulianBerardinelli/ballershub/app/controllers"
	"github.com/JulianBerardinelli/ballershub/internal/pkg/middleware"
)

func (h HttpRouter) registerAdminRoutes(app *fiber.App) {
	admin := app.Group("/admin", middleware.RequireAdmin)

	applications := admin.Group("/applications")
	applications.Get("/", controllers.HandleAdminApplicationList)
	applications.Post("/:id/approve", controllers.HandleAdminApplicationApprove)
	applications.Post("/:id/reject", controllers.HandleAdminApplicationReject)
	applications.Post("/:id/personal-info", controllers.HandleAdminApplicationPersonalInfo)
	applications.Post("/:id/career/accept-all", controllers.HandleAdminCareerAcceptAll)
	applications.Get("/:id/kyc", controllers.HandleAdminApplicationKYC)
	applications.Get("/:id/audit", controllers.HandleAdminApplicationAudit)

	career := admin.Group("/career")
	career.Patch("/:id", controllers.HandleAdminCareerItemUpdate)
	career.Post("/:id/reject", controllers.HandleAdminCareerItemReject)
	career.Post("/:id/link-team", controllers.HandleAdminCareerItemLinkTeam)
	career.Post("/:id/create-team", controllers.HandleAdminCareerItemCreateTeam)

	teams := admin.Group("/teams")
	teams.Post("/:id/approve", controllers.HandleAdminTeamApprove)
	teams.Post("/:id/reject", controllers.HandleAdminTeamReject)
	teams.Post("/:id/update", controllers.HandleAdminTeamUpdate)
}
