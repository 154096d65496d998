package apiv1

import (
	"github.com/gofiber/fiber/v2"

	// Delegate to the controllers to keep behavior consistent
	"github.com/JulianBerardinelli/ballershub/app/controllers"
)

// APIServer implements the public v1 surface
type APIServer struct{}

// NewAPIServer creates a new API server instance
func NewAPIServer() *APIServer {
	return &APIServer{}
}

// GetPing handles the ping endpoint
func (s *APIServer) GetPing(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"ping": "pong"})
}

// PostOnboardingSubmit accepts a full application submission.
// Security is enforced via session middleware attached in the router.
func (s *APIServer) PostOnboardingSubmit(c *fiber.Ctx) error {
	return controllers.HandleOnboardingSubmit(c)
}

// GetTeamSearch serves the club picker of the onboarding form.
func (s *APIServer) GetTeamSearch(c *fiber.Ctx) error {
	return controllers.HandleTeamSearch(c)
}

// GetTeam returns one approved team by slug.
func (s *APIServer) GetTeam(c *fiber.Ctx) error {
	return controllers.HandleGetTeam(c)
}

// GetPlayerProfile returns a public player profile by slug.
func (s *APIServer) GetPlayerProfile(c *fiber.Ctx) error {
	return controllers.HandleGetPlayerProfile(c)
}

// RegisterHandlers attaches the v1 routes to the given router group.
// requireAuth guards the routes that need a logged-in session.
func RegisterHandlers(router fiber.Router, s *APIServer, requireAuth fiber.Handler) {
	router.Get("/ping", s.GetPing)
	router.Get("/teams/search", s.GetTeamSearch)
	router.Get("/teams/:slug", s.GetTeam)
	router.Get("/players/:slug", s.GetPlayerProfile)
	router.Post("/onboarding/submit", requireAuth, s.PostOnboardingSubmit)
}
