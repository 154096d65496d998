package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/JulianBerardinelli/ballershub/app/controllers"
	"github.com/JulianBerardinelli/ballershub/internal/pkg/middleware"
	"github.com/JulianBerardinelli/ballershub/internal/pkg/session"
)

type HttpRouter struct {
}

func (h HttpRouter) InstallRouter(app *fiber.App) {
	// init session
	session.NewSessionStore()

	// Apply UserContext middleware globally as first middleware
	app.Use(middleware.UserContextMiddleware)

	app.Post("/auth/login", controllers.HandleApiLogin)
	app.Post("/auth/logout", controllers.HandleApiLogout)

	h.registerAdminRoutes(app)
}

func NewHttpRouter() *HttpRouter {
	return &HttpRouter{}
}
