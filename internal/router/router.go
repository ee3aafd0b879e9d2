package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vidyadeep/institute-api/internal/config"
	"github.com/vidyadeep/institute-api/internal/handler"
	"github.com/vidyadeep/institute-api/internal/middleware"
	"github.com/vidyadeep/institute-api/internal/observability"
)

// Dependencies groups router dependencies for registration.
type Dependencies struct {
	EnquiryHandler    *handler.EnquiryHandler
	AdmissionHandler  *handler.AdmissionHandler
	AttendanceHandler *handler.AttendanceHandler
	FeeHandler        *handler.FeeHandler
	FollowupHandler   *handler.FollowupHandler
	CourseHandler     *handler.CourseHandler
	SettingsHandler   *handler.SettingsHandler
	StatsHandler      *handler.StatsHandler
	SeedHandler       *handler.SeedHandler
	JWTMiddleware     fiber.Handler
	PaymentLimiter    fiber.Handler
}

// Register wires the HTTP routes into the fiber application.
func Register(app *fiber.App, cfg config.Config, deps Dependencies) {
	api := app.Group("/api/v1", func(c *fiber.Ctx) error {
		c.Set("X-Application", cfg.AppName)
		return c.Next()
	})
	api.Get("/health", handler.HealthCheck(cfg))
	app.Get("/metrics", observability.MetricsHandler())

	// Use provided JWT middleware, or a no-op if nil
	jwtMiddleware := deps.JWTMiddleware
	if jwtMiddleware == nil {
		jwtMiddleware = func(c *fiber.Ctx) error { return c.Next() }
	}

	if deps.EnquiryHandler != nil {
		enquiries := api.Group("/enquiries", jwtMiddleware)
		deps.EnquiryHandler.Register(enquiries)
	}

	if deps.AdmissionHandler != nil {
		admissions := api.Group("/admissions", jwtMiddleware)
		deps.AdmissionHandler.Register(admissions)
	}

	if deps.AttendanceHandler != nil {
		attendance := api.Group("/attendance", jwtMiddleware)
		deps.AttendanceHandler.Register(attendance)
	}

	// Payment writes carry a rate limit; the derived fee views do not.
	if deps.FeeHandler != nil {
		fees := api.Group("/fees", jwtMiddleware)
		deps.FeeHandler.Register(fees, deps.PaymentLimiter)
	}

	if deps.FollowupHandler != nil {
		followups := api.Group("/followups", jwtMiddleware)
		deps.FollowupHandler.Register(followups)
	}

	if deps.CourseHandler != nil {
		courses := api.Group("/courses", jwtMiddleware)
		deps.CourseHandler.Register(courses)
		deps.CourseHandler.RegisterAdmin(courses.Group("", middleware.RequireRole("admin")))
	}

	if deps.SettingsHandler != nil {
		settings := api.Group("/settings", jwtMiddleware)
		deps.SettingsHandler.Register(settings)
		deps.SettingsHandler.RegisterAdmin(settings.Group("", middleware.RequireRole("admin")))
	}

	if deps.StatsHandler != nil {
		stats := api.Group("/stats", jwtMiddleware)
		deps.StatsHandler.Register(stats)
	}

	if deps.SeedHandler != nil {
		seed := api.Group("/seed")
		deps.SeedHandler.Register(seed)
	}
}
